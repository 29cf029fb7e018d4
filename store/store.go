package store

import (
	"hash/fnv"

	"github.com/himakhaitan/cmdkv-store/pkg/config"
	"go.uber.org/zap"
)

// MemoryRepository is a volatile key-value repository. Keys are spread over
// a power-of-two number of shards, each with its own lock, so operations on
// keys in different shards do not contend.
type MemoryRepository struct {
	shards []*shard
	mask   uint32
	logger *zap.Logger
}

var (
	_ Repository    = (*MemoryRepository)(nil)
	_ StatsReporter = (*MemoryRepository)(nil)
)

// New creates an empty MemoryRepository sized from cfg.Shards
func New(logger *zap.Logger, cfg *config.Config) *MemoryRepository {
	n := config.ShardCount(cfg.Shards)
	r := &MemoryRepository{
		shards: make([]*shard, n),
		mask:   uint32(n - 1),
		logger: logger,
	}
	for i := range r.shards {
		r.shards[i] = newShard()
	}

	logger.Info("Initialized in-memory repository", zap.Int("shards", n))
	return r
}

func (r *MemoryRepository) shardFor(key string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return r.shards[h.Sum32()&r.mask]
}

// GetAllKeys returns the keys currently present in no particular order.
// Each shard is read under its own lock, so a key written concurrently with
// the listing may or may not appear.
func (r *MemoryRepository) GetAllKeys() []string {
	keys := make([]string, 0, r.Len())
	for _, s := range r.shards {
		keys = s.appendKeys(keys)
	}
	return keys
}

// GetValue returns the value stored under key
func (r *MemoryRepository) GetValue(key string) (string, error) {
	value, ok := r.shardFor(key).get(key)
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

// SetValue creates or overwrites key
func (r *MemoryRepository) SetValue(key, value string) error {
	r.shardFor(key).put(key, value)
	return nil
}

// UpdateValue overwrites key only if it already exists
func (r *MemoryRepository) UpdateValue(key, value string) error {
	if !r.shardFor(key).replace(key, value) {
		return ErrKeyNotFound
	}
	return nil
}

// DeleteValue removes key
func (r *MemoryRepository) DeleteValue(key string) error {
	if !r.shardFor(key).remove(key) {
		return ErrKeyNotFound
	}
	return nil
}

// Len returns the number of stored keys
func (r *MemoryRepository) Len() int {
	total := 0
	for _, s := range r.shards {
		total += s.len()
	}
	return total
}

// Stats returns repository statistics
func (r *MemoryRepository) Stats() Stats {
	stats := Stats{Shards: len(r.shards)}
	for _, s := range r.shards {
		n, size := s.stats()
		stats.TotalKeys += n
		stats.TotalSize += size
	}
	return stats
}
