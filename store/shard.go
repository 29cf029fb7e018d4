package store

import (
	"sync"
)

// shard is one lock-striped partition of the key space
type shard struct {
	mu    sync.RWMutex
	index map[string]string
}

func newShard() *shard {
	return &shard{
		index: make(map[string]string),
	}
}

// get retrieves a key from the shard
func (s *shard) get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, exists := s.index[key]
	return value, exists
}

// put inserts or overwrites a key
func (s *shard) put(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.index[key] = value
}

// replace overwrites key only if it is already present. The check and the
// write share one critical section.
func (s *shard) replace(key, value string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.index[key]; !exists {
		return false
	}
	s.index[key] = value
	return true
}

// remove deletes key and reports whether it was present
func (s *shard) remove(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.index[key]; !exists {
		return false
	}
	delete(s.index, key)
	return true
}

// appendKeys appends all keys of the shard to dst
func (s *shard) appendKeys(dst []string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for key := range s.index {
		dst = append(dst, key)
	}
	return dst
}

func (s *shard) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.index)
}

// stats returns key count and total value size in bytes
func (s *shard) stats() (int, int64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	totalSize := int64(0)
	for _, value := range s.index {
		totalSize += int64(len(value))
	}
	return len(s.index), totalSize
}
