package store

// Repository is the key-value capability the command handler depends on.
// Implementations must be safe for concurrent use.
type Repository interface {
	GetAllKeys() []string
	GetValue(key string) (string, error)
	SetValue(key, value string) error
	UpdateValue(key, value string) error
	DeleteValue(key string) error
}

// Stats summarizes repository contents
type Stats struct {
	TotalKeys int
	TotalSize int64
	Shards    int
}

// StatsReporter is implemented by repositories that can describe their contents.
type StatsReporter interface {
	Stats() Stats
}
