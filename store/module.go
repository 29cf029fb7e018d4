package store

import (
	"go.uber.org/fx"
)

// Module provides the in-memory repository under both of its interfaces
func Module() fx.Option {
	return fx.Provide(
		New,
		func(r *MemoryRepository) Repository { return r },
		func(r *MemoryRepository) StatsReporter { return r },
	)
}
