package engine

import (
	"github.com/himakhaitan/cmdkv-store/store"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Options(
		store.Module(),
		fx.Provide(
			NewHandler,
			func(h *Handler) CommandHandler { return h },
		),
	)
}
