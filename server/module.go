package server

import (
	"github.com/himakhaitan/cmdkv-store/engine"
	"go.uber.org/fx"
)

// Module provides the HTTP server wired with fx
func Module() fx.Option {
	return fx.Options(
		fx.Provide(NewRouter),
		fx.Provide(NewHTTPServer),
		fx.Invoke(RegisterHooks),
		engine.Module(),
	)
}
