package main

import (
	"github.com/himakhaitan/cmdkv-store/pkg/config"
	"github.com/himakhaitan/cmdkv-store/pkg/logger"
	"github.com/himakhaitan/cmdkv-store/server"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module(),
		logger.Module("cmdkv-server"),
		server.Module(),
	)

	app.Run()
}
