package commands

import (
	"fmt"

	"github.com/himakhaitan/cmdkv-store/cli/output"
	"github.com/himakhaitan/cmdkv-store/pkg/config"
	"github.com/himakhaitan/cmdkv-store/pkg/logger"
	"github.com/himakhaitan/cmdkv-store/server"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// serverOptions is the same graph the cmdkvd binary runs
func serverOptions() fx.Option {
	return fx.Options(
		config.Module(),
		logger.Module("cmdkv-server"),
		server.Module(),
	)
}

// NewServerCommand creates a command that runs the server in the foreground
func NewServerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Start the cmdkv server in the foreground",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			output.Info("Starting cmdkv server...")
			app := fx.New(fx.NopLogger, serverOptions())
			if err := app.Err(); err != nil {
				output.Error(fmt.Sprintf("Error in starting the Server: %v", err))
				return
			}
			app.Run()
			output.Info("Server stopped")
		},
	}
}
