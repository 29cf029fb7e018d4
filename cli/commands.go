package cli

import (
	"github.com/himakhaitan/cmdkv-store/cli/commands"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

type CLI struct {
	root *cobra.Command
}

func NewCLI() *CLI {
	cli := &CLI{}

	rootCmd := &cobra.Command{
		Use:   "cmdkv-cli",
		Short: "A command-driven key-value store CLI",
		Long:  "cmdkv CLI sends Create, Read, ReadAll, Update, Delete and batch commands to a cmdkv server",
	}

	// Create command registry and register all commands
	registry := commands.NewCommandRegistry()
	registry.RegisterCommands(rootCmd)

	cli.root = rootCmd

	return cli
}

func (c *CLI) Run() error {
	return c.root.Execute()
}

// Module provides the CLI to fx
func Module() fx.Option {
	return fx.Provide(NewCLI)
}
