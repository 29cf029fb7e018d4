package commands

import (
	"net/http"
	"sort"

	"github.com/himakhaitan/cmdkv-store/cli/output"
	"github.com/himakhaitan/cmdkv-store/engine"
	"github.com/spf13/cobra"
)

// NewListCommand creates a new list command
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all keys",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			res, ok := sendCommand(http.MethodGet, keyValuePath, nil)
			if !ok {
				return
			}
			keys, _ := engine.PayloadAs[[]string](res)
			if len(keys) == 0 {
				output.Info("No keys found")
				return
			}
			sort.Strings(keys)
			for _, key := range keys {
				output.Info(key)
			}
		},
	}
}
