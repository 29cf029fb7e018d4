package commands

import (
	"fmt"
	"net/http"

	"github.com/himakhaitan/cmdkv-store/cli/output"
	"github.com/himakhaitan/cmdkv-store/engine"
	"github.com/spf13/cobra"
)

// NewGetCommand creates a new get command
func NewGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a value by key",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			key := args[0]
			res, ok := sendCommand(http.MethodGet, keyPath(key), nil)
			if !ok {
				return
			}
			value, _ := engine.PayloadAs[string](res)
			output.Success(fmt.Sprintf("Key: %s", key))
			output.Info(fmt.Sprintf("Value: %s", value))
		},
	}
}
