package commands

import (
	"fmt"
	"net/http"

	"github.com/himakhaitan/cmdkv-store/cli/output"
	"github.com/himakhaitan/cmdkv-store/types"
	"github.com/spf13/cobra"
)

// NewUpdateCommand creates a new update command
func NewUpdateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update <key> <value>",
		Short: "Update the value of an existing key",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			key, value := args[0], args[1]
			if _, ok := sendCommand(http.MethodPut, keyPath(key), types.UpdateRequest{Value: &value}); !ok {
				return
			}
			output.Success(fmt.Sprintf("Updated %s = %s", key, value))
		},
	}
}
