package commands

import (
	"fmt"
	"net/http"

	"github.com/himakhaitan/cmdkv-store/cli/output"
	"github.com/spf13/cobra"
)

// NewDeleteCommand creates a new delete command
func NewDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <key>",
		Short: "Delete a key",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			key := args[0]
			if _, ok := sendCommand(http.MethodDelete, keyPath(key), nil); !ok {
				return
			}
			output.Success(fmt.Sprintf("Deleted key: %s", key))
		},
	}
}
