package commands

import (
	"fmt"
	"net/http"

	"github.com/himakhaitan/cmdkv-store/cli/output"
	"github.com/himakhaitan/cmdkv-store/engine"
	"github.com/spf13/cobra"
)

// NewCreateCommand creates a new create command. Existing keys are overwritten.
func NewCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "create <key> <value>",
		Aliases: []string{"set"},
		Short:   "Create or overwrite a key-value pair",
		Args:    cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			key, value := args[0], args[1]
			if _, ok := sendCommand(http.MethodPost, keyValuePath, engine.NewCreate(key, value)); !ok {
				return
			}
			output.Success(fmt.Sprintf("Set %s = %s", key, value))
		},
	}
}
