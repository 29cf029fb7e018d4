package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/himakhaitan/cmdkv-store/cli/output"
	"github.com/himakhaitan/cmdkv-store/engine"
	"github.com/spf13/cobra"
)

// NewBatchCommand creates a command that submits a JSON array of commands
// read from a file, or from stdin when the argument is "-".
func NewBatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <file|->",
		Short: "Run an ordered batch of commands",
		Long: `Run an ordered batch of commands. The input is a JSON array such as
[{"type":"Create","key":"a","value":"1"},{"type":"ReadAll"}]
Every command runs even when an earlier one fails.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cmds, err := readBatch(cmd.InOrStdin(), args[0])
			if err != nil {
				output.Error(err.Error())
				return
			}

			var results []engine.Result
			if _, err := send(http.MethodPost, actionsPath, cmds, &results); err != nil {
				output.Error(err.Error())
				return
			}
			for i, res := range results {
				label := fmt.Sprintf("#%d", i+1)
				if i < len(cmds) {
					label = fmt.Sprintf("#%d %s", i+1, cmds[i].Type)
				}
				output.Result(label, res)
			}
		},
	}
}

func readBatch(stdin io.Reader, source string) ([]engine.Command, error) {
	var data []byte
	var err error
	if source == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("Failed to read batch: %w", err)
	}

	var cmds []engine.Command
	if err := json.Unmarshal(data, &cmds); err != nil {
		return nil, fmt.Errorf("Invalid batch: %w", err)
	}
	return cmds, nil
}
