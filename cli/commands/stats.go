package commands

import (
	"fmt"
	"net/http"

	"github.com/himakhaitan/cmdkv-store/cli/output"
	"github.com/himakhaitan/cmdkv-store/types"
	"github.com/spf13/cobra"
)

// NewStatsCommand creates a new stats command
func NewStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show store statistics",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			var stats types.StatsResponse
			if _, err := send(http.MethodGet, statsPath, nil, &stats); err != nil {
				output.Error(err.Error())
				return
			}
			output.Info("Store Statistics:")
			output.Dim(fmt.Sprintf("Total keys: %d", stats.TotalKeys))
			output.Dim(fmt.Sprintf("Total size: %d bytes", stats.TotalSize))
			output.Dim(fmt.Sprintf("Shards: %d", stats.Shards))
		},
	}
}
