package commands

import (
	"bytes"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/himakhaitan/cmdkv-store/engine"
	"github.com/himakhaitan/cmdkv-store/pkg/config"
	"github.com/himakhaitan/cmdkv-store/server"
	"github.com/himakhaitan/cmdkv-store/store"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// executeCommand runs the cobra command with given arguments.
// This helper is shared across all test files in the 'commands' package.
func executeCommand(t *testing.T, cmd *cobra.Command, args []string) {
	cmd.SetArgs(args)
	// We only check for cobra errors (arg count), not runtime errors (logged via output.Error)
	err := cmd.Execute()
	assert.NoError(t, err)
}

func captureOutput(f func()) string {
	var buf bytes.Buffer
	stdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = stdout
	buf.ReadFrom(r)
	return buf.String()
}

// startStore runs an in-process server backed by a fresh repository and
// points the CLI at it.
func startStore(t *testing.T) *store.MemoryRepository {
	t.Helper()
	logger := zap.NewNop()
	repo := store.New(logger, &config.Config{Shards: 2})
	ts := httptest.NewServer(server.NewRouter(engine.NewHandler(repo, logger), repo, logger))
	t.Cleanup(ts.Close)
	t.Setenv(AddrEnv, ts.URL)
	return repo
}
