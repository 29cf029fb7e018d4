package commands

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCommand(t *testing.T) {
	repo := startStore(t)

	out := captureOutput(func() {
		executeCommand(t, NewCreateCommand(), []string{"foo", "bar"})
	})
	assert.Contains(t, out, "[SUCCESS]")
	assert.Contains(t, out, "Set foo = bar")

	v, err := repo.GetValue("foo")
	require.NoError(t, err)
	assert.Equal(t, "bar", v)
}

func TestCreateCommand_BlankKey(t *testing.T) {
	startStore(t)

	out := captureOutput(func() {
		executeCommand(t, NewCreateCommand(), []string{"  ", "bar"})
	})
	assert.Contains(t, out, "[WARN]")
	assert.Contains(t, out, "key is required")
}

func TestCreateCommand_ArgValidation(t *testing.T) {
	cmd := NewCreateCommand()
	cmd.SetArgs([]string{"only"})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestGetCommand(t *testing.T) {
	repo := startStore(t)
	require.NoError(t, repo.SetValue("a key/with slash", "v"))

	out := captureOutput(func() {
		executeCommand(t, NewGetCommand(), []string{"a key/with slash"})
	})
	assert.Contains(t, out, "Key: a key/with slash")
	assert.Contains(t, out, "Value: v")
}

func TestGetCommand_KeyNotFound(t *testing.T) {
	startStore(t)

	out := captureOutput(func() {
		executeCommand(t, NewGetCommand(), []string{"missing"})
	})
	assert.Contains(t, out, "[WARN]")
	assert.Contains(t, out, "key not found")
}

func TestGetCommand_RequestPath(t *testing.T) {
	requestCapture := make(chan *http.Request, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCapture <- r
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"Success","result":"v"}`))
	}))
	defer srv.Close()
	t.Setenv(AddrEnv, srv.URL+"/")

	captureOutput(func() {
		executeCommand(t, NewGetCommand(), []string{"testkey"})
	})
	select {
	case req := <-requestCapture:
		assert.Equal(t, http.MethodGet, req.Method)
		assert.Equal(t, "/api/keyvalue/testkey", req.URL.Path)
	case <-time.After(time.Second):
		t.Fatal("Timeout: Command did not make an HTTP request")
	}
}

func TestGetCommand_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()
	t.Setenv(AddrEnv, srv.URL)

	out := captureOutput(func() {
		executeCommand(t, NewGetCommand(), []string{"k"})
	})
	assert.Contains(t, out, "[ERROR]")
	assert.Contains(t, out, "Server error")
}

func TestGetCommand_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":`))
	}))
	defer srv.Close()
	t.Setenv(AddrEnv, srv.URL)

	out := captureOutput(func() {
		executeCommand(t, NewGetCommand(), []string{"k"})
	})
	assert.Contains(t, out, "Invalid response")
}

func TestGetCommand_NetworkFailure(t *testing.T) {
	t.Setenv(AddrEnv, "http://127.0.0.1:1")

	out := captureOutput(func() {
		executeCommand(t, NewGetCommand(), []string{"failkey"})
	})
	assert.Contains(t, out, "[ERROR]")
	assert.Contains(t, out, "Failed to connect to server")
}

func TestGetCommand_ArgumentValidation(t *testing.T) {
	cmd := NewGetCommand()
	cmd.SetArgs([]string{})
	assert.Error(t, cmd.Execute(), "Should require exactly one argument")
	cmd.SetArgs([]string{"k1", "k2"})
	assert.Error(t, cmd.Execute(), "Should require exactly one argument")
}

func TestUpdateCommand(t *testing.T) {
	repo := startStore(t)
	require.NoError(t, repo.SetValue("foo", "bar"))

	out := captureOutput(func() {
		executeCommand(t, NewUpdateCommand(), []string{"foo", "baz"})
	})
	assert.Contains(t, out, "Updated foo = baz")

	v, _ := repo.GetValue("foo")
	assert.Equal(t, "baz", v)
}

func TestUpdateCommand_Missing(t *testing.T) {
	repo := startStore(t)

	out := captureOutput(func() {
		executeCommand(t, NewUpdateCommand(), []string{"ghost", "v"})
	})
	assert.Contains(t, out, "key not found")
	assert.Zero(t, repo.Len(), "update must not create keys")
}

func TestDeleteCommand(t *testing.T) {
	repo := startStore(t)
	require.NoError(t, repo.SetValue("foo", "bar"))

	out := captureOutput(func() {
		executeCommand(t, NewDeleteCommand(), []string{"foo"})
	})
	assert.Contains(t, out, "Deleted key: foo")
	assert.Zero(t, repo.Len())

	out = captureOutput(func() {
		executeCommand(t, NewDeleteCommand(), []string{"foo"})
	})
	assert.Contains(t, out, "key not found")
}

func TestListCommand(t *testing.T) {
	repo := startStore(t)

	out := captureOutput(func() {
		executeCommand(t, NewListCommand(), nil)
	})
	assert.Contains(t, out, "No keys found")

	require.NoError(t, repo.SetValue("b", "2"))
	require.NoError(t, repo.SetValue("a", "1"))
	out = captureOutput(func() {
		executeCommand(t, NewListCommand(), nil)
	})
	assert.Contains(t, out, "a")
	assert.Contains(t, out, "b")
	assert.Less(t, strings.Index(out, "\x1b[34ma\x1b[0m"), strings.Index(out, "\x1b[34mb\x1b[0m"), "keys are printed sorted")
}

func TestStatsCommand(t *testing.T) {
	repo := startStore(t)
	require.NoError(t, repo.SetValue("a", "123"))

	out := captureOutput(func() {
		executeCommand(t, NewStatsCommand(), nil)
	})
	assert.Contains(t, out, "Store Statistics")
	assert.Contains(t, out, "Total keys: 1")
	assert.Contains(t, out, "Total size: 3 bytes")
	assert.Contains(t, out, "Shards: 2")
}

func TestStatsCommand_NetworkFailure(t *testing.T) {
	t.Setenv(AddrEnv, "http://127.0.0.1:1")

	out := captureOutput(func() {
		executeCommand(t, NewStatsCommand(), nil)
	})
	assert.Contains(t, out, "Failed to connect to server")
}
