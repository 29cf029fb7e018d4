package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/himakhaitan/cmdkv-store/cli/output"
	"github.com/himakhaitan/cmdkv-store/engine"
)

const (
	// AddrEnv names the environment variable holding the server URL
	AddrEnv     = "CMDKV_URL"
	defaultAddr = "http://localhost:8080"

	keyValuePath = "/api/keyvalue"
	actionsPath  = "/api/keyvalue-actions"
	statsPath    = "/api/stats"
)

type connectError struct {
	addr string
	err  error
}

func (e *connectError) Error() string {
	return fmt.Sprintf("Failed to connect to server at %s\n %v", e.addr, e.err)
}

func (e *connectError) Unwrap() error { return e.err }

func serverAddr() string {
	addr := os.Getenv(AddrEnv)
	if addr == "" {
		addr = defaultAddr
	}
	return strings.TrimRight(addr, "/")
}

func keyPath(key string) string {
	return keyValuePath + "/" + url.PathEscape(key)
}

// send issues a request with an optional JSON body and decodes the JSON
// response into out. The HTTP status code is returned alongside.
func send(method, path string, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("Failed to encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	addr := serverAddr()
	req, err := http.NewRequest(method, addr+path, reader)
	if err != nil {
		return 0, fmt.Errorf("Failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return 0, &connectError{addr: addr, err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusBadRequest {
		return resp.StatusCode, fmt.Errorf("Server error: %s", resp.Status)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("Invalid response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

// sendCommand performs a single-command request and prints failures
func sendCommand(method, path string, body any) (engine.Result, bool) {
	var res engine.Result
	if _, err := send(method, path, body, &res); err != nil {
		output.Error(err.Error())
		return res, false
	}
	if !res.OK() {
		output.Result("", res)
		return res, false
	}
	return res, true
}
