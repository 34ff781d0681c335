package e2e

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/miniapp/status":
			_, _ = fmt.Fprint(w, `{"status":"active","days_left":3,"servers":[{"id":1,"name":"Amsterdam"}]}`)
		case "/api/miniapp/servers":
			_, _ = fmt.Fprint(w, `{"servers":[{"id":1,"name":"Amsterdam"}]}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	configPath := filepath.Join(home, "vpnc.toml")
	stdout, stderr, err := runVPNC(t, binaryPath, home, nil, "init", "--config", configPath)
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, configPath)

	env := []string{
		"VPNC_API_BASE_URL=" + server.URL,
		"VPNC_INIT_DATA=query_id=1&hash=abc",
	}
	stdout, stderr, err = runVPNC(t, binaryPath, home, env, "status", "--json", "--config", configPath)
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "\"state\": \"active\"")
	assert.Contains(t, stdout, "\"name\": \"Amsterdam\"")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "vpnc-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/vpnc")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build vpnc binary: %s", string(output))
	return binaryPath
}

func runVPNC(t *testing.T, binaryPath, home string, env []string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home, "XDG_CONFIG_HOME="+filepath.Join(home, ".config"))
	cmd.Env = append(cmd.Env, env...)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
