package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantacloud/qcc/internal/config"
	"github.com/quantacloud/qcc/internal/logger"
)

// newTestCLI builds a CLI over a temp config file and captured output.
func newTestCLI(t *testing.T) (*CLI, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	t.Setenv("QCC_CONFIG", path)

	settings, err := config.GetSettings()
	require.NoError(t, err)

	var stdout, stderr bytes.Buffer
	return New(settings, "test", logger.Nop(), &stdout, &stderr), &stdout, &stderr
}

func TestRun_Version(t *testing.T) {
	cli, stdout, _ := newTestCLI(t)

	require.NoError(t, cli.Run(context.Background(), []string{"version"}))
	assert.Equal(t, "qcc version test\n", stdout.String())
}

func TestRun_UnknownCommand(t *testing.T) {
	cli, _, stderr := newTestCLI(t)

	err := cli.Run(context.Background(), []string{"frobnicate"})

	require.Error(t, err)
	assert.Contains(t, stderr.String(), "frobnicate")
	assert.Contains(t, stderr.String(), "usage:")
}

func TestRun_NoArgs(t *testing.T) {
	cli, _, stderr := newTestCLI(t)

	require.Error(t, cli.Run(context.Background(), nil))
	assert.Contains(t, stderr.String(), "usage:")
}

func TestRun_ConfigGet(t *testing.T) {
	cli, stdout, _ := newTestCLI(t)

	require.NoError(t, cli.Run(context.Background(), []string{"config", "get", "host"}))
	assert.Contains(t, stdout.String(), config.DefaultHost)
}

func TestRun_ConfigGet_UnknownKey(t *testing.T) {
	cli, _, stderr := newTestCLI(t)

	err := cli.Run(context.Background(), []string{"config", "get", "flux_capacitor"})

	require.Error(t, err)
	assert.Contains(t, stderr.String(), "flux_capacitor")
}

func TestRun_ConfigSet_Persists(t *testing.T) {
	cli, stdout, _ := newTestCLI(t)

	err := cli.Run(context.Background(), []string{"config", "set", "refresh_token", "my-api-key"})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Saved refresh_token")

	// The change must be visible to a fresh settings load.
	reloaded, err := config.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, "my-api-key", reloaded.RefreshToken)

	raw, err := os.ReadFile(reloaded.FilePath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "my-api-key")
}

func TestRun_ConfigSet_InvalidValue(t *testing.T) {
	cli, _, _ := newTestCLI(t)

	err := cli.Run(context.Background(), []string{"config", "set", "port", "not-a-port"})
	require.Error(t, err)
}

func TestRun_ConfigList(t *testing.T) {
	cli, stdout, _ := newTestCLI(t)

	require.NoError(t, cli.Run(context.Background(), []string{"config", "list"}))

	for _, key := range config.Keys() {
		assert.Contains(t, stdout.String(), key)
	}
}

func TestRun_Ping_NoCredentials(t *testing.T) {
	cli, _, stderr := newTestCLI(t)

	err := cli.Run(context.Background(), []string{"ping"})

	require.Error(t, err)
	assert.Contains(t, stderr.String(), "ERROR")
}
