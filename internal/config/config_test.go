package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tempConfigPath points QCC_CONFIG at a file inside a fresh temp dir so
// tests never touch the real user config.
func tempConfigPath(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	t.Setenv("QCC_CONFIG", path)
	return path
}

func TestGetSettings_Defaults(t *testing.T) {
	tempConfigPath(t)

	settings, err := GetSettings()
	require.NoError(t, err)

	assert.Equal(t, DefaultHost, settings.Host)
	assert.Equal(t, DefaultPort, settings.Port)
	assert.True(t, settings.TLS)
	assert.Equal(t, DefaultRequestTimeout, settings.RequestTimeout)
	assert.Equal(t, DefaultPollInterval, settings.PollInterval)
	assert.False(t, settings.HasCredentials())
}

func TestGetSettings_EnvOverridesFile(t *testing.T) {
	path := tempConfigPath(t)
	fileBody := `{
		"refresh_token": "from-file",
		"host": "file.example.com",
		"port": 8443
	}`
	require.NoError(t, os.WriteFile(path, []byte(fileBody), 0o600))

	t.Setenv("QCC_HOST", "env.example.com")

	settings, err := GetSettings()
	require.NoError(t, err)

	// Env wins for the fields it sets; the file fills the rest.
	assert.Equal(t, "env.example.com", settings.Host)
	assert.Equal(t, "from-file", settings.RefreshToken)
	assert.Equal(t, 8443, settings.Port)
}

func TestGetSettings_FileOverridesDefaults(t *testing.T) {
	path := tempConfigPath(t)
	fileBody := `{
		"tls": false,
		"port": 80,
		"request_timeout": "30s",
		"poll_interval": "5s"
	}`
	require.NoError(t, os.WriteFile(path, []byte(fileBody), 0o600))

	settings, err := GetSettings()
	require.NoError(t, err)

	assert.False(t, settings.TLS, "explicit tls=false must survive the merge with the default true")
	assert.Equal(t, 80, settings.Port)
	assert.Equal(t, 30*time.Second, settings.RequestTimeout)
	assert.Equal(t, 5*time.Second, settings.PollInterval)
	assert.Equal(t, DefaultHost, settings.Host)
}

func TestGetSettings_EnvDurations(t *testing.T) {
	tempConfigPath(t)
	t.Setenv("QCC_REQUEST_TIMEOUT", "1m")
	t.Setenv("QCC_POLL_INTERVAL", "250ms")

	settings, err := GetSettings()
	require.NoError(t, err)

	assert.Equal(t, time.Minute, settings.RequestTimeout)
	assert.Equal(t, 250*time.Millisecond, settings.PollInterval)
}

func TestGetSettings_InvalidFile(t *testing.T) {
	path := tempConfigPath(t)
	require.NoError(t, os.WriteFile(path, []byte(`{ not json }`), 0o600))

	_, err := GetSettings()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding config file")
}

func TestGetSettings_InvalidPort(t *testing.T) {
	tempConfigPath(t)
	t.Setenv("QCC_PORT", "99999")

	_, err := GetSettings()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPort)
}

func TestSettings_SaveRoundTrip(t *testing.T) {
	tempConfigPath(t)

	settings, err := GetSettings()
	require.NoError(t, err)

	settings.RefreshToken = "my-api-key"
	settings.Host = "api.example.com"
	settings.Port = 8080
	settings.TLS = false
	settings.RequestTimeout = 20 * time.Second
	settings.PollInterval = 2 * time.Second
	require.NoError(t, settings.Save())

	reloaded, err := GetSettings()
	require.NoError(t, err)

	assert.Equal(t, settings.RefreshToken, reloaded.RefreshToken)
	assert.Equal(t, settings.Host, reloaded.Host)
	assert.Equal(t, settings.Port, reloaded.Port)
	assert.Equal(t, settings.TLS, reloaded.TLS)
	assert.Equal(t, settings.RequestTimeout, reloaded.RequestTimeout)
	assert.Equal(t, settings.PollInterval, reloaded.PollInterval)
}

func TestSettings_SaveCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deeply", "nested", "config.json")
	t.Setenv("QCC_CONFIG", path)

	settings, err := GetSettings()
	require.NoError(t, err)
	settings.AccessToken = "token"
	require.NoError(t, settings.Save())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
