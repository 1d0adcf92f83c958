package config

import (
	"time"
)

// Default connection values applied when neither the environment nor the
// config file sets a field.
const (
	DefaultHost           = "platform.strawberryfields.ai"
	DefaultPort           = 443
	DefaultRequestTimeout = 10 * time.Second
	DefaultPollInterval   = time.Second
)

// Settings is the resolved client configuration for connecting to the
// cloud service. It is produced by [GetSettings] from environment
// variables, the config file, and built-in defaults.
type Settings struct {
	// RefreshToken is the long-lived credential (cloud API key) used to
	// fetch access tokens.
	RefreshToken string

	// AccessToken is the short-lived JWT used to authenticate requests.
	// Usually empty in the config file; the client refreshes it on
	// demand.
	AccessToken string

	// Host is the hostname of the cloud API server.
	Host string

	// Port is the TCP port of the cloud API server.
	Port int

	// TLS controls whether requests use HTTPS.
	TLS bool

	// RequestTimeout bounds a single outbound HTTP request.
	RequestTimeout time.Duration

	// PollInterval is the default delay between job status polls.
	PollInterval time.Duration

	// FilePath is the config file the settings were loaded from and that
	// Save writes back to.
	FilePath string
}

// GetSettings loads, merges, and validates the client settings from all
// available sources in priority order (environment, config file, defaults).
//
// Returns a fully populated *Settings or an error if any source fails to
// load or the final settings fail validation.
func GetSettings() (*Settings, error) {
	return newSettingsBuilder().
		withEnv().
		withFile().
		withDefaults().
		build()
}

// HasCredentials reports whether the settings carry at least one token a
// connection could authenticate with.
func (s *Settings) HasCredentials() bool {
	return s.RefreshToken != "" || s.AccessToken != ""
}

func (s *Settings) validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return ErrInvalidPort
	}

	if s.RequestTimeout <= 0 || s.PollInterval <= 0 {
		return ErrInvalidTimeouts
	}

	if s.Host == "" {
		return ErrInvalidHost
	}

	return nil
}
