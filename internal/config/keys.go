package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Setting names accepted by the CLI config commands. Names are matched
// case-insensitively and reported in their canonical upper-case form.
const (
	KeyRefreshToken   = "REFRESH_TOKEN"
	KeyAccessToken    = "ACCESS_TOKEN"
	KeyHost           = "HOST"
	KeyPort           = "PORT"
	KeyTLS            = "TLS"
	KeyRequestTimeout = "REQUEST_TIMEOUT"
	KeyPollInterval   = "POLL_INTERVAL"
)

// Keys returns the canonical setting names in display order.
func Keys() []string {
	return []string{
		KeyRefreshToken,
		KeyAccessToken,
		KeyHost,
		KeyPort,
		KeyTLS,
		KeyRequestTimeout,
		KeyPollInterval,
	}
}

// Map returns the settings as a name-to-value mapping using canonical key
// names, suitable for JSON display by `qcc config list`.
func (s *Settings) Map() map[string]any {
	return map[string]any{
		KeyRefreshToken:   s.RefreshToken,
		KeyAccessToken:    s.AccessToken,
		KeyHost:           s.Host,
		KeyPort:           s.Port,
		KeyTLS:            s.TLS,
		KeyRequestTimeout: s.RequestTimeout.String(),
		KeyPollInterval:   s.PollInterval.String(),
	}
}

// Value returns the current value of the named setting. The name is matched
// case-insensitively. Returns [ErrUnknownKey] for names not listed by
// [Keys].
func (s *Settings) Value(name string) (any, error) {
	v, ok := s.Map()[strings.ToUpper(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q must be one of %v", ErrUnknownKey, name, Keys())
	}
	return v, nil
}

// Set parses value and assigns it to the named setting. String-typed
// settings take the value verbatim; PORT must be an integer, TLS a boolean,
// and the timeout settings Go duration strings. The change is not persisted
// until [Settings.Save] is called.
func (s *Settings) Set(name, value string) error {
	switch strings.ToUpper(name) {
	case KeyRefreshToken:
		s.RefreshToken = value
	case KeyAccessToken:
		s.AccessToken = value
	case KeyHost:
		s.Host = value
	case KeyPort:
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("parse %s: %w", KeyPort, err)
		}
		s.Port = port
	case KeyTLS:
		tls, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("parse %s: %w", KeyTLS, err)
		}
		s.TLS = tls
	case KeyRequestTimeout:
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("parse %s: %w", KeyRequestTimeout, err)
		}
		s.RequestTimeout = d
	case KeyPollInterval:
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("parse %s: %w", KeyPollInterval, err)
		}
		s.PollInterval = d
	default:
		return fmt.Errorf("%w: %q must be one of %v", ErrUnknownKey, name, Keys())
	}

	return s.validate()
}
