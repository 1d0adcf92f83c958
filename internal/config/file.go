package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// defaultFilePath resolves the platform-specific location of the config
// file, e.g. ~/.config/qcc/config.json on Linux. Falls back to a dotfile in
// the working directory when the user config dir cannot be determined.
func defaultFilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".qcc.json"
	}
	return filepath.Join(dir, "qcc", "config.json")
}

// parseFile reads the JSON config file at path into a settings source.
// A missing file is not an error: it simply contributes nothing to the
// merge, which is the normal state before the first `qcc config set`.
func parseFile(path string) (*settingsSource, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	defer file.Close()

	var src settingsSource
	if err := json.NewDecoder(file).Decode(&src); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return &src, nil
}

// Save persists the settings to their config file, creating parent
// directories as needed. The file is written with 0600 permissions because
// it holds the refresh token.
func (s *Settings) Save() error {
	path := s.FilePath
	if path == "" {
		path = defaultFilePath()
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating config dir: %w", err)
		}
	}

	tls := s.TLS
	src := settingsSource{
		RefreshToken:   s.RefreshToken,
		AccessToken:    s.AccessToken,
		Host:           s.Host,
		Port:           s.Port,
		TLS:            &tls,
		RequestTimeout: Duration(s.RequestTimeout),
		PollInterval:   Duration(s.PollInterval),
	}

	payload, err := json.MarshalIndent(src, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding settings: %w", err)
	}

	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// Duration is a wrapper around time.Duration that supports unmarshaling
// from strings like "1h", "30s" in both JSON and environment variables.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalText lets caarlos0/env parse duration values from QCC_* vars.
func (d *Duration) UnmarshalText(b []byte) error {
	tmp, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
