package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// settingsSource is the mergeable form of [Settings]. Optional booleans are
// pointers so that an explicit "false" from a higher-priority source is not
// clobbered by a lower-priority "true" during the mergo pass.
type settingsSource struct {
	RefreshToken   string   `env:"REFRESH_TOKEN" json:"refresh_token,omitempty"`
	AccessToken    string   `env:"ACCESS_TOKEN" json:"access_token,omitempty"`
	Host           string   `env:"HOST" json:"host,omitempty"`
	Port           int      `env:"PORT" json:"port,omitempty"`
	TLS            *bool    `env:"TLS" json:"tls,omitempty"`
	RequestTimeout Duration `env:"REQUEST_TIMEOUT" json:"request_timeout,omitempty"`
	PollInterval   Duration `env:"POLL_INTERVAL" json:"poll_interval,omitempty"`

	// FilePath points at the JSON config file. Populated only from the
	// environment (QCC_CONFIG); never written back to the file itself.
	FilePath string `env:"CONFIG" json:"-"`
}

type settingsBuilder struct {
	sources []*settingsSource
	err     error
}

func newSettingsBuilder() *settingsBuilder {
	return &settingsBuilder{
		sources: make([]*settingsSource, 0, 3),
	}
}

func (b *settingsBuilder) build() (*Settings, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building settings: %w", b.err)
	}

	merged := new(settingsSource)
	for _, src := range b.sources {
		if err := mergo.Merge(merged, src); err != nil {
			return nil, fmt.Errorf("error merging settings: %w", err)
		}
	}

	settings := &Settings{
		RefreshToken:   merged.RefreshToken,
		AccessToken:    merged.AccessToken,
		Host:           merged.Host,
		Port:           merged.Port,
		TLS:            merged.TLS == nil || *merged.TLS,
		RequestTimeout: time.Duration(merged.RequestTimeout),
		PollInterval:   time.Duration(merged.PollInterval),
		FilePath:       merged.FilePath,
	}
	if settings.FilePath == "" {
		settings.FilePath = defaultFilePath()
	}

	return settings, settings.validate()
}

func (b *settingsBuilder) withEnv() *settingsBuilder {
	envSrc := &settingsSource{}
	if err := parseEnv(envSrc); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.sources = append(b.sources, envSrc)
	return b
}

func (b *settingsBuilder) withFile() *settingsBuilder {
	path := defaultFilePath()
	for _, src := range b.sources {
		if src.FilePath != "" {
			path = src.FilePath
		}
	}

	fileSrc, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	if fileSrc != nil {
		b.sources = append(b.sources, fileSrc)
	}

	return b
}

func (b *settingsBuilder) withDefaults() *settingsBuilder {
	tls := true
	b.sources = append(b.sources, &settingsSource{
		Host:           DefaultHost,
		Port:           DefaultPort,
		TLS:            &tls,
		RequestTimeout: Duration(DefaultRequestTimeout),
		PollInterval:   Duration(DefaultPollInterval),
	})
	return b
}
