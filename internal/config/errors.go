package config

import "errors"

// Validation errors returned by [GetSettings] when the merged settings are
// unusable.
var (
	// ErrInvalidPort indicates a port outside the 1-65535 range.
	ErrInvalidPort = errors.New("port must be between 1 and 65535")
	// ErrInvalidHost indicates an empty API hostname.
	ErrInvalidHost = errors.New("host must not be empty")
	// ErrInvalidTimeouts indicates a non-positive request timeout or poll
	// interval.
	ErrInvalidTimeouts = errors.New("timeouts must be positive")
	// ErrUnknownKey indicates a setting name the CLI does not recognise.
	ErrUnknownKey = errors.New("unknown setting")
)
