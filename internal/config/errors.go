package config

import "errors"

var (
	// ErrInvalidLogLevel is returned when the log level is not a recognised zap level.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidLogEncoding is returned when the log encoding is neither json nor console.
	ErrInvalidLogEncoding = errors.New("log encoding must be json or console")
	// ErrNoItems is returned when a YAML file declares an items section without entries.
	ErrNoItems = errors.New("items section must contain at least one mail item")
)
