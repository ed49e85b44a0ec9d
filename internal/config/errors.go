package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidSourceConfigs indicates an empty env file path.
	ErrInvalidSourceConfigs = errors.New("invalid source configuration")
)
