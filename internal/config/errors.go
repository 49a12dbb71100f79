package config

import "errors"

var (
	// ErrInvalidStorageConfigs is returned when the database DSN is missing.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs")

	// ErrInvalidAppConfigs is returned when token signing parameters are
	// incomplete.
	ErrInvalidAppConfigs = errors.New("invalid app configs")

	// ErrInvalidServerConfigs is returned when no HTTP listen address is set.
	ErrInvalidServerConfigs = errors.New("invalid server configs")
)
