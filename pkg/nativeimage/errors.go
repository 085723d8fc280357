package nativeimage

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingRequiredField is wrapped by ConfigurationError when a
	// required configuration value is not set.
	ErrMissingRequiredField = errors.New("❌ missing required field")

	// ErrNilConfiguration is returned when Build is given no configuration.
	ErrNilConfiguration = errors.New("❌ nil build configuration")
)

// ConfigurationError reports a build configuration that cannot be turned
// into arguments.
type ConfigurationError struct {
	Field string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid build configuration: %s: %v", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
