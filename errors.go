package membergen

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure classes of a generation run.
var (
	// ErrPrimeSpaceExhausted is returned when no prime multiplier below MaxInt32 is left.
	ErrPrimeSpaceExhausted = errors.New("membergen: prime space exhausted")

	// ErrInvalidConfig is returned for unusable plugin configuration.
	ErrInvalidConfig = errors.New("membergen: invalid configuration")
)

// ExhaustedError is returned when the next prime multiplier would not fit a
// 32-bit signed integer. It is fatal for the run and must not be retried.
type ExhaustedError struct {
	Last int64 // last prime issued
	Next int64 // prime that did not fit
}

// Error returns the error string.
func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("membergen: prime space exhausted: next prime %d after %d reaches MaxInt32", e.Next, e.Last)
}

// Is reports whether the target error matches ErrPrimeSpaceExhausted.
func (e *ExhaustedError) Is(err error) bool {
	return err == ErrPrimeSpaceExhausted
}

// NewExhaustedError returns a new ExhaustedError.
func NewExhaustedError(last, next int64) *ExhaustedError {
	return &ExhaustedError{Last: last, Next: next}
}

// IsExhaustedError returns true if the error is an ExhaustedError.
func IsExhaustedError(err error) bool {
	if err == nil {
		return false
	}
	var e *ExhaustedError
	return errors.As(err, &e) || errors.Is(err, ErrPrimeSpaceExhausted)
}

// ConfigError represents an invalid configuration option.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error returns the error string.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("membergen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("membergen: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target error matches ErrInvalidConfig.
func (e *ConfigError) Is(err error) bool {
	return err == ErrInvalidConfig
}

// NewConfigError returns a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{Option: option, Value: value, Message: message}
}

// IsConfigError returns true if the error is a ConfigError.
func IsConfigError(err error) bool {
	if err == nil {
		return false
	}
	var e *ConfigError
	return errors.As(err, &e)
}
