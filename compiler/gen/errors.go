package gen

import (
	"errors"
	"strings"
)

// ErrSynthesisFailed indicates that a plugin failed while processing a class.
var ErrSynthesisFailed = errors.New("membergen: synthesis failed")

// SynthesisError represents a fatal plugin failure on a class.
type SynthesisError struct {
	Class string // Model class name
	Hook  string // Hook being run, e.g. "BaseClassGenerated"
	Cause error
}

// Error implements the error interface.
func (e *SynthesisError) Error() string {
	var b strings.Builder
	b.WriteString("membergen: synthesis error")
	if e.Class != "" {
		b.WriteString(" on class ")
		b.WriteString(e.Class)
	}
	if e.Hook != "" {
		b.WriteString(" in ")
		b.WriteString(e.Hook)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *SynthesisError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for SynthesisError.
func (e *SynthesisError) Is(target error) bool {
	return target == ErrSynthesisFailed
}

// NewSynthesisError creates a new SynthesisError.
func NewSynthesisError(class, hook string, cause error) *SynthesisError {
	return &SynthesisError{
		Class: class,
		Hook:  hook,
		Cause: cause,
	}
}

// IsSynthesisError reports whether the error is a SynthesisError.
func IsSynthesisError(err error) bool {
	var synErr *SynthesisError
	return errors.As(err, &synErr)
}
