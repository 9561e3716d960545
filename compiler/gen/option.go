package gen

import (
	"errors"
	"log/slog"

	"github.com/syssam/membergen"
)

// Config is the configuration of a Runner.
type Config struct {
	// Workers is the number of classes processed concurrently.
	Workers int
	// Logger receives the debug and error records of the run.
	Logger *slog.Logger
}

// Option configures a Runner.
type Option func(*Config) error

// WithWorkers sets the number of classes processed concurrently.
// With one worker, the default, classes are processed in input order and get
// their prime multipliers in that order.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return membergen.NewConfigError("Workers", n, "must be at least 1")
		}
		c.Workers = n
		return nil
	}
}

// WithLogger sets the logger of the run.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return membergen.NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{Workers: 1, Logger: slog.Default()}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}
