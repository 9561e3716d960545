// Package annotate decides the serialization and validation annotations of generated
// model fields and accessors. Decisions are computed from a column and the class
// flags alone, so evaluating the same input twice yields the same Decision.
package annotate

import (
	"log/slog"

	"github.com/syssam/membergen/compiler/model"
)

// Import paths registered by the annotations.
const (
	ImportJSON      = "encoding/json"
	ImportValidator = "github.com/go-playground/validator/v10"
)

// Annotation names.
const (
	NotNull      = "NotNull"
	NotBlank     = "NotBlank"
	Size         = "Size"
	Email        = "Email"
	Optional     = "Optional"
	JSONGetter   = "JSONGetter"
	JSONSetter   = "JSONSetter"
	JSONCreator  = "JSONCreator"
	JSONProperty = "JSONProperty"
)

// Annotation keys, used as struct tag keys on fields and directive keys elsewhere.
const (
	KeyJSON     = "json"
	KeyValidate = "validate"
)

// Decision is the outcome of evaluating the rules against one column.
type Decision struct {
	// Annotations to attach, in rule order.
	Annotations []model.Annotation
	// Imports the annotations need, in rule order and without duplicates.
	Imports []string
}

// Empty reports if no rule matched.
func (d Decision) Empty() bool { return len(d.Annotations) == 0 }

// Apply registers the imports on the class and attaches the annotations to the
// element. Imports already registered on the class are not added twice.
func (d Decision) Apply(c *model.Class, to model.Annotatable) {
	for _, path := range d.Imports {
		c.AddImport(path)
	}
	to.Annotate(d.Annotations...)
}

func (d *Decision) add(a model.Annotation, path string) {
	d.Annotations = append(d.Annotations, a)
	for _, p := range d.Imports {
		if p == path {
			return
		}
	}
	d.Imports = append(d.Imports, path)
}

type config struct {
	log   *slog.Logger
	email EmailMatch
}

// Option configures the decision engines.
type Option func(*config)

// WithLogger sets the logger used for debug records.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

// WithEmailMatch sets how raw column names are checked for the email rule.
func WithEmailMatch(m EmailMatch) Option {
	return func(c *config) {
		c.email = m
	}
}

func newConfig(opts []Option) *config {
	c := &config{log: slog.Default(), email: EmailMatchLiteral}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
