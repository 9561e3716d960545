package gen

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/syssam/membergen"
	"github.com/syssam/membergen/compiler/model"
	"github.com/syssam/membergen/schema/column"
)

// ClassKind tells which class hook a Job runs.
type ClassKind uint8

// Class kinds.
const (
	BaseClass ClassKind = iota
	BlobClass
	PrimaryKeyClass
)

// String returns the name of the class hook.
func (k ClassKind) String() string {
	switch k {
	case BlobClass:
		return "BlobClassGenerated"
	case PrimaryKeyClass:
		return "PrimaryKeyClassGenerated"
	default:
		return "BaseClassGenerated"
	}
}

// Job is one model class handed to the plugins.
type Job struct {
	Class *model.Class
	Kind  ClassKind
	// Columns passed to the class hook. Nil uses Class.Columns.
	Columns []column.Column
}

// Runner drives the plugin hooks over model classes the way the host pipeline
// does: the field, getter and setter hooks of each column, then the class hook.
// Getters and setters are the members named "Get<Field>" and "Set<Field>".
type Runner struct {
	plugin Plugin
	cfg    *Config
}

// NewRunner returns a runner calling p.
func NewRunner(p Plugin, opts ...Option) (*Runner, error) {
	if p == nil {
		return nil, membergen.NewConfigError("Plugin", nil, "plugin cannot be nil")
	}
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return &Runner{plugin: p, cfg: cfg}, nil
}

// Run processes the jobs. It stops at the first fatal plugin error, which is
// returned as a *SynthesisError, or when ctx is done. Cancellation is checked
// between classes.
func (r *Runner) Run(ctx context.Context, jobs ...*Job) error {
	if r.cfg.Workers == 1 {
		for _, job := range jobs {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := r.run(job); err != nil {
				return err
			}
		}
		return nil
	}
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(r.cfg.Workers)
	for _, job := range jobs {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return r.run(job)
			}
		})
	}
	return eg.Wait()
}

func (r *Runner) run(job *Job) error {
	c := job.Class
	cols := job.Columns
	if cols == nil {
		cols = c.Columns
	}
	r.cfg.Logger.Debug("run class", "class", c.Name, "hook", job.Kind.String(), "columns", len(cols))
	for _, col := range cols {
		name := col.StructField()
		if f, ok := c.Field(name); ok {
			if err := r.check(c, "FieldGenerated", r.plugin.FieldGenerated(f, c, col)); err != nil {
				return err
			}
		}
		if m, ok := c.Member("Get" + name); ok {
			if err := r.check(c, "GetterGenerated", r.plugin.GetterGenerated(m, c, col)); err != nil {
				return err
			}
		}
		if m, ok := c.Member("Set" + name); ok {
			if err := r.check(c, "SetterGenerated", r.plugin.SetterGenerated(m, c, col)); err != nil {
				return err
			}
		}
	}
	var ok bool
	switch job.Kind {
	case BlobClass:
		ok = r.plugin.BlobClassGenerated(c, cols)
	case PrimaryKeyClass:
		ok = r.plugin.PrimaryKeyClassGenerated(c, cols)
	default:
		ok = r.plugin.BaseClassGenerated(c, cols)
	}
	return r.check(c, job.Kind.String(), ok)
}

// check returns the fatal error of the plugin after a hook returned false.
// A plugin may stop the chain without failing.
func (r *Runner) check(c *model.Class, hook string, ok bool) error {
	if ok {
		return nil
	}
	f, isFailer := r.plugin.(Failer)
	if !isFailer || f.Err() == nil {
		return nil
	}
	err := NewSynthesisError(c.Name, hook, f.Err())
	r.cfg.Logger.Error("generation aborted", "class", c.Name, "hook", hook, slog.Any("error", err.Cause))
	return err
}
