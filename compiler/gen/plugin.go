package gen

import (
	"sync"

	"github.com/syssam/membergen/compiler/model"
	"github.com/syssam/membergen/schema/column"
)

type (
	// Plugin is notified by the host pipeline as it generates model classes.
	// Every hook returns whether the next plugin should process the artifact.
	Plugin interface {
		// Name returns the configuration name of the plugin.
		Name() string
		// BaseClassGenerated is called once the base model class of a table is built.
		BaseClassGenerated(c *model.Class, cols []column.Column) bool
		// BlobClassGenerated is called for the model class holding the BLOB columns.
		BlobClassGenerated(c *model.Class, cols []column.Column) bool
		// PrimaryKeyClassGenerated is called for the model class of a composite primary key.
		PrimaryKeyClassGenerated(c *model.Class, cols []column.Column) bool
		// FieldGenerated is called for the field of each column.
		FieldGenerated(f *model.Field, c *model.Class, col column.Column) bool
		// GetterGenerated is called for the getter of each column.
		GetterGenerated(m *model.Member, c *model.Class, col column.Column) bool
		// SetterGenerated is called for the setter of each column.
		SetterGenerated(m *model.Member, c *model.Class, col column.Column) bool
	}

	// Failer is implemented by plugins that can fail fatally. A failed plugin
	// returns false from the hook and reports the cause through Err.
	Failer interface {
		Err() error
	}

	// Adapter implements the hooks of Plugin as no-ops that return true.
	// Plugins embed it and override the hooks they need.
	Adapter struct{}
)

// BaseClassGenerated returns true.
func (Adapter) BaseClassGenerated(*model.Class, []column.Column) bool { return true }

// BlobClassGenerated returns true.
func (Adapter) BlobClassGenerated(*model.Class, []column.Column) bool { return true }

// PrimaryKeyClassGenerated returns true.
func (Adapter) PrimaryKeyClassGenerated(*model.Class, []column.Column) bool { return true }

// FieldGenerated returns true.
func (Adapter) FieldGenerated(*model.Field, *model.Class, column.Column) bool { return true }

// GetterGenerated returns true.
func (Adapter) GetterGenerated(*model.Member, *model.Class, column.Column) bool { return true }

// SetterGenerated returns true.
func (Adapter) SetterGenerated(*model.Member, *model.Class, column.Column) bool { return true }

// failure records the first fatal error of a plugin.
type failure struct {
	mu  sync.Mutex
	err error
}

// Err returns the first fatal error of the plugin.
func (f *failure) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// fail records err and returns false, so hooks can "return p.fail(err)".
func (f *failure) fail(err error) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err == nil {
		f.err = err
	}
	return false
}

// Chain calls its plugins in order and stops at the first one returning false.
type Chain struct {
	plugins []Plugin
}

var (
	_ Plugin = (*Chain)(nil)
	_ Failer = (*Chain)(nil)
)

// NewChain returns a chain of the given plugins.
func NewChain(plugins ...Plugin) *Chain {
	return &Chain{plugins: plugins}
}

// Name returns "chain".
func (*Chain) Name() string { return "chain" }

// Plugins returns the plugins of the chain, in call order.
func (ch *Chain) Plugins() []Plugin { return ch.plugins }

// Use appends plugins to the chain.
func (ch *Chain) Use(plugins ...Plugin) { ch.plugins = append(ch.plugins, plugins...) }

// Err returns the first fatal error reported by a plugin of the chain.
func (ch *Chain) Err() error {
	for _, p := range ch.plugins {
		if f, ok := p.(Failer); ok {
			if err := f.Err(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (ch *Chain) each(fn func(Plugin) bool) bool {
	for _, p := range ch.plugins {
		if !fn(p) {
			return false
		}
	}
	return true
}

// BaseClassGenerated calls BaseClassGenerated of each plugin.
func (ch *Chain) BaseClassGenerated(c *model.Class, cols []column.Column) bool {
	return ch.each(func(p Plugin) bool { return p.BaseClassGenerated(c, cols) })
}

// BlobClassGenerated calls BlobClassGenerated of each plugin.
func (ch *Chain) BlobClassGenerated(c *model.Class, cols []column.Column) bool {
	return ch.each(func(p Plugin) bool { return p.BlobClassGenerated(c, cols) })
}

// PrimaryKeyClassGenerated calls PrimaryKeyClassGenerated of each plugin.
func (ch *Chain) PrimaryKeyClassGenerated(c *model.Class, cols []column.Column) bool {
	return ch.each(func(p Plugin) bool { return p.PrimaryKeyClassGenerated(c, cols) })
}

// FieldGenerated calls FieldGenerated of each plugin.
func (ch *Chain) FieldGenerated(f *model.Field, c *model.Class, col column.Column) bool {
	return ch.each(func(p Plugin) bool { return p.FieldGenerated(f, c, col) })
}

// GetterGenerated calls GetterGenerated of each plugin.
func (ch *Chain) GetterGenerated(m *model.Member, c *model.Class, col column.Column) bool {
	return ch.each(func(p Plugin) bool { return p.GetterGenerated(m, c, col) })
}

// SetterGenerated calls SetterGenerated of each plugin.
func (ch *Chain) SetterGenerated(m *model.Member, c *model.Class, col column.Column) bool {
	return ch.each(func(p Plugin) bool { return p.SetterGenerated(m, c, col) })
}
