package gen

import (
	"fmt"
	"log/slog"

	"github.com/syssam/membergen"
	"github.com/syssam/membergen/compiler/annotate"
	"github.com/syssam/membergen/compiler/model"
	"github.com/syssam/membergen/compiler/prime"
	"github.com/syssam/membergen/schema/column"
)

// Names of the core plugins in configuration documents.
const (
	EqualsHashCodeName = "equalsHashCode"
	ToStringName       = "toString"
	JSONName           = "json"
	ValidationName     = "validation"
)

// EqualsHashCodePlugin adds Equal and HashCode to every model class. Each
// HashCode gets its own prime multiplier.
type EqualsHashCodePlugin struct {
	Adapter
	failure
	equal EqualEngine
	hash  HashEngine
}

var (
	_ Plugin = (*EqualsHashCodePlugin)(nil)
	_ Failer = (*EqualsHashCodePlugin)(nil)
)

// NewEqualsHashCodePlugin returns the plugin drawing its multipliers from primes.
func NewEqualsHashCodePlugin(props Properties, primes prime.Source, log *slog.Logger) *EqualsHashCodePlugin {
	fromRoot := props.Bool(UseHashFromRoot)
	return &EqualsHashCodePlugin{
		equal: EqualEngine{FromRoot: fromRoot},
		hash:  HashEngine{Primes: primes, FromRoot: fromRoot, Logger: log},
	}
}

// Name returns the configuration name of the plugin.
func (*EqualsHashCodePlugin) Name() string { return EqualsHashCodeName }

// BaseClassGenerated adds the members to the base model class.
func (p *EqualsHashCodePlugin) BaseClassGenerated(c *model.Class, cols []column.Column) bool {
	return p.generate(c, cols)
}

// BlobClassGenerated adds the members to the BLOB model class.
func (p *EqualsHashCodePlugin) BlobClassGenerated(c *model.Class, cols []column.Column) bool {
	return p.generate(c, cols)
}

// PrimaryKeyClassGenerated adds the members to the primary key model class.
func (p *EqualsHashCodePlugin) PrimaryKeyClassGenerated(c *model.Class, cols []column.Column) bool {
	return p.generate(c, cols)
}

func (p *EqualsHashCodePlugin) generate(c *model.Class, cols []column.Column) bool {
	if p.Err() != nil {
		return false
	}
	// HashCode goes first: an exhausted prime source leaves the class untouched.
	if _, err := p.hash.Generate(c, cols); err != nil {
		return p.fail(err)
	}
	p.equal.Generate(c, cols)
	return true
}

// ToStringPlugin adds String to every model class.
type ToStringPlugin struct {
	Adapter
	engine StringEngine
}

var _ Plugin = (*ToStringPlugin)(nil)

// NewToStringPlugin returns the plugin configured by props.
func NewToStringPlugin(props Properties) *ToStringPlugin {
	return &ToStringPlugin{
		engine: StringEngine{
			FromRoot:     props.Bool(UseStringFromRoot),
			IgnoreStatic: props.Bool(IgnoreStaticFieldsInString),
			AppendHash:   props.Bool(AppendHashInString),
		},
	}
}

// Name returns the configuration name of the plugin.
func (*ToStringPlugin) Name() string { return ToStringName }

// BaseClassGenerated adds String to the base model class.
func (p *ToStringPlugin) BaseClassGenerated(c *model.Class, _ []column.Column) bool {
	p.engine.Generate(c)
	return true
}

// BlobClassGenerated adds String to the BLOB model class.
func (p *ToStringPlugin) BlobClassGenerated(c *model.Class, _ []column.Column) bool {
	p.engine.Generate(c)
	return true
}

// PrimaryKeyClassGenerated adds String to the primary key model class.
func (p *ToStringPlugin) PrimaryKeyClassGenerated(c *model.Class, _ []column.Column) bool {
	p.engine.Generate(c)
	return true
}

// JSONPlugin adds a constant naming each field and references it from JSON
// directives on the accessors and the constructor.
type JSONPlugin struct {
	Adapter
	ser *annotate.Serialization
}

var _ Plugin = (*JSONPlugin)(nil)

// NewJSONPlugin returns the JSON annotation plugin.
func NewJSONPlugin(log *slog.Logger) *JSONPlugin {
	return &JSONPlugin{ser: annotate.NewSerialization(annotate.WithLogger(log))}
}

// Name returns the configuration name of the plugin.
func (*JSONPlugin) Name() string { return JSONName }

// FieldGenerated adds the constant naming f.
func (p *JSONPlugin) FieldGenerated(f *model.Field, c *model.Class, _ column.Column) bool {
	if !f.Static {
		c.AddField(p.ser.FieldConstant(c, f))
	}
	return true
}

// GetterGenerated annotates the getter.
func (p *JSONPlugin) GetterGenerated(m *model.Member, c *model.Class, col column.Column) bool {
	p.ser.Getter(c, col).Apply(c, m)
	return true
}

// SetterGenerated annotates the setter of mutable classes.
func (p *JSONPlugin) SetterGenerated(m *model.Member, c *model.Class, col column.Column) bool {
	p.ser.Setter(c, col).Apply(c, m)
	return true
}

// BaseClassGenerated annotates the constructor of immutable and constructor
// based classes.
func (p *JSONPlugin) BaseClassGenerated(c *model.Class, _ []column.Column) bool {
	p.ser.Constructor(c)
	return true
}

// ValidationPlugin adds validation constraints to fields, or to getters when
// configured with AnnotateAccessorsInsteadOfFields.
type ValidationPlugin struct {
	Adapter
	failure
	rules     *annotate.Validation
	accessors bool
}

var (
	_ Plugin = (*ValidationPlugin)(nil)
	_ Failer = (*ValidationPlugin)(nil)
)

// NewValidationPlugin returns the plugin configured by props.
func NewValidationPlugin(props Properties, log *slog.Logger) (*ValidationPlugin, error) {
	match := annotate.EmailMatchLiteral
	if props.Bool(MatchEmailAsPattern) {
		match = annotate.EmailMatchPattern
	}
	rules, err := annotate.NewValidation(annotate.WithLogger(log), annotate.WithEmailMatch(match))
	if err != nil {
		return nil, err
	}
	return &ValidationPlugin{rules: rules, accessors: props.Bool(AnnotateAccessorsInsteadOfFields)}, nil
}

// Name returns the configuration name of the plugin.
func (*ValidationPlugin) Name() string { return ValidationName }

// FieldGenerated annotates the field unless accessors are annotated.
func (p *ValidationPlugin) FieldGenerated(f *model.Field, c *model.Class, col column.Column) bool {
	if p.accessors {
		return true
	}
	return p.annotate(f, c, col)
}

// GetterGenerated annotates the getter when accessors are annotated.
func (p *ValidationPlugin) GetterGenerated(m *model.Member, c *model.Class, col column.Column) bool {
	if !p.accessors {
		return true
	}
	return p.annotate(m, c, col)
}

func (p *ValidationPlugin) annotate(to model.Annotatable, c *model.Class, col column.Column) bool {
	d, err := p.rules.Decide(col)
	if err != nil {
		return p.fail(fmt.Errorf("validation of %s.%s: %w", c.Name, col.Name(), err))
	}
	d.Apply(c, to)
	return true
}

// NewPlugins builds the chain of core plugins listed in configs, in order.
// A nil logger uses slog.Default.
func NewPlugins(configs PluginConfigs, primes prime.Source, log *slog.Logger) (*Chain, error) {
	if log == nil {
		log = slog.Default()
	}
	chain := NewChain()
	for _, pc := range configs {
		var p Plugin
		switch pc.Name {
		case EqualsHashCodeName:
			if primes == nil {
				return nil, membergen.NewConfigError(pc.Name, nil, "missing prime source")
			}
			p = NewEqualsHashCodePlugin(pc.Properties, primes, log)
		case ToStringName:
			p = NewToStringPlugin(pc.Properties)
		case JSONName:
			p = NewJSONPlugin(log)
		case ValidationName:
			vp, err := NewValidationPlugin(pc.Properties, log)
			if err != nil {
				return nil, err
			}
			p = vp
		default:
			return nil, membergen.NewConfigError("plugin", pc.Name, "unknown plugin")
		}
		chain.Use(p)
	}
	return chain, nil
}
