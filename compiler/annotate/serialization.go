package annotate

import (
	"log/slog"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/membergen/compiler/model"
	"github.com/syssam/membergen/schema/column"
)

// Serialization decides the JSON annotations of a class. Every field gets a
// constant holding its name, and the accessors and constructor reference it.
type Serialization struct {
	log *slog.Logger
}

// NewSerialization returns a serialization decision engine.
func NewSerialization(opts ...Option) *Serialization {
	return &Serialization{log: newConfig(opts).log}
}

// ConstantName returns the name of the constant holding the name of the field.
func ConstantName(class, field string) string {
	return class + "Field" + field
}

// FieldConstant returns the static field naming f. The caller appends it to c.
func (s *Serialization) FieldConstant(c *model.Class, f *model.Field) *model.Field {
	return &model.Field{
		Name:   ConstantName(c.Name, f.Name),
		Static: true,
		Value:  jen.Lit(f.Name),
	}
}

// Getter returns the annotations of the getter of col.
func (s *Serialization) Getter(c *model.Class, col column.Column) Decision {
	var d Decision
	d.add(jsonRef(JSONGetter, "getter", ConstantName(c.Name, col.StructField())), ImportJSON)
	return d
}

// Setter returns the annotations of the setter of col. Setters of immutable
// classes are not annotated.
func (s *Serialization) Setter(c *model.Class, col column.Column) Decision {
	var d Decision
	if c.Immutable {
		return d
	}
	d.add(jsonRef(JSONSetter, "setter", ConstantName(c.Name, col.StructField())), ImportJSON)
	return d
}

// Constructor annotates the constructor of immutable or constructor based classes
// and each of its parameters. It reports if the constructor was annotated.
func (s *Serialization) Constructor(c *model.Class) bool {
	if !c.Immutable && !c.ConstructorBased {
		return false
	}
	ctor, ok := c.Constructor()
	if !ok {
		s.log.Debug("no constructor to annotate", "class", c.Name)
		return false
	}
	var d Decision
	d.add(model.Annotation{Name: JSONCreator, Key: KeyJSON, Value: "creator"}, ImportJSON)
	d.Apply(c, ctor)
	for _, p := range ctor.Params {
		ref := jsonRef(JSONProperty, "property", ConstantName(c.Name, column.Pascal(p.Name)))
		p.Annotate(ref)
	}
	s.log.Debug("annotated constructor", "class", c.Name, "member", ctor.Name, "params", len(ctor.Params))
	return true
}

func jsonRef(name, kind, constant string) model.Annotation {
	return model.Annotation{
		Name:  name,
		Key:   KeyJSON,
		Value: kind + "=" + constant,
		Args:  []model.Arg{{Name: "value", Value: constant}},
	}
}
