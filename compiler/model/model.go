// Package model holds the mutable in-memory representation of one generated model
// struct. The host pipeline owns a Class; synthesizers append fields, members,
// annotations and imports to it, and never remove or reorder what is already there.
package model

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/membergen/schema/column"
)

type (
	// Class is the model of one generated struct.
	Class struct {
		// Name of the generated struct.
		Name string
		// Package is the name of the generated package.
		Package string
		// Fields holds the declared fields in declaration order.
		Fields []*Field
		// Members holds the methods and constructors in declaration order.
		Members []*Member
		// Imports holds the packages the class annotations depend on.
		Imports ImportSet
		// Super is the embedded parent model, if any.
		Super *Class
		// Columns are the columns the class was generated from.
		Columns []column.Column
		// Immutable classes have no setters.
		Immutable bool
		// ConstructorBased classes are initialized through their constructor.
		ConstructorBased bool
	}

	// Field is a struct field, or a package-level constant when Static is set.
	Field struct {
		Name string
		Type jen.Code
		// Static fields are shared by all values of the class and render as constants.
		Static bool
		// Value is the constant value of a static field.
		Value jen.Code
		// Column the field was generated from, nil for synthesized fields.
		Column column.Column
		annotated
	}

	// Member is a method of the class, or its constructor.
	Member struct {
		Name        string
		Doc         string
		Constructor bool
		Params      []*Param
		Results     jen.Code
		Body        []jen.Code
		annotated
	}

	// Param is a member parameter.
	Param struct {
		Name string
		Type jen.Code
		annotated
	}
)

// NewClass returns an empty class with the given name.
func NewClass(pkg, name string) *Class {
	return &Class{Name: name, Package: pkg}
}

// AddField appends a field to the class.
func (c *Class) AddField(f *Field) *Class {
	c.Fields = append(c.Fields, f)
	return c
}

// AddMember appends a member to the class.
func (c *Class) AddMember(m *Member) *Class {
	c.Members = append(c.Members, m)
	return c
}

// AddImport registers an import path. Registering a path twice is a no-op.
func (c *Class) AddImport(path string) *Class {
	c.Imports.Add(path)
	return c
}

// Field returns the declared field with the given name.
func (c *Class) Field(name string) (*Field, bool) {
	for _, f := range c.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// Member returns the first member with the given name.
func (c *Class) Member(name string) (*Member, bool) {
	for _, m := range c.Members {
		if m.Name == name {
			return m, true
		}
	}
	return nil, false
}

// Constructor returns the first constructor of the class.
func (c *Class) Constructor() (*Member, bool) {
	for _, m := range c.Members {
		if m.Constructor {
			return m, true
		}
	}
	return nil, false
}

// Receiver returns the receiver name used by generated methods.
func (c *Class) Receiver() string { return "m" }

// HasSuper reports if the class embeds a parent model.
func (c *Class) HasSuper() bool { return c.Super != nil }

// ImportSet is an insertion-ordered set of import paths.
type ImportSet struct {
	paths []string
	seen  map[string]struct{}
}

// Add adds the path to the set and reports if it was not present.
func (s *ImportSet) Add(path string) bool {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[path]; ok {
		return false
	}
	s.seen[path] = struct{}{}
	s.paths = append(s.paths, path)
	return true
}

// Has reports if the path is in the set.
func (s *ImportSet) Has(path string) bool {
	_, ok := s.seen[path]
	return ok
}

// Len returns the number of paths in the set.
func (s *ImportSet) Len() int { return len(s.paths) }

// List returns the paths in insertion order.
func (s *ImportSet) List() []string {
	return append([]string(nil), s.paths...)
}
