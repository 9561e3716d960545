package model

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/membergen/schema/column"
)

// FieldType returns the Go type of the struct field of col. Nullable primitive
// and string columns are held by pointer.
func FieldType(col column.Column) jen.Code {
	t := jen.Id(col.Kind().GoType())
	if col.Nullable() && col.Kind().Pointer() {
		return jen.Op("*").Add(t)
	}
	return t
}

// AddColumn appends col to the columns of the class and adds its struct field.
// Columns of an invalid kind have no Go type; they are refused and the class is
// left unchanged.
func (c *Class) AddColumn(col column.Column) (*Field, bool) {
	if !col.Kind().Valid() {
		return nil, false
	}
	f := &Field{Name: col.StructField(), Type: FieldType(col), Column: col}
	c.Columns = append(c.Columns, col)
	c.AddField(f)
	return f, true
}

// AddGetter adds the "Get<Field>" method returning f.
func (c *Class) AddGetter(f *Field) *Member {
	m := &Member{
		Name:    "Get" + f.Name,
		Results: f.Type,
		Body:    []jen.Code{jen.Return(jen.Id(c.Receiver()).Dot(f.Name))},
	}
	c.AddMember(m)
	return m
}

// AddSetter adds the "Set<Field>" method assigning f.
func (c *Class) AddSetter(f *Field) *Member {
	m := &Member{
		Name:   "Set" + f.Name,
		Params: []*Param{{Name: "v", Type: f.Type}},
		Body:   []jen.Code{jen.Id(c.Receiver()).Dot(f.Name).Op("=").Id("v")},
	}
	c.AddMember(m)
	return m
}
