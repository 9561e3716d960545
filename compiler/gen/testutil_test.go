package gen

import (
	"github.com/syssam/membergen/compiler/model"
	"github.com/syssam/membergen/schema/column"
)

// allKinds returns one column of each kind, in kind order.
func allKinds() []column.Column {
	return []column.Column{
		column.Bool("active").Descriptor(),
		column.Byte("flags").Descriptor(),
		column.Char("grade").Descriptor(),
		column.Double("score").Descriptor(),
		column.Float("ratio").Descriptor(),
		column.Int("age").Descriptor(),
		column.Long("balance").Descriptor(),
		column.Short("rank").Descriptor(),
		column.Bytes("avatar").Descriptor(),
		column.String("name").Length(50).Descriptor(),
		column.Object("extra").Descriptor(),
	}
}

// newClass returns a class with a field, a getter and a setter per column.
func newClass(name string, cols ...column.Column) *model.Class {
	c := model.NewClass("models", name)
	for _, col := range cols {
		f, ok := c.AddColumn(col)
		if !ok {
			continue
		}
		c.AddGetter(f)
		c.AddSetter(f)
	}
	return c
}

// render returns the Go source of the class.
func render(c *model.Class) string {
	return c.File().GoString()
}
