package gen

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/membergen/compiler/model"
	"github.com/syssam/membergen/schema/column"
)

// EqualEngine synthesizes the field by field Equal method of a class.
type EqualEngine struct {
	// FromRoot compares the embedded parent first.
	FromRoot bool
}

// Generate appends the Equal method of c.
func (e *EqualEngine) Generate(c *model.Class, cols []column.Column) *model.Member {
	recv, other := jen.Id(c.Receiver()), jen.Id("other")
	body := []jen.Code{
		jen.If(jen.Add(recv).Op("==").Add(other)).Block(jen.Return(jen.True())),
		jen.If(jen.Add(recv).Op("==").Nil().Op("||").Add(other).Op("==").Nil()).Block(jen.Return(jen.False())),
	}
	if e.FromRoot && c.HasSuper() {
		body = append(body, differ(jen.Op("!").Add(recv).Dot(c.Super.Name).Dot("Equal").Call(jen.Op("&").Add(other).Dot(c.Super.Name))))
	}
	for _, col := range cols {
		if !col.Kind().Valid() {
			continue
		}
		body = append(body, differ(notEqual(col, jen.Add(recv).Dot(col.StructField()), jen.Add(other).Dot(col.StructField()))))
	}
	body = append(body, jen.Return(jen.True()))
	m := &model.Member{
		Name:    "Equal",
		Doc:     fmt.Sprintf("Equal reports whether the %s equals other, field by field.", c.Name),
		Params:  []*model.Param{{Name: "other", Type: jen.Op("*").Id(c.Name)}},
		Results: jen.Bool(),
		Body:    body,
	}
	c.AddMember(m)
	return m
}

func differ(cond jen.Code) jen.Code {
	return jen.If(cond).Block(jen.Return(jen.False()))
}

// notEqual returns the condition reporting that a and b differ.
func notEqual(col column.Column, a, b *jen.Statement) jen.Code {
	switch {
	case pointer(col):
		return jen.Op("!").Qual(RuntimePkg, "EqualPtr").Call(a, b)
	case col.Kind() == column.KindArray:
		return jen.Op("!").Qual("bytes", "Equal").Call(a, b)
	case col.Kind() == column.KindObject:
		return jen.Op("!").Qual(RuntimePkg, "Equal").Call(a, b)
	default:
		return jen.Add(a).Op("!=").Add(b)
	}
}
