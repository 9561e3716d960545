package gen

import (
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/membergen/compiler/model"
	"github.com/syssam/membergen/runtime/hashcode"
	"github.com/syssam/membergen/schema/column"
)

// StringEngine synthesizes the String method of a class:
//
//	User [Hash = 42, ID=1, Name=gopher], from super class Base [...]
//
// Fields are taken from the declared fields of the class, so constants added by
// other plugins are printed unless IgnoreStatic is set.
type StringEngine struct {
	// FromRoot appends the String of the embedded parent.
	FromRoot bool
	// IgnoreStatic skips static fields.
	IgnoreStatic bool
	// AppendHash prints the HashCode first. The class must have a HashCode method.
	AppendHash bool
}

// Generate appends the String method of c.
func (e *StringEngine) Generate(c *model.Class) *model.Member {
	var (
		recv    = jen.Id(c.Receiver())
		builder = jen.Id("builder")
		first   = true
		body    = []jen.Code{jen.Var().Id("builder").Qual("strings", "Builder")}
	)
	write := func(v jen.Code) {
		body = append(body, jen.Add(builder).Dot("WriteString").Call(v))
	}
	label := func(s string) string {
		if first {
			first = false
			return s
		}
		return ", " + s
	}
	write(jen.Lit(c.Name + " ["))
	if e.AppendHash {
		write(jen.Lit(label("Hash = ")))
		write(jen.Qual("fmt", "Sprint").Call(jen.Add(recv).Dot("HashCode").Call()))
	}
	for _, f := range e.fields(c) {
		write(jen.Lit(label(f.Name + "=")))
		v := jen.Add(recv).Dot(f.Name)
		if f.Static {
			v = jen.Id(f.Name)
		}
		write(jen.Qual(RuntimePkg, formatter(f)).Call(v))
	}
	write(jen.Lit("]"))
	if e.FromRoot && c.HasSuper() {
		write(jen.Lit(", from super class "))
		write(jen.Add(recv).Dot(c.Super.Name).Dot("String").Call())
	}
	body = append(body, jen.Return(jen.Add(builder).Dot("String").Call()))
	m := &model.Member{
		Name:    "String",
		Doc:     fmt.Sprintf("String implements the fmt.Stringer interface for %s.", c.Name),
		Results: jen.String(),
		Body:    body,
	}
	c.AddMember(m)
	return m
}

// FormatString returns in process what the String method generated for c
// returns, given the field values keyed by field name, the hash code and the
// String of the parent.
func (e *StringEngine) FormatString(c *model.Class, values map[string]any, hash int32, super string) string {
	var (
		b     strings.Builder
		first = true
	)
	sep := func() {
		if !first {
			b.WriteString(", ")
		}
		first = false
	}
	b.WriteString(c.Name + " [")
	if e.AppendHash {
		sep()
		fmt.Fprintf(&b, "Hash = %d", hash)
	}
	for _, f := range e.fields(c) {
		sep()
		text := hashcode.Format
		if formatter(f) == "FormatChar" {
			text = hashcode.FormatChar
		}
		b.WriteString(f.Name + "=" + text(values[f.Name]))
	}
	b.WriteString("]")
	if e.FromRoot && c.HasSuper() {
		b.WriteString(", from super class " + super)
	}
	return b.String()
}

// formatter returns the runtime function printing the value of f.
func formatter(f *model.Field) string {
	if f.Column != nil && f.Column.Kind() == column.KindChar {
		return "FormatChar"
	}
	return "Format"
}

func (e *StringEngine) fields(c *model.Class) []*model.Field {
	fields := make([]*model.Field, 0, len(c.Fields))
	for _, f := range c.Fields {
		if f.Static && e.IgnoreStatic {
			continue
		}
		fields = append(fields, f)
	}
	return fields
}
