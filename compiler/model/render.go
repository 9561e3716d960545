package model

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"
	"golang.org/x/tools/imports"
)

// Header is the comment written at the top of rendered files.
const Header = "Code generated by membergen, DO NOT EDIT."

// File renders the class into a new jennifer file.
func (c *Class) File() *jen.File {
	f := jen.NewFile(c.Package)
	f.HeaderComment(Header)
	c.Render(f)
	return f
}

// Render writes the constants, struct and members of the class to f.
func (c *Class) Render(f *jen.File) {
	var consts []jen.Code
	for _, fd := range c.Fields {
		if !fd.Static {
			continue
		}
		def := jen.Id(fd.Name)
		if fd.Type != nil {
			def.Add(fd.Type)
		}
		consts = append(consts, def.Op("=").Add(fd.Value))
	}
	if len(consts) > 0 {
		f.Const().Defs(consts...)
	}

	f.Commentf("%s is the model of the %s table.", c.Name, c.Name)
	f.Type().Id(c.Name).StructFunc(func(g *jen.Group) {
		if c.Super != nil {
			g.Id(c.Super.Name)
		}
		for _, fd := range c.Fields {
			if fd.Static {
				continue
			}
			s := g.Id(fd.Name).Add(fd.Type)
			if tags := fd.Tags(); len(tags) > 0 {
				s.Tag(tags)
			}
		}
	})

	for _, m := range c.Members {
		c.renderMember(f, m)
	}
}

func (c *Class) renderMember(f *jen.File, m *Member) {
	if m.Doc != "" {
		f.Comment(m.Doc)
	}
	for _, a := range m.AnnotationList() {
		if a.Rendered() {
			f.Comment(a.Directive())
		}
	}
	params := make([]jen.Code, 0, len(m.Params))
	for _, p := range m.Params {
		for _, a := range p.AnnotationList() {
			if a.Rendered() {
				f.Comment(a.Directive() + " " + p.Name)
			}
		}
		params = append(params, jen.Id(p.Name).Add(p.Type))
	}
	var stmt *jen.Statement
	if m.Constructor {
		stmt = f.Func().Id(m.Name).Params(params...)
		if m.Results == nil {
			stmt.Op("*").Id(c.Name)
		}
	} else {
		stmt = f.Func().Params(jen.Id(c.Receiver()).Op("*").Id(c.Name)).Id(m.Name).Params(params...)
	}
	if m.Results != nil {
		stmt.Add(m.Results)
	}
	stmt.Block(m.Body...)
}

// Source renders the class and formats it with goimports.
func (c *Class) Source() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.File().Render(&buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", c.Name, err)
	}
	out, err := imports.Process(strings.ToLower(c.Name)+".go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", c.Name, err)
	}
	return out, nil
}
