package gen

import (
	"fmt"
	"log/slog"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/membergen/compiler/model"
	"github.com/syssam/membergen/compiler/prime"
	"github.com/syssam/membergen/runtime/hashcode"
	"github.com/syssam/membergen/schema/column"
)

// RuntimePkg is the import path of the helpers called by generated members.
const RuntimePkg = "github.com/syssam/membergen/runtime/hashcode"

type (
	// HashEngine synthesizes the HashCode method of a class. Every method gets a
	// fresh multiplier from Primes, so two generated classes never share one.
	HashEngine struct {
		Primes prime.Source
		// FromRoot folds the embedded parent HashCode in first.
		FromRoot bool
		Logger   *slog.Logger
	}

	// combiner is the hash step of one column kind. emit writes the generated
	// statements, eval computes the same contribution in process.
	combiner struct {
		emit func(b *hashBody, v *jen.Statement, nullable bool)
		eval func(v any) int32
	}

	// hashBody collects the statements of a HashCode method.
	hashBody struct {
		stmts []jen.Code
		temp  bool
	}
)

// combiners maps each column kind to its hash step. Kinds missing here are
// skipped by the engine.
var combiners = map[column.Kind]combiner{
	column.KindBool: {
		emit: direct("Bool"),
		eval: evalOf(hashcode.Bool),
	},
	column.KindByte: {
		emit: widen(jen.Int8()),
		eval: evalOf(hashcode.Int[int8]),
	},
	column.KindChar: {
		emit: widen(jen.Rune()),
		eval: evalOf(hashcode.Int[rune]),
	},
	column.KindShort: {
		emit: widen(jen.Int16()),
		eval: evalOf(hashcode.Int[int16]),
	},
	column.KindInt: {
		emit: widen(jen.Int32()),
		eval: evalOf(hashcode.Int[int32]),
	},
	column.KindLong: {
		emit: func(b *hashBody, v *jen.Statement, nullable bool) {
			if nullable {
				b.combine(ptr(v, jen.Qual(RuntimePkg, "Long")))
				return
			}
			// int32(v ^ int64(uint64(v)>>32))
			b.combine(jen.Int32().Call(
				jen.Add(v).Op("^").Int64().Call(jen.Uint64().Call(jen.Add(v)).Op(">>").Lit(32)),
			))
		},
		eval: evalOf(hashcode.Long),
	},
	column.KindFloat: {
		emit: func(b *hashBody, v *jen.Statement, nullable bool) {
			if nullable {
				b.combine(ptr(v, jen.Qual(RuntimePkg, "Float")))
				return
			}
			b.combine(jen.Int32().Call(jen.Qual(RuntimePkg, "FloatBits").Call(v)))
		},
		eval: evalOf(hashcode.Float),
	},
	column.KindDouble: {
		emit: func(b *hashBody, v *jen.Statement, nullable bool) {
			if nullable {
				b.combine(ptr(v, jen.Qual(RuntimePkg, "Double")))
				return
			}
			if !b.temp {
				b.stmts = append(b.stmts, jen.Var().Id("temp").Uint64())
				b.temp = true
			}
			b.stmts = append(b.stmts, jen.Id("temp").Op("=").Qual(RuntimePkg, "DoubleBits").Call(v))
			b.combine(jen.Int32().Call(jen.Id("temp").Op("^").Parens(jen.Id("temp").Op(">>").Lit(32))))
		},
		eval: evalOf(hashcode.Double),
	},
	column.KindArray: {
		emit: direct("Bytes"),
		eval: evalOf(hashcode.Bytes),
	},
	column.KindString: {
		emit: direct("String"),
		eval: evalOf(hashcode.String),
	},
	column.KindObject: {
		emit: direct("Object"),
		eval: hashcode.Object,
	},
}

// Generate appends the HashCode method of c. The multiplier is drawn before the
// class is touched, so an exhausted prime source leaves c unchanged.
func (e *HashEngine) Generate(c *model.Class, cols []column.Column) (*model.Member, error) {
	p, err := e.Primes.Next()
	if err != nil {
		return nil, fmt.Errorf("hash code of %s: %w", c.Name, err)
	}
	b := &hashBody{}
	b.stmts = append(b.stmts,
		jen.Const().Id("prime").Op("=").Lit(int(p)),
		jen.Var().Id("result").Int32().Op("=").Lit(1),
	)
	recv := jen.Id(c.Receiver())
	if e.FromRoot && c.HasSuper() {
		b.combine(jen.Add(recv).Dot(c.Super.Name).Dot("HashCode").Call())
	}
	for _, col := range cols {
		cb, ok := combiners[col.Kind()]
		if !ok {
			e.logger().Debug("hash: skip column", "class", c.Name, "column", col.Name(), "kind", col.Kind())
			continue
		}
		cb.emit(b, jen.Add(recv).Dot(col.StructField()), pointer(col))
	}
	b.stmts = append(b.stmts, jen.Return(jen.Id("result")))
	m := &model.Member{
		Name:    "HashCode",
		Doc:     fmt.Sprintf("HashCode returns the hash code of the %s.", c.Name),
		Results: jen.Int32(),
		Body:    b.stmts,
	}
	c.AddMember(m)
	e.logger().Debug("synthesized member", "class", c.Name, "member", m.Name, "prime", p)
	return m, nil
}

func (e *HashEngine) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}

// HashValue computes in process the value the HashCode method generated for
// cols with multiplier p returns. values holds the field values in column order;
// nullable columns take a pointer or nil.
func HashValue(p int32, cols []column.Column, values []any) int32 {
	return hashFields(p, 1, cols, values)
}

// HashValueFromRoot is HashValue for a HashEngine with FromRoot set on a class
// with a parent: parent is the HashCode of the embedded parent, combined before
// the columns.
func HashValueFromRoot(p, parent int32, cols []column.Column, values []any) int32 {
	return hashFields(p, p*1+parent, cols, values)
}

func hashFields(p, result int32, cols []column.Column, values []any) int32 {
	for i, col := range cols {
		cb, ok := combiners[col.Kind()]
		if !ok {
			continue
		}
		var v any
		if i < len(values) {
			v = values[i]
		}
		result = p*result + cb.eval(v)
	}
	return result
}

// combine appends "result = prime*result + expr".
func (b *hashBody) combine(expr jen.Code) {
	b.stmts = append(b.stmts, jen.Id("result").Op("=").Id("prime").Op("*").Id("result").Op("+").Add(expr))
}

// pointer reports if the field of col is held by pointer.
func pointer(col column.Column) bool {
	return col.Nullable() && col.Kind().Pointer()
}

// direct returns the emitter calling the runtime helper fn with the value.
func direct(fn string) func(*hashBody, *jen.Statement, bool) {
	return func(b *hashBody, v *jen.Statement, nullable bool) {
		if nullable {
			b.combine(ptr(v, jen.Qual(RuntimePkg, fn)))
			return
		}
		b.combine(jen.Qual(RuntimePkg, fn).Call(v))
	}
}

// widen returns the emitter of the integer kinds narrower than or equal to int32.
func widen(t *jen.Statement) func(*hashBody, *jen.Statement, bool) {
	return func(b *hashBody, v *jen.Statement, nullable bool) {
		if nullable {
			b.combine(ptr(v, jen.Qual(RuntimePkg, "Int").Index(t)))
			return
		}
		b.combine(jen.Int32().Call(v))
	}
}

func ptr(v *jen.Statement, fn jen.Code) jen.Code {
	return jen.Qual(RuntimePkg, "Ptr").Call(v, fn)
}

// evalOf adapts a hash function to values held directly or by pointer.
func evalOf[T any](fn func(T) int32) func(any) int32 {
	return func(v any) int32 {
		switch v := v.(type) {
		case T:
			return fn(v)
		case *T:
			if v == nil {
				return 0
			}
			return fn(*v)
		default:
			return 0
		}
	}
}
