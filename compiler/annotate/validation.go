package annotate

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/ext"

	"github.com/syssam/membergen/compiler/model"
	"github.com/syssam/membergen/runtime/validate"
	"github.com/syssam/membergen/schema/column"
)

// EmailMatch selects how the raw column name is checked by the email rule.
type EmailMatch int

const (
	// EmailMatchLiteral searches the lower-cased raw name for the literal text
	// "e(-|_)*mail". Generated annotations of existing models depend on it.
	EmailMatchLiteral EmailMatch = iota
	// EmailMatchPattern matches the lower-cased raw name against the regular
	// expression e(-|_)*mail, so "email" and "user_e_mail" both match.
	EmailMatchPattern
)

// emailPattern is the raw column name pattern of email columns.
const emailPattern = "e(-|_)*mail"

// String returns the option value of the match mode.
func (m EmailMatch) String() string {
	if m == EmailMatchPattern {
		return "pattern"
	}
	return "literal"
}

// rule is one validation constraint guarded by a CEL condition over the column facts.
type rule struct {
	name string
	expr string
	// value renders the constraint fragment of the validate tag. An empty
	// fragment keeps the annotation in the decision without rendering it.
	value func(column.Column) (string, []model.Arg)
	prg   cel.Program
}

// Validation decides the validation constraints of a column. Rules are evaluated
// in a fixed order: NotNull, NotBlank, Size, Email.
//
// Fragments follow github.com/go-playground/validator/v10. Its "required" rejects
// zero values, so NotNull renders only on fields with a nil zero value. Nullable
// pointer fields with constraints get a leading Optional ("omitnil") so a nil
// value passes. "notblank" is registered by validate.New.
type Validation struct {
	log   *slog.Logger
	email EmailMatch
	rules []*rule
}

// NewValidation compiles the validation rules.
func NewValidation(opts ...Option) (*Validation, error) {
	cfg := newConfig(opts)
	env, err := cel.NewEnv(
		ext.Strings(),
		cel.Variable("name", cel.StringType),
		cel.Variable("kind", cel.StringType),
		cel.Variable("nullable", cel.BoolType),
		cel.Variable("identity", cel.BoolType),
		cel.Variable("character", cel.BoolType),
		cel.Variable("length", cel.IntType),
		cel.Variable("has_length", cel.BoolType),
		cel.Variable("raw_name", cel.StringType),
	)
	if err != nil {
		return nil, fmt.Errorf("annotate: create rule environment: %w", err)
	}
	match := "contains"
	if cfg.email == EmailMatchPattern {
		match = "matches"
	}
	v := &Validation{
		log:   cfg.log,
		email: cfg.email,
		rules: []*rule{
			{
				name:  NotNull,
				expr:  "!nullable && !identity && !character",
				value: func(col column.Column) (string, []model.Arg) {
					if col.Kind().Nilable() {
						return "required", nil
					}
					return "", nil
				},
			},
			{
				name:  NotBlank,
				expr:  "character && !nullable",
				value: fixedValue(validate.NotBlank),
			},
			// Size needs a declared length: columns without one get no max.
			{
				name: Size,
				expr: "character && has_length",
				value: func(col column.Column) (string, []model.Arg) {
					n, _ := col.Length()
					s := strconv.Itoa(n)
					return "max=" + s, []model.Arg{{Name: "max", Value: s}}
				},
			},
			{
				name:  Email,
				expr:  fmt.Sprintf("character && raw_name.lowerAscii().%s(%q)", match, emailPattern),
				value: fixedValue("email"),
			},
		},
	}
	for _, r := range v.rules {
		ast, issues := env.Compile(r.expr)
		if issues != nil && issues.Err() != nil {
			return nil, fmt.Errorf("annotate: compile rule %s: %w", r.name, issues.Err())
		}
		prg, err := env.Program(ast, cel.CostLimit(10000))
		if err != nil {
			return nil, fmt.Errorf("annotate: program rule %s: %w", r.name, err)
		}
		r.prg = prg
	}
	return v, nil
}

// EmailMatch returns the email match mode of the engine.
func (v *Validation) EmailMatch() EmailMatch { return v.email }

// Decide evaluates the rules against col.
func (v *Validation) Decide(col column.Column) (Decision, error) {
	var (
		d     Decision
		facts = Facts(col)
	)
	for _, r := range v.rules {
		out, _, err := r.prg.Eval(facts)
		if err != nil {
			return Decision{}, fmt.Errorf("annotate: evaluate rule %s on column %s: %w", r.name, col.Name(), err)
		}
		if matched, ok := out.Value().(bool); !ok || !matched {
			continue
		}
		value, args := r.value(col)
		d.add(model.Annotation{Name: r.name, Key: KeyValidate, Value: value, Args: args}, ImportValidator)
	}
	if d.Empty() {
		v.log.Debug("no validation constraint", "column", col.Name())
		return d, nil
	}
	if col.Nullable() && col.Kind().Pointer() {
		d.Annotations = append([]model.Annotation{{Name: Optional, Key: KeyValidate, Value: "omitnil"}}, d.Annotations...)
	}
	return d, nil
}

// Facts returns the values the validation rules are evaluated against.
func Facts(col column.Column) map[string]any {
	n, ok := col.Length()
	return map[string]any{
		"name":       col.Name(),
		"kind":       col.Kind().String(),
		"nullable":   col.Nullable(),
		"identity":   col.Identity(),
		"character":  col.Kind().Character(),
		"length":     int64(n),
		"has_length": ok,
		"raw_name":   col.RawName(),
	}
}

func fixedValue(s string) func(column.Column) (string, []model.Arg) {
	return func(column.Column) (string, []model.Arg) { return s, nil }
}
