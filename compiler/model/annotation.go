package model

import "strings"

// Arg is a named annotation parameter.
type Arg struct {
	Name  string
	Value string
}

// Annotation is a declarative marker attached to a field, member or parameter.
// On fields it renders into the struct tag under Key; elsewhere it renders as a
// "//Key:Value" directive comment.
type Annotation struct {
	// Name is the logical name, e.g. "NotNull".
	Name string
	// Key is the struct tag (or directive) key, e.g. "validate".
	Key string
	// Value is the rendered fragment, e.g. "max=50". Annotations with an empty
	// value are kept in the model but not rendered.
	Value string
	// Args are the named parameters, in order.
	Args []Arg
}

// String returns the annotation in Name(arg=value, ...) form.
func (a Annotation) String() string {
	if len(a.Args) == 0 {
		return a.Name
	}
	var b strings.Builder
	b.WriteString(a.Name)
	b.WriteByte('(')
	for i, arg := range a.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.Name)
		b.WriteByte('=')
		b.WriteString(arg.Value)
	}
	b.WriteByte(')')
	return b.String()
}

// Rendered reports if the annotation appears in the generated source.
func (a Annotation) Rendered() bool { return a.Value != "" }

// Directive returns the comment form of the annotation.
func (a Annotation) Directive() string {
	return "//" + a.Key + ":" + a.Value
}

// Arg returns the value of the named parameter.
func (a Annotation) Arg(name string) (string, bool) {
	for _, arg := range a.Args {
		if arg.Name == name {
			return arg.Value, true
		}
	}
	return "", false
}

// Annotatable is implemented by the model elements that carry annotations.
type Annotatable interface {
	Annotate(...Annotation)
	AnnotationList() []Annotation
	HasAnnotation(name string) bool
}

var (
	_ Annotatable = (*Field)(nil)
	_ Annotatable = (*Member)(nil)
	_ Annotatable = (*Param)(nil)
)

type annotated struct {
	annotations []Annotation
}

// Annotate appends annotations to the element.
func (a *annotated) Annotate(as ...Annotation) {
	a.annotations = append(a.annotations, as...)
}

// AnnotationList returns the annotations of the element in attach order.
func (a *annotated) AnnotationList() []Annotation {
	return a.annotations
}

// HasAnnotation reports if an annotation with the given name is attached.
func (a *annotated) HasAnnotation(name string) bool {
	for _, an := range a.annotations {
		if an.Name == name {
			return true
		}
	}
	return false
}

// Tags returns the struct tags of the field. Annotations sharing a key are
// joined with commas in attach order.
func (f *Field) Tags() map[string]string {
	var tags map[string]string
	for _, a := range f.annotations {
		if !a.Rendered() {
			continue
		}
		if tags == nil {
			tags = make(map[string]string)
		}
		if v, ok := tags[a.Key]; ok {
			tags[a.Key] = v + "," + a.Value
		} else {
			tags[a.Key] = a.Value
		}
	}
	return tags
}
