package hashcode

import (
	"fmt"
	"reflect"
)

// Null is the text of absent values in generated String methods.
const Null = "null"

// Format returns the text of a field value in generated String methods.
// Pointers are dereferenced and nil values print as Null.
func Format(v any) string {
	if isNil(v) {
		return Null
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer {
		v = rv.Elem().Interface()
	}
	return fmt.Sprint(v)
}

// FormatChar returns the text of a char field, a rune or a *rune. The rune
// prints as its character rather than its code point.
func FormatChar(v any) string {
	switch r := v.(type) {
	case rune:
		return string(r)
	case *rune:
		if r == nil {
			return Null
		}
		return string(*r)
	}
	return Format(v)
}
