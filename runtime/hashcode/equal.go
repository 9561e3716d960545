package hashcode

import (
	"bytes"
	"reflect"
	"time"
)

// EqualPtr reports if both pointers are nil, or both point to equal values.
func EqualPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Equal reports if a and b hold equal values. Two nil values are equal.
func Equal(a, b any) bool {
	an, bn := isNil(a), isNil(b)
	if an || bn {
		return an && bn
	}
	switch a := a.(type) {
	case []byte:
		bb, ok := b.([]byte)
		return ok && bytes.Equal(a, bb)
	case time.Time:
		bt, ok := b.(time.Time)
		return ok && a.Equal(bt)
	}
	return reflect.DeepEqual(a, b)
}
