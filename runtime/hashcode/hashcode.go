// Package hashcode holds the helpers called by generated HashCode, Equal and String
// methods. The hash functions reproduce the well-known 31-based hash combination
// of the JVM bit for bit, so models generated for different runtimes agree on
// their hash values.
package hashcode

import (
	"fmt"
	"math"
	"reflect"
	"time"
	"unicode/utf16"
)

// Hasher is implemented by generated models.
type Hasher interface {
	HashCode() int32
}

const (
	// True is the contribution of a true boolean.
	True int32 = 1231
	// False is the contribution of a false boolean.
	False int32 = 1237

	canonicalNaN32 uint32 = 0x7fc00000
	canonicalNaN64 uint64 = 0x7ff8000000000000
)

// Bool returns the hash contribution of a boolean.
func Bool(v bool) int32 {
	if v {
		return True
	}
	return False
}

// Int returns the hash contribution of an integer of at most 32 bits.
func Int[T ~int8 | ~int16 | ~int32](v T) int32 { return int32(v) }

// Long folds the high and low halves of v.
func Long(v int64) int32 {
	return int32(v ^ int64(uint64(v)>>32))
}

// FloatBits returns the IEEE 754 bits of v, with every NaN collapsed to the
// canonical NaN.
func FloatBits(v float32) uint32 {
	if math.IsNaN(float64(v)) {
		return canonicalNaN32
	}
	return math.Float32bits(v)
}

// Float returns the hash contribution of a float32.
func Float(v float32) int32 { return int32(FloatBits(v)) }

// DoubleBits returns the IEEE 754 bits of v, with every NaN collapsed to the
// canonical NaN.
func DoubleBits(v float64) uint64 {
	if math.IsNaN(v) {
		return canonicalNaN64
	}
	return math.Float64bits(v)
}

// Double returns the hash contribution of a float64.
func Double(v float64) int32 {
	bits := DoubleBits(v)
	return int32(bits ^ bits>>32)
}

// String hashes s over its UTF-16 code units.
func String(s string) int32 {
	var h int32
	for _, r := range s {
		if r >= 0x10000 {
			hi, lo := utf16.EncodeRune(r)
			h = 31*h + hi
			h = 31*h + lo
			continue
		}
		h = 31*h + r
	}
	return h
}

// Bytes hashes the elements of b as signed bytes. A nil slice hashes to 0.
func Bytes(b []byte) int32 {
	if b == nil {
		return 0
	}
	var h int32 = 1
	for _, e := range b {
		h = 31*h + int32(int8(e))
	}
	return h
}

// Slice hashes the elements of s with fn. A nil slice hashes to 0.
func Slice[T any](s []T, fn func(T) int32) int32 {
	if s == nil {
		return 0
	}
	var h int32 = 1
	for _, e := range s {
		h = 31*h + fn(e)
	}
	return h
}

// Ptr returns fn(*p), or 0 if p is nil.
func Ptr[T any](p *T, fn func(T) int32) int32 {
	if p == nil {
		return 0
	}
	return fn(*p)
}

// Object returns the hash contribution of an arbitrary value; nil hashes to 0.
func Object(v any) int32 {
	if isNil(v) {
		return 0
	}
	switch v := v.(type) {
	case Hasher:
		return v.HashCode()
	case bool:
		return Bool(v)
	case int8:
		return Int(v)
	case int16:
		return Int(v)
	case int32:
		return v
	case int64:
		return Long(v)
	case int:
		return Long(int64(v))
	case float32:
		return Float(v)
	case float64:
		return Double(v)
	case string:
		return String(v)
	case []byte:
		return Bytes(v)
	case time.Time:
		return Long(v.UnixMilli())
	case fmt.Stringer:
		return String(v.String())
	default:
		return String(fmt.Sprint(v))
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
