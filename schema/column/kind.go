package column

// Kind is the semantic type of a column, as seen by the member synthesizers.
type Kind uint8

// List of column kinds.
const (
	KindInvalid Kind = iota
	KindBool
	KindByte
	KindChar
	KindDouble
	KindFloat
	KindInt
	KindLong
	KindShort
	KindArray
	KindString
	KindObject
	endKinds
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindBool:    "bool",
	KindByte:    "byte",
	KindChar:    "char",
	KindDouble:  "double",
	KindFloat:   "float",
	KindInt:     "int",
	KindLong:    "long",
	KindShort:   "short",
	KindArray:   "array",
	KindString:  "string",
	KindObject:  "object",
}

// goTypes holds the Go type each kind is rendered as (non-nullable form).
var goTypes = [...]string{
	KindBool:   "bool",
	KindByte:   "int8",
	KindChar:   "rune",
	KindDouble: "float64",
	KindFloat:  "float32",
	KindInt:    "int32",
	KindLong:   "int64",
	KindShort:  "int16",
	KindArray:  "[]byte",
	KindString: "string",
	KindObject: "any",
}

// String returns the kind name.
func (k Kind) String() string {
	if k < endKinds {
		return kindNames[k]
	}
	return "invalid"
}

// Valid reports if the kind is a known, non-zero kind.
func (k Kind) Valid() bool { return k > KindInvalid && k < endKinds }

// Primitive reports if the kind maps to a Go value type with a fixed width.
func (k Kind) Primitive() bool {
	switch k {
	case KindBool, KindByte, KindChar, KindDouble, KindFloat, KindInt, KindLong, KindShort:
		return true
	default:
		return false
	}
}

// Character reports if the kind holds character data.
func (k Kind) Character() bool { return k == KindString }

// GoType returns the name of the Go type used for non-nullable values of this kind.
// It returns an empty string for invalid kinds.
func (k Kind) GoType() string {
	if !k.Valid() {
		return ""
	}
	return goTypes[k]
}

// Pointer reports if nullable values of this kind are held behind a pointer.
// Arrays and objects are nil-able already.
func (k Kind) Pointer() bool { return k.Primitive() || k == KindString }

// Nilable reports if non-nullable values of this kind have a nil zero value.
func (k Kind) Nilable() bool { return k == KindArray || k == KindObject }

// ParseKind returns the kind with the given name, or KindInvalid.
func ParseKind(s string) Kind {
	for k := KindBool; k < endKinds; k++ {
		if kindNames[k] == s {
			return k
		}
	}
	return KindInvalid
}
