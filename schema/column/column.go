package column

// Column is the read-only view over one table column.
type Column interface {
	// Name returns the logical name of the column (e.g. "first_name").
	Name() string
	// Kind returns the semantic type of the column.
	Kind() Kind
	// Nullable reports if the column accepts NULL.
	Nullable() bool
	// Identity reports if the column is filled by the data store (e.g. auto-increment).
	Identity() bool
	// Length returns the declared length of the column, if any.
	Length() (int, bool)
	// RawName returns the column name as it appears in the database.
	RawName() string
	// StructField returns the Go struct field name of the column.
	StructField() string
}

// Descriptor is the immutable Column implementation returned by the builders.
type Descriptor struct {
	name      string
	kind      Kind
	nullable  bool
	identity  bool
	length    int
	hasLength bool
	raw       string
}

var _ Column = Descriptor{}

// Name returns the logical name of the column.
func (d Descriptor) Name() string { return d.name }

// Kind returns the semantic type of the column.
func (d Descriptor) Kind() Kind { return d.kind }

// Nullable reports if the column accepts NULL.
func (d Descriptor) Nullable() bool { return d.nullable }

// Identity reports if the column is filled by the data store.
func (d Descriptor) Identity() bool { return d.identity }

// Length returns the declared length of the column, if any.
func (d Descriptor) Length() (int, bool) { return d.length, d.hasLength }

// RawName returns the database column name. It defaults to the logical name.
func (d Descriptor) RawName() string {
	if d.raw == "" {
		return d.name
	}
	return d.raw
}

// StructField returns the Go struct field name of the column.
func (d Descriptor) StructField() string { return Pascal(d.name) }

// Builder builds a column Descriptor.
type Builder struct {
	desc Descriptor
}

// New returns a builder for a column of the given kind.
func New(name string, kind Kind) *Builder {
	return &Builder{desc: Descriptor{name: name, kind: kind}}
}

// Bool returns a builder for a boolean column.
func Bool(name string) *Builder { return New(name, KindBool) }

// Byte returns a builder for a signed 8-bit column.
func Byte(name string) *Builder { return New(name, KindByte) }

// Char returns a builder for a single character column.
func Char(name string) *Builder { return New(name, KindChar) }

// Short returns a builder for a 16-bit integer column.
func Short(name string) *Builder { return New(name, KindShort) }

// Int returns a builder for a 32-bit integer column.
func Int(name string) *Builder { return New(name, KindInt) }

// Long returns a builder for a 64-bit integer column.
func Long(name string) *Builder { return New(name, KindLong) }

// Float returns a builder for a 32-bit floating point column.
func Float(name string) *Builder { return New(name, KindFloat) }

// Double returns a builder for a 64-bit floating point column.
func Double(name string) *Builder { return New(name, KindDouble) }

// Bytes returns a builder for a binary (array) column.
func Bytes(name string) *Builder { return New(name, KindArray) }

// String returns a builder for a character column.
func String(name string) *Builder { return New(name, KindString) }

// Object returns a builder for a column held as an opaque object.
func Object(name string) *Builder { return New(name, KindObject) }

// Nullable marks the column as accepting NULL.
func (b *Builder) Nullable() *Builder {
	b.desc.nullable = true
	return b
}

// Identity marks the column as populated by the data store.
func (b *Builder) Identity() *Builder {
	b.desc.identity = true
	return b
}

// Length sets the declared length of the column.
func (b *Builder) Length(n int) *Builder {
	b.desc.length = n
	b.desc.hasLength = true
	return b
}

// Raw sets the database column name.
func (b *Builder) Raw(name string) *Builder {
	b.desc.raw = name
	return b
}

// Descriptor returns the built column.
func (b *Builder) Descriptor() Descriptor {
	return b.desc
}
