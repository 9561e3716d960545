package column_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/membergen/schema/column"
)

func TestBuilders(t *testing.T) {
	tests := []struct {
		col  column.Descriptor
		kind column.Kind
		goT  string
	}{
		{column.Bool("active").Descriptor(), column.KindBool, "bool"},
		{column.Byte("flags").Descriptor(), column.KindByte, "int8"},
		{column.Char("grade").Descriptor(), column.KindChar, "rune"},
		{column.Short("rank").Descriptor(), column.KindShort, "int16"},
		{column.Int("age").Descriptor(), column.KindInt, "int32"},
		{column.Long("balance").Descriptor(), column.KindLong, "int64"},
		{column.Float("ratio").Descriptor(), column.KindFloat, "float32"},
		{column.Double("score").Descriptor(), column.KindDouble, "float64"},
		{column.Bytes("avatar").Descriptor(), column.KindArray, "[]byte"},
		{column.String("name").Descriptor(), column.KindString, "string"},
		{column.Object("extra").Descriptor(), column.KindObject, "any"},
	}
	for _, tt := range tests {
		t.Run(tt.col.Name(), func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.col.Kind())
			assert.Equal(t, tt.goT, tt.col.Kind().GoType())
			assert.False(t, tt.col.Nullable())
			assert.False(t, tt.col.Identity())
			_, ok := tt.col.Length()
			assert.False(t, ok)
		})
	}
}

func TestDescriptorOptions(t *testing.T) {
	col := column.String("email_address").
		Nullable().
		Length(120).
		Raw("EMAIL_ADDRESS").
		Descriptor()
	assert.True(t, col.Nullable())
	n, ok := col.Length()
	assert.True(t, ok)
	assert.Equal(t, 120, n)
	assert.Equal(t, "EMAIL_ADDRESS", col.RawName())
	assert.Equal(t, "EmailAddress", col.StructField())

	id := column.Long("id").Identity().Descriptor()
	assert.True(t, id.Identity())
	assert.Equal(t, "id", id.RawName())
	assert.Equal(t, "ID", id.StructField())
}

func TestKind(t *testing.T) {
	assert.False(t, column.KindInvalid.Valid())
	assert.Equal(t, "", column.KindInvalid.GoType())
	assert.Equal(t, "invalid", column.Kind(200).String())
	assert.True(t, column.KindLong.Primitive())
	assert.False(t, column.KindArray.Primitive())
	assert.True(t, column.KindString.Character())
	assert.True(t, column.KindString.Pointer())
	assert.False(t, column.KindObject.Pointer())
	assert.True(t, column.KindArray.Nilable())
	assert.True(t, column.KindObject.Nilable())
	assert.False(t, column.KindInt.Nilable())
	assert.False(t, column.KindString.Nilable())
	for k := column.KindBool; k <= column.KindObject; k++ {
		assert.Equal(t, k, column.ParseKind(k.String()))
	}
	assert.Equal(t, column.KindInvalid, column.ParseKind("decimal"))
}

func TestPascal(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"user_info", "UserInfo"},
		{"user_id", "UserID"},
		{"api_url", "APIURL"},
		{"firstName", "FirstName"},
		{"full-admin", "FullAdmin"},
		{"a", "A"},
		{"a_b", "AB"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, column.Pascal(tt.input))
		})
	}
}
