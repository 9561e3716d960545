package gen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/membergen"
)

func TestIsTrue(t *testing.T) {
	for _, s := range []string{"true", "TRUE", "True", "tRuE"} {
		assert.True(t, IsTrue(s), s)
	}
	for _, s := range []string{"", "false", "1", "yes", " true", "on"} {
		assert.False(t, IsTrue(s), s)
	}
}

func TestProperties(t *testing.T) {
	props := Properties{
		UseHashFromRoot:                  "TRUE",
		AppendHashInString:               "no",
		"ignoreStaticFields":             "true",
		"annotateGetters":                "true",
		AnnotateAccessorsInsteadOfFields: "false",
	}
	assert.True(t, props.Bool(UseHashFromRoot))
	assert.False(t, props.Bool(AppendHashInString))
	assert.False(t, props.Bool(UseStringFromRoot), "unset keys are false")
	assert.True(t, props.Bool(IgnoreStaticFieldsInString), "former name")
	assert.False(t, props.Bool(AnnotateAccessorsInsteadOfFields), "current name wins")

	v, ok := props.Get(MatchEmailAsPattern)
	assert.False(t, ok)
	assert.Empty(t, v)
	assert.False(t, Properties(nil).Bool(UseHashFromRoot))
}

func TestLoadProperties(t *testing.T) {
	t.Run("plugins in document order", func(t *testing.T) {
		configs, err := LoadProperties([]byte(`
validation:
  annotateAccessorsInsteadOfFields: true
  matchEmailAsPattern: "TRUE"
equalsHashCode:
  useHashFromRoot: true
json:
toString: {}
`))
		require.NoError(t, err)
		require.Len(t, configs, 4)
		assert.Equal(t, ValidationName, configs[0].Name)
		assert.Equal(t, EqualsHashCodeName, configs[1].Name)
		assert.Equal(t, JSONName, configs[2].Name)
		assert.Equal(t, ToStringName, configs[3].Name)
		assert.True(t, configs[0].Properties.Bool(AnnotateAccessorsInsteadOfFields))
		assert.True(t, configs[0].Properties.Bool(MatchEmailAsPattern))
		assert.Equal(t, "true", configs[1].Properties[UseHashFromRoot])
		assert.NotNil(t, configs[2].Properties)
		assert.Empty(t, configs[3].Properties)
	})

	t.Run("empty document", func(t *testing.T) {
		configs, err := LoadProperties(nil)
		require.NoError(t, err)
		assert.Empty(t, configs)
	})

	t.Run("invalid documents", func(t *testing.T) {
		for name, doc := range map[string]string{
			"sequence":        "- json\n- toString\n",
			"nested property": "toString:\n  useStringFromRoot:\n    nested: true\n",
			"plugin list":     "toString:\n  - a\n",
			"syntax":          "toString: [",
		} {
			t.Run(name, func(t *testing.T) {
				_, err := LoadProperties([]byte(doc))
				require.Error(t, err)
				assert.True(t, errors.Is(err, membergen.ErrInvalidConfig), err.Error())
			})
		}
	})
}
