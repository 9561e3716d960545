package gen

import (
	"context"
	"errors"
	"testing"

	"github.com/dave/jennifer/jen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/membergen"
	"github.com/syssam/membergen/compiler/annotate"
	"github.com/syssam/membergen/compiler/model"
	"github.com/syssam/membergen/compiler/prime"
	"github.com/syssam/membergen/schema/column"
)

func userColumns() []column.Column {
	return []column.Column{
		column.Long("id").Identity().Descriptor(),
		column.String("name").Length(50).Descriptor(),
		column.String("email").Raw("EMAIL").Length(120).Nullable().Descriptor(),
		column.Int("age").Descriptor(),
	}
}

func run(t *testing.T, configs PluginConfigs, primes prime.Source, c *model.Class) error {
	t.Helper()
	chain, err := NewPlugins(configs, primes, nil)
	require.NoError(t, err)
	r, err := NewRunner(chain)
	require.NoError(t, err)
	return r.Run(context.Background(), &Job{Class: c})
}

func TestNewPlugins(t *testing.T) {
	t.Run("order", func(t *testing.T) {
		chain, err := NewPlugins(PluginConfigs{
			{Name: ValidationName},
			{Name: JSONName},
			{Name: ToStringName},
			{Name: EqualsHashCodeName},
		}, prime.NewSequence(), nil)
		require.NoError(t, err)
		var names []string
		for _, p := range chain.Plugins() {
			names = append(names, p.Name())
		}
		assert.Equal(t, []string{ValidationName, JSONName, ToStringName, EqualsHashCodeName}, names)
	})

	t.Run("unknown plugin", func(t *testing.T) {
		_, err := NewPlugins(PluginConfigs{{Name: "serializable"}}, prime.NewSequence(), nil)
		require.Error(t, err)
		assert.True(t, membergen.IsConfigError(err))
		assert.Contains(t, err.Error(), "serializable")
	})

	t.Run("hash plugin needs primes", func(t *testing.T) {
		_, err := NewPlugins(PluginConfigs{{Name: EqualsHashCodeName}}, nil, nil)
		assert.ErrorIs(t, err, membergen.ErrInvalidConfig)
	})
}

func TestEqualsHashCodePlugin(t *testing.T) {
	cols := userColumns()
	c := newClass("User", cols...)
	c.Super = model.NewClass("models", "Base")
	configs := PluginConfigs{{Name: EqualsHashCodeName, Properties: Properties{UseHashFromRoot: "true"}}}
	require.NoError(t, run(t, configs, prime.NewSequence(), c))

	_, ok := c.Member("HashCode")
	assert.True(t, ok)
	_, ok = c.Member("Equal")
	assert.True(t, ok)
	out := render(c)
	assert.Contains(t, out, "const prime = 2")
	assert.Contains(t, out, "m.Base.HashCode()")
	assert.Contains(t, out, "m.Base.Equal(&other.Base)")
}

func TestEqualsHashCodePlugin_Exhausted(t *testing.T) {
	primes := prime.NewSequence(prime.WithSeed(2147483587))
	chain, err := NewPlugins(PluginConfigs{{Name: EqualsHashCodeName}, {Name: ToStringName}}, primes, nil)
	require.NoError(t, err)
	r, err := NewRunner(chain)
	require.NoError(t, err)

	first, second, third := newClass("A", userColumns()...), newClass("B", userColumns()...), newClass("C", userColumns()...)
	members := len(second.Members)
	err = r.Run(context.Background(), &Job{Class: first}, &Job{Class: second}, &Job{Class: third})
	require.Error(t, err)
	assert.True(t, errors.Is(err, membergen.ErrPrimeSpaceExhausted))
	assert.True(t, errors.Is(err, ErrSynthesisFailed))

	var synErr *SynthesisError
	require.True(t, errors.As(err, &synErr))
	assert.Equal(t, "B", synErr.Class)
	assert.Equal(t, "BaseClassGenerated", synErr.Hook)

	_, ok := first.Member("HashCode")
	assert.True(t, ok, "the class before exhaustion is complete")
	assert.Len(t, second.Members, members, "the failing class is untouched")
	_, ok = third.Member("String")
	assert.False(t, ok, "the run stops")
}

func TestToStringPlugin(t *testing.T) {
	for _, kind := range []ClassKind{BaseClass, BlobClass, PrimaryKeyClass} {
		t.Run(kind.String(), func(t *testing.T) {
			c := newClass("User", userColumns()...)
			chain, err := NewPlugins(PluginConfigs{{Name: ToStringName, Properties: Properties{IgnoreStaticFieldsInString: "true"}}}, nil, nil)
			require.NoError(t, err)
			r, err := NewRunner(chain)
			require.NoError(t, err)
			require.NoError(t, r.Run(context.Background(), &Job{Class: c, Kind: kind}))
			_, ok := c.Member("String")
			assert.True(t, ok)
		})
	}
}

func TestJSONPlugin(t *testing.T) {
	t.Run("mutable class", func(t *testing.T) {
		c := newClass("User", userColumns()...)
		require.NoError(t, run(t, PluginConfigs{{Name: JSONName}}, nil, c))

		for _, name := range []string{"ID", "Name", "Email", "Age"} {
			f, ok := c.Field("UserField" + name)
			require.True(t, ok, name)
			assert.True(t, f.Static)

			getter, _ := c.Member("Get" + name)
			assert.True(t, getter.HasAnnotation(annotate.JSONGetter), name)
			setter, _ := c.Member("Set" + name)
			assert.True(t, setter.HasAnnotation(annotate.JSONSetter), name)
		}
		assert.Equal(t, []string{annotate.ImportJSON}, c.Imports.List())

		out := render(c)
		assert.Contains(t, out, `UserFieldName  = "Name"`)
		assert.Contains(t, out, "//json:getter=UserFieldName\nfunc (m *User) GetName() string {")
		assert.Contains(t, out, "//json:setter=UserFieldName\nfunc (m *User) SetName(v string) {")
	})

	t.Run("immutable class", func(t *testing.T) {
		c := newClass("User", userColumns()...)
		c.Immutable = true
		c.AddMember(&model.Member{
			Name:        "NewUser",
			Constructor: true,
			Params:      []*model.Param{{Name: "id", Type: jen.Int64()}, {Name: "name", Type: jen.String()}},
			Body:        []jen.Code{jen.Return(jen.Op("&").Id("User").Values(jen.Dict{jen.Id("ID"): jen.Id("id"), jen.Id("Name"): jen.Id("name")}))},
		})
		require.NoError(t, run(t, PluginConfigs{{Name: JSONName}}, nil, c))

		setter, _ := c.Member("SetName")
		assert.Empty(t, setter.AnnotationList())
		ctor, _ := c.Constructor()
		assert.True(t, ctor.HasAnnotation(annotate.JSONCreator))

		out := render(c)
		assert.Contains(t, out, "//json:creator")
		assert.Contains(t, out, "//json:property=UserFieldID id")
		assert.Contains(t, out, "//json:property=UserFieldName name")
	})

	t.Run("constructor based class without constructor", func(t *testing.T) {
		c := newClass("User", userColumns()...)
		c.ConstructorBased = true
		assert.NoError(t, run(t, PluginConfigs{{Name: JSONName}}, nil, c))
		_, ok := c.Constructor()
		assert.False(t, ok)
	})
}

func TestValidationPlugin(t *testing.T) {
	t.Run("fields", func(t *testing.T) {
		c := newClass("User", userColumns()...)
		require.NoError(t, run(t, PluginConfigs{{Name: ValidationName}}, nil, c))

		id, _ := c.Field("ID")
		assert.Empty(t, id.Tags(), "identity columns are not required")
		name, _ := c.Field("Name")
		assert.Equal(t, map[string]string{"validate": "notblank,max=50"}, name.Tags())
		email, _ := c.Field("Email")
		assert.Equal(t, map[string]string{"validate": "omitnil,max=120"}, email.Tags())
		age, _ := c.Field("Age")
		assert.True(t, age.HasAnnotation(annotate.NotNull))
		assert.Empty(t, age.Tags(), "required rejects the zero value of value types")
		getter, _ := c.Member("GetAge")
		assert.Empty(t, getter.AnnotationList(), "never both")
		assert.Equal(t, []string{annotate.ImportValidator}, c.Imports.List())

		assert.Contains(t, render(c), "`validate:\"notblank,max=50\"`")
	})

	t.Run("accessors", func(t *testing.T) {
		c := newClass("User", userColumns()...)
		props := Properties{AnnotateAccessorsInsteadOfFields: "true", MatchEmailAsPattern: "true"}
		require.NoError(t, run(t, PluginConfigs{{Name: ValidationName, Properties: props}}, nil, c))

		age, _ := c.Field("Age")
		assert.Empty(t, age.AnnotationList(), "never both")
		getter, _ := c.Member("GetEmail")
		var values []string
		for _, a := range getter.AnnotationList() {
			values = append(values, a.Value)
		}
		assert.Equal(t, []string{"omitnil", "max=120", "email"}, values)
		getAge, _ := c.Member("GetAge")
		assert.True(t, getAge.HasAnnotation(annotate.NotNull))

		out := render(c)
		assert.Contains(t, out, "//validate:email\nfunc (m *User) GetEmail() *string {")
		assert.NotContains(t, out, "//validate:required")
		assert.NotContains(t, out, "`validate:")
	})
}
