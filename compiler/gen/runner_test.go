package gen

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/membergen"
	"github.com/syssam/membergen/compiler/model"
	"github.com/syssam/membergen/compiler/prime"
	"github.com/syssam/membergen/schema/column"
)

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := NewConfig()
		require.NoError(t, err)
		assert.Equal(t, 1, cfg.Workers)
		assert.NotNil(t, cfg.Logger)
	})

	t.Run("invalid options", func(t *testing.T) {
		_, err := NewConfig(WithWorkers(0))
		assert.True(t, membergen.IsConfigError(err))
		_, err = NewConfig(WithLogger(nil))
		assert.True(t, membergen.IsConfigError(err))

		cfg := &Config{}
		err = cfg.ApplyAll(WithWorkers(-1), WithLogger(nil), WithWorkers(4))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Workers")
		assert.Contains(t, err.Error(), "Logger")
		assert.Equal(t, 4, cfg.Workers)
	})
}

func TestNewRunner(t *testing.T) {
	_, err := NewRunner(nil)
	assert.ErrorIs(t, err, membergen.ErrInvalidConfig)
	_, err = NewRunner(NewChain(), WithWorkers(0))
	assert.ErrorIs(t, err, membergen.ErrInvalidConfig)
}

func TestRunner_Hooks(t *testing.T) {
	var calls []string
	rec := &hookRecorder{calls: &calls}
	r, err := NewRunner(NewChain(rec), WithLogger(slog.Default()))
	require.NoError(t, err)

	c := model.NewClass("models", "User")
	id, _ := c.AddColumn(column.Long("id").Descriptor())
	c.AddGetter(id)
	name, _ := c.AddColumn(column.String("name").Descriptor())
	c.AddSetter(name)

	require.NoError(t, r.Run(context.Background(),
		&Job{Class: c},
		&Job{Class: c, Kind: BlobClass, Columns: c.Columns[1:]},
		&Job{Class: c, Kind: PrimaryKeyClass, Columns: c.Columns[:1]},
	))
	assert.Equal(t, []string{
		"field:ID", "getter:GetID", "field:Name", "setter:SetName", "base:2",
		"field:Name", "setter:SetName", "blob:1",
		"field:ID", "getter:GetID", "pk:1",
	}, calls)
}

func TestRunner_SequentialPrimes(t *testing.T) {
	chain, err := NewPlugins(PluginConfigs{{Name: EqualsHashCodeName}}, prime.NewSequence(), nil)
	require.NoError(t, err)
	r, err := NewRunner(chain)
	require.NoError(t, err)

	var jobs []*Job
	for i := 0; i < 5; i++ {
		jobs = append(jobs, &Job{Class: newClass(fmt.Sprintf("T%d", i), column.Int("id").Descriptor())})
	}
	require.NoError(t, r.Run(context.Background(), jobs...))
	for i, want := range []int{2, 3, 5, 7, 11} {
		assert.Contains(t, render(jobs[i].Class), fmt.Sprintf("const prime = %d", want))
	}
}

func TestRunner_Workers(t *testing.T) {
	seq := prime.NewSequence()
	chain, err := NewPlugins(PluginConfigs{{Name: EqualsHashCodeName}, {Name: ToStringName}}, seq, nil)
	require.NoError(t, err)
	r, err := NewRunner(chain, WithWorkers(4))
	require.NoError(t, err)

	var jobs []*Job
	for i := 0; i < 32; i++ {
		jobs = append(jobs, &Job{Class: newClass(fmt.Sprintf("T%d", i), column.Int("id").Descriptor())})
	}
	require.NoError(t, r.Run(context.Background(), jobs...))

	seen := make(map[string]bool)
	for _, job := range jobs {
		m, ok := job.Class.Member("HashCode")
		require.True(t, ok)
		p := fmt.Sprintf("%#v", m.Body[0])
		assert.False(t, seen[p], "multiplier reused")
		seen[p] = true
	}
	assert.Equal(t, int64(131), seq.Last(), "32nd prime")
}

func TestRunner_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, workers := range []int{1, 2} {
		r, err := NewRunner(NewChain(), WithWorkers(workers))
		require.NoError(t, err)
		err = r.Run(ctx, &Job{Class: model.NewClass("models", "User")})
		assert.ErrorIs(t, err, context.Canceled)
	}
}

// hookRecorder records the hooks and the members they receive.
type hookRecorder struct {
	Adapter
	calls *[]string
}

func (*hookRecorder) Name() string { return "recorder" }

func (h *hookRecorder) add(format string, args ...any) bool {
	*h.calls = append(*h.calls, fmt.Sprintf(format, args...))
	return true
}

func (h *hookRecorder) BaseClassGenerated(_ *model.Class, cols []column.Column) bool {
	return h.add("base:%d", len(cols))
}

func (h *hookRecorder) BlobClassGenerated(_ *model.Class, cols []column.Column) bool {
	return h.add("blob:%d", len(cols))
}

func (h *hookRecorder) PrimaryKeyClassGenerated(_ *model.Class, cols []column.Column) bool {
	return h.add("pk:%d", len(cols))
}

func (h *hookRecorder) FieldGenerated(f *model.Field, _ *model.Class, _ column.Column) bool {
	return h.add("field:%s", f.Name)
}

func (h *hookRecorder) GetterGenerated(m *model.Member, _ *model.Class, _ column.Column) bool {
	return h.add("getter:%s", m.Name)
}

func (h *hookRecorder) SetterGenerated(m *model.Member, _ *model.Class, _ column.Column) bool {
	return h.add("setter:%s", m.Name)
}
