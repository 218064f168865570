package placeholders_test

import (
	"fmt"
	"testing"

	"github.com/dmitrymomot/placeholders"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type extItem struct {
	Type   string
	Amount int
	Meta   *extMeta
}

type extMeta struct {
	Name string
	Lore string
}

func newItemEngine() *placeholders.Placeholders {
	engine := placeholders.New()
	placeholders.Register(engine.Registry(), "type", func(i *extItem, _ *placeholders.MessageField, _ *placeholders.Context) any {
		return i.Type
	})
	placeholders.Register(engine.Registry(), "amount", func(i *extItem, _ *placeholders.MessageField, _ *placeholders.Context) any {
		return i.Amount
	})
	placeholders.Register(engine.Registry(), "meta", func(i *extItem, _ *placeholders.MessageField, _ *placeholders.Context) any {
		if i.Meta == nil {
			return nil
		}
		return i.Meta
	})
	placeholders.Register(engine.Registry(), "name", func(m *extMeta, _ *placeholders.MessageField, _ *placeholders.Context) any {
		return m.Name
	})
	return engine
}

func TestValueSimple(t *testing.T) {
	ctx := placeholders.Create().
		With("name", "John").
		With("age", 25)

	name, ok, err := placeholders.Value[string](ctx, "name")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "John", name)

	age, ok, err := placeholders.Value[int](ctx, "age")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 25, age)
}

func TestValueNested(t *testing.T) {
	engine := newItemEngine()
	item := &extItem{
		Type:   "Stone",
		Amount: 123,
		Meta:   &extMeta{Name: "Red stone", Lore: "Really nice stone. I like it."},
	}
	ctx := engine.Create().With("item", item)

	metaName, ok, err := placeholders.Value[string](ctx, "item.meta.name")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Red stone", metaName)

	meta, ok, err := placeholders.Value[*extMeta](ctx, "item.meta")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, item.Meta, meta)

	amount, ok, err := placeholders.Value[int](ctx, "item.amount")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 123, amount)
}

func TestValueTypeMismatchIsAbsent(t *testing.T) {
	ctx := placeholders.Create().With("age", 25)

	_, ok, err := placeholders.Value[string](ctx, "age")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValueMissingRootIsError(t *testing.T) {
	ctx := placeholders.Create().With("name", "John")

	_, ok, err := ctx.Value("missing")
	require.Error(t, err)
	assert.False(t, ok)
	assert.ErrorIs(t, err, placeholders.ErrPlaceholderNotFound)

	_, ok, err = placeholders.Value[string](ctx, "missing")
	require.Error(t, err)
	assert.False(t, ok)
	assert.ErrorIs(t, err, placeholders.ErrPlaceholderNotFound)
}

func TestValueNullStepIsAbsent(t *testing.T) {
	engine := newItemEngine()
	ctx := engine.Create().With("item", &extItem{Type: "Dirt"})

	_, ok, err := ctx.Value("item.meta.name")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValueUnresolvedStepIsAbsent(t *testing.T) {
	engine := newItemEngine()
	ctx := engine.Create().With("item", &extItem{Type: "Dirt"})

	_, ok, err := ctx.Value("item.nosuch")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValueWithMapper(t *testing.T) {
	ctx := placeholders.Create().With("age", 25)

	ageStr, ok, err := placeholders.ValueAs(ctx, "age", func(v any) string {
		return fmt.Sprintf("%v", v)
	})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "25", ageStr)

	ageDouble, ok, err := placeholders.ValueAs(ctx, "age", func(v any) float64 {
		return float64(v.(int))
	})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 25.0, ageDouble)
}

func TestValueNestedWithMapper(t *testing.T) {
	engine := newItemEngine()
	ctx := engine.Create().With("item", &extItem{Amount: 123})

	amountStr, ok, err := placeholders.ValueAs(ctx, "item.amount", func(v any) string {
		return fmt.Sprintf("Amount: %v", v)
	})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Amount: 123", amountStr)
}

func TestValueRawForm(t *testing.T) {
	ctx := placeholders.Create().With("age", 25)

	v, ok, err := ctx.Value("age")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 25, v)
}

func TestValueBadPath(t *testing.T) {
	ctx := placeholders.Create().With("a", 1)

	_, _, err := ctx.Value("a.b(unclosed")
	require.Error(t, err)
	assert.ErrorIs(t, err, placeholders.ErrTemplateSyntax)
}
