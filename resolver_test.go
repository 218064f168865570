package placeholders_test

import (
	"reflect"
	"testing"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/placeholders"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type animal interface {
	Kind() string
}

type dog struct{ name string }

func (d dog) Kind() string { return "dog" }

type cat struct{ name string }

func (c cat) Kind() string { return "cat" }

func TestRegistryExactTypeWins(t *testing.T) {
	engine := placeholders.New()
	r := engine.Registry()
	placeholders.Register(r, "sound", func(_ animal, _ *placeholders.MessageField, _ *placeholders.Context) any {
		return "generic noise"
	})
	placeholders.Register(r, "sound", func(_ dog, _ *placeholders.MessageField, _ *placeholders.Context) any {
		return "woof"
	})

	msg := placeholders.MustCompile(language.English, "{a.sound}")

	out, err := engine.Of(msg).With("a", dog{name: "Rex"}).Apply()
	require.NoError(t, err)
	assert.Equal(t, "woof", out)

	out, err = engine.Of(msg).With("a", cat{name: "Tom"}).Apply()
	require.NoError(t, err)
	assert.Equal(t, "generic noise", out)
}

func TestRegistryInterfaceDispatch(t *testing.T) {
	engine := placeholders.New()
	placeholders.Register(engine.Registry(), "kind", func(a animal, _ *placeholders.MessageField, _ *placeholders.Context) any {
		return a.Kind()
	})
	msg := placeholders.MustCompile(language.English, "{a.kind}/{b.kind}")

	out, err := engine.Create().
		With("a", dog{}).
		With("b", cat{}).
		ApplyTo(msg)
	require.NoError(t, err)
	assert.Equal(t, "dog/cat", out)
}

func TestRegistryDeclaredSupertypes(t *testing.T) {
	type base struct{ label string }
	type derived struct{ base }

	engine := placeholders.New()
	r := engine.Registry()
	// Handlers registered on a declared supertype receive values of the
	// subtype, so they take the untyped form.
	r.RegisterType(reflect.TypeOf(base{}), "label", func(v any, _ *placeholders.MessageField, _ *placeholders.Context) any {
		switch t := v.(type) {
		case base:
			return t.label
		case derived:
			return t.label
		default:
			return nil
		}
	})
	r.DeclareSupertypes(reflect.TypeOf(derived{}), reflect.TypeOf(base{}))

	msg := placeholders.MustCompile(language.English, "{v.label}")
	out, err := engine.Of(msg).With("v", derived{base{label: "x"}}).Apply()
	require.NoError(t, err)
	assert.Equal(t, "x", out)
}

func TestRegistryPointerFallsBackToElem(t *testing.T) {
	type widget struct{ id int }

	engine := placeholders.New()
	placeholders.Register(engine.Registry(), "id", func(w widget, _ *placeholders.MessageField, _ *placeholders.Context) any {
		return w.id
	})

	msg := placeholders.MustCompile(language.English, "{w.id}")
	_, err := engine.OfWithMode(msg, placeholders.FailFast).With("w", &widget{id: 7}).Apply()
	// *widget does not convert to widget in the handler, so the resolver
	// yields null rather than a value. The point is that lookup matched
	// through the element type instead of reporting unresolved.
	require.Error(t, err)
	assert.ErrorIs(t, err, placeholders.ErrNullField)
}

func TestRegistryReregistrationReplacesAndInvalidatesCache(t *testing.T) {
	engine := placeholders.New()
	r := engine.Registry()
	placeholders.Register(r, "name", func(_ dog, _ *placeholders.MessageField, _ *placeholders.Context) any {
		return "old"
	})

	msg := placeholders.MustCompile(language.English, "{d.name}")
	out, err := engine.Of(msg).With("d", dog{}).Apply()
	require.NoError(t, err)
	assert.Equal(t, "old", out)

	placeholders.Register(r, "name", func(_ dog, _ *placeholders.MessageField, _ *placeholders.Context) any {
		return "new"
	})
	out, err = engine.Of(msg).With("d", dog{}).Apply()
	require.NoError(t, err)
	assert.Equal(t, "new", out)
}

func TestRegistryRegisterAfterMissInvalidatesCache(t *testing.T) {
	engine := placeholders.New()
	msg := placeholders.MustCompile(language.English, "{d.name}")

	out, err := engine.Create().With("d", dog{}).ApplyTo(msg)
	require.NoError(t, err)
	assert.Equal(t, "<null:d.name>", out)

	placeholders.Register(engine.Registry(), "name", func(d dog, _ *placeholders.MessageField, _ *placeholders.Context) any {
		return d.name
	})
	out, err = engine.Create().With("d", dog{name: "Rex"}).ApplyTo(msg)
	require.NoError(t, err)
	assert.Equal(t, "Rex", out)
}

func TestRegistryResolveDirect(t *testing.T) {
	r := placeholders.NewRegistry()
	placeholders.Register(r, "kind", func(a animal, _ *placeholders.MessageField, _ *placeholders.Context) any {
		return a.Kind()
	})

	field, err := placeholders.ParseField("kind")
	require.NoError(t, err)

	v, ok := r.Resolve(dog{}, field, nil)
	require.True(t, ok)
	assert.Equal(t, "dog", v)

	_, ok = r.Resolve(42, field, nil)
	assert.False(t, ok)
}

func TestRegistryChainableRegistration(t *testing.T) {
	r := placeholders.NewRegistry().
		RegisterType(reflect.TypeOf(dog{}), "a", func(_ any, _ *placeholders.MessageField, _ *placeholders.Context) any { return 1 }).
		RegisterType(reflect.TypeOf(dog{}), "b", func(_ any, _ *placeholders.MessageField, _ *placeholders.Context) any { return 2 })

	field, err := placeholders.ParseField("b")
	require.NoError(t, err)
	v, ok := r.Resolve(dog{}, field, nil)
	require.True(t, ok)
	assert.Equal(t, 2, v)
}
