package placeholders_test

import (
	"errors"
	"testing"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/placeholders"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileEmptySource(t *testing.T) {
	msg, err := placeholders.Compile(language.English, "")
	require.NoError(t, err)
	assert.Empty(t, msg.Elements())
	assert.False(t, msg.HasFields())
	assert.Equal(t, "", msg.Raw())
}

func TestCompileStaticOnly(t *testing.T) {
	msg, err := placeholders.Compile(language.English, "just some text")
	require.NoError(t, err)
	require.Len(t, msg.Elements(), 1)

	static, ok := msg.Elements()[0].(*placeholders.MessageStatic)
	require.True(t, ok)
	assert.Equal(t, "just some text", static.Value())
	assert.False(t, msg.HasFields())
}

func TestCompileMixedElements(t *testing.T) {
	msg, err := placeholders.Compile(language.English, "Hello, {name}! Bye, {name}.")
	require.NoError(t, err)
	require.Len(t, msg.Elements(), 4)

	_, ok := msg.Elements()[0].(*placeholders.MessageStatic)
	assert.True(t, ok)
	field, ok := msg.Elements()[1].(*placeholders.MessageField)
	require.True(t, ok)
	assert.Equal(t, "name", field.Name())
	assert.True(t, msg.HasFields())
	assert.True(t, msg.HasField("name"))
	assert.False(t, msg.HasField("other"))
}

func TestCompileFieldCarriesLocale(t *testing.T) {
	msg, err := placeholders.Compile(language.Polish, "{name}")
	require.NoError(t, err)

	field := msg.Elements()[0].(*placeholders.MessageField)
	assert.Equal(t, language.Polish, field.Locale())
}

func TestCompileEscapedBraces(t *testing.T) {
	msg, err := placeholders.Compile(language.English, `\{name\} \# \. \, \| \( \)`)
	require.NoError(t, err)
	require.Len(t, msg.Elements(), 1)

	static := msg.Elements()[0].(*placeholders.MessageStatic)
	assert.Equal(t, "{name} # . , | ( )", static.Value())
	assert.False(t, msg.HasFields())
}

func TestCompileUnknownEscapeKeepsBackslash(t *testing.T) {
	msg, err := placeholders.Compile(language.English, `a\qb`)
	require.NoError(t, err)

	static := msg.Elements()[0].(*placeholders.MessageStatic)
	assert.Equal(t, `a\qb`, static.Value())
}

func TestCompileUnmatchedBraces(t *testing.T) {
	_, err := placeholders.Compile(language.English, "broken {name")
	require.Error(t, err)
	assert.ErrorIs(t, err, placeholders.ErrTemplateSyntax)

	_, err = placeholders.Compile(language.English, "broken name}")
	require.Error(t, err)
	assert.ErrorIs(t, err, placeholders.ErrTemplateSyntax)
}

func TestCompileUnbalancedParams(t *testing.T) {
	_, err := placeholders.Compile(language.English, "{a.b(1,2}")
	require.Error(t, err)
	assert.ErrorIs(t, err, placeholders.ErrTemplateSyntax)

	var syntaxErr *placeholders.SyntaxError
	require.True(t, errors.As(err, &syntaxErr))
}

func TestCompileDeterministic(t *testing.T) {
	const src = "Hello, {name|stranger}! {apple,apples#amount}"
	first, err := placeholders.Compile(language.English, src)
	require.NoError(t, err)
	second, err := placeholders.Compile(language.English, src)
	require.NoError(t, err)

	require.Len(t, second.Elements(), len(first.Elements()))
	for i, el := range first.Elements() {
		switch part := el.(type) {
		case *placeholders.MessageStatic:
			other, ok := second.Elements()[i].(*placeholders.MessageStatic)
			require.True(t, ok)
			assert.Equal(t, part.Value(), other.Value())
		case *placeholders.MessageField:
			other, ok := second.Elements()[i].(*placeholders.MessageField)
			require.True(t, ok)
			assert.Equal(t, part.String(), other.String())
		}
	}
}

func TestMustCompilePanics(t *testing.T) {
	assert.Panics(t, func() {
		placeholders.MustCompile(language.English, "{broken")
	})
}
