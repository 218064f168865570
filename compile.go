package placeholders

import (
	"strings"

	"golang.org/x/text/language"
)

// Compile parses a template string into an immutable CompiledMessage for the
// given locale. Compilation is pure and deterministic: the same source and
// locale always produce a structurally equal message.
//
// Text between placeholder regions becomes static elements with escapes
// resolved; each unescaped "{...}" region becomes a field element. An empty
// source compiles to zero elements, a source without placeholders to exactly
// one static element.
func Compile(locale language.Tag, text string) (*CompiledMessage, error) {
	msg := &CompiledMessage{
		raw:    text,
		locale: locale,
		fields: make(map[string]struct{}),
	}
	if text == "" {
		return msg, nil
	}

	var static strings.Builder
	flush := func() {
		if static.Len() > 0 {
			msg.elements = append(msg.elements, &MessageStatic{value: static.String()})
			static.Reset()
		}
	}

	i := 0
	for i < len(text) {
		c := text[i]
		if c == '\\' && i+1 < len(text) && isEscapable(text[i+1]) {
			static.WriteByte(text[i+1])
			i += 2
			continue
		}
		if c == '}' {
			return nil, &SyntaxError{Source: text, Pos: i, Msg: "unmatched '}'"}
		}
		if c != '{' {
			static.WriteByte(c)
			i++
			continue
		}

		end := closingBrace(text, i)
		if end < 0 {
			return nil, &SyntaxError{Source: text, Pos: i, Msg: "unmatched '{'"}
		}
		field, err := parseBody(text[i+1:end], locale)
		if err != nil {
			if se, ok := err.(*SyntaxError); ok {
				return nil, &SyntaxError{Source: text, Pos: i + 1 + se.Pos, Msg: se.Msg}
			}
			return nil, err
		}
		flush()
		msg.elements = append(msg.elements, field)
		msg.fields[field.name] = struct{}{}
		i = end + 1
	}
	flush()
	return msg, nil
}

// MustCompile is like Compile but panics on error. Intended for templates
// fixed at program start.
func MustCompile(locale language.Tag, text string) *CompiledMessage {
	msg, err := Compile(locale, text)
	if err != nil {
		panic(err)
	}
	return msg
}

// closingBrace returns the index of the unescaped '}' terminating the
// placeholder opened at position open, or -1 when the region never closes.
// Placeholder bodies cannot contain further unescaped braces.
func closingBrace(text string, open int) int {
	for i := open + 1; i < len(text); i++ {
		c := text[i]
		if c == '\\' && i+1 < len(text) && isEscapable(text[i+1]) {
			i++
			continue
		}
		switch c {
		case '}':
			return i
		case '{':
			return -1
		}
	}
	return -1
}
