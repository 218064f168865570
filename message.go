package placeholders

import (
	"strings"

	"golang.org/x/text/language"
)

// MessageElement is a single ordered piece of a compiled message: either a
// static text run or a placeholder field. Element order is render order.
type MessageElement interface {
	element()
}

// MessageStatic is a literal text run with all escapes already resolved.
type MessageStatic struct {
	value string
}

func (*MessageStatic) element() {}

// Value returns the literal text of the run.
func (s *MessageStatic) Value() string { return s.value }

// MessageField is a placeholder reference: a named root segment with an
// optional chain of sub-fields, per-segment parameters, formatting metadata
// and a fallback literal. Chains are built bottom-up from a finite expression
// string, so they are acyclic by construction.
type MessageField struct {
	name        string
	sub         *MessageField
	params      []string
	metadata    string // raw, escapes preserved; split lazily by the format engine
	hasMeta     bool
	fallback    string
	hasFallback bool
	locale      language.Tag
	key         string
}

func (*MessageField) element() {}

// Name returns the segment name.
func (f *MessageField) Name() string { return f.name }

// Sub returns the next segment of the chain, or nil at the chain end.
func (f *MessageField) Sub() *MessageField { return f.sub }

// Params returns the raw parameter strings of this segment. A nil slice
// means no parameter list was present; an empty parameter list is a single
// empty string.
func (f *MessageField) Params() []string { return f.params }

// Param returns the i-th parameter, reporting whether it exists.
func (f *MessageField) Param(i int) (string, bool) {
	if i < 0 || i >= len(f.params) {
		return "", false
	}
	return f.params[i], true
}

// Metadata returns the raw formatting metadata and whether any was declared.
func (f *MessageField) Metadata() (string, bool) { return f.metadata, f.hasMeta }

// Fallback returns the fallback literal and whether one was declared.
func (f *MessageField) Fallback() (string, bool) { return f.fallback, f.hasFallback }

// Locale returns the locale of the message this field was compiled for.
func (f *MessageField) Locale() language.Tag { return f.locale }

// Path returns the full dotted chain path, used in diagnostics and
// fail-safe markers.
func (f *MessageField) Path() string {
	var b strings.Builder
	for seg := f; seg != nil; seg = seg.sub {
		if seg != f {
			b.WriteByte('.')
		}
		b.WriteString(seg.name)
	}
	return b.String()
}

// String returns the canonical source form of the field. Two fields are
// interchangeable for rendering purposes iff their canonical forms are equal;
// the render loop uses this as its per-render cache key.
func (f *MessageField) String() string { return f.key }

// computeKey builds the canonical form. Names and parameters are re-escaped
// so that structurally different fields can never collide.
func (f *MessageField) computeKey() string {
	var b strings.Builder
	if f.hasMeta {
		b.WriteString(f.metadata)
		b.WriteByte('#')
	}
	for seg := f; seg != nil; seg = seg.sub {
		if seg != f {
			b.WriteByte('.')
		}
		b.WriteString(escapeExpr(seg.name))
		if seg.params != nil {
			b.WriteByte('(')
			for i, p := range seg.params {
				if i > 0 {
					b.WriteByte(',')
				}
				b.WriteString(escapeExpr(p))
			}
			b.WriteByte(')')
		}
	}
	if f.hasFallback {
		b.WriteByte('|')
		b.WriteString(escapeExpr(f.fallback))
	}
	return b.String()
}

// CompiledMessage is the immutable compilation result of a template string.
// It is safe to share across goroutines and render concurrently.
type CompiledMessage struct {
	raw      string
	locale   language.Tag
	elements []MessageElement
	fields   map[string]struct{}
}

// Raw returns the original template source.
func (m *CompiledMessage) Raw() string { return m.raw }

// Locale returns the locale the message was compiled for.
func (m *CompiledMessage) Locale() language.Tag { return m.locale }

// HasFields reports whether the message contains any placeholder fields.
func (m *CompiledMessage) HasFields() bool { return len(m.fields) > 0 }

// HasField reports whether the message references the given root name.
func (m *CompiledMessage) HasField(name string) bool {
	_, ok := m.fields[name]
	return ok
}

// Elements returns the ordered message elements. The returned slice must be
// treated as read-only.
func (m *CompiledMessage) Elements() []MessageElement { return m.elements }
