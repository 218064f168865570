package placeholders

import (
	"regexp"
	"strings"
)

// FailMode controls how rendering treats unresolved and null fields.
type FailMode uint8

const (
	// FailSafe substitutes a diagnostic marker naming the offending path
	// and continues rendering. This is the default.
	FailSafe FailMode = iota
	// FailFast aborts the render with an error on the first unresolved or
	// null field.
	FailFast
	// Fallback substitutes the field's declared fallback literal when one
	// exists, else behaves like FailSafe.
	Fallback
)

func (m FailMode) String() string {
	switch m {
	case FailSafe:
		return "fail_safe"
	case FailFast:
		return "fail_fast"
	case Fallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Context binds root placeholder names to values and renders compiled
// messages against them. A context from Create is shareable: once its
// bindings are fixed it may render many distinct messages, concurrently if
// needed. A context from Of is tied to a single message, single goroutine,
// single use. Binding and rendering must never overlap.
type Context struct {
	engine  *Placeholders
	message *CompiledMessage
	mode    FailMode
	fields  map[string]*Placeholder
}

// Create returns a shareable context on the default engine with FailSafe
// mode.
func Create() *Context { return defaultEngine.Create() }

// CreateWithMode returns a shareable context on the default engine.
func CreateWithMode(mode FailMode) *Context { return defaultEngine.CreateWithMode(mode) }

// Of returns a single-message context on the default engine with FailSafe
// mode.
func Of(msg *CompiledMessage) *Context { return defaultEngine.Of(msg) }

// OfWithMode returns a single-message context on the default engine.
func OfWithMode(msg *CompiledMessage, mode FailMode) *Context {
	return defaultEngine.OfWithMode(msg, mode)
}

// Mode returns the context's fail mode.
func (c *Context) Mode() FailMode { return c.mode }

// With binds a value to a root placeholder name and returns the context for
// chaining. In fast mode, a single-message context skips names its message
// never references.
func (c *Context) With(name string, value any) *Context {
	if c.engine.fastMode && c.message != nil {
		if !c.message.HasFields() || !c.message.HasField(name) {
			return c
		}
	}
	c.fields[name] = &Placeholder{engine: c.engine, ctx: c, value: value}
	return c
}

// WithFields binds every entry of the map.
func (c *Context) WithFields(fields map[string]any) *Context {
	for name, value := range fields {
		c.With(name, value)
	}
	return c
}

// Apply renders the context's own message. It fails for shareable contexts,
// which must use ApplyTo.
func (c *Context) Apply() (string, error) {
	if c.message == nil {
		return "", ErrNoMessage
	}
	return c.ApplyTo(c.message)
}

// ApplyTo renders the given message against the context's bindings.
func (c *Context) ApplyTo(msg *CompiledMessage) (string, error) {
	rendered, err := c.renderFields(msg)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.Grow(len(msg.Raw()))
	for _, el := range msg.Elements() {
		switch part := el.(type) {
		case *MessageStatic:
			b.WriteString(part.Value())
		case *MessageField:
			b.WriteString(rendered[part.String()])
		}
	}
	return b.String(), nil
}

// RenderFields renders only the field elements of the message, keyed by the
// canonical field form (MessageField.String). Equal fields render once.
func (c *Context) RenderFields(msg *CompiledMessage) (map[string]string, error) {
	return c.renderFields(msg)
}

func (c *Context) renderFields(msg *CompiledMessage) (map[string]string, error) {
	if c.message != nil && msg != c.message {
		// A prepacked context cannot be reused as a shared one.
		return nil, ErrForeignMessage
	}
	if !msg.HasFields() {
		return map[string]string{}, nil
	}

	rendered := make(map[string]string)
	for _, el := range msg.Elements() {
		field, ok := el.(*MessageField)
		if !ok {
			continue
		}
		if _, done := rendered[field.String()]; done {
			continue
		}
		out, err := c.renderField(msg, field)
		if err != nil {
			return nil, err
		}
		rendered[field.String()] = out
	}
	return rendered, nil
}

func (c *Context) renderField(msg *CompiledMessage, field *MessageField) (string, error) {
	ph, bound := c.fields[field.Name()]
	if !bound || ph.value == nil {
		return c.substituteMissing(msg, field)
	}

	out, ok, err := ph.render(field)
	if err != nil {
		return "", err
	}
	if !ok {
		return c.substituteNull(msg, field)
	}
	return out, nil
}

func (c *Context) substituteMissing(msg *CompiledMessage, field *MessageField) (string, error) {
	if c.mode == Fallback {
		if fb, ok := field.Fallback(); ok {
			return fb, nil
		}
	}
	if c.mode == FailFast {
		return "", &UnresolvedFieldError{Path: field.Path(), Message: msg.Raw()}
	}
	if c.engine.missingLog {
		c.engine.logger.Warn("Placeholder missing", "path", field.Path(), "message", msg.Raw())
	}
	return "<missing:" + field.Path() + ">", nil
}

func (c *Context) substituteNull(msg *CompiledMessage, field *MessageField) (string, error) {
	if c.mode == Fallback {
		if fb, ok := field.Fallback(); ok {
			return fb, nil
		}
	}
	if c.mode == FailFast {
		return "", &NullFieldError{Path: field.Path(), Message: msg.Raw()}
	}
	if c.engine.missingLog {
		c.engine.logger.Warn("Placeholder resolved to null", "path", field.Path(), "message", msg.Raw())
	}
	return "<null:" + field.Path() + ">", nil
}

// chainShape matches parameters that may be nested field expressions:
// plain identifier chains without parameter lists.
var chainShape = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

// ResolveParam interprets a raw parameter string for a handler: a parameter
// shaped like a plain field chain whose root name is bound in the context
// resolves recursively to its rendered value; anything else, including
// anything containing '(', is the literal text itself.
func (c *Context) ResolveParam(raw string) string {
	if !chainShape.MatchString(raw) {
		return raw
	}
	field, err := ParseField(raw)
	if err != nil {
		return raw
	}
	ph, ok := c.fields[field.Name()]
	if !ok {
		return raw
	}
	v, leaf, ok := ph.resolveChain(field)
	if !ok || v == nil {
		return raw
	}
	if _, isErr := v.(error); isErr {
		return raw
	}
	out, ok := c.engine.stringify(v, leaf, c)
	if !ok {
		return raw
	}
	return out
}

// Value resolves a dot/method-call path against the context's bindings and
// returns the raw value without string rendering. An absent root binding is
// always a NotFoundError, regardless of the fail mode. A null resolution
// anywhere along the path is absent, not an error.
func (c *Context) Value(path string) (any, bool, error) {
	field, err := ParseField(path)
	if err != nil {
		return nil, false, err
	}
	ph, ok := c.fields[field.Name()]
	if !ok {
		return nil, false, &NotFoundError{Name: field.Name()}
	}
	v := ph.resolveValue(field)
	if v == nil {
		return nil, false, nil
	}
	return v, true, nil
}

// Value is the typed extraction form. A runtime type mismatch is absent, not
// an error, mirroring the untyped form's null policy.
func Value[T any](c *Context, path string) (T, bool, error) {
	var zero T
	v, ok, err := c.Value(path)
	if err != nil || !ok {
		return zero, false, err
	}
	tv, ok := v.(T)
	if !ok {
		return zero, false, nil
	}
	return tv, true, nil
}

// ValueAs extracts a value and applies a transform before the type is fixed.
// The same absence policy as Value applies.
func ValueAs[T any](c *Context, path string, mapper func(any) T) (T, bool, error) {
	var zero T
	v, ok, err := c.Value(path)
	if err != nil || !ok {
		return zero, false, err
	}
	return mapper(v), true, nil
}
