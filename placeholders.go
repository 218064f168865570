package placeholders

import (
	"io"
	"log/slog"
	"reflect"
	"time"
)

// Placeholders is the engine facade: one resolver registry plus the locale
// providers shared by every context created from it. Configure it once at
// startup, then share it freely; all engine state is read-only after setup.
type Placeholders struct {
	registry   *Registry
	plural     PluralProvider
	instant    InstantFormatter
	fallback   Resolver
	fastMode   bool
	missingLog bool
	logger     *slog.Logger
}

// New creates an engine with an empty registry, CLDR-backed pluralization,
// the default localized instant formatter and a discard logger.
func New(opts ...Option) *Placeholders {
	p := &Placeholders{
		registry: NewRegistry(),
		plural:   NewCLDRProvider(),
		instant:  NewInstantFormatter(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)), // Nope-logger by default
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// defaultEngine backs the package-level context constructors. It has no
// registered resolvers, so it renders plain values, durations and instants
// but not custom object chains.
var defaultEngine = New()

// Registry returns the engine's resolver registry.
func (p *Placeholders) Registry() *Registry { return p.registry }

// RegisterType adds a resolver to the engine's registry and returns the
// engine for chaining.
func (p *Placeholders) RegisterType(typ reflect.Type, name string, fn Resolver) *Placeholders {
	p.registry.RegisterType(typ, name, fn)
	return p
}

// Create returns a shareable context bound to this engine with the FailSafe
// mode.
func (p *Placeholders) Create() *Context { return p.CreateWithMode(FailSafe) }

// CreateWithMode returns a shareable context bound to this engine.
func (p *Placeholders) CreateWithMode(mode FailMode) *Context {
	return &Context{engine: p, mode: mode, fields: make(map[string]*Placeholder)}
}

// Of returns a single-message context bound to this engine with the FailSafe
// mode.
func (p *Placeholders) Of(msg *CompiledMessage) *Context { return p.OfWithMode(msg, FailSafe) }

// OfWithMode returns a single-message context bound to this engine. The
// context can only render its own message and is meant for one render on one
// goroutine.
func (p *Placeholders) OfWithMode(msg *CompiledMessage, mode FailMode) *Context {
	return &Context{engine: p, message: msg, mode: mode, fields: make(map[string]*Placeholder)}
}

// resolveStep resolves one chain segment against the current value:
// registered resolvers first, then the built-in duration accessors, then the
// engine's fallback resolver.
func (p *Placeholders) resolveStep(v any, field *MessageField, ctx *Context) (any, bool) {
	if out, ok := p.registry.Resolve(v, field, ctx); ok {
		return out, true
	}
	if d, ok := v.(time.Duration); ok {
		if out, ok := p.durationAccessor(d, field); ok {
			return out, true
		}
	}
	if p.fallback != nil {
		if out := p.fallback(v, field, ctx); out != nil {
			return out, true
		}
	}
	return nil, false
}
