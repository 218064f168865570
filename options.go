package placeholders

import (
	"io"
	"log/slog"
)

// Option configures a Placeholders engine.
type Option func(*Placeholders)

// WithPluralProvider replaces the CLDR-backed plural category provider.
func WithPluralProvider(provider PluralProvider) Option {
	return func(p *Placeholders) {
		if provider != nil {
			p.plural = provider
		}
	}
}

// WithInstantFormatter replaces the localized date-time formatter.
func WithInstantFormatter(formatter InstantFormatter) Option {
	return func(p *Placeholders) {
		if formatter != nil {
			p.instant = formatter
		}
	}
}

// WithFallbackResolver installs a resolver consulted only when no registered
// handler matches a chain segment. This is the plug-in point for reflection
// or other dynamic resolver sources; the engine itself stays agnostic of
// their existence.
func WithFallbackResolver(fn Resolver) Option {
	return func(p *Placeholders) {
		p.fallback = fn
	}
}

// WithFastMode makes single-message contexts skip bindings for names their
// message never references. Useful when one large bindings map serves many
// small messages.
func WithFastMode(fast bool) Option {
	return func(p *Placeholders) {
		p.fastMode = fast
	}
}

// WithLogger provides a customizable logger for the engine.
// If not specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Placeholders) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithMissingLogging controls whether fail-safe marker substitutions are
// logged. Default is false to avoid excessive logging.
func WithMissingLogging(log bool) Option {
	return func(p *Placeholders) {
		p.missingLog = log
	}
}

// WithNoLogging is a convenience option that disables all logging.
func WithNoLogging() Option {
	return func(p *Placeholders) {
		p.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		p.missingLog = false
	}
}
