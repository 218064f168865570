// Package placeholders is a compiled text-templating engine: template
// strings containing placeholder expressions are compiled once into an
// immutable message representation, then rendered many times against
// different value bindings without re-parsing. It targets applications that
// produce user-facing text repeatedly from a fixed set of templates whose
// values vary per render.
//
// The package provides:
//
//   - A template compiler producing shareable, concurrency-safe compiled
//     messages from "{...}" placeholder syntax with escaping.
//   - A placeholder expression grammar with dot-separated field chains,
//     per-segment parameter lists, formatting metadata and fallbacks:
//     "{metadata#name.sub(params)|fallback}".
//   - A type-indexed resolver registry with ancestor-aware dispatch, so
//     values of host types resolve named properties through registered
//     handlers.
//   - Built-in formatting sub-languages: plural and boolean alternatives,
//     "%.Nf" numeric formatting, localized date-time rendering, and a
//     duration mini-language with a default form and user-defined patterns.
//   - Render contexts with a configurable fail mode for unresolved and null
//     fields.
//
// # Compilation and rendering
//
// Messages compile for a locale and render against contexts:
//
//	msg := placeholders.MustCompile(language.English, "Hello, {player.name}! You have {apple,apples#amount}.")
//
//	engine := placeholders.New()
//	placeholders.Register(engine.Registry(), "name", func(p *Player, _ *placeholders.MessageField, _ *placeholders.Context) any {
//		return p.Name
//	})
//
//	out, err := engine.Of(msg).
//		With("player", player).
//		With("amount", 3).
//		Apply()
//
// A context from Create is shareable: fix its bindings, then render any
// number of messages with ApplyTo, concurrently if needed. A context from Of
// belongs to one message, one goroutine, one render. Binding and rendering
// must never overlap.
//
// # Formatting metadata
//
// The text before an unescaped '#' selects a formatter for the resolved
// value:
//
//	{apple,apples#amount}      plural alternatives, locale cardinal rules
//	{on,off#enabled}           boolean selection
//	{%.2f#balance}             fixed fractional digits, round half up
//	{ld,medium,UTC#when}       localized date (lt time, ldt date+time)
//	{p,2006-01-02,UTC#when}    explicit Go layout
//
// The instant kind keywords (lt, ldt, ld, p) are reserved: alternative lists
// must not start with one of them.
//
// Durations use parameters and sub-fields instead of metadata:
//
//	{d(h)}                     default form down to hours, e.g. "88d21h"
//	{d.minutes}                single component as a plain number
//	{d.format([h]h (m)<min,mins>)}  custom pattern
//
// # Fail modes
//
// FailSafe (the default) substitutes "<missing:path>" or "<null:path>"
// markers and continues. FailFast aborts the render with an error. Fallback
// substitutes the field's "|fallback" literal when present. Errors returned
// or panics raised by registered handlers are never converted to markers;
// they propagate to the render caller.
//
// # Locale data
//
// Plural category selection and calendar formatting are pluggable providers.
// The defaults use the CLDR cardinal rules from golang.org/x/text and
// localized month and day names from github.com/goodsign/monday; replace
// them with WithPluralProvider and WithInstantFormatter.
package placeholders
