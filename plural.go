package placeholders

import (
	"sync"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// PluralProvider maps a locale and a cardinal number to a zero-based index
// into the supplied number of alternatives. Implementations must clamp the
// result to [0, forms).
type PluralProvider interface {
	Index(locale language.Tag, n int64, forms int) int
}

// CLDRProvider is the default PluralProvider, backed by the CLDR cardinal
// rules shipped with golang.org/x/text. For each locale it derives the
// ordered list of plural categories the locale actually uses (canonical
// order: zero, one, two, few, many, other) and maps the category matched for
// a number to its position in that list, clamped to the available
// alternatives. English therefore selects index 0 for 1 and index 1
// otherwise; Polish distributes 1 / 2-4 / 5+ over three alternatives.
//
// Derived category lists are cached per locale; the provider is safe for
// concurrent use.
type CLDRProvider struct {
	cache sync.Map // language.Tag string form -> []plural.Form
}

// NewCLDRProvider creates a CLDR-backed plural provider.
func NewCLDRProvider() *CLDRProvider { return &CLDRProvider{} }

var canonicalForms = []plural.Form{
	plural.Zero, plural.One, plural.Two, plural.Few, plural.Many, plural.Other,
}

// Index implements PluralProvider. Negative numbers select by their absolute
// value, as CLDR rules are defined over magnitudes.
func (p *CLDRProvider) Index(locale language.Tag, n int64, forms int) int {
	if forms <= 0 {
		return 0
	}
	if n < 0 {
		n = -n
	}
	matched := plural.Cardinal.MatchPlural(locale, int(n), 0, 0, 0, 0)
	idx := -1
	for i, f := range p.activeForms(locale) {
		if f == matched {
			idx = i
			break
		}
	}
	if idx < 0 {
		idx = forms - 1
	}
	if idx > forms-1 {
		idx = forms - 1
	}
	return idx
}

// activeForms probes the locale's cardinal rule over a small integer range
// to discover which categories it distinguishes. The probe covers every
// integer rule boundary in CLDR (teens, hundreds, etc. repeat beyond it).
func (p *CLDRProvider) activeForms(locale language.Tag) []plural.Form {
	key := locale.String()
	if v, ok := p.cache.Load(key); ok {
		return v.([]plural.Form)
	}
	seen := make(map[plural.Form]bool, 6)
	for n := 0; n < 200; n++ {
		seen[plural.Cardinal.MatchPlural(locale, n, 0, 0, 0, 0)] = true
	}
	active := make([]plural.Form, 0, 6)
	for _, f := range canonicalForms {
		if seen[f] {
			active = append(active, f)
		}
	}
	p.cache.Store(key, active)
	return active
}
