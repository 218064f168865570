package placeholders

import (
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// InstantKind selects which part of an instant is rendered.
type InstantKind uint8

const (
	// InstantTime renders the time of day only ("lt" metadata).
	InstantTime InstantKind = iota
	// InstantDateTime renders date and time ("ldt" metadata).
	InstantDateTime
	// InstantDate renders the date only ("ld" metadata).
	InstantDate
)

// InstantStyle selects the verbosity of a predefined instant format.
type InstantStyle uint8

const (
	StyleShort InstantStyle = iota
	StyleMedium
	StyleLong
)

// InstantFormatter renders timestamps in a locale-aware manner. The engine
// treats it as an opaque provider; replace it via WithInstantFormatter when
// a different calendar system is needed.
type InstantFormatter interface {
	Format(locale language.Tag, t time.Time, kind InstantKind, style InstantStyle, loc *time.Location) string
	FormatLayout(locale language.Tag, t time.Time, layout string, loc *time.Location) string
}

var dateLayouts = [3]string{"01/02/06", "Jan 2, 2006", "January 2, 2006"}

var timeLayouts = [3]string{"3:04 PM", "3:04:05 PM", "3:04:05 PM MST"}

// mondayFormatter is the default InstantFormatter. It renders Go reference
// layouts with localized month and day names via goodsign/monday.
type mondayFormatter struct{}

// NewInstantFormatter creates the default localized instant formatter.
func NewInstantFormatter() InstantFormatter { return mondayFormatter{} }

func (mondayFormatter) Format(locale language.Tag, t time.Time, kind InstantKind, style InstantStyle, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	var layout string
	switch kind {
	case InstantTime:
		layout = timeLayouts[style]
	case InstantDate:
		layout = dateLayouts[style]
	default:
		layout = dateLayouts[style] + " " + timeLayouts[style]
	}
	return monday.Format(t.In(loc), layout, mondayLocale(locale))
}

func (mondayFormatter) FormatLayout(locale language.Tag, t time.Time, layout string, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return monday.Format(t.In(loc), layout, mondayLocale(locale))
}

var mondayLocales = map[string]monday.Locale{
	"en": monday.LocaleEnUS,
	"fr": monday.LocaleFrFR,
	"de": monday.LocaleDeDE,
	"es": monday.LocaleEsES,
	"it": monday.LocaleItIT,
	"pt": monday.LocalePtPT,
	"nl": monday.LocaleNlNL,
	"pl": monday.LocalePlPL,
	"ru": monday.LocaleRuRU,
	"ja": monday.LocaleJaJP,
	"zh": monday.LocaleZhCN,
	"ko": monday.LocaleKoKR,
	"sv": monday.LocaleSvSE,
	"da": monday.LocaleDaDK,
	"fi": monday.LocaleFiFI,
	"nb": monday.LocaleNbNO,
	"tr": monday.LocaleTrTR,
}

// mondayLocale maps a language tag to the closest monday locale, falling
// back to en_US for languages without localized calendar data.
func mondayLocale(locale language.Tag) monday.Locale {
	base, _ := locale.Base()
	if l, ok := mondayLocales[base.String()]; ok {
		return l
	}
	return monday.LocaleEnUS
}
