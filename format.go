package placeholders

import (
	"math"
	"regexp"
	"strconv"
	"time"
)

var numberSpec = regexp.MustCompile(`^%\.([0-9]+)f$`)

// applyMetadata interprets a field's formatting metadata against the value
// resolved for it. Dispatch is by metadata shape first, then by value type:
//
//   - "%.Nf"                      numeric formatting, round half up
//   - "lt|ldt|ld,style,timezone"  localized instant, predefined style
//   - "p,layout,timezone"         localized instant, explicit layout
//   - "a,b"                       boolean selection when the value is a bool
//   - "a,b[,c...]"                plural alternatives for a cardinal number
//
// A false result reports that the metadata could not be applied to the
// value; the caller treats it as a null resolution.
func (p *Placeholders) applyMetadata(meta string, v any, field *MessageField, ctx *Context) (string, bool) {
	if m := numberSpec.FindStringSubmatch(meta); m != nil {
		f, ok := toFloat64(v)
		if !ok {
			return "", false
		}
		digits, _ := strconv.Atoi(m[1])
		return formatNumber(f, digits), true
	}

	parts := splitUnescaped(meta, ',')
	if len(parts) < 2 {
		return "", false
	}

	switch parts[0] {
	case "lt", "ldt", "ld", "p":
		return p.formatInstant(parts, v, field)
	}

	alternatives := make([]string, len(parts))
	for i, raw := range parts {
		alternatives[i] = unescapeExpr(raw)
	}

	if b, ok := v.(bool); ok && len(alternatives) == 2 {
		if b {
			return alternatives[0], true
		}
		return alternatives[1], true
	}

	n, ok := toInt64(v)
	if !ok {
		return "", false
	}
	idx := p.plural.Index(field.Locale(), n, len(alternatives))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(alternatives) {
		idx = len(alternatives) - 1
	}
	return alternatives[idx], true
}

// formatInstant renders a time.Time per instant metadata. The first part is
// the kind ("lt" time, "ldt" date+time, "ld" date, "p" explicit layout), the
// second the style or layout, the optional third an IANA timezone name
// (default UTC). Commas inside an explicit layout are escaped.
func (p *Placeholders) formatInstant(parts []string, v any, field *MessageField) (string, bool) {
	t, ok := v.(time.Time)
	if !ok {
		return "", false
	}

	tz := "UTC"
	if len(parts) >= 3 {
		tz = unescapeExpr(parts[2])
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return "", false
	}

	if parts[0] == "p" {
		layout := unescapeExpr(parts[1])
		return p.instant.FormatLayout(field.Locale(), t, layout, loc), true
	}

	var kind InstantKind
	switch parts[0] {
	case "lt":
		kind = InstantTime
	case "ldt":
		kind = InstantDateTime
	case "ld":
		kind = InstantDate
	}
	var style InstantStyle
	switch unescapeExpr(parts[1]) {
	case "short":
		style = StyleShort
	case "medium":
		style = StyleMedium
	case "long":
		style = StyleLong
	default:
		return "", false
	}
	return p.instant.Format(field.Locale(), t, kind, style, loc), true
}

// formatNumber renders a float with the given number of fractional digits,
// rounding half up (away from zero). Zero digits omit the decimal point.
func formatNumber(v float64, digits int) string {
	pow := math.Pow(10, float64(digits))
	scaled := v * pow
	if scaled >= 0 {
		scaled = math.Floor(scaled + 0.5)
	} else {
		scaled = math.Ceil(scaled - 0.5)
	}
	return strconv.FormatFloat(scaled/pow, 'f', digits, 64)
}

func toFloat64(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	default:
		return 0, false
	}
}

func toInt64(v any) (int64, bool) {
	switch t := v.(type) {
	case int:
		return int64(t), true
	case int8:
		return int64(t), true
	case int16:
		return int64(t), true
	case int32:
		return int64(t), true
	case int64:
		return t, true
	case uint:
		return int64(t), true
	case uint8:
		return int64(t), true
	case uint16:
		return int64(t), true
	case uint32:
		return int64(t), true
	case uint64:
		return int64(t), true
	case float32:
		return int64(t), true
	case float64:
		return int64(t), true
	default:
		return 0, false
	}
}
