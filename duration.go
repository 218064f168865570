package placeholders

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// durationUnits is the fixed unit order of the duration sub-language, from
// the coarsest to the finest. Component bounds: hours 0-23, minutes and
// seconds 0-59, millis 0-999, nanos 0-999999; days are unbounded.
var durationUnits = []string{"d", "h", "m", "s", "ms", "ns"}

// defaultDurationPrecision applies when a duration field carries no
// precision parameter.
const defaultDurationPrecision = "ms"

func durationUnitIndex(unit string) int {
	for i, u := range durationUnits {
		if u == unit {
			return i
		}
	}
	return -1
}

// splitDuration decomposes the absolute magnitude of d into its components,
// ordered as durationUnits.
func splitDuration(d time.Duration) (parts [6]int64, neg bool) {
	n := int64(d)
	if n < 0 {
		neg = true
		if n == math.MinInt64 {
			n = math.MaxInt64
		} else {
			n = -n
		}
	}
	parts[5] = n % int64(time.Millisecond)
	ms := n / int64(time.Millisecond)
	parts[4] = ms % 1000
	s := ms / 1000
	parts[3] = s % 60
	m := s / 60
	parts[2] = m % 60
	h := m / 60
	parts[1] = h % 24
	parts[0] = h / 24
	return parts, neg
}

// formatDuration renders the default duration form: every non-zero unit from
// days down to the requested precision, concatenated without separators,
// with the sign restored as a leading minus. When that whole range is zero
// the first non-zero finer unit renders alone; a zero duration renders as
// "0" plus the precision suffix. Unknown precision units report false.
func formatDuration(d time.Duration, precision string) (string, bool) {
	pi := durationUnitIndex(precision)
	if pi < 0 {
		return "", false
	}
	parts, neg := splitDuration(d)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	wrote := false
	for i := 0; i <= pi; i++ {
		if parts[i] != 0 {
			b.WriteString(strconv.FormatInt(parts[i], 10))
			b.WriteString(durationUnits[i])
			wrote = true
		}
	}
	if !wrote {
		for i := pi + 1; i < len(parts); i++ {
			if parts[i] != 0 {
				b.WriteString(strconv.FormatInt(parts[i], 10))
				b.WriteString(durationUnits[i])
				wrote = true
				break
			}
		}
	}
	if !wrote {
		return "0" + precision, true
	}
	return b.String(), true
}

// durationAccessor implements the built-in sub-fields of duration values:
// the single-component accessors and the custom pattern form. Component
// accessors carry the duration's sign. A pattern compile failure surfaces as
// an error value, which the render loop propagates instead of substituting.
func (p *Placeholders) durationAccessor(d time.Duration, field *MessageField) (any, bool) {
	parts, neg := splitDuration(d)
	component := func(i int) any {
		if neg {
			return -parts[i]
		}
		return parts[i]
	}
	switch field.Name() {
	case "days":
		return component(0), true
	case "hours":
		return component(1), true
	case "minutes":
		return component(2), true
	case "seconds":
		return component(3), true
	case "millis":
		return component(4), true
	case "format":
		pattern, ok := field.Param(0)
		if !ok {
			return nil, false
		}
		dp, err := compiledPattern(pattern)
		if err != nil {
			return err, true
		}
		return dp.Render(d, field.Locale(), p.plural), true
	default:
		return nil, false
	}
}
