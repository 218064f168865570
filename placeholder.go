package placeholders

import (
	"fmt"
	"strconv"
	"time"
)

// Placeholder wraps a value bound to a root name in a context. It walks
// field chains through the engine's resolvers and converts leaf values to
// text.
type Placeholder struct {
	engine *Placeholders
	ctx    *Context
	value  any
}

// Value returns the bound root value.
func (p *Placeholder) Value() any { return p.value }

// render produces the textual form of the field against the bound value.
// ok is false for a null or unresolved result; err carries faults raised by
// host resolver logic, which are never converted to markers.
func (p *Placeholder) render(field *MessageField) (string, bool, error) {
	v, leaf, ok := p.resolveChain(field)
	if !ok || v == nil {
		return "", false, nil
	}
	if err, isErr := v.(error); isErr {
		return "", false, err
	}
	if meta, has := field.Metadata(); has {
		out, ok := p.engine.applyMetadata(meta, v, field, p.ctx)
		return out, ok, nil
	}
	out, ok := p.engine.stringify(v, leaf, p.ctx)
	return out, ok, nil
}

// resolveChain descends the sub chain starting from the bound root value.
// The walk stops at the chain end or at the first null; the returned leaf is
// the segment that produced the final value, which carries the parameters
// relevant to its formatting.
func (p *Placeholder) resolveChain(field *MessageField) (any, *MessageField, bool) {
	v := p.value
	leaf := field
	for sub := field.Sub(); sub != nil; sub = sub.Sub() {
		if v == nil {
			return nil, leaf, true
		}
		next, ok := p.engine.resolveStep(v, sub, p.ctx)
		if !ok {
			return nil, sub, false
		}
		v = next
		leaf = sub
	}
	return v, leaf, true
}

// resolveValue is the extraction form of resolveChain: it returns the raw
// value at the end of the chain, or nil for a null or unresolved result.
func (p *Placeholder) resolveValue(field *MessageField) any {
	v, _, ok := p.resolveChain(field)
	if !ok {
		return nil
	}
	return v
}

// stringify converts a leaf value to text using the default conversions:
// strings verbatim, numbers in their minimal base-10 form, booleans as
// true/false, durations through the default duration form (precision taken
// from the leaf segment's first parameter), instants through the localized
// formatter, fmt.Stringer honored, anything else through fmt.
func (p *Placeholders) stringify(v any, leaf *MessageField, ctx *Context) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case time.Duration:
		precision := defaultDurationPrecision
		if unit, ok := leaf.Param(0); ok && unit != "" {
			precision = unit
		}
		return formatDuration(t, precision)
	case time.Time:
		return p.instant.Format(leaf.Locale(), t, InstantDateTime, StyleMedium, time.UTC), true
	case int:
		return strconv.Itoa(t), true
	case int8:
		return strconv.FormatInt(int64(t), 10), true
	case int16:
		return strconv.FormatInt(int64(t), 10), true
	case int32:
		return strconv.FormatInt(int64(t), 10), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case uint:
		return strconv.FormatUint(uint64(t), 10), true
	case uint8:
		return strconv.FormatUint(uint64(t), 10), true
	case uint16:
		return strconv.FormatUint(uint64(t), 10), true
	case uint32:
		return strconv.FormatUint(uint64(t), 10), true
	case uint64:
		return strconv.FormatUint(t, 10), true
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case fmt.Stringer:
		return t.String(), true
	default:
		return fmt.Sprintf("%v", v), true
	}
}
