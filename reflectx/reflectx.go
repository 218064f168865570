// Package reflectx provides optional reflection-based resolver sources for
// the placeholders engine. The core engine never depends on reflection for
// property access; this package plugs into the same registry and fallback
// contracts as handwritten resolvers, so hosts that prefer explicit
// registration can ignore it entirely.
package reflectx

import (
	"errors"
	"reflect"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrymomot/placeholders"
)

// ErrNotStruct is returned by RegisterStruct for non-struct samples.
var ErrNotStruct = errors.New("sample is not a struct")

// Resolver returns a fallback resolver that reads properties dynamically:
// an exported struct field or a zero-argument single-result method whose
// exported name matches the segment name (case of the first letter is
// ignored, so "name" finds both Name and the Name() method). Methods are
// preferred over fields. Install it with placeholders.WithFallbackResolver.
func Resolver() placeholders.Resolver {
	return func(v any, field *placeholders.MessageField, _ *placeholders.Context) any {
		rv := reflect.ValueOf(v)
		if !rv.IsValid() {
			return nil
		}
		name := exportedName(field.Name())
		if name == "" {
			return nil
		}

		if m := rv.MethodByName(name); m.IsValid() {
			if out, ok := callGetter(m); ok {
				return out
			}
		}

		for rv.Kind() == reflect.Pointer {
			if rv.IsNil() {
				return nil
			}
			rv = rv.Elem()
		}
		if rv.Kind() != reflect.Struct {
			return nil
		}
		if m := rv.MethodByName(name); m.IsValid() {
			if out, ok := callGetter(m); ok {
				return out
			}
		}
		if f := rv.FieldByName(name); f.IsValid() && f.CanInterface() {
			return f.Interface()
		}
		return nil
	}
}

func callGetter(m reflect.Value) (any, bool) {
	t := m.Type()
	if t.NumIn() != 0 || t.NumOut() != 1 {
		return nil, false
	}
	return m.Call(nil)[0].Interface(), true
}

func exportedName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// RegisterStruct scans the sample's struct fields for `placeholder:"name"`
// tags and registers a resolver per tagged field through the public registry
// API, exactly as manual registration would. Fields tagged "-" or left
// untagged are skipped. The sample may be a struct or a pointer to one.
func RegisterStruct(registry *placeholders.Registry, sample any) error {
	t := reflect.TypeOf(sample)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return ErrNotStruct
	}

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		name, ok := sf.Tag.Lookup("placeholder")
		if !ok || name == "-" || !sf.IsExported() {
			continue
		}
		idx := sf.Index
		registry.RegisterType(t, name, func(v any, _ *placeholders.MessageField, _ *placeholders.Context) any {
			rv := reflect.ValueOf(v)
			for rv.Kind() == reflect.Pointer {
				if rv.IsNil() {
					return nil
				}
				rv = rv.Elem()
			}
			if rv.Kind() != reflect.Struct {
				return nil
			}
			return rv.FieldByIndex(idx).Interface()
		})
	}
	return nil
}
