package placeholders

import (
	"reflect"
	"sync"
)

// Resolver produces the value of a named property for a bound instance.
// Returning nil reports a null resolution; returning an error value aborts
// the render with that error, since it signals a fault in host resolver
// logic. Panics are intentionally not recovered for the same reason.
type Resolver func(value any, field *MessageField, ctx *Context) any

type resolverKey struct {
	typ  reflect.Type
	name string
}

type resolverEntry struct {
	fn Resolver // nil records a cached miss
}

// Registry is a type-indexed table of named resolvers with ancestor-aware
// lookup. Lookup for a concrete type also considers its declared supertypes
// (depth-first, declaration order), the element type behind a pointer, and
// registered interface types the concrete type implements (registration
// order). The most specific match wins.
//
// Registration is expected to happen before concurrent use: a single writer
// sets the table up, then any number of readers may resolve concurrently.
// Concurrent registration with concurrent lookup is not supported. The
// resolution cache itself is safe for concurrent readers.
type Registry struct {
	handlers   map[reflect.Type]map[string]Resolver
	supertypes map[reflect.Type][]reflect.Type
	ifaceOrder []reflect.Type
	cache      *sync.Map
}

// NewRegistry creates an empty resolver registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers:   make(map[reflect.Type]map[string]Resolver),
		supertypes: make(map[reflect.Type][]reflect.Type),
		cache:      &sync.Map{},
	}
}

// RegisterType adds or replaces the resolver for (typ, name). Registering
// invalidates the resolution cache.
func (r *Registry) RegisterType(typ reflect.Type, name string, fn Resolver) *Registry {
	m, ok := r.handlers[typ]
	if !ok {
		m = make(map[string]Resolver)
		r.handlers[typ] = m
		if typ.Kind() == reflect.Interface {
			r.ifaceOrder = append(r.ifaceOrder, typ)
		}
	}
	m[name] = fn
	r.cache = &sync.Map{}
	return r
}

// DeclareSupertypes records an explicit ancestry for typ, consulted by
// lookup after the exact type and before interface matching. This is the
// hook for value hierarchies that reflection cannot see.
func (r *Registry) DeclareSupertypes(typ reflect.Type, supers ...reflect.Type) *Registry {
	r.supertypes[typ] = append(r.supertypes[typ], supers...)
	r.cache = &sync.Map{}
	return r
}

// Register is the typed registration form. The handler receives the bound
// value already asserted to T; a value of another type yields nil.
func Register[T any](r *Registry, name string, fn func(value T, field *MessageField, ctx *Context) any) *Registry {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	return r.RegisterType(typ, name, func(v any, f *MessageField, c *Context) any {
		tv, ok := v.(T)
		if !ok {
			return nil
		}
		return fn(tv, f, c)
	})
}

// Resolve looks up and invokes the resolver for the runtime type of value
// and the field's name. The second return reports whether any resolver
// matched; no match is not an error here and is reported upward as an
// unresolved field.
func (r *Registry) Resolve(value any, field *MessageField, ctx *Context) (any, bool) {
	fn, ok := r.lookup(reflect.TypeOf(value), field.Name())
	if !ok {
		return nil, false
	}
	return fn(value, field, ctx), true
}

func (r *Registry) lookup(typ reflect.Type, name string) (Resolver, bool) {
	if typ == nil {
		return nil, false
	}
	key := resolverKey{typ: typ, name: name}
	cache := r.cache
	if v, ok := cache.Load(key); ok {
		e := v.(resolverEntry)
		return e.fn, e.fn != nil
	}

	var found Resolver
	for _, anc := range r.ancestry(typ) {
		if fn, ok := r.handlers[anc][name]; ok {
			found = fn
			break
		}
	}
	cache.Store(key, resolverEntry{fn: found})
	return found, found != nil
}

// ancestry computes the fixed traversal order for a concrete type: the type
// itself, its declared supertypes depth-first in declaration order (pointer
// types additionally descend into their element type), then registered
// interfaces in registration order.
func (r *Registry) ancestry(typ reflect.Type) []reflect.Type {
	seen := make(map[reflect.Type]bool)
	order := make([]reflect.Type, 0, 4)
	var add func(reflect.Type)
	add = func(t reflect.Type) {
		if t == nil || seen[t] {
			return
		}
		seen[t] = true
		order = append(order, t)
		for _, s := range r.supertypes[t] {
			add(s)
		}
		if t.Kind() == reflect.Pointer {
			add(t.Elem())
		}
	}
	add(typ)
	for _, it := range r.ifaceOrder {
		if !seen[it] && typ.Implements(it) {
			seen[it] = true
			order = append(order, it)
		}
	}
	return order
}
