package typeinfo

import (
	"iter"

	"golang.org/x/tools/go/types/typeutil"
)

// Registry indexes values by type identity. Genrep uses it to find the
// derivation declared for a member's type so that nested derived types
// delegate to each other.
type Registry[T any] struct {
	m *typeutil.Map
}

// NewRegistry creates a new [Registry].
func NewRegistry[T any]() *Registry[T] {
	m := new(typeutil.Map)
	m.SetHasher(typeutil.MakeHasher())
	return &Registry[T]{m}
}

// Put registers a value for the given type. If the type is already
// registered, the old value is returned and the registry is unchanged.
func (r *Registry[T]) Put(t Type, v T) (T, bool) {
	if old, ok := r.m.At(t.Type()).(T); ok {
		return old, false
	}

	if old := r.m.Set(t.Type(), v); old != nil {
		panic("unexpected old value")
	}
	return *new(T), true
}

// Get finds the value registered for the given type.
func (r *Registry[T]) Get(t Type) (T, bool) {
	if r == nil {
		return *new(T), false
	}

	v, ok := r.m.At(t.Type()).(T)
	return v, ok
}

// Range iterates all registered values.
func (r *Registry[T]) Range() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, key := range r.m.Keys() {
			v, ok := r.m.At(key).(T)
			if !ok {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}
