package vrs

// Ref is the "maybe inlined, maybe referenced" slot described in the
// design notes: a field that accepts either the full object or a
// ga4gh identifier string pointing at it in an object store. It is
// the Go realization of the tagged sum `Inlined(T) | Referenced(Id)`;
// a nullable-pointer-and-a-string pair would let both be set (or
// neither) at once, which this type does not allow to arise from its
// constructors.
type Ref[T any] struct {
	inline *T
	id     string
}

// Inline wraps a fully materialized value.
func Inline[T any](v T) Ref[T] {
	return Ref[T]{inline: &v}
}

// ByID wraps a bare ga4gh identifier reference.
func ByID[T any](id string) Ref[T] {
	return Ref[T]{id: id}
}

// IsRef reports whether this slot holds a reference rather than an
// inlined value.
func (r Ref[T]) IsRef() bool { return r.inline == nil }

// ID returns the reference string. Only meaningful when IsRef().
func (r Ref[T]) ID() string { return r.id }

// Value returns the inlined value and whether one is present.
func (r Ref[T]) Value() (T, bool) {
	if r.inline == nil {
		var zero T
		return zero, false
	}
	return *r.inline, true
}

// MustValue returns the inlined value, panicking if this slot is a
// reference. Callers that have already deref'd a graph may use this
// to avoid repeating the ok-check.
func (r Ref[T]) MustValue() T {
	v, ok := r.Value()
	if !ok {
		panic("vrs: Ref.MustValue called on a reference slot")
	}
	return v
}
