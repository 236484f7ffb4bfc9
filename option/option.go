// Package option provides the Option[T] container generated changesets use
// for their fields. A zero Option is None, so generated structs need no
// constructor to be valid.
package option

// Option holds either a value of T (Some) or nothing (None).
type Option[T any] struct {
	value T
	some  bool
}

// Some wraps v in a set Option.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None returns the empty Option. Equivalent to the zero value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the option holds a value.
func (o Option[T]) IsSome() bool { return o.some }

// IsNone reports whether the option is empty.
func (o Option[T]) IsNone() bool { return !o.some }

// Get returns the held value and whether it was set.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// GetOr returns the held value, or fallback when the option is empty.
func (o Option[T]) GetOr(fallback T) T {
	if o.some {
		return o.value
	}
	return fallback
}

// Or returns o when set, other otherwise. This is the per-field rule behind
// the generated Merge: the right side wins only where it is set.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.some {
		return o
	}
	return other
}

// Map applies fn to the held value, propagating None.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.some {
		return Option[U]{}
	}
	return Some(fn(o.value))
}

// Equal reports whether a and b are both None, or both Some of equal values.
func Equal[T comparable](a, b Option[T]) bool {
	if a.some != b.some {
		return false
	}
	return !a.some || a.value == b.value
}
