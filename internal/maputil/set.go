package maputil

import "maps"

// Set is a map-backed set of comparable values.
type Set[T comparable] map[T]struct{}

// NewSet returns a set holding values.
func NewSet[T comparable](values ...T) Set[T] {
	s := make(Set[T], len(values))
	s.AddAll(values...)
	return s
}

// AddAll unions values into s. Duplicates collapse.
func (s Set[T]) AddAll(values ...T) {
	for _, v := range values {
		s[v] = struct{}{}
	}
}

// Contains reports whether v is in s.
func (s Set[T]) Contains(v T) bool {
	_, ok := s[v]
	return ok
}

// Clone returns an independent copy of s. Cloning a nil set yields an empty set.
func (s Set[T]) Clone() Set[T] {
	if s == nil {
		return make(Set[T])
	}
	return maps.Clone(s)
}
