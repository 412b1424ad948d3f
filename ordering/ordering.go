// Package ordering provides composable comparators used to order the items
// a documentation pipeline emits: listing references, API descriptions and
// operations.
//
// An Ordering follows the cmp.Compare convention: negative when a sorts
// before b, zero when they are equivalent, positive otherwise.
package ordering

import (
	"cmp"
	"slices"
)

// Ordering compares two values of T.
type Ordering[T any] func(a, b T) int

// Natural orders values by their natural ascending order.
func Natural[T cmp.Ordered]() Ordering[T] {
	return cmp.Compare[T]
}

// By orders values by the key extracted from each.
//
//	byPath := ordering.By(func(d service.APIDescription) string { return d.Path })
func By[T any, K cmp.Ordered](key func(T) K) Ordering[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// Reverse returns o with its direction flipped.
func (o Ordering[T]) Reverse() Ordering[T] {
	return func(a, b T) int {
		return o(b, a)
	}
}

// Then returns an ordering that falls back to next when o considers two
// values equivalent.
func (o Ordering[T]) Then(next Ordering[T]) Ordering[T] {
	return Compound(o, next)
}

// Compound chains orderings; the first non-zero comparison wins.
// Nil orderings are skipped.
func Compound[T any](orderings ...Ordering[T]) Ordering[T] {
	chain := make([]Ordering[T], 0, len(orderings))
	for _, o := range orderings {
		if o != nil {
			chain = append(chain, o)
		}
	}
	return func(a, b T) int {
		for _, o := range chain {
			if c := o(a, b); c != 0 {
				return c
			}
		}
		return 0
	}
}

// Sorted returns a stably sorted copy of items. The input is left untouched.
func Sorted[T any](items []T, o Ordering[T]) []T {
	out := slices.Clone(items)
	if o != nil {
		slices.SortStableFunc(out, o)
	}
	return out
}
