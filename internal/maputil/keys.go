// Package maputil provides small generic helpers for maps and map-backed sets.
package maputil

import (
	"cmp"
	"slices"
)

// SortedKeys returns the keys of m in ascending order.
// A nil or empty map yields an empty, non-nil slice.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// SortedKeysFunc returns the keys of m ordered by cmpFn.
func SortedKeysFunc[K comparable, V any](m map[K]V, cmpFn func(a, b K) int) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, cmpFn)
	return keys
}

// CloneLists copies m and every list value in it, so that neither the map
// nor its lists are shared with the original. A nil map yields an empty map.
func CloneLists[K comparable, V any](m map[K][]V) map[K][]V {
	out := make(map[K][]V, len(m))
	for k, v := range m {
		out[k] = slices.Clone(v)
	}
	return out
}
