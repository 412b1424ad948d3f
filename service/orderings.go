package service

import (
	"slices"

	"github.com/erraggy/docctx/ordering"
)

// ListingReferencesByPosition orders listing references by position, then path.
func ListingReferencesByPosition() ordering.Ordering[APIListingReference] {
	return ordering.Compound(
		ordering.By(func(r APIListingReference) int { return r.Position }),
		ordering.By(func(r APIListingReference) string { return r.Path }),
	)
}

// DescriptionsByPath orders API descriptions by path.
func DescriptionsByPath() ordering.Ordering[APIDescription] {
	return ordering.By(func(d APIDescription) string { return d.Path })
}

// OperationsByPosition orders operations by position, then by method in
// declaration order, then by nickname.
func OperationsByPosition() ordering.Ordering[Operation] {
	return ordering.Compound(
		ordering.By(func(o Operation) int { return o.Position }),
		ordering.By(func(o Operation) int { return methodRank(o.Method) }),
		ordering.By(func(o Operation) string { return o.Nickname }),
	)
}

func methodRank(m HTTPMethod) int {
	if i := slices.Index(Methods(), m); i >= 0 {
		return i
	}
	return len(Methods())
}
