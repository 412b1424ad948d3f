package typerules

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
)

// Rule substitutes Alternate for Original when a model is documented.
// When several rules apply to one type, the highest Order wins, and among
// equal orders the rule registered first wins.
type Rule struct {
	Original  reflect.Type
	Alternate reflect.Type
	Order     int
}

// NewRule returns a rule substituting alternate for original.
func NewRule(original, alternate reflect.Type, order int) Rule {
	return Rule{Original: original, Alternate: alternate, Order: order}
}

// RuleOf returns a rule substituting A for O.
//
//	typerules.RuleOf[time.Time, string](0)
func RuleOf[O, A any](order int) Rule {
	return NewRule(reflect.TypeFor[O](), reflect.TypeFor[A](), order)
}

// AppliesTo reports whether the rule replaces t.
func (r Rule) AppliesTo(t reflect.Type) bool {
	return r.Original != nil && t == r.Original
}

// String implements fmt.Stringer.
func (r Rule) String() string {
	return fmt.Sprintf("%v -> %v (order %d)", r.Original, r.Alternate, r.Order)
}

// Factory produces a rule from the shared resolution context. Factories are
// evaluated once, when they are registered with a builder.
type Factory func(*Resolver) Rule

// FactoryOf returns a factory producing RuleOf[O, A](order).
func FactoryOf[O, A any](order int) Factory {
	return func(*Resolver) Rule {
		return RuleOf[O, A](order)
	}
}

// MustNamed returns a factory that resolves both type names against the
// resolver it is evaluated with. The factory panics if either name is
// unknown; callers holding untrusted names should check them with
// Resolver.Resolve first.
func MustNamed(original, alternate string, order int) Factory {
	return func(r *Resolver) Rule {
		o, err := r.Resolve(original)
		if err != nil {
			panic(err)
		}
		a, err := r.Resolve(alternate)
		if err != nil {
			panic(err)
		}
		return NewRule(o, a, order)
	}
}

// Alternate returns the type t should be documented as under rules, or t
// itself when no rule applies. Substitution is not transitive.
func Alternate(rules []Rule, t reflect.Type) reflect.Type {
	best := -1
	for i, r := range rules {
		if !r.AppliesTo(t) {
			continue
		}
		if best == -1 || r.Order > rules[best].Order {
			best = i
		}
	}
	if best == -1 {
		return t
	}
	return rules[best].Alternate
}

// ByPrecedence returns a copy of rules ordered from highest to lowest
// order, keeping registration order among equals.
func ByPrecedence(rules []Rule) []Rule {
	out := slices.Clone(rules)
	slices.SortStableFunc(out, func(a, b Rule) int {
		return cmp.Compare(b.Order, a.Order)
	})
	return out
}
