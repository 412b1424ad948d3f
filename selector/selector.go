// Package selector decides which request handlers and paths a
// documentation group covers.
package selector

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/erraggy/docctx/service"
)

// PathSelector reports whether a path belongs to a documentation group.
type PathSelector func(path string) bool

// RequestHandlerSelector reports whether a handler belongs to a documentation group.
type RequestHandlerSelector func(h service.RequestHandler) bool

// Any matches every path.
func Any() PathSelector {
	return func(string) bool { return true }
}

// None matches no path.
func None() PathSelector {
	return func(string) bool { return false }
}

// Regex matches paths against a regular expression.
func Regex(expr string) (PathSelector, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("selector: invalid path regex %q: %w", expr, err)
	}
	return re.MatchString, nil
}

// MustRegex is like Regex but panics on an invalid expression.
func MustRegex(expr string) PathSelector {
	s, err := Regex(expr)
	if err != nil {
		panic(err)
	}
	return s
}

// Ant matches paths against a segment glob. "*" matches exactly one
// segment, "**" matches zero or more segments, and any other segment is
// matched with filepath.Match semantics.
//
//	s, _ := selector.Ant("/drives/**/workbook/*")
func Ant(pattern string) (PathSelector, error) {
	parts := splitSegments(pattern)
	for _, p := range parts {
		if p == "**" {
			continue
		}
		if _, err := filepath.Match(p, ""); err != nil {
			return nil, fmt.Errorf("selector: invalid path pattern %q: %w", pattern, err)
		}
	}
	return func(path string) bool {
		return matchSegments(parts, splitSegments(path))
	}, nil
}

// Or matches when any selector matches.
func Or(selectors ...PathSelector) PathSelector {
	return func(path string) bool {
		for _, s := range selectors {
			if s(path) {
				return true
			}
		}
		return false
	}
}

// And matches when every selector matches.
func And(selectors ...PathSelector) PathSelector {
	return func(path string) bool {
		for _, s := range selectors {
			if !s(path) {
				return false
			}
		}
		return true
	}
}

// Not inverts s.
func Not(s PathSelector) PathSelector {
	return func(path string) bool { return !s(path) }
}

func splitSegments(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func matchSegments(pattern, path []string) bool {
	for len(pattern) > 0 {
		if pattern[0] == "**" {
			rest := pattern[1:]
			for i := 0; i <= len(path); i++ {
				if matchSegments(rest, path[i:]) {
					return true
				}
			}
			return false
		}
		if len(path) == 0 {
			return false
		}
		if ok, _ := filepath.Match(pattern[0], path[0]); !ok {
			return false
		}
		pattern, path = pattern[1:], path[1:]
	}
	return len(path) == 0
}
