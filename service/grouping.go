package service

import "strings"

// GroupByFirstSegment groups a handler under the first path segment of
// each of its patterns. Handlers registered at the root fall into "default".
func GroupByFirstSegment() ResourceGroupingStrategy {
	return func(h RequestHandler) []string {
		seen := make(map[string]bool)
		var groups []string
		for _, p := range h.Patterns {
			group := "default"
			if seg, _, _ := strings.Cut(strings.TrimPrefix(p, "/"), "/"); seg != "" {
				group = seg
			}
			if !seen[group] {
				seen[group] = true
				groups = append(groups, group)
			}
		}
		return groups
	}
}
