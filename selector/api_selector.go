package selector

import "github.com/erraggy/docctx/service"

// APISelector combines a handler selector and a path selector.
// A nil field selects everything.
type APISelector struct {
	Handler RequestHandlerSelector
	Path    PathSelector
}

// Default returns a new selector that accepts every handler and path.
// Each call yields a fresh value.
func Default() APISelector {
	return APISelector{
		Handler: AnyHandler(),
		Path:    Any(),
	}
}

// AnyHandler matches every request handler.
func AnyHandler() RequestHandlerSelector {
	return func(service.RequestHandler) bool { return true }
}

// HandlerWithName matches handlers whose name is one of names.
func HandlerWithName(names ...string) RequestHandlerSelector {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return func(h service.RequestHandler) bool { return set[h.Name] }
}

// SelectsHandler reports whether h is selected.
func (s APISelector) SelectsHandler(h service.RequestHandler) bool {
	return s.Handler == nil || s.Handler(h)
}

// SelectsPath reports whether path is selected.
func (s APISelector) SelectsPath(path string) bool {
	return s.Path == nil || s.Path(path)
}

// Selects reports whether h is selected and at least one of its patterns
// is selected. A handler without patterns is judged by the handler
// selector alone.
func (s APISelector) Selects(h service.RequestHandler) bool {
	if !s.SelectsHandler(h) {
		return false
	}
	if len(h.Patterns) == 0 {
		return true
	}
	for _, p := range h.Patterns {
		if s.SelectsPath(p) {
			return true
		}
	}
	return false
}
