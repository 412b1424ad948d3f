package contexts

import (
	"github.com/erraggy/docctx/selector"
	"github.com/erraggy/docctx/service"
)

// AuthorizationContext decides which security references apply to which
// paths. It is immutable.
type AuthorizationContext struct {
	securityReferences []service.SecurityReference
	paths              selector.PathSelector
}

// NewAuthorizationContext returns a context applying refs to every path
// selected by paths. A nil selector selects every path.
func NewAuthorizationContext(refs []service.SecurityReference, paths selector.PathSelector) *AuthorizationContext {
	if paths == nil {
		paths = selector.Any()
	}
	return &AuthorizationContext{
		securityReferences: cloneSecurityReferences(refs),
		paths:              paths,
	}
}

// defaultAuthorizationContext is used when no authorization context was
// configured. It is built anew for every Context.
func defaultAuthorizationContext() *AuthorizationContext {
	return NewAuthorizationContext([]service.SecurityReference{}, selector.Any())
}

// SecurityReferences returns a copy of the configured references.
func (a *AuthorizationContext) SecurityReferences() []service.SecurityReference {
	return cloneSecurityReferences(a.securityReferences)
}

// PathSelector returns the selector deciding which paths are covered.
func (a *AuthorizationContext) PathSelector() selector.PathSelector {
	return a.paths
}

// Selects reports whether path is covered by this context.
func (a *AuthorizationContext) Selects(path string) bool {
	return a.paths(path)
}

// SecurityForPath returns the references applying to path, or nil.
func (a *AuthorizationContext) SecurityForPath(path string) []service.SecurityReference {
	if !a.Selects(path) {
		return nil
	}
	return a.SecurityReferences()
}

func cloneSecurityReferences(refs []service.SecurityReference) []service.SecurityReference {
	if refs == nil {
		return nil
	}
	out := make([]service.SecurityReference, len(refs))
	for i, r := range refs {
		out[i] = r.Clone()
	}
	return out
}
