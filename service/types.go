package service

import "slices"

// Contact identifies the maintainer of a documented API.
type Contact struct {
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	URL   string `json:"url,omitempty" yaml:"url,omitempty"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// APIInfo is the descriptive header of a documentation group.
type APIInfo struct {
	Title             string  `json:"title,omitempty" yaml:"title,omitempty"`
	Description       string  `json:"description,omitempty" yaml:"description,omitempty"`
	Version           string  `json:"version,omitempty" yaml:"version,omitempty"`
	TermsOfServiceURL string  `json:"termsOfServiceUrl,omitempty" yaml:"termsOfServiceUrl,omitempty"`
	Contact           Contact `json:"contact" yaml:"contact,omitempty"`
	License           string  `json:"license,omitempty" yaml:"license,omitempty"`
	LicenseURL        string  `json:"licenseUrl,omitempty" yaml:"licenseUrl,omitempty"`
}

// ResponseMessage documents one response an operation may produce.
type ResponseMessage struct {
	Code          int    `json:"code" yaml:"code"`
	Message       string `json:"message,omitempty" yaml:"message,omitempty"`
	ResponseModel string `json:"responseModel,omitempty" yaml:"responseModel,omitempty"`
}

// AuthorizationScope is a single OAuth-style scope.
type AuthorizationScope struct {
	Scope       string `json:"scope" yaml:"scope"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// SecurityReference ties a named authorization type to the scopes an
// operation requires.
type SecurityReference struct {
	Reference string               `json:"reference" yaml:"reference"`
	Scopes    []AuthorizationScope `json:"scopes,omitempty" yaml:"scopes,omitempty"`
}

// Clone returns a copy of r that shares no slice with it.
func (r SecurityReference) Clone() SecurityReference {
	r.Scopes = slices.Clone(r.Scopes)
	return r
}

// AuthorizationType describes an authorization scheme such as an API key
// or OAuth flow. Only the name and type are known to the engine; the rest
// is passed through.
type AuthorizationType struct {
	Name    string `json:"name" yaml:"name"`
	Type    string `json:"type" yaml:"type"`
	KeyName string `json:"keyName,omitempty" yaml:"keyName,omitempty"`
	PassAs  string `json:"passAs,omitempty" yaml:"passAs,omitempty"`
}

// RequestHandler is a route handler discovered by a framework adapter.
type RequestHandler struct {
	Name     string
	Methods  []HTTPMethod
	Patterns []string
}

// HandlerMapping is an opaque route table supplied by a framework adapter.
type HandlerMapping interface {
	Name() string
	Handlers() []RequestHandler
}

type staticHandlerMapping struct {
	name     string
	handlers []RequestHandler
}

// NewHandlerMapping returns a fixed HandlerMapping over handlers.
func NewHandlerMapping(name string, handlers ...RequestHandler) HandlerMapping {
	return &staticHandlerMapping{name: name, handlers: slices.Clone(handlers)}
}

func (m *staticHandlerMapping) Name() string { return m.name }

func (m *staticHandlerMapping) Handlers() []RequestHandler { return slices.Clone(m.handlers) }

// ResourceGroupingStrategy assigns a request handler to one or more
// resource groups.
type ResourceGroupingStrategy func(h RequestHandler) []string

// APIListingReference points at one API listing within a resource listing.
type APIListingReference struct {
	Path        string
	Description string
	Position    int
}

// APIDescription describes the operations available on a single path.
type APIDescription struct {
	Path        string
	Description string
	Hidden      bool
}

// Operation is a single method on a path.
type Operation struct {
	Method   HTTPMethod
	Nickname string
	Summary  string
	Position int
}
