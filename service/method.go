package service

import "strings"

// HTTPMethod is an HTTP request method used to key response messages.
type HTTPMethod string

// Supported HTTP methods.
const (
	MethodGet     HTTPMethod = "GET"
	MethodHead    HTTPMethod = "HEAD"
	MethodPost    HTTPMethod = "POST"
	MethodPut     HTTPMethod = "PUT"
	MethodPatch   HTTPMethod = "PATCH"
	MethodDelete  HTTPMethod = "DELETE"
	MethodOptions HTTPMethod = "OPTIONS"
	MethodTrace   HTTPMethod = "TRACE"
)

// Methods returns every supported method in declaration order.
func Methods() []HTTPMethod {
	return []HTTPMethod{
		MethodGet, MethodHead, MethodPost, MethodPut,
		MethodPatch, MethodDelete, MethodOptions, MethodTrace,
	}
}

// ParseHTTPMethod returns the method named by s, ignoring case.
func ParseHTTPMethod(s string) (HTTPMethod, bool) {
	m := HTTPMethod(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Methods() {
		if m == known {
			return m, true
		}
	}
	return "", false
}

// String implements fmt.Stringer.
func (m HTTPMethod) String() string {
	return string(m)
}
