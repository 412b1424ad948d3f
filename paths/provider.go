// Package paths provides the path providers a documentation context uses
// to turn handler patterns into documented paths.
package paths

import (
	"strings"
)

// Provider computes the paths under which operations and resource
// listings are documented.
type Provider interface {
	// ApplicationBasePath is the path (or URL) the application is served from.
	ApplicationBasePath() string
	// DocumentationPath is the path the documentation is served from.
	DocumentationPath() string
	// OperationPath returns the documented path for an operation pattern.
	OperationPath(operationPath string) string
	// ResourceListingPath returns the path of a group's API declaration.
	ResourceListingPath(groupName, apiDeclaration string) string
}

type relativeProvider struct {
	contextPath string
}

// Relative returns a provider whose paths are relative to the host. An
// empty context path means the application is served from "/".
func Relative(contextPath string) Provider {
	return &relativeProvider{contextPath: contextPath}
}

func (p *relativeProvider) ApplicationBasePath() string {
	if p.contextPath == "" {
		return "/"
	}
	return collapseSlashes("/" + p.contextPath)
}

func (p *relativeProvider) DocumentationPath() string {
	return "/"
}

func (p *relativeProvider) OperationPath(operationPath string) string {
	return collapseSlashes("/" + operationPath)
}

func (p *relativeProvider) ResourceListingPath(groupName, apiDeclaration string) string {
	return collapseSlashes(strings.Join([]string{p.DocumentationPath(), groupName, apiDeclaration}, "/"))
}

type absoluteProvider struct {
	host        string
	contextPath string
	docsPath    string
}

// Absolute returns a provider whose paths carry the host, for example
// Absolute("https://api.example.com", "/v1", "/docs").
func Absolute(host, contextPath, docsPath string) Provider {
	return &absoluteProvider{
		host:        strings.TrimSuffix(host, "/"),
		contextPath: contextPath,
		docsPath:    docsPath,
	}
}

func (p *absoluteProvider) ApplicationBasePath() string {
	return p.host + collapseSlashes("/"+p.contextPath)
}

func (p *absoluteProvider) DocumentationPath() string {
	return p.host + collapseSlashes("/"+p.docsPath)
}

func (p *absoluteProvider) OperationPath(operationPath string) string {
	return p.host + collapseSlashes("/"+p.contextPath+"/"+operationPath)
}

func (p *absoluteProvider) ResourceListingPath(groupName, apiDeclaration string) string {
	return p.host + collapseSlashes(strings.Join([]string{"/", p.docsPath, groupName, apiDeclaration}, "/"))
}

// collapseSlashes replaces runs of "/" with a single "/" and drops a
// trailing slash unless the result is the root.
func collapseSlashes(p string) string {
	var b strings.Builder
	b.Grow(len(p))
	prevSlash := false
	for _, r := range p {
		if r == '/' {
			if prevSlash {
				continue
			}
			prevSlash = true
		} else {
			prevSlash = false
		}
		b.WriteRune(r)
	}
	out := b.String()
	if len(out) > 1 {
		out = strings.TrimSuffix(out, "/")
	}
	return out
}
