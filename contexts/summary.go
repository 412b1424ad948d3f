package contexts

import (
	"github.com/erraggy/docctx/internal/maputil"
	"github.com/erraggy/docctx/service"
	"github.com/erraggy/docctx/typerules"
)

// Summary is a serializable view of a Context, used by the CLI and MCP
// server to report what a set of fragments resolves to.
type Summary struct {
	DocumentationType            string                                 `json:"documentationType" yaml:"documentationType"`
	GroupName                    string                                 `json:"groupName,omitempty" yaml:"groupName,omitempty"`
	APIInfo                      *service.APIInfo                       `json:"apiInfo,omitempty" yaml:"apiInfo,omitempty"`
	HandlerMappings              []string                               `json:"handlerMappings,omitempty" yaml:"handlerMappings,omitempty"`
	Paths                        *PathsSummary                          `json:"paths,omitempty" yaml:"paths,omitempty"`
	SecurityReferences           []service.SecurityReference            `json:"securityReferences" yaml:"securityReferences"`
	AuthorizationTypes           []service.AuthorizationType            `json:"authorizationTypes,omitempty" yaml:"authorizationTypes,omitempty"`
	ApplyDefaultResponseMessages bool                                   `json:"applyDefaultResponseMessages" yaml:"applyDefaultResponseMessages"`
	ResponseMessages             map[string][]service.ResponseMessage   `json:"responseMessages,omitempty" yaml:"responseMessages,omitempty"`
	IgnorableParameterTypes      []string                               `json:"ignorableParameterTypes,omitempty" yaml:"ignorableParameterTypes,omitempty"`
	Rules                        []RuleSummary                          `json:"rules,omitempty" yaml:"rules,omitempty"`
	Produces                     []string                               `json:"produces,omitempty" yaml:"produces,omitempty"`
	Consumes                     []string                               `json:"consumes,omitempty" yaml:"consumes,omitempty"`
	Protocols                    []string                               `json:"protocols,omitempty" yaml:"protocols,omitempty"`
}

// PathsSummary reports the base paths of a path provider.
type PathsSummary struct {
	ApplicationBasePath string `json:"applicationBasePath" yaml:"applicationBasePath"`
	DocumentationPath   string `json:"documentationPath" yaml:"documentationPath"`
}

// RuleSummary reports one alternate type rule by type name.
type RuleSummary struct {
	Original  string `json:"original" yaml:"original"`
	Alternate string `json:"alternate" yaml:"alternate"`
	Order     int    `json:"order,omitempty" yaml:"order,omitempty"`
}

// Summary returns a serializable view of c. Type names are taken from
// resolver when one is given, and from reflect otherwise.
func (c *Context) Summary(resolver *typerules.Resolver) Summary {
	name := typeName
	if resolver != nil {
		name = resolver.NameOf
	}

	s := Summary{
		DocumentationType:            c.documentationType.String(),
		GroupName:                    c.groupName,
		APIInfo:                      c.APIInfo(),
		SecurityReferences:           c.authorizationContext.SecurityReferences(),
		AuthorizationTypes:           c.AuthorizationTypes(),
		ApplyDefaultResponseMessages: c.applyDefaults,
		Produces:                     c.Produces(),
		Consumes:                     c.Consumes(),
		Protocols:                    c.Protocols(),
	}

	for _, m := range c.handlerMappings {
		s.HandlerMappings = append(s.HandlerMappings, m.Name())
	}

	if c.pathProvider != nil {
		s.Paths = &PathsSummary{
			ApplicationBasePath: c.pathProvider.ApplicationBasePath(),
			DocumentationPath:   c.pathProvider.DocumentationPath(),
		}
	}

	if len(c.responseMessages) > 0 {
		s.ResponseMessages = make(map[string][]service.ResponseMessage, len(c.responseMessages))
		for method, messages := range maputil.CloneLists(c.responseMessages) {
			s.ResponseMessages[method.String()] = messages
		}
	}

	for _, t := range c.IgnorableParameterTypes() {
		s.IgnorableParameterTypes = append(s.IgnorableParameterTypes, name(t))
	}

	for _, r := range c.rules {
		s.Rules = append(s.Rules, RuleSummary{
			Original:  name(r.Original),
			Alternate: name(r.Alternate),
			Order:     r.Order,
		})
	}

	return s
}
