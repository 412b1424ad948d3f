// Package fragment provides declarative, partial documentation
// configuration that can be written in YAML or JSON and folded into a
// contexts.Context.
//
// A Fragment only mentions what it wants to change. Absent fields leave the
// builder untouched, so fragments from independent sources can be applied
// one after another with the same override, default and additive rules as
// direct calls on a contexts.ContextBuilder:
//
//	groupName: public
//	produces: [application/json]
//	pathProvider:
//	  type: relative
//	  contextPath: /api
//	responseMessages:
//	  GET:
//	    - code: 404
//	      message: not found
//	rules:
//	  - original: time.Time
//	    alternate: string
package fragment

import "github.com/erraggy/docctx/service"

// Fragment is a partial documentation configuration.
type Fragment struct {
	GroupName                    string                       `json:"groupName,omitempty" yaml:"groupName,omitempty"`
	APIInfo                      *service.APIInfo             `json:"apiInfo,omitempty" yaml:"apiInfo,omitempty"`
	PathProvider                 *PathProviderSpec            `json:"pathProvider,omitempty" yaml:"pathProvider,omitempty"`
	Authorization                *AuthorizationSpec           `json:"authorization,omitempty" yaml:"authorization,omitempty"`
	AuthorizationTypes           []AuthorizationTypeSpec      `json:"authorizationTypes,omitempty" yaml:"authorizationTypes,omitempty" validate:"omitempty,dive"`
	ApplyDefaultResponseMessages *bool                        `json:"applyDefaultResponseMessages,omitempty" yaml:"applyDefaultResponseMessages,omitempty"`
	ResponseMessages             map[string][]ResponseMessage `json:"responseMessages,omitempty" yaml:"responseMessages,omitempty" validate:"omitempty,dive,keys,httpmethod,endkeys,dive"`
	DefaultResponseMessages      map[string][]ResponseMessage `json:"defaultResponseMessages,omitempty" yaml:"defaultResponseMessages,omitempty" validate:"omitempty,dive,keys,httpmethod,endkeys,dive"`
	IgnorableTypes               []string                     `json:"ignorableTypes,omitempty" yaml:"ignorableTypes,omitempty" validate:"omitempty,dive,required"`
	Rules                        []RuleSpec                   `json:"rules,omitempty" yaml:"rules,omitempty" validate:"omitempty,dive"`
	Produces                     []string                     `json:"produces,omitempty" yaml:"produces,omitempty" validate:"omitempty,dive,required"`
	Consumes                     []string                     `json:"consumes,omitempty" yaml:"consumes,omitempty" validate:"omitempty,dive,required"`
	Protocols                    []string                     `json:"protocols,omitempty" yaml:"protocols,omitempty" validate:"omitempty,dive,oneof=http https ws wss"`
	GenericsNaming               *NamingSpec                  `json:"genericsNaming,omitempty" yaml:"genericsNaming,omitempty"`
	Orderings                    *OrderingSpec                `json:"orderings,omitempty" yaml:"orderings,omitempty"`
	Selector                     *SelectorSpec                `json:"selector,omitempty" yaml:"selector,omitempty"`
	Grouping                     string                       `json:"grouping,omitempty" yaml:"grouping,omitempty" validate:"omitempty,oneof=first-segment"`
}

// PathProviderSpec selects a relative or absolute path provider.
type PathProviderSpec struct {
	Type        string `json:"type" yaml:"type" validate:"required,oneof=relative absolute"`
	Host        string `json:"host,omitempty" yaml:"host,omitempty" validate:"required_if=Type absolute"`
	ContextPath string `json:"contextPath,omitempty" yaml:"contextPath,omitempty"`
	DocsPath    string `json:"docsPath,omitempty" yaml:"docsPath,omitempty"`
}

// PathPattern matches paths with either a regular expression or an
// Ant-style pattern. Setting both is an error.
type PathPattern struct {
	Regex string `json:"regex,omitempty" yaml:"regex,omitempty"`
	Ant   string `json:"ant,omitempty" yaml:"ant,omitempty"`
}

// AuthorizationSpec describes an authorization context.
type AuthorizationSpec struct {
	References []SecurityReferenceSpec `json:"references,omitempty" yaml:"references,omitempty" validate:"omitempty,dive"`
	Paths      *PathPattern            `json:"paths,omitempty" yaml:"paths,omitempty"`
}

// SecurityReferenceSpec names an authorization type and its scopes.
type SecurityReferenceSpec struct {
	Reference string                       `json:"reference" yaml:"reference" validate:"required"`
	Scopes    []service.AuthorizationScope `json:"scopes,omitempty" yaml:"scopes,omitempty"`
}

// AuthorizationTypeSpec declares an authorization scheme.
type AuthorizationTypeSpec struct {
	Name    string `json:"name" yaml:"name" validate:"required"`
	Type    string `json:"type" yaml:"type" validate:"required"`
	KeyName string `json:"keyName,omitempty" yaml:"keyName,omitempty"`
	PassAs  string `json:"passAs,omitempty" yaml:"passAs,omitempty"`
}

// ResponseMessage documents one response of an operation.
type ResponseMessage struct {
	Code          int    `json:"code" yaml:"code" validate:"min=100,max=599"`
	Message       string `json:"message,omitempty" yaml:"message,omitempty"`
	ResponseModel string `json:"responseModel,omitempty" yaml:"responseModel,omitempty"`
}

// RuleSpec is an alternate type rule written with resolver type names.
type RuleSpec struct {
	Original  string `json:"original" yaml:"original" validate:"required"`
	Alternate string `json:"alternate" yaml:"alternate" validate:"required"`
	Order     int    `json:"order,omitempty" yaml:"order,omitempty"`
}

// NamingSpec configures a naming.Config.
type NamingSpec struct {
	Strategy       string `json:"strategy" yaml:"strategy" validate:"required,oneof=underscore of for angle flattened"`
	Separator      string `json:"separator,omitempty" yaml:"separator,omitempty"`
	ParamSeparator string `json:"paramSeparator,omitempty" yaml:"paramSeparator,omitempty"`
	IncludePackage bool   `json:"includePackage,omitempty" yaml:"includePackage,omitempty"`
	ParamCasing    string `json:"paramCasing,omitempty" yaml:"paramCasing,omitempty" validate:"omitempty,oneof=none pascal title"`
}

// OrderingSpec picks one of the named orderings for each sortable element.
type OrderingSpec struct {
	Listings     string `json:"listings,omitempty" yaml:"listings,omitempty" validate:"omitempty,oneof=position path"`
	Descriptions string `json:"descriptions,omitempty" yaml:"descriptions,omitempty" validate:"omitempty,oneof=path path-desc"`
	Operations   string `json:"operations,omitempty" yaml:"operations,omitempty" validate:"omitempty,oneof=position nickname"`
}

// SelectorSpec restricts documentation to matching handlers and paths.
type SelectorSpec struct {
	Handlers []string     `json:"handlers,omitempty" yaml:"handlers,omitempty" validate:"omitempty,dive,required"`
	Paths    *PathPattern `json:"paths,omitempty" yaml:"paths,omitempty"`
}
