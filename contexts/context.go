package contexts

import (
	"reflect"
	"slices"
	"strings"

	"github.com/erraggy/docctx/internal/maputil"
	"github.com/erraggy/docctx/naming"
	"github.com/erraggy/docctx/ordering"
	"github.com/erraggy/docctx/paths"
	"github.com/erraggy/docctx/selector"
	"github.com/erraggy/docctx/service"
	"github.com/erraggy/docctx/typerules"
)

// Context is the immutable configuration a documentation generator runs
// with. Every accessor returning a collection returns a copy.
type Context struct {
	documentationType        DocumentationType
	handlerMappings          []service.HandlerMapping
	apiInfo                  *service.APIInfo
	groupName                string
	apiSelector              selector.APISelector
	ignorableParameterTypes  maputil.Set[reflect.Type]
	responseMessages         map[service.HTTPMethod][]service.ResponseMessage
	applyDefaults            bool
	groupingStrategy         service.ResourceGroupingStrategy
	pathProvider             paths.Provider
	authorizationContext     *AuthorizationContext
	authorizationTypes       []service.AuthorizationType
	rules                    []typerules.Rule
	listingReferenceOrdering ordering.Ordering[service.APIListingReference]
	apiDescriptionOrdering   ordering.Ordering[service.APIDescription]
	operationOrdering        ordering.Ordering[service.Operation]
	produces                 maputil.Set[string]
	consumes                 maputil.Set[string]
	protocols                maputil.Set[string]
	genericsNaming           naming.GenericsNamingStrategy
}

// DocumentationType returns the documentation type the builder was created with.
func (c *Context) DocumentationType() DocumentationType {
	return c.documentationType
}

// HandlerMappings returns the handler mappings.
func (c *Context) HandlerMappings() []service.HandlerMapping {
	return slices.Clone(c.handlerMappings)
}

// APIInfo returns a copy of the API info, or nil when none was set.
func (c *Context) APIInfo() *service.APIInfo {
	if c.apiInfo == nil {
		return nil
	}
	v := *c.apiInfo
	return &v
}

// GroupName returns the group name.
func (c *Context) GroupName() string {
	return c.groupName
}

// Selector returns the API selector.
func (c *Context) Selector() selector.APISelector {
	return c.apiSelector
}

// IgnorableParameterTypes returns the ignorable types ordered by name.
func (c *Context) IgnorableParameterTypes() []reflect.Type {
	return maputil.SortedKeysFunc(c.ignorableParameterTypes, func(a, b reflect.Type) int {
		return strings.Compare(typeName(a), typeName(b))
	})
}

// IsIgnorable reports whether parameters of type t are skipped.
func (c *Context) IsIgnorable(t reflect.Type) bool {
	return c.ignorableParameterTypes.Contains(t)
}

// ApplyDefaultResponseMessages reports whether defaults were merged into
// the response messages.
func (c *Context) ApplyDefaultResponseMessages() bool {
	return c.applyDefaults
}

// ResponseMessages returns the effective response messages per method.
func (c *Context) ResponseMessages() map[service.HTTPMethod][]service.ResponseMessage {
	return maputil.CloneLists(c.responseMessages)
}

// ResponseMessagesFor returns the effective response messages for method.
func (c *Context) ResponseMessagesFor(method service.HTTPMethod) []service.ResponseMessage {
	return slices.Clone(c.responseMessages[method])
}

// ResourceGroupingStrategy returns the grouping strategy, or nil.
func (c *Context) ResourceGroupingStrategy() service.ResourceGroupingStrategy {
	return c.groupingStrategy
}

// PathProvider returns the path provider, or nil.
func (c *Context) PathProvider() paths.Provider {
	return c.pathProvider
}

// AuthorizationContext returns the authorization context. It is never nil.
func (c *Context) AuthorizationContext() *AuthorizationContext {
	return c.authorizationContext
}

// AuthorizationTypes returns the authorization types.
func (c *Context) AuthorizationTypes() []service.AuthorizationType {
	return slices.Clone(c.authorizationTypes)
}

// Rules returns the alternate type rules in registration order.
func (c *Context) Rules() []typerules.Rule {
	return slices.Clone(c.rules)
}

// AlternateFor returns the type t is documented as.
func (c *Context) AlternateFor(t reflect.Type) reflect.Type {
	return typerules.Alternate(c.rules, t)
}

// ListingReferenceOrdering returns the listing reference ordering, or nil.
func (c *Context) ListingReferenceOrdering() ordering.Ordering[service.APIListingReference] {
	return c.listingReferenceOrdering
}

// APIDescriptionOrdering returns the API description ordering, or nil.
func (c *Context) APIDescriptionOrdering() ordering.Ordering[service.APIDescription] {
	return c.apiDescriptionOrdering
}

// OperationOrdering returns the operation ordering, or nil.
func (c *Context) OperationOrdering() ordering.Ordering[service.Operation] {
	return c.operationOrdering
}

// Produces returns the produced media types, sorted.
func (c *Context) Produces() []string {
	return maputil.SortedKeys(c.produces)
}

// Consumes returns the consumed media types, sorted.
func (c *Context) Consumes() []string {
	return maputil.SortedKeys(c.consumes)
}

// Protocols returns the protocols, sorted.
func (c *Context) Protocols() []string {
	return maputil.SortedKeys(c.protocols)
}

// GenericsNaming returns the generic type naming strategy, or nil.
func (c *Context) GenericsNaming() naming.GenericsNamingStrategy {
	return c.genericsNaming
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
