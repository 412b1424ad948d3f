package contexts

import (
	"maps"
	"reflect"
	"slices"

	"github.com/erraggy/docctx/docerrors"
	"github.com/erraggy/docctx/internal/maputil"
	"github.com/erraggy/docctx/naming"
	"github.com/erraggy/docctx/ordering"
	"github.com/erraggy/docctx/paths"
	"github.com/erraggy/docctx/selector"
	"github.com/erraggy/docctx/service"
	"github.com/erraggy/docctx/typerules"
)

// ContextBuilder accumulates partial configuration and produces Contexts.
//
// Concurrency: ContextBuilder instances are not safe for concurrent use.
type ContextBuilder struct {
	documentationType DocumentationType
	logger            Logger

	typeResolver             *typerules.Resolver
	handlerMappings          []service.HandlerMapping
	apiInfo                  *service.APIInfo
	groupName                string
	groupingStrategy         service.ResourceGroupingStrategy
	pathProvider             paths.Provider
	authorizationContext     *AuthorizationContext
	authorizationTypes       []service.AuthorizationType
	listingReferenceOrdering ordering.Ordering[service.APIListingReference]
	apiDescriptionOrdering   ordering.Ordering[service.APIDescription]
	operationOrdering        ordering.Ordering[service.Operation]
	genericsNaming           naming.GenericsNamingStrategy

	applyDefaultResponseMessages bool
	apiSelector                  selector.APISelector
	ignorableParameterTypes      maputil.Set[reflect.Type]
	responseMessageOverrides     map[service.HTTPMethod][]service.ResponseMessage
	defaultResponseMessages      map[service.HTTPMethod][]service.ResponseMessage
	rules                        []typerules.Rule
	protocols                    maputil.Set[string]
	produces                     maputil.Set[string]
	consumes                     maputil.Set[string]
}

// NewContextBuilder creates a builder for the given documentation type.
//
// The documentation type is fixed for the builder's lifetime. A zero
// DocumentationType is a programming error: NewContextBuilder panics with a
// *docerrors.ConfigError.
func NewContextBuilder(documentationType DocumentationType, opts ...BuilderOption) *ContextBuilder {
	if documentationType.IsZero() {
		panic(&docerrors.ConfigError{
			Option:  "documentationType",
			Message: "a documentation type is required",
		})
	}

	cfg := defaultBuilderConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &ContextBuilder{
		documentationType:        documentationType,
		logger:                   cfg.logger,
		typeResolver:             cfg.typeResolver,
		apiSelector:              selector.Default(),
		ignorableParameterTypes:  make(maputil.Set[reflect.Type]),
		responseMessageOverrides: make(map[service.HTTPMethod][]service.ResponseMessage),
		defaultResponseMessages:  make(map[service.HTTPMethod][]service.ResponseMessage),
		rules:                    make([]typerules.Rule, 0),
		protocols:                make(maputil.Set[string]),
		produces:                 make(maputil.Set[string]),
		consumes:                 make(maputil.Set[string]),
	}
}

// HandlerMappings replaces the handler mappings.
func (b *ContextBuilder) HandlerMappings(mappings []service.HandlerMapping) *ContextBuilder {
	b.handlerMappings = slices.Clone(mappings)
	return b
}

// APIInfo sets the API info. A nil info leaves the current value.
func (b *ContextBuilder) APIInfo(info *service.APIInfo) *ContextBuilder {
	if info != nil {
		v := *info
		b.apiInfo = &v
	}
	return b
}

// GroupName sets the group name. An empty name leaves the current value.
func (b *ContextBuilder) GroupName(name string) *ContextBuilder {
	if name != "" {
		b.groupName = name
	}
	return b
}

// AdditionalIgnorableTypes adds parameter types the generator should skip.
func (b *ContextBuilder) AdditionalIgnorableTypes(types ...reflect.Type) *ContextBuilder {
	b.ignorableParameterTypes.AddAll(types...)
	return b
}

// AdditionalResponseMessages merges messages into the overrides, per
// method. A method already present has its list replaced. A nil map is
// treated as empty and changes nothing.
func (b *ContextBuilder) AdditionalResponseMessages(messages map[service.HTTPMethod][]service.ResponseMessage) *ContextBuilder {
	maps.Copy(b.responseMessageOverrides, maputil.CloneLists(messages))
	return b
}

// DefaultResponseMessages merges messages into the defaults, per method.
// Defaults only reach a Context when ApplyDefaultResponseMessages is true.
// A nil map is treated as empty and changes nothing.
func (b *ContextBuilder) DefaultResponseMessages(messages map[service.HTTPMethod][]service.ResponseMessage) *ContextBuilder {
	maps.Copy(b.defaultResponseMessages, maputil.CloneLists(messages))
	return b
}

// ApplyDefaultResponseMessages sets whether defaults are merged under the
// overrides at build time.
func (b *ContextBuilder) ApplyDefaultResponseMessages(apply bool) *ContextBuilder {
	b.applyDefaultResponseMessages = apply
	return b
}

// ResourceGroupingStrategy replaces the resource grouping strategy.
func (b *ContextBuilder) ResourceGroupingStrategy(strategy service.ResourceGroupingStrategy) *ContextBuilder {
	b.groupingStrategy = strategy
	return b
}

// PathProvider sets the path provider. A nil provider leaves the current value.
func (b *ContextBuilder) PathProvider(provider paths.Provider) *ContextBuilder {
	if provider != nil {
		b.pathProvider = provider
	}
	return b
}

// AuthorizationContext sets the authorization context. A nil context
// leaves the current value.
func (b *ContextBuilder) AuthorizationContext(ac *AuthorizationContext) *ContextBuilder {
	if ac != nil {
		b.authorizationContext = ac
	}
	return b
}

// AuthorizationTypes replaces the authorization types.
func (b *ContextBuilder) AuthorizationTypes(types []service.AuthorizationType) *ContextBuilder {
	b.authorizationTypes = slices.Clone(types)
	return b
}

// ListingReferenceOrdering sets the listing reference ordering. A nil
// ordering leaves the current value.
func (b *ContextBuilder) ListingReferenceOrdering(o ordering.Ordering[service.APIListingReference]) *ContextBuilder {
	if o != nil {
		b.listingReferenceOrdering = o
	}
	return b
}

// APIDescriptionOrdering sets the API description ordering. A nil
// ordering leaves the current value.
func (b *ContextBuilder) APIDescriptionOrdering(o ordering.Ordering[service.APIDescription]) *ContextBuilder {
	if o != nil {
		b.apiDescriptionOrdering = o
	}
	return b
}

// OperationOrdering sets the operation ordering. A nil ordering leaves the
// current value.
func (b *ContextBuilder) OperationOrdering(o ordering.Ordering[service.Operation]) *ContextBuilder {
	if o != nil {
		b.operationOrdering = o
	}
	return b
}

// GenericsNaming sets the generic type naming strategy. A nil strategy
// leaves the current value.
func (b *ContextBuilder) GenericsNaming(strategy naming.GenericsNamingStrategy) *ContextBuilder {
	if strategy != nil {
		b.genericsNaming = strategy
	}
	return b
}

// TypeResolver replaces the resolver handed to rule factories registered
// from now on. Rules already produced are unaffected. A nil resolver is
// ignored.
func (b *ContextBuilder) TypeResolver(r *typerules.Resolver) *ContextBuilder {
	if r != nil {
		b.typeResolver = r
	}
	return b
}

// Rules appends rules in order.
func (b *ContextBuilder) Rules(rules []typerules.Rule) *ContextBuilder {
	b.rules = append(b.rules, rules...)
	return b
}

// RuleBuilders evaluates each factory against the current type resolver,
// immediately and in order, and appends the resulting rules.
func (b *ContextBuilder) RuleBuilders(factories []typerules.Factory) *ContextBuilder {
	for _, f := range factories {
		b.rules = append(b.rules, f(b.typeResolver))
	}
	return b
}

// Produces adds media types the API produces.
func (b *ContextBuilder) Produces(mediaTypes ...string) *ContextBuilder {
	b.produces.AddAll(mediaTypes...)
	return b
}

// Consumes adds media types the API consumes.
func (b *ContextBuilder) Consumes(mediaTypes ...string) *ContextBuilder {
	b.consumes.AddAll(mediaTypes...)
	return b
}

// Protocols adds transfer protocols such as "https".
func (b *ContextBuilder) Protocols(protocols ...string) *ContextBuilder {
	b.protocols.AddAll(protocols...)
	return b
}

// Selector replaces the API selector.
func (b *ContextBuilder) Selector(s selector.APISelector) *ContextBuilder {
	b.apiSelector = s
	return b
}

// responseMessages computes the effective response messages: a copy of
// the defaults when they apply, overlaid per method by the overrides.
func (b *ContextBuilder) responseMessages() map[service.HTTPMethod][]service.ResponseMessage {
	messages := make(map[service.HTTPMethod][]service.ResponseMessage)
	if b.applyDefaultResponseMessages {
		maps.Copy(messages, maputil.CloneLists(b.defaultResponseMessages))
	}
	maps.Copy(messages, maputil.CloneLists(b.responseMessageOverrides))
	return messages
}

// Build produces a Context from the current state. The builder may keep
// being mutated and built again; earlier Contexts are unaffected.
func (b *ContextBuilder) Build() *Context {
	authorizationContext := b.authorizationContext
	if authorizationContext == nil {
		authorizationContext = defaultAuthorizationContext()
	}

	var apiInfo *service.APIInfo
	if b.apiInfo != nil {
		v := *b.apiInfo
		apiInfo = &v
	}

	ctx := &Context{
		documentationType:        b.documentationType,
		handlerMappings:          slices.Clone(b.handlerMappings),
		apiInfo:                  apiInfo,
		groupName:                b.groupName,
		apiSelector:              b.apiSelector,
		ignorableParameterTypes:  b.ignorableParameterTypes.Clone(),
		responseMessages:         b.responseMessages(),
		applyDefaults:            b.applyDefaultResponseMessages,
		groupingStrategy:         b.groupingStrategy,
		pathProvider:             b.pathProvider,
		authorizationContext:     authorizationContext,
		authorizationTypes:       slices.Clone(b.authorizationTypes),
		rules:                    slices.Clone(b.rules),
		listingReferenceOrdering: b.listingReferenceOrdering,
		apiDescriptionOrdering:   b.apiDescriptionOrdering,
		operationOrdering:        b.operationOrdering,
		produces:                 b.produces.Clone(),
		consumes:                 b.consumes.Clone(),
		protocols:                b.protocols.Clone(),
		genericsNaming:           b.genericsNaming,
	}

	b.logger.Debug("built documentation context",
		"documentationType", b.documentationType.String(),
		"group", b.groupName,
		"rules", len(ctx.rules),
		"responseMethods", len(ctx.responseMessages),
		"applyDefaults", b.applyDefaultResponseMessages,
		"defaultAuthorization", b.authorizationContext == nil,
	)

	return ctx
}
