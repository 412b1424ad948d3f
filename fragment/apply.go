package fragment

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/erraggy/docctx/contexts"
	"github.com/erraggy/docctx/docerrors"
	"github.com/erraggy/docctx/naming"
	"github.com/erraggy/docctx/ordering"
	"github.com/erraggy/docctx/paths"
	"github.com/erraggy/docctx/selector"
	"github.com/erraggy/docctx/service"
	"github.com/erraggy/docctx/typerules"
)

var casings = map[string]naming.Casing{
	"":       naming.CasingNone,
	"none":   naming.CasingNone,
	"pascal": naming.CasingPascal,
	"title":  naming.CasingTitle,
}

// changes holds a fragment converted to builder arguments. A nil field
// means the fragment does not mention it.
type changes struct {
	apiInfo            *service.APIInfo
	pathProvider       paths.Provider
	authorization      *contexts.AuthorizationContext
	authorizationTypes []service.AuthorizationType
	applyDefaults      *bool
	responses          map[service.HTTPMethod][]service.ResponseMessage
	defaultResponses   map[service.HTTPMethod][]service.ResponseMessage
	ignorable          []reflect.Type
	rules              []typerules.Rule
	naming             naming.GenericsNamingStrategy
	listings           ordering.Ordering[service.APIListingReference]
	descriptions       ordering.Ordering[service.APIDescription]
	operations         ordering.Ordering[service.Operation]
	selector           *selector.APISelector
	grouping           service.ResourceGroupingStrategy
}

// Apply applies the fields present in f to b. Type names in ignorableTypes
// and rules are resolved through resolver; a nil resolver means the
// builtin types only.
//
// Apply validates f and resolves everything before touching b, so on error
// b is left unchanged.
func (f *Fragment) Apply(b *contexts.ContextBuilder, resolver *typerules.Resolver) error {
	if err := Validate(f); err != nil {
		return err
	}
	if resolver == nil {
		resolver = typerules.NewResolver()
	}
	c, err := f.changes(resolver)
	if err != nil {
		return err
	}

	b.GroupName(f.GroupName).
		APIInfo(c.apiInfo).
		PathProvider(c.pathProvider).
		AuthorizationContext(c.authorization).
		GenericsNaming(c.naming).
		ListingReferenceOrdering(c.listings).
		APIDescriptionOrdering(c.descriptions).
		OperationOrdering(c.operations).
		AdditionalIgnorableTypes(c.ignorable...).
		Rules(c.rules).
		Produces(f.Produces...).
		Consumes(f.Consumes...).
		Protocols(f.Protocols...).
		AdditionalResponseMessages(c.responses).
		DefaultResponseMessages(c.defaultResponses)

	if c.authorizationTypes != nil {
		b.AuthorizationTypes(c.authorizationTypes)
	}
	if c.applyDefaults != nil {
		b.ApplyDefaultResponseMessages(*c.applyDefaults)
	}
	if c.selector != nil {
		b.Selector(*c.selector)
	}
	if c.grouping != nil {
		b.ResourceGroupingStrategy(c.grouping)
	}
	return nil
}

func (f *Fragment) changes(resolver *typerules.Resolver) (*changes, error) {
	c := &changes{applyDefaults: f.ApplyDefaultResponseMessages}
	var err error

	if f.APIInfo != nil {
		info := *f.APIInfo
		c.apiInfo = &info
	}
	if p := f.PathProvider; p != nil {
		if p.Type == "absolute" {
			c.pathProvider = paths.Absolute(p.Host, p.ContextPath, p.DocsPath)
		} else {
			c.pathProvider = paths.Relative(p.ContextPath)
		}
	}
	if a := f.Authorization; a != nil {
		refs := make([]service.SecurityReference, 0, len(a.References))
		for _, r := range a.References {
			refs = append(refs, service.SecurityReference{Reference: r.Reference, Scopes: r.Scopes})
		}
		var sel selector.PathSelector
		if a.Paths != nil {
			if sel, err = pathSelector("authorization.paths", a.Paths); err != nil {
				return nil, err
			}
		}
		c.authorization = contexts.NewAuthorizationContext(refs, sel)
	}
	if f.AuthorizationTypes != nil {
		c.authorizationTypes = make([]service.AuthorizationType, 0, len(f.AuthorizationTypes))
		for _, t := range f.AuthorizationTypes {
			c.authorizationTypes = append(c.authorizationTypes, service.AuthorizationType(t))
		}
	}
	if c.responses, err = responseMessages("responseMessages", f.ResponseMessages); err != nil {
		return nil, err
	}
	if c.defaultResponses, err = responseMessages("defaultResponseMessages", f.DefaultResponseMessages); err != nil {
		return nil, err
	}
	for _, name := range f.IgnorableTypes {
		t, err := resolve(resolver, "ignorableTypes", name)
		if err != nil {
			return nil, err
		}
		c.ignorable = append(c.ignorable, t)
	}
	for _, r := range f.Rules {
		original, err := resolve(resolver, "rules", r.Original)
		if err != nil {
			return nil, err
		}
		alternate, err := resolve(resolver, "rules", r.Alternate)
		if err != nil {
			return nil, err
		}
		c.rules = append(c.rules, typerules.NewRule(original, alternate, r.Order))
	}
	if f.GenericsNaming != nil {
		if c.naming, err = f.GenericsNaming.strategy(); err != nil {
			return nil, err
		}
	}
	if o := f.Orderings; o != nil {
		c.listings, c.descriptions, c.operations = o.orderings()
	}
	if s := f.Selector; s != nil {
		sel := selector.Default()
		if len(s.Handlers) > 0 {
			sel.Handler = selector.HandlerWithName(s.Handlers...)
		}
		if s.Paths != nil {
			if sel.Path, err = pathSelector("selector.paths", s.Paths); err != nil {
				return nil, err
			}
		}
		c.selector = &sel
	}
	if f.Grouping == "first-segment" {
		c.grouping = service.GroupByFirstSegment()
	}
	return c, nil
}

func resolve(resolver *typerules.Resolver, option, name string) (reflect.Type, error) {
	t, err := resolver.Resolve(name)
	if err != nil {
		return nil, &docerrors.ConfigError{
			Option:  option,
			Value:   name,
			Message: "cannot resolve type",
			Cause:   docerrors.ErrUnknownType,
		}
	}
	return t, nil
}

func responseMessages(option string, in map[string][]ResponseMessage) (map[service.HTTPMethod][]service.ResponseMessage, error) {
	if in == nil {
		return nil, nil
	}
	if err := checkMethodKeys(option, in); err != nil {
		return nil, err
	}
	out := make(map[service.HTTPMethod][]service.ResponseMessage, len(in))
	for key, list := range in {
		method, _ := service.ParseHTTPMethod(key)
		messages := make([]service.ResponseMessage, 0, len(list))
		for _, m := range list {
			messages = append(messages, service.ResponseMessage(m))
		}
		out[method] = messages
	}
	return out, nil
}

func pathSelector(option string, p *PathPattern) (selector.PathSelector, error) {
	var (
		s   selector.PathSelector
		err error
	)
	if p.Regex != "" {
		s, err = selector.Regex(p.Regex)
	} else {
		s, err = selector.Ant(p.Ant)
	}
	if err != nil {
		return nil, &docerrors.ConfigError{Option: option, Value: *p, Message: "invalid path pattern", Cause: err}
	}
	return s, nil
}

func (n *NamingSpec) strategy() (naming.GenericsNamingStrategy, error) {
	strategy, err := naming.ParseStrategy(n.Strategy)
	if err != nil {
		return nil, &docerrors.ConfigError{Option: "genericsNaming.strategy", Value: n.Strategy, Cause: err}
	}
	casing, ok := casings[n.ParamCasing]
	if !ok {
		return nil, &docerrors.ConfigError{Option: "genericsNaming.paramCasing", Value: n.ParamCasing, Message: "unknown casing"}
	}

	cfg := naming.Default()
	cfg.Strategy = strategy
	cfg.IncludePackage = n.IncludePackage
	cfg.ParamCasing = casing
	if n.Separator != "" {
		cfg.Separator = n.Separator
	}
	if n.ParamSeparator != "" {
		cfg.ParamSeparator = n.ParamSeparator
	}
	return cfg, nil
}

func (o *OrderingSpec) orderings() (
	ordering.Ordering[service.APIListingReference],
	ordering.Ordering[service.APIDescription],
	ordering.Ordering[service.Operation],
) {
	var (
		listings     ordering.Ordering[service.APIListingReference]
		descriptions ordering.Ordering[service.APIDescription]
		operations   ordering.Ordering[service.Operation]
	)

	switch o.Listings {
	case "position":
		listings = service.ListingReferencesByPosition()
	case "path":
		listings = ordering.By(func(r service.APIListingReference) string { return r.Path })
	}

	switch o.Descriptions {
	case "path":
		descriptions = service.DescriptionsByPath()
	case "path-desc":
		descriptions = service.DescriptionsByPath().Reverse()
	}

	switch o.Operations {
	case "position":
		operations = service.OperationsByPosition()
	case "nickname":
		operations = ordering.By(func(op service.Operation) string { return op.Nickname }).
			Then(service.OperationsByPosition())
	}

	return listings, descriptions, operations
}

// Fold builds a context of the given documentation type by applying
// fragments in order to a fresh builder. Nil fragments are skipped. The
// resolver, or a fresh one when nil, is installed as the builder's type
// resolver and takes precedence over any WithTypeResolver in opts.
func Fold(kind contexts.DocumentationType, resolver *typerules.Resolver, fragments []*Fragment, opts ...contexts.BuilderOption) (*contexts.Context, error) {
	if kind.IsZero() {
		return nil, &docerrors.ConfigError{Option: "documentationType", Message: "documentation type is required"}
	}
	if resolver == nil {
		resolver = typerules.NewResolver()
	}

	b := newFoldBuilder(kind, resolver, opts)
	for i, f := range fragments {
		if f == nil {
			continue
		}
		if err := f.Apply(b, resolver); err != nil {
			return nil, fmt.Errorf("fragment: fragment %d: %w", i, err)
		}
	}
	return b.Build(), nil
}

// newFoldBuilder applies opts and then installs resolver, so the resolver
// rule factories see is always the one fragments resolve names with.
func newFoldBuilder(kind contexts.DocumentationType, resolver *typerules.Resolver, opts []contexts.BuilderOption) *contexts.ContextBuilder {
	opts = append(slices.Clip(opts), contexts.WithTypeResolver(resolver))
	return contexts.NewContextBuilder(kind, opts...)
}
