package fragment

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/docctx/contexts"
	"github.com/erraggy/docctx/docerrors"
	"github.com/erraggy/docctx/internal/testutil"
	"github.com/erraggy/docctx/ordering"
	"github.com/erraggy/docctx/paths"
	"github.com/erraggy/docctx/service"
	"github.com/erraggy/docctx/typerules"
)

func mustDecode(t *testing.T, src string) *Fragment {
	t.Helper()
	f, err := Decode("", []byte(src))
	require.NoError(t, err)
	return f
}

func TestFold_BaseThenOverride(t *testing.T) {
	base := mustDecode(t, testutil.BaseFragmentYAML)
	override := mustDecode(t, testutil.OverrideFragmentYAML)

	ctx, err := Fold(contexts.Swagger2, nil, []*Fragment{base, override})
	require.NoError(t, err)

	assert.Equal(t, "internal", ctx.GroupName())
	require.NotNil(t, ctx.APIInfo())
	assert.Equal(t, "Pet Store", ctx.APIInfo().Title)
	assert.Equal(t, "/api", ctx.PathProvider().ApplicationBasePath())
	assert.Equal(t, []string{"application/json", "application/xml"}, ctx.Produces())
	assert.Equal(t, []string{"http", "https"}, ctx.Protocols())
	assert.Len(t, ctx.AuthorizationTypes(), 1)
	assert.True(t, ctx.IsIgnorable(reflect.TypeFor[time.Duration]()))

	assert.Equal(t, map[service.HTTPMethod][]service.ResponseMessage{
		service.MethodGet:  {{Code: 404, Message: "Not Found", ResponseModel: "Error"}},
		service.MethodPost: {{Code: 201, Message: "Created"}},
	}, ctx.ResponseMessages())

	rules := ctx.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, reflect.TypeFor[int64](), rules[0].Original)
	assert.Equal(t, reflect.TypeFor[float64](), rules[1].Original)
	assert.Equal(t, 1, rules[1].Order)
	assert.Equal(t, reflect.TypeFor[string](), ctx.AlternateFor(reflect.TypeFor[float64]()))
}

func TestFold_MatchesManualSetters(t *testing.T) {
	resolver := typerules.NewResolver()
	ctx, err := Fold(contexts.Swagger2, resolver, []*Fragment{
		mustDecode(t, testutil.BaseFragmentYAML),
		mustDecode(t, testutil.OverrideFragmentYAML),
	})
	require.NoError(t, err)

	manual := contexts.NewContextBuilder(contexts.Swagger2, contexts.WithTypeResolver(resolver)).
		GroupName("public").
		APIInfo(&service.APIInfo{Title: "Pet Store", Version: "1.0.0"}).
		PathProvider(paths.Relative("/api")).
		AuthorizationTypes([]service.AuthorizationType{{Name: "api_key", Type: "apiKey", KeyName: "X-API-Key", PassAs: "header"}}).
		ApplyDefaultResponseMessages(true).
		DefaultResponseMessages(map[service.HTTPMethod][]service.ResponseMessage{
			service.MethodGet:  {{Code: 200, Message: "OK"}},
			service.MethodPost: {{Code: 201, Message: "Created"}},
		}).
		AdditionalIgnorableTypes(reflect.TypeFor[time.Duration]()).
		Rules([]typerules.Rule{typerules.RuleOf[int64, string](0)}).
		Produces("application/json").
		Protocols("https").
		GroupName("internal").
		AdditionalResponseMessages(map[service.HTTPMethod][]service.ResponseMessage{
			service.MethodGet: {{Code: 404, Message: "Not Found", ResponseModel: "Error"}},
		}).
		Produces("application/xml").
		Protocols("http").
		Rules([]typerules.Rule{typerules.RuleOf[float64, string](1)}).
		Build()

	assert.Equal(t, manual.Summary(resolver), ctx.Summary(resolver))
}

func TestApply_AbsentFieldsLeaveBuilderUntouched(t *testing.T) {
	b := contexts.NewContextBuilder(contexts.Swagger2).
		GroupName("keep").
		AuthorizationTypes([]service.AuthorizationType{{Name: "oauth", Type: "oauth2"}}).
		ApplyDefaultResponseMessages(true).
		DefaultResponseMessages(testutil.NewResponseMessages(500, service.MethodGet))

	require.NoError(t, mustDecode(t, "produces: [text/plain]\n").Apply(b, nil))
	ctx := b.Build()

	assert.Equal(t, "keep", ctx.GroupName())
	assert.Equal(t, []service.AuthorizationType{{Name: "oauth", Type: "oauth2"}}, ctx.AuthorizationTypes())
	assert.True(t, ctx.ApplyDefaultResponseMessages())
	assert.Len(t, ctx.ResponseMessagesFor(service.MethodGet), 1)
	assert.Equal(t, []string{"text/plain"}, ctx.Produces())
}

func TestApply_EmptyAuthorizationTypesClears(t *testing.T) {
	b := contexts.NewContextBuilder(contexts.Swagger2).
		AuthorizationTypes([]service.AuthorizationType{{Name: "oauth", Type: "oauth2"}})

	require.NoError(t, (&Fragment{AuthorizationTypes: []AuthorizationTypeSpec{}}).Apply(b, nil))
	assert.Empty(t, b.Build().AuthorizationTypes())
}

func TestApply_DisablingDefaults(t *testing.T) {
	ctx, err := Fold(contexts.Swagger2, nil, []*Fragment{
		mustDecode(t, testutil.BaseFragmentYAML),
		mustDecode(t, "applyDefaultResponseMessages: false\n"),
	})
	require.NoError(t, err)

	assert.False(t, ctx.ApplyDefaultResponseMessages())
	assert.Empty(t, ctx.ResponseMessages())
}

func TestApply_UnknownTypeLeavesBuilderUnchanged(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		option string
	}{
		{"ignorable", "groupName: changed\nignorableTypes: [models.Missing]\n", "ignorableTypes"},
		{"rule original", "groupName: changed\nrules:\n  - original: models.Missing\n    alternate: string\n", "rules"},
		{"rule alternate", "groupName: changed\nrules:\n  - original: string\n    alternate: models.Missing\n", "rules"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := contexts.NewContextBuilder(contexts.Swagger2).GroupName("original")

			err := mustDecode(t, tt.input).Apply(b, typerules.NewResolver())
			require.Error(t, err)
			assert.ErrorIs(t, err, docerrors.ErrConfig)
			assert.ErrorIs(t, err, docerrors.ErrUnknownType)
			assert.Contains(t, err.Error(), tt.option)
			assert.Contains(t, err.Error(), "models.Missing")

			assert.Equal(t, "original", b.Build().GroupName())
			assert.Empty(t, b.Build().Rules())
		})
	}
}

func TestApply_CustomResolverTypes(t *testing.T) {
	type Money struct{ Cents int64 }

	resolver := typerules.NewResolver()
	require.NoError(t, typerules.Register[Money](resolver, "models.Money"))

	ctx, err := Fold(contexts.OpenAPI3, resolver, []*Fragment{
		mustDecode(t, "rules:\n  - original: models.Money\n    alternate: string\n"),
	})
	require.NoError(t, err)

	assert.Equal(t, reflect.TypeFor[string](), ctx.AlternateFor(reflect.TypeFor[Money]()))
	assert.Equal(t, "models.Money", ctx.Summary(resolver).Rules[0].Original)
}

func TestApply_InvalidPattern(t *testing.T) {
	b := contexts.NewContextBuilder(contexts.Swagger2)
	err := mustDecode(t, "selector:\n  paths:\n    regex: \"[\"\n").Apply(b, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, docerrors.ErrConfig)
	assert.Contains(t, err.Error(), "selector.paths")
}

func TestApply_ValidatesProgrammaticFragments(t *testing.T) {
	b := contexts.NewContextBuilder(contexts.Swagger2)
	err := (&Fragment{Protocols: []string{"gopher"}}).Apply(b, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, docerrors.ErrConfig)
}

func TestApply_PathProviders(t *testing.T) {
	ctx, err := Fold(contexts.Swagger2, nil, []*Fragment{
		mustDecode(t, "pathProvider:\n  type: absolute\n  host: https://api.example.com\n  contextPath: /v1\n  docsPath: /docs\n"),
	})
	require.NoError(t, err)

	p := ctx.PathProvider()
	assert.Equal(t, paths.Absolute("https://api.example.com", "/v1", "/docs").ApplicationBasePath(), p.ApplicationBasePath())
	assert.Equal(t, paths.Absolute("https://api.example.com", "/v1", "/docs").DocumentationPath(), p.DocumentationPath())
}

func TestApply_Authorization(t *testing.T) {
	ctx, err := Fold(contexts.Swagger2, nil, []*Fragment{
		mustDecode(t, `authorization:
  references:
    - reference: oauth
      scopes:
        - scope: read
  paths:
    regex: ^/api/.*
`),
	})
	require.NoError(t, err)

	ac := ctx.AuthorizationContext()
	require.NotNil(t, ac)
	assert.True(t, ac.Selects("/api/pets"))
	assert.False(t, ac.Selects("/health"))
	assert.Equal(t, []service.SecurityReference{{
		Reference: "oauth",
		Scopes:    []service.AuthorizationScope{{Scope: "read"}},
	}}, ac.SecurityForPath("/api/pets"))
	assert.Empty(t, ac.SecurityForPath("/health"))
}

func TestApply_Selector(t *testing.T) {
	ctx, err := Fold(contexts.Swagger2, nil, []*Fragment{
		mustDecode(t, "selector:\n  handlers: [pets]\n  paths:\n    ant: /api/**\n"),
	})
	require.NoError(t, err)

	sel := ctx.Selector()
	assert.True(t, sel.Selects(service.RequestHandler{Name: "pets", Patterns: []string{"/api/pets"}}))
	assert.False(t, sel.SelectsHandler(service.RequestHandler{Name: "admin"}))
	assert.False(t, sel.SelectsPath("/internal/x"))
}

func TestApply_Selector_HandlersOnly(t *testing.T) {
	ctx, err := Fold(contexts.Swagger2, nil, []*Fragment{
		mustDecode(t, "selector:\n  handlers: [pets]\n"),
	})
	require.NoError(t, err)

	assert.True(t, ctx.Selector().SelectsPath("/anything"))
}

func TestApply_GenericsNaming(t *testing.T) {
	ctx, err := Fold(contexts.Swagger2, nil, []*Fragment{
		mustDecode(t, "genericsNaming:\n  strategy: of\n"),
		mustDecode(t, "groupName: later\n"),
	})
	require.NoError(t, err)

	require.NotNil(t, ctx.GenericsNaming())
	assert.Equal(t, "ResponseOfUser", ctx.GenericsNaming().GenericTypeName("Response[models.User]"))
}

func TestApply_Orderings(t *testing.T) {
	ctx, err := Fold(contexts.Swagger2, nil, []*Fragment{
		mustDecode(t, "orderings:\n  listings: path\n  descriptions: path-desc\n  operations: nickname\n"),
	})
	require.NoError(t, err)

	listings := ordering.Sorted([]service.APIListingReference{
		{Path: "/b", Position: 1},
		{Path: "/a", Position: 2},
	}, ctx.ListingReferenceOrdering())
	assert.Equal(t, "/a", listings[0].Path)

	descriptions := ordering.Sorted([]service.APIDescription{
		{Path: "/a"},
		{Path: "/c"},
		{Path: "/b"},
	}, ctx.APIDescriptionOrdering())
	assert.Equal(t, []string{"/c", "/b", "/a"}, []string{descriptions[0].Path, descriptions[1].Path, descriptions[2].Path})

	operations := ordering.Sorted([]service.Operation{
		{Nickname: "update", Position: 0},
		{Nickname: "create", Position: 1},
	}, ctx.OperationOrdering())
	assert.Equal(t, "create", operations[0].Nickname)
}

func TestApply_Grouping(t *testing.T) {
	ctx, err := Fold(contexts.Swagger2, nil, []*Fragment{
		mustDecode(t, "grouping: first-segment\n"),
	})
	require.NoError(t, err)

	require.NotNil(t, ctx.ResourceGroupingStrategy())
	assert.Equal(t, []string{"pets"}, ctx.ResourceGroupingStrategy()(service.RequestHandler{Patterns: []string{"/pets/{id}"}}))
}

func TestFold_ZeroDocumentationType(t *testing.T) {
	_, err := Fold(contexts.DocumentationType{}, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, docerrors.ErrConfig)
}

func TestFold_SkipsNilFragments(t *testing.T) {
	ctx, err := Fold(contexts.Swagger12, nil, []*Fragment{nil, mustDecode(t, "groupName: x\n"), nil})
	require.NoError(t, err)
	assert.Equal(t, "x", ctx.GroupName())
}

func TestFold_ReportsFragmentIndex(t *testing.T) {
	_, err := Fold(contexts.Swagger2, nil, []*Fragment{
		mustDecode(t, "groupName: ok\n"),
		{IgnorableTypes: []string{"nope"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fragment 1")
	assert.ErrorIs(t, err, docerrors.ErrUnknownType)
}

func TestFold_ResolverTakesPrecedenceOverOption(t *testing.T) {
	resolver := typerules.NewResolver()
	other := typerules.NewResolver()
	opts := []contexts.BuilderOption{contexts.WithTypeResolver(other)}

	b := newFoldBuilder(contexts.Swagger2, resolver, opts)

	var seen *typerules.Resolver
	b.RuleBuilders([]typerules.Factory{func(r *typerules.Resolver) typerules.Rule {
		seen = r
		return typerules.RuleOf[time.Time, string](0)
	}})
	assert.Same(t, resolver, seen)
	assert.Len(t, opts, 1)
}

func TestFold_CustomTypeWithCallerResolverOption(t *testing.T) {
	type Money struct{ Cents int64 }

	resolver := typerules.NewResolver()
	require.NoError(t, typerules.Register[Money](resolver, "models.Money"))

	ctx, err := Fold(contexts.Swagger2, resolver, []*Fragment{
		mustDecode(t, "rules:\n  - original: models.Money\n    alternate: string\n"),
	}, contexts.WithTypeResolver(typerules.NewResolver()))
	require.NoError(t, err)

	assert.Equal(t, reflect.TypeFor[string](), ctx.AlternateFor(reflect.TypeFor[Money]()))
}
