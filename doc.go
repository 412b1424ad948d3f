// Package docctx assembles the configuration consumed by an API
// documentation generator.
//
// Configuration arrives in pieces: one component knows the API title,
// another the security schemes, a third the response messages every GET
// should document. docctx merges those pieces under explicit rules into a
// single immutable snapshot.
//
// # Overview
//
// The module consists of these packages:
//
//   - contexts: ContextBuilder and the immutable Context it builds
//   - fragment: YAML/JSON partial configuration folded into a Context
//   - security: CredentialSettings, with layered merge and environment loading
//   - service: value types carried by a Context (APIInfo, ResponseMessage, ...)
//   - selector: path, handler and API selectors
//   - ordering: generic comparators for listings, descriptions and operations
//   - paths: relative and absolute path providers
//   - naming: naming strategies for generic model types
//   - typerules: named type registry and alternate type rules
//   - docerrors: sentinel and structured error types
//
// # Merge rules
//
// Every ContextBuilder setter follows one of four policies:
//
//   - Defaulting: the last non-empty value wins; nil and "" are ignored.
//   - Replacing: the last call wins, even with an empty value.
//   - Additive: sets and rule lists accumulate across calls.
//   - Per key: response messages replace the list for each HTTP method
//     mentioned and keep the others.
//
// # Quick Start
//
// Build a context directly:
//
//	ctx := contexts.NewContextBuilder(contexts.Swagger2).
//	    GroupName("public").
//	    PathProvider(paths.Relative("/api")).
//	    Produces("application/json").
//	    Build()
//
// Or fold fragments decoded from files:
//
//	base, err := fragment.Decode("base.yaml", data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ctx, err := fragment.Fold(contexts.Swagger2, nil, []*fragment.Fragment{base})
//
// # Command-Line Tool
//
// The docctx command resolves fragment files, merges credential settings,
// lists the type names fragments may use and serves all three over MCP:
//
//	docctx resolve -format yaml base.yaml team.yaml
//	docctx credentials -prefix DOCCTX_ credentials.yaml
//	docctx types 'time.*'
//	docctx mcp
package docctx
