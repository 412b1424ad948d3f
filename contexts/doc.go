// Package contexts assembles the configuration a documentation
// generator runs with.
//
// Contributors each hold a piece of the configuration: a path provider,
// authorization rules, response-message overrides, alternate type rules,
// orderings, content types. They feed those pieces, in any order, into a
// ContextBuilder, which merges them and produces an immutable Context.
//
// # Merge rules
//
// Every builder field follows one of four rules:
//
//   - Defaulting: APIInfo, GroupName, PathProvider, AuthorizationContext,
//     the three orderings and GenericsNaming keep their previous value when
//     given nil or "".
//   - Replacing: HandlerMappings, AuthorizationTypes,
//     ApplyDefaultResponseMessages, Selector, ResourceGroupingStrategy and
//     TypeResolver always overwrite.
//   - Additive sets: AdditionalIgnorableTypes, Produces, Consumes and
//     Protocols union their arguments into the accumulated set.
//   - Additive lists and maps: Rules and RuleBuilders append; response
//     messages merge per HTTP method, a repeated method replacing its list.
//
// # Building
//
// Build resolves response messages (defaults, when enabled, overlaid by
// overrides), falls back to an authorization context that selects every
// path, and copies every collection, so later builder mutation never
// reaches a Context already returned:
//
//	ctx := contexts.NewContextBuilder(contexts.Swagger2).
//		GroupName("pets").
//		Produces("application/json").
//		ApplyDefaultResponseMessages(true).
//		DefaultResponseMessages(defaults).
//		AdditionalResponseMessages(overrides).
//		Build()
//
// Concurrency: a ContextBuilder is not safe for concurrent use. A Context is
// immutable and may be shared freely.
package contexts
