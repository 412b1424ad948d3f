package contexts

import "github.com/erraggy/docctx/typerules"

// BuilderOption configures a ContextBuilder at construction.
type BuilderOption func(*builderConfig)

type builderConfig struct {
	logger       Logger
	typeResolver *typerules.Resolver
}

// defaultBuilderConfig returns a config with a NopLogger and a fresh
// resolver seeded with builtin types.
func defaultBuilderConfig() *builderConfig {
	return &builderConfig{
		logger:       NopLogger{},
		typeResolver: typerules.NewResolver(),
	}
}

// WithLogger sets the logger used by the builder. A nil logger is ignored.
func WithLogger(logger Logger) BuilderOption {
	return func(cfg *builderConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithTypeResolver sets the initial resolver rule factories are evaluated
// against. It can be replaced later with ContextBuilder.TypeResolver. A nil
// resolver is ignored.
func WithTypeResolver(r *typerules.Resolver) BuilderOption {
	return func(cfg *builderConfig) {
		if r != nil {
			cfg.typeResolver = r
		}
	}
}
