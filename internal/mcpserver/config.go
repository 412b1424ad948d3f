package mcpserver

import (
	"errors"
	"log/slog"
	"reflect"

	"github.com/caarlos0/env/v11"

	"github.com/erraggy/docctx/contexts"
)

const envPrefix = "DOCCTX_MCP_"

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from DOCCTX_MCP_* environment variables via loadConfig().
type serverConfig struct {
	// DefaultType is the documentation type used when a request names none.
	DefaultType string `env:"DEFAULT_TYPE" envDefault:"swagger:2.0"`

	// Request limits.
	MaxFragments  int   `env:"MAX_FRAGMENTS" envDefault:"32"`
	MaxInlineSize int64 `env:"MAX_INLINE_SIZE" envDefault:"1048576"`

	// list_types defaults.
	ListLimit int `env:"LIST_LIMIT" envDefault:"100"`
	MaxLimit  int `env:"MAX_LIMIT" envDefault:"1000"`
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// defaultConfig returns the envDefault values with no environment applied.
func defaultConfig() *serverConfig {
	c := &serverConfig{}
	if err := env.ParseWithOptions(c, env.Options{Prefix: envPrefix, Environment: map[string]string{}}); err != nil {
		panic("mcpserver: invalid envDefault tag: " + err.Error())
	}
	return c
}

// loadConfig reads configuration from DOCCTX_MCP_* environment variables.
// An invalid value logs a warning and falls back to its own default; the
// other variables are still applied.
func loadConfig() *serverConfig {
	def := defaultConfig()
	c := &serverConfig{}
	if err := env.ParseWithOptions(c, env.Options{Prefix: envPrefix}); err != nil {
		if !restoreFailedFields(c, def, err) {
			slog.Warn("invalid MCP server env config, using defaults", "error", err)
			return def
		}
	}

	if _, err := contexts.ParseDocumentationType(c.DefaultType); err != nil {
		slog.Warn("invalid default documentation type, using default", "value", c.DefaultType, "default", def.DefaultType) //nolint:gosec // G706: values are structured log fields, not format strings
		c.DefaultType = def.DefaultType
	}
	positive(&c.MaxFragments, def.MaxFragments, "MAX_FRAGMENTS")
	positive(&c.ListLimit, def.ListLimit, "LIST_LIMIT")
	positive(&c.MaxLimit, def.MaxLimit, "MAX_LIMIT")
	if c.MaxInlineSize <= 0 {
		slog.Warn("invalid int env var, using default", "key", envPrefix+"MAX_INLINE_SIZE", "value", c.MaxInlineSize, "default", def.MaxInlineSize) //nolint:gosec // G706: values are structured log fields, not format strings
		c.MaxInlineSize = def.MaxInlineSize
	}
	return c
}

// restoreFailedFields resets every field named by an env.ParseError in err
// to its default. It reports false when err holds any other kind of error.
func restoreFailedFields(c, def *serverConfig, err error) bool {
	var agg env.AggregateError
	if !errors.As(err, &agg) {
		return false
	}
	target := reflect.ValueOf(c).Elem()
	defaults := reflect.ValueOf(def).Elem()
	for _, e := range agg.Errors {
		var pe env.ParseError
		if !errors.As(e, &pe) {
			return false
		}
		field := target.FieldByName(pe.Name)
		if !field.IsValid() {
			return false
		}
		field.Set(defaults.FieldByName(pe.Name))
		slog.Warn("invalid env var, using default", "field", pe.Name, "error", pe.Err, "default", field.Interface()) //nolint:gosec // G706: values are structured log fields, not format strings
	}
	return true
}

func positive(v *int, fallback int, key string) {
	if *v > 0 {
		return
	}
	slog.Warn("invalid int env var, using default", "key", envPrefix+key, "value", *v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
	*v = fallback
}
