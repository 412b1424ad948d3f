// Package naming formats the names of generic model types in generated
// documentation, e.g. turning "Response[models.User]" into "ResponseOfUser".
package naming

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// GenericsNamingStrategy names generic types for documentation models.
type GenericsNamingStrategy interface {
	// GenericTypeName returns the documented name for a Go type name such
	// as "Page[models.User]". Non-generic names are returned sanitized.
	GenericTypeName(typeName string) string
}

// Func adapts a plain function to GenericsNamingStrategy.
type Func func(typeName string) string

// GenericTypeName implements GenericsNamingStrategy.
func (f Func) GenericTypeName(typeName string) string { return f(typeName) }

// Strategy defines how generic type parameters are rendered.
type Strategy int

const (
	// Underscore replaces brackets with underscores (default).
	// Example: Response[User] -> Response_User_
	Underscore Strategy = iota

	// Of uses "Of" between the base type and each parameter.
	// Example: Response[User] -> ResponseOfUser
	Of

	// For uses "For" between the base type and each parameter.
	// Example: Response[User] -> ResponseForUser
	For

	// AngleBrackets keeps the parameters in angle brackets.
	// Example: Response[User] -> Response<User>
	AngleBrackets

	// Flattened drops the brackets entirely.
	// Example: Response[User] -> ResponseUser
	Flattened
)

var strategyNames = map[string]Strategy{
	"underscore": Underscore,
	"of":         Of,
	"for":        For,
	"angle":      AngleBrackets,
	"flattened":  Flattened,
}

// ParseStrategy returns the strategy with the given name: underscore, of,
// for, angle or flattened.
func ParseStrategy(name string) (Strategy, error) {
	s, ok := strategyNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("naming: unknown generic naming strategy %q", name)
	}
	return s, nil
}

// String returns the strategy's name as accepted by ParseStrategy.
func (s Strategy) String() string {
	for name, v := range strategyNames {
		if v == s {
			return name
		}
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Casing is applied to each type parameter.
type Casing int

const (
	// CasingNone leaves parameters as written.
	CasingNone Casing = iota
	// CasingPascal converts parameters to PascalCase.
	CasingPascal
	// CasingTitle title-cases parameters using English rules.
	CasingTitle
)

// Config is the configurable GenericsNamingStrategy.
type Config struct {
	// Strategy is the primary generic naming approach.
	Strategy Strategy

	// Separator is used between base type and parameters.
	// Only applies to Underscore. Default: "_"
	Separator string

	// ParamSeparator is used between multiple type parameters.
	// Example with ParamSeparator="And": Map[string,int] -> MapOfstringAndOfint
	// Default: "_"
	ParamSeparator string

	// IncludePackage keeps the package qualifier of each parameter.
	// Example: Response[models.User] -> Response_models_User_ (true)
	IncludePackage bool

	// ParamCasing is applied to every parameter.
	ParamCasing Casing
}

// Default returns the default configuration: brackets replaced with underscores.
func Default() Config {
	return Config{
		Strategy:       Underscore,
		Separator:      "_",
		ParamSeparator: "_",
	}
}

// GenericTypeName implements GenericsNamingStrategy.
func (c Config) GenericTypeName(typeName string) string {
	params := extractGenericParams(typeName)
	if len(params) == 0 {
		return sanitizeName(typeName)
	}
	return extractBaseTypeName(typeName) + c.formatSuffix(c.sanitizeParams(params))
}

func (c Config) sanitizeParams(params []string) []string {
	result := make([]string, len(params))
	for i, param := range params {
		if !c.IncludePackage {
			param = stripQualifiers(param)
		} else {
			param = strings.ReplaceAll(param, ".", "_")
		}

		param = sanitizeName(param)

		switch c.ParamCasing {
		case CasingPascal:
			param = toPascalCase(param)
		case CasingTitle:
			param = cases.Title(language.English).String(param)
		}

		result[i] = param
	}
	return result
}

func (c Config) formatSuffix(params []string) string {
	switch c.Strategy {
	case Of:
		return "Of" + strings.Join(params, c.ParamSeparator+"Of")
	case For:
		return "For" + strings.Join(params, c.ParamSeparator+"For")
	case AngleBrackets:
		return "<" + strings.Join(params, ",") + ">"
	case Flattened:
		return strings.Join(params, "")
	default:
		sep := c.Separator
		if sep == "" {
			sep = "_"
		}
		paramSep := c.ParamSeparator
		if paramSep == "" {
			paramSep = "_"
		}
		return sep + strings.Join(params, paramSep) + sep
	}
}

// extractBaseTypeName extracts the base type name from a generic type.
// Example: "Response[User]" -> "Response"
func extractBaseTypeName(name string) string {
	if idx := strings.Index(name, "["); idx != -1 {
		return name[:idx]
	}
	return name
}

// extractGenericParams extracts top-level type parameters, tracking bracket depth.
// Example: "Map[string,int]" -> ["string", "int"]
// Example: "Response[List[User]]" -> ["List[User]"]
func extractGenericParams(name string) []string {
	start := strings.Index(name, "[")
	end := strings.LastIndex(name, "]")
	if start == -1 || end == -1 || end <= start {
		return nil
	}

	var params []string
	var current strings.Builder
	depth := 0

	for _, r := range name[start+1 : end] {
		switch r {
		case '[':
			depth++
			current.WriteRune(r)
		case ']':
			depth--
			current.WriteRune(r)
		case ',':
			if depth == 0 {
				params = append(params, strings.TrimSpace(current.String()))
				current.Reset()
			} else {
				current.WriteRune(r)
			}
		default:
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		params = append(params, strings.TrimSpace(current.String()))
	}

	return params
}

// stripQualifiers removes package qualifiers from every type name in s.
// Example: "List[github.com/org/models.User]" -> "List[User]"
func stripQualifiers(s string) string {
	var out, ident strings.Builder
	for _, r := range s {
		switch r {
		case '.':
			ident.Reset()
		case '[', ']', ',', ' ':
			out.WriteString(ident.String())
			ident.Reset()
			out.WriteRune(r)
		default:
			ident.WriteRune(r)
		}
	}
	out.WriteString(ident.String())
	return out.String()
}

// sanitizeName replaces characters that are problematic in URIs.
// Example: "List[User]" -> "List_User"
func sanitizeName(name string) string {
	name = strings.NewReplacer("[", "_", "]", "_", ",", "_", " ", "_").Replace(name)
	for strings.Contains(name, "__") {
		name = strings.ReplaceAll(name, "__", "_")
	}
	return strings.TrimSuffix(name, "_")
}

// toPascalCase capitalizes the letter after each separator and drops the separator.
// Example: "user_profile" -> "UserProfile"
func toPascalCase(s string) string {
	var result strings.Builder
	capitalizeNext := true

	for _, r := range s {
		if r == '_' || r == '-' || r == '.' || r == '/' {
			capitalizeNext = true
			continue
		}
		if capitalizeNext {
			result.WriteRune(unicode.ToUpper(r))
			capitalizeNext = false
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}
