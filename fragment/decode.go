package fragment

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/docctx/docerrors"
	"github.com/erraggy/docctx/internal/maputil"
	"github.com/erraggy/docctx/internal/options"
	"github.com/erraggy/docctx/service"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := yamlName(f)
		if name == "-" {
			return ""
		}
		return name
	})
	// The tag is static and the function non-nil, so registration cannot fail.
	_ = v.RegisterValidation("httpmethod", func(fl validator.FieldLevel) bool {
		_, ok := service.ParseHTTPMethod(fl.Field().String())
		return ok
	})
	return v
}

// Decode reads a fragment from YAML or JSON. source names the input in
// errors and may be empty. Unknown keys and mistyped values are rejected
// with their position; syntax errors carry no line. An empty document
// yields an empty fragment.
//
// Decoding failures are reported as *docerrors.ParseError and validation
// failures as *docerrors.ConfigError.
func Decode(source string, data []byte) (*Fragment, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &docerrors.ParseError{
			Source:  source,
			Message: "invalid YAML or JSON",
			Cause:   err,
		}
	}

	f := &Fragment{}
	doc := documentContent(&root)
	if doc == nil {
		return f, nil
	}
	if doc.Kind != yaml.MappingNode {
		return nil, &docerrors.ParseError{
			Source:  source,
			Line:    doc.Line,
			Column:  doc.Column,
			Message: "fragment must be a mapping",
		}
	}
	if err := checkKeys(doc, reflect.TypeFor[Fragment](), "", source); err != nil {
		return nil, err
	}
	if err := doc.Decode(f); err != nil {
		perr := &docerrors.ParseError{
			Source:  source,
			Message: "invalid fragment",
			Cause:   err,
		}
		var loadErr *yaml.LoadError
		if errors.As(err, &loadErr) {
			perr.Line, perr.Column = loadErr.Line, loadErr.Column
		}
		return nil, perr
	}
	if err := Validate(f); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate checks f against its field constraints: HTTP method keys given
// at most once ignoring case, status codes within 100-599, known protocols,
// strategies and orderings, and path patterns that set at most one of regex
// and ant.
func Validate(f *Fragment) error {
	if f == nil {
		return nil
	}
	if err := validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fieldError(verrs[0])
		}
		return &docerrors.ConfigError{Message: "invalid fragment", Cause: err}
	}
	if err := checkMethodKeys("responseMessages", f.ResponseMessages); err != nil {
		return err
	}
	if err := checkMethodKeys("defaultResponseMessages", f.DefaultResponseMessages); err != nil {
		return err
	}
	if f.Authorization != nil && f.Authorization.Paths != nil {
		if err := validatePattern("authorization.paths", f.Authorization.Paths); err != nil {
			return err
		}
	}
	if f.Selector != nil && f.Selector.Paths != nil {
		if err := validatePattern("selector.paths", f.Selector.Paths); err != nil {
			return err
		}
	}
	return nil
}

// checkMethodKeys reports keys of m that name the same HTTP method in
// different spellings, such as "GET" and "get".
func checkMethodKeys(option string, m map[string][]ResponseMessage) error {
	seen := make(map[service.HTTPMethod]string, len(m))
	for _, key := range maputil.SortedKeys(m) {
		method, ok := service.ParseHTTPMethod(key)
		if !ok {
			return &docerrors.ConfigError{Option: option, Value: key, Message: "unknown HTTP method"}
		}
		if prev, dup := seen[method]; dup {
			return &docerrors.ConfigError{
				Option:  option,
				Value:   key,
				Message: fmt.Sprintf("duplicate HTTP method %s (also given as %q)", method, prev),
			}
		}
		seen[method] = key
	}
	return nil
}

func validatePattern(option string, p *PathPattern) error {
	return options.ValidateSingleSource(option, true, p.Regex != "", p.Ant != "")
}

func fieldError(fe validator.FieldError) error {
	msg := "failed " + fe.Tag() + " check"
	if fe.Param() != "" {
		msg += " (" + fe.Param() + ")"
	}
	return &docerrors.ConfigError{
		Option:  strings.TrimPrefix(fe.Namespace(), "Fragment."),
		Value:   fe.Value(),
		Message: msg,
	}
}

func documentContent(root *yaml.Node) *yaml.Node {
	node := root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil
		}
		node = node.Content[0]
	}
	if node.Kind == 0 || (node.Kind == yaml.ScalarNode && node.Tag == "!!null") {
		return nil
	}
	return node
}

// checkKeys walks node alongside t and reports the first mapping key that
// does not name a field.
func checkKeys(node *yaml.Node, t reflect.Type, path, source string) error {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct:
		if node.Kind != yaml.MappingNode {
			return nil
		}
		fields := yamlFields(t)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, val := node.Content[i], node.Content[i+1]
			field, ok := fields[key.Value]
			if !ok {
				return &docerrors.ParseError{
					Source:  source,
					Line:    key.Line,
					Column:  key.Column,
					Message: "unknown field " + strconv.Quote(joinPath(path, key.Value)),
				}
			}
			if err := checkKeys(val, field.Type, joinPath(path, key.Value), source); err != nil {
				return err
			}
		}

	case reflect.Slice:
		if node.Kind != yaml.SequenceNode {
			return nil
		}
		for i, item := range node.Content {
			if err := checkKeys(item, t.Elem(), path+"["+strconv.Itoa(i)+"]", source); err != nil {
				return err
			}
		}

	case reflect.Map:
		if node.Kind != yaml.MappingNode {
			return nil
		}
		for i := 0; i+1 < len(node.Content); i += 2 {
			if err := checkKeys(node.Content[i+1], t.Elem(), path+"["+node.Content[i].Value+"]", source); err != nil {
				return err
			}
		}
	}
	return nil
}

func yamlFields(t reflect.Type) map[string]reflect.StructField {
	fields := make(map[string]reflect.StructField, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := yamlName(f)
		if name == "-" {
			continue
		}
		fields[name] = f
	}
	return fields
}

func yamlName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
	if name == "" {
		return strings.ToLower(f.Name)
	}
	return name
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
