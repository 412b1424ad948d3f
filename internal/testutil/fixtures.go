// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/docctx/service"
)

// BaseFragmentYAML is a fragment that sets most fields once.
const BaseFragmentYAML = `groupName: public
apiInfo:
  title: Pet Store
  version: 1.0.0
pathProvider:
  type: relative
  contextPath: /api
authorizationTypes:
  - name: api_key
    type: apiKey
    keyName: X-API-Key
    passAs: header
applyDefaultResponseMessages: true
defaultResponseMessages:
  GET:
    - code: 200
      message: OK
  POST:
    - code: 201
      message: Created
ignorableTypes:
  - time.Duration
rules:
  - original: int64
    alternate: string
produces:
  - application/json
protocols:
  - https
`

// OverrideFragmentYAML is a fragment meant to be applied after
// BaseFragmentYAML.
const OverrideFragmentYAML = `groupName: internal
responseMessages:
  GET:
    - code: 404
      message: Not Found
      responseModel: Error
produces:
  - application/xml
protocols:
  - http
rules:
  - original: float64
    alternate: string
    order: 1
`

// OverrideFragmentJSON is OverrideFragmentYAML written as JSON.
const OverrideFragmentJSON = `{
  "groupName": "internal",
  "responseMessages": {
    "GET": [{"code": 404, "message": "Not Found", "responseModel": "Error"}]
  },
  "produces": ["application/xml"],
  "protocols": ["http"],
  "rules": [{"original": "float64", "alternate": "string", "order": 1}]
}
`

// NewAPIInfo returns a populated API info header.
func NewAPIInfo() *service.APIInfo {
	return &service.APIInfo{
		Title:       "Pet Store",
		Description: "Sample API",
		Version:     "1.0.0",
		Contact: service.Contact{
			Name:  "API Team",
			Email: "api@example.com",
		},
		License: "MIT",
	}
}

// NewResponseMessages returns a map with one message per method.
func NewResponseMessages(code int, methods ...service.HTTPMethod) map[service.HTTPMethod][]service.ResponseMessage {
	out := make(map[service.HTTPMethod][]service.ResponseMessage, len(methods))
	for _, m := range methods {
		out[m] = []service.ResponseMessage{{Code: code, Message: m.String() + " response"}}
	}
	return out
}

// WriteTempFile writes content to name inside a temporary directory and
// returns the path.
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}

	return tmpFile
}

// WriteTempYAML marshals doc to YAML and writes it to a temporary file.
func WriteTempYAML(t *testing.T, doc any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}

	return WriteTempFile(t, "test.yaml", string(data))
}

// WriteTempJSON marshals doc to indented JSON and writes it to a temporary file.
func WriteTempJSON(t *testing.T, doc any) string {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal document to JSON: %v", err)
	}

	return WriteTempFile(t, "test.json", string(data))
}
