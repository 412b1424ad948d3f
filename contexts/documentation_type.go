package contexts

import (
	"strings"

	"github.com/erraggy/docctx/docerrors"
)

// DocumentationType identifies the documentation format a context is
// assembled for.
type DocumentationType struct {
	Name      string
	Version   string
	MediaType string
}

// Known documentation types.
var (
	Swagger12 = DocumentationType{Name: "swagger", Version: "1.2", MediaType: "application/json"}
	Swagger2  = DocumentationType{Name: "swagger", Version: "2.0", MediaType: "application/json"}
	OpenAPI3  = DocumentationType{Name: "openApi", Version: "3.0", MediaType: "application/json"}
)

// KnownDocumentationTypes returns the predefined documentation types.
func KnownDocumentationTypes() []DocumentationType {
	return []DocumentationType{Swagger12, Swagger2, OpenAPI3}
}

// ParseDocumentationType returns the known type written as "name:version",
// for example "swagger:2.0". Matching ignores case.
func ParseDocumentationType(s string) (DocumentationType, error) {
	for _, dt := range KnownDocumentationTypes() {
		if strings.EqualFold(dt.String(), strings.TrimSpace(s)) {
			return dt, nil
		}
	}
	return DocumentationType{}, &docerrors.ConfigError{
		Option:  "documentationType",
		Value:   s,
		Message: "expected one of swagger:1.2, swagger:2.0, openApi:3.0",
	}
}

// IsZero reports whether dt is unset.
func (dt DocumentationType) IsZero() bool {
	return dt.Name == ""
}

// String returns "name:version".
func (dt DocumentationType) String() string {
	return dt.Name + ":" + dt.Version
}
