package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/docctx/typerules"
)

type listTypesInput struct {
	Pattern string `json:"pattern,omitempty" jsonschema:"Filter type names by glob (e.g. time.*) or case-insensitive substring"`
	Offset  int    `json:"offset,omitempty"  jsonschema:"Skip the first N results (for pagination)"`
	Limit   int    `json:"limit,omitempty"   jsonschema:"Maximum number of results to return"`
}

type listTypesOutput struct {
	Total    int      `json:"total"`
	Matched  int      `json:"matched"`
	Returned int      `json:"returned"`
	Types    []string `json:"types,omitempty"`
}

func handleListTypes(_ context.Context, _ *mcp.CallToolRequest, input listTypesInput) (*mcp.CallToolResult, listTypesOutput, error) {
	if err := validateGlobPattern(input.Pattern); err != nil {
		return errResult(err), listTypesOutput{}, nil
	}

	names := typerules.NewResolver().Names()
	var matched []string
	for _, name := range names {
		if matchGlobName(name, input.Pattern) {
			matched = append(matched, name)
		}
	}

	page := paginate(matched, input.Offset, input.Limit)
	return nil, listTypesOutput{
		Total:    len(names),
		Matched:  len(matched),
		Returned: len(page),
		Types:    page,
	}, nil
}
