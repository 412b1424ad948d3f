package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/docctx/contexts"
	"github.com/erraggy/docctx/fragment"
	"github.com/erraggy/docctx/typerules"
)

type fragmentInput struct {
	Name    string `json:"name,omitempty" jsonschema:"Identifier used in error messages"`
	Content string `json:"content"        jsonschema:"Fragment document as YAML or JSON"`
}

type resolveContextInput struct {
	Fragments         []fragmentInput `json:"fragments"                    jsonschema:"Fragments to apply in order; later fragments override earlier ones"`
	DocumentationType string          `json:"documentation_type,omitempty" jsonschema:"Documentation type as name:version: swagger:1.2, swagger:2.0 or openApi:3.0"`
}

type resolveContextOutput struct {
	FragmentCount int                   `json:"fragment_count"`
	Context       contexts.Summary `json:"context"`
}

func handleResolveContext(_ context.Context, _ *mcp.CallToolRequest, input resolveContextInput) (*mcp.CallToolResult, resolveContextOutput, error) {
	if len(input.Fragments) == 0 {
		return errResult(fmt.Errorf("at least one fragment is required")), resolveContextOutput{}, nil
	}
	if len(input.Fragments) > cfg.MaxFragments {
		return errResult(fmt.Errorf("too many fragments: %d (max %d)", len(input.Fragments), cfg.MaxFragments)), resolveContextOutput{}, nil
	}

	typeName := input.DocumentationType
	if typeName == "" {
		typeName = cfg.DefaultType
	}
	kind, err := contexts.ParseDocumentationType(typeName)
	if err != nil {
		return errResult(err), resolveContextOutput{}, nil
	}

	fragments := make([]*fragment.Fragment, 0, len(input.Fragments))
	for i, in := range input.Fragments {
		if int64(len(in.Content)) > cfg.MaxInlineSize {
			return errResult(fmt.Errorf("fragment %d exceeds %d bytes", i, cfg.MaxInlineSize)), resolveContextOutput{}, nil
		}
		name := in.Name
		if name == "" {
			name = fmt.Sprintf("fragments[%d]", i)
		}
		f, err := fragment.Decode(name, []byte(in.Content))
		if err != nil {
			return errResult(err), resolveContextOutput{}, nil
		}
		fragments = append(fragments, f)
	}

	resolver := typerules.NewResolver()
	ctx, err := fragment.Fold(kind, resolver, fragments)
	if err != nil {
		return errResult(err), resolveContextOutput{}, nil
	}

	return nil, resolveContextOutput{
		FragmentCount: len(fragments),
		Context:       ctx.Summary(resolver),
	}, nil
}
