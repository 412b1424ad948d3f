// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes docctx context resolution as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/docctx"
)

const serverInstructions = `docctx MCP server: resolves documentation context fragments into a single snapshot.

Fragments are YAML or JSON documents. They are applied in order: later fragments override scalar settings, response messages are replaced per HTTP method, and media types, protocols, ignorable types and rules accumulate. Use list_types to see the type names accepted in ignorableTypes and rules.

Configuration: defaults are configurable via DOCCTX_MCP_* environment variables set in your MCP client config.

Key settings:
- DOCCTX_MCP_DEFAULT_TYPE (default: swagger:2.0): documentation type when a request names none
- DOCCTX_MCP_MAX_FRAGMENTS (default: 32): maximum fragments per resolve_context call
- DOCCTX_MCP_MAX_INLINE_SIZE (default: 1048576): maximum size in bytes of one fragment
- DOCCTX_MCP_LIST_LIMIT (default: 100): default result limit for list_types`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "docctx", Version: docctx.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve_context",
		Description: "Resolve documentation context fragments into one snapshot. Pass fragments in the order they should apply; each is a YAML or JSON document with optional keys such as groupName, apiInfo, pathProvider, authorization, authorizationTypes, responseMessages, defaultResponseMessages, applyDefaultResponseMessages, ignorableTypes, rules, produces, consumes, protocols, genericsNaming, orderings, selector and grouping. Returns the resolved summary. The default documentation type is configurable via DOCCTX_MCP_DEFAULT_TYPE.",
	}, handleResolveContext)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "merge_credentials",
		Description: "Merge credential settings layers over the defaults (empty scope separator becomes \",\"). Later non-empty fields override earlier ones; empty fields never override. Set env_prefix to apply <prefix>CLIENT_ID, <prefix>CLIENT_SECRET, <prefix>REALM, <prefix>APP_NAME, <prefix>API_KEY and <prefix>SCOPE_SEPARATOR last. Secrets are masked unless reveal_secrets is true.",
	}, handleMergeCredentials)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_types",
		Description: "List the type names accepted in fragment ignorableTypes and rules. Filter with a glob pattern such as time.* and paginate with offset/limit. Default limit is configurable via DOCCTX_MCP_LIST_LIMIT.",
	}, handleListTypes)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ListLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ListLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// validateGlobPattern checks whether a glob pattern is syntactically valid.
// Call this once before a filter loop so matchGlobName never encounters an
// invalid pattern at match time.
func validateGlobPattern(pattern string) error {
	if pattern == "" || !strings.ContainsAny(pattern, "*?[") {
		return nil
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	return nil
}

// matchGlobName reports whether name matches pattern. Patterns without
// glob characters match case-insensitively as substrings.
func matchGlobName(name, pattern string) bool {
	if pattern == "" {
		return true
	}
	if !strings.ContainsAny(pattern, "*?[") {
		return strings.Contains(strings.ToLower(name), strings.ToLower(pattern))
	}
	matched, _ := filepath.Match(pattern, name)
	return matched
}
