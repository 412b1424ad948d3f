package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/docctx"
	"github.com/erraggy/docctx/cmd/docctx/commands"
	"github.com/erraggy/docctx/internal/mcpserver"
)

// commandNames lists the commands suggestCommand can propose.
var commandNames = []string{"resolve", "credentials", "types", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("docctx v%s\n", docctx.Version())
		fmt.Printf("commit: %s\n", docctx.Commit())
		fmt.Printf("built: %s\n", docctx.BuildTime())
		fmt.Printf("go: %s\n", docctx.GoVersion())
	case "help", "-h", "--help":
		printUsage()
	case "resolve":
		err = commands.HandleResolve(args)
	case "credentials":
		err = commands.HandleCredentials(args)
	case "types":
		err = commands.HandleTypes(args)
	case "mcp":
		err = runMCP()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runMCP serves the MCP tools over stdio until the client disconnects or
// the process is interrupted.
func runMCP() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}

// suggestCommand returns the known command closest to input, or "" when
// none is within an edit distance of 2.
func suggestCommand(input string) string {
	best := ""
	bestDistance := 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDistance {
			best, bestDistance = name, d
		}
	}
	return best
}

// editDistance is the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`docctx - Documentation Context Resolver

Usage:
  docctx <command> [options]

Commands:
  resolve      Apply configuration fragments and print the documentation context
  credentials  Merge security credential settings from a file and the environment
  types        List the type names fragments can refer to
  mcp          Serve the MCP tools over stdio
  version      Show version information
  help         Show this help message

Examples:
  docctx resolve base.yaml team.yaml
  docctx resolve -format json -type openApi:3.0 base.yaml
  docctx credentials -prefix APP_ creds.yaml
  docctx types 'time.*'

Run 'docctx <command> --help' for more information on a command.`)
}
