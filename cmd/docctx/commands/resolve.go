package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/erraggy/docctx/contexts"
	"github.com/erraggy/docctx/fragment"
	"github.com/erraggy/docctx/internal/cliutil"
	"github.com/erraggy/docctx/internal/maputil"
	"github.com/erraggy/docctx/typerules"
)

// ResolveFlags contains flags for the resolve command
type ResolveFlags struct {
	Type    string
	Format  string
	Verbose bool
}

// SetupResolveFlags creates and configures a FlagSet for the resolve command.
// Returns the FlagSet and a ResolveFlags struct with bound flag variables.
func SetupResolveFlags() (*flag.FlagSet, *ResolveFlags) {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	flags := &ResolveFlags{}

	fs.StringVar(&flags.Type, "type", contexts.Swagger2.String(), "documentation type as name:version (swagger:1.2, swagger:2.0, openApi:3.0)")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Verbose, "v", false, "log builder activity to stderr")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log builder activity to stderr")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: docctx resolve [flags] <fragment>...\n\n")
		cliutil.Writef(output, "Apply configuration fragments in order and print the resulting documentation context.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  docctx resolve base.yaml\n")
		cliutil.Writef(output, "  docctx resolve -format json base.yaml team.yaml\n")
		cliutil.Writef(output, "  docctx resolve -type openApi:3.0 base.yaml\n")
		cliutil.Writef(output, "  cat override.json | docctx resolve base.yaml -\n")
		cliutil.Writef(output, "\nMerge Rules:\n")
		cliutil.Writef(output, "  - A setting given by a later fragment replaces the earlier value; absent settings are kept\n")
		cliutil.Writef(output, "  - Lists of types, rules and media types accumulate across fragments\n")
		cliutil.Writef(output, "  - responseMessages override defaultResponseMessages per HTTP method\n")
		cliutil.Writef(output, "\nExit Codes:\n")
		cliutil.Writef(output, "  0    Context resolved\n")
		cliutil.Writef(output, "  1    A fragment could not be read, decoded or applied\n")
	}

	return fs, flags
}

// HandleResolve executes the resolve command
func HandleResolve(args []string) error {
	fs, flags := SetupResolveFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("resolve command requires at least one fragment file or '-' for stdin")
	}

	return runResolve(flags, fs.Args(), os.Stdin, os.Stdout, os.Stderr)
}

func runResolve(flags *ResolveFlags, paths []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	if n := countStdin(paths); n > 1 {
		return fmt.Errorf("stdin ('-') can be given at most once, got %d", n)
	}

	kind, err := contexts.ParseDocumentationType(flags.Type)
	if err != nil {
		return err
	}

	logger := NewLogger(flags.Verbose, stderr)

	fragments := make([]*fragment.Fragment, 0, len(paths))
	for _, path := range paths {
		data, err := ReadInput(path, stdin)
		if err != nil {
			return err
		}
		f, err := fragment.Decode(FormatInputPath(path), data)
		if err != nil {
			return err
		}
		logger.Debug("decoded fragment", "source", FormatInputPath(path), "bytes", len(data))
		fragments = append(fragments, f)
	}

	resolver := typerules.NewResolver()
	ctx, err := fragment.Fold(kind, resolver, fragments, contexts.WithLogger(logger))
	if err != nil {
		return err
	}

	summary := ctx.Summary(resolver)
	if flags.Format != FormatText {
		return OutputStructured(stdout, summary, flags.Format)
	}
	writeSummary(stdout, summary)
	return nil
}

func countStdin(paths []string) int {
	n := 0
	for _, p := range paths {
		if p == StdinFilePath {
			n++
		}
	}
	return n
}

func writeSummary(w io.Writer, s contexts.Summary) {
	cliutil.Writef(w, "Documentation Context\n")
	cliutil.Writef(w, "=====================\n\n")

	cliutil.WriteField(w, "Documentation type", s.DocumentationType)
	cliutil.WriteField(w, "Group", s.GroupName)
	if s.APIInfo != nil {
		cliutil.WriteField(w, "Title", s.APIInfo.Title)
		cliutil.WriteField(w, "Version", s.APIInfo.Version)
	}
	if s.Paths != nil {
		cliutil.WriteField(w, "Application base path", s.Paths.ApplicationBasePath)
		cliutil.WriteField(w, "Documentation path", s.Paths.DocumentationPath)
	}
	cliutil.WriteField(w, "Handler mappings", cliutil.JoinOrDash(s.HandlerMappings))
	cliutil.WriteField(w, "Produces", cliutil.JoinOrDash(s.Produces))
	cliutil.WriteField(w, "Consumes", cliutil.JoinOrDash(s.Consumes))
	cliutil.WriteField(w, "Protocols", cliutil.JoinOrDash(s.Protocols))
	cliutil.WriteField(w, "Ignorable parameter types", cliutil.JoinOrDash(s.IgnorableParameterTypes))
	cliutil.WriteField(w, "Default response messages", strconv.FormatBool(s.ApplyDefaultResponseMessages))

	authTypes := make([]string, 0, len(s.AuthorizationTypes))
	for _, a := range s.AuthorizationTypes {
		authTypes = append(authTypes, a.Name+" ("+a.Type+")")
	}
	cliutil.WriteField(w, "Authorization types", cliutil.JoinOrDash(authTypes))

	refs := make([]string, 0, len(s.SecurityReferences))
	for _, r := range s.SecurityReferences {
		refs = append(refs, r.Reference)
	}
	cliutil.WriteField(w, "Security references", cliutil.JoinOrDash(refs))

	if len(s.Rules) > 0 {
		cliutil.Writef(w, "\nRules:\n")
		for _, r := range s.Rules {
			cliutil.Writef(w, "  %s -> %s (order %d)\n", r.Original, r.Alternate, r.Order)
		}
	}

	if len(s.ResponseMessages) > 0 {
		cliutil.Writef(w, "\nResponse messages:\n")
		for _, method := range maputil.SortedKeys(s.ResponseMessages) {
			for _, m := range s.ResponseMessages[method] {
				cliutil.Writef(w, "  %-7s %d %s\n", method, m.Code, m.Message)
			}
		}
	}
}
