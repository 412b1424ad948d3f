package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/erraggy/docctx/internal/cliutil"
	"github.com/erraggy/docctx/typerules"
)

// TypesFlags contains flags for the types command
type TypesFlags struct {
	Format string
}

// typeList is the structured output of the types command.
type typeList struct {
	Types []string `json:"types" yaml:"types"`
}

// SetupTypesFlags creates and configures a FlagSet for the types command.
// Returns the FlagSet and a TypesFlags struct with bound flag variables.
func SetupTypesFlags() (*flag.FlagSet, *TypesFlags) {
	fs := flag.NewFlagSet("types", flag.ContinueOnError)
	flags := &TypesFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: docctx types [flags] [pattern]\n\n")
		cliutil.Writef(output, "List the type names fragments can use in ignorableTypes and rules.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  docctx types\n")
		cliutil.Writef(output, "  docctx types 'time.*'\n")
		cliutil.Writef(output, "  docctx types -format json 'uint*'\n")
	}

	return fs, flags
}

// HandleTypes executes the types command
func HandleTypes(args []string) error {
	fs, flags := SetupTypesFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() > 1 {
		fs.Usage()
		return fmt.Errorf("types command accepts at most one pattern")
	}

	return runTypes(flags, fs.Arg(0), os.Stdout)
}

func runTypes(flags *TypesFlags, pattern string, stdout io.Writer) error {
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	names := typerules.NewResolver().Names()
	if pattern != "" {
		matched := make([]string, 0, len(names))
		for _, name := range names {
			ok, err := filepath.Match(pattern, name)
			if err != nil {
				return fmt.Errorf("invalid pattern %q: %w", pattern, err)
			}
			if ok {
				matched = append(matched, name)
			}
		}
		names = matched
	}

	if flags.Format != FormatText {
		return OutputStructured(stdout, typeList{Types: names}, flags.Format)
	}
	for _, name := range names {
		cliutil.Writef(stdout, "%s\n", name)
	}
	return nil
}
