package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/docctx/internal/cliutil"
	"github.com/erraggy/docctx/security"
)

// MaskedSecret replaces secret values in output unless -reveal is given.
const MaskedSecret = "********"

// CredentialsFlags contains flags for the credentials command
type CredentialsFlags struct {
	Prefix string
	NoEnv  bool
	Format string
	Reveal bool
}

// SetupCredentialsFlags creates and configures a FlagSet for the credentials command.
// Returns the FlagSet and a CredentialsFlags struct with bound flag variables.
func SetupCredentialsFlags() (*flag.FlagSet, *CredentialsFlags) {
	fs := flag.NewFlagSet("credentials", flag.ContinueOnError)
	flags := &CredentialsFlags{}

	fs.StringVar(&flags.Prefix, "prefix", "DOCCTX_", "environment variable prefix")
	fs.BoolVar(&flags.NoEnv, "no-env", false, "ignore environment variables")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.BoolVar(&flags.Reveal, "reveal", false, "print client secret and API key unmasked")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: docctx credentials [flags] [file|-]\n\n")
		cliutil.Writef(output, "Merge security credential settings from the defaults, an optional file and the environment.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  docctx credentials\n")
		cliutil.Writef(output, "  docctx credentials -format json creds.yaml\n")
		cliutil.Writef(output, "  DOCCTX_CLIENT_ID=web docctx credentials -reveal\n")
		cliutil.Writef(output, "\nEnvironment:\n")
		cliutil.Writef(output, "  <prefix>CLIENT_ID, <prefix>CLIENT_SECRET, <prefix>REALM,\n")
		cliutil.Writef(output, "  <prefix>APP_NAME, <prefix>API_KEY, <prefix>SCOPE_SEPARATOR\n")
		cliutil.Writef(output, "\nLater sources replace non-empty fields of earlier ones.\n")
	}

	return fs, flags
}

// HandleCredentials executes the credentials command
func HandleCredentials(args []string) error {
	fs, flags := SetupCredentialsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() > 1 {
		fs.Usage()
		return fmt.Errorf("credentials command accepts at most one file path or '-' for stdin")
	}

	return runCredentials(flags, fs.Arg(0), os.Stdin, os.Stdout)
}

func runCredentials(flags *CredentialsFlags, path string, stdin io.Reader, stdout io.Writer) error {
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	layers := []security.CredentialSettings{security.Default()}

	if path != "" {
		data, err := ReadInput(path, stdin)
		if err != nil {
			return err
		}
		var fromFile security.CredentialSettings
		if err := yaml.Unmarshal(data, &fromFile); err != nil {
			return fmt.Errorf("decoding %s: %w", FormatInputPath(path), err)
		}
		layers = append(layers, fromFile)
	}

	if !flags.NoEnv {
		fromEnv, err := security.FromEnv(flags.Prefix)
		if err != nil {
			return err
		}
		layers = append(layers, fromEnv)
	}

	merged, err := security.Merge(layers...)
	if err != nil {
		return err
	}
	if !flags.Reveal {
		merged = maskSecrets(merged)
	}

	if flags.Format != FormatText {
		return OutputStructured(stdout, merged, flags.Format)
	}

	cliutil.Writef(stdout, "Credential Settings\n")
	cliutil.Writef(stdout, "===================\n\n")
	cliutil.WriteField(stdout, "Client ID", merged.ClientID())
	cliutil.WriteField(stdout, "Client secret", merged.ClientSecret())
	cliutil.WriteField(stdout, "Realm", merged.Realm())
	cliutil.WriteField(stdout, "App name", merged.AppName())
	cliutil.WriteField(stdout, "API key", merged.APIKey())
	cliutil.WriteField(stdout, "Scope separator", merged.ScopeSeparator())
	return nil
}

func maskSecrets(s security.CredentialSettings) security.CredentialSettings {
	return security.New(s.ClientID(), mask(s.ClientSecret()), s.Realm(), s.AppName(), mask(s.APIKey()), s.ScopeSeparator())
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	return MaskedSecret
}
