package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/docctx/internal/testutil"
)

const credentialsYAML = `clientId: web
clientSecret: s3cret
realm: petstore
`

func TestSetupCredentialsFlags(t *testing.T) {
	fs, flags := SetupCredentialsFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Equal(t, "DOCCTX_", flags.Prefix)
		assert.False(t, flags.NoEnv)
		assert.Equal(t, FormatText, flags.Format)
		assert.False(t, flags.Reveal)
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"-prefix", "APP_", "-no-env", "-format", "yaml", "-reveal", "creds.yaml"}
		require.NoError(t, fs.Parse(args))

		assert.Equal(t, "APP_", flags.Prefix)
		assert.True(t, flags.NoEnv)
		assert.Equal(t, FormatYAML, flags.Format)
		assert.True(t, flags.Reveal)
		assert.Equal(t, "creds.yaml", fs.Arg(0))
	})
}

func TestHandleCredentials_Help(t *testing.T) {
	err := HandleCredentials([]string{"--help"})
	assert.NoError(t, err)
}

func TestHandleCredentials_TooManyArgs(t *testing.T) {
	err := HandleCredentials([]string{"a.yaml", "b.yaml"})
	assert.Error(t, err)
}

func TestRunCredentials_Defaults(t *testing.T) {
	var stdout bytes.Buffer
	err := runCredentials(&CredentialsFlags{NoEnv: true, Format: FormatJSON}, "", nil, &stdout)
	require.NoError(t, err)
	assert.JSONEq(t, `{"scopeSeparator":","}`, stdout.String())
}

func TestRunCredentials_FileMasked(t *testing.T) {
	path := testutil.WriteTempFile(t, "creds.yaml", credentialsYAML)

	var stdout bytes.Buffer
	err := runCredentials(&CredentialsFlags{NoEnv: true, Format: FormatJSON}, path, nil, &stdout)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"clientId": "web",
		"clientSecret": "********",
		"realm": "petstore",
		"scopeSeparator": ","
	}`, stdout.String())
}

func TestRunCredentials_Reveal(t *testing.T) {
	var stdout bytes.Buffer
	flags := &CredentialsFlags{NoEnv: true, Format: FormatYAML, Reveal: true}
	err := runCredentials(flags, StdinFilePath, strings.NewReader(credentialsYAML), &stdout)
	require.NoError(t, err)
	assert.YAMLEq(t, credentialsYAML+"scopeSeparator: \",\"\n", stdout.String())
}

func TestRunCredentials_EnvOverridesFile(t *testing.T) {
	t.Setenv("DOCCTX_CLI_TEST_REALM", "from-env")
	t.Setenv("DOCCTX_CLI_TEST_API_KEY", "k3y")
	path := testutil.WriteTempFile(t, "creds.yaml", credentialsYAML)

	var stdout bytes.Buffer
	flags := &CredentialsFlags{Prefix: "DOCCTX_CLI_TEST_", Format: FormatText}
	require.NoError(t, runCredentials(flags, path, nil, &stdout))

	out := stdout.String()
	assert.Contains(t, out, "Credential Settings")
	assert.Regexp(t, `Realm:\s+from-env`, out)
	assert.Regexp(t, `Client ID:\s+web`, out)
	assert.Regexp(t, `API key:\s+\*{8}`, out)
	assert.Regexp(t, `App name:\s+-`, out)
	assert.NotContains(t, out, "k3y")
	assert.NotContains(t, out, "s3cret")
}

func TestRunCredentials_NoEnvIgnoresEnvironment(t *testing.T) {
	t.Setenv("DOCCTX_CLI_TEST_REALM", "from-env")

	var stdout bytes.Buffer
	flags := &CredentialsFlags{Prefix: "DOCCTX_CLI_TEST_", NoEnv: true, Format: FormatJSON}
	require.NoError(t, runCredentials(flags, "", nil, &stdout))
	assert.NotContains(t, stdout.String(), "from-env")
}

func TestRunCredentials_Errors(t *testing.T) {
	t.Run("invalid format", func(t *testing.T) {
		err := runCredentials(&CredentialsFlags{NoEnv: true, Format: "xml"}, "", nil, &bytes.Buffer{})
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		err := runCredentials(&CredentialsFlags{NoEnv: true, Format: FormatText}, "/nonexistent/creds.yaml", nil, &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "/nonexistent/creds.yaml")
	})

	t.Run("malformed file", func(t *testing.T) {
		path := testutil.WriteTempFile(t, "creds.yaml", "clientId: [unclosed\n")
		err := runCredentials(&CredentialsFlags{NoEnv: true, Format: FormatText}, path, nil, &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decoding")
	})
}
