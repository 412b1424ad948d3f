package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	base := Default()
	file := New("file-client", "file-secret", "", "petstore", "", "")
	env := New("env-client", "", "", "", "env-key", " ")

	got, err := Merge(base, file, env)
	require.NoError(t, err)

	assert.Equal(t, New("env-client", "file-secret", "", "petstore", "env-key", " "), got)
}

func TestMerge_EmptyNeverOverrides(t *testing.T) {
	got, err := Merge(New("a", "b", "c", "d", "e", ";"), CredentialSettings{})
	require.NoError(t, err)
	assert.Equal(t, New("a", "b", "c", "d", "e", ";"), got)
}

func TestMerge_NoLayers(t *testing.T) {
	got, err := Merge()
	require.NoError(t, err)
	assert.Equal(t, CredentialSettings{}, got)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("DOCCTX_TEST_CLIENT_ID", "env-client")
	t.Setenv("DOCCTX_TEST_API_KEY", "env-key")
	t.Setenv("DOCCTX_TEST_SCOPE_SEPARATOR", " ")

	got, err := FromEnv("DOCCTX_TEST_")
	require.NoError(t, err)

	assert.Equal(t, New("env-client", "", "", "", "env-key", " "), got)
}
