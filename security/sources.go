package security

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// Merge layers settings left to right. A later layer's non-empty field
// replaces the earlier value; empty fields never override.
//
//	creds, err := security.Merge(security.Default(), fromFile, fromEnv)
func Merge(layers ...CredentialSettings) (CredentialSettings, error) {
	var merged document
	for i, layer := range layers {
		if err := mergo.Merge(&merged, layer.document(), mergo.WithOverride); err != nil {
			return CredentialSettings{}, fmt.Errorf("security: merging layer %d: %w", i, err)
		}
	}
	return merged.settings(), nil
}

// FromEnv reads settings from environment variables named prefix followed
// by CLIENT_ID, CLIENT_SECRET, REALM, APP_NAME, API_KEY and SCOPE_SEPARATOR.
// Unset variables leave their field empty.
func FromEnv(prefix string) (CredentialSettings, error) {
	var d document
	if err := env.ParseWithOptions(&d, env.Options{Prefix: prefix}); err != nil {
		return CredentialSettings{}, fmt.Errorf("security: reading environment: %w", err)
	}
	return d.settings(), nil
}
