package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/docctx/security"
)

const maskedSecret = "********"

type credentialLayer struct {
	ClientID       string `json:"client_id,omitempty"`
	ClientSecret   string `json:"client_secret,omitempty"`
	Realm          string `json:"realm,omitempty"`
	AppName        string `json:"app_name,omitempty"`
	APIKey         string `json:"api_key,omitempty"`
	ScopeSeparator string `json:"scope_separator,omitempty"`
}

func (l credentialLayer) settings() security.CredentialSettings {
	return security.New(l.ClientID, l.ClientSecret, l.Realm, l.AppName, l.APIKey, l.ScopeSeparator)
}

type mergeCredentialsInput struct {
	Layers        []credentialLayer `json:"layers,omitempty"         jsonschema:"Credential layers applied in order over the defaults"`
	EnvPrefix     string            `json:"env_prefix,omitempty"     jsonschema:"Environment variable prefix, e.g. DOCCTX_; variables are applied after all layers"`
	RevealSecrets bool              `json:"reveal_secrets,omitempty" jsonschema:"Return client_secret and api_key unmasked"`
}

type mergeCredentialsOutput struct {
	ClientID       string `json:"client_id,omitempty"`
	ClientSecret   string `json:"client_secret,omitempty"`
	Realm          string `json:"realm,omitempty"`
	AppName        string `json:"app_name,omitempty"`
	APIKey         string `json:"api_key,omitempty"`
	ScopeSeparator string `json:"scope_separator,omitempty"`
	LayerCount     int    `json:"layer_count"`
	FromEnv        bool   `json:"from_env,omitempty"`
}

func handleMergeCredentials(_ context.Context, _ *mcp.CallToolRequest, input mergeCredentialsInput) (*mcp.CallToolResult, mergeCredentialsOutput, error) {
	layers := make([]security.CredentialSettings, 0, len(input.Layers)+2)
	layers = append(layers, security.Default())
	for _, l := range input.Layers {
		layers = append(layers, l.settings())
	}
	if input.EnvPrefix != "" {
		fromEnv, err := security.FromEnv(input.EnvPrefix)
		if err != nil {
			return errResult(err), mergeCredentialsOutput{}, nil
		}
		layers = append(layers, fromEnv)
	}

	merged, err := security.Merge(layers...)
	if err != nil {
		return errResult(err), mergeCredentialsOutput{}, nil
	}

	out := mergeCredentialsOutput{
		ClientID:       merged.ClientID(),
		ClientSecret:   merged.ClientSecret(),
		Realm:          merged.Realm(),
		AppName:        merged.AppName(),
		APIKey:         merged.APIKey(),
		ScopeSeparator: merged.ScopeSeparator(),
		LayerCount:     len(input.Layers),
		FromEnv:        input.EnvPrefix != "",
	}
	if !input.RevealSecrets {
		out.ClientSecret = mask(out.ClientSecret)
		out.APIKey = mask(out.APIKey)
	}
	return nil, out, nil
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	return maskedSecret
}
