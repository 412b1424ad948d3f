// Package security carries the credential settings a documentation UI
// uses to perform its security handshake.
//
// CredentialSettings is opaque to docctx: no field is validated, decoded
// or otherwise interpreted. That is the job of whatever renders the
// security schemes.
package security

import (
	"encoding/json"
	"log/slog"
)

// DefaultScopeSeparator separates OAuth scopes in the default settings.
const DefaultScopeSeparator = ","

// CredentialSettings is an immutable bundle of security handshake
// parameters. The zero value has every field empty, including the scope
// separator; use Default for the "no credentials configured" settings.
type CredentialSettings struct {
	clientID       string
	clientSecret   string
	realm          string
	appName        string
	apiKey         string
	scopeSeparator string
}

var defaultSettings = CredentialSettings{scopeSeparator: DefaultScopeSeparator}

// Default returns the process-wide "no credentials configured" settings:
// every field empty except the scope separator, which is ",".
func Default() CredentialSettings {
	return defaultSettings
}

// New returns settings holding exactly the given values.
func New(clientID, clientSecret, realm, appName, apiKey, scopeSeparator string) CredentialSettings {
	return CredentialSettings{
		clientID:       clientID,
		clientSecret:   clientSecret,
		realm:          realm,
		appName:        appName,
		apiKey:         apiKey,
		scopeSeparator: scopeSeparator,
	}
}

// ClientID returns the OAuth client id.
func (s CredentialSettings) ClientID() string { return s.clientID }

// ClientSecret returns the OAuth client secret.
func (s CredentialSettings) ClientSecret() string { return s.clientSecret }

// Realm returns the OAuth realm.
func (s CredentialSettings) Realm() string { return s.realm }

// AppName returns the application name shown during the handshake.
func (s CredentialSettings) AppName() string { return s.appName }

// APIKey returns the API key.
func (s CredentialSettings) APIKey() string { return s.apiKey }

// ScopeSeparator returns the separator placed between scopes.
func (s CredentialSettings) ScopeSeparator() string { return s.scopeSeparator }

// LogValue implements slog.LogValuer. Secrets are reported only as present.
func (s CredentialSettings) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("clientId", s.clientID),
		slog.Bool("clientSecret", s.clientSecret != ""),
		slog.String("realm", s.realm),
		slog.String("appName", s.appName),
		slog.Bool("apiKey", s.apiKey != ""),
		slog.String("scopeSeparator", s.scopeSeparator),
	)
}

// document is the exported-field form used for JSON, YAML, environment
// loading and merging. Empty fields are omitted when serialized.
type document struct {
	ClientID       string `json:"clientId,omitempty" yaml:"clientId,omitempty" env:"CLIENT_ID"`
	ClientSecret   string `json:"clientSecret,omitempty" yaml:"clientSecret,omitempty" env:"CLIENT_SECRET"`
	Realm          string `json:"realm,omitempty" yaml:"realm,omitempty" env:"REALM"`
	AppName        string `json:"appName,omitempty" yaml:"appName,omitempty" env:"APP_NAME"`
	APIKey         string `json:"apiKey,omitempty" yaml:"apiKey,omitempty" env:"API_KEY"`
	ScopeSeparator string `json:"scopeSeparator,omitempty" yaml:"scopeSeparator,omitempty" env:"SCOPE_SEPARATOR"`
}

func (s CredentialSettings) document() document {
	return document{
		ClientID:       s.clientID,
		ClientSecret:   s.clientSecret,
		Realm:          s.realm,
		AppName:        s.appName,
		APIKey:         s.apiKey,
		ScopeSeparator: s.scopeSeparator,
	}
}

func (d document) settings() CredentialSettings {
	return New(d.ClientID, d.ClientSecret, d.Realm, d.AppName, d.APIKey, d.ScopeSeparator)
}

// MarshalJSON implements json.Marshaler. Empty fields are omitted.
func (s CredentialSettings) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.document())
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *CredentialSettings) UnmarshalJSON(data []byte) error {
	var d document
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	*s = d.settings()
	return nil
}

// MarshalYAML implements yaml.Marshaler. Empty fields are omitted.
func (s CredentialSettings) MarshalYAML() (any, error) {
	return s.document(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *CredentialSettings) UnmarshalYAML(unmarshal func(any) error) error {
	var d document
	if err := unmarshal(&d); err != nil {
		return err
	}
	*s = d.settings()
	return nil
}
