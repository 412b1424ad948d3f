package security

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func TestDefault(t *testing.T) {
	d := Default()

	assert.Equal(t, ",", d.ScopeSeparator())
	assert.Empty(t, d.ClientID())
	assert.Empty(t, d.ClientSecret())
	assert.Empty(t, d.Realm())
	assert.Empty(t, d.AppName())
	assert.Empty(t, d.APIKey())
	assert.Equal(t, d, Default(), "default is a single value")
}

func TestNew_Accessors(t *testing.T) {
	s := New("client", "secret", "realm", "app", "key", " ")

	assert.Equal(t, "client", s.ClientID())
	assert.Equal(t, "secret", s.ClientSecret())
	assert.Equal(t, "realm", s.Realm())
	assert.Equal(t, "app", s.AppName())
	assert.Equal(t, "key", s.APIKey())
	assert.Equal(t, " ", s.ScopeSeparator(), "separator is carried verbatim")
}

func TestNew_EmptySeparatorIsNotDefaulted(t *testing.T) {
	s := New("client", "", "", "", "", "")
	assert.Empty(t, s.ScopeSeparator())
}

func TestMarshalJSON_OmitsEmptyFields(t *testing.T) {
	data, err := json.Marshal(Default())
	require.NoError(t, err)
	assert.JSONEq(t, `{"scopeSeparator":","}`, string(data))

	data, err = json.Marshal(New("client", "", "realm", "", "key", ";"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"clientId":"client","realm":"realm","apiKey":"key","scopeSeparator":";"}`, string(data))
}

func TestUnmarshalJSON(t *testing.T) {
	var s CredentialSettings
	require.NoError(t, json.Unmarshal([]byte(`{"clientId":"c","clientSecret":"s","appName":"a"}`), &s))

	assert.Equal(t, New("c", "s", "", "a", "", ""), s)
	assert.Error(t, json.Unmarshal([]byte(`{"clientId":1}`), &s))
}

func TestYAML(t *testing.T) {
	data, err := yaml.Marshal(New("client", "", "", "petstore", "", ","))
	require.NoError(t, err)
	assert.Contains(t, string(data), "clientId: client")
	assert.Contains(t, string(data), "appName: petstore")
	assert.NotContains(t, string(data), "realm")
	assert.NotContains(t, string(data), "clientSecret")

	var s CredentialSettings
	require.NoError(t, yaml.Unmarshal(data, &s))
	assert.Equal(t, New("client", "", "", "petstore", "", ","), s)
}

func TestLogValue_HidesSecrets(t *testing.T) {
	v := New("client", "secret", "", "", "key", ",").LogValue()

	attrs := map[string]string{}
	for _, a := range v.Group() {
		attrs[a.Key] = a.Value.String()
	}
	assert.Equal(t, "client", attrs["clientId"])
	assert.Equal(t, "true", attrs["clientSecret"])
	assert.Equal(t, "true", attrs["apiKey"])
	for _, v := range attrs {
		assert.NotEqual(t, "secret", v)
		assert.NotEqual(t, "key", v)
	}
}
