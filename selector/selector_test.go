package selector

import (
	"testing"

	"github.com/erraggy/docctx/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnyAndNone(t *testing.T) {
	for _, p := range []string{"", "/", "/pets", "/pets/{id}/toys"} {
		assert.True(t, Any()(p), p)
		assert.False(t, None()(p), p)
	}
}

func TestRegex(t *testing.T) {
	s, err := Regex(`^/api/.*`)
	require.NoError(t, err)

	assert.True(t, s("/api/pets"))
	assert.False(t, s("/internal/health"))

	_, err = Regex(`(`)
	assert.Error(t, err)
	assert.Panics(t, func() { MustRegex(`(`) })
}

func TestAnt(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"/pets/*", "/pets/1", true},
		{"/pets/*", "/pets", false},
		{"/pets/*", "/pets/1/toys", false},
		{"/pets/**", "/pets", true},
		{"/pets/**", "/pets/1/toys", true},
		{"/drives/**/workbook/*", "/drives/a/b/workbook/sheet", true},
		{"/drives/**/workbook/*", "/drives/workbook/sheet", true},
		{"/drives/**/workbook/*", "/drives/a/workbook", false},
		{"/v?/pets", "/v1/pets", true},
		{"/**", "/anything/at/all", true},
		{"/users", "/users", true},
		{"/users", "/users/", true},
	}
	for _, tt := range tests {
		t.Run(tt.pattern+" "+tt.path, func(t *testing.T) {
			s, err := Ant(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s(tt.path))
		})
	}
}

func TestAnt_InvalidPattern(t *testing.T) {
	_, err := Ant("/pets/[")
	assert.Error(t, err)
}

func TestCombinators(t *testing.T) {
	api := MustRegex(`^/api/`)
	admin := MustRegex(`/admin`)

	assert.True(t, Or(api, admin)("/admin"))
	assert.False(t, And(api, admin)("/api/pets"))
	assert.True(t, And(api, Not(admin))("/api/pets"))
}

func TestDefault_SelectsEverything(t *testing.T) {
	s := Default()
	h := service.RequestHandler{Name: "x", Patterns: []string{"/a", "/b"}}

	assert.True(t, s.Selects(h))
	assert.True(t, s.SelectsPath("/whatever"))
	assert.True(t, s.Selects(service.RequestHandler{}))
}

func TestAPISelector_NilFieldsSelectEverything(t *testing.T) {
	var s APISelector
	assert.True(t, s.Selects(service.RequestHandler{Patterns: []string{"/a"}}))
}

func TestAPISelector_Selects(t *testing.T) {
	s := APISelector{
		Handler: HandlerWithName("listPets", "getPet"),
		Path:    MustRegex(`^/pets`),
	}

	assert.True(t, s.Selects(service.RequestHandler{Name: "listPets", Patterns: []string{"/pets"}}))
	assert.False(t, s.Selects(service.RequestHandler{Name: "listPets", Patterns: []string{"/store"}}))
	assert.False(t, s.Selects(service.RequestHandler{Name: "health", Patterns: []string{"/pets"}}))
}
