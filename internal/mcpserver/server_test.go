package mcpserver

import (
	"fmt"
	"math"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	items := []int{0, 1, 2, 3, 4}

	tests := []struct {
		name   string
		items  []int
		offset int
		limit  int
		want   []int
	}{
		{name: "default limit returns all when under 100", items: items, want: []int{0, 1, 2, 3, 4}},
		{name: "explicit limit", items: items, limit: 2, want: []int{0, 1}},
		{name: "offset only", items: items, offset: 2, want: []int{2, 3, 4}},
		{name: "offset and limit", items: items, offset: 1, limit: 2, want: []int{1, 2}},
		{name: "offset beyond end", items: items, offset: 5, limit: 2, want: nil},
		{name: "negative offset", items: items, offset: -1, limit: 2, want: nil},
		{name: "limit exceeds remaining", items: items, offset: 3, limit: 10, want: []int{3, 4}},
		{name: "nil slice", items: nil, want: nil},
		{name: "overflowing limit", items: items, offset: 1, limit: math.MaxInt, want: []int{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paginate(tt.items, tt.offset, tt.limit))
		})
	}
}

func TestPaginate_MaxLimitCap(t *testing.T) {
	items := make([]int, cfg.MaxLimit+500)
	for i := range items {
		items[i] = i
	}
	got := paginate(items, 0, len(items))
	assert.Len(t, got, cfg.MaxLimit, "limit should be capped at MaxLimit")
}

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil error returns empty string", err: nil, want: ""},
		{
			name: "strips absolute path",
			err:  fmt.Errorf("parse error in /home/user/team/base.yaml at line 2"),
			want: "parse error in <path> at line 2",
		},
		{
			name: "preserves non-path content",
			err:  fmt.Errorf("configuration error for rules (value: models.Missing)"),
			want: "configuration error for rules (value: models.Missing)",
		},
		{
			name: "strips multiple paths",
			err:  fmt.Errorf("merge /tmp/a.yaml and /tmp/b.yaml failed"),
			want: "merge <path> and <path> failed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeError(tt.err))
		})
	}
}

func TestErrResult(t *testing.T) {
	result := errResult(fmt.Errorf("bad input in /tmp/x.yaml"))

	require.NotNil(t, result)
	assert.True(t, result.IsError)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "bad input in <path>", text.Text)
}

func TestValidateGlobPattern(t *testing.T) {
	assert.NoError(t, validateGlobPattern(""))
	assert.NoError(t, validateGlobPattern("time"))
	assert.NoError(t, validateGlobPattern("time.*"))
	assert.NoError(t, validateGlobPattern("int[0-9]*"))
	assert.Error(t, validateGlobPattern("int[*"))
}

func TestMatchGlobName(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    bool
	}{
		{"time.Time", "", true},
		{"time.Time", "time.*", true},
		{"time.Duration", "time.*", true},
		{"int64", "time.*", false},
		{"int64", "int??", true},
		{"int8", "int??", false},
		{"time.Duration", "DUR", true},
		{"float64", "dur", false},
	}
	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, matchGlobName(tt.name, tt.pattern))
		})
	}
}
