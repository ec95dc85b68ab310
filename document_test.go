package paywallui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	doc, err := ParseJSON([]byte(`{"format_version":"4.0.0","screens":{"default":{"content":{"type":"space","count":2}}}}`))
	require.NoError(t, err)
	assert.Equal(t, "4.0.0", doc["format_version"])

	content := doc["screens"].(map[string]any)["default"].(map[string]any)["content"].(map[string]any)
	n, ok := Int(content["count"])
	require.True(t, ok)
	assert.Equal(t, 2, n)
}

func TestParseJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		opt  Options
		code string
		path string
	}{
		{"syntax", `{"a":`, DefaultOptions(), CodeParseError, "/"},
		{"not an object", `[1,2]`, DefaultOptions(), CodeInvalidType, "/"},
		{"duplicate key", `{"a":{"b":1,"b":2}}`, DefaultOptions(), CodeDuplicateKey, "/a/b"},
		{"too deep", `{"a":{"b":{"c":1}}}`, Options{MaxDepth: 2}, CodeTooDeep, "/a/b"},
		{"too large", `{"a":"0123456789"}`, Options{MaxBytes: 8}, CodeParseError, "/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON([]byte(tt.data), tt.opt)
			iss, ok := AsIssues(err)
			require.True(t, ok, "expected issues, got %v", err)
			assert.Equal(t, tt.code, iss[0].Code)
			assert.Equal(t, tt.path, iss[0].Path)
		})
	}
}

func TestParseJSON_DuplicateWarnings(t *testing.T) {
	var warned []Issue
	opt := DefaultOptions()
	opt.Strictness.OnDuplicateKey = Warn
	opt.IssueSink = func(it Issue) { warned = append(warned, it) }

	doc, err := ParseJSON([]byte(`{"a":1,"a":2}`), opt)
	require.NoError(t, err)
	require.Len(t, warned, 1)
	assert.Equal(t, "/a", warned[0].Path)
	assert.Contains(t, doc, "a")
}

func TestParseYAML(t *testing.T) {
	doc, err := ParseYAML([]byte("screens:\n  default:\n    content:\n      type: box\n      padding: [8, 16]\n    1: numeric key\n"))
	require.NoError(t, err)
	def := doc["screens"].(map[string]any)["default"].(map[string]any)
	assert.Equal(t, "numeric key", def["1"])
	padding := def["content"].(map[string]any)["padding"].([]any)
	n, ok := Number(padding[1])
	require.True(t, ok)
	assert.Equal(t, 16.0, n)

	_, err = ParseYAML([]byte("a: 1\na: 2\n"))
	assert.True(t, HasCode(err, CodeParseError), "yaml.v3 rejects duplicate keys")

	_, err = ParseYAML([]byte("- 1\n- 2\n"))
	assert.True(t, HasCode(err, CodeInvalidType))
}

type upperDriver struct{}

func (upperDriver) Decode([]byte) (any, error) { return map[string]any{"driver": "custom"}, nil }
func (upperDriver) Name() string               { return "custom" }

func TestSetJSONDriver(t *testing.T) {
	SetJSONDriver(upperDriver{})
	t.Cleanup(UseDefaultJSONDriver)

	doc, err := ParseJSON([]byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, "custom", doc["driver"])
}
