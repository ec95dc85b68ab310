package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/reoring/paywallui/logging"
)

const fixture = "../../viewconfig/testdata/paywall.json"

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cmd := newRootCmd(&app{log: logging.NewTestLogger(t)})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "paywallui version dev")
}

func TestMapCmd(t *testing.T) {
	out, err := run(t, "", "map", fixture)
	require.NoError(t, err)

	var s mapSummary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, "4.0.0", s.FormatVersion)
	require.Len(t, s.Screens, 2)
	assert.Equal(t, "default", s.Screens[0].Name)
	assert.Equal(t, "v_stack", s.Screens[0].Root)
	assert.True(t, s.Screens[0].Footer)
	assert.Equal(t, "terms", s.Screens[1].Name)
	assert.Contains(t, s.Assets, "hero$$preview")
	assert.Equal(t, []string{"en", "de", "ar"}, s.Localizations)
	assert.Equal(t, []string{"headline"}, s.References)
	assert.Equal(t, []string{"plans"}, s.Sections)
	assert.Positive(t, s.Elements)
}

func TestMapCmd_YAMLFromStdin(t *testing.T) {
	doc := `
screens:
  default:
    content:
      type: text
      string_id: title
`
	out, err := run(t, doc, "map", "-", "--input-format", "yaml", "-o", "yaml")
	require.NoError(t, err)

	var s mapSummary
	require.NoError(t, yaml.Unmarshal([]byte(out), &s))
	require.Len(t, s.Screens, 1)
	assert.Equal(t, "text", s.Screens[0].Root)
}

func TestMapCmd_IssuesArePrinted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"screens":{"default":{"content":{"type":"carousel"}}}}`), 0o600))

	_, err := run(t, "", "map", path)
	require.Error(t, err)

	var buf bytes.Buffer
	printError(&buf, err)
	assert.Contains(t, buf.String(), "unknown_element at /screens/default/content/type")
}

func TestRenderCmd(t *testing.T) {
	out, err := run(t, "", "render", fixture, "--theme", "dark", "--locale", "de-AT", "--width", "400", "--height", "800")
	require.NoError(t, err)

	var r renderedScreen
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "default", r.Screen)
	assert.Equal(t, "de", r.Locale)
	assert.Equal(t, "dark", r.Theme)
	assert.Equal(t, "#101010FF", r.Background)
	assert.Equal(t, "v_stack", r.Content.Kind)
	require.Len(t, r.Content.Children, 3)
	assert.Equal(t, "https://cdn.example.com/hero.mp4", r.Content.Children[0].Media)
	require.NotNil(t, r.Content.Children[0].Height)
	assert.Equal(t, 320.0, *r.Content.Children[0].Height)
	assert.Equal(t, "Premium holen", r.Content.Children[1].Text)
	require.NotNil(t, r.Footer)
	assert.Nil(t, r.Overlay)
}

func TestRenderCmd_UnknownScreen(t *testing.T) {
	_, err := run(t, "", "render", fixture, "--screen", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `screen "missing" not found`)
}

func TestReplayCmd(t *testing.T) {
	meta := `"meta":{"onboarding_id":"o1","screen_cid":"s1","screen_index":0,"total_screens":2}`
	in := strings.Join([]string{
		`{"type":"onboarding_loaded",` + meta + `}`,
		``,
		`{"type":"analytics","name":"screen_presented",` + meta + `}`,
		`not json`,
		`{"type":"custom","action_id":"promo",` + meta + `}`,
	}, "\n")
	out, err := run(t, in, "onboarding", "replay", "--session-id", "s-1")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	var recs []map[string]any
	for _, l := range lines {
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(l), &m), l)
		recs = append(recs, m)
	}
	assert.Equal(t, "loaded", recs[0]["channel"])
	assert.Equal(t, "analytics", recs[1]["channel"])
	assert.Equal(t, "screen_presented", recs[1]["type"])
	assert.Equal(t, "errors", recs[2]["channel"])
	assert.Contains(t, recs[2]["error"], "parse_error")
	assert.Equal(t, "actions", recs[3]["channel"])
	msg := recs[3]["message"].(map[string]any)
	assert.Equal(t, "promo", msg["action_id"])
	assert.Equal(t, "o1", msg["meta"].(map[string]any)["onboarding_id"])
}
