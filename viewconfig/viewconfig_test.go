package viewconfig

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	paywallui "github.com/reoring/paywallui"
	"github.com/reoring/paywallui/element"
	"github.com/reoring/paywallui/logging"
)

func loadFixture(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile("testdata/paywall.json")
	require.NoError(t, err)
	return data
}

func testOptions(t *testing.T) (Options, *tracetest.SpanRecorder) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	return Options{Logger: logging.NewTestLogger(t), Tracer: tp.Tracer("test")}, rec
}

func TestLoadJSON_Fixture(t *testing.T) {
	opt, rec := testOptions(t)
	cfg, err := LoadJSON(context.Background(), loadFixture(t), opt)
	require.NoError(t, err)

	assert.Equal(t, "4.0.0", cfg.FormatVersion)
	assert.Equal(t, []string{"default", "terms"}, cfg.ScreenNames())
	assert.True(t, cfg.Assets.Has("hero$$preview"))

	def, ok := cfg.Screen(DefaultScreen)
	require.True(t, ok)
	assert.Equal(t, "bg", def.Background.AssetID)
	stack := def.Content.(*element.Stack)
	require.Len(t, stack.Content, 3)
	assert.Equal(t, "hero$$preview", stack.Content[0].(*element.Video).Preview.AssetID)
	require.NotNil(t, def.Footer)
	assert.Nil(t, def.Overlay)

	headline, ok := cfg.References.Element("headline")
	require.True(t, ok)
	sec, ok := cfg.References.Section("plans")
	require.True(t, ok)
	assert.Same(t, headline, sec.Content[1].(*element.Reference).Target)

	assert.Equal(t, "Premium holen", mustText(t, cfg, "de-AT", "title"))
	assert.Equal(t, "Continue", mustText(t, cfg, "de-AT", "cta"), "falls back to the default localization")
	assert.True(t, cfg.Localizations.Resolver("ar").RightToLeft())

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "viewconfig.Map", spans[0].Name())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
}

func mustText(t *testing.T, cfg *Configuration, locale, key string) string {
	t.Helper()
	s, ok := cfg.Localizations.Resolver(locale).Text(key)
	require.True(t, ok, "key %s for %s", key, locale)
	return s
}

func TestMap_Failures(t *testing.T) {
	screens := map[string]any{"default": map[string]any{"content": map[string]any{"type": "space"}}}
	tests := []struct {
		name string
		doc  paywallui.Document
		code string
		path string
	}{
		{"no screens", paywallui.Document{}, paywallui.CodeRequired, "/screens"},
		{"no default screen", paywallui.Document{"screens": map[string]any{"terms": map[string]any{}}}, paywallui.CodeRequired, "/screens/default"},
		{"screen without content", paywallui.Document{"screens": map[string]any{"default": map[string]any{}}}, paywallui.CodeRequired, "/screens/default/content"},
		{"old format", paywallui.Document{"format_version": "3.2.0", "screens": screens}, paywallui.CodeUnsupportedVersion, "/format_version"},
		{"next major", paywallui.Document{"format_version": "5.0.0", "screens": screens}, paywallui.CodeUnsupportedVersion, "/format_version"},
		{"format not a string", paywallui.Document{"format_version": 4.0, "screens": screens}, paywallui.CodeInvalidType, "/format_version"},
		{"duplicate localization", paywallui.Document{"screens": screens, "localizations": []any{
			map[string]any{"id": "en"}, map[string]any{"id": "en"},
		}}, paywallui.CodeDuplicateKey, "/localizations/1/id"},
		{"string value not text", paywallui.Document{"screens": screens, "localizations": []any{
			map[string]any{"id": "en", "strings": []any{map[string]any{"id": "a", "value": 1.0}}},
		}}, paywallui.CodeInvalidType, "/localizations/0/strings/0/value"},
		{"missing image asset", paywallui.Document{"screens": map[string]any{"default": map[string]any{
			"content": map[string]any{"type": "image", "asset_id": "nope"},
		}}}, paywallui.CodeAssetMissing, "/screens/default/content/asset_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opt, rec := testOptions(t)
			_, err := Map(context.Background(), tt.doc, opt)
			iss, ok := paywallui.AsIssues(err)
			require.True(t, ok, "expected issues, got %v", err)
			assert.Equal(t, tt.code, iss[0].Code)
			assert.Equal(t, tt.path, iss[0].Path)

			spans := rec.Ended()
			require.Len(t, spans, 1)
			assert.Equal(t, codes.Error, spans[0].Status().Code)
		})
	}
}

func TestMap_UnparsableVersionKeepsCause(t *testing.T) {
	opt, _ := testOptions(t)
	_, err := Map(context.Background(), paywallui.Document{"format_version": "four"}, opt)
	iss, ok := paywallui.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, paywallui.CodeUnsupportedVersion, iss[0].Code)
	assert.Error(t, iss[0].Cause)
}

func TestMap_ReferencesAcrossScreens(t *testing.T) {
	opt, _ := testOptions(t)
	doc := paywallui.Document{"screens": map[string]any{
		"default": map[string]any{"content": map[string]any{"type": "reference", "element_id": "shared"}},
		"other":   map[string]any{"content": map[string]any{"type": "space", "element_id": "shared"}},
	}}
	cfg, err := Map(context.Background(), doc, opt)
	require.NoError(t, err)
	def, _ := cfg.Screen(DefaultScreen)
	assert.Equal(t, element.KindSpace, def.Content.(*element.Reference).Target.Kind())

	doc["screens"].(map[string]any)["default"] = map[string]any{"content": map[string]any{"type": "space", "element_id": "shared"}}
	_, err = Map(context.Background(), doc, opt)
	assert.True(t, paywallui.HasCode(err, paywallui.CodeDuplicateReference))
}

func TestMap_CanceledContext(t *testing.T) {
	opt, _ := testOptions(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Map(ctx, paywallui.Document{}, opt)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadYAML(t *testing.T) {
	opt, _ := testOptions(t)
	cfg, err := LoadYAML(context.Background(), []byte(`
format_version: "4.1.0"
assets:
  - id: logo
    type: image
    url: https://cdn.example.com/logo.png
screens:
  default:
    content:
      type: h_stack
      content:
        - type: image
          asset_id: logo
          width: 48
        - type: space
          count: 2
`), opt)
	require.NoError(t, err)
	def, _ := cfg.Screen(DefaultScreen)
	st := def.Content.(*element.Stack)
	assert.Equal(t, element.KindHStack, st.Kind())
	assert.Equal(t, 2, st.Content[1].(*element.Space).Count)
	assert.Equal(t, "en", cfg.Localizations.DefaultID())
}
