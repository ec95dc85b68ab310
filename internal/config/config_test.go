package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	paywallui "github.com/reoring/paywallui"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", dir)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "android", cfg.Render.Platform)
	assert.Equal(t, "default", cfg.Render.Screen)
	assert.Equal(t, 390.0, cfg.Render.Width)
	assert.Equal(t, 64, cfg.Document.MaxDepth)
	assert.Equal(t, "error", cfg.Document.DuplicateKeys)
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	cfgFile := writeFile(t, dir, "paywallui.yaml", `
logging:
  level: warn
render:
  theme: dark
  locale: ja
  width: 320
`)
	envFile := writeFile(t, dir, ".env", "PAYWALLUI_RENDER_LOCALE=he\nPAYWALLUI_LOGGING_FORMAT=json\n")
	t.Setenv("PAYWALLUI_LOGGING_FORMAT", "console")
	t.Setenv("PAYWALLUI_RENDER_WIDTH", "412")

	cfg, err := Load(LoadOptions{ConfigFile: cfgFile, EnvFile: envFile})
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level, "file over defaults")
	assert.Equal(t, "dark", cfg.Render.Theme)
	assert.Equal(t, "he", cfg.Render.Locale, ".env over file")
	assert.Equal(t, "console", cfg.Logging.Format, "environment over .env")
	assert.Equal(t, 412.0, cfg.Render.Width, "environment over file")

	_, set := os.LookupEnv("PAYWALLUI_RENDER_LOCALE")
	assert.False(t, set, ".env entries stay out of the process environment")
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(LoadOptions{ConfigFile: filepath.Join(dir, "missing.yaml")})
	assert.Error(t, err)

	_, err = Load(LoadOptions{ConfigFile: writeFile(t, dir, "a.yaml", "render:\n  theme: sepia\n")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render.theme")

	_, err = Load(LoadOptions{ConfigFile: writeFile(t, dir, "b.yaml", "document:\n  duplicate_keys: sometimes\n")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate_keys")

	chdir(t, dir)
	_, err = Load(LoadOptions{EnvFile: filepath.Join(dir, "nope.env")})
	assert.Error(t, err, "an explicit env file must exist")
}

func TestParseOptions(t *testing.T) {
	d := DocumentConfig{MaxDepth: 8, MaxBytes: 1024, DuplicateKeys: "warn"}
	opt := d.ParseOptions(nil)
	assert.Equal(t, paywallui.Warn, opt.Strictness.OnDuplicateKey)
	assert.Equal(t, 8, opt.MaxDepth)
	assert.Equal(t, int64(1024), opt.MaxBytes)

	assert.Equal(t, paywallui.Ignore, DocumentConfig{DuplicateKeys: "ignore"}.ParseOptions(nil).Strictness.OnDuplicateKey)
	assert.Equal(t, paywallui.Error, DocumentConfig{}.ParseOptions(nil).Strictness.OnDuplicateKey)
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
