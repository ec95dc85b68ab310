package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLocalizations() *Localizations {
	return NewLocalizations("en",
		Localization{ID: "en", Strings: map[string]string{"title": "Go Premium", "cta": "Continue"}},
		Localization{ID: "de", Strings: map[string]string{"title": "Premium holen"}},
		Localization{ID: "ar", Strings: map[string]string{"title": "بريميوم"}, RightToLeft: true},
	)
}

func TestLocalizations_MatchRegionalLocale(t *testing.T) {
	l := testLocalizations()

	assert.Equal(t, "de", l.Match("de-DE"))
	assert.Equal(t, "de", l.Match("de_AT.UTF-8"))
	assert.Equal(t, "en", l.Match("ja-JP"))
	assert.Equal(t, "en", l.Match("not a locale"))
}

func TestLocalizations_ResolverFallsBackToDefault(t *testing.T) {
	r := testLocalizations().Resolver("de-DE")
	require.Equal(t, "de", r.Locale())

	s, ok := r.Text("title")
	require.True(t, ok)
	assert.Equal(t, "Premium holen", s)

	s, ok = r.Text("cta")
	require.True(t, ok)
	assert.Equal(t, "Continue", s, "missing key falls back to the default localization")

	_, ok = r.Text("nope")
	assert.False(t, ok)
	assert.False(t, r.RightToLeft())
}

func TestLocalizations_RightToLeft(t *testing.T) {
	r := testLocalizations().Resolver("ar")
	assert.True(t, r.RightToLeft())
}

func TestLocalizations_Empty(t *testing.T) {
	l := NewLocalizations("en")
	r := l.Resolver("fr")
	_, ok := r.Text("title")
	assert.False(t, ok)
	assert.Equal(t, "en", r.Locale())
}
