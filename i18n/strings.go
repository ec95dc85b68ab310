package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// TextResolver resolves a localization key for one locale. It is the
// render-time capability element descriptors defer text lookups to.
type TextResolver interface {
	Text(key string) (string, bool)
	Locale() string
	RightToLeft() bool
}

// Localization is one locale's string table.
type Localization struct {
	ID          string // locale identifier as declared by the configuration ("en", "pt-BR")
	Strings     map[string]string
	RightToLeft bool
}

// Localizations holds every string table of a configuration plus the default
// one used as fallback.
type Localizations struct {
	byID      map[string]*Localization
	ids       []string
	matcher   language.Matcher
	defaultID string
}

// NewLocalizations builds the lookup. The default localization is tried first
// by the matcher and is the fallback for keys missing in the matched locale.
func NewLocalizations(defaultID string, locs ...Localization) *Localizations {
	l := &Localizations{byID: make(map[string]*Localization, len(locs)), defaultID: defaultID}
	for i := range locs {
		loc := locs[i]
		if loc.Strings == nil {
			loc.Strings = map[string]string{}
		}
		l.byID[loc.ID] = &loc
	}
	if _, ok := l.byID[defaultID]; ok {
		l.ids = append(l.ids, defaultID)
	}
	for _, loc := range locs {
		if loc.ID != defaultID {
			l.ids = append(l.ids, loc.ID)
		}
	}
	tags := make([]language.Tag, 0, len(l.ids))
	for _, id := range l.ids {
		tags = append(tags, parseTag(id))
	}
	if len(tags) > 0 {
		l.matcher = language.NewMatcher(tags)
	}
	return l
}

// DefaultID returns the declared default localization id.
func (l *Localizations) DefaultID() string { return l.defaultID }

// IDs lists the localization ids, default first.
func (l *Localizations) IDs() []string { return append([]string(nil), l.ids...) }

// Has reports whether a localization with the exact id exists.
func (l *Localizations) Has(id string) bool {
	_, ok := l.byID[id]
	return ok
}

// Match returns the id of the localization that best serves locale. An exact
// id wins; otherwise BCP 47 matching is used, falling back to the default.
func (l *Localizations) Match(locale string) string {
	if _, ok := l.byID[locale]; ok {
		return locale
	}
	if l.matcher == nil {
		return l.defaultID
	}
	_, idx, conf := l.matcher.Match(parseTag(locale))
	if conf == language.No || idx < 0 || idx >= len(l.ids) {
		return l.defaultID
	}
	return l.ids[idx]
}

// Resolver returns a TextResolver for locale.
func (l *Localizations) Resolver(locale string) TextResolver {
	id := l.Match(locale)
	return &resolver{primary: l.byID[id], fallback: l.byID[l.defaultID], id: id}
}

type resolver struct {
	primary  *Localization
	fallback *Localization
	id       string
}

func (r *resolver) Text(key string) (string, bool) {
	if r.primary != nil {
		if s, ok := r.primary.Strings[key]; ok {
			return s, true
		}
	}
	if r.fallback != nil {
		if s, ok := r.fallback.Strings[key]; ok {
			return s, true
		}
	}
	return "", false
}

func (r *resolver) Locale() string { return r.id }

func (r *resolver) RightToLeft() bool {
	return r.primary != nil && r.primary.RightToLeft
}

// parseTag accepts POSIX ("pt_BR.UTF-8") and BCP 47 ("pt-BR") spellings.
func parseTag(raw string) language.Tag {
	if idx := strings.IndexByte(raw, '.'); idx != -1 {
		raw = raw[:idx]
	}
	raw = strings.ReplaceAll(raw, "_", "-")
	tag, err := language.Parse(raw)
	if err != nil {
		return language.Und
	}
	return tag
}
