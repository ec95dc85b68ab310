// Package viewconfig maps a whole view-configuration document: the format
// version, the asset table, localizations and one element tree per screen.
package viewconfig

import (
	"context"
	"sort"
	"time"

	"github.com/Masterminds/semver/v3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	paywallui "github.com/reoring/paywallui"
	"github.com/reoring/paywallui/asset"
	"github.com/reoring/paywallui/attr"
	"github.com/reoring/paywallui/element"
	"github.com/reoring/paywallui/i18n"
	"github.com/reoring/paywallui/internal/metrics"
	"github.com/reoring/paywallui/logging"
)

const (
	// SupportedFormats is the format_version constraint this module maps.
	SupportedFormats = ">= 4.0.0, < 5.0.0"
	// DefaultScreen must be present in every configuration.
	DefaultScreen = "default"
	// DefaultLocalization is used when the document names none.
	DefaultLocalization = "en"

	tracerName = "github.com/reoring/paywallui/viewconfig"
)

var supported = semver.MustParse("4.0.0")
var formatConstraint, _ = semver.NewConstraint(SupportedFormats)

// Screen is one mapped screen.
type Screen struct {
	Name       string
	Background *attr.Fill
	Content    element.Element
	Footer     element.Element // optional
	Overlay    element.Element // optional
}

// Configuration is the mapped document. It is read-only once returned and
// may be shared between renderers.
type Configuration struct {
	FormatVersion string
	Assets        *asset.Table
	Localizations *i18n.Localizations
	Screens       map[string]*Screen
	References    *element.ReferenceBundle
	Elements      int
}

// Screen returns the screen called name.
func (c *Configuration) Screen(name string) (*Screen, bool) {
	s, ok := c.Screens[name]
	return s, ok
}

// ScreenNames lists the screens in lexical order.
func (c *Configuration) ScreenNames() []string {
	out := make([]string, 0, len(c.Screens))
	for n := range c.Screens {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Options configure Map.
type Options struct {
	Platform string
	Registry *element.Registry
	Logger   logging.Logger
	Tracer   trace.Tracer // defaults to the global provider
}

// Map maps doc. The first issue aborts the whole configuration.
func Map(ctx context.Context, doc paywallui.Document, opt Options) (cfg *Configuration, err error) {
	tracer := opt.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	log := logging.OrNop(opt.Logger)
	ctx, span := tracer.Start(ctx, "viewconfig.Map", trace.WithSpanKind(trace.SpanKindInternal))
	start := time.Now()
	defer func() {
		metrics.MappingDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.ConfigurationsMapped.WithLabelValues(metrics.OutcomeFailed).Inc()
			if it, ok := firstIssue(err); ok {
				metrics.MappingFailures.WithLabelValues(it.Code).Inc()
				span.SetAttributes(attribute.String("paywallui.issue.code", it.Code), attribute.String("paywallui.issue.path", it.Path))
				log.Warn("view configuration rejected", logging.Fields{"code": it.Code, "path": it.Path})
			}
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			metrics.ConfigurationsMapped.WithLabelValues(metrics.OutcomeOK).Inc()
			metrics.ElementsMapped.Add(float64(cfg.Elements))
			span.SetAttributes(attribute.Int("paywallui.elements", cfg.Elements), attribute.Int("paywallui.screens", len(cfg.Screens)))
		}
		span.End()
	}()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root := paywallui.Root()
	cfg = &Configuration{}
	if cfg.FormatVersion, err = checkFormat(doc, root); err != nil {
		return nil, err
	}
	if raw, ok := doc["assets"]; ok && raw != nil {
		if cfg.Assets, err = asset.MapTable(raw, root.Field("assets")); err != nil {
			return nil, err
		}
	} else {
		cfg.Assets = asset.NewTable()
	}
	if cfg.Localizations, err = mapLocalizations(doc, root); err != nil {
		return nil, err
	}

	b := element.NewBuilder(cfg.Assets, nil, element.Options{
		Platform: opt.Platform,
		Registry: opt.Registry,
		Logger:   log,
	})
	if cfg.Screens, err = mapScreens(b, doc["screens"], root.Field("screens")); err != nil {
		return nil, err
	}
	if err = b.Finish(); err != nil {
		return nil, err
	}
	cfg.References = b.References()
	cfg.Elements = b.Count()
	log.Debug("view configuration mapped", logging.Fields{
		"format_version": cfg.FormatVersion,
		"assets":         cfg.Assets.Len(),
		"screens":        len(cfg.Screens),
		"elements":       cfg.Elements,
	})
	return cfg, nil
}

// LoadJSON parses and maps a JSON document.
func LoadJSON(ctx context.Context, data []byte, opt Options, parse ...paywallui.Options) (*Configuration, error) {
	doc, err := paywallui.ParseJSON(data, parse...)
	if err != nil {
		return nil, err
	}
	return Map(ctx, doc, opt)
}

// LoadYAML parses and maps a YAML document.
func LoadYAML(ctx context.Context, data []byte, opt Options, parse ...paywallui.Options) (*Configuration, error) {
	doc, err := paywallui.ParseYAML(data, parse...)
	if err != nil {
		return nil, err
	}
	return Map(ctx, doc, opt)
}

// checkFormat accepts a missing format_version as the current one.
func checkFormat(doc paywallui.Document, p paywallui.PathRef) (string, error) {
	raw, ok := doc["format_version"]
	if !ok || raw == nil {
		return supported.String(), nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", p.Field("format_version").Fail(paywallui.CodeInvalidType, raw, "hint", "expected version string")
	}
	v, err := semver.NewVersion(s)
	if err != nil {
		return "", paywallui.WithCause(p.Field("format_version").Fail(paywallui.CodeUnsupportedVersion, raw, "version", s), err)
	}
	if !formatConstraint.Check(v) {
		return "", p.Field("format_version").Fail(paywallui.CodeUnsupportedVersion, raw,
			"version", s, "hint", "supported: "+SupportedFormats)
	}
	return v.String(), nil
}

func mapLocalizations(doc paywallui.Document, p paywallui.PathRef) (*i18n.Localizations, error) {
	var locs []i18n.Localization
	if raw, ok := doc["localizations"]; ok && raw != nil {
		list, ok := paywallui.List(raw)
		if !ok {
			return nil, p.Field("localizations").Fail(paywallui.CodeInvalidType, raw, "hint", "expected list")
		}
		seen := map[string]bool{}
		for i, e := range list {
			lp := p.Field("localizations").Index(i)
			loc, err := mapLocalization(e, lp)
			if err != nil {
				return nil, err
			}
			if seen[loc.ID] {
				return nil, lp.Field("id").Fail(paywallui.CodeDuplicateKey, loc.ID, "id", loc.ID)
			}
			seen[loc.ID] = true
			locs = append(locs, loc)
		}
	}
	def := paywallui.OptString(doc, "default_localization", "")
	if def == "" {
		def = DefaultLocalization
		if len(locs) > 0 {
			def = locs[0].ID
		}
	}
	return i18n.NewLocalizations(def, locs...), nil
}

func mapLocalization(v any, p paywallui.PathRef) (i18n.Localization, error) {
	m, ok := paywallui.Object(v)
	if !ok {
		return i18n.Localization{}, p.Fail(paywallui.CodeInvalidType, v, "hint", "expected object")
	}
	id, err := paywallui.RequireString(m, "id", p)
	if err != nil {
		return i18n.Localization{}, err
	}
	loc := i18n.Localization{
		ID:          id,
		Strings:     map[string]string{},
		RightToLeft: paywallui.OptBool(m, "is_right_to_left", false),
	}
	raw, ok := m["strings"]
	if !ok || raw == nil {
		return loc, nil
	}
	list, ok := paywallui.List(raw)
	if !ok {
		return i18n.Localization{}, p.Field("strings").Fail(paywallui.CodeInvalidType, raw, "hint", "expected list")
	}
	for i, e := range list {
		sp := p.Field("strings").Index(i)
		sm, ok := paywallui.Object(e)
		if !ok {
			return i18n.Localization{}, sp.Fail(paywallui.CodeInvalidType, e, "hint", "expected object")
		}
		key, err := paywallui.RequireString(sm, "id", sp)
		if err != nil {
			return i18n.Localization{}, err
		}
		val, ok := sm["value"].(string)
		if !ok {
			return i18n.Localization{}, sp.Field("value").Fail(paywallui.CodeInvalidType, sm["value"], "hint", "expected string")
		}
		loc.Strings[key] = val
	}
	return loc, nil
}

func mapScreens(b *element.Builder, v any, p paywallui.PathRef) (map[string]*Screen, error) {
	if v == nil {
		return nil, p.Fail(paywallui.CodeRequired, nil)
	}
	m, ok := paywallui.Object(v)
	if !ok {
		return nil, p.Fail(paywallui.CodeInvalidType, v, "hint", "expected object keyed by screen name")
	}
	if _, ok := m[DefaultScreen]; !ok {
		return nil, p.Field(DefaultScreen).Fail(paywallui.CodeRequired, nil)
	}
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	// sorted so the first reported issue is stable
	sort.Strings(names)
	out := make(map[string]*Screen, len(m))
	for _, name := range names {
		s, err := mapScreen(b, name, m[name], p.Field(name))
		if err != nil {
			return nil, err
		}
		out[name] = s
	}
	return out, nil
}

func mapScreen(b *element.Builder, name string, v any, p paywallui.PathRef) (*Screen, error) {
	m, ok := paywallui.Object(v)
	if !ok {
		return nil, p.Fail(paywallui.CodeInvalidType, v, "hint", "expected screen object")
	}
	s := &Screen{Name: name}
	var err error
	if s.Background, err = attr.MapFill(m["background"], p.Field("background")); err != nil {
		return nil, err
	}
	if s.Content, err = b.Element(m["content"], p.Field("content")); err != nil {
		return nil, err
	}
	for _, part := range []struct {
		key string
		dst *element.Element
	}{{"footer", &s.Footer}, {"overlay", &s.Overlay}} {
		raw, ok := m[part.key]
		if !ok || raw == nil {
			continue
		}
		if *part.dst, err = b.Element(raw, p.Field(part.key)); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func firstIssue(err error) (paywallui.Issue, bool) {
	iss, ok := paywallui.AsIssues(err)
	if !ok {
		return paywallui.Issue{}, false
	}
	return iss.First()
}
