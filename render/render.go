// Package render resolves the deferred parts of element descriptors: asset
// references for a theme, localized strings for a locale and dimensions for
// a screen.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/paywallui/asset"
	"github.com/reoring/paywallui/attr"
	"github.com/reoring/paywallui/element"
	"github.com/reoring/paywallui/i18n"
)

var (
	// ErrAssetNotFound is returned when an asset id cannot be resolved.
	ErrAssetNotFound = errors.New("asset not found")
	// ErrAssetKind is returned when an asset exists with an unexpected kind.
	ErrAssetKind = errors.New("unexpected asset kind")
)

// Resolver binds descriptors to one theme, locale and screen. It holds no
// mutable state and may be used from several goroutines.
type Resolver struct {
	assets asset.Resolver
	texts  i18n.TextResolver
	theme  asset.Theme
	screen attr.Screen
}

// New returns a resolver. texts may be nil when no localization exists.
func New(assets asset.Resolver, texts i18n.TextResolver, theme asset.Theme, screen attr.Screen) *Resolver {
	return &Resolver{assets: assets, texts: texts, theme: theme, screen: screen}
}

// Theme returns the theme assets resolve for.
func (r *Resolver) Theme() asset.Theme { return r.theme }

// Length resolves a dimension along axis.
func (r *Resolver) Length(u attr.DimUnit, axis attr.Axis) float64 {
	return u.Resolve(axis, r.screen)
}

// Size resolves a width or height spec. ok is false for specs that depend on
// the parent layout (fill_max, and min/shrink without a concrete value).
func (r *Resolver) Size(spec *attr.DimSpec) (v float64, ok bool) {
	if spec == nil {
		return 0, false
	}
	switch spec.Kind {
	case attr.SpecSpecified:
		return spec.Value.Resolve(spec.Axis, r.screen), true
	case attr.SpecMin, attr.SpecShrink:
		v := spec.Value.Resolve(spec.Axis, r.screen)
		if spec.Max != nil {
			if mx := spec.Max.Resolve(spec.Axis, r.screen); v > mx {
				v = mx
			}
		}
		return v, true
	}
	return 0, false
}

// Insets resolves padding-like edges. Start and end are swapped for
// right-to-left locales.
func (r *Resolver) Insets(e *attr.EdgeEntities) (start, top, end, bottom float64) {
	if e == nil {
		return 0, 0, 0, 0
	}
	start = e.Start.Resolve(attr.AxisX, r.screen)
	end = e.End.Resolve(attr.AxisX, r.screen)
	top = e.Top.Resolve(attr.AxisY, r.screen)
	bottom = e.Bottom.Resolve(attr.AxisY, r.screen)
	if r.RightToLeft() {
		start, end = end, start
	}
	return start, top, end, bottom
}

// Fill resolves a color, gradient or image reference.
func (r *Resolver) Fill(f *attr.Fill) (asset.Asset, error) {
	if f == nil {
		return nil, nil
	}
	a, err := r.asset(f.AssetID)
	if err != nil {
		return nil, err
	}
	switch a.Kind() {
	case asset.KindColor, asset.KindGradient, asset.KindImage:
		return a, nil
	}
	return nil, fmt.Errorf("%w: %q is a %s", ErrAssetKind, f.AssetID, a.Kind())
}

// Image resolves the asset of an image element.
func (r *Resolver) Image(img *element.Image) (asset.Image, error) {
	a, err := r.asset(img.AssetID)
	if err != nil {
		return asset.Image{}, err
	}
	out, ok := a.(asset.Image)
	if !ok {
		return asset.Image{}, fmt.Errorf("%w: %q is a %s", ErrAssetKind, img.AssetID, a.Kind())
	}
	return out, nil
}

// Video resolves a video element and its preview still.
func (r *Resolver) Video(v *element.Video) (asset.Video, asset.Image, error) {
	a, err := r.asset(v.AssetID)
	if err != nil {
		return asset.Video{}, asset.Image{}, err
	}
	video, ok := a.(asset.Video)
	if !ok {
		return asset.Video{}, asset.Image{}, fmt.Errorf("%w: %q is a %s", ErrAssetKind, v.AssetID, a.Kind())
	}
	preview, err := r.Image(v.Preview)
	if err != nil {
		return asset.Video{}, asset.Image{}, err
	}
	return video, preview, nil
}

// Font resolves the font of a text run. ok is false when none is set.
func (r *Resolver) Font(ta attr.TextAttributes) (asset.Font, bool, error) {
	if ta.FontID == "" {
		return asset.Font{}, false, nil
	}
	a, err := r.asset(ta.FontID)
	if err != nil {
		return asset.Font{}, false, err
	}
	f, ok := a.(asset.Font)
	if !ok {
		return asset.Font{}, false, fmt.Errorf("%w: %q is a %s", ErrAssetKind, ta.FontID, a.Kind())
	}
	return f, true, nil
}

// Text resolves a localized string. Keys are tried in preference order; the
// first hit wins.
func (r *Resolver) Text(id attr.StringID) (string, bool) {
	if r.texts == nil {
		return "", false
	}
	for _, k := range id.Keys() {
		if s, ok := r.texts.Text(k); ok {
			return s, true
		}
	}
	return "", false
}

// TextOr resolves id, falling back to its lookup keys joined by "|".
func (r *Resolver) TextOr(id attr.StringID) string {
	if s, ok := r.Text(id); ok {
		return s
	}
	return strings.Join(id.Keys(), "|")
}

// RightToLeft reports the layout direction of the bound locale.
func (r *Resolver) RightToLeft() bool {
	return r.texts != nil && r.texts.RightToLeft()
}

// Align resolves a horizontal alignment for the layout direction.
func (r *Resolver) Align(a attr.HorizontalAlign) attr.HorizontalAlign {
	return a.Resolve(r.RightToLeft())
}

func (r *Resolver) asset(id string) (asset.Asset, error) {
	if r.assets == nil {
		return nil, fmt.Errorf("%w: %q", ErrAssetNotFound, id)
	}
	a, ok := r.assets.Resolve(id, r.theme)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrAssetNotFound, id)
	}
	return a, nil
}
