// Package asset holds the theme-qualified asset table a view configuration
// references by id: colors, gradients, images, videos and fonts.
package asset

import (
	"context"
	"image/color"
	"sort"
	"strings"

	"github.com/reoring/paywallui/codec"
)

// Theme selects between asset variants.
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

func (t Theme) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}

// ParseTheme maps "dark" to ThemeDark; anything else is ThemeLight.
func ParseTheme(s string) Theme {
	if strings.EqualFold(s, "dark") {
		return ThemeDark
	}
	return ThemeLight
}

const (
	// DarkSuffix marks the dark-theme variant of an asset id.
	DarkSuffix = "@dark"
	// PreviewSuffix names the still image shown until a video renders.
	PreviewSuffix = "$$preview"
)

// PreviewID returns the companion preview image id of a video asset.
func PreviewID(videoID string) string { return videoID + PreviewSuffix }

// Kind enumerates asset record kinds.
type Kind string

const (
	KindColor    Kind = "color"
	KindGradient Kind = "gradient"
	KindImage    Kind = "image"
	KindVideo    Kind = "video"
	KindFont     Kind = "font"
)

// Asset is one resolved asset record.
type Asset interface {
	Kind() Kind
	asset()
}

type Color struct {
	Value color.NRGBA
}

type GradientType string

const (
	GradientLinear GradientType = "linear"
	GradientRadial GradientType = "radial"
	GradientConic  GradientType = "conic"
)

type Stop struct {
	Color    color.NRGBA
	Position float64
}

type Points struct {
	X0, Y0, X1, Y1 float64
}

type Gradient struct {
	Type   GradientType
	Stops  []Stop
	Points Points
}

// Image is either inline data (base64-decoded) or a remote URL.
type Image struct {
	Data []byte
	URL  string
}

type Video struct {
	URL string
}

type Font struct {
	Family    string
	Resources []string
	Weight    int
	Italic    bool
	Size      float64
	Color     color.NRGBA
}

func (Color) Kind() Kind    { return KindColor }
func (Gradient) Kind() Kind { return KindGradient }
func (Image) Kind() Kind    { return KindImage }
func (Video) Kind() Kind    { return KindVideo }
func (Font) Kind() Kind     { return KindFont }

func (Color) asset()    {}
func (Gradient) asset() {}
func (Image) asset()    {}
func (Video) asset()    {}
func (Font) asset()     {}

// Resolver is the render-time capability: resolve an asset id for a theme.
type Resolver interface {
	Resolve(id string, theme Theme) (Asset, bool)
}

// Table maps asset ids to their theme variants. It is populated once per
// configuration load and read-only afterwards, so concurrent reads are safe.
type Table struct {
	entries map[string]map[Theme]Asset
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{entries: map[string]map[Theme]Asset{}}
}

// Put stores a variant, reporting false when the id/theme pair already exists.
func (t *Table) Put(id string, theme Theme, a Asset) bool {
	vs := t.entries[id]
	if vs == nil {
		vs = map[Theme]Asset{}
		t.entries[id] = vs
	}
	if _, dup := vs[theme]; dup {
		return false
	}
	vs[theme] = a
	return true
}

// Has is the mapping-time existence check.
func (t *Table) Has(id string) bool {
	if t == nil {
		return false
	}
	_, ok := t.entries[id]
	return ok
}

// HasKind reports whether id exists with a variant of kind k.
func (t *Table) HasKind(id string, k Kind) bool {
	if !t.Has(id) {
		return false
	}
	for _, a := range t.entries[id] {
		if a.Kind() == k {
			return true
		}
	}
	return false
}

// Resolve returns the variant for theme, falling back to the light variant.
// Inline "#RRGGBB[AA]" literals resolve to colors without a table entry.
func (t *Table) Resolve(id string, theme Theme) (Asset, bool) {
	if t != nil {
		if vs, ok := t.entries[id]; ok {
			if a, ok := vs[theme]; ok {
				return a, true
			}
			if a, ok := vs[ThemeLight]; ok {
				return a, true
			}
			if a, ok := vs[ThemeDark]; ok {
				return a, true
			}
		}
	}
	if codec.IsHexColor(id) {
		c, err := codec.HexColor().Decode(context.Background(), id)
		if err == nil {
			return Color{Value: c}, true
		}
	}
	return nil, false
}

// IDs lists the asset ids in lexical order.
func (t *Table) IDs() []string {
	out := make([]string, 0, len(t.entries))
	for id := range t.entries {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of distinct ids.
func (t *Table) Len() int { return len(t.entries) }
