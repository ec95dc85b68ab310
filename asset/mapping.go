package asset

import (
	"context"
	"encoding/base64"
	"image/color"
	"strings"

	paywallui "github.com/reoring/paywallui"
	"github.com/reoring/paywallui/codec"
)

// MapTable decodes the `assets` list of a view configuration. Ids carrying
// the "@dark" suffix become the dark variant of the base id. Video assets
// with an `image` object also register their "$$preview" companion image.
// Asset types this version does not know are skipped.
func MapTable(v any, p paywallui.PathRef) (*Table, error) {
	t := NewTable()
	if v == nil {
		return t, nil
	}
	list, ok := paywallui.List(v)
	if !ok {
		return nil, p.Fail(paywallui.CodeInvalidType, v, "hint", "expected array")
	}
	for i, item := range list {
		ip := p.Index(i)
		m, ok := paywallui.Object(item)
		if !ok {
			return nil, ip.Fail(paywallui.CodeInvalidType, item, "hint", "expected object")
		}
		rawID, err := paywallui.RequireString(m, "id", ip)
		if err != nil {
			return nil, err
		}
		typ, err := paywallui.RequireString(m, "type", ip)
		if err != nil {
			return nil, err
		}
		id, theme := splitTheme(rawID)
		a, err := mapAsset(typ, m, ip)
		if err != nil {
			return nil, err
		}
		if a == nil {
			continue
		}
		if !t.Put(id, theme, a) {
			return nil, ip.Field("id").Fail(paywallui.CodeDuplicateKey, nil, "id", rawID)
		}
		if _, isVideo := a.(Video); isVideo {
			if im, ok := paywallui.Object(m["image"]); ok {
				preview, err := mapImage(im, ip.Field("image"))
				if err != nil {
					return nil, err
				}
				t.Put(PreviewID(id), theme, preview)
			}
		}
	}
	return t, nil
}

func splitTheme(id string) (string, Theme) {
	if base, ok := strings.CutSuffix(id, DarkSuffix); ok && base != "" {
		return base, ThemeDark
	}
	return id, ThemeLight
}

func mapAsset(typ string, m map[string]any, p paywallui.PathRef) (Asset, error) {
	switch typ {
	case "color":
		c, err := requireColor(m, "value", p)
		if err != nil {
			return nil, err
		}
		return Color{Value: c}, nil
	case "linear-gradient", "radial-gradient", "conic-gradient":
		return mapGradient(GradientType(strings.TrimSuffix(typ, "-gradient")), m, p)
	case "image":
		return mapImage(m, p)
	case "video":
		u, err := paywallui.RequireString(m, "url", p)
		if err != nil {
			return nil, err
		}
		return Video{URL: u}, nil
	case "font":
		return mapFont(m, p)
	}
	return nil, nil
}

func mapGradient(gt GradientType, m map[string]any, p paywallui.PathRef) (Asset, error) {
	vp := p.Field("values")
	raw, ok := paywallui.List(m["values"])
	if !ok {
		return nil, vp.Fail(paywallui.CodeRequired, m["values"], "hint", "expected array of color stops")
	}
	g := Gradient{Type: gt, Points: Points{X0: 0, Y0: 0.5, X1: 1, Y1: 0.5}}
	for i, s := range raw {
		sm, ok := paywallui.Object(s)
		if !ok {
			return nil, vp.Index(i).Fail(paywallui.CodeInvalidType, s, "hint", "expected object")
		}
		c, err := requireColor(sm, "color", vp.Index(i))
		if err != nil {
			return nil, err
		}
		g.Stops = append(g.Stops, Stop{Color: c, Position: paywallui.OptNumber(sm, "p", 0)})
	}
	if pts, ok := paywallui.Object(m["points"]); ok {
		g.Points = Points{
			X0: paywallui.OptNumber(pts, "x0", g.Points.X0),
			Y0: paywallui.OptNumber(pts, "y0", g.Points.Y0),
			X1: paywallui.OptNumber(pts, "x1", g.Points.X1),
			Y1: paywallui.OptNumber(pts, "y1", g.Points.Y1),
		}
	}
	return g, nil
}

func mapImage(m map[string]any, p paywallui.PathRef) (Image, error) {
	if s, ok := m["value"].(string); ok && s != "" {
		data, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return Image{}, paywallui.WithCause(p.Field("value").Fail(paywallui.CodeInvalidShape, nil, "hint", "expected base64 image data"), err)
		}
		return Image{Data: data}, nil
	}
	if u, ok := m["url"].(string); ok && u != "" {
		return Image{URL: u}, nil
	}
	return Image{}, p.Field("value").Fail(paywallui.CodeRequired, nil, "hint", "image needs value or url")
}

func mapFont(m map[string]any, p paywallui.PathRef) (Asset, error) {
	family, err := paywallui.RequireString(m, "family_name", p)
	if err != nil {
		return nil, err
	}
	f := Font{
		Family: family,
		Weight: paywallui.OptInt(m, "weight", 400),
		Italic: paywallui.OptBool(m, "italic", false),
		Size:   paywallui.OptNumber(m, "size", 15),
		Color:  color.NRGBA{A: 0xFF},
	}
	if res, ok := paywallui.List(m["resources"]); ok {
		for _, r := range res {
			if s, ok := r.(string); ok {
				f.Resources = append(f.Resources, s)
			}
		}
	}
	if s, ok := m["color"].(string); ok {
		if c, err := codec.HexColor().Decode(context.Background(), s); err == nil {
			f.Color = c
		}
	}
	return f, nil
}

func requireColor(m map[string]any, key string, p paywallui.PathRef) (color.NRGBA, error) {
	s, err := paywallui.RequireString(m, key, p)
	if err != nil {
		return color.NRGBA{}, err
	}
	c, err := codec.HexColor().Decode(context.Background(), s)
	if err != nil {
		return color.NRGBA{}, paywallui.WithCause(p.Field(key).Fail(paywallui.CodeInvalidShape, nil, "hint", "expected #RRGGBB[AA]"), err)
	}
	return c, nil
}
