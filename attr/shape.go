package attr

import (
	paywallui "github.com/reoring/paywallui"
)

const (
	// CornerRadiusMultiplier converts configured corner radii into stored
	// values.
	CornerRadiusMultiplier = 2
	// DefaultArcHeight is the arc height of curve_up/curve_down shapes.
	DefaultArcHeight = 32.0
	// DefaultBorderThickness applies when a border color has no thickness.
	DefaultBorderThickness = 1.0
)

// Fill references an asset (color, gradient, image) or an inline
// "#RRGGBB[AA]" literal; it is resolved at render time.
type Fill struct {
	AssetID string
}

// ShapeKind enumerates shape types.
type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeCircle
	ShapeRectWithArc
)

// CornerRadius stores per-corner radii, already multiplied.
type CornerRadius struct {
	TopLeading, TopTrailing, BottomTrailing, BottomLeading float64
}

// ShapeType is the geometric part of a shape.
type ShapeType struct {
	Kind         ShapeKind
	CornerRadius *CornerRadius // ShapeRect only
	ArcHeight    float64       // ShapeRectWithArc only; negative curves down
}

// Border follows the geometry of the shape it belongs to.
type Border struct {
	Color     Fill
	Thickness float64
	Type      ShapeType
}

// Shape is an element decorator.
type Shape struct {
	Fill   *Fill
	Type   ShapeType
	Border *Border
}

// MapShape maps a decorator. A string is shorthand for
// {"background": s, "type": "rect"}. The shape type is resolved first, then
// fill and border independently; a border thickness of 0 means no border.
func MapShape(v any, p paywallui.PathRef) (*Shape, error) {
	if v == nil {
		return nil, nil
	}
	var m map[string]any
	switch t := v.(type) {
	case string:
		m = map[string]any{"background": t, "type": "rect"}
	case map[string]any:
		m = t
	default:
		return nil, p.Fail(paywallui.CodeInvalidShape, v, "hint", "expected string or object")
	}

	var st ShapeType
	switch paywallui.OptString(m, "type", "rect") {
	case "circle":
		st = ShapeType{Kind: ShapeCircle}
	case "curve_up":
		st = ShapeType{Kind: ShapeRectWithArc, ArcHeight: DefaultArcHeight}
	case "curve_down":
		st = ShapeType{Kind: ShapeRectWithArc, ArcHeight: -DefaultArcHeight}
	default:
		st = ShapeType{Kind: ShapeRect}
		if raw, ok := m["rect_corner_radius"]; ok && raw != nil {
			cr, err := MapCornerRadius(raw, p.Field("rect_corner_radius"))
			if err != nil {
				return nil, err
			}
			st.CornerRadius = &cr
		}
	}

	s := &Shape{Type: st}
	fill, err := optFill(m, "background", p)
	if err != nil {
		return nil, err
	}
	s.Fill = fill

	border, err := optFill(m, "border", p)
	if err != nil {
		return nil, err
	}
	if border != nil {
		thickness, err := optNumber(m, "thickness", DefaultBorderThickness, p)
		if err != nil {
			return nil, err
		}
		if thickness != 0 {
			s.Border = &Border{Color: *border, Thickness: thickness, Type: st}
		}
	}
	return s, nil
}

// MapCornerRadius maps a number (uniform), an object of the four named
// corners or a positional list. Values are multiplied by
// CornerRadiusMultiplier before storage.
func MapCornerRadius(v any, p paywallui.PathRef) (CornerRadius, error) {
	var c [4]float64
	switch t := v.(type) {
	case map[string]any:
		for i, key := range []string{"top_leading", "top_trailing", "bottom_trailing", "bottom_leading"} {
			f, err := optNumber(t, key, 0, p)
			if err != nil {
				return CornerRadius{}, err
			}
			c[i] = f
		}
	case []any:
		if len(t) == 1 {
			f, err := number(t[0], p.Index(0))
			if err != nil {
				return CornerRadius{}, err
			}
			c = [4]float64{f, f, f, f}
			break
		}
		for i := 0; i < len(t) && i < 4; i++ {
			f, err := number(t[i], p.Index(i))
			if err != nil {
				return CornerRadius{}, err
			}
			c[i] = f
		}
	default:
		f, ok := paywallui.Number(v)
		if !ok {
			return CornerRadius{}, p.Fail(paywallui.CodeInvalidShape, v, "hint", "expected number, object or list")
		}
		c = [4]float64{f, f, f, f}
	}
	return CornerRadius{
		TopLeading:     c[0] * CornerRadiusMultiplier,
		TopTrailing:    c[1] * CornerRadiusMultiplier,
		BottomTrailing: c[2] * CornerRadiusMultiplier,
		BottomLeading:  c[3] * CornerRadiusMultiplier,
	}, nil
}

// MapFill maps an optional asset reference.
func MapFill(v any, p paywallui.PathRef) (*Fill, error) {
	if v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, p.Fail(paywallui.CodeInvalidType, v, "hint", "expected asset id")
	}
	if s == "" {
		return nil, nil
	}
	return &Fill{AssetID: s}, nil
}

func optFill(m map[string]any, key string, p paywallui.PathRef) (*Fill, error) {
	return MapFill(m[key], p.Field(key))
}
