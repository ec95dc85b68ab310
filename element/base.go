package element

import (
	paywallui "github.com/reoring/paywallui"
	"github.com/reoring/paywallui/attr"
)

// MapBase extracts the properties shared by every element kind.
func MapBase(m map[string]any, p paywallui.PathRef) (Base, error) {
	base := Base{
		Visible:     paywallui.OptBool(m, "visibility", true),
		Weight:      paywallui.OptNumber(m, "weight", 0),
		Transitions: attr.MapTransitions(m["transition_in"]),
	}
	if raw, ok := m["element_id"]; ok && raw != nil {
		id, ok := raw.(string)
		if !ok {
			return Base{}, p.Field("element_id").Fail(paywallui.CodeInvalidType, raw, "hint", "expected string")
		}
		base.ID = id
	}
	for _, d := range []struct {
		key  string
		axis attr.Axis
		dst  **attr.DimSpec
	}{{"width", attr.AxisX, &base.Width}, {"height", attr.AxisY, &base.Height}} {
		raw, ok := m[d.key]
		if !ok || raw == nil {
			continue
		}
		spec, err := attr.MapDimSpec(raw, d.axis, p.Field(d.key))
		if err != nil {
			return Base{}, err
		}
		*d.dst = &spec
	}
	var err error
	if base.Padding, err = attr.MapEdgeEntities(m["padding"], p.Field("padding")); err != nil {
		return Base{}, err
	}
	if base.Offset, err = attr.MapOffset(m["offset"], p.Field("offset")); err != nil {
		return Base{}, err
	}
	if base.Decorator, err = attr.MapShape(m["decorator"], p.Field("decorator")); err != nil {
		return Base{}, err
	}
	return base, nil
}

func mapAspect(v any) AspectRatio {
	s, _ := v.(string)
	switch s {
	case "fill":
		return AspectFill
	case "stretch":
		return AspectStretch
	}
	return AspectFit
}
