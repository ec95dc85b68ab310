package attr

import (
	paywallui "github.com/reoring/paywallui"
)

// Offset translates an element after layout.
type Offset struct {
	X, Y DimUnit
}

// MapOffset maps a number (symmetric), an {x, y} object or a list of one
// (symmetric) or two (x, y) values. Longer lists fail. An all-zero offset
// collapses to nil.
func MapOffset(v any, p paywallui.PathRef) (*Offset, error) {
	if v == nil {
		return nil, nil
	}
	var o Offset
	switch t := v.(type) {
	case map[string]any:
		var err error
		if o.X, err = optDimUnit(t, "x", p); err != nil {
			return nil, err
		}
		if o.Y, err = optDimUnit(t, "y", p); err != nil {
			return nil, err
		}
	case []any:
		if len(t) > 2 {
			return nil, p.Fail(paywallui.CodeInvalidShape, v, "hint", "expected at most 2 values", "len", len(t))
		}
		units := make([]DimUnit, len(t))
		for i, raw := range t {
			f, err := number(raw, p.Index(i))
			if err != nil {
				return nil, err
			}
			units[i] = Exact(f)
		}
		switch len(units) {
		case 1:
			o = Offset{X: units[0], Y: units[0]}
		case 2:
			o = Offset{X: units[0], Y: units[1]}
		}
	default:
		f, ok := paywallui.Number(v)
		if !ok {
			return nil, p.Fail(paywallui.CodeInvalidShape, v, "hint", "expected number, {x, y} or list")
		}
		o = Offset{X: Exact(f), Y: Exact(f)}
	}
	if o.X.IsZero() && o.Y.IsZero() {
		return nil, nil
	}
	return &o, nil
}

func optDimUnit(m map[string]any, key string, p paywallui.PathRef) (DimUnit, error) {
	raw, ok := m[key]
	if !ok || raw == nil {
		return Exact(0), nil
	}
	return MapDimUnit(raw, p.Field(key))
}
