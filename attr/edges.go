package attr

import (
	paywallui "github.com/reoring/paywallui"
)

// EdgeEntities are insets along the four sides, in layout direction terms.
type EdgeEntities struct {
	Start, Top, End, Bottom DimUnit
}

// Uniform returns the same inset on every side.
func Uniform(u DimUnit) EdgeEntities {
	return EdgeEntities{Start: u, Top: u, End: u, Bottom: u}
}

// IsZero reports whether every side is a zero length.
func (e EdgeEntities) IsZero() bool {
	return e.Start.IsZero() && e.Top.IsZero() && e.End.IsZero() && e.Bottom.IsZero()
}

// MapEdgeEntities maps padding-like values:
//   - number: uniform inset
//   - object: leading/top/trailing/bottom, each defaulting to zero
//   - list of 1: uniform; of 2: (horizontal, vertical); of 4: (start, top, end, bottom)
//
// An all-zero result collapses to nil; callers treat nil as no insets.
func MapEdgeEntities(v any, p paywallui.PathRef) (*EdgeEntities, error) {
	if v == nil {
		return nil, nil
	}
	var e EdgeEntities
	switch t := v.(type) {
	case map[string]any:
		sides := []struct {
			key string
			dst *DimUnit
		}{{"leading", &e.Start}, {"top", &e.Top}, {"trailing", &e.End}, {"bottom", &e.Bottom}}
		for _, s := range sides {
			raw, ok := t[s.key]
			if !ok || raw == nil {
				*s.dst = Exact(0)
				continue
			}
			u, err := MapDimUnit(raw, p.Field(s.key))
			if err != nil {
				return nil, err
			}
			*s.dst = u
		}
	case []any:
		units := make([]DimUnit, len(t))
		for i, raw := range t {
			u, err := MapDimUnit(raw, p.Index(i))
			if err != nil {
				return nil, err
			}
			units[i] = u
		}
		switch len(units) {
		case 1:
			e = Uniform(units[0])
		case 2:
			e = EdgeEntities{Start: units[0], End: units[0], Top: units[1], Bottom: units[1]}
		case 4:
			e = EdgeEntities{Start: units[0], Top: units[1], End: units[2], Bottom: units[3]}
		default:
			return nil, p.Fail(paywallui.CodeInvalidShape, v, "hint", "expected 1, 2 or 4 values", "len", len(units))
		}
	default:
		u, err := MapDimUnit(v, p)
		if err != nil {
			return nil, err
		}
		e = Uniform(u)
	}
	if e.IsZero() {
		return nil, nil
	}
	return &e, nil
}
