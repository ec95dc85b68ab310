package attr

import (
	paywallui "github.com/reoring/paywallui"
)

// Axis qualifies a dimension for render-time resolution.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// DimUnitKind enumerates DimUnit variants.
type DimUnitKind int

const (
	UnitExact DimUnitKind = iota
	UnitScreen
	UnitSafeArea
)

// SafeAreaSide selects the leading or trailing safe-area inset of an axis.
type SafeAreaSide int

const (
	SafeAreaStart SafeAreaSide = iota
	SafeAreaEnd
)

// DimUnit is a length that is only made concrete at render time.
type DimUnit struct {
	Kind  DimUnitKind
	Value float64 // points for UnitExact, fraction for UnitScreen
	Side  SafeAreaSide
}

func Exact(v float64) DimUnit          { return DimUnit{Kind: UnitExact, Value: v} }
func ScreenFraction(v float64) DimUnit { return DimUnit{Kind: UnitScreen, Value: v} }
func SafeArea(side SafeAreaSide) DimUnit {
	return DimUnit{Kind: UnitSafeArea, Side: side}
}

// IsZero reports a zero exact or screen-fraction length. Safe-area units are
// never zero at mapping time.
func (u DimUnit) IsZero() bool {
	return u.Kind != UnitSafeArea && u.Value == 0
}

// Insets are the safe-area insets of the screen.
type Insets struct {
	Top, Bottom, Start, End float64
}

// Screen carries the metrics dimensions resolve against.
type Screen struct {
	Width, Height float64
	Insets        Insets
}

// Resolve turns u into a concrete length along axis.
func (u DimUnit) Resolve(axis Axis, s Screen) float64 {
	switch u.Kind {
	case UnitScreen:
		if axis == AxisX {
			return u.Value * s.Width
		}
		return u.Value * s.Height
	case UnitSafeArea:
		switch {
		case axis == AxisX && u.Side == SafeAreaStart:
			return s.Insets.Start
		case axis == AxisX:
			return s.Insets.End
		case u.Side == SafeAreaStart:
			return s.Insets.Top
		default:
			return s.Insets.Bottom
		}
	}
	return u.Value
}

// MapDimUnit accepts a bare number (exact) or an object resolved in order:
// safe_area ("start"/"end"), point, screen, then value+unit where
// unit "screen" selects a screen fraction and anything else is exact.
func MapDimUnit(v any, p paywallui.PathRef) (DimUnit, error) {
	if f, ok := paywallui.Number(v); ok {
		return Exact(f), nil
	}
	m, ok := paywallui.Object(v)
	if !ok {
		return DimUnit{}, p.Fail(paywallui.CodeInvalidShape, v, "hint", "expected number or dimension object")
	}
	switch paywallui.OptString(m, "safe_area", "") {
	case "start":
		return SafeArea(SafeAreaStart), nil
	case "end":
		return SafeArea(SafeAreaEnd), nil
	}
	if f, ok := paywallui.Number(m["point"]); ok {
		return Exact(f), nil
	}
	if f, ok := paywallui.Number(m["screen"]); ok {
		return ScreenFraction(f), nil
	}
	if f, ok := paywallui.Number(m["value"]); ok {
		if paywallui.OptString(m, "unit", "") == "screen" {
			return ScreenFraction(f), nil
		}
		return Exact(f), nil
	}
	return DimUnit{}, p.Fail(paywallui.CodeInvalidShape, v, "hint", "expected one of safe_area, point, screen, value")
}

// DimSpecKind enumerates DimSpec variants.
type DimSpecKind int

const (
	SpecSpecified DimSpecKind = iota
	SpecFillMax
	SpecMin
	SpecShrink
)

// DimSpec is a width or height constraint.
type DimSpec struct {
	Kind  DimSpecKind
	Axis  Axis
	Value DimUnit  // the specified, min or shrink length
	Max   *DimUnit // optional cap for SpecMin and SpecShrink
}

// MapDimSpec maps a width/height value. Non-objects are Specified. Objects
// resolve in order: fill_max true, min, shrink, otherwise Specified. The axis
// is carried along and never changes that order.
func MapDimSpec(v any, axis Axis, p paywallui.PathRef) (DimSpec, error) {
	m, ok := paywallui.Object(v)
	if !ok {
		u, err := MapDimUnit(v, p)
		if err != nil {
			return DimSpec{}, err
		}
		return DimSpec{Kind: SpecSpecified, Axis: axis, Value: u}, nil
	}
	if paywallui.OptBool(m, "fill_max", false) {
		return DimSpec{Kind: SpecFillMax, Axis: axis}, nil
	}
	for _, k := range []struct {
		key  string
		kind DimSpecKind
	}{{"min", SpecMin}, {"shrink", SpecShrink}} {
		raw, ok := m[k.key]
		if !ok {
			continue
		}
		u, err := MapDimUnit(raw, p.Field(k.key))
		if err != nil {
			return DimSpec{}, err
		}
		spec := DimSpec{Kind: k.kind, Axis: axis, Value: u}
		if mx, ok := m["max"]; ok && mx != nil {
			mu, err := MapDimUnit(mx, p.Field("max"))
			if err != nil {
				return DimSpec{}, err
			}
			spec.Max = &mu
		}
		return spec, nil
	}
	u, err := MapDimUnit(m, p)
	if err != nil {
		return DimSpec{}, err
	}
	return DimSpec{Kind: SpecSpecified, Axis: axis, Value: u}, nil
}

// number reads a structural numeric value, failing with the runtime type.
func number(v any, p paywallui.PathRef) (float64, error) {
	f, ok := paywallui.Number(v)
	if !ok {
		return 0, p.Fail(paywallui.CodeInvalidType, v, "hint", "expected number")
	}
	return f, nil
}

// optNumber is number with a default for absent keys.
func optNumber(m map[string]any, key string, def float64, p paywallui.PathRef) (float64, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return def, nil
	}
	return number(v, p.Field(key))
}
