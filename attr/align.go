package attr

// HorizontalAlign positions content along the X axis. Center is the zero
// value and the fallback for unknown input.
type HorizontalAlign int

const (
	HAlignCenter HorizontalAlign = iota
	HAlignStart
	HAlignEnd
	HAlignLeft
	HAlignRight
	HAlignJustified
)

// VerticalAlign positions content along the Y axis.
type VerticalAlign int

const (
	VAlignCenter VerticalAlign = iota
	VAlignTop
	VAlignBottom
)

// Align combines both axes.
type Align struct {
	Horizontal HorizontalAlign
	Vertical   VerticalAlign
}

// MapHorizontalAlign never fails.
func MapHorizontalAlign(v any) HorizontalAlign {
	s, _ := v.(string)
	switch s {
	case "leading", "start":
		return HAlignStart
	case "trailing", "end":
		return HAlignEnd
	case "left":
		return HAlignLeft
	case "right":
		return HAlignRight
	case "justified":
		return HAlignJustified
	}
	return HAlignCenter
}

// MapVerticalAlign never fails.
func MapVerticalAlign(v any) VerticalAlign {
	s, _ := v.(string)
	switch s {
	case "top":
		return VAlignTop
	case "bottom":
		return VAlignBottom
	}
	return VAlignCenter
}

// MapAlign reads h_align and v_align from an element object.
func MapAlign(m map[string]any) Align {
	return Align{
		Horizontal: MapHorizontalAlign(m["h_align"]),
		Vertical:   MapVerticalAlign(m["v_align"]),
	}
}

// Resolve flips start and end for right-to-left layouts.
func (a HorizontalAlign) Resolve(rtl bool) HorizontalAlign {
	if !rtl {
		return a
	}
	switch a {
	case HAlignStart:
		return HAlignEnd
	case HAlignEnd:
		return HAlignStart
	}
	return a
}
