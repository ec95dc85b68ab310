package attr

import (
	"time"

	paywallui "github.com/reoring/paywallui"
)

// DefaultAfterInteractionDelay resumes pager animation after user input.
const DefaultAfterInteractionDelay = 3000 * time.Millisecond

// PageSizeKind selects how a pager page is sized.
type PageSizeKind int

const (
	PageParentFraction PageSizeKind = iota
	PageUnit
)

// PageSize is either a fraction of the pager or an explicit dimension.
type PageSize struct {
	Kind     PageSizeKind
	Fraction float64
	Unit     DimUnit
}

// MapPageSize maps page_width/page_height. Absent means the full parent.
func MapPageSize(v any, p paywallui.PathRef) (PageSize, error) {
	if v == nil {
		return PageSize{Kind: PageParentFraction, Fraction: 1}, nil
	}
	if m, ok := paywallui.Object(v); ok {
		if raw, ok := m["parent"]; ok {
			f, err := number(raw, p.Field("parent"))
			if err != nil {
				return PageSize{}, err
			}
			return PageSize{Kind: PageParentFraction, Fraction: f}, nil
		}
		if raw, ok := m["value"]; ok {
			if _, isObj := raw.(map[string]any); isObj {
				u, err := MapDimUnit(raw, p.Field("value"))
				if err != nil {
					return PageSize{}, err
				}
				return PageSize{Kind: PageUnit, Unit: u}, nil
			}
		}
	}
	u, err := MapDimUnit(v, p)
	if err != nil {
		return PageSize{}, err
	}
	return PageSize{Kind: PageUnit, Unit: u}, nil
}

// PageControlLayout places the dots relative to the pages.
type PageControlLayout int

const (
	PageControlStacked PageControlLayout = iota
	PageControlOverlaid
)

// PageControl is the dot indicator of a pager.
type PageControl struct {
	Layout        PageControlLayout
	VAlign        VerticalAlign
	Padding       EdgeEntities
	DotSize       float64
	Spacing       float64
	Color         *Fill
	SelectedColor *Fill
}

// MapPageControl returns nil when v is absent.
func MapPageControl(v any, p paywallui.PathRef) (*PageControl, error) {
	if v == nil {
		return nil, nil
	}
	m, ok := paywallui.Object(v)
	if !ok {
		return nil, p.Fail(paywallui.CodeInvalidType, v, "hint", "expected object")
	}
	pc := &PageControl{
		Layout:  PageControlStacked,
		VAlign:  VAlignBottom,
		Padding: Uniform(Exact(6)),
	}
	if paywallui.OptString(m, "layout", "") == "overlaid" {
		pc.Layout = PageControlOverlaid
	}
	if raw, ok := m["v_align"]; ok {
		pc.VAlign = MapVerticalAlign(raw)
	}
	if raw, ok := m["padding"]; ok && raw != nil {
		e, err := MapEdgeEntities(raw, p.Field("padding"))
		if err != nil {
			return nil, err
		}
		pc.Padding = EdgeEntities{}
		if e != nil {
			pc.Padding = *e
		}
	}
	var err error
	if pc.DotSize, err = optNumber(m, "dot_size", 6, p); err != nil {
		return nil, err
	}
	if pc.Spacing, err = optNumber(m, "spacing", 6, p); err != nil {
		return nil, err
	}
	if pc.Color, err = optFill(m, "color", p); err != nil {
		return nil, err
	}
	if pc.SelectedColor, err = optFill(m, "selected_color", p); err != nil {
		return nil, err
	}
	return pc, nil
}

// PagerAnimation auto-advances pages.
type PagerAnimation struct {
	StartDelay            time.Duration
	PageTransition        Transition
	RepeatTransition      *Transition
	AfterInteractionDelay time.Duration
}

// MapPagerAnimation requires page_transition to be a slide transition; a fade
// or a missing transition fails with invalid_transition. repeat_transition is
// optional but follows the same rule when present.
func MapPagerAnimation(v any, p paywallui.PathRef) (*PagerAnimation, error) {
	if v == nil {
		return nil, nil
	}
	m, ok := paywallui.Object(v)
	if !ok {
		return nil, p.Fail(paywallui.CodeInvalidType, v, "hint", "expected object")
	}
	page, err := slideTransition(m["page_transition"], p.Field("page_transition"))
	if err != nil {
		return nil, err
	}
	a := &PagerAnimation{
		StartDelay:            optMillis(m, "start_delay", 0),
		PageTransition:        *page,
		AfterInteractionDelay: optMillis(m, "after_interaction_delay", DefaultAfterInteractionDelay),
	}
	if raw, ok := m["repeat_transition"]; ok && raw != nil {
		if a.RepeatTransition, err = slideTransition(raw, p.Field("repeat_transition")); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func slideTransition(v any, p paywallui.PathRef) (*Transition, error) {
	t := MapTransition(v)
	if t == nil || t.Kind != TransitionSlide {
		return nil, p.Fail(paywallui.CodeInvalidTransition, v, "hint", "expected a slide transition")
	}
	return t, nil
}

// InteractionBehavior decides what user input does to a running animation.
type InteractionBehavior int

const (
	InteractionPauseAnimation InteractionBehavior = iota
	InteractionNone
	InteractionCancelAnimation
)

// MapInteractionBehavior never fails; pause_animation is the default.
func MapInteractionBehavior(v any) InteractionBehavior {
	s, _ := v.(string)
	switch s {
	case "none":
		return InteractionNone
	case "cancel_animation":
		return InteractionCancelAnimation
	}
	return InteractionPauseAnimation
}
