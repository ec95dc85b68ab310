package attr

import (
	"context"
	"time"

	paywallui "github.com/reoring/paywallui"
	"github.com/reoring/paywallui/codec"
)

// DefaultTransitionDuration applies when a transition omits duration.
const DefaultTransitionDuration = 300 * time.Millisecond

// TransitionKind enumerates supported transitions.
type TransitionKind int

const (
	TransitionFade TransitionKind = iota
	TransitionSlide
)

func (k TransitionKind) String() string {
	if k == TransitionSlide {
		return "slide"
	}
	return "fade"
}

// Interpolator names an easing curve.
type Interpolator int

const (
	EaseInOut Interpolator = iota
	EaseIn
	EaseOut
	Linear
)

// Transition animates an element in.
type Transition struct {
	Kind         TransitionKind
	StartDelay   time.Duration
	Duration     time.Duration
	Interpolator Interpolator
}

// MapTransition returns nil for anything but a slide or fade object. Timing
// and interpolator fields fall back to their defaults.
func MapTransition(v any) *Transition {
	m, ok := paywallui.Object(v)
	if !ok {
		return nil
	}
	var kind TransitionKind
	switch paywallui.OptString(m, "type", "") {
	case "fade":
		kind = TransitionFade
	case "slide":
		kind = TransitionSlide
	default:
		return nil
	}
	return &Transition{
		Kind:         kind,
		StartDelay:   optMillis(m, "start_delay", 0),
		Duration:     optMillis(m, "duration", DefaultTransitionDuration),
		Interpolator: mapInterpolator(m["interpolator"]),
	}
}

// MapTransitions accepts a single transition object or a list of them.
// Entries that are not transitions are dropped.
func MapTransitions(v any) []Transition {
	var raw []any
	switch t := v.(type) {
	case []any:
		raw = t
	case map[string]any:
		raw = []any{t}
	default:
		return nil
	}
	var out []Transition
	for _, e := range raw {
		if tr := MapTransition(e); tr != nil {
			out = append(out, *tr)
		}
	}
	return out
}

func mapInterpolator(v any) Interpolator {
	s, _ := v.(string)
	switch s {
	case "ease_in":
		return EaseIn
	case "ease_out":
		return EaseOut
	case "linear":
		return Linear
	}
	return EaseInOut
}

// optMillis reads a millisecond count, falling back to def when the value is
// absent, not a number or negative.
func optMillis(m map[string]any, key string, def time.Duration) time.Duration {
	f, ok := paywallui.Number(m[key])
	if !ok {
		return def
	}
	d, err := codec.Millis().Decode(context.Background(), f)
	if err != nil {
		return def
	}
	return d
}
