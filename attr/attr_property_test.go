package attr

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	paywallui "github.com/reoring/paywallui"
)

func properties(t *testing.T) *gopter.Properties {
	t.Helper()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	return gopter.NewProperties(parameters)
}

func TestDimUnitBareNumberProperty(t *testing.T) {
	props := properties(t)
	props.Property("bare number maps to an exact unit of the same value", prop.ForAll(
		func(n float64) bool {
			u, err := MapDimUnit(n, paywallui.Root())
			return err == nil && u == Exact(n)
		},
		gen.Float64Range(-1e9, 1e9),
	))
	props.Property("integer input from YAML maps the same way", prop.ForAll(
		func(n int) bool {
			u, err := MapDimUnit(n, paywallui.Root())
			return err == nil && u == Exact(float64(n))
		},
		gen.IntRange(-100000, 100000),
	))
	props.TestingRun(t)
}

func TestEdgeEntitiesListProperty(t *testing.T) {
	props := properties(t)
	props.Property("4-list is (start, top, end, bottom), all-zero is nil", prop.ForAll(
		func(a, b, c, d float64) bool {
			e, err := MapEdgeEntities([]any{a, b, c, d}, paywallui.Root())
			if err != nil {
				return false
			}
			if a == 0 && b == 0 && c == 0 && d == 0 {
				return e == nil
			}
			return e != nil && *e == EdgeEntities{Start: Exact(a), Top: Exact(b), End: Exact(c), Bottom: Exact(d)}
		},
		gen.Float64Range(-50, 50),
		gen.Float64Range(-50, 50),
		gen.Float64Range(0, 24),
		gen.Float64Range(-8, 0),
	))
	props.Property("2-list is (horizontal, vertical)", prop.ForAll(
		func(h, v float64) bool {
			e, err := MapEdgeEntities([]any{h, v}, paywallui.Root())
			if err != nil {
				return false
			}
			if h == 0 && v == 0 {
				return e == nil
			}
			return e != nil && e.Start == Exact(h) && e.End == Exact(h) && e.Top == Exact(v) && e.Bottom == Exact(v)
		},
		gen.Float64Range(-50, 50),
		gen.Float64Range(0, 16),
	))
	props.TestingRun(t)
}

func TestCornerRadiusMultiplierProperty(t *testing.T) {
	props := properties(t)
	props.Property("every corner is doubled", prop.ForAll(
		func(r float64) bool {
			c, err := MapCornerRadius(r, paywallui.Root())
			want := r * CornerRadiusMultiplier
			return err == nil && c == CornerRadius{TopLeading: want, TopTrailing: want, BottomTrailing: want, BottomLeading: want}
		},
		gen.Float64Range(0, 1000),
	))
	props.TestingRun(t)
}
