package attr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	paywallui "github.com/reoring/paywallui"
)

func TestMapDimUnit(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want DimUnit
	}{
		{"bare number", 12.0, Exact(12)},
		{"negative", -4.0, Exact(-4)},
		{"safe area start", map[string]any{"safe_area": "start", "point": 3.0}, SafeArea(SafeAreaStart)},
		{"safe area end", map[string]any{"safe_area": "end"}, SafeArea(SafeAreaEnd)},
		{"point wins over screen", map[string]any{"point": 3.0, "screen": 0.5}, Exact(3)},
		{"screen", map[string]any{"screen": 0.25}, ScreenFraction(0.25)},
		{"value with screen unit", map[string]any{"value": 0.5, "unit": "screen"}, ScreenFraction(0.5)},
		{"value with other unit", map[string]any{"value": 7.0, "unit": "point"}, Exact(7)},
		{"unknown safe area falls through", map[string]any{"safe_area": "middle", "value": 2.0}, Exact(2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MapDimUnit(tt.in, paywallui.Root())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapDimUnit_UnrecognizedShape(t *testing.T) {
	_, err := MapDimUnit(map[string]any{"unit": "screen"}, paywallui.Root().Field("width"))
	iss, ok := paywallui.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, paywallui.CodeInvalidShape, iss[0].Code)
	assert.Equal(t, "width", iss[0].Field())
	assert.Equal(t, "object", iss[0].Got)

	_, err = MapDimUnit("wide", paywallui.Root())
	iss, _ = paywallui.AsIssues(err)
	require.Len(t, iss, 1)
	assert.Equal(t, "string", iss[0].Got)
}

func TestMapDimSpec_Priority(t *testing.T) {
	p := paywallui.Root()

	s, err := MapDimSpec(100.0, AxisX, p)
	require.NoError(t, err)
	assert.Equal(t, DimSpec{Kind: SpecSpecified, Axis: AxisX, Value: Exact(100)}, s)

	s, err = MapDimSpec(map[string]any{"fill_max": true, "min": 10.0}, AxisY, p)
	require.NoError(t, err)
	assert.Equal(t, SpecFillMax, s.Kind)
	assert.Equal(t, AxisY, s.Axis)

	s, err = MapDimSpec(map[string]any{"min": 10.0, "shrink": 5.0, "max": 40.0}, AxisY, p)
	require.NoError(t, err)
	assert.Equal(t, SpecMin, s.Kind)
	assert.Equal(t, Exact(10), s.Value)
	require.NotNil(t, s.Max)
	assert.Equal(t, Exact(40), *s.Max)

	s, err = MapDimSpec(map[string]any{"shrink": map[string]any{"screen": 0.5}}, AxisX, p)
	require.NoError(t, err)
	assert.Equal(t, SpecShrink, s.Kind)
	assert.Equal(t, ScreenFraction(0.5), s.Value)
	assert.Nil(t, s.Max)

	s, err = MapDimSpec(map[string]any{"fill_max": false, "value": 3.0}, AxisX, p)
	require.NoError(t, err)
	assert.Equal(t, SpecSpecified, s.Kind)

	_, err = MapDimSpec(map[string]any{"min": "x"}, AxisX, p.Field("height"))
	iss, ok := paywallui.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, "/height/min", iss[0].Path)
}

func TestDimUnit_Resolve(t *testing.T) {
	s := Screen{Width: 400, Height: 800, Insets: Insets{Top: 40, Bottom: 20, Start: 4, End: 6}}
	assert.Equal(t, 12.0, Exact(12).Resolve(AxisY, s))
	assert.Equal(t, 100.0, ScreenFraction(0.25).Resolve(AxisX, s))
	assert.Equal(t, 200.0, ScreenFraction(0.25).Resolve(AxisY, s))
	assert.Equal(t, 40.0, SafeArea(SafeAreaStart).Resolve(AxisY, s))
	assert.Equal(t, 20.0, SafeArea(SafeAreaEnd).Resolve(AxisY, s))
	assert.Equal(t, 4.0, SafeArea(SafeAreaStart).Resolve(AxisX, s))
	assert.Equal(t, 6.0, SafeArea(SafeAreaEnd).Resolve(AxisX, s))
}

func TestMapEdgeEntities(t *testing.T) {
	p := paywallui.Root().Field("padding")

	e, err := MapEdgeEntities(8.0, p)
	require.NoError(t, err)
	assert.Equal(t, Uniform(Exact(8)), *e)

	e, err = MapEdgeEntities(map[string]any{"top": 4.0, "trailing": 2.0}, p)
	require.NoError(t, err)
	assert.Equal(t, EdgeEntities{Start: Exact(0), Top: Exact(4), End: Exact(2), Bottom: Exact(0)}, *e)

	e, err = MapEdgeEntities([]any{1.0, 2.0, 3.0, 4.0}, p)
	require.NoError(t, err)
	assert.Equal(t, EdgeEntities{Start: Exact(1), Top: Exact(2), End: Exact(3), Bottom: Exact(4)}, *e)

	e, err = MapEdgeEntities([]any{0.0, 0.0, 0.0, 0.0}, p)
	require.NoError(t, err)
	assert.Nil(t, e)

	e, err = MapEdgeEntities(map[string]any{}, p)
	require.NoError(t, err)
	assert.Nil(t, e)

	_, err = MapEdgeEntities([]any{1.0, 2.0, 3.0}, p)
	assert.True(t, paywallui.HasCode(err, paywallui.CodeInvalidShape))

	_, err = MapEdgeEntities([]any{1.0, "x"}, p)
	iss, _ := paywallui.AsIssues(err)
	require.Len(t, iss, 1)
	assert.Equal(t, "/padding/1", iss[0].Path)
}

func TestMapOffset(t *testing.T) {
	p := paywallui.Root().Field("offset")

	o, err := MapOffset(5.0, p)
	require.NoError(t, err)
	assert.Equal(t, Offset{X: Exact(5), Y: Exact(5)}, *o)

	o, err = MapOffset(map[string]any{"y": -10.0}, p)
	require.NoError(t, err)
	assert.Equal(t, Offset{X: Exact(0), Y: Exact(-10)}, *o)

	o, err = MapOffset([]any{3.0, 4.0}, p)
	require.NoError(t, err)
	assert.Equal(t, Offset{X: Exact(3), Y: Exact(4)}, *o)

	o, err = MapOffset([]any{}, p)
	require.NoError(t, err)
	assert.Nil(t, o)

	o, err = MapOffset(map[string]any{"x": 0.0, "y": 0.0}, p)
	require.NoError(t, err)
	assert.Nil(t, o)

	_, err = MapOffset([]any{1.0, 2.0, 3.0}, p)
	assert.True(t, paywallui.HasCode(err, paywallui.CodeInvalidShape))
}
