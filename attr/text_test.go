package attr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	paywallui "github.com/reoring/paywallui"
)

func TestMapTextAttributes(t *testing.T) {
	ta, err := MapTextAttributes(map[string]any{
		"font": "body", "size": 17.0, "color": "#111111", "strike": true,
	}, paywallui.Root())
	require.NoError(t, err)
	assert.Equal(t, "body", ta.FontID)
	require.NotNil(t, ta.Size)
	assert.Equal(t, 17.0, *ta.Size)
	assert.Equal(t, &Fill{AssetID: "#111111"}, ta.Color)
	assert.True(t, ta.Strike)
	assert.False(t, ta.Underline)
	assert.Nil(t, ta.Tint)

	_, err = MapTextAttributes(map[string]any{"size": "big"}, paywallui.Root())
	iss, _ := paywallui.AsIssues(err)
	require.Len(t, iss, 1)
	assert.Equal(t, "size", iss[0].Field())
}

func TestMapStringID(t *testing.T) {
	p := paywallui.Root().Field("string_id")

	s, err := MapStringID("title", p)
	require.NoError(t, err)
	assert.Equal(t, []string{"title"}, s.Keys())

	s, err = MapStringID(map[string]any{"type": "product", "product_id": "annual", "suffix": "price"}, p)
	require.NoError(t, err)
	assert.Equal(t, StringProduct, s.Kind)
	assert.Equal(t, []string{"PRODUCT_annual_price", "PRODUCT_price"}, s.Keys())

	_, err = MapStringID("", p)
	assert.True(t, paywallui.HasCode(err, paywallui.CodeEmpty))
	_, err = MapStringID(nil, p)
	assert.True(t, paywallui.HasCode(err, paywallui.CodeRequired))
	_, err = MapStringID(map[string]any{"type": "offer"}, p)
	assert.True(t, paywallui.HasCode(err, paywallui.CodeInvalidShape))
}

func TestMapOverflow(t *testing.T) {
	assert.True(t, MapOverflow("scale").Scale)
	assert.True(t, MapOverflow([]any{"clip", "scale"}).Scale)
	assert.False(t, MapOverflow("clip").Scale)
	assert.False(t, MapOverflow(nil).Scale)
}
