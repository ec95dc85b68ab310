package attr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	paywallui "github.com/reoring/paywallui"
)

func TestMapAction_OpenURL(t *testing.T) {
	p := paywallui.Root().Field("action")

	_, err := MapAction(map[string]any{"type": "open_url"}, p)
	iss, ok := paywallui.AsIssues(err)
	require.True(t, ok, "missing url must fail")
	assert.Equal(t, paywallui.CodeRequired, iss[0].Code)
	assert.Equal(t, "url", iss[0].Field())

	a, err := MapAction(map[string]any{"type": "open_url", "url": "https://x"}, p)
	require.NoError(t, err)
	assert.Equal(t, OpenURL{URL: "https://x"}, a)
}

func TestMapAction_Variants(t *testing.T) {
	tests := []struct {
		in   map[string]any
		want Action
	}{
		{map[string]any{"type": "custom", "custom_id": "promo"}, Custom{CustomID: "promo"}},
		{map[string]any{"type": "select_product", "product_id": "p1"}, SelectProduct{ProductID: "p1", GroupID: DefaultGroupID}},
		{map[string]any{"type": "select_product", "product_id": "p1", "group_id": "g2"}, SelectProduct{ProductID: "p1", GroupID: "g2"}},
		{map[string]any{"type": "unselect_product"}, UnselectProduct{GroupID: DefaultGroupID}},
		{map[string]any{"type": "purchase_product", "product_id": "p1"}, PurchaseProduct{ProductID: "p1"}},
		{map[string]any{"type": "purchase_selected_product", "group_id": "g"}, PurchaseSelectedProduct{GroupID: "g"}},
		{map[string]any{"type": "restore"}, Restore{}},
		{map[string]any{"type": "open_screen", "screen_id": "terms"}, OpenScreen{ScreenID: "terms"}},
		{map[string]any{"type": "close_screen"}, CloseScreen{}},
		{map[string]any{"type": "switch", "section_id": "plans", "index": 2.0}, SwitchSection{SectionID: "plans", Index: 2}},
		{map[string]any{"type": "switch", "section_id": "plans"}, SwitchSection{SectionID: "plans"}},
		{map[string]any{"type": "close"}, ClosePaywall{}},
		{map[string]any{"type": "frobnicate"}, UnknownAction{Type: "frobnicate"}},
	}
	for _, tt := range tests {
		t.Run(tt.in["type"].(string), func(t *testing.T) {
			got, err := MapAction(tt.in, paywallui.Root())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapAction_RequiredFields(t *testing.T) {
	tests := []struct {
		in    map[string]any
		field string
		code  string
	}{
		{map[string]any{}, "type", paywallui.CodeRequired},
		{map[string]any{"type": 3.0}, "type", paywallui.CodeInvalidType},
		{map[string]any{"type": "custom"}, "custom_id", paywallui.CodeRequired},
		{map[string]any{"type": "select_product", "product_id": ""}, "product_id", paywallui.CodeEmpty},
		{map[string]any{"type": "open_screen"}, "screen_id", paywallui.CodeRequired},
		{map[string]any{"type": "switch", "index": 1.0}, "section_id", paywallui.CodeRequired},
	}
	for _, tt := range tests {
		_, err := MapAction(tt.in, paywallui.Root())
		iss, ok := paywallui.AsIssues(err)
		require.True(t, ok, "%v", tt.in)
		assert.Equal(t, tt.code, iss[0].Code)
		assert.Equal(t, tt.field, iss[0].Field())
	}
}

func TestMapActions(t *testing.T) {
	p := paywallui.Root().Field("action")

	as, err := MapActions(map[string]any{"type": "restore"}, p)
	require.NoError(t, err)
	assert.Equal(t, []Action{Restore{}}, as)

	as, err = MapActions([]any{
		map[string]any{"type": "select_product", "product_id": "p"},
		map[string]any{"type": "purchase_selected_product"},
	}, p)
	require.NoError(t, err)
	require.Len(t, as, 2)
	assert.Equal(t, "purchase_selected_product", as[1].ActionType())

	_, err = MapActions([]any{map[string]any{"type": "restore"}, map[string]any{"type": "open_url"}}, p)
	iss, _ := paywallui.AsIssues(err)
	require.Len(t, iss, 1)
	assert.Equal(t, "/action/1/url", iss[0].Path)

	as, err = MapActions(nil, p)
	require.NoError(t, err)
	assert.Empty(t, as)
}

func TestMapCondition(t *testing.T) {
	c, err := MapCondition(map[string]any{"type": "selected_section", "section_id": "s", "index": 1.0}, paywallui.Root())
	require.NoError(t, err)
	assert.Equal(t, SelectedSection{SectionID: "s", Index: 1}, c)

	c, err = MapCondition(map[string]any{"type": "selected_product", "product_id": "p"}, paywallui.Root())
	require.NoError(t, err)
	assert.Equal(t, SelectedProduct{ProductID: "p", GroupID: DefaultGroupID}, c)

	c, err = MapCondition(map[string]any{"type": "is_trial"}, paywallui.Root())
	require.NoError(t, err)
	assert.Equal(t, UnknownCondition{Type: "is_trial"}, c)

	_, err = MapCondition(map[string]any{"type": "selected_product"}, paywallui.Root())
	assert.True(t, paywallui.HasCode(err, paywallui.CodeRequired))
}
