// Package onboarding implements the message protocol spoken by onboarding
// web content and the view model that fans decoded messages out to a host.
package onboarding

import (
	paywallui "github.com/reoring/paywallui"
)

// Meta identifies the onboarding screen a message originates from.
type Meta struct {
	OnboardingID   string `json:"onboarding_id"`
	ScreenClientID string `json:"screen_cid"`
	ScreenIndex    int    `json:"screen_index"`
	TotalScreens   int    `json:"total_screens"`
}

// OnboardingMeta returns m. Embedding Meta gives every message this method.
func (m Meta) OnboardingMeta() Meta { return m }

// IsLastScreen reports whether the message comes from the final screen.
func (m Meta) IsLastScreen() bool { return m.TotalScreens-m.ScreenIndex == 1 }

// mapMeta parses the meta object; every field is required.
func mapMeta(v any, p paywallui.PathRef) (Meta, error) {
	if v == nil {
		return Meta{}, p.Fail(paywallui.CodeRequired, nil)
	}
	m, ok := paywallui.Object(v)
	if !ok {
		return Meta{}, p.Fail(paywallui.CodeInvalidType, v, "hint", "expected object")
	}
	var (
		meta Meta
		err  error
	)
	if meta.OnboardingID, err = paywallui.RequireString(m, "onboarding_id", p); err != nil {
		return Meta{}, err
	}
	if meta.ScreenClientID, err = paywallui.RequireString(m, "screen_cid", p); err != nil {
		return Meta{}, err
	}
	if meta.ScreenIndex, err = paywallui.RequireInt(m, "screen_index", p); err != nil {
		return Meta{}, err
	}
	if meta.TotalScreens, err = paywallui.RequireInt(m, "total_screens", p); err != nil {
		return Meta{}, err
	}
	return meta, nil
}
