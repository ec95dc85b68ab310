package attr

import (
	paywallui "github.com/reoring/paywallui"
)

// DefaultGroupID is the product group used when an action omits group_id.
const DefaultGroupID = "group_A"

// Action is a closed set of interactive actions. UnknownAction carries types
// this version does not handle.
type Action interface {
	ActionType() string
	action()
}

type (
	OpenURL struct{ URL string }
	Custom  struct{ CustomID string }

	SelectProduct struct {
		ProductID string
		GroupID   string
	}
	UnselectProduct         struct{ GroupID string }
	PurchaseProduct         struct{ ProductID string }
	PurchaseSelectedProduct struct{ GroupID string }
	Restore                 struct{}
	OpenScreen              struct{ ScreenID string }
	CloseScreen             struct{}

	// SwitchSection selects the page Index of the section SectionID.
	SwitchSection struct {
		SectionID string
		Index     int
	}
	ClosePaywall  struct{}
	UnknownAction struct{ Type string }
)

func (OpenURL) ActionType() string                 { return "open_url" }
func (Custom) ActionType() string                  { return "custom" }
func (SelectProduct) ActionType() string           { return "select_product" }
func (UnselectProduct) ActionType() string         { return "unselect_product" }
func (PurchaseProduct) ActionType() string         { return "purchase_product" }
func (PurchaseSelectedProduct) ActionType() string { return "purchase_selected_product" }
func (Restore) ActionType() string                 { return "restore" }
func (OpenScreen) ActionType() string              { return "open_screen" }
func (CloseScreen) ActionType() string             { return "close_screen" }
func (SwitchSection) ActionType() string           { return "switch" }
func (ClosePaywall) ActionType() string            { return "close" }
func (a UnknownAction) ActionType() string         { return a.Type }

func (OpenURL) action()                 {}
func (Custom) action()                  {}
func (SelectProduct) action()           {}
func (UnselectProduct) action()         {}
func (PurchaseProduct) action()         {}
func (PurchaseSelectedProduct) action() {}
func (Restore) action()                 {}
func (OpenScreen) action()              {}
func (CloseScreen) action()             {}
func (SwitchSection) action()           {}
func (ClosePaywall) action()            {}
func (UnknownAction) action()           {}

// MapAction dispatches on "type". Each known type requires its companion
// fields; an unrecognized type yields UnknownAction.
func MapAction(v any, p paywallui.PathRef) (Action, error) {
	m, ok := paywallui.Object(v)
	if !ok {
		return nil, p.Fail(paywallui.CodeInvalidType, v, "hint", "expected action object")
	}
	typ, err := paywallui.RequireString(m, "type", p)
	if err != nil {
		return nil, err
	}
	switch typ {
	case "open_url":
		url, err := paywallui.RequireString(m, "url", p)
		if err != nil {
			return nil, err
		}
		return OpenURL{URL: url}, nil
	case "custom":
		id, err := paywallui.RequireString(m, "custom_id", p)
		if err != nil {
			return nil, err
		}
		return Custom{CustomID: id}, nil
	case "select_product":
		id, err := paywallui.RequireString(m, "product_id", p)
		if err != nil {
			return nil, err
		}
		return SelectProduct{ProductID: id, GroupID: groupID(m)}, nil
	case "unselect_product":
		return UnselectProduct{GroupID: groupID(m)}, nil
	case "purchase_product":
		id, err := paywallui.RequireString(m, "product_id", p)
		if err != nil {
			return nil, err
		}
		return PurchaseProduct{ProductID: id}, nil
	case "purchase_selected_product":
		return PurchaseSelectedProduct{GroupID: groupID(m)}, nil
	case "restore":
		return Restore{}, nil
	case "open_screen":
		id, err := paywallui.RequireString(m, "screen_id", p)
		if err != nil {
			return nil, err
		}
		return OpenScreen{ScreenID: id}, nil
	case "close_screen":
		return CloseScreen{}, nil
	case "switch":
		id, err := paywallui.RequireString(m, "section_id", p)
		if err != nil {
			return nil, err
		}
		return SwitchSection{SectionID: id, Index: paywallui.OptInt(m, "index", 0)}, nil
	case "close":
		return ClosePaywall{}, nil
	}
	return UnknownAction{Type: typ}, nil
}

// MapActions accepts one action object or a list of them.
func MapActions(v any, p paywallui.PathRef) ([]Action, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		a, err := MapAction(t, p)
		if err != nil {
			return nil, err
		}
		return []Action{a}, nil
	case []any:
		out := make([]Action, 0, len(t))
		for i, e := range t {
			a, err := MapAction(e, p.Index(i))
			if err != nil {
				return nil, err
			}
			out = append(out, a)
		}
		return out, nil
	}
	return nil, p.Fail(paywallui.CodeInvalidType, v, "hint", "expected action object or list")
}

// Condition is a closed set of state predicates.
type Condition interface {
	condition()
}

type (
	SelectedSection struct {
		SectionID string
		Index     int
	}
	SelectedProduct struct {
		ProductID string
		GroupID   string
	}
	UnknownCondition struct{ Type string }
)

func (SelectedSection) condition()  {}
func (SelectedProduct) condition()  {}
func (UnknownCondition) condition() {}

// MapCondition mirrors MapAction for conditions.
func MapCondition(v any, p paywallui.PathRef) (Condition, error) {
	m, ok := paywallui.Object(v)
	if !ok {
		return nil, p.Fail(paywallui.CodeInvalidType, v, "hint", "expected condition object")
	}
	typ, err := paywallui.RequireString(m, "type", p)
	if err != nil {
		return nil, err
	}
	switch typ {
	case "selected_section":
		id, err := paywallui.RequireString(m, "section_id", p)
		if err != nil {
			return nil, err
		}
		return SelectedSection{SectionID: id, Index: paywallui.OptInt(m, "index", 0)}, nil
	case "selected_product":
		id, err := paywallui.RequireString(m, "product_id", p)
		if err != nil {
			return nil, err
		}
		return SelectedProduct{ProductID: id, GroupID: groupID(m)}, nil
	}
	return UnknownCondition{Type: typ}, nil
}

func groupID(m map[string]any) string {
	if s := paywallui.OptString(m, "group_id", ""); s != "" {
		return s
	}
	return DefaultGroupID
}
