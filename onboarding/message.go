package onboarding

// Message is the result of decoding one inbound message: an Action, an Event
// or Loaded.
type Message interface {
	OnboardingMeta() Meta
}

// Action is a user interaction reported by the onboarding content.
type Action interface {
	Message
	ActionType() string
	action()
}

// Action types.
const (
	TypeStateUpdated     = "state_updated"
	TypeOpenPaywall      = "open_paywall"
	TypeClose            = "close"
	TypeCustom           = "custom"
	TypeOnboardingLoaded = "onboarding_loaded"
	TypeAnalytics        = "analytics"
)

// StateUpdated reports a new value of an input element.
type StateUpdated struct {
	Meta      `json:"meta"`
	ElementID string      `json:"element_id"`
	Params    StateParams `json:"params"`
}

type OpenPaywall struct {
	Meta     `json:"meta"`
	ActionID string `json:"action_id"`
}

type Close struct {
	Meta     `json:"meta"`
	ActionID string `json:"action_id"`
}

type Custom struct {
	Meta     `json:"meta"`
	ActionID string `json:"action_id"`
}

func (StateUpdated) ActionType() string { return TypeStateUpdated }
func (OpenPaywall) ActionType() string  { return TypeOpenPaywall }
func (Close) ActionType() string        { return TypeClose }
func (Custom) ActionType() string       { return TypeCustom }

func (StateUpdated) action() {}
func (OpenPaywall) action()  {}
func (Close) action()        {}
func (Custom) action()       {}

// Loaded signals that the onboarding content finished loading.
type Loaded struct {
	Meta `json:"meta"`
}

// StateParams is the element-type specific payload of StateUpdated.
type StateParams interface {
	ElementType() string
	stateParams()
}

// Element types of StateUpdated.
const (
	ElementSelect      = "select"
	ElementMultiSelect = "multi_select"
	ElementInput       = "input"
	ElementDatePicker  = "date_picker"
)

// SelectOption is one choice of a select element.
type SelectOption struct {
	ID    string `json:"id"`
	Value string `json:"value"`
	Label string `json:"label"`
}

type Select struct {
	Value SelectOption `json:"value"`
}

type MultiSelect struct {
	Values []SelectOption `json:"values"`
}

// InputKind is the declared type of an input element.
type InputKind string

const (
	InputText   InputKind = "text"
	InputNumber InputKind = "number"
	InputEmail  InputKind = "email"
)

// Input holds Text for text and email inputs and Number for number inputs.
type Input struct {
	Kind   InputKind `json:"type"`
	Text   string    `json:"text,omitempty"`
	Number float64   `json:"number,omitempty"`
}

// DatePicker components are nil when not picked.
type DatePicker struct {
	Day   *int `json:"day,omitempty"`
	Month *int `json:"month,omitempty"`
	Year  *int `json:"year,omitempty"`
}

func (Select) ElementType() string      { return ElementSelect }
func (MultiSelect) ElementType() string { return ElementMultiSelect }
func (Input) ElementType() string       { return ElementInput }
func (DatePicker) ElementType() string  { return ElementDatePicker }

func (Select) stateParams()      {}
func (MultiSelect) stateParams() {}
func (Input) stateParams()       {}
func (DatePicker) stateParams()  {}

// Event is an analytics event reported by the onboarding content.
type Event interface {
	Message
	EventName() string
	event()
}

// Analytics event names.
const (
	EventOnboardingStarted           = "onboarding_started"
	EventScreenPresented             = "screen_presented"
	EventScreenCompleted             = "screen_completed"
	EventSecondScreenPresented       = "second_screen_presented"
	EventRegistrationScreenPresented = "registration_screen_presented"
	EventProductsScreenPresented     = "products_screen_presented"
	EventUserEmailCollected          = "user_email_collected"
	EventOnboardingCompleted         = "onboarding_completed"
)

type (
	OnboardingStarted struct {
		Meta `json:"meta"`
	}
	ScreenPresented struct {
		Meta `json:"meta"`
	}
	SecondScreenPresented struct {
		Meta `json:"meta"`
	}
	RegistrationScreenPresented struct {
		Meta `json:"meta"`
	}
	ProductsScreenPresented struct {
		Meta `json:"meta"`
	}
	UserEmailCollected struct {
		Meta `json:"meta"`
	}
	OnboardingCompleted struct {
		Meta `json:"meta"`
	}

	// ScreenCompleted optionally names the element that completed the
	// screen and the reply given.
	ScreenCompleted struct {
		Meta      `json:"meta"`
		ElementID string `json:"element_id,omitempty"`
		Reply     string `json:"reply,omitempty"`
	}

	// UnknownEvent carries names this version does not know.
	UnknownEvent struct {
		Meta `json:"meta"`
		Name string `json:"name"`
	}
)

func (OnboardingStarted) EventName() string           { return EventOnboardingStarted }
func (ScreenPresented) EventName() string             { return EventScreenPresented }
func (ScreenCompleted) EventName() string             { return EventScreenCompleted }
func (SecondScreenPresented) EventName() string       { return EventSecondScreenPresented }
func (RegistrationScreenPresented) EventName() string { return EventRegistrationScreenPresented }
func (ProductsScreenPresented) EventName() string     { return EventProductsScreenPresented }
func (UserEmailCollected) EventName() string          { return EventUserEmailCollected }
func (OnboardingCompleted) EventName() string         { return EventOnboardingCompleted }
func (e UnknownEvent) EventName() string              { return e.Name }

func (OnboardingStarted) event()           {}
func (ScreenPresented) event()             {}
func (ScreenCompleted) event()             {}
func (SecondScreenPresented) event()       {}
func (RegistrationScreenPresented) event() {}
func (ProductsScreenPresented) event()     {}
func (UserEmailCollected) event()          {}
func (OnboardingCompleted) event()         {}
func (UnknownEvent) event()                {}
