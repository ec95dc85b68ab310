package onboarding

import (
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	paywallui "github.com/reoring/paywallui"
)

// DecodeError is the unknown top-level message variant: it reports a message
// that could not be decoded. Err is a paywallui.Issues for structural
// failures.
type DecodeError struct {
	Raw string
	Err error
}

func (e *DecodeError) Error() string {
	return "onboarding: cannot decode message: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Deserializer decodes inbound onboarding messages. It holds no state; a
// failed message has no effect on later ones.
type Deserializer struct{}

// Deserialize decodes raw into an Action, an Event or Loaded. Every failure
// is returned as a *DecodeError carrying raw.
func (Deserializer) Deserialize(raw string) (Message, error) {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, &DecodeError{Raw: raw, Err: paywallui.Issues{{
			Path: "/", Code: paywallui.CodeParseError, Message: err.Error(), Cause: err,
		}}}
	}
	msg, err := decode(v, paywallui.Root())
	if err != nil {
		return nil, &DecodeError{Raw: raw, Err: err}
	}
	return msg, nil
}

// Deserialize decodes raw with a zero Deserializer.
func Deserialize(raw string) (Message, error) { return Deserializer{}.Deserialize(raw) }

func decode(v any, p paywallui.PathRef) (Message, error) {
	m, ok := paywallui.Object(v)
	if !ok {
		return nil, p.Fail(paywallui.CodeInvalidType, v, "hint", "expected object")
	}
	typ, err := paywallui.RequireString(m, "type", p)
	if err != nil {
		return nil, err
	}
	switch typ {
	case TypeAnalytics:
		return DecodeEvent(m, p)
	case TypeOnboardingLoaded:
		meta, err := mapMeta(m["meta"], p.Field("meta"))
		if err != nil {
			return nil, err
		}
		return Loaded{Meta: meta}, nil
	case TypeStateUpdated, TypeOpenPaywall, TypeClose, TypeCustom:
		return DecodeAction(m, p)
	}
	return nil, p.Field("type").Fail(paywallui.CodeUnknownMessage, typ, "type", typ)
}

// DecodeAction decodes an action object. Meta and every type-specific field
// are required; nothing is returned on failure.
func DecodeAction(m map[string]any, p paywallui.PathRef) (Action, error) {
	typ, err := paywallui.RequireString(m, "type", p)
	if err != nil {
		return nil, err
	}
	meta, err := mapMeta(m["meta"], p.Field("meta"))
	if err != nil {
		return nil, err
	}
	switch typ {
	case TypeStateUpdated:
		id, err := paywallui.RequireString(m, "element_id", p)
		if err != nil {
			return nil, err
		}
		params, err := decodeStateParams(m, p)
		if err != nil {
			return nil, err
		}
		return StateUpdated{Meta: meta, ElementID: id, Params: params}, nil
	case TypeOpenPaywall, TypeClose, TypeCustom:
		id, err := paywallui.RequireString(m, "action_id", p)
		if err != nil {
			return nil, err
		}
		switch typ {
		case TypeOpenPaywall:
			return OpenPaywall{Meta: meta, ActionID: id}, nil
		case TypeClose:
			return Close{Meta: meta, ActionID: id}, nil
		}
		return Custom{Meta: meta, ActionID: id}, nil
	}
	return nil, p.Field("type").Fail(paywallui.CodeUnknownMessage, typ, "type", typ)
}

func decodeStateParams(m map[string]any, p paywallui.PathRef) (StateParams, error) {
	et, err := paywallui.RequireString(m, "element_type", p)
	if err != nil {
		return nil, err
	}
	vp := p.Field("value")
	switch et {
	case ElementSelect:
		o, err := paywallui.RequireObject(m, "value", p)
		if err != nil {
			return nil, err
		}
		opt, err := decodeOption(o, vp)
		if err != nil {
			return nil, err
		}
		return Select{Value: opt}, nil
	case ElementMultiSelect:
		raw, ok := m["value"]
		if !ok || raw == nil {
			return nil, vp.Fail(paywallui.CodeRequired, nil)
		}
		list, ok := paywallui.List(raw)
		if !ok {
			return nil, vp.Fail(paywallui.CodeInvalidType, raw, "hint", "expected list")
		}
		out := MultiSelect{Values: make([]SelectOption, 0, len(list))}
		for i, e := range list {
			o, ok := paywallui.Object(e)
			if !ok {
				return nil, vp.Index(i).Fail(paywallui.CodeInvalidType, e, "hint", "expected object")
			}
			opt, err := decodeOption(o, vp.Index(i))
			if err != nil {
				return nil, err
			}
			out.Values = append(out.Values, opt)
		}
		return out, nil
	case ElementInput:
		o, err := paywallui.RequireObject(m, "value", p)
		if err != nil {
			return nil, err
		}
		return decodeInput(o, vp)
	case ElementDatePicker:
		var dp DatePicker
		raw, ok := m["value"]
		if !ok || raw == nil {
			return dp, nil
		}
		o, ok := paywallui.Object(raw)
		if !ok {
			return nil, vp.Fail(paywallui.CodeInvalidType, raw, "hint", "expected object")
		}
		for _, c := range []struct {
			key string
			dst **int
		}{{"day", &dp.Day}, {"month", &dp.Month}, {"year", &dp.Year}} {
			v, ok := o[c.key]
			if !ok || v == nil {
				continue
			}
			n, ok := paywallui.Int(v)
			if !ok {
				return nil, vp.Field(c.key).Fail(paywallui.CodeInvalidType, v, "hint", "expected integer")
			}
			*c.dst = &n
		}
		return dp, nil
	}
	return nil, p.Field("element_type").Fail(paywallui.CodeInvalidShape, et, "element_type", et)
}

func decodeOption(o map[string]any, p paywallui.PathRef) (SelectOption, error) {
	var (
		opt SelectOption
		err error
	)
	if opt.ID, err = paywallui.RequireString(o, "id", p); err != nil {
		return SelectOption{}, err
	}
	if opt.Value, err = text(o, "value", p); err != nil {
		return SelectOption{}, err
	}
	if opt.Label, err = text(o, "label", p); err != nil {
		return SelectOption{}, err
	}
	return opt, nil
}

// decodeInput coerces the value to the declared input type. Number inputs
// accept numeric strings.
func decodeInput(o map[string]any, p paywallui.PathRef) (StateParams, error) {
	kind, err := paywallui.RequireString(o, "type", p)
	if err != nil {
		return nil, err
	}
	switch InputKind(kind) {
	case InputText, InputEmail:
		s, err := text(o, "value", p)
		if err != nil {
			return nil, err
		}
		return Input{Kind: InputKind(kind), Text: s}, nil
	case InputNumber:
		raw, ok := o["value"]
		if !ok || raw == nil {
			return nil, p.Field("value").Fail(paywallui.CodeRequired, nil)
		}
		if f, ok := paywallui.Number(raw); ok {
			return Input{Kind: InputNumber, Number: f}, nil
		}
		if s, ok := raw.(string); ok {
			if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
				return Input{Kind: InputNumber, Number: f}, nil
			}
		}
		return nil, p.Field("value").Fail(paywallui.CodeInvalidType, raw, "hint", "expected number")
	}
	return nil, p.Field("type").Fail(paywallui.CodeInvalidShape, kind, "input_type", kind)
}

// DecodeEvent decodes an analytics event. Unknown names yield UnknownEvent.
// An absent meta yields the zero Meta; a present one must be complete.
func DecodeEvent(m map[string]any, p paywallui.PathRef) (Event, error) {
	name, err := paywallui.RequireString(m, "name", p)
	if err != nil {
		return nil, err
	}
	var meta Meta
	if raw, ok := m["meta"]; ok && raw != nil {
		if meta, err = mapMeta(raw, p.Field("meta")); err != nil {
			return nil, err
		}
	}
	switch name {
	case EventOnboardingStarted:
		return OnboardingStarted{meta}, nil
	case EventScreenPresented:
		return ScreenPresented{meta}, nil
	case EventScreenCompleted:
		ev := ScreenCompleted{Meta: meta}
		if params, ok := paywallui.Object(m["params"]); ok {
			ev.ElementID = paywallui.OptString(params, "element_id", "")
			ev.Reply = paywallui.OptString(params, "reply", "")
		}
		return ev, nil
	case EventSecondScreenPresented:
		return SecondScreenPresented{meta}, nil
	case EventRegistrationScreenPresented:
		return RegistrationScreenPresented{meta}, nil
	case EventProductsScreenPresented:
		return ProductsScreenPresented{meta}, nil
	case EventUserEmailCollected:
		return UserEmailCollected{meta}, nil
	case EventOnboardingCompleted:
		return OnboardingCompleted{meta}, nil
	}
	return UnknownEvent{Meta: meta, Name: name}, nil
}

// text is a required string that may be empty.
func text(m map[string]any, key string, p paywallui.PathRef) (string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", p.Field(key).Fail(paywallui.CodeRequired, nil)
	}
	s, ok := v.(string)
	if !ok {
		return "", p.Field(key).Fail(paywallui.CodeInvalidType, v, "hint", "expected string")
	}
	return s, nil
}
