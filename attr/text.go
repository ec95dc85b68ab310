package attr

import (
	paywallui "github.com/reoring/paywallui"
)

// TextAttributes style a text run. Asset references are resolved at render
// time; Font must name a font asset.
type TextAttributes struct {
	FontID     string
	Size       *float64
	Color      *Fill
	Background *Fill
	Tint       *Fill
	Strike     bool
	Underline  bool
}

// MapTextAttributes reads the styling keys of a text element or text item.
func MapTextAttributes(m map[string]any, p paywallui.PathRef) (TextAttributes, error) {
	var (
		ta  TextAttributes
		err error
	)
	if raw, ok := m["font"]; ok && raw != nil {
		s, ok := raw.(string)
		if !ok {
			return TextAttributes{}, p.Field("font").Fail(paywallui.CodeInvalidType, raw, "hint", "expected font asset id")
		}
		ta.FontID = s
	}
	if raw, ok := m["size"]; ok && raw != nil {
		f, err := number(raw, p.Field("size"))
		if err != nil {
			return TextAttributes{}, err
		}
		ta.Size = &f
	}
	if ta.Color, err = optFill(m, "color", p); err != nil {
		return TextAttributes{}, err
	}
	if ta.Background, err = optFill(m, "background", p); err != nil {
		return TextAttributes{}, err
	}
	if ta.Tint, err = optFill(m, "tint", p); err != nil {
		return TextAttributes{}, err
	}
	ta.Strike = paywallui.OptBool(m, "strike", false)
	ta.Underline = paywallui.OptBool(m, "underline", false)
	return ta, nil
}

// StringIDKind distinguishes plain localization keys from product texts.
type StringIDKind int

const (
	StringKey StringIDKind = iota
	StringProduct
)

// StringID addresses a localized string. Product strings are looked up as
// "<product_id>" plus an optional suffix, falling back to the suffix alone.
type StringID struct {
	Kind      StringIDKind
	Key       string
	ProductID string
	Suffix    string
}

// Keys lists the lookup keys in preference order.
func (s StringID) Keys() []string {
	if s.Kind == StringKey {
		return []string{s.Key}
	}
	var out []string
	if s.ProductID != "" {
		k := "PRODUCT_" + s.ProductID
		if s.Suffix != "" {
			k += "_" + s.Suffix
		}
		out = append(out, k)
	}
	if s.Suffix != "" {
		out = append(out, "PRODUCT_"+s.Suffix)
	}
	return out
}

// MapStringID maps a plain key or a {"type": "product"} object.
func MapStringID(v any, p paywallui.PathRef) (StringID, error) {
	switch t := v.(type) {
	case nil:
		return StringID{}, p.Fail(paywallui.CodeRequired, nil)
	case string:
		if t == "" {
			return StringID{}, p.Fail(paywallui.CodeEmpty, nil)
		}
		return StringID{Kind: StringKey, Key: t}, nil
	case map[string]any:
		typ, err := paywallui.RequireString(t, "type", p)
		if err != nil {
			return StringID{}, err
		}
		if typ != "product" {
			return StringID{}, p.Field("type").Fail(paywallui.CodeInvalidShape, typ, "hint", "expected product")
		}
		return StringID{
			Kind:      StringProduct,
			ProductID: paywallui.OptString(t, "product_id", ""),
			Suffix:    paywallui.OptString(t, "suffix", ""),
		}, nil
	}
	return StringID{}, p.Fail(paywallui.CodeInvalidType, v, "hint", "expected string or object")
}

// Overflow is the set of behaviors applied when text does not fit.
type Overflow struct {
	Scale bool
}

// MapOverflow accepts a string or a list of strings; only "scale" is
// recognized.
func MapOverflow(v any) Overflow {
	var o Overflow
	switch t := v.(type) {
	case string:
		o.Scale = t == "scale"
	case []any:
		for _, e := range t {
			if s, _ := e.(string); s == "scale" {
				o.Scale = true
			}
		}
	}
	return o
}
