package paywallui

import "math"

// Number reports the float64 value of a decoded numeric scalar. JSON drivers
// produce float64, YAML produces int/float64, and json.Number-like values
// (both encoding/json and go-json) are accepted through their Float64 method.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case interface{ Float64() (float64, error) }:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// maxSafeInt bounds the integers a float64 represents exactly (2^53).
const maxSafeInt = 1 << 53

// Int reports the integer value of a numeric scalar with no fractional part.
// Values outside ±2^53 are rejected rather than wrapped.
func Int(v any) (int, bool) {
	f, ok := Number(v)
	if !ok || f != math.Trunc(f) || f < -maxSafeInt || f > maxSafeInt {
		return 0, false
	}
	return int(f), true
}

// Object asserts a decoded object node.
func Object(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// List asserts a decoded array node.
func List(v any) ([]any, bool) {
	l, ok := v.([]any)
	return l, ok
}

// RequireObject returns m[key] as an object or a required/invalid_type issue.
func RequireObject(m map[string]any, key string, p PathRef) (map[string]any, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, p.Field(key).Fail(CodeRequired, nil)
	}
	o, ok := v.(map[string]any)
	if !ok {
		return nil, p.Field(key).Fail(CodeInvalidType, v, "hint", "expected object")
	}
	return o, nil
}

// RequireString returns a non-empty string at m[key].
func RequireString(m map[string]any, key string, p PathRef) (string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", p.Field(key).Fail(CodeRequired, nil)
	}
	s, ok := v.(string)
	if !ok {
		return "", p.Field(key).Fail(CodeInvalidType, v, "hint", "expected string")
	}
	if s == "" {
		return "", p.Field(key).Fail(CodeEmpty, nil)
	}
	return s, nil
}

// RequireNumber returns the number at m[key].
func RequireNumber(m map[string]any, key string, p PathRef) (float64, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return 0, p.Field(key).Fail(CodeRequired, nil)
	}
	f, ok := Number(v)
	if !ok {
		return 0, p.Field(key).Fail(CodeInvalidType, v, "hint", "expected number")
	}
	return f, nil
}

// RequireInt returns the integer at m[key].
func RequireInt(m map[string]any, key string, p PathRef) (int, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return 0, p.Field(key).Fail(CodeRequired, nil)
	}
	n, ok := Int(v)
	if !ok {
		return 0, p.Field(key).Fail(CodeInvalidType, v, "hint", "expected integer")
	}
	return n, nil
}

// OptString returns m[key] when it is a string, def otherwise.
func OptString(m map[string]any, key, def string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return def
}

// OptNumber returns m[key] when it is numeric, def otherwise.
func OptNumber(m map[string]any, key string, def float64) float64 {
	if f, ok := Number(m[key]); ok {
		return f
	}
	return def
}

// OptInt returns m[key] when it is an integral number, def otherwise.
func OptInt(m map[string]any, key string, def int) int {
	if n, ok := Int(m[key]); ok {
		return n
	}
	return def
}

// OptBool returns m[key] when it is a bool, def otherwise.
func OptBool(m map[string]any, key string, def bool) bool {
	if b, ok := m[key].(bool); ok {
		return b
	}
	return def
}
