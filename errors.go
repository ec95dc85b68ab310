package paywallui

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType         = "invalid_type"
	CodeRequired            = "required"
	CodeEmpty               = "empty"
	CodeInvalidShape        = "invalid_shape"
	CodeUnknownElement      = "unknown_element"
	CodeAssetMissing        = "asset_missing"
	CodeDuplicateReference  = "duplicate_reference"
	CodeUnresolvedReference = "unresolved_reference"
	CodeInvalidTransition   = "invalid_transition"
	CodeDuplicateKey        = "duplicate_key"
	CodeTooDeep             = "too_deep"
	CodeParseError          = "parse_error"
	CodeUnsupportedVersion  = "unsupported_version"
	CodeUnknownMessage      = "unknown_message"
)

// Issue represents a single decoding failure.
type Issue struct {
	Path    string // JSON Pointer (for example: /screens/default/content/0/asset_id).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, expected shapes, etc.
	Got     string // Optional: runtime type of the offending value.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"kind":"carousel"})
	// for i18n and observability.
	Params map[string]any
}

// Field returns the last segment of the issue path, i.e. the offending
// attribute name (or list index).
func (it Issue) Field() string {
	if it.Path == "" || it.Path == "/" {
		return ""
	}
	i := strings.LastIndexByte(it.Path, '/')
	seg := it.Path[i+1:]
	return strings.ReplaceAll(strings.ReplaceAll(seg, "~1", "/"), "~0", "~")
}

func (it Issue) Unwrap() error { return it.Cause }

// Issues is a collection of decoding errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. required at /asset_id
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Got != "" {
			fmt.Fprintf(b, " (got %s)", it.Got)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the causes so errors.Is reaches through to them.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// First returns the first issue, or false when empty.
func (iss Issues) First() (Issue, bool) {
	if len(iss) == 0 {
		return Issue{}, false
	}
	return iss[0], true
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// HasCode reports whether err carries an issue with the given code.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// TypeName renders the runtime type of a decoded document value the way it
// appears in issues.
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	}
	if _, ok := Number(v); ok {
		return "number"
	}
	return fmt.Sprintf("%T", v)
}

// WithCause attaches cause to the first issue carried by err.
func WithCause(err, cause error) error {
	iss, ok := AsIssues(err)
	if !ok || len(iss) == 0 {
		return err
	}
	out := append(Issues(nil), iss...)
	out[0].Cause = cause
	return out
}
