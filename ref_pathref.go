package paywallui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/reoring/paywallui/i18n"
)

// PathRef builds JSON Pointer paths in a chain-safe way and creates Issues.
type PathRef interface {
	Field(name string) PathRef
	Index(i int) PathRef
	Pointer() string
	Issue(code, msg string, kv ...any) Issue
	// Fail wraps a single issue as an error (fail-fast decoding).
	Fail(code string, got any, kv ...any) error
}

// Root returns the document root path.
func Root() PathRef { return &pathRef{parts: nil} }

// At parses a JSON Pointer into a PathRef.
func At(path string) PathRef {
	if path == "" || path == "/" {
		return Root()
	}
	// naive split on '/', ignoring first empty due to leading '/'
	parts := []string{}
	for _, p := range strings.Split(path, "/") {
		if p == "" {
			continue
		}
		parts = append(parts, p)
	}
	return &pathRef{parts: parts}
}

type pathRef struct {
	parts []string
}

func (p *pathRef) Field(name string) PathRef {
	if name == "" {
		return p
	}
	// escape '~' -> '~0', '/' -> '~1' per RFC6901
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return &pathRef{parts: append(append([]string{}, p.parts...), esc)}
}

func (p *pathRef) Index(i int) PathRef {
	return &pathRef{parts: append(append([]string{}, p.parts...), strconv.Itoa(i))}
}

func (p *pathRef) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

func (p *pathRef) Issue(code, msg string, kv ...any) Issue {
	m := map[string]any{}
	for i := 0; i+1 < len(kv); i += 2 {
		m[fmt.Sprint(kv[i])] = kv[i+1]
	}
	if msg == "" {
		msg = i18n.T(code, nil)
	}
	return Issue{Path: p.Pointer(), Code: code, Message: msg, Params: m}
}

func (p *pathRef) Fail(code string, got any, kv ...any) error {
	it := p.Issue(code, "", kv...)
	if got != nil || code == CodeInvalidType {
		it.Got = TypeName(got)
	}
	if h, ok := it.Params["hint"].(string); ok {
		it.Hint = h
		delete(it.Params, "hint")
	}
	return Issues{it}
}
