package paywallui

import (
	"bytes"
	"fmt"
	"strconv"
	"sync"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Document is an untyped configuration tree: maps, lists and scalars as
// produced by a wire decoder. Mappers read it and never retain it.
type Document = map[string]any

// DocumentDriver turns raw bytes into an untyped tree via a pluggable SPI. The
// default JSON implementation is backed by goccy/go-json and may be swapped
// with SetJSONDriver.
type DocumentDriver interface {
	Decode(b []byte) (any, error)
	Name() string
}

var (
	jsonDriverMu      sync.RWMutex
	currentJSONDriver DocumentDriver = goJSONDriver{}
)

// SetJSONDriver replaces the global JSON driver; nil values are ignored.
func SetJSONDriver(d DocumentDriver) {
	if d == nil {
		return
	}
	jsonDriverMu.Lock()
	currentJSONDriver = d
	jsonDriverMu.Unlock()
}

// UseDefaultJSONDriver restores the go-json backed driver.
func UseDefaultJSONDriver() {
	jsonDriverMu.Lock()
	currentJSONDriver = goJSONDriver{}
	jsonDriverMu.Unlock()
}

func getJSONDriver() DocumentDriver {
	jsonDriverMu.RLock()
	d := currentJSONDriver
	jsonDriverMu.RUnlock()
	return d
}

type goJSONDriver struct{}

func (goJSONDriver) Decode(b []byte) (any, error) {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func (goJSONDriver) Name() string { return "go-json" }

// YAMLDriver decodes YAML documents with gopkg.in/yaml.v3. Mappings with
// non-string keys have their keys stringified.
type YAMLDriver struct{}

func (YAMLDriver) Decode(b []byte) (any, error) {
	var v any
	dec := yaml.NewDecoder(bytes.NewReader(b))
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return normalizeYAML(v), nil
}

func (YAMLDriver) Name() string { return "yaml.v3" }

func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = normalizeYAML(e)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[fmt.Sprint(k)] = normalizeYAML(e)
		}
		return out
	case []any:
		for i, e := range t {
			t[i] = normalizeYAML(e)
		}
		return t
	}
	return v
}

// ParseJSON decodes a JSON configuration document. Duplicate keys, depth and
// size are enforced according to opt (DefaultOptions when omitted).
func ParseJSON(data []byte, opts ...Options) (Document, error) {
	opt := pickOptions(opts)
	if err := checkSize(data, opt); err != nil {
		return nil, err
	}
	if opt.Strictness.OnDuplicateKey != Ignore {
		iss, err := DetectJSONDuplicateKeysBytes(data, opt.Strictness, -1)
		if err != nil {
			return nil, parseIssue(err)
		}
		if len(iss) > 0 {
			if opt.Strictness.OnDuplicateKey == Error {
				return nil, iss
			}
			if opt.IssueSink != nil {
				for _, it := range iss {
					opt.IssueSink(it)
				}
			}
		}
	}
	return decodeWith(getJSONDriver(), data, opt)
}

// ParseYAML decodes a YAML configuration document. Duplicate keys are always
// rejected by yaml.v3 itself.
func ParseYAML(data []byte, opts ...Options) (Document, error) {
	opt := pickOptions(opts)
	if err := checkSize(data, opt); err != nil {
		return nil, err
	}
	return decodeWith(YAMLDriver{}, data, opt)
}

func decodeWith(d DocumentDriver, data []byte, opt Options) (Document, error) {
	v, err := d.Decode(data)
	if err != nil {
		return nil, parseIssue(err)
	}
	doc, ok := v.(map[string]any)
	if !ok {
		return nil, Root().Fail(CodeInvalidType, v, "hint", "expected object", "driver", d.Name())
	}
	if opt.MaxDepth > 0 {
		if p, deep := tooDeep(doc, Root(), 1, opt.MaxDepth); deep {
			return nil, p.Fail(CodeTooDeep, nil, "max_depth", opt.MaxDepth)
		}
	}
	return doc, nil
}

func checkSize(data []byte, opt Options) error {
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return Root().Fail(CodeParseError, nil, "hint", "document exceeds "+strconv.FormatInt(opt.MaxBytes, 10)+" bytes")
	}
	return nil
}

func parseIssue(err error) error {
	return Issues{{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
}

func tooDeep(v any, p PathRef, depth, limit int) (PathRef, bool) {
	if depth > limit {
		return p, true
	}
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			if q, deep := tooDeep(e, p.Field(k), depth+1, limit); deep {
				return q, true
			}
		}
	case []any:
		for i, e := range t {
			if q, deep := tooDeep(e, p.Index(i), depth+1, limit); deep {
				return q, true
			}
		}
	}
	return nil, false
}
