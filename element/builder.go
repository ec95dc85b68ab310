package element

import (
	"fmt"

	paywallui "github.com/reoring/paywallui"
	"github.com/reoring/paywallui/asset"
	"github.com/reoring/paywallui/logging"
)

// DefaultPlatform is compared against the platform of "if" elements.
const DefaultPlatform = "android"

// Options configure a Builder.
type Options struct {
	Platform string
	Registry *Registry
	Logger   logging.Logger
}

// Builder threads the asset table and reference bundle through one
// recursive-descent mapping pass. It is not safe for concurrent use.
type Builder struct {
	assets   *asset.Table
	refs     *ReferenceBundle
	registry *Registry
	platform string
	log      logging.Logger
	pending  []pendingRef
	count    int
}

type pendingRef struct {
	ref  *Reference
	path paywallui.PathRef
}

// NewBuilder returns a builder over assets. A nil refs starts a new bundle.
func NewBuilder(assets *asset.Table, refs *ReferenceBundle, opt Options) *Builder {
	if assets == nil {
		assets = asset.NewTable()
	}
	if refs == nil {
		refs = NewReferenceBundle()
	}
	if opt.Registry == nil {
		opt.Registry = DefaultRegistry()
	}
	if opt.Platform == "" {
		opt.Platform = DefaultPlatform
	}
	return &Builder{
		assets:   assets,
		refs:     refs,
		registry: opt.Registry,
		platform: opt.Platform,
		log:      logging.OrNop(opt.Logger),
	}
}

// Assets returns the table asset ids are checked against.
func (b *Builder) Assets() *asset.Table { return b.assets }

// References returns the bundle elements register into.
func (b *Builder) References() *ReferenceBundle { return b.refs }

// Platform returns the platform "if" elements are evaluated for.
func (b *Builder) Platform() string { return b.platform }

// Count returns the number of elements mapped so far.
func (b *Builder) Count() int { return b.count }

// Element maps one element object, dispatching on its "type". Elements with
// an element_id register into the reference bundle.
func (b *Builder) Element(v any, p paywallui.PathRef) (Element, error) {
	m, ok := paywallui.Object(v)
	if !ok {
		if v == nil {
			return nil, p.Fail(paywallui.CodeRequired, nil)
		}
		return nil, p.Fail(paywallui.CodeInvalidType, v, "hint", "expected element object")
	}
	kind, err := paywallui.RequireString(m, "type", p)
	if err != nil {
		return nil, err
	}
	mapper, ok := b.registry.Lookup(kind)
	if !ok {
		b.log.Debug("unknown element kind", logging.Fields{"kind": kind, "path": p.Pointer()})
		return nil, p.Field("type").Fail(paywallui.CodeUnknownElement, nil,
			"kind", kind, "hint", fmt.Sprintf("unknown element kind %q", kind))
	}
	e, err := mapper.MapElement(b, m, p)
	if err != nil {
		return nil, err
	}
	b.count++
	switch kind {
	case KindIf, KindReference:
		// the chosen branch registered itself; references address others
	default:
		if id := e.Props().ID; id != "" {
			if err := b.refs.register(id, e, p.Field("element_id")); err != nil {
				return nil, err
			}
		}
	}
	return e, nil
}

// Elements maps a list of element objects. A single object is accepted as a
// list of one; nil yields no elements.
func (b *Builder) Elements(v any, p paywallui.PathRef) ([]Element, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		e, err := b.Element(t, p)
		if err != nil {
			return nil, err
		}
		return []Element{e}, nil
	case []any:
		out := make([]Element, 0, len(t))
		for i, raw := range t {
			e, err := b.Element(raw, p.Index(i))
			if err != nil {
				return nil, err
			}
			out = append(out, e)
		}
		return out, nil
	}
	return nil, p.Fail(paywallui.CodeInvalidType, v, "hint", "expected element list")
}

// Finish resolves reference elements against the bundle. Call it once after
// every tree sharing the bundle has been mapped.
func (b *Builder) Finish() error {
	for _, pr := range b.pending {
		target, ok := b.refs.Element(pr.ref.TargetID)
		if !ok {
			return pr.path.Field("element_id").Fail(paywallui.CodeUnresolvedReference, pr.ref.TargetID,
				"id", pr.ref.TargetID)
		}
		pr.ref.Target = target
	}
	b.log.Debug("element trees mapped", logging.Fields{
		"elements":   b.count,
		"references": len(b.pending),
	})
	b.pending = nil
	return nil
}

// RequireAsset reads a non-empty asset id at m[key] and checks that the
// asset table has it with a variant of kind.
func (b *Builder) RequireAsset(m map[string]any, key string, kind asset.Kind, p paywallui.PathRef) (string, error) {
	id, err := paywallui.RequireString(m, key, p)
	if err != nil {
		return "", err
	}
	if !b.assets.Has(id) {
		return "", p.Field(key).Fail(paywallui.CodeAssetMissing, nil, "asset_id", id,
			"hint", fmt.Sprintf("asset %q is not in the asset table", id))
	}
	if !b.assets.HasKind(id, kind) {
		return "", p.Field(key).Fail(paywallui.CodeAssetMissing, nil, "asset_id", id, "kind", string(kind),
			"hint", fmt.Sprintf("asset %q is not a %s", id, kind))
	}
	return id, nil
}

// Map builds a single element tree with its own reference bundle.
func Map(v any, assets *asset.Table, opt Options) (Element, *ReferenceBundle, error) {
	b := NewBuilder(assets, nil, opt)
	e, err := b.Element(v, paywallui.Root())
	if err != nil {
		return nil, nil, err
	}
	if err := b.Finish(); err != nil {
		return nil, nil, err
	}
	return e, b.References(), nil
}
