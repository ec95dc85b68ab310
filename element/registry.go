package element

import (
	"sort"
	"sync"

	paywallui "github.com/reoring/paywallui"
)

// Mapper maps one element object of a given kind. Implementations read the
// kind-specific keys, call MapBase for shared properties and recurse through
// the Builder for children.
type Mapper interface {
	MapElement(b *Builder, m map[string]any, p paywallui.PathRef) (Element, error)
}

// MapperFunc adapts a function to Mapper.
type MapperFunc func(b *Builder, m map[string]any, p paywallui.PathRef) (Element, error)

func (f MapperFunc) MapElement(b *Builder, m map[string]any, p paywallui.PathRef) (Element, error) {
	return f(b, m, p)
}

// Registry dispatches on the "type" discriminant.
type Registry struct {
	mu      sync.RWMutex
	mappers map[string]Mapper
}

// NewRegistry returns a registry holding every built-in kind.
func NewRegistry() *Registry {
	r := &Registry{mappers: map[string]Mapper{}}
	r.Register(KindBox, MapperFunc(mapBox))
	r.Register(KindVStack, stackMapper(StackVertical))
	r.Register(KindHStack, stackMapper(StackHorizontal))
	r.Register(KindZStack, stackMapper(StackZ))
	r.Register(KindText, MapperFunc(mapText))
	r.Register(KindImage, MapperFunc(mapImage))
	r.Register(KindVideo, MapperFunc(mapVideo))
	r.Register(KindButton, MapperFunc(mapButton))
	r.Register(KindPager, MapperFunc(mapPager))
	r.Register(KindSpace, MapperFunc(mapSpace))
	r.Register(KindSection, MapperFunc(mapSection))
	r.Register(KindToggle, MapperFunc(mapToggle))
	r.Register(KindTimer, MapperFunc(mapTimer))
	r.Register(KindIf, MapperFunc(mapIf))
	r.Register(KindReference, MapperFunc(mapReference))
	return r
}

// Register installs or replaces the mapper for kind.
func (r *Registry) Register(kind string, m Mapper) {
	r.mu.Lock()
	r.mappers[kind] = m
	r.mu.Unlock()
}

// Lookup returns the mapper for kind.
func (r *Registry) Lookup(kind string) (Mapper, bool) {
	r.mu.RLock()
	m, ok := r.mappers[kind]
	r.mu.RUnlock()
	return m, ok
}

// Kinds lists the registered kinds in lexical order.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.mappers))
	for k := range r.mappers {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *Registry
)

// DefaultRegistry is shared by builders created without an explicit
// registry.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() { defaultRegistry = NewRegistry() })
	return defaultRegistry
}
