package element

import (
	"sort"

	paywallui "github.com/reoring/paywallui"
)

// ReferenceBundle is the registry of addressable elements of one
// configuration. It is filled during a mapping pass and read-only afterwards.
type ReferenceBundle struct {
	elements map[string]Element
	sections map[string]*Section
}

// NewReferenceBundle returns an empty bundle.
func NewReferenceBundle() *ReferenceBundle {
	return &ReferenceBundle{
		elements: map[string]Element{},
		sections: map[string]*Section{},
	}
}

// Element returns the element registered under id.
func (rb *ReferenceBundle) Element(id string) (Element, bool) {
	e, ok := rb.elements[id]
	return e, ok
}

// Section returns the section registered under its section id.
func (rb *ReferenceBundle) Section(id string) (*Section, bool) {
	s, ok := rb.sections[id]
	return s, ok
}

// IDs lists the registered element ids in lexical order.
func (rb *ReferenceBundle) IDs() []string {
	out := make([]string, 0, len(rb.elements))
	for id := range rb.elements {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// SectionIDs lists the registered section ids in lexical order.
func (rb *ReferenceBundle) SectionIDs() []string {
	out := make([]string, 0, len(rb.sections))
	for id := range rb.sections {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (rb *ReferenceBundle) register(id string, e Element, p paywallui.PathRef) error {
	if _, dup := rb.elements[id]; dup {
		return p.Fail(paywallui.CodeDuplicateReference, id, "id", id)
	}
	rb.elements[id] = e
	return nil
}

func (rb *ReferenceBundle) registerSection(s *Section, p paywallui.PathRef) error {
	if _, dup := rb.sections[s.SectionID]; dup {
		return p.Fail(paywallui.CodeDuplicateReference, s.SectionID, "id", s.SectionID)
	}
	rb.sections[s.SectionID] = s
	return nil
}
