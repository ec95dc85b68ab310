// Package element maps view-configuration nodes into immutable element
// descriptors.
//
// Every descriptor embeds Base, which holds the layout and decoration
// attributes shared by all kinds and seals the Element interface. Asset and
// text lookups stay unresolved in the tree; see package render.
package element

import (
	"time"

	"github.com/reoring/paywallui/attr"
)

// Element kinds as they appear in the "type" discriminant.
const (
	KindBox       = "box"
	KindVStack    = "v_stack"
	KindHStack    = "h_stack"
	KindZStack    = "z_stack"
	KindText      = "text"
	KindImage     = "image"
	KindVideo     = "video"
	KindButton    = "button"
	KindPager     = "pager"
	KindSpace     = "space"
	KindSection   = "section"
	KindToggle    = "toggle"
	KindTimer     = "timer"
	KindIf        = "if"
	KindReference = "reference"
)

// Element is one immutable descriptor node.
type Element interface {
	Kind() string
	Props() *Base
	element()
}

// Base holds the properties every element carries.
type Base struct {
	ID          string // element_id; empty when the element is not addressable
	Width       *attr.DimSpec
	Height      *attr.DimSpec
	Weight      float64
	Padding     *attr.EdgeEntities
	Offset      *attr.Offset
	Visible     bool
	Transitions []attr.Transition
	Decorator   *attr.Shape
}

func (b *Base) Props() *Base { return b }
func (*Base) element()       {}

type Box struct {
	Base
	Align   attr.Align
	Content Element // nil for an empty box
}

// StackKind is the main axis of a stack.
type StackKind int

const (
	StackVertical StackKind = iota
	StackHorizontal
	StackZ
)

type Stack struct {
	Base
	Axis    StackKind
	Spacing float64
	Align   attr.Align
	Content []Element
}

type Text struct {
	Base
	StringID   attr.StringID
	Align      attr.HorizontalAlign
	MaxRows    int // 0 means unlimited
	Overflow   attr.Overflow
	Attributes attr.TextAttributes
}

// AspectRatio scales media into its frame.
type AspectRatio int

const (
	AspectFit AspectRatio = iota
	AspectFill
	AspectStretch
)

type Image struct {
	Base
	AssetID string
	Aspect  AspectRatio
	Tint    *attr.Fill
}

// Video shows Preview until the first frame renders.
type Video struct {
	Base
	AssetID string
	Aspect  AspectRatio
	Loop    bool
	Preview *Image
}

type Button struct {
	Base
	Actions           []attr.Action
	Normal            Element
	Selected          Element        // optional
	SelectedCondition attr.Condition // optional
}

type Pager struct {
	Base
	PageWidth           attr.PageSize
	PageHeight          attr.PageSize
	PagePadding         *attr.EdgeEntities
	Spacing             float64
	Content             []Element
	PageControl         *attr.PageControl
	Animation           *attr.PagerAnimation
	InteractionBehavior attr.InteractionBehavior
}

// Space is a flexible gap taking Count weight units in a stack.
type Space struct {
	Base
	Count int
}

// Section shows one of its children, selected by SwitchSection actions.
type Section struct {
	Base
	SectionID string
	Index     int
	Content   []Element
}

type Toggle struct {
	Base
	OnActions   []attr.Action
	OffActions  []attr.Action
	OnCondition attr.Condition
	Color       *attr.Fill
}

// TimerBehavior decides when a countdown starts.
type TimerBehavior int

const (
	TimerStartAtEveryAppear TimerBehavior = iota
	TimerStartAtFirstAppear
	TimerStartAtFirstAppearPersisted
	TimerEndAtLocalTime
	TimerEndAtUTCTime
	TimerCustom
)

type Timer struct {
	Base
	TimerID    string
	Duration   time.Duration
	Behavior   TimerBehavior
	Format     *attr.StringID
	Align      attr.HorizontalAlign
	Actions    []attr.Action
	Attributes attr.TextAttributes
}

// Reference points at an element registered elsewhere under TargetID. Target
// is filled in once the whole configuration has been mapped.
type Reference struct {
	Base
	TargetID string
	Target   Element
}

func (*Box) Kind() string { return KindBox }
func (s *Stack) Kind() string {
	switch s.Axis {
	case StackHorizontal:
		return KindHStack
	case StackZ:
		return KindZStack
	}
	return KindVStack
}
func (*Text) Kind() string      { return KindText }
func (*Image) Kind() string     { return KindImage }
func (*Video) Kind() string     { return KindVideo }
func (*Button) Kind() string    { return KindButton }
func (*Pager) Kind() string     { return KindPager }
func (*Space) Kind() string     { return KindSpace }
func (*Section) Kind() string   { return KindSection }
func (*Toggle) Kind() string    { return KindToggle }
func (*Timer) Kind() string     { return KindTimer }
func (*Reference) Kind() string { return KindReference }

// Children returns the direct children of e in declaration order.
func Children(e Element) []Element {
	var out []Element
	add := func(c Element) {
		if c != nil {
			out = append(out, c)
		}
	}
	switch t := e.(type) {
	case *Box:
		add(t.Content)
	case *Stack:
		out = append(out, t.Content...)
	case *Pager:
		out = append(out, t.Content...)
	case *Section:
		out = append(out, t.Content...)
	case *Button:
		add(t.Normal)
		add(t.Selected)
	case *Video:
		add(t.Preview)
	}
	return out
}

// Walk visits e and its descendants depth-first. Reference targets are not
// followed. Returning false from fn stops the walk.
func Walk(e Element, fn func(Element) bool) bool {
	if e == nil {
		return true
	}
	if !fn(e) {
		return false
	}
	for _, c := range Children(e) {
		if !Walk(c, fn) {
			return false
		}
	}
	return true
}
