package render

import (
	"context"
	"fmt"
	"image/color"

	"github.com/reoring/paywallui/asset"
	"github.com/reoring/paywallui/codec"
	"github.com/reoring/paywallui/element"
)

// Node is a resolved, renderer-neutral snapshot of one element.
type Node struct {
	Kind       string   `json:"kind" yaml:"kind"`
	ID         string   `json:"id,omitempty" yaml:"id,omitempty"`
	Width      *float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height     *float64 `json:"height,omitempty" yaml:"height,omitempty"`
	Hidden     bool     `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Background string   `json:"background,omitempty" yaml:"background,omitempty"`
	Text       string   `json:"text,omitempty" yaml:"text,omitempty"`
	Media      string   `json:"media,omitempty" yaml:"media,omitempty"`
	Preview    string   `json:"preview,omitempty" yaml:"preview,omitempty"`
	Font       string   `json:"font,omitempty" yaml:"font,omitempty"`
	Target     string   `json:"target,omitempty" yaml:"target,omitempty"`
	Children   []Node   `json:"children,omitempty" yaml:"children,omitempty"`
}

// Tree resolves e and its descendants. References are rendered as their
// target id, not expanded.
func (r *Resolver) Tree(e element.Element) (Node, error) {
	base := e.Props()
	n := Node{Kind: e.Kind(), ID: base.ID, Hidden: !base.Visible}
	if v, ok := r.Size(base.Width); ok {
		n.Width = &v
	}
	if v, ok := r.Size(base.Height); ok {
		n.Height = &v
	}
	if base.Decorator != nil {
		bg, err := r.Fill(base.Decorator.Fill)
		if err != nil {
			return Node{}, err
		}
		n.Background = Describe(bg)
	}

	switch t := e.(type) {
	case *element.Text:
		n.Text = r.TextOr(t.StringID)
		f, ok, err := r.Font(t.Attributes)
		if err != nil {
			return Node{}, err
		}
		if ok {
			n.Font = fmt.Sprintf("%s %d", f.Family, f.Weight)
		}
	case *element.Image:
		img, err := r.Image(t)
		if err != nil {
			return Node{}, err
		}
		n.Media = Describe(img)
	case *element.Video:
		v, preview, err := r.Video(t)
		if err != nil {
			return Node{}, err
		}
		n.Media = v.URL
		n.Preview = Describe(preview)
		return n, nil
	case *element.Reference:
		n.Target = t.TargetID
	}

	for _, c := range element.Children(e) {
		cn, err := r.Tree(c)
		if err != nil {
			return Node{}, err
		}
		n.Children = append(n.Children, cn)
	}
	return n, nil
}

// Describe renders an asset as a short human-readable string.
func Describe(a asset.Asset) string {
	switch t := a.(type) {
	case nil:
		return ""
	case asset.Color:
		return hex(t.Value)
	case asset.Gradient:
		s := string(t.Type) + "-gradient("
		for i, st := range t.Stops {
			if i > 0 {
				s += ", "
			}
			s += fmt.Sprintf("%s %g", hex(st.Color), st.Position)
		}
		return s + ")"
	case asset.Image:
		if t.URL != "" {
			return t.URL
		}
		return fmt.Sprintf("inline image (%d bytes)", len(t.Data))
	case asset.Video:
		return t.URL
	case asset.Font:
		return t.Family
	}
	return string(a.Kind())
}

func hex(c color.NRGBA) string {
	s, _ := codec.HexColor().Encode(context.Background(), c)
	return s
}
