package element

import (
	"math"
	"time"

	paywallui "github.com/reoring/paywallui"
	"github.com/reoring/paywallui/asset"
	"github.com/reoring/paywallui/attr"
)

func mapBox(b *Builder, m map[string]any, p paywallui.PathRef) (Element, error) {
	base, err := MapBase(m, p)
	if err != nil {
		return nil, err
	}
	box := &Box{Base: base, Align: attr.MapAlign(m)}
	if raw, ok := m["content"]; ok && raw != nil {
		if box.Content, err = b.Element(raw, p.Field("content")); err != nil {
			return nil, err
		}
	}
	return box, nil
}

func stackMapper(axis StackKind) Mapper {
	return MapperFunc(func(b *Builder, m map[string]any, p paywallui.PathRef) (Element, error) {
		base, err := MapBase(m, p)
		if err != nil {
			return nil, err
		}
		content, err := b.Elements(m["content"], p.Field("content"))
		if err != nil {
			return nil, err
		}
		return &Stack{
			Base:    base,
			Axis:    axis,
			Spacing: paywallui.OptNumber(m, "spacing", 0),
			Align:   attr.MapAlign(m),
			Content: content,
		}, nil
	})
}

func mapText(b *Builder, m map[string]any, p paywallui.PathRef) (Element, error) {
	sid, err := attr.MapStringID(m["string_id"], p.Field("string_id"))
	if err != nil {
		return nil, err
	}
	base, err := MapBase(m, p)
	if err != nil {
		return nil, err
	}
	ta, err := b.textAttributes(m, p)
	if err != nil {
		return nil, err
	}
	return &Text{
		Base:       base,
		StringID:   sid,
		Align:      attr.MapHorizontalAlign(m["align"]),
		MaxRows:    paywallui.OptInt(m, "max_rows", 0),
		Overflow:   attr.MapOverflow(m["on_overflow"]),
		Attributes: ta,
	}, nil
}

// textAttributes maps styling keys and checks the font asset.
func (b *Builder) textAttributes(m map[string]any, p paywallui.PathRef) (attr.TextAttributes, error) {
	ta, err := attr.MapTextAttributes(m, p)
	if err != nil {
		return attr.TextAttributes{}, err
	}
	if ta.FontID != "" && !b.assets.HasKind(ta.FontID, asset.KindFont) {
		return attr.TextAttributes{}, p.Field("font").Fail(paywallui.CodeAssetMissing, nil, "asset_id", ta.FontID)
	}
	return ta, nil
}

func mapImage(b *Builder, m map[string]any, p paywallui.PathRef) (Element, error) {
	id, err := b.RequireAsset(m, "asset_id", asset.KindImage, p)
	if err != nil {
		return nil, err
	}
	base, err := MapBase(m, p)
	if err != nil {
		return nil, err
	}
	tint, err := attr.MapFill(m["tint"], p.Field("tint"))
	if err != nil {
		return nil, err
	}
	return &Image{Base: base, AssetID: id, Aspect: mapAspect(m["aspect"]), Tint: tint}, nil
}

func mapVideo(b *Builder, m map[string]any, p paywallui.PathRef) (Element, error) {
	id, err := b.RequireAsset(m, "asset_id", asset.KindVideo, p)
	if err != nil {
		return nil, err
	}
	previewID := asset.PreviewID(id)
	if !b.assets.HasKind(previewID, asset.KindImage) {
		return nil, p.Field("asset_id").Fail(paywallui.CodeAssetMissing, nil, "asset_id", previewID,
			"hint", "video assets need a preview image")
	}
	base, err := MapBase(m, p)
	if err != nil {
		return nil, err
	}
	aspect := mapAspect(m["aspect"])
	// the preview is not addressable; element_id stays with the video
	previewBase := base
	previewBase.ID = ""
	return &Video{
		Base:    base,
		AssetID: id,
		Aspect:  aspect,
		Loop:    paywallui.OptBool(m, "loop", true),
		Preview: &Image{Base: previewBase, AssetID: previewID, Aspect: aspect},
	}, nil
}

func mapButton(b *Builder, m map[string]any, p paywallui.PathRef) (Element, error) {
	actions, err := attr.MapActions(m["action"], p.Field("action"))
	if err != nil {
		return nil, err
	}
	base, err := MapBase(m, p)
	if err != nil {
		return nil, err
	}
	btn := &Button{Base: base, Actions: actions}
	if btn.Normal, err = b.Element(m["normal"], p.Field("normal")); err != nil {
		return nil, err
	}
	if raw, ok := m["selected"]; ok && raw != nil {
		if btn.Selected, err = b.Element(raw, p.Field("selected")); err != nil {
			return nil, err
		}
	}
	if raw, ok := m["selected_condition"]; ok && raw != nil {
		if btn.SelectedCondition, err = attr.MapCondition(raw, p.Field("selected_condition")); err != nil {
			return nil, err
		}
	}
	return btn, nil
}

func mapPager(b *Builder, m map[string]any, p paywallui.PathRef) (Element, error) {
	base, err := MapBase(m, p)
	if err != nil {
		return nil, err
	}
	pg := &Pager{
		Base:                base,
		Spacing:             paywallui.OptNumber(m, "spacing", 0),
		InteractionBehavior: attr.MapInteractionBehavior(m["interaction"]),
	}
	if pg.PageWidth, err = attr.MapPageSize(m["page_width"], p.Field("page_width")); err != nil {
		return nil, err
	}
	if pg.PageHeight, err = attr.MapPageSize(m["page_height"], p.Field("page_height")); err != nil {
		return nil, err
	}
	if pg.PagePadding, err = attr.MapEdgeEntities(m["page_padding"], p.Field("page_padding")); err != nil {
		return nil, err
	}
	if pg.Content, err = b.Elements(m["content"], p.Field("content")); err != nil {
		return nil, err
	}
	if pg.PageControl, err = attr.MapPageControl(m["page_control"], p.Field("page_control")); err != nil {
		return nil, err
	}
	if pg.Animation, err = attr.MapPagerAnimation(m["animation"], p.Field("animation")); err != nil {
		return nil, err
	}
	return pg, nil
}

func mapSpace(_ *Builder, m map[string]any, p paywallui.PathRef) (Element, error) {
	base, err := MapBase(m, p)
	if err != nil {
		return nil, err
	}
	return &Space{Base: base, Count: paywallui.OptInt(m, "count", 1)}, nil
}

func mapSection(b *Builder, m map[string]any, p paywallui.PathRef) (Element, error) {
	id, err := paywallui.RequireString(m, "id", p)
	if err != nil {
		return nil, err
	}
	base, err := MapBase(m, p)
	if err != nil {
		return nil, err
	}
	content, err := b.Elements(m["content"], p.Field("content"))
	if err != nil {
		return nil, err
	}
	s := &Section{Base: base, SectionID: id, Index: paywallui.OptInt(m, "index", 0), Content: content}
	if err := b.refs.registerSection(s, p.Field("id")); err != nil {
		return nil, err
	}
	return s, nil
}

// mapToggle accepts explicit on/off actions or the section shorthand
// {"section_id", "on_index", "off_index"}.
func mapToggle(_ *Builder, m map[string]any, p paywallui.PathRef) (Element, error) {
	base, err := MapBase(m, p)
	if err != nil {
		return nil, err
	}
	color, err := attr.MapFill(m["color"], p.Field("color"))
	if err != nil {
		return nil, err
	}
	tg := &Toggle{Base: base, Color: color}
	if sectionID := paywallui.OptString(m, "section_id", ""); sectionID != "" {
		on := paywallui.OptInt(m, "on_index", 0)
		off := paywallui.OptInt(m, "off_index", 1)
		tg.OnActions = []attr.Action{attr.SwitchSection{SectionID: sectionID, Index: on}}
		tg.OffActions = []attr.Action{attr.SwitchSection{SectionID: sectionID, Index: off}}
		tg.OnCondition = attr.SelectedSection{SectionID: sectionID, Index: on}
		return tg, nil
	}
	if tg.OnActions, err = attr.MapActions(m["on_actions"], p.Field("on_actions")); err != nil {
		return nil, err
	}
	if tg.OffActions, err = attr.MapActions(m["off_actions"], p.Field("off_actions")); err != nil {
		return nil, err
	}
	if raw, ok := m["on_condition"]; ok && raw != nil {
		if tg.OnCondition, err = attr.MapCondition(raw, p.Field("on_condition")); err != nil {
			return nil, err
		}
	}
	return tg, nil
}

var timerBehaviors = map[string]TimerBehavior{
	"start_at_every_appear":           TimerStartAtEveryAppear,
	"start_at_first_appear":           TimerStartAtFirstAppear,
	"start_at_first_appear_persisted": TimerStartAtFirstAppearPersisted,
	"end_at_local_time":               TimerEndAtLocalTime,
	"end_at_utc_time":                 TimerEndAtUTCTime,
	"custom":                          TimerCustom,
}

// mapTimer reads duration in seconds.
func mapTimer(b *Builder, m map[string]any, p paywallui.PathRef) (Element, error) {
	id, err := paywallui.RequireString(m, "id", p)
	if err != nil {
		return nil, err
	}
	seconds, err := paywallui.RequireNumber(m, "duration", p)
	if err != nil {
		return nil, err
	}
	if seconds <= 0 || seconds >= maxTimerSeconds {
		return nil, p.Field("duration").Fail(paywallui.CodeInvalidShape, m["duration"],
			"hint", "expected a positive number of seconds")
	}
	base, err := MapBase(m, p)
	if err != nil {
		return nil, err
	}
	ta, err := b.textAttributes(m, p)
	if err != nil {
		return nil, err
	}
	actions, err := attr.MapActions(m["action"], p.Field("action"))
	if err != nil {
		return nil, err
	}
	t := &Timer{
		Base:       base,
		TimerID:    id,
		Duration:   time.Duration(seconds * float64(time.Second)),
		Behavior:   timerBehaviors[paywallui.OptString(m, "behaviour", "")],
		Align:      attr.MapHorizontalAlign(m["align"]),
		Actions:    actions,
		Attributes: ta,
	}
	if raw, ok := m["format"]; ok && raw != nil {
		f, err := attr.MapStringID(raw, p.Field("format"))
		if err != nil {
			return nil, err
		}
		t.Format = &f
	}
	return t, nil
}

// mapIf selects "then" when the element's platform matches the builder's,
// "else" otherwise. Only the selected branch is mapped.
// maxTimerSeconds bounds durations to what time.Duration can hold.
const maxTimerSeconds = float64(math.MaxInt64) / float64(time.Second)

func mapIf(b *Builder, m map[string]any, p paywallui.PathRef) (Element, error) {
	if _, ok := m["then"]; !ok {
		return nil, p.Field("then").Fail(paywallui.CodeRequired, nil)
	}
	if _, ok := m["else"]; !ok {
		return nil, p.Field("else").Fail(paywallui.CodeRequired, nil)
	}
	if paywallui.OptString(m, "platform", "") == b.platform {
		return b.Element(m["then"], p.Field("then"))
	}
	return b.Element(m["else"], p.Field("else"))
}

func mapReference(b *Builder, m map[string]any, p paywallui.PathRef) (Element, error) {
	id, err := paywallui.RequireString(m, "element_id", p)
	if err != nil {
		return nil, err
	}
	ref := &Reference{Base: Base{Visible: true}, TargetID: id}
	b.pending = append(b.pending, pendingRef{ref: ref, path: p})
	return ref, nil
}
