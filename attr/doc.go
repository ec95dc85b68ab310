// Package attr maps single attributes of a view-configuration node into
// strongly-typed values.
//
// Overview
//   - Every mapper reads exactly one value (or, for alignment and text
//     attributes, the few keys it owns on the node) and never touches siblings.
//   - Mappers take the node value plus a paywallui.PathRef pointing at it so
//     that failures are attributed to the offending attribute.
//   - Many attributes accept shorthand encodings (number, object, list) that
//     normalize to one representation.
//
// Failure policy
//   - Malformed structural values (dimensions, insets, offsets, corner radii,
//     action companions, pager page transitions) fail with an Issue carrying the
//     path and, where useful, the runtime type of the offending value.
//   - Enum-like and style values (alignments, interpolators, behaviors,
//     layouts) fall back to a documented default and never fail.
//   - Action and condition discriminants this version does not know map to the
//     Unknown variants instead of failing.
//
// File layout (roles)
//   - dim.go: DimUnit, DimSpec, Screen and render-time resolution.
//   - edges.go / offset.go: insets and offsets, collapsing all-zero values to nil.
//   - shape.go: decorators, fills, borders and corner radii.
//   - align.go: horizontal/vertical alignment enums.
//   - transition.go: slide/fade transitions.
//   - interactive.go: actions and conditions.
//   - pager.go: page sizes, page control, autoplay animation, interaction behavior.
//   - text.go: text attributes, string ids and overflow modes.
//
// Example
//
//	w, err := attr.MapDimSpec(node["width"], attr.AxisX, p.Field("width"))
//	pad, err := attr.MapEdgeEntities(node["padding"], p.Field("padding"))
//	px := w.Value.Resolve(attr.AxisX, screen)
package attr
