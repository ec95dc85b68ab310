// Package paywallui provides:
//
// - Loading of untyped view-configuration documents (JSON via go-json, YAML via yaml.v3)
// - A stable error model via Issues (JSON Pointer, code, message, offending type)
// - Typed field accessors shared by the attribute and element mappers
//
// Design policy:
// - Keep only the error model and document plumbing in the root package.
// - Attribute mappers live under attr/, element descriptors and mappers under
//   element/, whole-configuration mapping under viewconfig/, render-time
//   resolution under render/ and the onboarding web-bridge protocol under
//   onboarding/.
// - Decoding is fail-fast: the first structural issue aborts the pass.
//
// Typical usage:
//
//	doc, err := paywallui.ParseJSON(data)
//	cfg, err := viewconfig.Map(ctx, doc, viewconfig.Options{Platform: "ios"})
//	r := render.New(cfg.Assets, cfg.Localizations.Resolver("de-DE"), asset.ThemeDark, screen)
package paywallui
