// Package locale defines the closed set of locales supported by the content
// toolkit, together with the writing direction of each locale's script.
//
// The set is process-wide, immutable configuration: every other package in
// this module consults it but nothing mutates it. Lookups return explicit
// ok-bools or errors rather than zero values, so callers never confuse an
// unsupported code with a supported one.
//
// # Usage
//
//	loc, err := locale.Parse("sv")
//	if err != nil {
//		// unsupported code
//	}
//
//	if locale.Farsi.IsRTL() {
//		// render right-to-left
//	}
//
// The x/text interop helpers (Tag, DisplayName) exist so hosts that already
// use golang.org/x/text pipelines can bridge without re-parsing codes.
package locale
