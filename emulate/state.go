// Package emulate applies high-level declarative effects (write text,
// feed lines, cut) against a printer-side State, computing the minimal
// command delta and linearizing the result into a device-legal Output
// stream, enforcing one device's capability profile.
package emulate

import "github.com/thermalcode/escpos"

// Scale is the printer's character width/height multiplier, 1..=8 each.
type Scale struct {
	Width, Height uint8
}

// State is the printer-side state the emulator tracks: each field is
// optional, since a freshly constructed emulator has not yet observed (or
// emitted) a value for it.
type State struct {
	Font          *escpos.Font
	AsciiVariant  *escpos.AsciiVariant
	Codepage      *escpos.Codepage
	Justification *escpos.Justification
	TextScale     *Scale
}

// Delta computes the minimal Delta that moves the state from s to
// target: for each attribute, if target has a value and it differs from
// s, the delta's corresponding Apply* field is set; otherwise it is left
// nil. A state delta'd against itself is the identity delta (every
// Apply* nil, no effects) — this is the state-delta idempotence property.
func (s State) Delta(target State) Delta {
	var d Delta
	if target.Font != nil && (s.Font == nil || *s.Font != *target.Font) {
		d.ApplyFont = target.Font
	}
	if target.Justification != nil && (s.Justification == nil || *s.Justification != *target.Justification) {
		d.ApplyJustification = target.Justification
	}
	if target.AsciiVariant != nil && (s.AsciiVariant == nil || *s.AsciiVariant != *target.AsciiVariant) {
		d.ApplyAsciiVariant = target.AsciiVariant
	}
	if target.Codepage != nil && (s.Codepage == nil || *s.Codepage != *target.Codepage) {
		d.ApplyCodepage = target.Codepage
	}
	if target.TextScale != nil && (s.TextScale == nil || *s.TextScale != *target.TextScale) {
		d.ApplyTextScale = target.TextScale
	}
	return d
}
