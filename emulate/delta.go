package emulate

import "github.com/thermalcode/escpos"

// Delta is an ordered list of Effects plus five optional "apply this
// state attribute" fields. It is the unit clients build and pass to an
// Emulator.
type Delta struct {
	Effects []Effect

	ApplyFont          *escpos.Font
	ApplyAsciiVariant  *escpos.AsciiVariant
	ApplyCodepage      *escpos.Codepage
	ApplyJustification *escpos.Justification
	ApplyTextScale     *Scale
}

// WithEffect appends an effect and returns the Delta, for fluent
// construction.
func (d Delta) WithEffect(e Effect) Delta {
	d.Effects = append(append([]Effect(nil), d.Effects...), e)
	return d
}

// Merge concatenates two deltas' effect lists and resolves apply_*
// fields last-writer-wins: other's non-nil fields take precedence.
func (d Delta) Merge(other Delta) Delta {
	merged := Delta{
		Effects:            append(append([]Effect(nil), d.Effects...), other.Effects...),
		ApplyFont:          d.ApplyFont,
		ApplyAsciiVariant:  d.ApplyAsciiVariant,
		ApplyCodepage:      d.ApplyCodepage,
		ApplyJustification: d.ApplyJustification,
		ApplyTextScale:     d.ApplyTextScale,
	}
	if other.ApplyFont != nil {
		merged.ApplyFont = other.ApplyFont
	}
	if other.ApplyAsciiVariant != nil {
		merged.ApplyAsciiVariant = other.ApplyAsciiVariant
	}
	if other.ApplyCodepage != nil {
		merged.ApplyCodepage = other.ApplyCodepage
	}
	if other.ApplyJustification != nil {
		merged.ApplyJustification = other.ApplyJustification
	}
	if other.ApplyTextScale != nil {
		merged.ApplyTextScale = other.ApplyTextScale
	}
	return merged
}

// state projects the delta's apply_* fields onto base, the same
// resolution State.Delta inverts.
func (d Delta) state(base State) State {
	target := base
	if d.ApplyFont != nil {
		target.Font = d.ApplyFont
	}
	if d.ApplyJustification != nil {
		target.Justification = d.ApplyJustification
	}
	if d.ApplyAsciiVariant != nil {
		target.AsciiVariant = d.ApplyAsciiVariant
	}
	if d.ApplyCodepage != nil {
		target.Codepage = d.ApplyCodepage
	}
	if d.ApplyTextScale != nil {
		target.TextScale = d.ApplyTextScale
	}
	return target
}
