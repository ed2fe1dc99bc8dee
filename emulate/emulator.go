package emulate

import (
	"github.com/thermalcode/escpos"
	"github.com/thermalcode/escpos/codepage"
)

// Emulator owns a printer-side State and a device capability Profile. It
// is the sole mutator of its State, and only updates it after the
// corresponding command has been appended to the output stream — a
// failed Apply call never leaves State partially mutated.
type Emulator struct {
	state   State
	profile Profile
}

// NewEmulator constructs an emulator for the given device profile, with
// every state field unknown (none has been observed or emitted yet).
func NewEmulator(profile Profile) *Emulator {
	return &Emulator{profile: profile}
}

// State returns the emulator's current view of the device state.
func (e *Emulator) State() State { return e.state }

// Apply expands delta into the Output sequence a transport would send to
// the device, applying effects in order (fusing an adjacent Feed/Cut
// pair into one device command sequence) and then the delta's state
// attributes in the fixed order font, justification, ascii_variant,
// codepage, text_scale. It is idempotent for an empty delta. On error it
// returns no output and restores the State it had before the call.
func (e *Emulator) Apply(delta Delta) ([]escpos.Output, error) {
	var out []escpos.Output
	saved := e.state

	effects := delta.Effects
	for i := 0; i < len(effects); i++ {
		if feed, ok := effects[i].(Feed); ok && i+1 < len(effects) {
			if cut, ok := effects[i+1].(Cut); ok {
				o, err := e.applyFeedAndCut(feed, cut)
				if err != nil {
					e.state = saved
					return nil, err
				}
				out = append(out, o...)
				i++
				continue
			}
		}
		o, err := e.applyEffect(effects[i])
		if err != nil {
			e.state = saved
			return nil, err
		}
		out = append(out, o...)
	}

	o, err := e.applyStateDelta(delta)
	out = append(out, o...)
	if err != nil {
		e.state = saved
		return nil, err
	}
	return out, nil
}

// applyStateDelta applies the fixed-order state transitions: for each
// field, if the delta sets it and it differs from the current state, the
// state is updated and the corresponding Command is emitted.
func (e *Emulator) applyStateDelta(delta Delta) ([]escpos.Output, error) {
	var out []escpos.Output

	if delta.ApplyFont != nil && (e.state.Font == nil || *e.state.Font != *delta.ApplyFont) {
		if !e.profile.supportsFont(*delta.ApplyFont) {
			return out, &UnsupportedFontError{Font: *delta.ApplyFont}
		}
		f := *delta.ApplyFont
		e.state.Font = &f
		out = append(out, escpos.CommandOutput{Command: escpos.SelectCharacterFont{Font: f}})
	}
	if delta.ApplyJustification != nil && (e.state.Justification == nil || *e.state.Justification != *delta.ApplyJustification) {
		j := *delta.ApplyJustification
		e.state.Justification = &j
		out = append(out, escpos.CommandOutput{Command: escpos.SelectJustification{Justification: j}})
	}
	if delta.ApplyAsciiVariant != nil && (e.state.AsciiVariant == nil || *e.state.AsciiVariant != *delta.ApplyAsciiVariant) {
		v := *delta.ApplyAsciiVariant
		e.state.AsciiVariant = &v
		out = append(out, escpos.CommandOutput{Command: escpos.SelectInternationalCharacterSet{Variant: v}})
	}
	if delta.ApplyCodepage != nil && (e.state.Codepage == nil || *e.state.Codepage != *delta.ApplyCodepage) {
		cp := *delta.ApplyCodepage
		e.state.Codepage = &cp
		out = append(out, escpos.CommandOutput{Command: escpos.SelectCharacterCodeTable{Codepage: cp}})
	}
	if delta.ApplyTextScale != nil && (e.state.TextScale == nil || *e.state.TextScale != *delta.ApplyTextScale) {
		s := *delta.ApplyTextScale
		e.state.TextScale = &s
		out = append(out, escpos.CommandOutput{Command: escpos.SelectCharacterSize{Width: s.Width, Height: s.Height}})
	}
	return out, nil
}

// applyFeedAndCut fuses a consecutive (Feed, Cut) effect pair into the
// single "feed N then cut" device command instead of two independent
// sequences.
func (e *Emulator) applyFeedAndCut(feed Feed, cut Cut) ([]escpos.Output, error) {
	cmd := escpos.SelectCutModeAndCutPaper{Mode: escpos.FeedAndCut{Units: feed.LineCount, Shape: cut.Shape}}
	return []escpos.Output{escpos.CommandOutput{Command: cmd}}, nil
}

func (e *Emulator) applyEffect(effect Effect) ([]escpos.Output, error) {
	switch eff := effect.(type) {
	case Write:
		return e.applyWrite(eff)
	case Feed:
		cmd := escpos.PrintAndFeedNLines{N: eff.LineCount}
		return []escpos.Output{escpos.CommandOutput{Command: cmd}}, nil
	case Cut:
		cmd := escpos.SelectCutModeAndCutPaper{Mode: escpos.Cut{Shape: eff.Shape}}
		return []escpos.Output{escpos.CommandOutput{Command: cmd}}, nil
	default:
		return nil, nil
	}
}

// applyWrite resolves a Write's per-glyph attributes and contents into
// Output, applying whatever state deltas they imply before emitting
// bytes.
func (e *Emulator) applyWrite(w Write) ([]escpos.Output, error) {
	var out []escpos.Output

	attrDelta := e.state.Delta(State{
		Font:          w.Font,
		Justification: w.Justification,
		TextScale:     w.Scale,
	})
	o, err := e.applyStateDelta(attrDelta)
	out = append(out, o...)
	if err != nil {
		return out, err
	}

	switch c := w.Contents.(type) {
	case Utf8Contents:
		o, err := e.writeUtf8(c.Text)
		out = append(out, o...)
		return out, err
	case AsciiLikeContents:
		o := e.writeAsciiLike(c)
		out = append(out, o...)
		return out, nil
	default:
		return out, nil
	}
}

// writeUtf8 encodes text with the multi-table encoder, seeded with the
// currently active ascii variant and codepage, falling back through
// every table the device profile supports in its preference order. For
// each chunk it switches to the chunk's table (emitting the
// corresponding command) before emitting the chunk's bytes as Raw.
func (e *Emulator) writeUtf8(text string) ([]escpos.Output, error) {
	var out []escpos.Output

	var candidates []codepage.Table
	if e.state.AsciiVariant != nil {
		candidates = append(candidates, codepage.ForVariant(*e.state.AsciiVariant))
	}
	if e.state.Codepage != nil {
		candidates = append(candidates, codepage.ForCodepage(*e.state.Codepage))
	}
	for _, v := range e.profile.AsciiVariants {
		candidates = append(candidates, codepage.ForVariant(v))
	}
	for _, p := range e.profile.Codepages {
		candidates = append(candidates, codepage.ForCodepage(p))
	}

	enc := codepage.NewEncoder(candidates...)
	if len(candidates) > 0 {
		enc.SetPrev(candidates[0])
	}

	chunks, err := enc.Encode(text)
	for _, chunk := range chunks {
		o, switchErr := e.switchToTable(chunk.Table)
		out = append(out, o...)
		if switchErr != nil {
			return out, switchErr
		}
		for _, b := range chunk.Bytes {
			out = append(out, escpos.Raw(b))
		}
	}
	if err != nil {
		return out, err
	}
	return out, nil
}

// switchToTable emits whichever command activates t, if it is not
// already the active table.
func (e *Emulator) switchToTable(t codepage.Table) ([]escpos.Output, error) {
	switch tbl := t.(type) {
	case *codepage.AsciiVariantTable:
		v := tbl.Variant()
		return e.applyStateDelta(e.state.Delta(State{AsciiVariant: &v}))
	case *codepage.CodepageTable:
		p := tbl.Page()
		return e.applyStateDelta(e.state.Delta(State{Codepage: &p}))
	default:
		return nil, nil
	}
}

// writeAsciiLike emits only the table switches actually needed for an
// already-encoded byte run: a variant switch iff any byte < 0x80, a
// codepage switch iff any byte >= 0x80.
func (e *Emulator) writeAsciiLike(c AsciiLikeContents) []escpos.Output {
	var out []escpos.Output
	needsVariant, needsCodepage := false, false
	for _, b := range c.Bytes {
		if b < 0x80 {
			needsVariant = true
		} else {
			needsCodepage = true
		}
	}
	if needsVariant {
		o, _ := e.applyStateDelta(e.state.Delta(State{AsciiVariant: &c.Variant}))
		out = append(out, o...)
	}
	if needsCodepage {
		o, _ := e.applyStateDelta(e.state.Delta(State{Codepage: &c.Codepage}))
		out = append(out, o...)
	}
	for _, b := range c.Bytes {
		out = append(out, escpos.Raw(b))
	}
	return out
}
