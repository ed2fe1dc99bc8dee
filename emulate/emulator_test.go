package emulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thermalcode/escpos"
)

func codepagePtr(c escpos.Codepage) *escpos.Codepage { return &c }

// TestEmulatorApplyEmptyDeltaIsNoop checks applying an empty delta
// emits nothing and leaves state untouched.
func TestEmulatorApplyEmptyDeltaIsNoop(t *testing.T) {
	e := NewEmulator(TMT88V())
	out, err := e.Apply(Delta{})
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, State{}, e.State())
}

// TestEmulatorApplyStateChangeEmitsCommandOnce checks a state attribute
// change emits its command, and re-applying the same value again is a
// no-op.
func TestEmulatorApplyStateChangeEmitsCommandOnce(t *testing.T) {
	e := NewEmulator(TMT88V())
	font := escpos.FontB

	out, err := e.Apply(Delta{ApplyFont: &font})
	require.NoError(t, err)
	require.Len(t, out, 1)
	co := out[0].(escpos.CommandOutput)
	cmd, ok := co.Command.(escpos.SelectCharacterFont)
	require.True(t, ok)
	assert.Equal(t, escpos.FontB, cmd.Font)

	out, err = e.Apply(Delta{ApplyFont: &font})
	require.NoError(t, err)
	assert.Empty(t, out, "re-applying the same font must emit nothing")
}

// TestEmulatorApplyRejectsUnsupportedFont checks the capability check
// fires for a font the device profile does not list.
func TestEmulatorApplyRejectsUnsupportedFont(t *testing.T) {
	e := NewEmulator(TMT88V())
	font := escpos.FontC

	_, err := e.Apply(Delta{ApplyFont: &font})
	require.Error(t, err)
	var uerr *UnsupportedFontError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, escpos.FontC, uerr.Font)
}

// TestEmulatorApplyFusesAdjacentFeedAndCut checks a (Feed, Cut) effect
// pair collapses into a single SelectCutModeAndCutPaper command instead
// of two independent device sequences.
func TestEmulatorApplyFusesAdjacentFeedAndCut(t *testing.T) {
	e := NewEmulator(TMT88V())
	delta := Delta{Effects: []Effect{
		Feed{LineCount: 4},
		Cut{Shape: escpos.CuttingShapeFull},
	}}

	out, err := e.Apply(delta)
	require.NoError(t, err)
	require.Len(t, out, 1)
	co := out[0].(escpos.CommandOutput)
	cmd, ok := co.Command.(escpos.SelectCutModeAndCutPaper)
	require.True(t, ok)
	feedAndCut, ok := cmd.Mode.(escpos.FeedAndCut)
	require.True(t, ok)
	assert.Equal(t, uint8(4), feedAndCut.Units)
}

// TestEmulatorApplyNonAdjacentFeedAndCutStaysSeparate checks that a Feed
// and Cut separated by another effect are not fused.
func TestEmulatorApplyNonAdjacentFeedAndCutStaysSeparate(t *testing.T) {
	e := NewEmulator(TMT88V())
	delta := Delta{Effects: []Effect{
		Feed{LineCount: 1},
		Write{Font: fontPtr(escpos.FontB)},
		Cut{Shape: escpos.CuttingShapeFull},
	}}

	out, err := e.Apply(delta)
	require.NoError(t, err)
	require.Len(t, out, 3)
}

// TestEmulatorWriteAsciiLikeSwitchesOnlyAsNeeded checks an
// already-encoded byte run under 0x80 triggers only the ascii-variant
// switch, not a codepage switch.
func TestEmulatorWriteAsciiLikeSwitchesOnlyAsNeeded(t *testing.T) {
	e := NewEmulator(TMT88V())
	write := Write{Contents: AsciiLikeContents{
		Bytes:    []byte("hi"),
		Variant:  escpos.AsciiFrance,
		Codepage: escpos.CodepagePC437,
	}}

	out, err := e.Apply(Delta{Effects: []Effect{write}})
	require.NoError(t, err)

	var sawVariantSwitch, sawCodepageSwitch bool
	for _, o := range out {
		if co, ok := o.(escpos.CommandOutput); ok {
			switch co.Command.(type) {
			case escpos.SelectInternationalCharacterSet:
				sawVariantSwitch = true
			case escpos.SelectCharacterCodeTable:
				sawCodepageSwitch = true
			}
		}
	}
	assert.True(t, sawVariantSwitch)
	assert.False(t, sawCodepageSwitch)
	assert.Equal(t, escpos.AsciiFrance, *e.State().AsciiVariant)
}

// TestEmulatorWriteUtf8EncodesThroughCurrentTables checks a Write with
// plain ASCII text round-trips through the multi-table encoder without
// requiring any state change, once a codepage/variant is active.
func TestEmulatorWriteUtf8EncodesThroughCurrentTables(t *testing.T) {
	e := NewEmulator(TMT88V())
	variant := escpos.AsciiUsa
	e.state.AsciiVariant = &variant
	e.state.Codepage = codepagePtr(escpos.CodepagePC437)

	out, err := e.Apply(Delta{Effects: []Effect{
		Write{Contents: Utf8Contents{Text: "hi"}},
	}})
	require.NoError(t, err)

	var raws []byte
	for _, o := range out {
		if r, ok := o.(escpos.Raw); ok {
			raws = append(raws, byte(r))
		}
	}
	assert.Equal(t, []byte("hi"), raws)
	assert.Len(t, out, len(raws), "no state-change command expected")
}
