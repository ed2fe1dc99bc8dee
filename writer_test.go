package escpos

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTrip encodes cmd, feeds the bytes back through Parse, and returns
// the decoded command alongside the encoded byte count.
func roundTrip(t *testing.T, cmd Command) (Command, int) {
	t.Helper()
	encoded, err := Encode(cmd)
	require.NoError(t, err)

	state := NewParserState()
	out, n, err := Parse(encoded, state)
	require.NoError(t, err)
	require.Equal(t, len(encoded), n)

	co, ok := out.(CommandOutput)
	require.True(t, ok, "expected CommandOutput, got %T", out)
	return co.Command, n
}

// TestEncodeParseRoundTripPlainCommands checks that every plain command
// survives an encode/decode cycle unchanged, except EndPage: its 0x0C
// byte decodes as EndJob in the standard mode a fresh ParserState starts
// in.
func TestEncodeParseRoundTripPlainCommands(t *testing.T) {
	cmds := []Command{
		newHorizontalTab(), newLineFeed(), newCarriageReturn(),
		newEndJob(), newInitializePrinter(),
		newSelectStandardMode(), newSelectPageMode(),
		newPartialCutOne(), newPartialCutThree(), newReturnHome(),
		newSelectDefaultLineSpacing(), newCancelPrintDataInPageMode(),
		newPrintDataInPageMode(), newClearBuffer(),
		newTransmitPeripheralDeviceStatus(), newExecutePowerOffSequence(),
		newCancelKanjiCharacterMode(),
	}
	for _, cmd := range cmds {
		got, _ := roundTrip(t, cmd)
		assert.Equal(t, cmd, got)
	}
}

// TestEncodeParseRoundTripScalarCommands checks numeric-argument
// commands round-trip their value exactly.
func TestEncodeParseRoundTripScalarCommands(t *testing.T) {
	cmd := PrintAndFeedNLines{plainCommand{CategoryPrintPositioning}, 42}
	got, n := roundTrip(t, cmd)
	assert.Equal(t, cmd, got)
	assert.Equal(t, 3, n)
}

// TestEncodeParseRoundTripBooleanCommands checks both the on and off
// spellings of a boolean command.
func TestEncodeParseRoundTripBooleanCommands(t *testing.T) {
	for _, on := range []bool{true, false} {
		cmd := TurnEmphasizedModeOnOff{plainCommand{CategoryCharacterEffect}, on}
		got, _ := roundTrip(t, cmd)
		assert.Equal(t, cmd, got)
	}
}

// TestEncodeParseRoundTripEnumeratedCommands checks an enum-valued
// command round-trips through its selector byte.
func TestEncodeParseRoundTripEnumeratedCommands(t *testing.T) {
	cmd := SelectJustification{plainCommand{CategoryPrintPositioning}, JustificationCenter}
	got, _ := roundTrip(t, cmd)
	assert.Equal(t, cmd, got)
}

// TestEncodeParseRoundTripCutModes checks every CutMode variant
// round-trips, confirming the writer's canonical numeric form parses
// back to the same shape and shape/unit values.
func TestEncodeParseRoundTripCutModes(t *testing.T) {
	modes := []CutMode{
		Cut{Shape: CuttingShapeFull},
		Cut{Shape: CuttingShapePartial},
		FeedAndCut{Units: 5, Shape: CuttingShapeFull},
		SetCuttingPosition{Units: 10, Shape: CuttingShapePartial},
		FeedAndCutAndMoveToStart{Units: 3, Shape: CuttingShapeFull},
	}
	for _, mode := range modes {
		cmd := SelectCutModeAndCutPaper{plainCommand{CategoryMechanicalControl}, mode}
		got, _ := roundTrip(t, cmd)
		assert.Equal(t, cmd, got)
	}
}

// TestEncodeParseRoundTripBitImageMode checks a bit-image band survives
// the column-major wire conversion and back.
func TestEncodeParseRoundTripBitImageMode(t *testing.T) {
	band := BitImageBand{
		Mode:       BitImageSingle8,
		RawMode:    0,
		WidthCols:  2,
		HeightRows: 8,
		Canvas:     make([]bool, 16),
	}
	band.Canvas[0] = true   // row 0, column 0
	band.Canvas[4*2+1] = true // row 4, column 1

	cmd := SelectBitImageMode{plainCommand{CategoryBitImage}, band}
	got, _ := roundTrip(t, cmd)
	assert.Equal(t, cmd, got)
}

// TestEncodeParseRoundTripBitImageModeOtherDensity checks that a raw
// selector byte outside the four named modes still resolves its density
// from the 0x20 bit, both when encoding and when parsing back: an
// unlisted byte with the bit set must round-trip as a 3-byte/24-row
// band, not silently collapse to the 1-byte/8-row default.
func TestEncodeParseRoundTripBitImageModeOtherDensity(t *testing.T) {
	band := BitImageBand{
		Mode:       BitImageOther,
		RawMode:    34, // unlisted byte, 0x20 bit set -> 24-dot density
		WidthCols:  2,
		HeightRows: 24,
		Canvas:     make([]bool, 2*24),
	}
	band.Canvas[0] = true    // row 0, column 0
	band.Canvas[23*2+1] = true // row 23, column 1: only reachable at 24-row density

	cmd := SelectBitImageMode{plainCommand{CategoryBitImage}, band}
	got, _ := roundTrip(t, cmd)
	assert.Equal(t, cmd, got)

	gotBand := got.(SelectBitImageMode).Band
	assert.Equal(t, 24, gotBand.HeightRows)
	assert.True(t, gotBand.Canvas[23*2+1])
}

// TestEncodeParseRoundTripUserDefinedCharacters checks the
// column-major/row-major conversion for user-defined glyph data.
func TestEncodeParseRoundTripUserDefinedCharacters(t *testing.T) {
	chars := []UserDefinedCharacter{
		{
			Character:      'A',
			CharacterWidth: 1,
			CanvasHeight:   8,
			Canvas:         make([]bool, 8),
		},
	}
	chars[0].Canvas[0] = true

	cmd := DefineUserDefinedCharacters{plainCommand{CategoryUserDefinedCharacter}, chars}
	got, _ := roundTrip(t, cmd)
	assert.Equal(t, cmd, got)
}

// TestWriteWritesToIoWriter checks Write delegates to Encode and writes
// the same bytes to an io.Writer.
func TestWriteWritesToIoWriter(t *testing.T) {
	var buf bytes.Buffer
	cmd := newInitializePrinter()
	n, err := Write(cmd, &buf)
	require.NoError(t, err)
	encoded, err := Encode(cmd)
	require.NoError(t, err)
	assert.Equal(t, encoded, buf.Bytes())
	assert.Equal(t, len(encoded), n)
}
