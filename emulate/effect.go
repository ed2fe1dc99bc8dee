package emulate

import "github.com/thermalcode/escpos"

// WriteContents is the closed sum type of a Write effect's payload: a
// Unicode string the emulator must choose encodings for, or a byte run
// the caller has already encoded and simply declares the encoding of.
type WriteContents interface {
	isWriteContents()
}

// Utf8Contents carries ordinary Unicode text for the emulator to encode
// with the multi-table encoder.
type Utf8Contents struct {
	Text string
}

func (Utf8Contents) isWriteContents() {}

// AsciiLikeContents carries an already-encoded byte run plus the
// encoding the caller encoded it with, so the emulator only has to emit
// the table switches actually needed rather than re-encode anything.
type AsciiLikeContents struct {
	Bytes    []byte
	Variant  escpos.AsciiVariant
	Codepage escpos.Codepage
}

func (AsciiLikeContents) isWriteContents() {}

// Effect is the closed sum type of high-level, device-independent actions
// a client authors: write text, feed lines, or cut.
type Effect interface {
	isEffect()
}

// Write prints contents using the given per-glyph attributes. Any nil
// attribute means "leave the state as it already is".
type Write struct {
	Contents      WriteContents
	Font          *escpos.Font
	Justification *escpos.Justification
	Scale         *Scale
}

func (Write) isEffect() {}

// Feed advances the paper by LineCount lines.
type Feed struct {
	LineCount uint8
}

func (Feed) isEffect() {}

// Cut performs a paper cut of the given shape.
type Cut struct {
	Shape escpos.CuttingShape
}

func (Cut) isEffect() {}
