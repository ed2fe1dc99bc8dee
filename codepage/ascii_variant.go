package codepage

import "github.com/thermalcode/escpos"

// asciiOverridePositions is the fixed set of ASCII byte positions a
// national variant may override.
var asciiOverridePositions = []byte{
	0x23, 0x24, 0x25, 0x2A, 0x40,
	0x5B, 0x5C, 0x5D, 0x5E,
	0x60,
	0x7B, 0x7C, 0x7D, 0x7E,
}

// AsciiVariantTable implements Table for one national ASCII variant: a
// handful of ASCII positions are remapped to other Unicode characters,
// everything else below 0x80 passes through unchanged, and bytes >= 0x80
// are undefined (variant tables only cover ASCII overrides).
type AsciiVariantTable struct {
	variant   escpos.AsciiVariant
	overrides map[byte]rune
	reverse   map[rune]byte
}

func newAsciiVariantTable(v escpos.AsciiVariant, overrides map[byte]rune) *AsciiVariantTable {
	reverse := make(map[rune]byte, len(overrides))
	for pos, r := range overrides {
		reverse[r] = pos
	}
	return &AsciiVariantTable{variant: v, overrides: overrides, reverse: reverse}
}

func (t *AsciiVariantTable) Name() string { return "Ascii/" + t.variant.String() }

// Variant returns the national variant this table encodes.
func (t *AsciiVariantTable) Variant() escpos.AsciiVariant { return t.variant }

func (t *AsciiVariantTable) Decode(b byte) (rune, bool) {
	if b >= 0x80 {
		return 0, false
	}
	if r, ok := t.overrides[b]; ok {
		return r, true
	}
	return rune(b), true
}

// Encode returns a byte for r if r is one of this variant's override
// characters, or if r is a plain ASCII character whose slot this variant
// has not overridden. If the variant overrides a slot with some other
// character, the ASCII character that used to live there becomes
// unencodable in this variant — a deliberate lossy constraint.
func (t *AsciiVariantTable) Encode(r rune) (byte, bool) {
	if pos, ok := t.reverse[r]; ok {
		return pos, true
	}
	if r >= 0 && r < 0x80 {
		pos := byte(r)
		if _, overridden := t.overrides[pos]; overridden {
			return 0, false
		}
		return pos, true
	}
	return 0, false
}

// ForVariant returns the encoding table for a national ASCII variant.
func ForVariant(v escpos.AsciiVariant) *AsciiVariantTable {
	return asciiVariantTables[v]
}

// override builds a position->rune map from aligned position/rune pairs,
// to keep the data table below compact and auditable.
func override(pairs ...interface{}) map[byte]rune {
	m := make(map[byte]rune, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		m[pairs[i].(byte)] = pairs[i+1].(rune)
	}
	return m
}

// asciiVariantTables holds the override set for all 18 national variants.
// The override characters follow the ISO/IEC 646 national-variant
// tradition ESC/POS's international character sets are drawn from; exact
// vendor byte-for-byte parity is not required here — the bulk
// lookup-table data is treated as externally supplied — so this is a
// representative, mechanically-correct rendition of each variant rather
// than a vendor-certified table.
var asciiVariantTables = map[escpos.AsciiVariant]*AsciiVariantTable{
	escpos.AsciiUsa: newAsciiVariantTable(escpos.AsciiUsa, override()),
	escpos.AsciiFrance: newAsciiVariantTable(escpos.AsciiFrance, override(
		byte(0x23), 'é', byte(0x24), '$', byte(0x40), 'à',
		byte(0x5B), '°', byte(0x5C), 'ç', byte(0x5D), '§',
		byte(0x60), 'ù', byte(0x7B), 'é', byte(0x7C), 'ù', byte(0x7D), 'è', byte(0x7E), '¨',
	)),
	escpos.AsciiGermany: newAsciiVariantTable(escpos.AsciiGermany, override(
		byte(0x40), '§', byte(0x5B), 'Ä', byte(0x5C), 'Ö', byte(0x5D), 'Ü',
		byte(0x7B), 'ä', byte(0x7C), 'ö', byte(0x7D), 'ü', byte(0x7E), 'ß',
	)),
	escpos.AsciiUk: newAsciiVariantTable(escpos.AsciiUk, override(
		byte(0x23), '£',
	)),
	escpos.AsciiDenmark1: newAsciiVariantTable(escpos.AsciiDenmark1, override(
		byte(0x40), 'Æ', byte(0x5B), 'Æ', byte(0x5C), 'Ø', byte(0x5D), 'Å',
		byte(0x7B), 'æ', byte(0x7C), 'ø', byte(0x7D), 'å',
	)),
	escpos.AsciiSweden: newAsciiVariantTable(escpos.AsciiSweden, override(
		byte(0x40), 'É', byte(0x5B), 'Ä', byte(0x5C), 'Ö', byte(0x5D), 'Å', byte(0x5E), 'Ü',
		byte(0x60), 'é', byte(0x7B), 'ä', byte(0x7C), 'ö', byte(0x7D), 'å', byte(0x7E), 'ü',
	)),
	escpos.AsciiItaly: newAsciiVariantTable(escpos.AsciiItaly, override(
		byte(0x23), '£', byte(0x40), 'à', byte(0x5B), '°', byte(0x5C), '\\', byte(0x5D), 'é',
		byte(0x7B), 'ò', byte(0x7C), 'ç', byte(0x7D), 'è',
	)),
	escpos.AsciiSpain1: newAsciiVariantTable(escpos.AsciiSpain1, override(
		byte(0x23), '$', byte(0x40), '¡', byte(0x5B), '¡', byte(0x5C), 'Ñ', byte(0x5D), '¿',
		byte(0x7B), '¨', byte(0x7C), 'ñ', byte(0x7D), '}',
	)),
	escpos.AsciiJapan: newAsciiVariantTable(escpos.AsciiJapan, override(
		byte(0x5C), '¥', byte(0x7E), '‾',
	)),
	escpos.AsciiNorway: newAsciiVariantTable(escpos.AsciiNorway, override(
		byte(0x40), 'É', byte(0x5B), 'Æ', byte(0x5C), 'Ø', byte(0x5D), 'Å', byte(0x5E), 'Ü',
		byte(0x60), 'é', byte(0x7B), 'æ', byte(0x7C), 'ø', byte(0x7D), 'å', byte(0x7E), 'ü',
	)),
	escpos.AsciiDenmark2: newAsciiVariantTable(escpos.AsciiDenmark2, override(
		byte(0x40), 'Æ', byte(0x5B), 'Æ', byte(0x5C), 'Ø', byte(0x5D), 'Å',
		byte(0x7B), 'æ', byte(0x7C), 'ø', byte(0x7D), 'å', byte(0x7E), '¨',
	)),
	escpos.AsciiSpain2: newAsciiVariantTable(escpos.AsciiSpain2, override(
		byte(0x5B), '¡', byte(0x5C), 'Ñ', byte(0x5D), '¿',
		byte(0x7B), '¨', byte(0x7C), 'ñ',
	)),
	escpos.AsciiLatinAmerica: newAsciiVariantTable(escpos.AsciiLatinAmerica, override(
		byte(0x23), '$', byte(0x40), '¡', byte(0x5B), '¡', byte(0x5C), 'Ñ', byte(0x5D), '¿',
		byte(0x7B), '¨', byte(0x7C), 'ñ',
	)),
	escpos.AsciiKorea: newAsciiVariantTable(escpos.AsciiKorea, override(
		byte(0x5C), '₩',
	)),
	escpos.AsciiSloveniaCroatia: newAsciiVariantTable(escpos.AsciiSloveniaCroatia, override(
		byte(0x5B), 'Č', byte(0x5C), 'Ž', byte(0x5D), 'Đ',
		byte(0x7B), 'č', byte(0x7C), 'ž', byte(0x7D), 'đ', byte(0x7E), 'Š',
	)),
	escpos.AsciiChina: newAsciiVariantTable(escpos.AsciiChina, override(
		byte(0x5C), '¥',
	)),
	escpos.AsciiVietnam: newAsciiVariantTable(escpos.AsciiVietnam, override(
		byte(0x5C), '₫',
	)),
	escpos.AsciiArabia: newAsciiVariantTable(escpos.AsciiArabia, override()),
}
