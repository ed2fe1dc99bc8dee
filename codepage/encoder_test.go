package codepage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thermalcode/escpos"
)

// TestAsciiVariantTablePassthrough checks that an unoverridden ASCII
// byte decodes to itself.
func TestAsciiVariantTablePassthrough(t *testing.T) {
	tbl := ForVariant(escpos.AsciiUsa)
	r, ok := tbl.Decode('A')
	require.True(t, ok)
	assert.Equal(t, 'A', r)
}

// TestAsciiVariantTableOverrideLosesOriginalAscii checks the lossy
// override constraint: once a variant remaps an ASCII position to
// another character, the ASCII character that used to live there is no
// longer encodable in that variant.
func TestAsciiVariantTableOverrideLosesOriginalAscii(t *testing.T) {
	tbl := ForVariant(escpos.AsciiGermany)

	b, ok := tbl.Encode('Ä')
	require.True(t, ok)
	assert.Equal(t, byte(0x5B), b)

	_, ok = tbl.Encode('[')
	assert.False(t, ok, "'[' should be unencodable once its slot is overridden")
}

// TestAsciiVariantTableRejectsHighBytes checks variant tables never
// claim to handle bytes >= 0x80.
func TestAsciiVariantTableRejectsHighBytes(t *testing.T) {
	tbl := ForVariant(escpos.AsciiUsa)
	_, ok := tbl.Decode(0x80)
	assert.False(t, ok)
}

// TestCodepageTableRoundTrip checks a code page table's forward and
// reverse mappings agree for at least one high-byte entry.
func TestCodepageTableRoundTrip(t *testing.T) {
	tbl := ForCodepage(escpos.CodepagePC437)
	r, ok := tbl.Decode(0x80)
	require.True(t, ok)
	b, ok := tbl.Encode(r)
	require.True(t, ok)
	assert.Equal(t, byte(0x80), b)
}

// TestCodepageTableRejectsLowBytes checks code page tables leave bytes
// below 0x80 to the active ASCII variant.
func TestCodepageTableRejectsLowBytes(t *testing.T) {
	tbl := ForCodepage(escpos.CodepagePC437)
	_, ok := tbl.Decode('A')
	assert.False(t, ok)
}

// TestEncoderPrefersPrevTable checks the greedy encoder's prev-first
// bias: a character available in both prev and another candidate stays
// on prev rather than switching tables.
func TestEncoderPrefersPrevTable(t *testing.T) {
	usa := ForVariant(escpos.AsciiUsa)
	france := ForVariant(escpos.AsciiFrance)

	enc := NewEncoder(usa, france)
	enc.SetPrev(france)

	chunks, err := enc.Encode("a")
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, france, chunks[0].Table)
}

// TestEncoderSwitchesTablesOnlyWhenNeeded checks consecutive characters
// encodable on the same table are emitted as a single chunk, and a
// table switch starts a new chunk. After 'Ä' forces Germany, "cd" stays
// on Germany (prev-first); only '[', whose slot Germany overrides,
// switches back to USA.
func TestEncoderSwitchesTablesOnlyWhenNeeded(t *testing.T) {
	usa := ForVariant(escpos.AsciiUsa)
	germany := ForVariant(escpos.AsciiGermany)

	enc := NewEncoder(usa, germany)
	chunks, err := enc.Encode("abÄcd[")
	require.NoError(t, err)

	require.Len(t, chunks, 3)
	assert.Equal(t, usa, chunks[0].Table)
	assert.Equal(t, []byte("ab"), chunks[0].Bytes)
	assert.Equal(t, germany, chunks[1].Table)
	assert.Equal(t, []byte{0x5B, 'c', 'd'}, chunks[1].Bytes)
	assert.Equal(t, usa, chunks[2].Table)
	assert.Equal(t, []byte("["), chunks[2].Bytes)
}

// TestEncoderReportsUnencodableCharacter checks the encoder returns an
// UnencodableError identifying the offending rune, along with whatever
// chunks were successfully produced before it.
func TestEncoderReportsUnencodableCharacter(t *testing.T) {
	usa := ForVariant(escpos.AsciiUsa)
	enc := NewEncoder(usa)

	chunks, err := enc.Encode("a€")
	require.Error(t, err)
	var uerr *UnencodableError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, '€', uerr.Char)
	require.Len(t, chunks, 1)
	assert.Equal(t, []byte("a"), chunks[0].Bytes)
}
