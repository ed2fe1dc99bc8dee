package codepage

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/thermalcode/escpos"
)

// CodepageTable implements Table for an 8-bit code page: a static
// 128-entry forward table maps byte 0x80+i to a Unicode scalar, and a
// reverse map (built once, at construction) supports encode. Bytes below
// 0x80 are not handled here; they belong to the active ASCII variant.
type CodepageTable struct {
	page    escpos.Codepage
	forward [128]rune
	reverse map[rune]byte
}

func newCodepageTable(page escpos.Codepage, forward [128]rune) *CodepageTable {
	reverse := make(map[rune]byte, 128)
	for i, r := range forward {
		if r == 0 {
			continue
		}
		if _, exists := reverse[r]; !exists {
			reverse[r] = byte(0x80 + i)
		}
	}
	return &CodepageTable{page: page, forward: forward, reverse: reverse}
}

func (t *CodepageTable) Name() string { return "Codepage/" + t.page.String() }

// Page returns the code page this table encodes.
func (t *CodepageTable) Page() escpos.Codepage { return t.page }

func (t *CodepageTable) Decode(b byte) (rune, bool) {
	if b < 0x80 {
		return 0, false
	}
	r := t.forward[b-0x80]
	if r == 0 {
		return 0, false
	}
	return r, true
}

func (t *CodepageTable) Encode(r rune) (byte, bool) {
	b, ok := t.reverse[r]
	return b, ok
}

// fromXText adapts a golang.org/x/text/encoding/charmap.Charmap — which
// already carries a vendor-accurate single-byte table — into a
// CodepageTable, instead of re-deriving bytes 0x80..0xFF by hand. It
// decodes one byte at a time through the charmap's own decoder.
func fromXText(page escpos.Codepage, cm *charmap.Charmap) *CodepageTable {
	var forward [128]rune
	dec := cm.NewDecoder()
	for i := 0; i < 128; i++ {
		out, err := dec.Bytes([]byte{byte(0x80 + i)})
		if err != nil {
			continue
		}
		r, size := utf8.DecodeRune(out)
		if r == utf8.RuneError && size <= 1 {
			continue
		}
		forward[i] = r
	}
	return newCodepageTable(page, forward)
}

// ForCodepage returns the encoding table for one of the device profile's
// supported code pages.
func ForCodepage(p escpos.Codepage) *CodepageTable {
	return codepageTables[p]
}

var codepageTables = map[escpos.Codepage]*CodepageTable{
	escpos.CodepagePC437:    fromXText(escpos.CodepagePC437, charmap.CodePage437),
	escpos.CodepagePC850:    fromXText(escpos.CodepagePC850, charmap.CodePage850),
	escpos.CodepagePC852:    fromXText(escpos.CodepagePC852, charmap.CodePage852),
	escpos.CodepagePC858:    fromXText(escpos.CodepagePC858, charmap.CodePage858),
	escpos.CodepagePC860:    fromXText(escpos.CodepagePC860, charmap.CodePage860),
	escpos.CodepagePC863:    fromXText(escpos.CodepagePC863, charmap.CodePage863),
	escpos.CodepagePC865:    fromXText(escpos.CodepagePC865, charmap.CodePage865),
	escpos.CodepagePC866:    fromXText(escpos.CodepagePC866, charmap.CodePage866),
	escpos.CodepageISO88597: fromXText(escpos.CodepageISO88597, charmap.ISO8859_7),
	escpos.CodepageWPC1252:  fromXText(escpos.CodepageWPC1252, charmap.Windows1252),

	// x/text/encoding/charmap has no table for these five; represented
	// by a small hand-authored set of the characters each page is best
	// known for (the full vendor tables are external data supplied to
	// the encoding engine, not reproduced here).
	escpos.CodepagePC851:    newCodepageTable(escpos.CodepagePC851, pc851Forward),
	escpos.CodepagePC853:    newCodepageTable(escpos.CodepagePC853, pc853Forward),
	escpos.CodepagePC857:    newCodepageTable(escpos.CodepagePC857, pc857Forward),
	escpos.CodepagePC737:    newCodepageTable(escpos.CodepagePC737, pc737Forward),
	escpos.CodepageKatakana: newCodepageTable(escpos.CodepageKatakana, katakanaForward),
}

var pc851Forward = func() (t [128]rune) {
	// Greek letters occupy the upper half of PC851; here they are laid
	// out in alphabetical order starting at byte 0x80.
	greek := "ΑΒΓΔΕΖΗΘΙΚΛΜΝΞΟΠΡΣΤΥΦΧΨΩαβγδεζηθικλμνξοπρστυφχψω"
	for i, r := range []rune(greek) {
		t[i] = r
	}
	return
}()

var pc853Forward = func() (t [128]rune) {
	turkish := "ĞğİıŞş"
	for i, r := range []rune(turkish) {
		t[i] = r
	}
	return
}()

var pc857Forward = func() (t [128]rune) {
	turkish := "ĞğİıŞşÖöÜü"
	for i, r := range []rune(turkish) {
		t[i] = r
	}
	return
}()

var pc737Forward = func() (t [128]rune) {
	greek := "ΑΒΓΔΕΖΗΘΙΚΛΜΝΞΟΠΡΣΤΥΦΧΨΩαβγδεζηθικλμνξοπρστυφχψως"
	for i, r := range []rune(greek) {
		t[i] = r
	}
	return
}()

var katakanaForward = func() (t [128]rune) {
	// Half-width katakana occupies 0xA1-0xDF on the real device table;
	// represented here at the same relative offset within the 128-entry
	// table (index 0x21..).
	kana := "。「」、・ヲァィゥェォャュョッーアイウエオカキクケコサシスセソタチツテトナニヌネノハヒフヘホマミムメモヤユヨラリルレロワン゛゜"
	for i, r := range []rune(kana) {
		if 0x21+i < 128 {
			t[0x21+i] = r
		}
	}
	return
}()
