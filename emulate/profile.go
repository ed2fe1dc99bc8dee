package emulate

import "github.com/thermalcode/escpos"

// Profile is a device's capability set: supported fonts are enforced by
// the emulator, and the profile also fixes the ascii-variant/codepage
// search order the multi-table encoder uses when encoding a Write's
// Utf8 contents.
type Profile struct {
	Name           string
	SupportedFonts map[escpos.Font]bool
	AsciiVariants  []escpos.AsciiVariant // preference order
	Codepages      []escpos.Codepage     // preference order
}

func (p Profile) supportsFont(f escpos.Font) bool {
	return p.SupportedFonts[f]
}

// TMT88V models an Epson TM-T88V: Font A and Font B, all 18 national
// ASCII variants, and the fifteen code pages it supports.
func TMT88V() Profile {
	return Profile{
		Name: "TM-T88V",
		SupportedFonts: map[escpos.Font]bool{
			escpos.FontA: true,
			escpos.FontB: true,
		},
		AsciiVariants: []escpos.AsciiVariant{
			escpos.AsciiUsa, escpos.AsciiFrance, escpos.AsciiGermany, escpos.AsciiUk,
			escpos.AsciiDenmark1, escpos.AsciiSweden, escpos.AsciiItaly, escpos.AsciiSpain1,
			escpos.AsciiJapan, escpos.AsciiNorway, escpos.AsciiDenmark2, escpos.AsciiSpain2,
			escpos.AsciiLatinAmerica, escpos.AsciiKorea, escpos.AsciiSloveniaCroatia,
			escpos.AsciiChina, escpos.AsciiVietnam, escpos.AsciiArabia,
		},
		Codepages: []escpos.Codepage{
			escpos.CodepagePC437, escpos.CodepageKatakana, escpos.CodepagePC850,
			escpos.CodepagePC860, escpos.CodepagePC863, escpos.CodepagePC865,
			escpos.CodepagePC851, escpos.CodepagePC853, escpos.CodepagePC857,
			escpos.CodepagePC737, escpos.CodepageISO88597, escpos.CodepageWPC1252,
			escpos.CodepagePC866, escpos.CodepagePC852, escpos.CodepagePC858,
		},
	}
}
