package escpos

import "fmt"

// Category partitions the command catalogue the way the vendor reference
// groups its own command tables.
type Category uint8

const (
	CategoryPrint Category = iota
	CategoryPrintPositioning
	CategoryLineSpacing
	CategoryCharacterEffect
	CategoryCharacterSet
	CategoryMechanicalControl
	CategoryStatusTransmission
	CategoryCounter
	CategoryBarcode
	CategoryTwoDCode
	CategoryBitImage
	CategoryUserDefinedCharacter
	CategoryKanji
	CategoryPageMode
	CategoryMacro
	CategoryMiscellaneous
	CategoryRealtime
)

func (c Category) String() string {
	switch c {
	case CategoryPrint:
		return "Print"
	case CategoryPrintPositioning:
		return "PrintPositioning"
	case CategoryLineSpacing:
		return "LineSpacing"
	case CategoryCharacterEffect:
		return "CharacterEffect"
	case CategoryCharacterSet:
		return "CharacterSet"
	case CategoryMechanicalControl:
		return "MechanicalControl"
	case CategoryStatusTransmission:
		return "StatusTransmission"
	case CategoryCounter:
		return "Counter"
	case CategoryBarcode:
		return "Barcode"
	case CategoryTwoDCode:
		return "TwoDCode"
	case CategoryBitImage:
		return "BitImage"
	case CategoryUserDefinedCharacter:
		return "UserDefinedCharacter"
	case CategoryKanji:
		return "Kanji"
	case CategoryPageMode:
		return "PageMode"
	case CategoryMacro:
		return "Macro"
	case CategoryMiscellaneous:
		return "Miscellaneous"
	case CategoryRealtime:
		return "Realtime"
	default:
		return "Unknown"
	}
}

// Font selects one of the printer's built-in character fonts. Parsing
// accepts either the numeric form (0..=4) or the ASCII digit form
// ('0'..'4') for the first five variants; SpecialA and SpecialB only have
// an ASCII form ('a'/'b').
type Font uint8

const (
	FontA Font = iota
	FontB
	FontC
	FontD
	FontE
	FontSpecialA
	FontSpecialB
)

// ParseFont decodes a font selector byte in either numeric or ASCII form.
func ParseFont(b byte) (Font, bool) {
	switch {
	case b <= 4:
		return Font(b), true
	case b >= '0' && b <= '4':
		return Font(b - '0'), true
	case b == 'a':
		return FontSpecialA, true
	case b == 'b':
		return FontSpecialB, true
	default:
		return 0, false
	}
}

// Byte encodes the font in its canonical numeric form where one exists.
func (f Font) Byte() (byte, bool) {
	switch f {
	case FontA, FontB, FontC, FontD, FontE:
		return byte(f), true
	case FontSpecialA:
		return 'a', true
	case FontSpecialB:
		return 'b', true
	default:
		return 0, false
	}
}

func (f Font) String() string {
	names := [...]string{"A", "B", "C", "D", "E", "SpecialA", "SpecialB"}
	if int(f) < len(names) {
		return names[f]
	}
	return fmt.Sprintf("Font(%d)", uint8(f))
}

// Justification selects text alignment.
type Justification uint8

const (
	JustificationLeft Justification = iota
	JustificationCenter
	JustificationRight
)

func parseNumericOrDigit(b byte, max uint8) (uint8, bool) {
	if b <= max {
		return b, true
	}
	if b >= '0' && b-'0' <= max {
		return b - '0', true
	}
	return 0, false
}

// ParseJustification decodes either numeric or ASCII-digit form.
func ParseJustification(b byte) (Justification, bool) {
	n, ok := parseNumericOrDigit(b, 2)
	return Justification(n), ok
}

func (j Justification) String() string {
	switch j {
	case JustificationLeft:
		return "Left"
	case JustificationCenter:
		return "Center"
	case JustificationRight:
		return "Right"
	default:
		return fmt.Sprintf("Justification(%d)", uint8(j))
	}
}

// PrintDirection selects the text direction used while in page mode.
type PrintDirection uint8

const (
	PrintDirectionLeftToRight PrintDirection = iota
	PrintDirectionBottomToTop
	PrintDirectionRightToLeft
	PrintDirectionTopToBottom
)

// ParsePrintDirection decodes either numeric or ASCII-digit form.
func ParsePrintDirection(b byte) (PrintDirection, bool) {
	n, ok := parseNumericOrDigit(b, 3)
	return PrintDirection(n), ok
}

// PrintColor selects the ribbon/ink color on printers with two-color
// support.
type PrintColor uint8

const (
	PrintColorBlack PrintColor = iota
	PrintColorRed
)

// ParsePrintColor decodes either numeric or ASCII-digit form.
func ParsePrintColor(b byte) (PrintColor, bool) {
	n, ok := parseNumericOrDigit(b, 1)
	return PrintColor(n), ok
}

// CuttingShape is the blade path used by a cut command.
type CuttingShape uint8

const (
	CuttingShapeFull CuttingShape = iota
	CuttingShapePartial
)

// CutMode is the compound argument to SelectCutModeAndCutPaper.
type CutMode interface {
	isCutMode()
}

// Cut performs an immediate cut with no paper feed.
type Cut struct {
	Shape CuttingShape
}

func (Cut) isCutMode() {}

// FeedAndCut feeds N units of paper before cutting.
type FeedAndCut struct {
	Units uint8
	Shape CuttingShape
}

func (FeedAndCut) isCutMode() {}

// SetCuttingPosition moves to a cutting position N units from the current
// one without feeding first.
type SetCuttingPosition struct {
	Units uint8
	Shape CuttingShape
}

func (SetCuttingPosition) isCutMode() {}

// FeedAndCutAndMoveToStart feeds N units, cuts, then returns the print
// position to the start of the next line.
type FeedAndCutAndMoveToStart struct {
	Units uint8
	Shape CuttingShape
}

func (FeedAndCutAndMoveToStart) isCutMode() {}

// AsciiVariant is a national customization of a small, fixed subset of the
// ASCII code positions.
type AsciiVariant uint8

const (
	AsciiUsa AsciiVariant = iota
	AsciiFrance
	AsciiGermany
	AsciiUk
	AsciiDenmark1
	AsciiSweden
	AsciiItaly
	AsciiSpain1
	AsciiJapan
	AsciiNorway
	AsciiDenmark2
	AsciiSpain2
	AsciiLatinAmerica
	AsciiKorea
	AsciiSloveniaCroatia
	AsciiChina
	AsciiVietnam
	AsciiArabia
)

func (a AsciiVariant) String() string {
	names := [...]string{
		"Usa", "France", "Germany", "Uk", "Denmark1", "Sweden", "Italy",
		"Spain1", "Japan", "Norway", "Denmark2", "Spain2", "LatinAmerica",
		"Korea", "SloveniaCroatia", "China", "Vietnam", "Arabia",
	}
	if int(a) < len(names) {
		return names[a]
	}
	return fmt.Sprintf("AsciiVariant(%d)", uint8(a))
}

// Codepage is the closed enumeration of single-byte code pages, keyed by
// the vendor's numeric page id.
type Codepage uint8

const (
	CodepagePC437 Codepage = iota
	CodepageKatakana
	CodepagePC850
	CodepagePC860
	CodepagePC863
	CodepagePC865
	CodepagePC851
	CodepagePC853
	CodepagePC857
	CodepagePC737
	CodepageISO88597
	CodepageWPC1252
	CodepagePC866
	CodepagePC852
	CodepagePC858
)

// ID returns the vendor numeric page id used on the wire.
func (c Codepage) ID() uint8 {
	ids := [...]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 16, 17, 18, 19}
	if int(c) < len(ids) {
		return ids[c]
	}
	return 0xFF
}

// CodepageFromID resolves a vendor numeric page id back to a Codepage.
func CodepageFromID(id uint8) (Codepage, bool) {
	for c := CodepagePC437; c <= CodepagePC858; c++ {
		if c.ID() == id {
			return c, true
		}
	}
	return 0, false
}

func (c Codepage) String() string {
	names := [...]string{
		"PC437", "Katakana", "PC850", "PC860", "PC863", "PC865", "PC851",
		"PC853", "PC857", "PC737", "ISO-8859-7", "WPC1252", "PC866",
		"PC852", "PC858",
	}
	if int(c) < len(names) {
		return names[c]
	}
	return fmt.Sprintf("Codepage(%d)", uint8(c))
}

// BasicStyles is the packed 8-bit print-mode bitfield:
// font_index(1) | reserved(2) | emphasized | double_height | double_width | reserved(1) | underline
type BasicStyles struct {
	FontIndex    uint8 // 0 or 1
	Emphasized   bool
	DoubleHeight bool
	DoubleWidth  bool
	Underline    bool
}

// ParseBasicStyles decodes the ESC 0x21 bitfield byte.
func ParseBasicStyles(n byte) BasicStyles {
	return BasicStyles{
		FontIndex:    n & 0x01,
		Emphasized:   n&0x08 != 0,
		DoubleHeight: n&0x10 != 0,
		DoubleWidth:  n&0x20 != 0,
		Underline:    n&0x80 != 0,
	}
}

// Byte encodes BasicStyles back to its single-byte wire form.
func (b BasicStyles) Byte() byte {
	var n byte
	n |= b.FontIndex & 0x01
	if b.Emphasized {
		n |= 0x08
	}
	if b.DoubleHeight {
		n |= 0x10
	}
	if b.DoubleWidth {
		n |= 0x20
	}
	if b.Underline {
		n |= 0x80
	}
	return n
}

// BatchPrintMode and BatchPrintDirection are the two one-byte fields of
// SpecifyBatchPrint (ESC 0x28 0x59).
type BatchPrintMode uint8
type BatchPrintDirection uint8

// PulseConnector selects which drawer-kick connector pin drives low.
type PulseConnector uint8

const (
	PulseConnectorPin2 PulseConnector = iota
	PulseConnectorPin5
)

// PrintArea is the four little-endian u16 fields of SetPrintAreaInPageMode.
type PrintArea struct {
	X, Y, Dx, Dy uint16
}

// BitImageMode names the raster density of a BitImageBand.
type BitImageMode uint8

const (
	BitImageSingle8 BitImageMode = iota
	BitImageDouble8
	BitImageSingle24
	BitImageDouble24
	BitImageOther
)

// BytesPerColumn returns the number of payload bytes one image column
// occupies for this mode (Rows gives the row height in dots). Only meaningful
// for the four named modes; BitImageOther can mean either density
// depending on the original selector byte, so callers that hold a raw
// selector byte (parsing or re-encoding a band) must use
// bitImageDensity instead of this method.
func (m BitImageMode) BytesPerColumn() int {
	switch m {
	case BitImageSingle24, BitImageDouble24:
		return 3
	default:
		return 1
	}
}

func (m BitImageMode) Rows() int {
	switch m {
	case BitImageSingle24, BitImageDouble24:
		return 24
	default:
		return 8
	}
}

// bitImageModeFromByte derives a BitImageMode from the ESC 0x2A selector
// byte m. Values 0,1 are single/double density 8-dot bands, 32,33 are
// single/double density 24-dot bands; any other value is classified as
// BitImageOther, with its density decided separately by bitImageDensity
// since the enum alone cannot carry the selector byte's 0x20 bit.
func bitImageModeFromByte(m byte) BitImageMode {
	switch m {
	case 0:
		return BitImageSingle8
	case 1:
		return BitImageDouble8
	case 32:
		return BitImageSingle24
	case 33:
		return BitImageDouble24
	default:
		return BitImageOther
	}
}

// bitImageDensity resolves the ESC 0x2A selector byte m to its payload
// bytes-per-column and row height. Named modes (0, 1, 32, 33) use their
// fixed density; any other byte is decided by its 0x20 bit, the same
// convention that separates the 8-dot (0, 1) and 24-dot (32, 33) named
// pairs. This is the authority parsing and encoding a BitImageBand must
// use instead of BitImageMode.BytesPerColumn/Rows, which cannot tell
// apart the two densities BitImageOther collapses.
func bitImageDensity(m byte) (bytesPerCol, rows int) {
	switch m {
	case 0, 1:
		return 1, 8
	case 32, 33:
		return 3, 24
	default:
		if m&0x20 != 0 {
			return 3, 24
		}
		return 1, 8
	}
}

// BitImageBand is a single ESC 0x2A raster strip.
type BitImageBand struct {
	Mode       BitImageMode
	RawMode    byte // the literal selector byte m, preserved for Other
	WidthCols  int
	HeightRows int
	Canvas     []bool // row-major, len == WidthCols*HeightRows
}

// UserDefinedCharacter is one glyph of a DefineUserDefinedCharacters
// payload, stored row-major after parsing (input on the wire is
// column-major, y bytes per column, MSB = top row).
type UserDefinedCharacter struct {
	Character      byte
	CharacterWidth int // x
	CanvasHeight   int // y*8
	Canvas         []bool
}

// RequestedStatus selects which DLE EOT status class to request.
type RequestedStatus uint8

const (
	RequestedStatusPrinter RequestedStatus = iota + 1
	RequestedStatusOffline
	RequestedStatusError
	RequestedStatusPaperSensor
)

// RealtimeRequest selects which DLE ENQ real-time action to request.
type RealtimeRequest uint8

const (
	RealtimeRequestRecoverFromError RealtimeRequest = iota + 1
	RealtimeRequestReset
)

// RealtimePulseInfo is the payload of DLE 0x14 0x01 (real-time pulse).
type RealtimePulseInfo struct {
	Connector PulseConnector
	Units     uint8 // 1..=8
}
