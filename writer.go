package escpos

import (
	"fmt"
	"io"
)

// Write serializes cmd to its canonical wire form and writes it to w,
// returning the number of bytes written. The bytes written are always
// accepted back by Parse with no trailing bytes, reproducing cmd
// (the parser/writer round-trip property), for every variant this
// function implements.
func Write(cmd Command, w io.Writer) (int, error) {
	b, err := Encode(cmd)
	if err != nil {
		return 0, err
	}
	return w.Write(b)
}

// Encode is the allocation-owning counterpart of Write: it returns the
// canonical wire bytes for cmd without requiring a sink.
func Encode(cmd Command) ([]byte, error) {
	switch c := cmd.(type) {
	case HorizontalTab:
		return []byte{0x09}, nil
	case LineFeed:
		return []byte{0x0A}, nil
	case CarriageReturn:
		return []byte{0x0D}, nil
	case EndJob:
		return []byte{0x0C}, nil
	case EndPage:
		return []byte{0x0C}, nil
	case CancelPrintDataInPageMode:
		return []byte{0x18}, nil
	case InitializePrinter:
		return []byte{0x1B, 0x40}, nil
	case SelectStandardMode:
		return []byte{0x1B, 0x53}, nil
	case SelectPageMode:
		return []byte{0x1B, 0x4B}, nil
	case PartialCutOne:
		return []byte{0x1B, 0x69}, nil
	case PartialCutThree:
		return []byte{0x1B, 0x6D}, nil
	case ReturnHome:
		return []byte{0x1B, 0x3C}, nil
	case SelectDefaultLineSpacing:
		return []byte{0x1B, 0x32}, nil
	case PrintDataInPageMode:
		return []byte{0x1B, 0x0C}, nil
	case TransmitPeripheralDeviceStatus:
		return []byte{0x1B, 0x75}, nil
	case ClearBuffer:
		return append([]byte{0x10, 0x14, 0x08}, clearBufferMagic[:]...), nil
	case ExecutePowerOffSequence:
		return []byte{0x10, 0x02}, nil
	case CancelKanjiCharacterMode:
		return []byte{0x1C, 0x2E}, nil

	case SetRightSideCharacterSpacing:
		return []byte{0x1B, 0x20, c.N}, nil
	case SetLineSpacing:
		return []byte{0x1B, 0x33, c.N}, nil
	case SetAbsolutePrintPosition:
		lo, hi := putU16LE(c.N)
		return []byte{0x1B, 0x24, lo, hi}, nil
	case SetRelativePrintPosition:
		lo, hi := putU16LE(uint16(c.N))
		return []byte{0x1B, 0x5C, lo, hi}, nil
	case SelectPeripheralDevice:
		return []byte{0x1B, 0x3D, c.N}, nil
	case PrintAndFeedPaper:
		return []byte{0x1B, 0x4A, c.N}, nil
	case PrintAndFeedNLines:
		return []byte{0x1B, 0x64, c.N}, nil
	case PrintAndReverseFeedNLines:
		return []byte{0x1B, 0x65, c.N}, nil
	case CancelUserDefinedCharacters:
		return []byte{0x1B, 0x3F, c.N}, nil
	case SelectPaperSensorToOutputPaperEndSignals:
		return []byte{0x1B, 0x63, '3', c.N}, nil
	case SelectPaperSensorToStopPrinting:
		return []byte{0x1B, 0x63, '4', c.N}, nil
	case Turn90ClockwiseRotationModeOnOff:
		return []byte{0x1B, 0x56, c.N}, nil
	case TurnUnderlineModeOnOff:
		return []byte{0x1B, 0x2D, c.N}, nil

	case SelectCancelUserDefinedCharacterSet:
		return []byte{0x1B, 0x25, boolToByte(c.On)}, nil
	case TurnEmphasizedModeOnOff:
		return []byte{0x1B, 0x45, boolToByte(c.On)}, nil
	case TurnDoubleStrikeModeOnOff:
		return []byte{0x1B, 0x47, boolToByte(c.On)}, nil
	case EnableDisablePanelButtons:
		return []byte{0x1B, 0x63, '5', boolToByte(c.On)}, nil
	case TurnUpsideDownPrintModeOnOff:
		return []byte{0x1B, 0x7B, boolToByte(c.On)}, nil

	case SelectCharacterFont:
		b, ok := c.Font.Byte()
		if !ok {
			return nil, fmt.Errorf("escpos: font %v has no canonical byte form", c.Font)
		}
		return []byte{0x1B, 0x4D, b}, nil
	case SelectInternationalCharacterSet:
		return []byte{0x1B, 0x52, byte(c.Variant)}, nil
	case SelectPrintDirectionInPageMode:
		return []byte{0x1B, 0x54, byte(c.Direction)}, nil
	case SelectJustification:
		return []byte{0x1B, 0x61, byte(c.Justification)}, nil
	case SelectPrintColor:
		return []byte{0x1B, 0x72, byte(c.Color)}, nil
	case SelectCharacterCodeTable:
		return []byte{0x1B, 0x74, c.Codepage.ID()}, nil
	case SelectPrintMode:
		return []byte{0x1B, 0x21, c.Styles.Byte()}, nil

	case SpecifyBatchPrint:
		return []byte{0x1B, 0x28, 0x59, 0x02, 0x00, byte(c.Mode), byte(c.Direction)}, nil
	case GeneratePulse:
		return []byte{0x1B, 0x70, byte(c.Connector), c.OnTime, c.OffTime}, nil
	case SelectCharacterSize:
		if c.Width < 1 || c.Width > 8 || c.Height < 1 || c.Height > 8 {
			return nil, fmt.Errorf("%w: character size %d/%d out of range 1..=8", ErrInvalidArgument, c.Width, c.Height)
		}
		return []byte{0x1D, 0x21, ((c.Width - 1) << 4) | (c.Height - 1)}, nil
	case SelectCutModeAndCutPaper:
		return encodeCutMode(c.Mode)
	case SetPrintAreaInPageMode:
		xl, xh := putU16LE(c.Area.X)
		yl, yh := putU16LE(c.Area.Y)
		dxl, dxh := putU16LE(c.Area.Dx)
		dyl, dyh := putU16LE(c.Area.Dy)
		return []byte{0x1B, 0x57, xl, xh, yl, yh, dxl, dxh, dyl, dyh}, nil
	case SelectBitImageMode:
		return encodeBitImageMode(c.Band)
	case DefineUserDefinedCharacters:
		return encodeUserDefinedCharacters(c.Characters)
	case RequestStatus:
		return []byte{0x10, 0x04, byte(c.Status)}, nil
	case RealtimeRequestCommand:
		return []byte{0x10, 0x05, byte(c.Request)}, nil
	case RealtimeGeneratePulse:
		return []byte{0x10, 0x14, 0x01, byte(c.Pulse.Connector), c.Pulse.Units}, nil

	default:
		return nil, fmt.Errorf("%w: %T", ErrUnimplemented, cmd)
	}
}

func boolToByte(b bool) byte {
	if b {
		return 0x01
	}
	return 0x00
}

// encodeCutMode picks the numeric canonical selector byte for each
// CutMode variant; the parser accepts both numeric and ASCII-digit forms
// but the writer always emits the numeric one.
func encodeCutMode(mode CutMode) ([]byte, error) {
	switch m := mode.(type) {
	case Cut:
		sel, err := shapeByte(m.Shape, 0x00, 0x01)
		if err != nil {
			return nil, err
		}
		return []byte{0x1D, 0x56, sel}, nil
	case FeedAndCut:
		sel, err := shapeByte(m.Shape, 'A', 'B')
		if err != nil {
			return nil, err
		}
		return []byte{0x1D, 0x56, sel, m.Units}, nil
	case SetCuttingPosition:
		sel, err := shapeByte(m.Shape, 'a', 'b')
		if err != nil {
			return nil, err
		}
		return []byte{0x1D, 0x56, sel, m.Units}, nil
	case FeedAndCutAndMoveToStart:
		sel, err := shapeByte(m.Shape, 'g', 'h')
		if err != nil {
			return nil, err
		}
		return []byte{0x1D, 0x56, sel, m.Units}, nil
	default:
		return nil, fmt.Errorf("%w: cut mode %T", ErrUnimplemented, mode)
	}
}

func shapeByte(shape CuttingShape, full, partial byte) (byte, error) {
	switch shape {
	case CuttingShapeFull:
		return full, nil
	case CuttingShapePartial:
		return partial, nil
	default:
		return 0, fmt.Errorf("%w: cutting shape %d", ErrInvalidArgument, shape)
	}
}

// encodeBitImageMode serializes a BitImageBand back to ESC 0x2A m nL nH
// data, converting the row-major canvas back to column-major bytes.
func encodeBitImageMode(band BitImageBand) ([]byte, error) {
	bytesPerCol, rows := bitImageDensity(band.RawMode)

	nl, nh := putU16LE(uint16(band.WidthCols))
	out := make([]byte, 0, 5+band.WidthCols*bytesPerCol)
	out = append(out, 0x1B, 0x2A, band.RawMode, nl, nh)

	for col := 0; col < band.WidthCols; col++ {
		for by := 0; by < bytesPerCol; by++ {
			var b byte
			for bit := 0; bit < 8; bit++ {
				row := by*8 + bit
				if row < rows && row < band.HeightRows && band.Canvas[row*band.WidthCols+col] {
					b |= 0x80 >> uint(bit)
				}
			}
			out = append(out, b)
		}
	}
	return out, nil
}

// encodeUserDefinedCharacters serializes DefineUserDefinedCharacters back
// to ESC 0x26 y c1 c2 x data, converting row-major canvases back to the
// column-major wire form.
func encodeUserDefinedCharacters(chars []UserDefinedCharacter) ([]byte, error) {
	if len(chars) == 0 {
		return nil, fmt.Errorf("%w: no characters to define", ErrInvalidArgument)
	}
	x := chars[0].CharacterWidth
	y := chars[0].CanvasHeight / 8
	c1 := chars[0].Character
	c2 := chars[len(chars)-1].Character

	if y < 1 || x < 1 || c2 < c1 || c1 < 32 || c2 > 126 {
		return nil, fmt.Errorf("%w: user-defined character bounds", ErrInvalidArgument)
	}

	out := []byte{0x1B, 0x26, byte(y), c1, c2, byte(x)}
	for _, ch := range chars {
		for col := 0; col < ch.CharacterWidth; col++ {
			for by := 0; by < y; by++ {
				var b byte
				for bit := 0; bit < 8; bit++ {
					row := by*8 + bit
					if row < ch.CanvasHeight && ch.Canvas[row*ch.CharacterWidth+col] {
						b |= 0x80 >> uint(bit)
					}
				}
				out = append(out, b)
			}
		}
	}
	return out, nil
}
