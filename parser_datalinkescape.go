package escpos

// clearBufferMagic is the literal suffix DLE 0x14 0x08 must be followed
// by for a ClearBuffer command; any deviation fails the match.
var clearBufferMagic = [...]byte{0x01, 0x03, 0x14, 0x01, 0x06, 0x02, 0x08}

// parseDLE dispatches the DLE-prefixed (0x10, Data Link Escape) subtree.
// buf[0] == 0x10.
func parseDLE(buf []byte, _ *ParserState) (Output, int, error) {
	if needMore(buf, 2) {
		return nil, 0, ErrNeedMore
	}
	sel := buf[1]

	switch sel {
	case 0x04:
		if needMore(buf, 3) {
			return nil, 0, ErrNeedMore
		}
		n := buf[2]
		if n < 1 || n > 4 {
			return nil, 0, newParseError(ErrInvalidArgument, 0x10, 0x04, n)
		}
		return CommandOutput{RequestStatus{plainCommand{CategoryStatusTransmission}, RequestedStatus(n)}}, 3, nil

	case 0x05:
		if needMore(buf, 3) {
			return nil, 0, ErrNeedMore
		}
		n := buf[2]
		if n < 1 || n > 2 {
			return nil, 0, newParseError(ErrInvalidArgument, 0x10, 0x05, n)
		}
		return CommandOutput{RealtimeRequestCommand{plainCommand{CategoryRealtime}, RealtimeRequest(n)}}, 3, nil

	case 0x02:
		return CommandOutput{newExecutePowerOffSequence()}, 2, nil

	case 0x14:
		return parseDLE14(buf)

	default:
		return nil, 0, newParseError(ErrUnknownSelector, 0x10, sel)
	}
}

// parseDLE14 handles the DLE 0x14 nested dispatch: 0x01 (real-time
// pulse) and 0x08 (clear buffer, matched against a literal magic
// suffix).
func parseDLE14(buf []byte) (Output, int, error) {
	if needMore(buf, 3) {
		return nil, 0, ErrNeedMore
	}
	sub := buf[2]

	switch sub {
	case 0x01:
		if needMore(buf, 5) {
			return nil, 0, ErrNeedMore
		}
		pinByte, n := buf[3], buf[4]
		if n < 1 || n > 8 {
			return nil, 0, newParseError(ErrInvalidArgument, 0x10, 0x14, 0x01, n)
		}
		connector := PulseConnector(pinByte)
		return CommandOutput{RealtimeGeneratePulse{
			plainCommand{CategoryRealtime},
			RealtimePulseInfo{Connector: connector, Units: n},
		}}, 5, nil

	case 0x08:
		total := 3 + len(clearBufferMagic)
		if needMore(buf, total) {
			return nil, 0, ErrNeedMore
		}
		for i, want := range clearBufferMagic {
			if buf[3+i] != want {
				return nil, 0, newParseError(ErrUnknownSelector, 0x10, 0x14, 0x08)
			}
		}
		return CommandOutput{newClearBuffer()}, total, nil

	default:
		return nil, 0, newParseError(ErrUnknownSelector, 0x10, 0x14, sub)
	}
}
