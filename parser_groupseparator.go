package escpos

// parseGS dispatches the GS-prefixed (0x1D, ASCII Group Separator)
// subtree. buf[0] == 0x1D.
func parseGS(buf []byte, _ *ParserState) (Output, int, error) {
	if needMore(buf, 2) {
		return nil, 0, ErrNeedMore
	}
	sel := buf[1]

	switch sel {
	case 0x21:
		if needMore(buf, 3) {
			return nil, 0, ErrNeedMore
		}
		n := buf[2]
		width := (n>>4)&0b111 + 1
		height := n&0b111 + 1
		return CommandOutput{SelectCharacterSize{plainCommand{CategoryCharacterEffect}, width, height}}, 3, nil

	case 0x56:
		return parseCutMode(buf)

	default:
		return nil, 0, newParseError(ErrUnknownSelector, 0x1D, sel)
	}
}

// parseCutMode handles GS 0x56 <mode-byte> [n].
func parseCutMode(buf []byte) (Output, int, error) {
	if needMore(buf, 3) {
		return nil, 0, ErrNeedMore
	}
	modeByte := buf[2]

	asShape := func(full, partial byte) (CuttingShape, bool) {
		switch modeByte {
		case full:
			return CuttingShapeFull, true
		case partial:
			return CuttingShapePartial, true
		}
		return 0, false
	}

	// Immediate cut: numeric (0x00/0x01) or ASCII ('0'/'1') form, no n.
	if shape, ok := asShape(0x00, 0x01); ok {
		return CommandOutput{SelectCutModeAndCutPaper{plainCommand{CategoryMechanicalControl}, Cut{shape}}}, 3, nil
	}
	if shape, ok := asShape('0', '1'); ok {
		return CommandOutput{SelectCutModeAndCutPaper{plainCommand{CategoryMechanicalControl}, Cut{shape}}}, 3, nil
	}

	if needMore(buf, 4) {
		return nil, 0, ErrNeedMore
	}
	n := buf[3]

	if shape, ok := asShape('A', 'B'); ok {
		return CommandOutput{SelectCutModeAndCutPaper{plainCommand{CategoryMechanicalControl}, FeedAndCut{n, shape}}}, 4, nil
	}
	if shape, ok := asShape('a', 'b'); ok {
		return CommandOutput{SelectCutModeAndCutPaper{plainCommand{CategoryMechanicalControl}, SetCuttingPosition{n, shape}}}, 4, nil
	}
	if shape, ok := asShape('g', 'h'); ok {
		return CommandOutput{SelectCutModeAndCutPaper{plainCommand{CategoryMechanicalControl}, FeedAndCutAndMoveToStart{n, shape}}}, 4, nil
	}

	return nil, 0, newParseError(ErrUnknownSelector, 0x1D, 0x56, modeByte)
}
