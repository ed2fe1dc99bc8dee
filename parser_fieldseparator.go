package escpos

// parseFS dispatches the FS-prefixed (0x1C, Field Separator) subtree.
// buf[0] == 0x1C. Only one command lives under this prefix.
func parseFS(buf []byte, _ *ParserState) (Output, int, error) {
	if needMore(buf, 2) {
		return nil, 0, ErrNeedMore
	}
	sel := buf[1]

	switch sel {
	case 0x2E:
		return CommandOutput{newCancelKanjiCharacterMode()}, 2, nil
	default:
		return nil, 0, newParseError(ErrUnknownSelector, 0x1C, sel)
	}
}
