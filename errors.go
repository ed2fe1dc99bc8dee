package escpos

import (
	"errors"
	"fmt"
)

// ErrNeedMore signals that the supplied buffer ends mid-command; the
// caller must resume with more bytes and will receive the exact same
// outcome as if the buffer had been whole.
var ErrNeedMore = errors.New("escpos: need more bytes")

// ErrUnimplemented signals a selector the catalogue recognizes in shape
// but whose writer/parser pairing is not implemented.
var ErrUnimplemented = errors.New("escpos: unimplemented selector")

// ErrUnknownSelector signals a byte sequence that does not match any
// entry in a dispatch level.
var ErrUnknownSelector = errors.New("escpos: unknown selector")

// ErrInvalidArgument signals a payload constraint violation (an enum
// value outside its legal range, a count outside 1..=8, and so on).
var ErrInvalidArgument = errors.New("escpos: invalid argument")

// ParseError decorates one of the sentinels above with the selector path
// that produced it, so callers can resynchronize or report context.
type ParseError struct {
	Err  error
	Path []byte
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("escpos: %v (selector path % X)", e.Err, e.Path)
}

func (e *ParseError) Unwrap() error { return e.Err }

func newParseError(err error, path ...byte) error {
	return &ParseError{Err: err, Path: append([]byte(nil), path...)}
}
