// Package stream linearizes a sequence of escpos.Output values into the
// byte stream a printer connection expects. It has no opinion on how
// that connection is established; callers supply any io.Writer.
package stream

import (
	"fmt"
	"io"

	"github.com/thermalcode/escpos"
)

// Linearize writes every output in order to w, encoding each Command
// with escpos.Encode and passing each Raw byte through unchanged. It
// stops and returns the byte count written so far on the first error,
// whether from encoding or from w itself.
func Linearize(outputs []escpos.Output, w io.Writer) (int, error) {
	total := 0
	for i, o := range outputs {
		n, err := writeOne(o, w)
		total += n
		if err != nil {
			return total, fmt.Errorf("stream: output %d: %w", i, err)
		}
	}
	return total, nil
}

func writeOne(o escpos.Output, w io.Writer) (int, error) {
	switch v := o.(type) {
	case escpos.CommandOutput:
		return escpos.Write(v.Command, w)
	case escpos.Raw:
		n, err := w.Write([]byte{byte(v)})
		return n, err
	default:
		return 0, fmt.Errorf("stream: unknown output type %T", o)
	}
}
