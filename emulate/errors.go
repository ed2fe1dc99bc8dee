package emulate

import (
	"fmt"

	"github.com/thermalcode/escpos"
)

// UnsupportedFontError is raised when a Write requests a font the
// device profile does not support.
type UnsupportedFontError struct {
	Font escpos.Font
}

func (e *UnsupportedFontError) Error() string {
	return fmt.Sprintf("emulate: font %v is not supported by this device profile", e.Font)
}
