package emulate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thermalcode/escpos"
)

// TestTMT88VSupportsFontsAAndBOnly checks the device profile's font
// capability set matches the TM-T88V's two supported fonts.
func TestTMT88VSupportsFontsAAndBOnly(t *testing.T) {
	p := TMT88V()
	assert.True(t, p.supportsFont(escpos.FontA))
	assert.True(t, p.supportsFont(escpos.FontB))
	assert.False(t, p.supportsFont(escpos.FontC))
}

// TestTMT88VListsAllVariantsAndCodepages checks the profile's search
// order is complete: 18 ascii variants, 15 code pages.
func TestTMT88VListsAllVariantsAndCodepages(t *testing.T) {
	p := TMT88V()
	assert.Len(t, p.AsciiVariants, 18)
	assert.Len(t, p.Codepages, 15)
}
