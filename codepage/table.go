// Package codepage implements the two single-byte encoding table families
// ESC/POS printers use (national ASCII variants and 8-bit code pages) and
// the greedy multi-table encoder that picks an active table per Unicode
// character while minimizing table switches.
package codepage

import "github.com/thermalcode/escpos"

// Table is the contract every encoding table implements: decode one
// byte to a rune, or encode one rune to a byte. Since every table here
// is single-byte, returning a byte by value already avoids any
// allocation, so Encode returns (byte, bool) directly.
type Table interface {
	// Name identifies the table for diagnostics. The encoder does not
	// use it; it compares Table values directly.
	Name() string
	// Decode consumes one byte and returns the rune it maps to, or
	// ok=false if this table has no mapping for b.
	Decode(b byte) (r rune, ok bool)
	// Encode returns the byte this table maps r to, or ok=false if r is
	// not representable in this table.
	Encode(r rune) (b byte, ok bool)
}
