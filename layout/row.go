// Package layout builds fixed-width table rows out of plain text cells,
// emitting one Write effect per line.
package layout

import (
	"strings"

	"github.com/thermalcode/escpos"
	"github.com/thermalcode/escpos/emulate"
)

// Cell is one column of a Row: a byte-width budget, remaining content to
// lay out, and the alignment used to pad a short line to width.
type Cell struct {
	Width     int
	Content   string
	Alignment escpos.Justification
}

// Row lazily emits one line at a time across a fixed set of cells until
// every cell's content is exhausted.
type Row struct {
	cells []Cell
}

// NewRow constructs a Row over the given cells. The cells slice is
// copied; callers may discard their own copy afterwards.
func NewRow(cells []Cell) *Row {
	r := &Row{cells: make([]Cell, len(cells))}
	copy(r.cells, cells)
	return r
}

// Done reports whether every cell's content has been consumed.
func (r *Row) Done() bool {
	for _, c := range r.cells {
		if len(c.Content) > 0 {
			return false
		}
	}
	return true
}

// NextLine consumes up to Width bytes from each cell (preferring a word
// boundary), pads each piece to its cell's width using its alignment,
// uppercases the assembled line, and returns it as a single Write
// effect.
func (r *Row) NextLine() emulate.Effect {
	var b strings.Builder
	for i := range r.cells {
		c := &r.cells[i]
		prefix, rest := takePrefixByWordsBytes(c.Content, c.Width)
		c.Content = strings.TrimLeft(rest, " \t\n\r")
		b.WriteString(pad(prefix, c.Width, c.Alignment))
	}
	return emulate.Write{
		Contents: emulate.Utf8Contents{Text: strings.ToUpper(b.String())},
	}
}

// Lines drains the row completely, returning every line as a Write
// effect in order.
func (r *Row) Lines() []emulate.Effect {
	var effects []emulate.Effect
	for !r.Done() {
		effects = append(effects, r.NextLine())
	}
	return effects
}

// takePrefixByWordsBytes returns the longest prefix of s whose UTF-8
// byte length is <= width, ending on a word boundary when one exists
// within that span; s is never split mid code point. If s already fits
// within width it is returned whole. If no whitespace appears within
// the byte budget (a single long word), the widest valid-rune prefix
// that fits is returned instead.
func takePrefixByWordsBytes(s string, width int) (prefix, rest string) {
	if len(s) <= width {
		return s, ""
	}

	fitEnd := 0      // byte offset of the widest rune-aligned prefix <= width
	lastSpaceEnd := -1 // byte offset just past the last whitespace run inside the fit window
	inSpace := false

	for i, r := range s {
		if i > width {
			break
		}
		rl := len(string(r))
		if i+rl > width {
			break
		}
		fitEnd = i + rl

		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			inSpace = true
			lastSpaceEnd = fitEnd
		} else if inSpace {
			inSpace = false
		}
	}

	if lastSpaceEnd > 0 {
		cut := lastSpaceEnd
		for cut > 0 && isSpaceByte(s[cut-1]) {
			cut--
		}
		return s[:cut], s[lastSpaceEnd:]
	}
	return s[:fitEnd], s[fitEnd:]
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// pad fits s into width bytes using alignment; s is never longer than
// width since takePrefixByWordsBytes enforces the budget.
func pad(s string, width int, align escpos.Justification) string {
	deficit := width - len(s)
	if deficit <= 0 {
		return s
	}
	switch align {
	case escpos.JustificationRight:
		return strings.Repeat(" ", deficit) + s
	case escpos.JustificationCenter:
		left := deficit / 2
		right := deficit - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", deficit)
	}
}
