package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thermalcode/escpos"
	"github.com/thermalcode/escpos/emulate"
)

func lineText(t *testing.T, effect emulate.Effect) string {
	t.Helper()
	w, ok := effect.(emulate.Write)
	require.True(t, ok)
	c, ok := w.Contents.(emulate.Utf8Contents)
	require.True(t, ok)
	return c.Text
}

// TestRowSingleCellFitsOnOneLine checks content shorter than the cell
// width is emitted as a single padded, uppercased line.
func TestRowSingleCellFitsOnOneLine(t *testing.T) {
	row := NewRow([]Cell{{Width: 10, Content: "hi", Alignment: escpos.JustificationLeft}})
	lines := row.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "HI        ", lineText(t, lines[0]))
}

// TestRowWrapsOnWordBoundary checks content longer than the cell width
// wraps at a word boundary rather than splitting a word.
func TestRowWrapsOnWordBoundary(t *testing.T) {
	row := NewRow([]Cell{{Width: 5, Content: "hello world", Alignment: escpos.JustificationLeft}})
	lines := row.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "HELLO", lineText(t, lines[0]))
	assert.Equal(t, "WORLD", lineText(t, lines[1]))
}

// TestRowHardWrapsAWordWiderThanWidth checks a single word longer than
// the cell width is hard-wrapped rather than looping forever.
func TestRowHardWrapsAWordWiderThanWidth(t *testing.T) {
	row := NewRow([]Cell{{Width: 3, Content: "abcdefgh", Alignment: escpos.JustificationLeft}})
	lines := row.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "ABC", lineText(t, lines[0]))
	assert.Equal(t, "DEF", lineText(t, lines[1]))
	assert.Equal(t, "GH ", lineText(t, lines[2]))
}

// TestRowAlignmentPadding checks center and right alignment pad on the
// correct sides.
func TestRowAlignmentPadding(t *testing.T) {
	row := NewRow([]Cell{
		{Width: 6, Content: "hi", Alignment: escpos.JustificationRight},
		{Width: 6, Content: "lo", Alignment: escpos.JustificationCenter},
	})
	lines := row.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "    HI  LO  ", lineText(t, lines[0]))
}

// TestRowMultiCellRowsFinishTogether checks Done only becomes true once
// every cell's content is exhausted, even if one cell is much shorter.
func TestRowMultiCellRowsFinishTogether(t *testing.T) {
	row := NewRow([]Cell{
		{Width: 3, Content: "a", Alignment: escpos.JustificationLeft},
		{Width: 3, Content: "bbbbbbbbb", Alignment: escpos.JustificationLeft},
	})
	lines := row.Lines()
	require.Len(t, lines, 3)
	assert.True(t, row.Done())
}

// TestRowReproducesContentModuloWhitespace checks that concatenating
// every emitted line and stripping pad spaces reproduces the original
// content with inter-word whitespace collapsed to single spaces.
func TestRowReproducesContentModuloWhitespace(t *testing.T) {
	original := "the quick brown fox jumps"
	row := NewRow([]Cell{{Width: 8, Content: original, Alignment: escpos.JustificationLeft}})

	var words []string
	for _, line := range row.Lines() {
		words = append(words, strings.Fields(lineText(t, line))...)
	}
	assert.Equal(t, strings.ToUpper(original), strings.Join(words, " "))
}
