package codepage

import "fmt"

// UnencodableError is raised by Encoder.Encode when no candidate table
// covers a character; callers may skip, substitute, or abort.
type UnencodableError struct {
	Char rune
}

func (e *UnencodableError) Error() string {
	return fmt.Sprintf("codepage: character %q is not encodable in any candidate table", e.Char)
}

// Chunk is one maximal run of characters encoded against a single table.
type Chunk struct {
	Bytes []byte
	Table Table
}

// Encoder greedily encodes a string against an ordered list of candidate
// tables, biasing towards whichever table was used last to minimize the
// number of table switches a caller must emit between chunks.
//
// Algorithm: for each character, try [prev]+candidates in order
// (skipping duplicates), select the first table that can encode it, and
// emit a new chunk only when the selected table differs from prev.
type Encoder struct {
	candidates []Table
	prev       Table
}

// NewEncoder builds an encoder trying candidates in the given order when
// the previously-used table can't encode a character.
func NewEncoder(candidates ...Table) *Encoder {
	return &Encoder{candidates: candidates}
}

// Reset clears the encoder's notion of the last-used table, so the next
// Encode call has no prev-first bias.
func (e *Encoder) Reset() { e.prev = nil }

// SetPrev seeds the prev-first bias, e.g. with the emulator's currently
// active ascii variant/codepage before encoding a new Write effect.
func (e *Encoder) SetPrev(t Table) { e.prev = t }

// Encode encodes s into a sequence of chunks, stopping at the first
// character no candidate table can encode.
func (e *Encoder) Encode(s string) ([]Chunk, error) {
	var chunks []Chunk
	var cur []byte
	var curTable Table

	flush := func() {
		if curTable != nil && len(cur) > 0 {
			chunks = append(chunks, Chunk{Bytes: cur, Table: curTable})
		}
		cur = nil
	}

	for _, ch := range s {
		b, table, ok := e.encodeOne(ch)
		if !ok {
			flush()
			return chunks, &UnencodableError{Char: ch}
		}
		if table != curTable {
			flush()
			curTable = table
		}
		cur = append(cur, b)
		e.prev = table
	}
	flush()
	return chunks, nil
}

// encodeOne tries prev first (if set), then the candidate list in order,
// skipping prev if it also appears there to avoid a duplicate attempt.
func (e *Encoder) encodeOne(ch rune) (byte, Table, bool) {
	if e.prev != nil {
		if b, ok := e.prev.Encode(ch); ok {
			return b, e.prev, true
		}
	}
	for _, t := range e.candidates {
		if t == e.prev {
			continue
		}
		if b, ok := t.Encode(ch); ok {
			return b, t, true
		}
	}
	return 0, nil, false
}
