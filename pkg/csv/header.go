package csv

import (
	"github.com/shapestone/shape-csvn/internal/fastparser"
	"github.com/shapestone/shape-csvn/internal/hash"
)

// Header maps the column names of a header row to column indices.
//
// Names are keyed by their xxHash64 so lookups by []byte do not allocate.
// Names whose hash is already taken by a different name are kept on a short
// overflow list and found by comparison. Duplicate names resolve to the first
// column.
type Header struct {
	names    []string
	ids      map[uint64]int
	overflow []int
}

// NewHeader builds a header from the first record of fields under the
// default newline.
func NewHeader(buf []byte, fields []Field) *Header {
	return Default.Header(buf, fields)
}

// Header builds a header from the first record of fields.
func (t *Tokenizer) Header(buf []byte, fields []Field) *Header {
	h := &Header{ids: make(map[uint64]int)}

	rows := t.Rows(buf, fields)
	if len(rows) == 0 {
		return h
	}

	sp := fastparser.GetScratch()
	scratch := *sp
	for i, f := range rows[0] {
		scratch = Unquote(scratch[:0], buf, f)
		h.add(i, string(scratch))
	}
	*sp = scratch
	fastparser.PutScratch(sp)

	return h
}

func (h *Header) add(col int, name string) {
	h.names = append(h.names, name)

	id := hash.ID(name)
	prev, taken := h.ids[id]
	switch {
	case !taken:
		h.ids[id] = col
	case h.names[prev] != name:
		h.overflow = append(h.overflow, col)
	}
}

// Len returns the number of columns.
func (h *Header) Len() int {
	return len(h.names)
}

// Names returns the column names in order.
func (h *Header) Names() []string {
	return h.names
}

// Index returns the column of name.
func (h *Header) Index(name string) (int, bool) {
	if col, ok := h.ids[hash.ID(name)]; ok && h.names[col] == name {
		return col, true
	}
	for _, col := range h.overflow {
		if h.names[col] == name {
			return col, true
		}
	}
	return -1, false
}

// IndexBytes returns the column of name without converting it to a string.
func (h *Header) IndexBytes(name []byte) (int, bool) {
	if col, ok := h.ids[hash.IDBytes(name)]; ok && h.names[col] == string(name) {
		return col, true
	}
	for _, col := range h.overflow {
		if h.names[col] == string(name) {
			return col, true
		}
	}
	return -1, false
}
