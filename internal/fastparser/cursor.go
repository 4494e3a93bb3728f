package fastparser

// Cursor is the resumable parse position.
//
// A Cursor may be reused across Parse calls over consecutive parts of the
// same input, and Next keeps growing across those calls. Reset it before
// parsing an unrelated buffer. A Cursor and the destination slice it fills
// belong to one goroutine for the duration of a call.
type Cursor struct {
	// Pos is the offset of the next unconsumed byte.
	Pos int
	// Next is the index of the next free descriptor slot.
	Next int
	// Line is the current 1-based physical line. It counts every newline
	// byte, including those inside quoted fields.
	Line int

	// spill counts the newlines consumed inside quoted fields since the
	// current row started, unless ConsiderNewlineInQuotes is set.
	spill int
}

// NewCursor returns a cursor ready for a fresh parse.
func NewCursor() Cursor {
	return Cursor{Line: 1}
}

// Reset re-arms c for a fresh parse.
func Reset(c *Cursor) {
	c.Pos = 0
	c.Next = 0
	c.Line = 1
	c.spill = 0
}

// rowLine is the line attributed to a field starting at the cursor: the line
// the current row opened on, or the physical line when newlines inside quotes
// are considered.
func (c *Cursor) rowLine() int {
	return c.Line - c.spill
}

// allocate hands out the next free slot of dst.
//
// A nil dst means counting mode: no slot is produced and Next is left alone.
// The capacity is len(dst); once Next reaches it every call fails.
func allocate(c *Cursor, dst []Field) (*Field, error) {
	if dst == nil {
		return nil, nil
	}
	if c.Next < 0 || c.Next >= len(dst) {
		return nil, NotEnoughMem
	}

	f := &dst[c.Next]
	c.Next++
	*f = Field{Kind: Unassigned}

	return f, nil
}

// emit allocates a slot and fills it, doing nothing in counting mode.
func emit(c *Cursor, dst []Field, start, end, line int, kind Kind) error {
	f, err := allocate(c, dst)
	if err != nil {
		return err
	}
	if f != nil {
		f.fill(start, end, line, kind)
	}
	return nil
}
