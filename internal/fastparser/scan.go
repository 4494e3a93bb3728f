package fastparser

// scanQuoted consumes a quoted field body. The opening quote has already been
// consumed; the closing quote is left for the dispatch loop.
//
// A missing closing quote is not an error: the field ends with the input.
func (m *Machine) scanQuoted(buf []byte, c *Cursor, dst []Field) error {
	start := c.Pos
	line := c.rowLine()

scan:
	for c.Pos < len(buf) {
		switch m.classes[buf[c.Pos]] {
		case classEnd:
			break scan
		case classQuote:
			// "" is an escaped quote, anything else closes the field
			if c.Pos+1 >= len(buf) || buf[c.Pos+1] != Quote {
				break scan
			}
			c.Pos += 2
			continue
		case classNewline:
			c.Line++
			if m.cfg.ConsiderNewlineInQuotes {
				line = c.Line
			} else {
				c.spill++
			}
		}
		c.Pos++
	}

	return emit(c, dst, start, c.Pos-1, line, Quoted)
}

// scanPlain consumes an unquoted field and stops on the byte that ends it, so
// the dispatch loop still sees the delimiter or newline.
func (m *Machine) scanPlain(buf []byte, c *Cursor, dst []Field) error {
	start := c.Pos
	line := c.rowLine()

scan:
	for ; c.Pos < len(buf); c.Pos++ {
		switch m.classes[buf[c.Pos]] {
		case classDelimiter, classNewline, classEnd:
			break scan
		case classQuote:
			if m.cfg.Strict {
				return InvalidCharacter
			}
		}
	}

	return emit(c, dst, start, c.Pos-1, line, Text)
}
