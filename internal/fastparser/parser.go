// Package fastparser implements an allocation-free CSV field tokenizer.
//
// The caller owns both the input buffer and the destination slice of Field
// descriptors. Parse walks the buffer once, classifying each byte and
// dispatching to the quoted or unquoted field scanner, and records every
// field as offsets into the buffer. Nothing is copied and nothing is
// allocated.
//
// Passing a nil destination slice selects counting mode, which returns the
// number of fields without storing them. The usual pattern is to count, size
// the slice, Reset the cursor and parse again:
//
//	c := NewCursor()
//	n, err := Parse(data, &c, nil)
//	if err != nil {
//	    return err
//	}
//	fields := make([]Field, n)
//	Reset(&c)
//	_, err = Parse(data, &c, fields)
//
// The input ends at len(buf) or at the first NUL byte, whichever comes first.
package fastparser

// Parse tokenizes buf with the default configuration.
func Parse(buf []byte, c *Cursor, dst []Field) (int, error) {
	return defaultMachine.Parse(buf, c, dst)
}

// Parse tokenizes buf starting at c.Pos and stores descriptors in dst from
// slot c.Next on. A nil dst only counts.
//
// It returns the number of fields parsed by this call. On the first fatal
// condition it returns 0 and a Code; the cursor is left where the failure
// was detected so c.Pos can be used for diagnostics.
func (m *Machine) Parse(buf []byte, c *Cursor, dst []Field) (int, error) {
	parsed := 0

	for c.Pos < len(buf) {
		switch m.classes[buf[c.Pos]] {
		case classEnd:
			return parsed, nil

		case classNewline:
			c.Line++
			c.spill = 0
			c.Pos++

		case classDelimiter:
			c.Pos++
			if m.cfg.SkipLeadingSpace {
				for c.Pos < len(buf) && buf[c.Pos] == ' ' {
					c.Pos++
				}
			}
			if c.Pos >= len(buf) || m.classes[buf[c.Pos]] != classDelimiter {
				continue
			}

			switch m.cfg.EmptyFields {
			case EmptyReject:
				return 0, InvalidCharacter
			case EmptyIgnore:
				continue
			}
			if err := emit(c, dst, c.Pos, c.Pos, c.rowLine(), Empty); err != nil {
				return 0, err
			}
			parsed++

		case classQuote:
			c.Pos++ // opening quote
			if err := m.scanQuoted(buf, c, dst); err != nil {
				return 0, err
			}
			if c.Pos < len(buf) && buf[c.Pos] == Quote {
				c.Pos++
			}
			if m.cfg.Strict && !m.boundary(buf, c.Pos) {
				return 0, InvalidCharacter
			}
			parsed++

		default:
			if err := m.scanPlain(buf, c, dst); err != nil {
				return 0, err
			}
			parsed++
		}
	}

	return parsed, nil
}

// Result folds a Parse return pair into the C-style convention: the field
// count when err is nil, the negative code otherwise.
func Result(n int, err error) int {
	if err != nil {
		if code := CodeOf(err); code != 0 {
			return code
		}
		return int(InvalidCharacter)
	}
	return n
}
