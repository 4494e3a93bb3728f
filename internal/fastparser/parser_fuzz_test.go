package fastparser

import (
	"testing"
)

// FuzzParse checks that parsing never panics and that counting and storing
// agree on every input and dialect.
// Run with: go test -fuzz=FuzzParse -fuzztime=30s ./internal/fastparser
func FuzzParse(f *testing.F) {
	seeds := []string{
		"",
		"a",
		",",
		",,",
		"\n",
		"\"",
		"\"\"",
		"\"\"\"",
		"a,b,c",
		"a,,b",
		"\"a\"\"b\"",
		"\"x\ny\",b\nc",
		"a\"b",
		"\"a\"b",
		"a, b,  c",
		"a\x00b",
	}
	for _, s := range seeds {
		f.Add(s, uint8(0))
	}

	f.Fuzz(func(t *testing.T, input string, flags uint8) {
		cfg := DefaultConfig()
		cfg.Strict = flags&1 != 0
		cfg.ConsiderNewlineInQuotes = flags&2 != 0
		cfg.SkipLeadingSpace = flags&4 != 0
		cfg.EmptyFields = EmptyPolicy((flags >> 3) % 3)
		m, err := NewMachine(cfg)
		if err != nil {
			t.Fatalf("NewMachine: %v", err)
		}

		buf := []byte(input)
		c := NewCursor()
		n, countErr := m.Parse(buf, &c, nil)
		if c.Next != 0 {
			t.Fatalf("counting mode moved Next to %d", c.Next)
		}

		dst := make([]Field, n)
		Reset(&c)
		stored, storeErr := m.Parse(buf, &c, dst)

		if (countErr == nil) != (storeErr == nil) {
			t.Fatalf("count error %v, store error %v", countErr, storeErr)
		}
		if countErr != nil {
			return
		}
		if stored != n {
			t.Fatalf("count %d, stored %d", n, stored)
		}
		for i, fd := range dst {
			if fd.Kind == Unassigned {
				t.Fatalf("field %d left unassigned", i)
			}
			if fd.Size != fd.End-fd.Start {
				t.Fatalf("field %d: size %d for span %d..%d", i, fd.Size, fd.Start, fd.End)
			}
			if fd.Start < 0 || fd.End >= len(buf) || fd.Line < 1 {
				t.Fatalf("field %d out of range: %+v (len %d)", i, fd, len(buf))
			}
		}
	})
}
