package fastparser

// byteClass is the dispatch category of a single input byte.
type byteClass uint8

const (
	classOther     byteClass = iota // field content
	classNewline                    // Config.Newline
	classDelimiter                  // Config.Delimiter
	classQuote                      // "
	classEnd                        // NUL terminator
)

// Machine is a tokenizer compiled for one Config.
//
// The 256-entry class table replaces per-byte comparisons against the
// configured delimiter and newline. A Machine is immutable once built and may
// be shared between goroutines; the Cursor and destination slice may not.
type Machine struct {
	cfg     Config
	classes [256]byteClass
}

// NewMachine validates cfg and builds its class table.
func NewMachine(cfg Config) (*Machine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Machine{cfg: cfg}
	// All bytes default to classOther
	m.classes[0] = classEnd
	m.classes[Quote] = classQuote
	m.classes[cfg.Newline] = classNewline
	m.classes[cfg.Delimiter] = classDelimiter

	return m, nil
}

// Config returns the configuration the machine was built from.
func (m *Machine) Config() Config {
	return m.cfg
}

// boundary reports whether pos may directly follow a closing quote under
// Strict: a delimiter, a newline, or the end of input.
func (m *Machine) boundary(buf []byte, pos int) bool {
	if pos >= len(buf) {
		return true
	}
	switch m.classes[buf[pos]] {
	case classDelimiter, classNewline, classEnd:
		return true
	default:
		return false
	}
}

var defaultMachine = mustMachine(DefaultConfig())

func mustMachine(cfg Config) *Machine {
	m, err := NewMachine(cfg)
	if err != nil {
		panic(err)
	}
	return m
}
