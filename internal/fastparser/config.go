package fastparser

import "fmt"

// Quote is the byte that opens and closes a quoted field.
const Quote = '"'

// EmptyPolicy decides what happens to two adjacent delimiters.
type EmptyPolicy uint8

const (
	// EmptyEmit produces an Empty descriptor (default).
	EmptyEmit EmptyPolicy = iota
	// EmptyReject fails the parse with InvalidCharacter.
	EmptyReject
	// EmptyIgnore skips the empty field without a descriptor.
	EmptyIgnore
)

// String returns the policy name used on the command line.
func (p EmptyPolicy) String() string {
	switch p {
	case EmptyEmit:
		return "emit"
	case EmptyReject:
		return "reject"
	case EmptyIgnore:
		return "ignore"
	default:
		return fmt.Sprintf("EmptyPolicy(%d)", uint8(p))
	}
}

// ParseEmptyPolicy maps a policy name back to its value.
func ParseEmptyPolicy(s string) (EmptyPolicy, error) {
	switch s {
	case "emit", "":
		return EmptyEmit, nil
	case "reject":
		return EmptyReject, nil
	case "ignore":
		return EmptyIgnore, nil
	default:
		return EmptyEmit, fmt.Errorf("%w: unknown empty field policy %q", ErrInvalidConfig, s)
	}
}

// Config selects the dialect the machine accepts.
type Config struct {
	// Strict rejects quote bytes inside unquoted fields and requires a closing
	// quote to be followed by a delimiter, a newline or the end of input.
	Strict bool

	// Newline is the line terminator. Default: '\n'
	Newline byte

	// Delimiter is the field separator. Default: ','
	Delimiter byte

	// ConsiderNewlineInQuotes attributes a multi-line quoted field, and the
	// fields after it on the same row, to the line after its last embedded
	// newline. When unset every field of a row keeps the line on which the row
	// started. Cursor.Line counts physical lines either way.
	ConsiderNewlineInQuotes bool

	// EmptyFields handles two adjacent delimiters. Default: EmptyEmit
	EmptyFields EmptyPolicy

	// SkipLeadingSpace drops the run of spaces right after a delimiter.
	SkipLeadingSpace bool
}

// DefaultConfig returns the default dialect: comma separated, LF terminated,
// lenient, empty fields emitted.
func DefaultConfig() Config {
	return Config{
		Strict:                  false,
		Newline:                 '\n',
		Delimiter:               ',',
		ConsiderNewlineInQuotes: false,
		EmptyFields:             EmptyEmit,
		SkipLeadingSpace:        false,
	}
}

// Validate reports a configuration the dispatch loop cannot disambiguate.
func (c Config) Validate() error {
	switch {
	case c.Delimiter == 0:
		return fmt.Errorf("%w: delimiter must not be NUL", ErrInvalidConfig)
	case c.Newline == 0:
		return fmt.Errorf("%w: newline must not be NUL", ErrInvalidConfig)
	case c.Delimiter == c.Newline:
		return fmt.Errorf("%w: delimiter and newline are both %q", ErrInvalidConfig, c.Delimiter)
	case c.Delimiter == Quote || c.Newline == Quote:
		return fmt.Errorf("%w: quote byte cannot be a delimiter or newline", ErrInvalidConfig)
	case c.SkipLeadingSpace && c.Delimiter == ' ':
		return fmt.Errorf("%w: space delimiter cannot be combined with leading space skipping", ErrInvalidConfig)
	case c.EmptyFields > EmptyIgnore:
		return fmt.Errorf("%w: %s", ErrInvalidConfig, c.EmptyFields)
	}
	return nil
}
