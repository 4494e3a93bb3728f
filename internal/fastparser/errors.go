package fastparser

import (
	"errors"
	"fmt"
)

// Code is a fatal parse condition. Its numeric value is the negative result
// code callers of the C-style interface expect.
type Code int

const (
	// NotEnoughMem reports that the destination slice ran out of slots.
	NotEnoughMem Code = -1
	// InvalidCharacter reports a byte rejected by the configuration.
	// Cursor.Pos points at the offending byte.
	InvalidCharacter Code = -2
)

// Error implements the error interface.
func (c Code) Error() string {
	switch c {
	case NotEnoughMem:
		return "not enough memory"
	case InvalidCharacter:
		return "invalid character"
	default:
		return fmt.Sprintf("error code %d", int(c))
	}
}

// ErrInvalidConfig is wrapped by Config.Validate failures.
var ErrInvalidConfig = errors.New("invalid tokenizer configuration")

// CodeOf returns the numeric code carried by err, 0 for nil and for errors
// that carry no code.
func CodeOf(err error) int {
	if err == nil {
		return 0
	}
	var c Code
	if errors.As(err, &c) {
		return int(c)
	}
	return 0
}
