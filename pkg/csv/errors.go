package csv

import (
	"bytes"
	"fmt"

	"github.com/shapestone/shape-csvn/internal/fastparser"
)

// Common parsing errors
var (
	// ErrNotEnoughMem indicates the destination slice ran out of slots.
	ErrNotEnoughMem error = fastparser.NotEnoughMem

	// ErrInvalidCharacter indicates a byte rejected by the dialect: a quote
	// in an unquoted field or after a closing quote under strict parsing, or
	// an empty field under EmptyReject.
	ErrInvalidCharacter error = fastparser.InvalidCharacter

	// ErrInvalidConfig indicates an ambiguous dialect.
	ErrInvalidConfig = fastparser.ErrInvalidConfig
)

// Numeric result codes of the C-style interface.
const (
	CodeNotEnoughMem     = int(fastparser.NotEnoughMem)
	CodeInvalidCharacter = int(fastparser.InvalidCharacter)
)

// ParseError represents a parsing error with position information.
type ParseError struct {
	// Offset is the cursor position when the error was detected.
	Offset int
	// Line is the physical line of Offset (1-indexed).
	Line int
	// Column is the byte column of Offset (1-indexed).
	Column int
	// Err is ErrNotEnoughMem or ErrInvalidCharacter.
	Err error
}

// Error returns a formatted error message with position information.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error on line %d, column %d: %v", e.Line, e.Column, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Code returns the negative result code of e.
func (e *ParseError) Code() int {
	return fastparser.CodeOf(e.Err)
}

// Code returns the negative result code carried by err, or 0 when err is nil
// or carries no code.
func Code(err error) int {
	return fastparser.CodeOf(err)
}

// Result folds a Parse return pair into a single int: the count on success,
// the negative code on failure.
func Result(n int, err error) int {
	return fastparser.Result(n, err)
}

// newParseError locates pos in buf. Lines are counted physically, so a
// newline inside a quoted field starts a new line here.
func newParseError(buf []byte, pos int, newline byte, err error) *ParseError {
	if pos > len(buf) {
		pos = len(buf)
	}
	if pos < 0 {
		pos = 0
	}

	head := buf[:pos]
	line := 1 + bytes.Count(head, []byte{newline})
	column := pos - (bytes.LastIndexByte(head, newline) + 1) + 1

	return &ParseError{
		Offset: pos,
		Line:   line,
		Column: column,
		Err:    err,
	}
}
