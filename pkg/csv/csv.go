// Package csv provides an allocation-free CSV field tokenizer.
//
// Parsing produces Field descriptors: byte offsets into the caller's buffer
// plus the line and kind of each field. The caller owns both the buffer and
// the destination slice, so a parse never allocates.
//
// # Thread Safety
//
// A Tokenizer is immutable after New and safe for concurrent use. Each
// concurrent parse needs its own Cursor and destination slice; sharing either
// between goroutines is not supported and not guarded.
//
//	// Safe: one tokenizer, independent cursors
//	go func() { c := csv.NewCursor(); tok.Parse(buf1, &c, dst1) }()
//	go func() { c := csv.NewCursor(); tok.Parse(buf2, &c, dst2) }()
//
// # Parsing APIs
//
//   - Parse(buf, cursor, dst) - fills dst, or only counts when dst is nil
//   - Count(buf) - counting mode on a fresh cursor
//   - Tokenize(buf) - count, allocate exactly, then store
//
// # Example usage with Parse:
//
//	tok, err := csv.New(csv.WithStrict(true))
//	if err != nil {
//	    // invalid configuration
//	}
//	fields := make([]csv.Field, 64)
//	c := csv.NewCursor()
//	n, err := tok.Parse(data, &c, fields)
//	if err != nil {
//	    // *csv.ParseError with line and column
//	}
//	for _, f := range fields[:n] {
//	    fmt.Println(f.Line, csv.Text(data, f))
//	}
//
// # Dialect
//
// The delimiter and newline bytes are configurable; the quote byte is always
// '"'. Parsing is byte oriented and stops at len(buf) or at the first NUL.
package csv

import (
	"github.com/shapestone/shape-csvn/internal/fastparser"
	"github.com/shapestone/shape-csvn/internal/options"
)

// Field describes one parsed field. See fastparser.Field.
type Field = fastparser.Field

// Kind classifies a parsed field.
type Kind = fastparser.Kind

// Field kinds.
const (
	Unassigned = fastparser.Unassigned
	Quoted     = fastparser.Quoted
	Text       = fastparser.Text
	Empty      = fastparser.Empty
)

// Cursor is the resumable parse position.
type Cursor = fastparser.Cursor

// NewCursor returns a cursor ready for a fresh parse.
func NewCursor() Cursor {
	return fastparser.NewCursor()
}

// Reset re-arms c for a fresh parse. It must be called before reusing a
// cursor on a different buffer.
func Reset(c *Cursor) {
	fastparser.Reset(c)
}

// Tokenizer is a tokenizer bound to one dialect.
type Tokenizer struct {
	m *fastparser.Machine
}

// Default is the tokenizer for the default dialect: comma separated, LF
// terminated, lenient, empty fields emitted.
var Default = mustNew()

func mustNew(opts ...Option) *Tokenizer {
	t, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// New creates a tokenizer from the default dialect with opts applied.
// It returns an error wrapping ErrInvalidConfig when the resulting dialect is
// ambiguous.
func New(opts ...Option) (*Tokenizer, error) {
	cfg := fastparser.DefaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	m, err := fastparser.NewMachine(cfg)
	if err != nil {
		return nil, err
	}
	return &Tokenizer{m: m}, nil
}

// Config returns the dialect of the tokenizer.
func (t *Tokenizer) Config() Config {
	return t.m.Config()
}

// Parse tokenizes buf from c.Pos on and stores descriptors in dst from slot
// c.Next on. A nil dst selects counting mode.
//
// The count covers this call only. On failure the count is 0 and the error is
// a *ParseError locating c.Pos; errors.Is matches ErrNotEnoughMem or
// ErrInvalidCharacter.
func (t *Tokenizer) Parse(buf []byte, c *Cursor, dst []Field) (int, error) {
	n, err := t.m.Parse(buf, c, dst)
	if err != nil {
		return 0, newParseError(buf, c.Pos, t.m.Config().Newline, err)
	}
	return n, nil
}

// Count returns the number of fields in buf without storing them.
func (t *Tokenizer) Count(buf []byte) (int, error) {
	c := NewCursor()
	return t.Parse(buf, &c, nil)
}

// Tokenize counts the fields of buf, allocates a slice of exactly that size
// and fills it.
func (t *Tokenizer) Tokenize(buf []byte) ([]Field, error) {
	c := NewCursor()
	n, err := t.Parse(buf, &c, nil)
	if err != nil {
		return nil, err
	}

	fields := make([]Field, n)
	Reset(&c)
	if _, err := t.Parse(buf, &c, fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// Parse tokenizes buf with the default dialect.
func Parse(buf []byte, c *Cursor, dst []Field) (int, error) {
	return Default.Parse(buf, c, dst)
}

// Count returns the number of fields in buf under the default dialect.
func Count(buf []byte) (int, error) {
	return Default.Count(buf)
}

// Tokenize returns the descriptors of buf under the default dialect.
func Tokenize(buf []byte) ([]Field, error) {
	return Default.Tokenize(buf)
}
