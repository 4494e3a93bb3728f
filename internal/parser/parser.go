// Package parser assembles field descriptors into records and shape AST
// documents.
//
// The tokenizer only reports fields. Record boundaries are recovered from the
// bytes between two consecutive descriptors: a newline byte there (outside any
// quotes, since quoted bodies lie inside descriptors) ends the record. This
// holds regardless of how line numbers were attributed.
package parser

import (
	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-csvn/internal/fastparser"
)

// Options configures record assembly.
type Options struct {
	// Newline is the record terminator the fields were tokenized with.
	// Default: '\n'
	Newline byte
}

// DefaultOptions returns default assembly options.
func DefaultOptions() Options {
	return Options{Newline: '\n'}
}

// Parser builds records from the descriptors of one contiguous parse.
type Parser struct {
	buf    []byte
	fields []fastparser.Field
	opts   Options
}

// NewParser creates a parser over buf and the descriptors produced from it.
func NewParser(buf []byte, fields []fastparser.Field) *Parser {
	return NewParserWithOptions(buf, fields, DefaultOptions())
}

// NewParserWithOptions creates a parser with custom options.
func NewParserWithOptions(buf []byte, fields []fastparser.Field, opts Options) *Parser {
	if opts.Newline == 0 {
		opts.Newline = '\n'
	}
	return &Parser{buf: buf, fields: fields, opts: opts}
}

// Rows splits the descriptors into records. Each record is a subslice of the
// input descriptors; nothing is copied.
func (p *Parser) Rows() [][]fastparser.Field {
	if len(p.fields) == 0 {
		return [][]fastparser.Field{}
	}

	rows := make([][]fastparser.Field, 0, 16)
	start := 0
	for i := 1; i < len(p.fields); i++ {
		if p.newlineBetween(p.fields[i-1], p.fields[i]) {
			rows = append(rows, p.fields[start:i])
			start = i
		}
	}

	return append(rows, p.fields[start:])
}

// Records returns every record as unquoted strings.
func (p *Parser) Records() [][]string {
	rows := p.Rows()
	records := make([][]string, len(rows))

	sp := fastparser.GetScratch()
	scratch := *sp
	for i, row := range rows {
		record := make([]string, len(row))
		for j, f := range row {
			scratch = f.AppendUnquoted(scratch[:0], p.buf)
			record[j] = string(scratch)
		}
		records[i] = record
	}
	*sp = scratch
	fastparser.PutScratch(sp)

	return records
}

// Parse builds the AST for the descriptors.
//
// Returns *ast.ArrayDataNode - an array of records, where each record is an
// ArrayDataNode of LiteralNode fields. A field is positioned at its first
// byte, which for quoted fields is the opening quote.
func (p *Parser) Parse() (ast.SchemaNode, error) {
	rows := p.Rows()
	records := make([]ast.SchemaNode, 0, len(rows))

	lines := lineTracker{buf: p.buf, newline: p.opts.Newline, line: 1}
	sp := fastparser.GetScratch()
	scratch := *sp
	defer func() {
		*sp = scratch
		fastparser.PutScratch(sp)
	}()

	for _, row := range rows {
		fields := make([]ast.SchemaNode, 0, len(row))
		var rowPos ast.Position

		for j, f := range row {
			pos := lines.position(fieldOffset(f))
			if j == 0 {
				rowPos = pos
			}
			scratch = f.AppendUnquoted(scratch[:0], p.buf)
			fields = append(fields, ast.NewLiteralNode(string(scratch), pos))
		}

		records = append(records, ast.NewArrayDataNode(fields, rowPos))
	}

	return ast.NewArrayDataNode(records, ast.ZeroPosition()), nil
}

// newlineBetween reports whether a record terminator separates a and b.
func (p *Parser) newlineBetween(a, b fastparser.Field) bool {
	from := a.End + 1
	to := fieldOffset(b)
	if from < 0 {
		from = 0
	}
	if to > len(p.buf) {
		to = len(p.buf)
	}

	for i := from; i < to; i++ {
		if p.buf[i] == p.opts.Newline {
			return true
		}
	}
	return false
}

// fieldOffset returns the offset of the first byte belonging to f.
func fieldOffset(f fastparser.Field) int {
	if f.Kind == fastparser.Quoted && f.Start > 0 {
		return f.Start - 1
	}
	return f.Start
}

// lineTracker converts increasing byte offsets into physical line/column
// positions in a single forward pass.
type lineTracker struct {
	buf       []byte
	newline   byte
	scanned   int
	line      int
	lineStart int
}

func (t *lineTracker) position(offset int) ast.Position {
	if offset > len(t.buf) {
		offset = len(t.buf)
	}
	for ; t.scanned < offset; t.scanned++ {
		if t.buf[t.scanned] == t.newline {
			t.line++
			t.lineStart = t.scanned + 1
		}
	}
	return ast.NewPosition(offset, t.line, offset-t.lineStart+1)
}
