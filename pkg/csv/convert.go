package csv

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-csvn/internal/parser"
)

// Text returns the raw content of f as a string. Escaped quotes inside a
// quoted field stay doubled; use Unquote to collapse them.
func Text(buf []byte, f Field) string {
	return string(f.Bytes(buf))
}

// Unquote appends the content of f to dst with escaped quotes collapsed and
// returns the extended slice. It allocates only when dst lacks capacity.
//
// Example:
//
//	var scratch []byte
//	for _, f := range fields {
//	    scratch = csv.Unquote(scratch[:0], data, f)
//	    process(scratch)
//	}
func Unquote(dst, buf []byte, f Field) []byte {
	return f.AppendUnquoted(dst, buf)
}

// Records groups the descriptors of buf into records of unquoted strings.
// fields must come from a single parse of buf with the default newline.
//
// Example:
//
//	fields, _ := csv.Tokenize(data)
//	records := csv.Records(data, fields)
//	// records is [][]string{{"name","age"}, {"Alice","30"}}
func Records(buf []byte, fields []Field) [][]string {
	return Default.Records(buf, fields)
}

// Records groups the descriptors of buf into records of unquoted strings
// using the tokenizer's newline.
func (t *Tokenizer) Records(buf []byte, fields []Field) [][]string {
	return t.parser(buf, fields).Records()
}

// Rows splits fields into records without copying descriptors.
func (t *Tokenizer) Rows(buf []byte, fields []Field) [][]Field {
	return t.parser(buf, fields).Rows()
}

// ToAST builds a shape AST from the descriptors of buf with the default
// newline.
//
// Returns an ast.ArrayDataNode representing the records:
//   - *ast.ArrayDataNode for the document (array of records)
//   - Each record is an *ast.ArrayDataNode of fields
//   - Each field is an *ast.LiteralNode holding the unquoted string, positioned
//     at its first byte
func ToAST(buf []byte, fields []Field) (ast.SchemaNode, error) {
	return Default.ToAST(buf, fields)
}

// ToAST builds a shape AST using the tokenizer's newline.
func (t *Tokenizer) ToAST(buf []byte, fields []Field) (ast.SchemaNode, error) {
	return t.parser(buf, fields).Parse()
}

func (t *Tokenizer) parser(buf []byte, fields []Field) *parser.Parser {
	return parser.NewParserWithOptions(buf, fields, parser.Options{
		Newline: t.m.Config().Newline,
	})
}

// NodeToRecords converts an AST built by ToAST back to records.
//
//   - *ast.ArrayDataNode (document) → [][]string
//   - *ast.ArrayDataNode (record) → one []string
//   - *ast.LiteralNode (field) → string
//
// Unexpected nodes convert to empty records.
func NodeToRecords(node ast.SchemaNode) [][]string {
	doc, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return [][]string{}
	}

	elements := doc.Elements()
	records := make([][]string, len(elements))
	for i, elem := range elements {
		rec, ok := elem.(*ast.ArrayDataNode)
		if !ok {
			records[i] = []string{}
			continue
		}

		fieldNodes := rec.Elements()
		record := make([]string, len(fieldNodes))
		for j, fn := range fieldNodes {
			record[j] = literalString(fn)
		}
		records[i] = record
	}
	return records
}

func literalString(node ast.SchemaNode) string {
	lit, ok := node.(*ast.LiteralNode)
	if !ok {
		return ""
	}
	// CSV fields are always strings
	if s, ok := lit.Value().(string); ok {
		return s
	}
	return fmt.Sprintf("%v", lit.Value())
}
