package fastparser

import "fmt"

// Kind classifies a parsed field.
type Kind uint8

const (
	// Unassigned marks a slot that was allocated but not yet filled.
	// It is never visible in a descriptor returned to the caller.
	Unassigned Kind = iota
	// Quoted is a field enclosed in quote bytes.
	Quoted
	// Text is an unquoted field.
	Text
	// Empty is a zero-width field between two adjacent delimiters.
	Empty
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case Unassigned:
		return "unassigned"
	case Quoted:
		return "quoted"
	case Text:
		return "text"
	case Empty:
		return "empty"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Field describes one parsed field as offsets into the caller's buffer.
//
// Start and End are inclusive. For quoted fields the span is the raw body
// between the quotes, so escaped quotes are still doubled. An empty quoted
// field has End == Start-1. Empty fields are zero span: Start == End, both
// at the offset of the second of the two adjacent delimiters, so the first
// delimiter sits at Start-1 unless leading spaces were skipped between them.
type Field struct {
	Start int
	End   int
	Line  int
	// Size is End - Start.
	Size int
	Kind Kind
}

// Len returns the number of content bytes covered by the field.
func (f Field) Len() int {
	if f.Kind == Empty || f.End < f.Start {
		return 0
	}
	return f.End - f.Start + 1
}

// Bytes returns the raw field content. The slice shares memory with buf.
func (f Field) Bytes(buf []byte) []byte {
	n := f.Len()
	if n == 0 || f.Start < 0 || f.End >= len(buf) {
		return nil
	}
	return buf[f.Start : f.End+1]
}

// AppendUnquoted appends the field content to dst with escaped quotes of a
// Quoted field collapsed, and returns the extended slice.
func (f Field) AppendUnquoted(dst, buf []byte) []byte {
	raw := f.Bytes(buf)
	if f.Kind != Quoted {
		return append(dst, raw...)
	}
	for i := 0; i < len(raw); i++ {
		dst = append(dst, raw[i])
		if raw[i] == Quote && i+1 < len(raw) && raw[i+1] == Quote {
			i++
		}
	}
	return dst
}

// fill stores the span and classification. Each slot is filled exactly once.
func (f *Field) fill(start, end, line int, kind Kind) {
	f.Start = start
	f.End = end
	f.Line = line
	f.Size = end - start
	f.Kind = kind
}
