// Command csvn tokenizes CSV input and prints the field descriptors.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/shapestone/shape-csvn/internal/source"
	"github.com/shapestone/shape-csvn/pkg/csv"
)

const (
	appName = "csvn"
	version = "0.1.0"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix(appName + ": ")

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 2
	}

	cmd := args[0]
	switch cmd {
	case "fields":
		return cmdFields(args[1:], stdout, stderr)
	case "count":
		return cmdCount(args[1:], stdout, stderr)
	case "records":
		return cmdRecords(args[1:], stdout, stderr)
	case "repl":
		return cmdRepl(args[1:], stdout, stderr)
	case "version":
		fmt.Fprintln(stdout, version)
		return 0
	case "-h", "--help", "help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "%s: unknown command %q\n", appName, cmd)
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, `csvn %s

Usage:
  %s fields  [flags] [file | -]    Print one line per field descriptor.
  %s count   [flags] [file | -]    Count fields without storing them.
  %s records [flags] [file | -]    Print records as tab separated text.
  %s repl    [flags]               Tokenize lines typed interactively.
  %s version                       Print the version.

Flags:
  -delim c         field delimiter (default ",", escapes like \t allowed)
  -newline c       line terminator (default "\n")
  -strict          reject stray quotes
  -consider-nl     count newlines inside quoted fields
  -empty policy    emit, reject or ignore empty fields (default emit)
  -skip-space      skip spaces after a delimiter
  -cap n           fixed descriptor capacity (0 sizes the slice first)

Compressed input is recognized by extension: .gz .zst .lz4 .s2
`, version, appName, appName, appName, appName, appName)
}

// command is the shared setup of the file-reading subcommands.
type command struct {
	tok  *csv.Tokenizer
	cap  int
	data []byte
	done func()
}

func setup(name string, args []string, stderr io.Writer) (*command, int) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	d := registerDialect(fs)
	if err := fs.Parse(args); err != nil {
		return nil, 2
	}
	if fs.NArg() > 1 {
		fmt.Fprintf(stderr, "usage: %s %s [flags] [file | -]\n", appName, name)
		return nil, 2
	}

	tok, err := d.tokenizer()
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return nil, 2
	}

	input := source.Stdin
	if fs.NArg() == 1 {
		input = fs.Arg(0)
	}
	data, done, err := source.Load(input)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return nil, 1
	}

	return &command{tok: tok, cap: d.cap, data: data, done: done}, 0
}

// fields parses the whole input, either into a slice of exactly the counted
// size or into a fixed capacity.
func (c *command) fields() ([]csv.Field, error) {
	if c.cap <= 0 {
		return c.tok.Tokenize(c.data)
	}

	dst := make([]csv.Field, c.cap)
	cur := csv.NewCursor()
	n, err := c.tok.Parse(c.data, &cur, dst)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

func cmdFields(args []string, stdout, stderr io.Writer) int {
	c, code := setup("fields", args, stderr)
	if c == nil {
		return code
	}
	defer c.done()

	fields, err := c.fields()
	if err != nil {
		return reportParseError(stderr, err)
	}
	writeFields(stdout, c.data, fields)
	return 0
}

func cmdCount(args []string, stdout, stderr io.Writer) int {
	c, code := setup("count", args, stderr)
	if c == nil {
		return code
	}
	defer c.done()

	n, err := c.tok.Count(c.data)
	if err != nil {
		return reportParseError(stderr, err)
	}
	fmt.Fprintln(stdout, n)
	return 0
}

func cmdRecords(args []string, stdout, stderr io.Writer) int {
	c, code := setup("records", args, stderr)
	if c == nil {
		return code
	}
	defer c.done()

	fields, err := c.fields()
	if err != nil {
		return reportParseError(stderr, err)
	}
	for _, rec := range c.tok.Records(c.data, fields) {
		fmt.Fprintln(stdout, strings.Join(rec, "\t"))
	}
	return 0
}

// writeFields prints index, kind, start, end, size, line and text of each
// descriptor.
func writeFields(w io.Writer, buf []byte, fields []csv.Field) {
	for i, f := range fields {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%d\t%q\n",
			i, f.Kind, f.Start, f.End, f.Size, f.Line, csv.Text(buf, f))
	}
}

func reportParseError(w io.Writer, err error) int {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		fmt.Fprintf(w, "%s: %v (code %d)\n", appName, perr, perr.Code())
		return 1
	}
	fmt.Fprintf(w, "%s: %v\n", appName, err)
	return 1
}
