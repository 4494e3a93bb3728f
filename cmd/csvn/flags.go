package main

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/shapestone/shape-csvn/pkg/csv"
)

// byteFlag is a single byte flag value. Go escape sequences are accepted, so
// -delim '\t' selects a tab.
type byteFlag byte

func (b *byteFlag) String() string {
	return strconv.QuoteRune(rune(*b))
}

func (b *byteFlag) Set(s string) error {
	v, err := parseByte(s)
	if err != nil {
		return err
	}
	*b = byteFlag(v)
	return nil
}

func parseByte(s string) (byte, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	v, multibyte, tail, err := strconv.UnquoteChar(s, 0)
	if err != nil {
		return 0, fmt.Errorf("invalid byte %q: %w", s, err)
	}
	if tail != "" || v > 0xff || (multibyte && v > 0x7f) {
		return 0, fmt.Errorf("invalid byte %q: want a single byte", s)
	}
	return byte(v), nil
}

type dialectFlags struct {
	delim      byteFlag
	newline    byteFlag
	strict     bool
	considerNL bool
	empty      string
	skipSpace  bool
	cap        int
}

func registerDialect(fs *flag.FlagSet) *dialectFlags {
	def := csv.DefaultConfig()
	d := &dialectFlags{
		delim:   byteFlag(def.Delimiter),
		newline: byteFlag(def.Newline),
	}

	fs.Var(&d.delim, "delim", "field delimiter")
	fs.Var(&d.newline, "newline", "line terminator")
	fs.BoolVar(&d.strict, "strict", def.Strict, "reject stray quotes")
	fs.BoolVar(&d.considerNL, "consider-nl", def.ConsiderNewlineInQuotes, "count newlines inside quoted fields")
	fs.StringVar(&d.empty, "empty", def.EmptyFields.String(), "empty field policy: emit, reject or ignore")
	fs.BoolVar(&d.skipSpace, "skip-space", def.SkipLeadingSpace, "skip spaces after a delimiter")
	fs.IntVar(&d.cap, "cap", 0, "fixed descriptor capacity (0 sizes the slice first)")
	return d
}

func (d *dialectFlags) tokenizer() (*csv.Tokenizer, error) {
	policy, err := csv.ParseEmptyPolicy(d.empty)
	if err != nil {
		return nil, err
	}

	return csv.New(
		csv.WithDelimiter(byte(d.delim)),
		csv.WithNewline(byte(d.newline)),
		csv.WithStrict(d.strict),
		csv.WithConsiderNewlineInQuotes(d.considerNL),
		csv.WithEmptyFields(policy),
		csv.WithSkipLeadingSpace(d.skipSpace),
	)
}
