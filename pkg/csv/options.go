package csv

import (
	"github.com/shapestone/shape-csvn/internal/fastparser"
	"github.com/shapestone/shape-csvn/internal/options"
)

// Config is the dialect a Tokenizer accepts.
type Config = fastparser.Config

// EmptyPolicy decides what happens to two adjacent delimiters.
type EmptyPolicy = fastparser.EmptyPolicy

// Empty field policies.
const (
	// EmptyEmit produces an Empty descriptor (default).
	EmptyEmit = fastparser.EmptyEmit
	// EmptyReject fails the parse with ErrInvalidCharacter.
	EmptyReject = fastparser.EmptyReject
	// EmptyIgnore skips the empty field.
	EmptyIgnore = fastparser.EmptyIgnore
)

// Option configures a Tokenizer.
type Option = options.Option[*fastparser.Config]

// DefaultConfig returns the default dialect.
func DefaultConfig() Config {
	return fastparser.DefaultConfig()
}

// ParseEmptyPolicy maps "emit", "reject" or "ignore" to a policy.
func ParseEmptyPolicy(s string) (EmptyPolicy, error) {
	return fastparser.ParseEmptyPolicy(s)
}

// WithConfig replaces the whole dialect. Later options still apply on top.
func WithConfig(cfg Config) Option {
	return options.NoError(func(c *fastparser.Config) {
		*c = cfg
	})
}

// WithDelimiter sets the field separator. Default: ','
//
// Example:
//
//	tok, err := csv.New(csv.WithDelimiter('\t'))
func WithDelimiter(delim byte) Option {
	return options.NoError(func(c *fastparser.Config) {
		c.Delimiter = delim
	})
}

// WithNewline sets the line terminator. Default: '\n'
func WithNewline(newline byte) Option {
	return options.NoError(func(c *fastparser.Config) {
		c.Newline = newline
	})
}

// WithStrict rejects quotes inside unquoted fields and anything but a
// delimiter, a newline or the end of input after a closing quote.
func WithStrict(strict bool) Option {
	return options.NoError(func(c *fastparser.Config) {
		c.Strict = strict
	})
}

// WithConsiderNewlineInQuotes makes newlines inside quoted fields advance the
// line counter. By default a record keeps the line on which it started.
func WithConsiderNewlineInQuotes(consider bool) Option {
	return options.NoError(func(c *fastparser.Config) {
		c.ConsiderNewlineInQuotes = consider
	})
}

// WithEmptyFields selects the empty field policy.
func WithEmptyFields(policy EmptyPolicy) Option {
	return options.New(func(c *fastparser.Config) error {
		if _, err := fastparser.ParseEmptyPolicy(policy.String()); err != nil {
			return err
		}
		c.EmptyFields = policy
		return nil
	})
}

// WithSkipLeadingSpace drops spaces that directly follow a delimiter.
func WithSkipLeadingSpace(skip bool) Option {
	return options.NoError(func(c *fastparser.Config) {
		c.SkipLeadingSpace = skip
	})
}
