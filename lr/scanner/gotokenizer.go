package scanner

import (
	"io"
	"text/scanner"

	"github.com/npillmayer/lrstep"
)

// Token kinds produced by the Go tokenizer for token classes of text/scanner.
// Other characters produce tokens with the character as their kind.
const (
	Ident  = "ID"
	Number = "NUM"
	String = "STRING"
)

// DefaultTokenizer is a default implementation, backed by scanner.Scanner.
// Create one with GoTokenizer.
type DefaultTokenizer struct {
	scanner.Scanner
	lastToken    rune            // last token this scanner has produced
	Error        func(error)     // error handler
	unifyStrings bool            // convert single chars to strings
	keywords     map[string]bool // identifiers which are terminals of their own
}

var _ Tokenizer = (*DefaultTokenizer)(nil)

// GoTokenizer creates a scanner/tokenizer accepting tokens similar to the Go language.
func GoTokenizer(sourceID string, input io.Reader, opts ...Option) *DefaultTokenizer {
	t := &DefaultTokenizer{keywords: make(map[string]bool)}
	t.Error = logError
	t.Init(input)
	t.Filename = sourceID
	t.Scanner.Error = func(s *scanner.Scanner, msg string) {
		t.Error(scanError{pos: s.Position, msg: msg})
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

type scanError struct {
	pos scanner.Position
	msg string
}

func (e scanError) Error() string {
	return e.pos.String() + ": " + e.msg
}

// SetErrorHandler sets an error handler for the scanner.
func (t *DefaultTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
func (t *DefaultTokenizer) NextToken() lrstep.Token {
	t.lastToken = t.Scan()
	if t.lastToken == scanner.EOF {
		tracer().Debugf("DefaultTokenizer reached end of input")
		return EOFToken(uint64(t.Pos().Offset))
	}
	if t.unifyStrings &&
		(t.lastToken == scanner.RawString || t.lastToken == scanner.Char) {
		t.lastToken = scanner.String
	}
	text := t.TokenText()
	return DefaultToken{
		kind:   t.kindOf(t.lastToken, text),
		lexeme: text,
		span:   lrstep.Span{uint64(t.Position.Offset), uint64(t.Pos().Offset)},
	}
}

func (t *DefaultTokenizer) kindOf(tok rune, text string) string {
	switch tok {
	case scanner.Ident:
		if t.keywords[text] {
			return text
		}
		return Ident
	case scanner.Int, scanner.Float:
		return Number
	case scanner.String, scanner.RawString:
		return String
	case scanner.Char:
		return "CHAR"
	}
	return string(tok)
}

// --- Scanner options for the default (Go) tokenizer ---------------------------

// Option configures a default tokenizer.
type Option func(p *DefaultTokenizer)

// SkipComments sets or clears mode-flag SkipComments.
func SkipComments(b bool) Option {
	return func(t *DefaultTokenizer) {
		if b {
			t.Mode |= scanner.SkipComments
		} else {
			t.Mode &^= scanner.SkipComments
		}
	}
}

// UnifyStrings sets or clears option UnifyStrings:
// treat raw strings and single chars as strings.
func UnifyStrings(b bool) Option {
	return func(t *DefaultTokenizer) {
		t.unifyStrings = b
	}
}

// Keywords lets identifiers matching one of the given words produce tokens
// with the word itself as kind, e.g. for terminals 'if' and 'then'.
func Keywords(words ...string) Option {
	return func(t *DefaultTokenizer) {
		for _, w := range words {
			t.keywords[w] = true
		}
	}
}
