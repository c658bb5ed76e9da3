/*
Package scanner defines an interface for scanners to be used with the parse
driver of package lr/driver.

Scanning input text is not a concern of an LR parser. The driver consumes a
stream of tokens, each carrying a kind (the terminal of the grammar it stands
for), the text it has been scanned from, and a position. This package
provides some token sources: token lists written as words, JSON token
records, a thin wrapper over the Go std lib 'text/scanner', and an adapter
for lexmachine, living in sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"

	"github.com/npillmayer/lrstep"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lrstep.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lrstep.scanner")
}

// Tokenizer is a scanner interface. After the end of input, NextToken
// returns tokens of kind lrstep.EOF.
type Tokenizer interface {
	NextToken() lrstep.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for all
// the tokenizers of this package as well as the LexMachine scanner.
type DefaultToken struct {
	kind   string
	lexeme string
	Val    interface{}
	span   lrstep.Span
}

var _ lrstep.Token = DefaultToken{}

// MakeDefaultToken creates a token.
func MakeDefaultToken(kind string, lexeme string, span lrstep.Span) DefaultToken {
	return DefaultToken{
		kind:   kind,
		lexeme: lexeme,
		span:   span,
	}
}

// EOFToken creates an end-of-input token at position pos.
func EOFToken(pos uint64) DefaultToken {
	return MakeDefaultToken(lrstep.EOF, "", lrstep.Span{pos, pos})
}

// Kind is part of the lrstep.Token interface.
func (t DefaultToken) Kind() string {
	return t.kind
}

// Value returns a client-defined value.
func (t DefaultToken) Value() interface{} {
	return t.Val
}

// Lexeme is part of the lrstep.Token interface.
func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

// Span is part of the lrstep.Token interface.
func (t DefaultToken) Span() lrstep.Span {
	return t.span
}

func (t DefaultToken) String() string {
	if t.lexeme == "" || t.lexeme == t.kind {
		return t.kind
	}
	return fmt.Sprintf("%s(%q)", t.kind, t.lexeme)
}

// IsEOF is a helper to check for end-of-input tokens.
func IsEOF(t lrstep.Token) bool {
	return t == nil || t.Kind() == lrstep.EOF
}

// Lexeme is a helper function to receive a string from a token.
func Lexeme(token interface{}) string {
	switch t := token.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case lrstep.Token:
		return t.Lexeme()
	default:
		return fmt.Sprintf("%v", t)
	}
}
