package lrstep

import "fmt"

// EOF is the terminal symbol a parser sees once the token stream is exhausted.
// It is written as a column "$" in parser tables.
const EOF = "$"

// Epsilon denotes the empty word in grammar text and in FIRST-sets.
const Epsilon = "ε"

// --- A general purpose interface for tokens --------------------------------

// Tokens represent input tokens. They are usually produced by a scanner and
// reflect terminals in a language.
//
// An example would be a token for a number:
//
//    Kind   = "NUM"       // terminal this token stands for, as written in the grammar
//    Lexeme = "3.1416"    // lexeme how it appeared in the input stream
//    Span   = 67…73       // occured from position 67 in the input stream
//
// Parsers only look at Kind() to drive their state machine. Lexeme() is
// carried along into parse tree leaves.
type Token interface {
	Kind() string
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run. For every
// terminal and non-terminal, a parse tree will track which input positions
// this symbol covers. A span denotes a start position and the position just
// behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering s and other. Null spans are neutral.
func (s Span) Extend(other Span) Span {
	if s.IsNull() {
		return other
	}
	if other.IsNull() {
		return s
	}
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
