package lexmach

import (
	"strings"

	"github.com/npillmayer/lrstep"
	"github.com/npillmayer/lrstep/lr"
	"github.com/npillmayer/lrstep/lr/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// tracer traces with key 'lrstep.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lrstep.scanner")
}

// Whitespace is the pattern for input skipped between tokens.
const Whitespace = `( |\t|\n|\r)+`

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals ('[', ';', …) and a list of keywords ("if", "for", …). Tokens for
// literals and keywords have their text as kind. Literals and keywords take
// precedence over patterns added by init.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	for _, lit := range literals {
		adapter.Lexer.Add([]byte(Escape(lit)), MakeToken(lit))
	}
	for _, name := range keywords {
		adapter.Lexer.Add([]byte(name), MakeToken(name))
	}
	if init != nil {
		init(adapter.Lexer)
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// ForGrammar creates an adapter recognizing the terminals of g. patterns maps
// terminals to regular expressions; terminals without a pattern match their
// own text. Whitespace between tokens is skipped.
func ForGrammar(g *lr.Grammar, patterns map[string]string) (*LMAdapter, error) {
	var literals, keywords []string
	var patterned []string
	for _, term := range g.Terminals() {
		if _, ok := patterns[term]; ok {
			patterned = append(patterned, term)
			continue
		}
		if isWord(term) {
			keywords = append(keywords, term)
		} else {
			literals = append(literals, term)
		}
	}
	for kind := range patterns {
		if !contains(patterned, kind) {
			tracer().Infof("pattern for %q ignored, grammar has no such terminal", kind)
		}
	}
	init := func(lexer *lexmachine.Lexer) {
		for _, kind := range patterned {
			lexer.Add([]byte(patterns[kind]), MakeToken(kind))
		}
		lexer.Add([]byte(Whitespace), Skip)
	}
	return NewLMAdapter(init, literals, keywords)
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, Error: logError, end: uint64(len(input))}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
	end     uint64
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NextToken is part of the Tokenizer interface. Unrecognized input is
// reported to the error handler and skipped.
func (lms *LMScanner) NextToken() lrstep.Token {
	if lms.scanner == nil {
		return scanner.EOFToken(0)
	}
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			if ui.FailTC > ui.StartTC {
				lms.scanner.TC = ui.FailTC
			} else {
				lms.scanner.TC = ui.StartTC + 1
			}
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return scanner.EOFToken(lms.end)
	}
	token := tok.(*lexmachine.Token)
	tracer().Debugf("token %v | %q", token.Value, token.Lexeme)
	return scanner.MakeDefaultToken(
		token.Value.(string),
		string(token.Lexeme),
		lrstep.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token
// of the given kind.
func MakeToken(kind string) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(0, kind, m), nil
	}
}

// Escape converts a literal text into a lexmachine pattern matching exactly
// this text.
func Escape(text string) string {
	var b strings.Builder
	for _, r := range text {
		if r < 128 && !isWordRune(r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isWordRune(r rune) bool {
	return r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}

func isWord(s string) bool {
	for _, r := range s {
		if !isWordRune(r) {
			return false
		}
	}
	return s != ""
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
