package scanner

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/lrstep"
)

// SliceTokenizer delivers tokens from a list.
type SliceTokenizer struct {
	tokens []lrstep.Token
	pos    int
	Error  func(error)
}

var _ Tokenizer = (*SliceTokenizer)(nil)

// FromTokens creates a tokenizer for a list of tokens. Tokens of kind EOF
// within the list end the token stream.
func FromTokens(tokens []lrstep.Token) *SliceTokenizer {
	return &SliceTokenizer{tokens: tokens, Error: logError}
}

// SetErrorHandler sets an error handler for the scanner.
func (st *SliceTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		st.Error = logError
		return
	}
	st.Error = h
}

// NextToken is part of the Tokenizer interface.
func (st *SliceTokenizer) NextToken() lrstep.Token {
	if st.pos >= len(st.tokens) || IsEOF(st.tokens[st.pos]) {
		var end uint64
		if n := len(st.tokens); n > 0 && st.tokens[n-1] != nil {
			end = st.tokens[n-1].Span().To()
		}
		return EOFToken(end)
	}
	t := st.tokens[st.pos]
	st.pos++
	return t
}

// Fields creates a tokenizer from a whitespace separated list of words.
// A word is either a token kind, with the lexeme equal to the kind, or of the
// form KIND:text. Token positions are word indices.
//
//     LPAR NUM:1 NUM:2 RPAR
//
func Fields(text string) *SliceTokenizer {
	words := strings.Fields(text)
	tokens := make([]lrstep.Token, len(words))
	for i, w := range words {
		kind, lexeme, found := strings.Cut(w, ":")
		if !found || kind == "" {
			kind, lexeme = w, w
		}
		tokens[i] = MakeDefaultToken(kind, lexeme, lrstep.Span{uint64(i), uint64(i + 1)})
	}
	return FromTokens(tokens)
}

// Record is the serialized form of a token, as produced by external lexers.
type Record struct {
	Kind     string `json:"kind"`
	Text     string `json:"text"`
	Position uint64 `json:"position"`
}

// ReadJSON reads a JSON list of token records and creates a tokenizer for them.
func ReadJSON(r io.Reader) (*SliceTokenizer, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("cannot read token records: %w", err)
	}
	tokens := make([]lrstep.Token, len(records))
	for i, rec := range records {
		if rec.Kind == "" {
			return nil, fmt.Errorf("token record #%d has no kind", i)
		}
		end := rec.Position + uint64(len(rec.Text))
		tokens[i] = MakeDefaultToken(rec.Kind, rec.Text, lrstep.Span{rec.Position, end})
	}
	tracer().Debugf("read %d token records", len(tokens))
	return FromTokens(tokens), nil
}

// Drain reads all tokens from a tokenizer, up to and excluding EOF.
func Drain(t Tokenizer) []lrstep.Token {
	var tokens []lrstep.Token
	for tok := t.NextToken(); !IsEOF(tok); tok = t.NextToken() {
		tokens = append(tokens, tok)
	}
	return tokens
}
