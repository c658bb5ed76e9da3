package scanner

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/lrstep"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var inputStrings = []string{
	"1",
	"1+12",
	"Hello #World",
	`x="mystring" // commented `,
	"1,22,333",
}

var tokenCounts = []int{1, 3, 3, 3, 5}

func TestGoTokenizer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrstep.scanner")
	defer teardown()
	//
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		reader := strings.NewReader(input)
		name := fmt.Sprintf("input #%d", i)
		sc := GoTokenizer(name, reader)
		token := sc.NextToken()
		count := 0
		for token.Kind() != lrstep.EOF {
			t.Logf(" %6s | %15s | @%5d", token.Kind(), token.Lexeme(), token.Span().From())
			token = sc.NextToken()
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestGoTokenizerKinds(t *testing.T) {
	sc := GoTokenizer("test", strings.NewReader(`if x then 42 else "s"`), Keywords("if", "then", "else"))
	var kinds []string
	for _, tok := range Drain(sc) {
		kinds = append(kinds, tok.Kind())
	}
	assert.Equal(t, []string{"if", Ident, "then", Number, "else", String}, kinds)
}

func TestFields(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrstep.scanner")
	defer teardown()
	//
	sc := Fields("LPAR NUM:1  NUM:22 RPAR")
	tokens := Drain(sc)
	require.Len(t, tokens, 4)
	assert.Equal(t, "LPAR", tokens[0].Kind())
	assert.Equal(t, "LPAR", tokens[0].Lexeme())
	assert.Equal(t, "NUM", tokens[2].Kind())
	assert.Equal(t, "22", tokens[2].Lexeme())
	assert.Equal(t, lrstep.Span{2, 3}, tokens[2].Span())
	eof := sc.NextToken()
	assert.True(t, IsEOF(eof))
	assert.Equal(t, uint64(4), eof.Span().From())
	assert.True(t, IsEOF(sc.NextToken()), "EOF repeats")
}

func TestReadJSON(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrstep.scanner")
	defer teardown()
	//
	input := `[{"kind":"NUM","text":"12","position":0},{"kind":"+","text":"+","position":2}]`
	sc, err := ReadJSON(strings.NewReader(input))
	require.NoError(t, err)
	tokens := Drain(sc)
	require.Len(t, tokens, 2)
	assert.Equal(t, lrstep.Span{0, 2}, tokens[0].Span())
	assert.Equal(t, "+", tokens[1].Kind())
	_, err = ReadJSON(strings.NewReader(`[{"text":"x"}]`))
	assert.Error(t, err)
	_, err = ReadJSON(strings.NewReader(`{`))
	assert.Error(t, err)
}

func TestEmptyTokenList(t *testing.T) {
	sc := FromTokens(nil)
	assert.True(t, IsEOF(sc.NextToken()))
	assert.Equal(t, "NUM(\"1\")", MakeDefaultToken("NUM", "1", lrstep.Span{}).String())
}
