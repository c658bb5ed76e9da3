package lexmach

import (
	"testing"

	"github.com/npillmayer/lrstep/lr"
	"github.com/npillmayer/lrstep/lr/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timtadh/lexmachine"
)

var inputStrings = []string{
	"1",
	"1+12",
	"Hello #World",
	`x="mystring" // commented `,
	"1,22,333",
}

var tokenCounts = []int{1, 3, 2, 3, 3}

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrstep.scanner")
	defer teardown()
	//
	literals := []string{"'", "(", ")", "[", "]", "=", "+", "-", "*", "/"}
	keywords := []string{"nil", "t"}
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`//[^\n]*\n?`), Skip)
		lexer.Add([]byte(`\"[^"]*\"`), MakeToken("STRING"))
		lexer.Add([]byte(`#?([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_|-)*[!\?]?`), MakeToken("ID"))
		lexer.Add([]byte(`[1-9][0-9]*`), MakeToken("NUM"))
		lexer.Add([]byte(`( |\,|\t|\n|\r)+`), Skip)
	}
	LM, err := NewLMAdapter(init, literals, keywords)
	require.NoError(t, err)
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		sc, err := LM.Scanner(input)
		require.NoError(t, err)
		token := sc.NextToken()
		count := 0
		for !scanner.IsEOF(token) {
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

func listGrammar() *lr.Grammar {
	b := lr.NewGrammarBuilder("LIST")
	b.LHS("S").N("LIST").End()
	b.LHS("LIST").T("LPAR").N("SEQ").T("RPAR").End()
	b.LHS("LIST").T("NUM").End()
	b.LHS("SEQ").N("LIST").N("SEQ").End()
	b.LHS("SEQ").Epsilon()
	return b.Grammar()
}

func kinds(sc scanner.Tokenizer) []string {
	var k []string
	for _, tok := range scanner.Drain(sc) {
		k = append(k, tok.Kind())
	}
	return k
}

func TestForGrammarWithPatterns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrstep.scanner")
	defer teardown()
	//
	patterns := map[string]string{"NUM": `[0-9]+`, "LPAR": `\(`, "RPAR": `\)`}
	LM, err := ForGrammar(listGrammar(), patterns)
	require.NoError(t, err)
	sc, err := LM.Scanner("(1 (22 3))")
	require.NoError(t, err)
	assert.Equal(t, []string{"LPAR", "NUM", "LPAR", "NUM", "NUM", "RPAR", "RPAR"}, kinds(sc))
}

func TestForGrammarWithLiterals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrstep.scanner")
	defer teardown()
	//
	b := lr.NewGrammarBuilder("E")
	b.LHS("S").T("if").N("E").End()
	b.LHS("E").T("x").T("+").T("x").End()
	LM, err := ForGrammar(b.Grammar(), nil)
	require.NoError(t, err)
	sc, err := LM.Scanner("if x+x")
	require.NoError(t, err)
	tokens := scanner.Drain(sc)
	require.Len(t, tokens, 4)
	assert.Equal(t, "if", tokens[0].Kind())
	assert.Equal(t, "+", tokens[2].Kind())
	assert.Equal(t, uint64(4), tokens[2].Span().From())
	//
	sc, err = LM.Scanner("if ?")
	require.NoError(t, err)
	errors := 0
	sc.SetErrorHandler(func(error) { errors++ })
	assert.Equal(t, []string{"if"}, kinds(sc))
	assert.Greater(t, errors, 0)
}

func TestEscape(t *testing.T) {
	assert.Equal(t, `\(\)`, Escape("()"))
	assert.Equal(t, `a_1\+`, Escape("a_1+"))
}
