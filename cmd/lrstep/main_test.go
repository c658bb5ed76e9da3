package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/lrstep/lr"
	"github.com/npillmayer/lrstep/lr/scanner"
	"github.com/npillmayer/lrstep/lr/sppf"
	"github.com/npillmayer/lrstep/lr/workbench"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listGrammar = `S -> LIST
LIST -> 'LPAR' SEQ 'RPAR' | 'NUM'
SEQ -> LIST SEQ | ε
`

func writeGrammar(t *testing.T, text string) string {
	path := filepath.Join(t.TempDir(), "list.bnf")
	require.NoError(t, os.WriteFile(path, []byte(text), 0644))
	return path
}

func TestParsePatterns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrstep.cli")
	defer teardown()
	//
	p, err := parsePatterns([]string{"NUM=[0-9]+", "ID=[a-z]+(=)?"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"NUM": "[0-9]+", "ID": "[a-z]+(=)?"}, p)
	_, err = parsePatterns([]string{"NUM"})
	assert.Error(t, err)
	_, err = parsePatterns([]string{"=x"})
	assert.Error(t, err)
}

func TestLeveledList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrstep.cli")
	defer teardown()
	//
	b, err := workbench.Run(listGrammar, workbench.Config{Method: lr.LR1})
	require.NoError(t, err)
	result, err := b.Parse(scanner.Fields("LPAR NUM:7 RPAR"))
	require.NoError(t, err)
	require.True(t, result.Accepted)
	ll := leveledList(result.Root)
	require.NotEmpty(t, ll)
	assert.Equal(t, "S'", ll[0].Text)
	assert.Equal(t, 0, ll[0].Level)
	var texts []string
	for _, item := range ll {
		texts = append(texts, item.Text)
	}
	assert.Contains(t, texts, "NUM(7) (1…2)")
	synthetic := sppf.Synthetic("S'", nil)
	assert.Equal(t, "!S'", leveledList(synthetic)[0].Text)
}

func TestFirstTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrstep.cli")
	defer teardown()
	//
	b, err := workbench.Run(listGrammar, workbench.Config{Method: lr.LR1})
	require.NoError(t, err)
	data := firstTable(b.Grammar, b.First)
	require.Len(t, data, 1+len(b.Grammar.NonTerminals()))
	for _, row := range data[1:] {
		if row[0] == "SEQ" {
			assert.Equal(t, []string{"SEQ", "{ LPAR NUM ε }", "yes"}, row)
		}
	}
}

func TestPrintAutomaton(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrstep.cli")
	defer teardown()
	//
	b, err := workbench.Run(listGrammar, workbench.Config{Method: lr.LR0})
	require.NoError(t, err)
	var buf bytes.Buffer
	printAutomaton(&buf, b.CFSM)
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "state 0\n"))
	assert.Contains(t, out, "(accept)")
	assert.Contains(t, out, "on LIST goto")
}

func TestTableCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrstep.cli")
	defer teardown()
	//
	path := writeGrammar(t, listGrammar)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"table", "--lr1", "--format", "json", path})
	require.NoError(t, rootCmd.Execute())
	var table lr.Table
	require.NoError(t, json.Unmarshal(out.Bytes(), &table))
	assert.Equal(t, lr.LR1, table.Method)
	assert.False(t, table.HasConflicts())
	assert.Contains(t, table.Terminals, lr.EOF)
}

func TestCheckCommandFailsOnErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrstep.cli")
	defer teardown()
	//
	path := writeGrammar(t, "S -> A\n")
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"check", path})
	assert.Error(t, rootCmd.Execute())
}

func TestGoTokenizerUsesGrammarKeywords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrstep.cli")
	defer teardown()
	//
	b, err := workbench.Run("S -> 'let' 'ID' '=' 'NUM'", workbench.Config{Method: lr.LR1})
	require.NoError(t, err)
	tok := goTokenizer(b.Grammar, "test", "let x = 42 // answer")
	var kinds []string
	for _, token := range scanner.Drain(tok) {
		kinds = append(kinds, token.Kind())
	}
	assert.Equal(t, []string{"let", "ID", "=", "NUM"}, kinds)
	result, err := b.Parse(goTokenizer(b.Grammar, "test", "let x = 42"))
	require.NoError(t, err)
	assert.True(t, result.Accepted, result.Diagnostic)
	assert.False(t, isIdent("=="))
	assert.False(t, isIdent("1x"))
}
