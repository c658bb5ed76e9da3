package driver

import (
	"encoding/json"
	"testing"

	"github.com/npillmayer/lrstep/lr"
	"github.com/npillmayer/lrstep/lr/bnf"
	"github.com/npillmayer/lrstep/lr/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTable(t *testing.T, text string, method lr.Method, opts ...lr.Option) *lr.Table {
	g, diags := bnf.Check("test", stringsReader(text))
	require.NoError(t, diags.Err())
	lrgen := lr.NewTableGenerator(g, method, opts...)
	require.NoError(t, lrgen.CreateTables())
	return lrgen.Table()
}

const listGrammar = `S    -> LIST
LIST -> 'LPAR' SEQ 'RPAR' | 'NUM'
SEQ  -> LIST SEQ | ε`

func TestParseTrace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrstep.driver")
	defer teardown()
	//
	table := makeTable(t, "S -> 'a' S 'b' | 'a' 'b'", lr.LR0)
	p := NewParser(table)
	result, err := p.Parse(scanner.Fields("a a b b"))
	require.NoError(t, err)
	require.True(t, result.Accepted, result.Diagnostic)
	var states []int
	var symbols []string
	for _, e := range result.Trace {
		states = append(states, e.State)
		symbols = append(symbols, e.Symbol)
	}
	assert.Equal(t, []int{2, 2, 4, 3, 5, 1, 1}, states)
	assert.Equal(t, []string{"a", "a", "b", "S", "b", "S", lr.EOF}, symbols)
	assert.Equal(t, []string{"a", "S"}, result.Trace[3].Forest.Labels())
	assert.Equal(t, lr.AcceptAction, result.Trace[6].Action.Type)
	require.Len(t, result.Forest(), 1)
	assert.Equal(t, lr.AugmentedStart, result.Root.Label)
	assert.False(t, result.Root.Synthetic)
	assert.Equal(t, 0, result.Root.Rule)
	assert.Equal(t, 7, result.Steps())
}

func TestParseAcceptsNestedLists(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrstep.driver")
	defer teardown()
	//
	table := makeTable(t, listGrammar, lr.LR1)
	p := NewParser(table, TraceTokens(true))
	result, err := p.Parse(scanner.Fields("LPAR NUM:1 LPAR NUM:2 RPAR RPAR"))
	require.NoError(t, err)
	require.True(t, result.Accepted, result.Diagnostic)
	root := result.Root
	require.Len(t, root.Children, 1)
	assert.Equal(t, "S", root.Children[0].Label)
	list := root.Children[0].Children[0]
	assert.Equal(t, "LIST", list.Label)
	assert.Equal(t, []string{"LPAR", "SEQ", "RPAR"}, sppfLabels(list.Children))
	assert.Equal(t, uint64(6), root.Extent.To())
}

func TestParseFailureIsNotAnError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrstep.driver")
	defer teardown()
	//
	table := makeTable(t, listGrammar, lr.LR1)
	for _, input := range []string{"LPAR NUM", "LPAR NUM RPAR RPAR", "", "NUM FOO"} {
		result, err := NewParser(table).Parse(scanner.Fields(input))
		require.NoError(t, err, input)
		assert.False(t, result.Accepted, input)
		require.NotEmpty(t, result.Trace, input)
		last := result.Trace[len(result.Trace)-1]
		assert.True(t, last.IsDiagnostic(), input)
		assert.Equal(t, last.Diagnostic, result.Diagnostic)
		assert.True(t, result.Root.Synthetic)
	}
	result, _ := NewParser(table).Parse(scanner.Fields("NUM FOO"))
	assert.Contains(t, result.Diagnostic, "unexpected FOO")
	data, err := json.Marshal(result.Trace)
	require.NoError(t, err)
	var entries []interface{}
	require.NoError(t, json.Unmarshal(data, &entries))
	_, isString := entries[len(entries)-1].(string)
	assert.True(t, isString, "diagnostics are serialized as strings")
	_, isObject := entries[0].(map[string]interface{})
	assert.True(t, isObject)
}

const danglingElse = `S    -> STMT
STMT -> 'if' 'c' 'then' STMT | 'if' 'c' 'then' STMT 'else' STMT | 'x'`

func TestConflictHaltsParser(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrstep.driver")
	defer teardown()
	//
	input := "if c then if c then x else x"
	strict := makeTable(t, danglingElse, lr.LR1)
	result, err := NewParser(strict).Parse(scanner.Fields(input))
	require.NoError(t, err)
	assert.False(t, result.Accepted)
	assert.Contains(t, result.Diagnostic, "conflict")
	//
	loose := makeTable(t, danglingElse, lr.LR1, lr.Loose(true))
	result, err = NewParser(loose).Parse(scanner.Fields(input))
	require.NoError(t, err)
	require.True(t, result.Accepted, result.Diagnostic)
	outer := result.Root.Children[0].Children[0]
	assert.Len(t, outer.Children, 4, "else binds to the inner if")
}

func TestMaxSteps(t *testing.T) {
	table := makeTable(t, listGrammar, lr.LR1)
	result, err := NewParser(table, MaxSteps(3)).Parse(scanner.Fields("LPAR NUM RPAR"))
	require.NoError(t, err)
	assert.False(t, result.Accepted)
	assert.Contains(t, result.Diagnostic, "after 3 steps")
	assert.Equal(t, 3, result.Steps())
}

func TestParseWithDecodedTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrstep.driver")
	defer teardown()
	//
	table := makeTable(t, listGrammar, lr.LR1)
	data, err := json.Marshal(table)
	require.NoError(t, err)
	var decoded lr.Table
	require.NoError(t, json.Unmarshal(data, &decoded))
	result, err := NewParser(&decoded).Parse(scanner.Fields("LPAR NUM NUM RPAR"))
	require.NoError(t, err)
	require.True(t, result.Accepted, result.Diagnostic)
	assert.Equal(t, lr.AugmentedStart, result.Root.Label)
	assert.Equal(t, -1, result.Root.Rule)
}

func decodeTable(t *testing.T, table *lr.Table) *lr.Table {
	data, err := json.Marshal(table)
	require.NoError(t, err)
	decoded := &lr.Table{}
	require.NoError(t, json.Unmarshal(data, decoded))
	return decoded
}

func TestMissingGotoKeepsReducedTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrstep.driver")
	defer teardown()
	//
	table := decodeTable(t, makeTable(t, "S -> 'a' S 'b' | 'a' 'b'", lr.LR0))
	for _, row := range table.Rows {
		delete(row.Gotos, "S")
	}
	result, err := NewParser(table).Parse(scanner.Fields("a a b b"))
	require.NoError(t, err)
	assert.False(t, result.Accepted)
	assert.Equal(t, "no goto for S in state 2", result.Diagnostic)
	last := result.Trace[len(result.Trace)-1]
	assert.True(t, last.IsDiagnostic())
	assert.Equal(t, []string{"a", "a", "b"}, result.Forest().Labels())
	require.True(t, result.Root.Synthetic)
	assert.Equal(t, []string{"a", "S"}, sppfLabels(result.Root.Children))
	assert.Equal(t, []string{"a", "b"}, sppfLabels(result.Root.Children[1].Children))
}

func TestMissingRowHaltsParser(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrstep.driver")
	defer teardown()
	//
	table := decodeTable(t, makeTable(t, "S -> 'a' S 'b' | 'a' 'b'", lr.LR0))
	table.Rows[0].Actions["a"] = lr.Shift(99)
	result, err := NewParser(table).Parse(scanner.Fields("a b"))
	require.NoError(t, err)
	assert.False(t, result.Accepted)
	assert.Equal(t, "no table row for state 99", result.Diagnostic)
	assert.True(t, result.Trace[len(result.Trace)-1].IsDiagnostic())
	assert.Equal(t, 1, result.Steps())
	assert.Equal(t, []string{"a"}, result.Forest().Labels())
	assert.Equal(t, []string{"a"}, sppfLabels(result.Root.Children))
}

func TestParserNeedsTable(t *testing.T) {
	_, err := NewParser(nil).Parse(scanner.Fields("a"))
	assert.Error(t, err)
	table := makeTable(t, listGrammar, lr.LR1)
	_, err = NewParser(table).Parse(nil)
	assert.Error(t, err)
}
