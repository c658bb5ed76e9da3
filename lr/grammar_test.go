package lr

import (
	"encoding/json"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func abGrammar() *Grammar {
	b := NewGrammarBuilder("AB")
	b.LHS("S").T("a").N("S").T("b").End()
	b.LHS("S").T("a").T("b").End()
	return b.Grammar()
}

func TestGrammarBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrstep.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").N("A").T("a").End()
	b.LHS("A").T("b").End()
	b.LHS("A").Epsilon()
	g := b.Grammar()
	g.Dump()
	assert.Equal(t, []string{"S", "A"}, g.NonTerminals())
	assert.Equal(t, []string{"a", "b"}, g.Terminals())
	assert.Len(t, g.Productions(), 3)
	assert.True(t, g.Productions()[2].IsEpsilon())
	assert.Equal(t, "S -> A 'a'\nA -> 'b' | ε\n", g.String())
}

func TestProductionIdentity(t *testing.T) {
	p := NewProduction("S", T("a"), N("S"), T("b"))
	q := NewProduction("S", T("a"), N("S"), T("b"))
	r := NewProduction("S", T("a"), T("S"), T("b"))
	assert.True(t, p.Equals(q))
	assert.False(t, p.Equals(r), "terminal and non-terminal with same name must differ")
	e := NewProduction("A", T(""))
	assert.True(t, e.IsEpsilon())
	assert.Equal(t, "A → ε", e.String())
	g := abGrammar()
	assert.Equal(t, 0, g.ProductionNumber(q))
	assert.False(t, g.AddProduction(q, 7), "duplicate production must not be added")
	assert.Equal(t, -1, g.ProductionNumber(NewProduction("X")))
}

func TestProductionJSON(t *testing.T) {
	p := NewProduction("S", T("a"), N("S"), T("b"))
	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"lhs":"S","rhs":[{"type":"terminal","value":"a"},
		{"type":"nonterminal","value":"S"},{"type":"terminal","value":"b"}]}`, string(data))
	var q Production
	require.NoError(t, json.Unmarshal(data, &q))
	assert.True(t, p.Equals(&q))
	assert.Equal(t, p.Hash(), q.Hash())
}

func TestAugmentation(t *testing.T) {
	g := abGrammar()
	ag := g.Augmented()
	assert.False(t, g.IsAugmented())
	assert.True(t, ag.IsAugmented())
	assert.Equal(t, []string{AugmentedStart, "S"}, ag.NonTerminals())
	start := ag.StartProductions()
	require.Len(t, start, 1)
	assert.Equal(t, "S' → S", start[0].String())
	assert.Same(t, ag, ag.Augmented())
	assert.Len(t, g.Productions(), 2, "augmentation must not modify the original grammar")
}
