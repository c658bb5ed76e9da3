package lr

import (
	"bytes"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItems(t *testing.T) {
	p := NewProduction("S", T("a"), N("S"), T("b"))
	i := StartItem(p)
	A, ok := i.PeekSymbol()
	require.True(t, ok)
	assert.Equal(t, T("a"), A)
	i = i.Advance()
	assert.Equal(t, "[S → 'a' • S 'b']", i.String())
	assert.Equal(t, []Element{T("b")}, i.Rest())
	i = i.Advance().Advance()
	assert.True(t, i.IsComplete())
	assert.Equal(t, i, i.Advance())
	j := StartItemLR1(p, "b")
	assert.Equal(t, StartItem(p).Core(), j.Core())
	assert.NotEqual(t, StartItem(p).Hash(), j.Hash())
	assert.Equal(t, "[S → • 'a' S 'b', b]", j.String())
}

func TestLR0Automaton(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrstep.lr")
	defer teardown()
	//
	c, err := BuildLR0Automaton(abGrammar())
	require.NoError(t, err)
	require.Equal(t, 6, c.Size())
	s0 := c.S0
	assert.Equal(t, []Element{N("S"), T("a")}, s0.Symbols())
	next, _ := s0.Successor(N("S"))
	assert.Equal(t, 1, next)
	next, _ = s0.Successor(T("a"))
	assert.Equal(t, 2, next)
	s1, _ := c.State(1)
	assert.True(t, s1.Accept)
	s2, _ := c.State(2)
	next, _ = s2.Successor(T("a"))
	assert.Equal(t, 2, next, "state for 'a' prefix must be re-used")
	assert.Len(t, s2.Kernel(), 2)
	assert.Len(t, s2.Items(), 4)
	assert.Len(t, c.Transitions(), 6)
}

func TestLR0AutomatonIsDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrstep.lr")
	defer teardown()
	//
	c1, err := BuildLR0Automaton(abGrammar())
	require.NoError(t, err)
	c2, err := BuildLR0Automaton(abGrammar())
	require.NoError(t, err)
	require.Equal(t, c1.Size(), c2.Size())
	for i, s := range c1.States() {
		assert.Equal(t, s.Hash(), c2.States()[i].Hash())
	}
	assert.Equal(t, c1.Transitions(), c2.Transitions())
}

func TestLR1Automaton(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrstep.lr")
	defer teardown()
	//
	c, err := BuildLR1Automaton(abGrammar(), nil)
	require.NoError(t, err)
	assert.Equal(t, 10, c.Size(), "LR(1) splits states by look-ahead")
	var accepting int
	for _, s := range c.States() {
		if s.Accept {
			accepting++
		}
	}
	assert.Equal(t, 1, accepting)
}

func TestGraphViz(t *testing.T) {
	c, err := BuildLR0Automaton(abGrammar())
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, c.CFSM2GraphViz(&buf))
	assert.Contains(t, buf.String(), "digraph {")
	assert.Contains(t, buf.String(), "s000 -> s001")
}
