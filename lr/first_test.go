package lr

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestFirstSets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrstep.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").N("A").T("a").End()
	b.LHS("A").N("B").N("D").End()
	b.LHS("B").T("b").End()
	b.LHS("B").Epsilon()
	b.LHS("D").T("d").End()
	b.LHS("D").Epsilon()
	first := ComputeFirst(b.Grammar())
	first.Dump()
	assert.Equal(t, []string{"b", "d", Epsilon}, first.First(N("A")))
	assert.Equal(t, []string{"a", "b", "d"}, first.First(N("S")))
	assert.Equal(t, []string{"d"}, first.First(T("d")))
	assert.True(t, first.Nullable("A"))
	assert.False(t, first.Nullable("S"))
	assert.Equal(t, []string{EOF, "d"}, first.FirstOfSequence([]Element{N("D")}, EOF))
	assert.Equal(t, []string{"a"}, first.FirstOfSequence([]Element{T("a"), N("D")}, EOF))
	assert.Equal(t, []string{"x"}, first.FirstOfSequence(nil, "x"))
}

func TestFirstOfRecursiveRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrstep.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").N("A").End()
	b.LHS("A").T("a").N("A").End()
	b.LHS("A").Epsilon()
	first := ComputeFirst(b.Grammar())
	assert.Equal(t, []string{"a", Epsilon}, first.First(N("A")))
	assert.Equal(t, []string{"a", Epsilon}, first.First(N("S")))
	assert.Nil(t, first.First(N("Undefined")))
}
