package sppf

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/npillmayer/lrstep"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// SUM → SUM '+' 'NUM' | 'NUM', for input 1+2+3
func sumTree() *Node {
	n1 := Leaf("NUM", "1", lrstep.Span{0, 1})
	n2 := Leaf("NUM", "2", lrstep.Span{2, 3})
	n3 := Leaf("NUM", "3", lrstep.Span{4, 5})
	s1 := Inner("SUM", 2, []*Node{n1})
	s2 := Inner("SUM", 1, []*Node{s1, Leaf("+", "+", lrstep.Span{1, 2}), n2})
	return Inner("SUM", 1, []*Node{s2, Leaf("+", "+", lrstep.Span{3, 4}), n3})
}

func TestInnerSpan(t *testing.T) {
	root := sumTree()
	assert.Equal(t, lrstep.Span{0, 5}, root.Extent)
	eps := Inner("OPT", 3, nil)
	assert.True(t, eps.Extent.IsNull())
}

func TestSnapshotsShareNodes(t *testing.T) {
	stack := []*Node{Leaf("a", "a", lrstep.Span{0, 1})}
	f1 := Snapshot(stack)
	stack = append(stack, Leaf("b", "b", lrstep.Span{1, 2}))
	f2 := Snapshot(stack)
	assert.Equal(t, []string{"a"}, f1.Labels())
	assert.Equal(t, "[a b]", f2.String())
	assert.Same(t, f1[0], f2[0])
}

func TestPrintTree(t *testing.T) {
	var buf bytes.Buffer
	root := Inner("S", 1, []*Node{
		Leaf("a", "x", lrstep.Span{0, 1}),
		Inner("A", 2, []*Node{Leaf("b", "y", lrstep.Span{1, 2})}),
	})
	PrintTree(&buf, root)
	expected := "S\n├─ a \"x\"\n└─ A\n   └─ b \"y\"\n"
	assert.Equal(t, expected, buf.String())
	buf.Reset()
	PrintTree(&buf, Synthetic("S'", root.Children))
	assert.Contains(t, buf.String(), "!S'")
}

type evaluator struct{}

func (ev evaluator) EnterRule(*Node, RuleCtxt) bool { return true }
func (ev evaluator) MakeAttrs(string) interface{} { return nil }
func (ev evaluator) Terminal(kind, text string, ctxt RuleCtxt) interface{} {
	if kind == "NUM" {
		n, _ := strconv.Atoi(text)
		return n
	}
	return 0
}
func (ev evaluator) ExitRule(node *Node, values []interface{}, ctxt RuleCtxt) interface{} {
	sum := 0
	for _, v := range values {
		sum += v.(int)
	}
	return sum
}

func TestTopDownEvaluation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lrstep.lr")
	defer teardown()
	//
	c := SetCursor(sumTree())
	require.NotNil(t, c)
	assert.Equal(t, 6, c.TopDown(evaluator{}, LtoR, Continue))
	assert.Equal(t, 6, c.TopDown(evaluator{}, RtoL, Continue))
	assert.Equal(t, 0, c.Level())
}

func TestCursorMoves(t *testing.T) {
	c := SetCursor(sumTree())
	n, ok := c.Down(LtoR)
	require.True(t, ok)
	assert.Equal(t, "SUM", n.Label)
	n, ok = c.Sibling(LtoR)
	require.True(t, ok)
	assert.Equal(t, "+", n.Label)
	_, ok = c.Down(LtoR)
	assert.False(t, ok, "leaves have no children")
	n, _ = c.Sibling(LtoR)
	assert.Equal(t, "3", n.Text)
	_, ok = c.Sibling(LtoR)
	assert.False(t, ok)
	n, ok = c.Up()
	require.True(t, ok)
	assert.Equal(t, lrstep.Span{0, 5}, n.Extent)
	_, ok = c.Up()
	assert.False(t, ok)
}

func TestEach(t *testing.T) {
	var levels []int
	Each(sumTree(), func(n *Node, level int) {
		if n.Text == "1" {
			levels = append(levels, level)
		}
	})
	assert.Equal(t, []int{3}, levels)
}
