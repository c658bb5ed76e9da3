package sppf

import (
	"github.com/npillmayer/lrstep"
)

// A Cursor is a movable mark within a parse tree, intended for navigating
// over nodes.
type Cursor struct {
	current *Node
	path    []*frame // parents of current
}

type frame struct {
	node  *Node
	child int // index of the child the cursor descended into
}

// SetCursor sets up a cursor at a given node.
func SetCursor(node *Node) *Cursor {
	if node == nil {
		return nil
	}
	return &Cursor{current: node}
}

// Node returns the node under the cursor.
func (c *Cursor) Node() *Node {
	return c.current
}

// Level returns the depth of the cursor relative to its start node.
func (c *Cursor) Level() int {
	return len(c.path)
}

// Up moves the cursor up to the parent node of the current node, if any.
func (c *Cursor) Up() (*Node, bool) {
	if len(c.path) == 0 {
		return c.current, false
	}
	top := c.path[len(c.path)-1]
	c.path = c.path[:len(c.path)-1]
	c.current = top.node
	tracer().Debugf("UP Cursor @ %v", c.current)
	return c.current, true
}

// Down moves the cursor down to the first child of the current node, if any.
// dir lets clients start at either the leftmost child (default) or the rightmost
// child.
func (c *Cursor) Down(dir Direction) (*Node, bool) {
	if c.current.IsLeaf() {
		return c.current, false
	}
	i := 0
	if dir == RtoL {
		i = len(c.current.Children) - 1
	}
	c.path = append(c.path, &frame{node: c.current, child: i})
	c.current = c.current.Children[i]
	tracer().Debugf("DOWN Cursor @ %v", c.current)
	return c.current, true
}

// Sibling moves the cursor to the next sibling of the current node in
// direction dir, if any.
func (c *Cursor) Sibling(dir Direction) (*Node, bool) {
	if len(c.path) == 0 {
		return c.current, false
	}
	top := c.path[len(c.path)-1]
	next := top.child + int(dir)
	if next < 0 || next >= len(top.node.Children) {
		return c.current, false
	}
	top.child = next
	c.current = top.node.Children[next]
	tracer().Debugf("SIBLING Cursor @ %v", c.current)
	return c.current, true
}

// TopDown traverses a sub-tree top-down, applying Listener-methods for all nodes
// encountered. It returns a user-defined value, calculated by the listener.
func (c *Cursor) TopDown(listener Listener, dir Direction, breakmode Breakmode) interface{} {
	tracer().Debugf("TopDown starting at node %v", c.current)
	return c.traverseTopDown(listener, dir, breakmode, 0)
}

func (c *Cursor) traverseTopDown(listener Listener, dir Direction, breakmode Breakmode, level int) interface{} {
	node := c.current
	if node.Rule < 0 && node.IsLeaf() && !node.Synthetic {
		ctxt := makeCtxt(node.Extent, level, -1, nil)
		return listener.Terminal(node.Label, node.Text, ctxt)
	}
	values := make([]interface{}, len(node.Children))
	ctxt := makeCtxt(node.Extent, level, node.Rule, listener.MakeAttrs(node.Label))
	doContinue := listener.EnterRule(node, ctxt)
	if doContinue || breakmode == Continue {
		i := 0
		if dir == RtoL {
			i = len(values) - 1
		}
		if _, ok := c.Down(dir); ok {
			for ; ok; _, ok = c.Sibling(dir) {
				values[i] = c.traverseTopDown(listener, dir, breakmode, level+1)
				tracer().Debugf("child value[%d] = %v", i, values[i])
				i += int(dir)
			}
			c.Up()
		}
	}
	return listener.ExitRule(node, values, ctxt)
}

// Direction lets clients decide wether children nodes should be traversed left-to-right
// (default) or right-to-left.
type Direction int

// Children nodes may be traversed left-to-right (default) or right-to-left.
const (
	LtoR Direction = 1
	RtoL Direction = -1
)

// Breakmode is a client hint wether to stop traversing on break-signals or not.
type Breakmode int

// Setting Continue will always traverse a complete (sub-)tree. Break will skip
// traversing sub-tree as soon as an Enter-function signals a break.
const (
	Continue Breakmode = iota
	Break
)

// --- Listener --------------------------------------------------------------

// Listener is a type for walking a parse tree.
//
// EnterRule returns a boolean value indicating if the traversal should continue to
// the children of this node. ExitRule receives the values computed for the
// children (in left-to-right order; nil for children not visited). ExitRule
// and Terminal may return user-defined values to be propagated upwards of the tree.
type Listener interface {
	EnterRule(*Node, RuleCtxt) bool
	ExitRule(*Node, []interface{}, RuleCtxt) interface{}
	Terminal(kind string, text string, ctxt RuleCtxt) interface{}
	MakeAttrs(label string) interface{}
}

// RuleCtxt is a context structure for Listeners.
type RuleCtxt struct {
	Span      lrstep.Span // span of input symbols covered by this rule
	Level     int         // nesting level
	RuleIndex int         // -1 for terminals
	Attrs     interface{} // client-defined attributes local to node
}

func makeCtxt(span lrstep.Span, level int, rule int, attrs interface{}) RuleCtxt {
	return RuleCtxt{
		Span:      span,
		Level:     level,
		RuleIndex: rule,
		Attrs:     attrs,
	}
}
