/*
Package sppf implements parse trees and the parse forests a shift-reduce
parser holds while it is working.

While an LR parser is running, its symbol stack holds an ordered list of
partial parse trees: a forest. A Forest value is a snapshot of this list.
Nodes are immutable once created and are shared between successive
snapshots, so recording a snapshot after every parser step is cheap. After a
successful parse the forest degrades to a single tree.

Trees may be traversed with a Cursor and a Listener, or printed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sppf

import (
	"strings"

	"github.com/npillmayer/lrstep"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lrstep.lr'.
func tracer() tracing.Trace {
	return tracing.Select("lrstep.lr")
}

// Node is a node of a parse tree. Leaves are terminals, inner nodes are
// non-terminals created by reductions.
type Node struct {
	Label     string      `json:"label"` // grammar symbol
	Text      string      `json:"text,omitempty"`
	Extent    lrstep.Span `json:"span"`
	Rule      int         `json:"rule"` // production number, -1 for terminals
	Synthetic bool        `json:"synthetic,omitempty"`
	Children  []*Node     `json:"children,omitempty"`
}

// Leaf creates a terminal node.
func Leaf(kind, text string, span lrstep.Span) *Node {
	return &Node{Label: kind, Text: text, Extent: span, Rule: -1}
}

// Inner creates a non-terminal node for a reduction by production number rule.
// The span is derived from the children.
func Inner(lhs string, rule int, children []*Node) *Node {
	n := &Node{Label: lhs, Rule: rule, Children: children}
	for _, ch := range children {
		n.Extent = n.Extent.Extend(ch.Extent)
	}
	return n
}

// Synthetic creates a root node for a list of trees which could not be
// reduced to a single tree.
func Synthetic(label string, children []*Node) *Node {
	n := Inner(label, -1, children)
	n.Synthetic = true
	return n
}

// IsLeaf is true for nodes without children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

func (n *Node) String() string {
	if n.Text != "" && n.Text != n.Label {
		return n.Label + "(" + n.Text + ")"
	}
	return n.Label
}

// Forest is an ordered list of partial parse trees, bottom of the parser
// stack first.
type Forest []*Node

// Snapshot copies a list of trees into a new forest. Nodes are shared.
func Snapshot(trees []*Node) Forest {
	f := make(Forest, len(trees))
	copy(f, trees)
	return f
}

// Labels returns the root labels of the trees in f.
func (f Forest) Labels() []string {
	labels := make([]string, len(f))
	for i, n := range f {
		labels[i] = n.Label
	}
	return labels
}

func (f Forest) String() string {
	return "[" + strings.Join(f.Labels(), " ") + "]"
}
