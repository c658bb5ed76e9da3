package sppf

import (
	"fmt"
	"io"
)

// PrintTree writes a tree in a readable form, one node per line.
func PrintTree(w io.Writer, node *Node) {
	printTree(w, node, "", "")
}

func printTree(w io.Writer, node *Node, ruledLine string, childRuledLinePrefix string) {
	if node == nil {
		return
	}
	switch {
	case node.Synthetic:
		fmt.Fprintf(w, "%v!%v\n", ruledLine, node.Label)
	case node.Text != "":
		fmt.Fprintf(w, "%v%v %#v\n", ruledLine, node.Label, node.Text)
	default:
		fmt.Fprintf(w, "%v%v\n", ruledLine, node.Label)
	}
	num := len(node.Children)
	for i, child := range node.Children {
		var line string
		if num > 1 && i < num-1 {
			line = "├─ "
		} else {
			line = "└─ "
		}
		var prefix string
		if i >= num-1 {
			prefix = "   "
		} else {
			prefix = "│  "
		}
		printTree(w, child, childRuledLinePrefix+line, childRuledLinePrefix+prefix)
	}
}

// Each visits all nodes of a tree in pre-order, with their nesting level.
func Each(node *Node, f func(n *Node, level int)) {
	each(node, 0, f)
}

func each(node *Node, level int, f func(*Node, int)) {
	if node == nil {
		return
	}
	f(node, level)
	for _, ch := range node.Children {
		each(ch, level+1, f)
	}
}
