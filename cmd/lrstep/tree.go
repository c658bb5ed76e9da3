package main

import (
	"fmt"

	"github.com/npillmayer/lrstep/lr/sppf"
	"github.com/pterm/pterm"
)

func renderTree(root *sppf.Node) {
	if root == nil {
		return
	}
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(leveledList(root))).Render()
}

func leveledList(root *sppf.Node) pterm.LeveledList {
	var ll pterm.LeveledList
	sppf.Each(root, func(n *sppf.Node, level int) {
		ll = append(ll, pterm.LeveledListItem{
			Level: level,
			Text:  nodeText(n),
		})
	})
	tracer().Debugf("|ll| = %d", len(ll))
	return ll
}

func nodeText(n *sppf.Node) string {
	switch {
	case n.Synthetic:
		return "!" + n.Label
	case n.IsLeaf() && n.Rule < 0:
		return fmt.Sprintf("%v %v", n, n.Extent)
	}
	return n.String()
}
