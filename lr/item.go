package lr

import (
	"fmt"
	"strings"

	"github.com/npillmayer/lrstep/lr/iteratable"
)

// Item is an LR item, i.e. a production with a dot-marker somewhere within
// the RHS. LR(1) items carry an additional look-ahead terminal.
//
//    [A → α • β]      LR(0)
//    [A → α • β, a]   LR(1)
//
// Items are values and are compared by hash.
type Item struct {
	prod *Production
	dot  int
	la   string
	lr1  bool
}

// StartItem returns the LR(0) item for p with the dot at position 0.
func StartItem(p *Production) Item {
	return Item{prod: p}
}

// StartItemLR1 returns the LR(1) item for p with the dot at position 0 and
// look-ahead la.
func StartItemLR1(p *Production, la string) Item {
	return Item{prod: p, la: la, lr1: true}
}

// Production returns the production of an item.
func (i Item) Production() *Production {
	return i.prod
}

// Dot returns the position of the dot-marker.
func (i Item) Dot() int {
	return i.dot
}

// LookAhead returns the look-ahead terminal of an LR(1) item.
func (i Item) LookAhead() (string, bool) {
	return i.la, i.lr1
}

// PeekSymbol returns the symbol after the dot, if any.
func (i Item) PeekSymbol() (Element, bool) {
	if i.dot >= len(i.prod.RHS) {
		return Element{}, false
	}
	return i.prod.RHS[i.dot], true
}

// Advance moves the dot one position to the right. Advancing a complete item
// is a no-op.
func (i Item) Advance() Item {
	if i.IsComplete() {
		return i
	}
	i.dot++
	return i
}

// IsComplete is true if the dot is behind the RHS.
func (i Item) IsComplete() bool {
	return i.dot >= len(i.prod.RHS)
}

// Prefix returns the symbols before the dot.
func (i Item) Prefix() []Element {
	return i.prod.RHS[:i.dot]
}

// Rest returns the symbols behind the symbol after the dot.
func (i Item) Rest() []Element {
	if i.dot+1 >= len(i.prod.RHS) {
		return nil
	}
	return i.prod.RHS[i.dot+1:]
}

// Core returns the hash of an item without its look-ahead.
func (i Item) Core() string {
	return fmt.Sprintf("%s•%d", i.prod.Hash(), i.dot)
}

// Hash identifies an item by production, dot position and look-ahead.
func (i Item) Hash() string {
	if i.lr1 {
		return i.Core() + "|LA:" + i.la
	}
	return i.Core()
}

func (i Item) String() string {
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(i.prod.LHS)
	b.WriteString(" →")
	for n, e := range i.prod.RHS {
		if n == i.dot {
			b.WriteString(" •")
		}
		b.WriteByte(' ')
		b.WriteString(e.String())
	}
	if i.IsComplete() {
		b.WriteString(" •")
	}
	if i.lr1 {
		b.WriteString(", ")
		b.WriteString(i.la)
	}
	b.WriteString("]")
	return b.String()
}

// --- Item sets -------------------------------------------------------------

func newItemSet() *iteratable.Set {
	return iteratable.NewSet(0)
}

func asItem(x interface{}) Item {
	return x.(Item)
}

func itemsOf(S *iteratable.Set) []Item {
	items := make([]Item, 0, S.Size())
	for _, x := range S.Values() {
		items = append(items, asItem(x))
	}
	return items
}

func itemSetString(S *iteratable.Set) string {
	var b strings.Builder
	b.WriteString("{")
	for n, i := range itemsOf(S) {
		if n > 0 {
			b.WriteString(" ")
		}
		b.WriteString(i.String())
	}
	b.WriteString("}")
	return b.String()
}

// Dump is a debugging helper.
func Dump(S *iteratable.Set) {
	for _, i := range itemsOf(S) {
		tracer().Debugf("   %v", i)
	}
}
