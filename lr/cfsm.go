package lr

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/maps/hashmap"
	"github.com/npillmayer/lrstep/lr/iteratable"
)

// Method selects the kind of automaton and table to construct.
type Method int

// Construction methods.
const (
	LR0 Method = iota
	LR1
)

func (m Method) String() string {
	if m == LR1 {
		return "LR(1)"
	}
	return "LR(0)"
}

// ErrInconsistentAutomaton is returned if a table builder finds a state whose
// item expects a successor on a symbol but no such transition exists. This
// indicates a bug in automaton construction and never a property of the input
// grammar.
var ErrInconsistentAutomaton = errors.New("inconsistent automaton")

// === CFSM States ===========================================================

// CFSMState is a state within the CFSM for a grammar.
type CFSMState struct {
	ID     int             // serial ID of this state, in order of discovery
	kernel *iteratable.Set // kernel items, identifying the state
	items  *iteratable.Set // closure of the kernel
	next   map[Element]int // transitions
	order  []Element       // transition symbols in order of discovery
	Accept bool            // contains the completed start item
}

func newState(id int, kernel *iteratable.Set) *CFSMState {
	return &CFSMState{
		ID:     id,
		kernel: kernel,
		next:   make(map[Element]int),
	}
}

// Items returns the closure items of s.
func (s *CFSMState) Items() []Item {
	if s.items == nil {
		return itemsOf(s.kernel)
	}
	return itemsOf(s.items)
}

// Kernel returns the kernel items of s.
func (s *CFSMState) Kernel() []Item {
	return itemsOf(s.kernel)
}

// Hash returns the structural hash of the kernel of s.
func (s *CFSMState) Hash() string {
	return s.kernel.Hash()
}

// Successor returns the state reached from s by symbol A.
func (s *CFSMState) Successor(A Element) (int, bool) {
	id, ok := s.next[A]
	return id, ok
}

// Symbols returns all symbols with a transition out of s, in order of discovery.
func (s *CFSMState) Symbols() []Element {
	return s.order
}

func (s *CFSMState) String() string {
	return fmt.Sprintf("(state %d | [%d])", s.ID, s.items.Size())
}

// Dump is a debugging helper
func (s *CFSMState) Dump() {
	tracer().Debugf("--- state %03d -----------", s.ID)
	Dump(s.items)
	tracer().Debugf("-------------------------")
}

func (s *CFSMState) containsCompletedStartItem() bool {
	for _, i := range s.Items() {
		if i.Production().LHS == AugmentedStart && i.IsComplete() {
			if la, lr1 := i.LookAhead(); !lr1 || la == EOF {
				return true
			}
		}
	}
	return false
}

// Transition is a labeled edge of the CFSM.
type Transition struct {
	From, To int
	Label    Element
}

// === CFSM ==================================================================

// CFSM is the characteristic finite state machine for a LR grammar, i.e. the
// state diagram of the canonical LR(0) or LR(1) item sets.
// Clients normally do not use it directly, but rather a TableGenerator.
type CFSM struct {
	G      *Grammar        // the augmented grammar
	Method Method          // LR(0) or LR(1) items
	First  *FirstSets      // FIRST sets, LR(1) only
	S0     *CFSMState      // start state
	states []*CFSMState    // all the states, indexed by ID
	byHash *hashmap.Map    // kernel hash → state
	edges  *arraylist.List // all the edges between states
}

func emptyCFSM(g *Grammar, method Method) *CFSM {
	return &CFSM{
		G:      g,
		Method: method,
		byHash: hashmap.New(),
		edges:  arraylist.New(),
	}
}

// States returns all states, ordered by ID.
func (c *CFSM) States() []*CFSMState {
	return c.states
}

// State returns the state with a given ID.
func (c *CFSM) State(id int) (*CFSMState, bool) {
	if id < 0 || id >= len(c.states) {
		return nil, false
	}
	return c.states[id], true
}

// Size returns the number of states.
func (c *CFSM) Size() int {
	return len(c.states)
}

// Transitions returns all edges in order of creation.
func (c *CFSM) Transitions() []Transition {
	tt := make([]Transition, 0, c.edges.Size())
	it := c.edges.Iterator()
	for it.Next() {
		tt = append(tt, it.Value().(Transition))
	}
	return tt
}

// findOrAddState returns the state for a kernel, creating it if necessary.
// The boolean is true for newly created states.
func (c *CFSM) findOrAddState(kernel *iteratable.Set) (*CFSMState, bool) {
	h := kernel.Hash()
	if x, found := c.byHash.Get(h); found {
		return x.(*CFSMState), false
	}
	s := newState(len(c.states), kernel)
	c.states = append(c.states, s)
	c.byHash.Put(h, s)
	return s, true
}

func (c *CFSM) addEdge(from, to *CFSMState, A Element) {
	if _, exists := from.next[A]; !exists {
		from.order = append(from.order, A)
	}
	from.next[A] = to.ID
	c.edges.Add(Transition{From: from.ID, To: to.ID, Label: A})
}

// === Construction ==========================================================

// BuildLR0Automaton constructs the canonical collection of LR(0) item sets
// for g. g is augmented if necessary.
func BuildLR0Automaton(g *Grammar) (*CFSM, error) {
	c := emptyCFSM(g.Augmented(), LR0)
	kernel := newItemSet()
	for _, p := range c.G.StartProductions() {
		kernel.Add(StartItem(p))
	}
	if err := c.build(kernel, c.closure0); err != nil {
		return nil, err
	}
	return c, nil
}

// BuildLR1Automaton constructs the canonical collection of LR(1) item sets
// for g. g is augmented if necessary. If first is nil, FIRST sets are computed.
func BuildLR1Automaton(g *Grammar, first *FirstSets) (*CFSM, error) {
	c := emptyCFSM(g.Augmented(), LR1)
	if first == nil || first.g != c.G {
		first = ComputeFirst(c.G)
	}
	c.First = first
	kernel := newItemSet()
	for _, p := range c.G.StartProductions() {
		kernel.Add(StartItemLR1(p, EOF))
	}
	if err := c.build(kernel, c.closure1); err != nil {
		return nil, err
	}
	return c, nil
}

// build explores item sets breadth-first, starting from the start kernel.
// States are numbered in order of discovery.
func (c *CFSM) build(start *iteratable.Set, closure func(*iteratable.Set) *iteratable.Set) error {
	tracer().Debugf("=== build %s CFSM ===========================================", c.Method)
	if start.Empty() {
		return fmt.Errorf("grammar %q has no start production", c.G.Name)
	}
	c.S0, _ = c.findOrAddState(start)
	queue := arraylist.New()
	queue.Add(c.S0)
	for !queue.Empty() {
		x, _ := queue.Get(0)
		queue.Remove(0)
		s := x.(*CFSMState)
		s.items = closure(s.kernel)
		for _, cand := range gotoCandidates(s.items) {
			target, isNew := c.findOrAddState(cand.kernel)
			if isNew {
				queue.Add(target)
			}
			tracer().Debugf("goto(%d, %v) = %d", s.ID, cand.symbol, target.ID)
			c.addEdge(s, target, cand.symbol)
		}
		s.Accept = s.containsCompletedStartItem()
		s.Dump()
	}
	tracer().Infof("%s CFSM for grammar %q has %d states", c.Method, c.G.Name, len(c.states))
	return nil
}

type gotoCandidate struct {
	symbol Element
	kernel *iteratable.Set
}

// gotoCandidates advances every item with a symbol after the dot and groups
// the results by that symbol, in order of first occurrence.
func gotoCandidates(closure *iteratable.Set) []*gotoCandidate {
	var cands []*gotoCandidate
	bySymbol := make(map[Element]*gotoCandidate)
	for _, i := range itemsOf(closure) {
		A, ok := i.PeekSymbol()
		if !ok {
			continue
		}
		cand, ok := bySymbol[A]
		if !ok {
			cand = &gotoCandidate{symbol: A, kernel: newItemSet()}
			bySymbol[A] = cand
			cands = append(cands, cand)
		}
		cand.kernel.Add(i.Advance())
	}
	return cands
}

// closure0 computes the LR(0) closure of a kernel.
func (c *CFSM) closure0(kernel *iteratable.Set) *iteratable.Set {
	C := kernel.Copy()
	C.IterateOnce()
	for C.Next() {
		item := asItem(C.Item())
		B, ok := item.PeekSymbol()
		if !ok || B.IsTerminal() {
			continue
		}
		if rule, ok := c.G.Rule(B.Value); ok {
			for _, p := range rule.Productions {
				C.Add(StartItem(p))
			}
		}
	}
	return C
}

// closure1 computes the LR(1) closure of a kernel: for [A → α • B β, a] it
// adds [B → • γ, b] for every b in FIRST(β a).
func (c *CFSM) closure1(kernel *iteratable.Set) *iteratable.Set {
	C := kernel.Copy()
	C.IterateOnce()
	for C.Next() {
		item := asItem(C.Item())
		B, ok := item.PeekSymbol()
		if !ok || B.IsTerminal() {
			continue
		}
		rule, ok := c.G.Rule(B.Value)
		if !ok {
			continue
		}
		la, _ := item.LookAhead()
		lookaheads := c.First.FirstOfSequence(item.Rest(), la)
		for _, p := range rule.Productions {
			for _, b := range lookaheads {
				C.Add(StartItemLR1(p, b))
			}
		}
	}
	return C
}
