package lr

import (
	"encoding/json"
	"fmt"
)

// === Parse Tables ==========================================================

// Row is the table row for one automaton state. Actions are keyed by
// terminal (including EOF), gotos by non-terminal.
type Row struct {
	State   int               `json:"state"`
	Actions map[string]Action `json:"actions"`
	Gotos   map[string]int    `json:"gotos"`
}

// Table is a combined ACTION and GOTO table, one row per CFSM state.
type Table struct {
	Method       Method
	Loose        bool
	G            *Grammar // augmented grammar, not serialized
	Terminals    []string // action columns, EOF last
	NonTerminals []string // goto columns
	Rows         []*Row
}

// Conflict describes a table cell holding more than one action.
type Conflict struct {
	State    int
	Terminal string
	Action   Action
}

func (c Conflict) String() string {
	return fmt.Sprintf("state %d on %s: %v", c.State, c.Terminal, c.Action)
}

func newTable(c *CFSM, loose bool) *Table {
	t := &Table{
		Method:       c.Method,
		Loose:        loose,
		G:            c.G,
		Terminals:    append(c.G.Terminals(), EOF),
		NonTerminals: c.G.NonTerminals(),
		Rows:         make([]*Row, len(c.states)),
	}
	for i := range t.Rows {
		t.Rows[i] = &Row{
			State:   i,
			Actions: make(map[string]Action),
			Gotos:   make(map[string]int),
		}
	}
	return t
}

// Size returns the number of rows.
func (t *Table) Size() int {
	return len(t.Rows)
}

// Row returns the row for a state.
func (t *Table) Row(state int) (*Row, bool) {
	if state < 0 || state >= len(t.Rows) {
		return nil, false
	}
	return t.Rows[state], true
}

// Action looks up ACTION[state, terminal].
func (t *Table) Action(state int, terminal string) (Action, bool) {
	row, ok := t.Row(state)
	if !ok {
		return Action{}, false
	}
	a, ok := row.Actions[terminal]
	return a, ok
}

// Goto looks up GOTO[state, nonterminal].
func (t *Table) Goto(state int, nonterminal string) (int, bool) {
	row, ok := t.Row(state)
	if !ok {
		return 0, false
	}
	next, ok := row.Gotos[nonterminal]
	return next, ok
}

// Conflicts returns all conflicting cells, ordered by state and column.
func (t *Table) Conflicts() []Conflict {
	var conflicts []Conflict
	for _, row := range t.Rows {
		for _, term := range t.columns(row) {
			if a := row.Actions[term]; a.Type == ConflictAction {
				conflicts = append(conflicts, Conflict{State: row.State, Terminal: term, Action: a})
			}
		}
	}
	return conflicts
}

// HasConflicts is true if any cell holds a conflict.
func (t *Table) HasConflicts() bool {
	for _, row := range t.Rows {
		for _, a := range row.Actions {
			if a.Type == ConflictAction {
				return true
			}
		}
	}
	return false
}

// columns returns the action columns of a row in table order. Tables decoded
// from JSON may have rows with terminals missing from t.Terminals.
func (t *Table) columns(row *Row) []string {
	cols := make([]string, 0, len(row.Actions))
	known := make(map[string]bool, len(t.Terminals))
	for _, term := range t.Terminals {
		known[term] = true
		if _, ok := row.Actions[term]; ok {
			cols = append(cols, term)
		}
	}
	for term := range row.Actions {
		if !known[term] {
			cols = append(cols, term)
		}
	}
	return cols
}

type tableJSON struct {
	Method       string   `json:"method"`
	Loose        bool     `json:"loose,omitempty"`
	Terminals    []string `json:"terminals"`
	NonTerminals []string `json:"nonterminals"`
	Rows         []*Row   `json:"rows"`
}

// MarshalJSON encodes the table as a list of rows plus column headers.
func (t *Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(tableJSON{
		Method:       t.Method.String(),
		Loose:        t.Loose,
		Terminals:    t.Terminals,
		NonTerminals: t.NonTerminals,
		Rows:         t.Rows,
	})
}

// UnmarshalJSON is the inverse of MarshalJSON. The grammar is not restored.
func (t *Table) UnmarshalJSON(data []byte) error {
	var tj tableJSON
	if err := json.Unmarshal(data, &tj); err != nil {
		return err
	}
	t.Method = LR0
	if tj.Method == LR1.String() {
		t.Method = LR1
	}
	t.Loose = tj.Loose
	t.Terminals = tj.Terminals
	t.NonTerminals = tj.NonTerminals
	t.Rows = tj.Rows
	for i, row := range t.Rows {
		if row == nil || row.State != i {
			return fmt.Errorf("table row %d is missing or out of order", i)
		}
		if row.Actions == nil {
			row.Actions = make(map[string]Action)
		}
		if row.Gotos == nil {
			row.Gotos = make(map[string]int)
		}
	}
	return nil
}

// === Table Construction ====================================================

type tableBuilder struct {
	table *Table
	loose bool
}

func (b *tableBuilder) setAction(state int, terminal string, act Action) {
	row := b.table.Rows[state]
	cell := row.Actions[terminal]
	merged := mergeAction(cell, act, b.loose)
	if merged.Type == ConflictAction && !merged.Equals(cell) {
		tracer().Infof("conflict in state %d on %s: %v", state, terminal, merged)
	}
	row.Actions[terminal] = merged
}

func (b *tableBuilder) setGoto(state int, nonterminal string, next int) error {
	row := b.table.Rows[state]
	if prev, ok := row.Gotos[nonterminal]; ok && prev != next {
		return fmt.Errorf("%w: state %d has gotos %d and %d on %s",
			ErrInconsistentAutomaton, state, prev, next, nonterminal)
	}
	row.Gotos[nonterminal] = next
	return nil
}

// successor resolves the transition an item expects.
func successor(s *CFSMState, A Element, i Item) (int, error) {
	next, ok := s.Successor(A)
	if !ok {
		return 0, fmt.Errorf("%w: state %d has no transition on %v for item %v",
			ErrInconsistentAutomaton, s.ID, A, i)
	}
	return next, nil
}

// BuildLR0Table constructs a table from an LR(0) automaton. Complete items
// reduce on every terminal and on EOF. The completed start item accepts on EOF.
func BuildLR0Table(c *CFSM) (*Table, error) {
	b := &tableBuilder{table: newTable(c, false)}
	for _, s := range c.states {
		for _, i := range s.Items() {
			if A, ok := i.PeekSymbol(); ok {
				next, err := successor(s, A, i)
				if err != nil {
					return nil, err
				}
				if A.IsTerminal() {
					b.setAction(s.ID, A.Value, Shift(next))
				} else if err := b.setGoto(s.ID, A.Value, next); err != nil {
					return nil, err
				}
				continue
			}
			p := i.Production()
			if p.LHS == AugmentedStart {
				b.setAction(s.ID, EOF, Accept(p))
				continue
			}
			for _, term := range b.table.Terminals {
				b.setAction(s.ID, term, Reduce(p))
			}
		}
	}
	return b.table, nil
}

// BuildLR1Table constructs a table from an LR(1) automaton. Complete items
// reduce on their look-ahead only. In loose mode shift/reduce conflicts are
// resolved in favour of the shift.
func BuildLR1Table(c *CFSM, loose bool) (*Table, error) {
	b := &tableBuilder{table: newTable(c, loose), loose: loose}
	for _, s := range c.states {
		// items sharing a symbol share a successor; resolve it once per symbol
		resolved := make(map[Element]bool)
		var completed []Item
		for _, i := range s.Items() {
			A, ok := i.PeekSymbol()
			if !ok {
				completed = append(completed, i)
				continue
			}
			if resolved[A] {
				continue
			}
			next, err := successor(s, A, i)
			if err != nil {
				return nil, err
			}
			resolved[A] = true
			if A.IsTerminal() {
				b.setAction(s.ID, A.Value, Shift(next))
			} else if err := b.setGoto(s.ID, A.Value, next); err != nil {
				return nil, err
			}
		}
		for _, i := range completed {
			p := i.Production()
			la, _ := i.LookAhead()
			if p.LHS == AugmentedStart {
				if la == EOF {
					b.setAction(s.ID, EOF, Accept(p))
				}
				continue
			}
			b.setAction(s.ID, la, Reduce(p))
		}
	}
	return b.table, nil
}

// === Table Generator =======================================================

// TableGenerator is a generator object to construct LR parser tables.
// Clients usually create a Grammar G and then a table generator.
// TableGenerator.CreateTables() constructs the CFSM and parser tables for an
// LR-parser recognizing grammar G.
type TableGenerator struct {
	g            *Grammar
	method       Method
	loose        bool
	first        *FirstSets
	dfa          *CFSM
	table        *Table
	HasConflicts bool
}

// Option configures a TableGenerator.
type Option func(*TableGenerator)

// Loose selects shift-preference for shift/reduce conflicts. It applies to
// LR(1) tables only.
func Loose(b bool) Option {
	return func(lrgen *TableGenerator) {
		lrgen.loose = b
	}
}

// WithFirstSets lets the generator re-use previously computed FIRST sets for
// the augmented grammar.
func WithFirstSets(first *FirstSets) Option {
	return func(lrgen *TableGenerator) {
		lrgen.first = first
	}
}

// NewTableGenerator creates a new TableGenerator for a grammar.
func NewTableGenerator(g *Grammar, method Method, opts ...Option) *TableGenerator {
	lrgen := &TableGenerator{g: g.Augmented(), method: method}
	for _, opt := range opts {
		opt(lrgen)
	}
	if lrgen.loose && method == LR0 {
		tracer().Infof("loose mode ignored for LR(0) tables")
	}
	return lrgen
}

// Grammar returns the augmented grammar.
func (lrgen *TableGenerator) Grammar() *Grammar {
	return lrgen.g
}

// First returns the FIRST sets of the augmented grammar, computing them if
// necessary.
func (lrgen *TableGenerator) First() *FirstSets {
	if lrgen.first == nil {
		lrgen.first = ComputeFirst(lrgen.g)
	}
	return lrgen.first
}

// CFSM returns the characteristic finite state machine (CFSM) for a grammar.
// Usually clients call lrgen.CreateTables() beforehand, but it is possible
// to call lrgen.CFSM() directly. The CFSM will be created, if it has not
// been constructed previously. Returns nil if construction fails.
func (lrgen *TableGenerator) CFSM() *CFSM {
	if lrgen.dfa == nil {
		if err := lrgen.buildCFSM(); err != nil {
			tracer().Errorf("cannot build CFSM: %v", err)
			return nil
		}
	}
	return lrgen.dfa
}

// Table returns the parse table. The tables have to be built by calling
// CreateTables() previously.
func (lrgen *TableGenerator) Table() *Table {
	if lrgen.table == nil {
		tracer().Errorf("tables not yet initialized")
	}
	return lrgen.table
}

func (lrgen *TableGenerator) buildCFSM() (err error) {
	if lrgen.method == LR1 {
		lrgen.dfa, err = BuildLR1Automaton(lrgen.g, lrgen.First())
	} else {
		lrgen.dfa, err = BuildLR0Automaton(lrgen.g)
	}
	return
}

// CreateTables creates the automaton and the parse table.
func (lrgen *TableGenerator) CreateTables() error {
	if lrgen.dfa == nil {
		if err := lrgen.buildCFSM(); err != nil {
			return err
		}
	}
	var err error
	if lrgen.method == LR1 {
		lrgen.table, err = BuildLR1Table(lrgen.dfa, lrgen.loose)
	} else {
		lrgen.table, err = BuildLR0Table(lrgen.dfa)
	}
	if err != nil {
		return err
	}
	lrgen.HasConflicts = lrgen.table.HasConflicts()
	return nil
}

// AcceptingStates returns all states of the CFSM which represent an accept action.
// Clients have to call CreateTables() first.
func (lrgen *TableGenerator) AcceptingStates() []int {
	if lrgen.dfa == nil {
		tracer().Errorf("tables not yet generated; call CreateTables() first")
		return nil
	}
	var acc []int
	for _, s := range lrgen.dfa.states {
		if s.Accept {
			acc = append(acc, s.ID)
		}
	}
	return acc
}
