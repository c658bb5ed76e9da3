package lr

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/npillmayer/lrstep"
)

// Conventional names of the start symbols.
const (
	StartSymbol    = "S"  // start symbol every grammar has to define
	AugmentedStart = "S'" // start symbol of the augmented grammar
)

// EOF and Epsilon are replicated from the base package for practical reasons.
const (
	EOF     = lrstep.EOF
	Epsilon = lrstep.Epsilon
)

// === Grammar Elements ======================================================

// ElementType tags a grammar element as terminal or non-terminal.
type ElementType uint8

const (
	NonTerminalType ElementType = iota
	TerminalType
)

func (t ElementType) String() string {
	if t == TerminalType {
		return "terminal"
	}
	return "nonterminal"
}

// Element is a grammar symbol, either a terminal or a non-terminal.
// Terminals carry their literal text as value, non-terminals their name.
// A terminal with an empty value denotes epsilon.
//
// Elements are values and are compared structurally.
type Element struct {
	Type  ElementType
	Value string
}

// T creates a terminal element.
func T(value string) Element {
	return Element{Type: TerminalType, Value: value}
}

// N creates a non-terminal element.
func N(name string) Element {
	return Element{Type: NonTerminalType, Value: name}
}

// IsTerminal is true for terminals, including epsilon and EOF.
func (e Element) IsTerminal() bool {
	return e.Type == TerminalType
}

// IsEpsilon is true for the empty terminal.
func (e Element) IsEpsilon() bool {
	return e.Type == TerminalType && e.Value == ""
}

// IsEOF is true for the end-of-input terminal.
func (e Element) IsEOF() bool {
	return e.Type == TerminalType && e.Value == EOF
}

func (e Element) hashKey() string {
	if e.IsTerminal() {
		return "T:" + e.Value
	}
	return "N:" + e.Value
}

// String returns an element the way it would be written in BNF text.
func (e Element) String() string {
	switch {
	case e.IsEpsilon():
		return Epsilon
	case e.IsEOF():
		return EOF
	case e.IsTerminal():
		return "'" + e.Value + "'"
	}
	return e.Value
}

type elementJSON struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// MarshalJSON encodes an element as {"type":"terminal","value":"x"}.
func (e Element) MarshalJSON() ([]byte, error) {
	return json.Marshal(elementJSON{Type: e.Type.String(), Value: e.Value})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (e *Element) UnmarshalJSON(data []byte) error {
	var ej elementJSON
	if err := json.Unmarshal(data, &ej); err != nil {
		return err
	}
	switch ej.Type {
	case "terminal":
		*e = T(ej.Value)
	case "nonterminal":
		*e = N(ej.Value)
	default:
		return fmt.Errorf("unknown grammar element type %q", ej.Type)
	}
	return nil
}

// === Productions ===========================================================

// Production is one right-hand side alternative for a non-terminal, i.e. a
// concatenation of grammar elements. An empty RHS denotes an epsilon-production.
//
// Productions are value objects. They may be re-created from serialized data,
// therefore identity is defined by a structural hash over the LHS and the
// ordered RHS elements. Never compare productions by pointer.
type Production struct {
	LHS  string
	RHS  []Element
	hash string
}

type productionKey struct {
	LHS string
	RHS []string
}

// NewProduction creates a production LHS → RHS. Epsilon elements are dropped
// from the RHS.
func NewProduction(lhs string, rhs ...Element) *Production {
	syms := make([]Element, 0, len(rhs))
	for _, e := range rhs {
		if e.IsEpsilon() {
			continue
		}
		syms = append(syms, e)
	}
	p := &Production{LHS: lhs, RHS: syms}
	key := productionKey{LHS: lhs, RHS: make([]string, len(syms))}
	for i, e := range syms {
		key.RHS[i] = e.hashKey()
	}
	p.hash = fmt.Sprintf("%x", structhash.Sha1(key, 1))
	return p
}

// Hash returns the structural hash of a production.
func (p *Production) Hash() string {
	return p.hash
}

// Len returns the number of symbols on the RHS, 0 for epsilon-productions.
func (p *Production) Len() int {
	return len(p.RHS)
}

// IsEpsilon is true for productions with an empty RHS.
func (p *Production) IsEpsilon() bool {
	return len(p.RHS) == 0
}

// Equals compares two productions structurally.
func (p *Production) Equals(q *Production) bool {
	if p == nil || q == nil {
		return p == q
	}
	return p.hash == q.hash
}

func (p *Production) String() string {
	return p.LHS + " → " + rhsString(p.RHS)
}

// BNF returns the production as a line of BNF text.
func (p *Production) BNF() string {
	return p.LHS + " -> " + rhsString(p.RHS)
}

func rhsString(rhs []Element) string {
	if len(rhs) == 0 {
		return Epsilon
	}
	var b strings.Builder
	for i, e := range rhs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(e.String())
	}
	return b.String()
}

type productionJSON struct {
	LHS string    `json:"lhs"`
	RHS []Element `json:"rhs"`
}

// MarshalJSON encodes the LHS and RHS of a production. The hash is not part of
// the encoding, but recomputed when decoding.
func (p *Production) MarshalJSON() ([]byte, error) {
	rhs := p.RHS
	if rhs == nil {
		rhs = []Element{}
	}
	return json.Marshal(productionJSON{LHS: p.LHS, RHS: rhs})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (p *Production) UnmarshalJSON(data []byte) error {
	var pj productionJSON
	if err := json.Unmarshal(data, &pj); err != nil {
		return err
	}
	*p = *NewProduction(pj.LHS, pj.RHS...)
	return nil
}

// === Rules and Grammars ====================================================

// Rule groups all productions sharing one left-hand side non-terminal.
// Line is the 0-based line in the grammar source where the rule has been
// defined.
type Rule struct {
	LHS         string
	Productions []*Production
	Line        int
}

func (r *Rule) contains(p *Production) bool {
	for _, q := range r.Productions {
		if q.Equals(p) {
			return true
		}
	}
	return false
}

// Grammar is a set of rules. The order of rules and of productions within a
// rule is the order of definition; it determines production numbering.
type Grammar struct {
	Name  string
	rules []*Rule
	index map[string]*Rule
}

// NewGrammar creates an empty grammar.
func NewGrammar(name string) *Grammar {
	return &Grammar{
		Name:  name,
		index: make(map[string]*Rule),
	}
}

// AddProduction adds p to the rule for p.LHS, creating the rule if necessary.
// line is recorded for newly created rules. AddProduction returns false if p
// is already part of the grammar.
func (g *Grammar) AddProduction(p *Production, line int) bool {
	rule, ok := g.index[p.LHS]
	if !ok {
		rule = &Rule{LHS: p.LHS, Line: line}
		g.index[p.LHS] = rule
		g.rules = append(g.rules, rule)
	} else if rule.contains(p) {
		return false
	}
	rule.Productions = append(rule.Productions, p)
	return true
}

// Rules returns all rules in order of definition.
func (g *Grammar) Rules() []*Rule {
	return g.rules
}

// Rule finds the rule for a non-terminal.
func (g *Grammar) Rule(lhs string) (*Rule, bool) {
	r, ok := g.index[lhs]
	return r, ok
}

// IsNonTerminal checks if name is declared as the LHS of a rule.
func (g *Grammar) IsNonTerminal(name string) bool {
	_, ok := g.index[name]
	return ok
}

// IsEmpty is true for grammars without any rules.
func (g *Grammar) IsEmpty() bool {
	return len(g.rules) == 0
}

// NonTerminals returns the names of all declared non-terminals in order of
// definition.
func (g *Grammar) NonTerminals() []string {
	nts := make([]string, len(g.rules))
	for i, r := range g.rules {
		nts[i] = r.LHS
	}
	return nts
}

// Terminals returns the values of all terminals appearing in any production,
// in order of first appearance. Neither epsilon nor EOF are included.
func (g *Grammar) Terminals() []string {
	seen := make(map[string]bool)
	var terms []string
	for _, p := range g.Productions() {
		for _, e := range p.RHS {
			if e.IsTerminal() && !e.IsEpsilon() && !seen[e.Value] {
				seen[e.Value] = true
				terms = append(terms, e.Value)
			}
		}
	}
	return terms
}

// Productions returns all productions, ordered by rule and alternative.
func (g *Grammar) Productions() []*Production {
	var prods []*Production
	for _, r := range g.rules {
		prods = append(prods, r.Productions...)
	}
	return prods
}

// ProductionNumber returns the serial number of a production, or -1 if p is
// not part of the grammar. Lookup is by structural hash.
func (g *Grammar) ProductionNumber(p *Production) int {
	if p == nil {
		return -1
	}
	for i, q := range g.Productions() {
		if q.Equals(p) {
			return i
		}
	}
	return -1
}

// EachSymbol iterates over all non-terminals and then all terminals of g.
func (g *Grammar) EachSymbol(mapper func(A Element)) {
	for _, nt := range g.NonTerminals() {
		mapper(N(nt))
	}
	for _, t := range g.Terminals() {
		mapper(T(t))
	}
}

// StartSymbol returns S' for augmented grammars and S otherwise.
func (g *Grammar) StartSymbol() string {
	if g.IsNonTerminal(AugmentedStart) {
		return AugmentedStart
	}
	return StartSymbol
}

// IsAugmented is true if the grammar defines S'.
func (g *Grammar) IsAugmented() bool {
	return g.IsNonTerminal(AugmentedStart)
}

// Augmented returns a grammar with an additional start production S' → S as
// its first rule. If g already defines S', g itself is returned.
func (g *Grammar) Augmented() *Grammar {
	if g.IsAugmented() {
		return g
	}
	ag := NewGrammar(g.Name)
	ag.AddProduction(NewProduction(AugmentedStart, N(StartSymbol)), -1)
	for _, r := range g.rules {
		rule := &Rule{
			LHS:         r.LHS,
			Productions: append([]*Production(nil), r.Productions...),
			Line:        r.Line,
		}
		ag.index[r.LHS] = rule
		ag.rules = append(ag.rules, rule)
	}
	return ag
}

// StartProductions returns the productions of S', or nil for grammars which
// are not augmented.
func (g *Grammar) StartProductions() []*Production {
	if r, ok := g.index[AugmentedStart]; ok {
		return r.Productions
	}
	return nil
}

// String returns the grammar as BNF text, one line per rule.
func (g *Grammar) String() string {
	var b strings.Builder
	for _, r := range g.rules {
		b.WriteString(r.LHS)
		b.WriteString(" ->")
		for i, p := range r.Productions {
			if i > 0 {
				b.WriteString(" |")
			}
			b.WriteByte(' ')
			b.WriteString(rhsString(p.RHS))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Dump is a debugging helper.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s -----------", g.Name)
	for i, p := range g.Productions() {
		tracer().Debugf("%3d: %v", i, p)
	}
	tracer().Debugf("-------------------------")
}

// === Grammar Builder =======================================================

// GrammarBuilder is a helper for constructing grammars from code. Typical
// usage:
//
//    b := lr.NewGrammarBuilder("G")
//    b.LHS("S").T("a").N("S").T("b").End()   // S → 'a' S 'b'
//    b.LHS("S").Epsilon()                    // S → ε
//    g := b.Grammar()
//
type GrammarBuilder struct {
	g     *Grammar
	count int
}

// NewGrammarBuilder creates a builder for a grammar with a given name.
func NewGrammarBuilder(name string) *GrammarBuilder {
	return &GrammarBuilder{g: NewGrammar(name)}
}

// RuleBuilder collects the RHS of a single production.
type RuleBuilder struct {
	gb   *GrammarBuilder
	lhs  string
	rhs  []Element
	line int
}

// LHS starts a new production for non-terminal name.
func (gb *GrammarBuilder) LHS(name string) *RuleBuilder {
	rb := &RuleBuilder{gb: gb, lhs: name, line: gb.count}
	gb.count++
	return rb
}

// N appends a non-terminal.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, N(name))
	return rb
}

// T appends a terminal.
func (rb *RuleBuilder) T(value string) *RuleBuilder {
	rb.rhs = append(rb.rhs, T(value))
	return rb
}

// End finishes the production and adds it to the grammar.
func (rb *RuleBuilder) End() *Production {
	p := NewProduction(rb.lhs, rb.rhs...)
	rb.gb.g.AddProduction(p, rb.line)
	return p
}

// Epsilon finishes an epsilon-production and adds it to the grammar.
func (rb *RuleBuilder) Epsilon() *Production {
	rb.rhs = nil
	return rb.End()
}

// Grammar returns the grammar built so far.
func (gb *GrammarBuilder) Grammar() *Grammar {
	return gb.g
}
