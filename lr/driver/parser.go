package driver

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/lrstep"
	"github.com/npillmayer/lrstep/lr"
	"github.com/npillmayer/lrstep/lr/scanner"
	"github.com/npillmayer/lrstep/lr/sppf"
)

// DefaultMaxSteps limits the number of steps of a parse run.
const DefaultMaxSteps = 10000

// Parser is a shift-reduce parser. Create and initialize one with
// driver.NewParser(...). A parser may be used for any number of parse runs,
// but not concurrently.
type Parser struct {
	table       *lr.Table
	maxSteps    int
	traceTokens bool
	states      *arraystack.Stack // state IDs
	trees       *arraystack.Stack // *sppf.Node, one per symbol on the stack
	trace       []Entry
}

// Option configures a parser.
type Option func(p *Parser)

// MaxSteps sets the maximum number of steps for a parse run. A parser
// exceeding it halts with a diagnostic. Grammars with cycles of
// ε-reductions may otherwise never halt.
func MaxSteps(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxSteps = n
		}
	}
}

// TraceTokens lets the parser log every token it reads at level Info.
func TraceTokens(b bool) Option {
	return func(p *Parser) {
		p.traceTokens = b
	}
}

// NewParser creates a parser for a parse table.
func NewParser(table *lr.Table, opts ...Option) *Parser {
	p := &Parser{
		table:    table,
		maxSteps: DefaultMaxSteps,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse runs the parser on the tokens delivered by scan.
//
// An error is returned only for a parser without table or for a missing
// scanner. Input not in the language halts the parser with a diagnostic
// entry at the end of the trace.
func (p *Parser) Parse(scan scanner.Tokenizer) (*Result, error) {
	if p.table == nil || p.table.Size() == 0 {
		tracer().Errorf("parser not initialized")
		return nil, errors.New("parser has no parse table")
	}
	if scan == nil {
		return nil, errors.New("parser needs a scanner")
	}
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	p.states = arraystack.New()
	p.trees = arraystack.New()
	p.trace = nil
	p.states.Push(0)
	result := &Result{}
	token := p.nextToken(scan)
	for step := 0; ; step++ {
		if step >= p.maxSteps {
			return p.halt(result, "parser stopped after %d steps; the grammar may contain a cycle", p.maxSteps), nil
		}
		state := p.topState()
		kind := token.Kind()
		action, ok := p.table.Action(state, kind)
		if !ok {
			if _, exists := p.table.Row(state); !exists {
				return p.halt(result, "no table row for state %d", state), nil
			}
			return p.halt(result, "syntax error at %s: unexpected %s in state %d, expected one of %s",
				token.Span(), kind, state, p.expected(state)), nil
		}
		tracer().Debugf("action(%d, %s) = %v", state, kind, action)
		switch action.Type {
		case lr.ShiftAction:
			p.states.Push(action.State)
			p.trees.Push(sppf.Leaf(kind, token.Lexeme(), token.Span()))
			p.record(Entry{Step: step, State: action.State, Symbol: kind, Token: token, Action: action})
			token = p.nextToken(scan)
		case lr.ReduceAction:
			next, diag := p.reduce(action.Prod, token.Span().From())
			if diag != "" {
				return p.halt(result, diag), nil
			}
			p.record(Entry{Step: step, State: next, Symbol: action.Prod.LHS, Action: action})
		case lr.AcceptAction:
			p.accept(action.Prod)
			p.record(Entry{Step: step, State: state, Symbol: kind, Token: token, Action: action})
			result.Accepted = true
			result.Root = p.root()
			result.Trace = p.trace
			tracer().Infof("input accepted after %d steps", step+1)
			return result, nil
		case lr.ConflictAction:
			return p.halt(result, "conflict in state %d on %s between %s; the parser cannot decide",
				state, kind, action), nil
		default:
			return p.halt(result, "invalid table entry in state %d on %s", state, kind), nil
		}
	}
}

func (p *Parser) nextToken(scan scanner.Tokenizer) lrstep.Token {
	token := scan.NextToken()
	if token == nil {
		token = scanner.EOFToken(0)
	}
	if p.traceTokens {
		tracer().Infof("token %s %q at %v", token.Kind(), token.Lexeme(), token.Span())
	}
	return token
}

func (p *Parser) topState() int {
	top, _ := p.states.Peek()
	return top.(int)
}

// reduce performs a reduce action for a production
//
//    LHS --> X1 ... Xn   (with X being terminals or non-terminals)
//
// Symbols X1 to Xn are represented on the stacks as states and trees
//
//    [TOS]  Sn(Xn) ... S1(X1)  ...
//
// reduce pops them, creates a tree node for LHS with children X1 … Xn and
// pushes the goto state. If there is no goto, the new node stays on the tree
// stack without a state and a diagnostic is returned. pos is the position of the look-ahead, used as
// the span of ε-reductions.
func (p *Parser) reduce(prod *lr.Production, pos uint64) (int, string) {
	n := prod.Len()
	if p.trees.Size() < n {
		return 0, fmt.Sprintf("cannot reduce by %v: only %d symbols on the stack", prod, p.trees.Size())
	}
	children := make([]*sppf.Node, n)
	for i := n - 1; i >= 0; i-- {
		p.states.Pop()
		x, _ := p.trees.Pop()
		children[i] = x.(*sppf.Node)
	}
	node := sppf.Inner(prod.LHS, p.ruleNumber(prod), children)
	if n == 0 {
		node.Extent = lrstep.Span{pos, pos}
	}
	exposed := p.topState()
	next, ok := p.table.Goto(exposed, prod.LHS)
	if !ok {
		p.trees.Push(node)
		return 0, fmt.Sprintf("no goto for %s in state %d", prod.LHS, exposed)
	}
	tracer().Debugf("reduce %v, goto(%d, %s) = %d", prod, exposed, prod.LHS, next)
	p.states.Push(next)
	p.trees.Push(node)
	return next, ""
}

// accept reduces by the start production, leaving the root on the stack.
func (p *Parser) accept(prod *lr.Production) {
	if prod == nil || p.trees.Size() < prod.Len() {
		return
	}
	children := make([]*sppf.Node, prod.Len())
	for i := prod.Len() - 1; i >= 0; i-- {
		p.states.Pop()
		x, _ := p.trees.Pop()
		children[i] = x.(*sppf.Node)
	}
	p.trees.Push(sppf.Inner(prod.LHS, p.ruleNumber(prod), children))
}

func (p *Parser) ruleNumber(prod *lr.Production) int {
	if p.table.G == nil {
		return -1
	}
	return p.table.G.ProductionNumber(prod)
}

// forest returns the trees on the stack, bottom first.
func (p *Parser) forest() []*sppf.Node {
	vals := p.trees.Values() // top first
	trees := make([]*sppf.Node, len(vals))
	for i, x := range vals {
		trees[len(vals)-1-i] = x.(*sppf.Node)
	}
	return trees
}

// root returns the single tree on the stack, or a synthetic root wrapping
// all of them.
func (p *Parser) root() *sppf.Node {
	trees := p.forest()
	if len(trees) == 1 && trees[0].Label == lr.AugmentedStart {
		return trees[0]
	}
	return sppf.Synthetic(lr.AugmentedStart, trees)
}

func (p *Parser) record(e Entry) {
	e.Forest = sppf.Snapshot(p.forest())
	tracer().Debugf("%v", e)
	p.trace = append(p.trace, e)
}

func (p *Parser) halt(result *Result, format string, args ...interface{}) *Result {
	msg := fmt.Sprintf(format, args...)
	tracer().Infof("parser halted: %s", msg)
	p.trace = append(p.trace, Entry{Step: len(p.trace), State: p.topState(), Diagnostic: msg})
	result.Diagnostic = msg
	result.Root = p.root()
	result.Trace = p.trace
	return result
}

// expected lists the terminals with an action in a state.
func (p *Parser) expected(state int) string {
	row, ok := p.table.Row(state)
	if !ok || len(row.Actions) == 0 {
		return "nothing"
	}
	terms := make([]string, 0, len(row.Actions))
	for t := range row.Actions {
		terms = append(terms, t)
	}
	sort.Strings(terms)
	return strings.Join(terms, ", ")
}
