package driver

import (
	"encoding/json"
	"fmt"

	"github.com/npillmayer/lrstep"
	"github.com/npillmayer/lrstep/lr"
	"github.com/npillmayer/lrstep/lr/sppf"
)

// Entry is one step of a parse trace. It is either a parser step or, if
// Diagnostic is set, a message explaining why the parser halted.
type Entry struct {
	Step       int
	Forest     sppf.Forest  // parse forest after the step
	State      int          // state reached by the step
	Symbol     string       // terminal shifted or non-terminal reduced to
	Token      lrstep.Token // token shifted, nil for reductions
	Action     lr.Action
	Diagnostic string
}

// IsDiagnostic is true for entries which carry a message instead of a step.
func (e Entry) IsDiagnostic() bool {
	return e.Diagnostic != ""
}

func (e Entry) String() string {
	if e.IsDiagnostic() {
		return e.Diagnostic
	}
	return fmt.Sprintf("%3d: %-8v state %-3d %-10s %v", e.Step, e.Action, e.State, e.Symbol, e.Forest)
}

type entryJSON struct {
	Tree   sppf.Forest `json:"tree"`
	State  int         `json:"state"`
	Token  string      `json:"token"`
	Text   string      `json:"text,omitempty"`
	Action lr.Action   `json:"action"`
}

// MarshalJSON encodes a step as {tree, state, token, action}, and a
// diagnostic as a plain string.
func (e Entry) MarshalJSON() ([]byte, error) {
	if e.IsDiagnostic() {
		return json.Marshal(e.Diagnostic)
	}
	ej := entryJSON{
		Tree:   e.Forest,
		State:  e.State,
		Token:  e.Symbol,
		Action: e.Action,
	}
	if e.Token != nil {
		ej.Text = e.Token.Lexeme()
	}
	return json.Marshal(ej)
}

// Result is the outcome of a parse run.
type Result struct {
	Accepted   bool
	Trace      []Entry
	Root       *sppf.Node // parse tree, or a synthetic root if not accepted
	Diagnostic string     // reason for halting, empty if accepted
}

// Forest returns the last forest recorded in the trace.
func (r *Result) Forest() sppf.Forest {
	for i := len(r.Trace) - 1; i >= 0; i-- {
		if !r.Trace[i].IsDiagnostic() {
			return r.Trace[i].Forest
		}
	}
	return nil
}

// Steps returns the number of parser steps, excluding diagnostics.
func (r *Result) Steps() int {
	n := 0
	for _, e := range r.Trace {
		if !e.IsDiagnostic() {
			n++
		}
	}
	return n
}
