package bnf

import (
	"regexp"

	"github.com/npillmayer/lrstep/lr"
)

var nonTerminalName = regexp.MustCompile(`^[A-Z_]+$`)

// Validate checks a grammar for referential integrity:
// every non-terminal used must be defined, defined non-terminals should be
// used, and the first rule has to define the start symbol. Non-terminals
// with names other than upper case letters and underscores are reported as
// warnings, as they are frequently meant to be terminals.
func Validate(g *lr.Grammar) Diagnostics {
	var diags Diagnostics
	rules := g.Rules()
	if len(rules) == 0 {
		return Diagnostics{errorAt(0, "grammar is empty; define the start symbol %s", lr.StartSymbol)}
	}
	first := rules[0]
	if first.LHS != lr.StartSymbol && first.LHS != lr.AugmentedStart {
		diags = append(diags, errorAt(first.Line,
			"the first rule must define the start symbol %s, not %s", lr.StartSymbol, first.LHS))
	}
	if r, ok := g.Rule(lr.AugmentedStart); ok && r != first {
		diags = append(diags, errorAt(r.Line, "%s must be defined by the first rule", lr.AugmentedStart))
	}
	used := make(map[string]bool)
	named := make(map[string]bool)
	checkName := func(name string, line int) {
		if named[name] || name == lr.AugmentedStart {
			return
		}
		named[name] = true
		if !nonTerminalName.MatchString(name) {
			diags = append(diags, warningAt(line,
				"non-terminal %s should be written in upper case; did you mean the terminal '%s'?", name, name))
		}
	}
	for _, r := range rules {
		checkName(r.LHS, r.Line)
		undefined := make(map[string]bool)
		for _, p := range r.Productions {
			for _, e := range p.RHS {
				if e.IsTerminal() {
					continue
				}
				used[e.Value] = true
				if !g.IsNonTerminal(e.Value) && !undefined[e.Value] {
					undefined[e.Value] = true
					diags = append(diags, errorAt(r.Line,
						"non-terminal %s is not defined; quote it if it is meant as a terminal: '%s'",
						e.Value, e.Value))
				}
				checkName(e.Value, r.Line)
			}
		}
	}
	for _, r := range rules {
		if r == first || used[r.LHS] || r.LHS == lr.AugmentedStart {
			continue
		}
		diags = append(diags, warningAt(r.Line, "non-terminal %s is never used", r.LHS))
	}
	tracer().Debugf("validation of grammar %q: %d diagnostics", g.Name, len(diags))
	return diags.sorted()
}
