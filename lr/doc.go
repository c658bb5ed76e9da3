/*
Package lr implements the grammar model and the construction of LR parser tables.

Building a Grammar

Grammars are usually read from BNF text (see package bnf), but may as well be
specified using a grammar builder object. Clients add rules, consisting of
non-terminal symbols and terminals. Grammars may contain epsilon-productions.

Example:

    b := lr.NewGrammarBuilder("G")
    b.LHS("S").N("A").T("a").End()     // S  ->  A 'a'
    b.LHS("A").N("B").N("D").End()     // A  ->  B D
    b.LHS("B").T("b").End()            // B  ->  'b'
    b.LHS("B").Epsilon()               // B  ->  ε
    b.LHS("D").T("d").End()            // D  ->  'd'
    b.LHS("D").Epsilon()               // D  ->  ε
    g := b.Grammar()

The start symbol of a grammar is always "S". Before constructing an automaton,
the grammar is augmented with a production S' -> S, unless it already defines
S' itself.

Static Grammar Analysis

FIRST-sets are computed by a fixed-point iteration over the productions:

    first := lr.ComputeFirst(g)
    first.First(lr.N("A"))            // [b d ε]

They are needed for the construction of LR(1) automata only, where they serve
to seed the look-ahead of items introduced by closure.

Parser Construction

A characteristic finite state machine (CFSM) is built from the grammar, either
from LR(0) items or from LR(1) items. States are identified by a structural hash
of their kernel items, so identical item sets reached on different paths are
merged into one state. States are discovered breadth-first, which makes state
numbers stable for a given grammar.

The CFSM is then transformed into a parser table with an ACTION part (per
terminal) and a GOTO part (per non-terminal). Conflicting table entries are not
an error: they are recorded as Conflict actions.

    lrgen := lr.NewTableGenerator(g, lr.LR1, lr.Loose(false))
    if err := lrgen.CreateTables(); err != nil { ... }  // internal error
    if lrgen.HasConflicts { ... }                       // grammar is not LR(1)
    table := lrgen.Table()

The CFSM will not be thrown away, but is made available to the client.
It can be exported to Graphviz's Dot-format, tables may be exported to HTML or
plain text.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lrstep.lr'.
func tracer() tracing.Trace {
	return tracing.Select("lrstep.lr")
}
