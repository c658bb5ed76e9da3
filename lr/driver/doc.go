/*
Package driver provides a table-driven shift-reduce parser. Clients have to
use the tools of package lr to prepare the parse table. The parser utilizes
the table to create a right derivation for a given input, provided through a
scanner interface.

The main focus of this implementation is inspection. Every shift and every
reduce step is recorded in a trace, together with a snapshot of the parse
forest the parser holds at that moment. Clients, e.g. a visualization, may
replay a parse step by step.

Usage

	lrgen := lr.NewTableGenerator(g, lr.LR1)
	if err := lrgen.CreateTables(); err != nil { ... }
	p := driver.NewParser(lrgen.Table())
	result, err := p.Parse(scanner.Fields("LPAR NUM RPAR"))
	if result.Accepted {
		sppf.PrintTree(os.Stdout, result.Root)
	}

Input not in the language of the grammar is not an error. The parser halts
and the last entry of the trace is a diagnostic message. The same is true for
conflicts in the table: the parser does not guess.

The state recorded for a shift step is the state after the shift, the same
as for reduce steps, where it is the state reached by the goto.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package driver

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lrstep.driver'.
func tracer() tracing.Trace {
	return tracing.Select("lrstep.driver")
}
