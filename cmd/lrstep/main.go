/*
Command lrstep is a workbench for LR parser construction. It reads a grammar
in BNF notation, builds the LR(0) or LR(1) automaton and parse table for it,
and runs a tracing shift-reduce parser on token input.

    lrstep check expr.bnf
    lrstep table --lr1 --format html expr.bnf > table.html
    lrstep parse --lr1 --tokens "NUM + NUM" expr.bnf
    lrstep repl --lr1 expr.bnf

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
