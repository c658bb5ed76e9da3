/*
Package bnf reads grammars from line-oriented BNF text.

Every non-blank line defines the alternatives for one non-terminal:

    S    -> 'a' S 'b' | 'a' 'b'
    LIST -> 'LPAR' SEQ 'RPAR' | 'NUM'
    SEQ  -> LIST SEQ | ε

Terminals are quoted, everything else is a non-terminal. An empty production
is written ε (or ''). Non-terminals may carry a suffix ?, * or +, which is
accepted for compatibility but has no effect.

Parsing produces a grammar plus a list of diagnostics. Diagnostics carry a
0-based line number and are either errors or warnings. Errors prevent any
further processing of the grammar, warnings do not. Validate performs the
semantic checks: undefined and unused non-terminals, naming, and the start
rule.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bnf

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lrstep.bnf'.
func tracer() tracing.Trace {
	return tracing.Select("lrstep.bnf")
}
