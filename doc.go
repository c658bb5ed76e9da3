/*
Package lrstep is a toolbox for teaching and exploring bottom-up (LR) parsing.

Users write a grammar in a small line-oriented BNF notation. lrstep builds the
canonical LR(0) or LR(1) item-set automaton for it, derives the ACTION/GOTO table
and drives a shift-reduce parser over a token stream, recording every step of the
parse. Package structure is as follows:

■ lr: Package lr implements the grammar model, FIRST-sets, the LR(0)/LR(1) item-set
automata and the construction of parser tables, including conflict detection.

■ lr/bnf: Package bnf reads grammars from BNF text and validates them.

■ lr/driver: Package driver implements the table-driven shift-reduce parser, producing
a step-by-step trace.

■ lr/sppf: Package sppf holds the parse trees and forest snapshots of a trace.

■ lr/scanner: Package scanner defines the token stream contract between lexers and
the driver.

■ lr/workbench: Package workbench runs the whole pipeline for a single grammar edit.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lrstep
