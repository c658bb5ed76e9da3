/*
Package lexmach provides an adapter to use the lexmachine scanner generator with
the parse driver of lrstep.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

Lexmachine has to be initialized by providing keywords and regular expressions.
Package lexmach is very opinionated on how to do the setup of lexmachine: the
kind of a token is a string, which is the terminal of the grammar the token
stands for.

The easiest way is to derive a scanner from a grammar. Every terminal matches
its own text, unless a regular expression is given for it:

	patterns := map[string]string{
		"NUM":  `[0-9]+`,
		"LPAR": `\(`,
		"RPAR": `\)`,
	}
	LM, err := lexmach.ForGrammar(g, patterns)

Clients who need more control over lexmachine may set it up themselves:

	init := func(lexer *lexmachine.Lexer) {
		// lexmach.Skip      is a pre-defined action which ignores the scanned match
		// lexmach.MakeToken is a pre-defined action which wraps a scanned match into
		//                   a token of a given kind
		lexer.Add([]byte(`[0-9]+`), lexmach.MakeToken("NUM"))
	}
	LM, err := lexmach.NewLMAdapter(init, literals, keywords)

NewLMAdapter will return an error if compiling the DFA failed.
A scanner is instantiated for each concrete input sequence.
The scanner implements the scanner.Tokenizer interface.

	scan, err := LM.Scanner("input string to tokenize")
	if err != nil {
		// do error handling
	}

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
