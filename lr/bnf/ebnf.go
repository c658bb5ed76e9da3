package bnf

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/npillmayer/lrstep/lr"
	"golang.org/x/exp/ebnf"
)

// ToEBNF renders a grammar in the EBNF notation of golang.org/x/exp/ebnf.
// Terminals become string tokens. Rules with an ε-alternative are rendered
// as an option. Non-terminal names are converted to identifiers starting with
// an upper case letter; S' becomes "Start".
func ToEBNF(g *lr.Grammar) string {
	var b strings.Builder
	for _, r := range g.Rules() {
		var alts []string
		nullable := false
		for _, p := range r.Productions {
			if p.IsEpsilon() {
				nullable = true
				continue
			}
			syms := make([]string, len(p.RHS))
			for i, e := range p.RHS {
				if e.IsTerminal() {
					syms[i] = strconv.Quote(e.Value)
				} else {
					syms[i] = ebnfName(e.Value)
				}
			}
			alts = append(alts, strings.Join(syms, " "))
		}
		expr := strings.Join(alts, " | ")
		if nullable && expr != "" {
			expr = "[ " + expr + " ]"
		}
		fmt.Fprintf(&b, "%s = %s .\n", ebnfName(r.LHS), expr)
	}
	return b.String()
}

// VerifyEBNF renders g as EBNF and lets package ebnf parse and verify it,
// starting from the grammar's start symbol. Verification fails for undefined
// or unreachable non-terminals.
func VerifyEBNF(g *lr.Grammar) error {
	src := ToEBNF(g)
	grammar, err := ebnf.Parse(g.Name, strings.NewReader(src))
	if err != nil {
		return err
	}
	return ebnf.Verify(grammar, ebnfName(g.StartSymbol()))
}

func ebnfName(name string) string {
	if name == lr.AugmentedStart {
		return "Start"
	}
	var b strings.Builder
	for i, r := range name {
		switch {
		case i == 0 && !unicode.IsUpper(r):
			b.WriteString("X_")
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				b.WriteRune(r)
			} else {
				b.WriteByte('_')
			}
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
