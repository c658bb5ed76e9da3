package bnf

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/npillmayer/lrstep/lr"
)

const arrow = "->"

// Parse reads BNF text from r and creates a grammar. Diagnostics found while
// parsing are returned; if any of them is an error, the grammar is nil.
// Parse does not validate the grammar, see Validate and Check.
func Parse(name string, r io.Reader) (*lr.Grammar, Diagnostics) {
	p := &parser{g: lr.NewGrammar(name), firstLine: make(map[string]int)}
	scanner := bufio.NewScanner(r)
	for line := 0; scanner.Scan(); line++ {
		p.parseLine(scanner.Text(), line)
	}
	if err := scanner.Err(); err != nil {
		p.diags = append(p.diags, errorAt(0, "cannot read grammar: %v", err))
	}
	diags := p.diags.sorted()
	if diags.HasErrors() {
		tracer().Infof("grammar %q has %d errors", name, len(diags.Errors()))
		return nil, diags
	}
	return p.g, diags
}

// ParseString reads a grammar from BNF text.
func ParseString(text string) (*lr.Grammar, Diagnostics) {
	return Parse("G", strings.NewReader(text))
}

// Check parses and validates a grammar.
func Check(name string, r io.Reader) (*lr.Grammar, Diagnostics) {
	g, diags := Parse(name, r)
	if g == nil {
		return nil, diags
	}
	diags = append(diags, Validate(g)...).sorted()
	if diags.HasErrors() {
		return nil, diags
	}
	return g, diags
}

type parser struct {
	g         *lr.Grammar
	diags     Diagnostics
	firstLine map[string]int // line of the first rule for a non-terminal
}

func (p *parser) errorf(line int, format string, args ...interface{}) {
	d := errorAt(line, format, args...)
	tracer().Debugf(d.Error())
	p.diags = append(p.diags, d)
}

func (p *parser) warnf(line int, format string, args ...interface{}) {
	d := warningAt(line, format, args...)
	tracer().Debugf(d.Error())
	p.diags = append(p.diags, d)
}

func (p *parser) parseLine(text string, line int) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	left, right, found := strings.Cut(text, arrow)
	if !found {
		p.errorf(line, "missing '%s' between left-hand side and alternatives", arrow)
		return
	}
	lhs := strings.TrimSpace(left)
	switch {
	case lhs == "":
		p.errorf(line, "missing non-terminal on the left-hand side")
		return
	case lhs == lr.Epsilon || lhs == "''":
		p.errorf(line, "left-hand side must not be %s", lr.Epsilon)
		return
	case strings.HasPrefix(lhs, "'"):
		p.errorf(line, "left-hand side %s is a terminal, must be a non-terminal", lhs)
		return
	case strings.IndexFunc(lhs, unicode.IsSpace) >= 0:
		p.errorf(line, "left-hand side %q must be a single non-terminal", lhs)
		return
	}
	alternatives, ok := p.splitAlternatives(right, line)
	if !ok {
		return
	}
	var prods []*lr.Production
	for _, words := range alternatives {
		rhs, ok := p.parseAlternative(words, line)
		if !ok {
			return
		}
		prods = append(prods, lr.NewProduction(lhs, rhs...))
	}
	if first, seen := p.firstLine[lhs]; seen {
		p.warnf(line, "alternatives for %s are merged into the rule at line %d", lhs, first+1)
	} else {
		p.firstLine[lhs] = line
	}
	for _, prod := range prods {
		if !p.g.AddProduction(prod, line) {
			p.warnf(line, "duplicate alternative %s dropped", prod)
		}
	}
}

// splitAlternatives breaks the right-hand side into alternatives of words.
// Quoted terminals may contain blanks and '|'.
func (p *parser) splitAlternatives(text string, line int) ([][]string, bool) {
	var alts [][]string
	var words []string
	var word strings.Builder
	inQuote := false
	flush := func() {
		if word.Len() > 0 {
			words = append(words, word.String())
			word.Reset()
		}
	}
	for _, r := range text {
		switch {
		case inQuote:
			word.WriteRune(r)
			if r == '\'' {
				inQuote = false
				flush()
			}
		case r == '\'':
			flush()
			word.WriteRune(r)
			inQuote = true
		case r == '|':
			flush()
			alts = append(alts, words)
			words = nil
		case unicode.IsSpace(r):
			flush()
		default:
			word.WriteRune(r)
		}
	}
	if inQuote {
		p.errorf(line, "unterminated terminal %s", word.String())
		return nil, false
	}
	flush()
	alts = append(alts, words)
	return alts, true
}

// parseAlternative classifies the words of one alternative.
func (p *parser) parseAlternative(words []string, line int) ([]lr.Element, bool) {
	if len(words) == 0 {
		p.errorf(line, "empty alternative; write %s for an empty production", lr.Epsilon)
		return nil, false
	}
	rhs := make([]lr.Element, 0, len(words))
	for _, w := range words {
		e, ok := p.classify(w, line)
		if !ok {
			return nil, false
		}
		rhs = append(rhs, e)
	}
	if len(rhs) > 1 {
		for _, e := range rhs {
			if e.IsEpsilon() {
				p.errorf(line, "%s must be the only symbol of an alternative", lr.Epsilon)
				return nil, false
			}
		}
	}
	return rhs, true
}

func (p *parser) classify(word string, line int) (lr.Element, bool) {
	switch {
	case word == lr.Epsilon:
		return lr.T(""), true
	case strings.HasPrefix(word, "'"):
		value := strings.TrimSuffix(strings.TrimPrefix(word, "'"), "'")
		if value == "" {
			p.errorf(line, "empty terminal ''; write %s for the empty word", lr.Epsilon)
			return lr.Element{}, false
		}
		if value == lr.EOF {
			p.errorf(line, "terminal '%s' is reserved for the end of input", lr.EOF)
			return lr.Element{}, false
		}
		return lr.T(value), true
	case word == arrow:
		p.errorf(line, "unexpected '%s' on the right-hand side", arrow)
		return lr.Element{}, false
	}
	if n := len(word); n > 1 && strings.ContainsAny(word[n-1:], "?*+") {
		name := word[:n-1]
		p.warnf(line, "suffix %q of %s has no effect, %s is used as a plain non-terminal",
			word[n-1:], word, name)
		return lr.N(name), true
	}
	return lr.N(word), true
}
