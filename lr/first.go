package lr

import (
	"github.com/emirpasic/gods/sets/treeset"
)

// FirstSets holds FIRST(X) for every grammar symbol X of a grammar.
//
// FIRST(t) = {t} for terminals. For non-terminals the sets are computed as a
// fixed point over all productions. A non-terminal deriving the empty string
// has ε in its FIRST set.
type FirstSets struct {
	g        *Grammar
	sets     map[Element]*treeset.Set
	nullable map[string]bool
}

// ComputeFirst computes the FIRST sets for g.
func ComputeFirst(g *Grammar) *FirstSets {
	f := &FirstSets{
		g:        g,
		sets:     make(map[Element]*treeset.Set),
		nullable: make(map[string]bool),
	}
	for _, t := range g.Terminals() {
		set := treeset.NewWithStringComparator()
		set.Add(t)
		f.sets[T(t)] = set
	}
	for _, nt := range g.NonTerminals() {
		f.sets[N(nt)] = treeset.NewWithStringComparator()
	}
	changed, rounds := true, 0
	for changed {
		changed = false
		rounds++
		for _, p := range g.Productions() {
			acc := f.sets[N(p.LHS)]
			exhausted := true
			for _, X := range p.RHS {
				if X.IsTerminal() {
					if !acc.Contains(X.Value) {
						acc.Add(X.Value)
						changed = true
					}
					exhausted = false
					break
				}
				if f.mergeInto(acc, X) {
					changed = true
				}
				if !f.nullable[X.Value] {
					exhausted = false
					break
				}
			}
			if exhausted && !f.nullable[p.LHS] {
				f.nullable[p.LHS] = true
				changed = true
			}
		}
	}
	for nt := range f.nullable {
		f.sets[N(nt)].Add(Epsilon)
	}
	tracer().Debugf("FIRST sets computed in %d rounds", rounds)
	return f
}

// mergeInto adds FIRST(X) \ {ε} to acc and reports if acc changed.
func (f *FirstSets) mergeInto(acc *treeset.Set, X Element) bool {
	src, ok := f.sets[X]
	if !ok {
		return false
	}
	changed := false
	for _, v := range src.Values() {
		if v.(string) == Epsilon || acc.Contains(v) {
			continue
		}
		acc.Add(v)
		changed = true
	}
	return changed
}

// First returns FIRST(X) as a sorted list. Undefined non-terminals have an
// empty FIRST set.
func (f *FirstSets) First(X Element) []string {
	if X.IsTerminal() {
		if X.IsEpsilon() {
			return []string{Epsilon}
		}
		return []string{X.Value}
	}
	set, ok := f.sets[X]
	if !ok {
		return nil
	}
	return toStrings(set.Values())
}

// Nullable is true if non-terminal A derives the empty string.
func (f *FirstSets) Nullable(A string) bool {
	return f.nullable[A]
}

// FirstOfSequence computes FIRST(β a), where β is a sequence of grammar symbols
// and a is a terminal. The result never contains ε.
func (f *FirstSets) FirstOfSequence(beta []Element, la string) []string {
	acc := treeset.NewWithStringComparator()
	for _, X := range beta {
		if X.IsTerminal() {
			acc.Add(X.Value)
			return toStrings(acc.Values())
		}
		f.mergeInto(acc, X)
		if !f.nullable[X.Value] {
			return toStrings(acc.Values())
		}
	}
	acc.Add(la)
	return toStrings(acc.Values())
}

// Dump is a debugging helper.
func (f *FirstSets) Dump() {
	for _, nt := range f.g.NonTerminals() {
		tracer().Debugf("FIRST(%s) = %v", nt, f.First(N(nt)))
	}
}

func toStrings(vals []interface{}) []string {
	s := make([]string, len(vals))
	for i, v := range vals {
		s[i] = v.(string)
	}
	return s
}
