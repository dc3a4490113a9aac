package ll

import (
	"github.com/npillmayer/gopred"
)

// LLAnalysis is an object for grammar analysis (compute FIRST and FOLLOW sets).
// Create one with Analysis(g). After creation it is read-only.
type LLAnalysis struct {
	g      *Grammar
	first  []*TokenSet // FIRST-sets of non-terminals, indexed by serial number
	follow []*TokenSet // FOLLOW-sets of non-terminals, indexed by serial number
}

// Analysis creates an analyser for a grammar. The analyser immediately
// computes the FIRST and FOLLOW sets of all non-terminals.
func Analysis(g *Grammar) *LLAnalysis {
	if g == nil {
		return nil
	}
	ga := &LLAnalysis{g: g}
	ga.computeFirstSets()
	ga.computeFollowSets()
	return ga
}

// Grammar returns the grammar this analyser operates on.
func (ga *LLAnalysis) Grammar() *Grammar {
	return ga.g
}

// First returns FIRST(A) for a symbol. For terminals this is the set
// containing the terminal alone. The set contains gopred.Epsilon if A derives
// the empty word. The result is a copy.
func (ga *LLAnalysis) First(A *Symbol) *TokenSet {
	return ga.first1(A).Copy()
}

// Follow returns FOLLOW(A) for a non-terminal A. For terminals FOLLOW is
// not defined and an empty set is returned. The result is a copy.
func (ga *LLAnalysis) Follow(A *Symbol) *TokenSet {
	if A == nil || A.IsTerminal() {
		return NewTokenSet()
	}
	return ga.follow[A.Value].Copy()
}

// FirstOfSequence returns FIRST(β) for a sequence of symbols β, usually the
// tail of a right hand side. FIRST of the empty sequence is {ε}.
func (ga *LLAnalysis) FirstOfSequence(beta []*Symbol) *TokenSet {
	F := NewTokenSet()
	ga.addFirstOfSequence(F, beta)
	return F
}

// first1 returns the internal FIRST-set for A, which must not be modified.
func (ga *LLAnalysis) first1(A *Symbol) *TokenSet {
	if A == nil {
		return NewTokenSet()
	}
	if A.IsTerminal() {
		return NewTokenSet(A.TokenType())
	}
	return ga.first[A.Value]
}

// addFirstOfSequence adds FIRST(β) to F and returns true if F has changed.
// The walk over β stops at the first symbol which is not nullable; epsilon
// is added only if every symbol of β is nullable.
func (ga *LLAnalysis) addFirstOfSequence(F *TokenSet, beta []*Symbol) bool {
	changed := false
	for _, X := range beta {
		if X.IsTerminal() {
			return F.Add(X.TokenType()) || changed
		}
		if F.Union(ga.first[X.Value], true) {
			changed = true
		}
		if !ga.first[X.Value].HasEpsilon() {
			return changed
		}
	}
	return F.Add(gopred.Epsilon) || changed
}

// Refer to "Crafting A Compiler" by Charles N. Fisher & Richard J. LeBlanc, Jr.
// Section 5.5 and 5.6; we iterate over all rules until no set changes.
func (ga *LLAnalysis) computeFirstSets() {
	ga.first = make([]*TokenSet, ga.g.NonTerminalCount())
	for i := range ga.first {
		ga.first[i] = NewTokenSet()
	}
	passes := 0
	for changed := true; changed; passes++ {
		changed = false
		for _, r := range ga.g.rules {
			if ga.addFirstOfSequence(ga.first[r.LHS.Value], r.rhs) {
				tracer().Debugf("FIRST(%s) = %v after %v", r.LHS, ga.first[r.LHS.Value], r)
				changed = true
			}
		}
	}
	tracer().Infof("FIRST sets of grammar %q settled after %d passes", ga.g.Name, passes)
}

func (ga *LLAnalysis) computeFollowSets() {
	ga.follow = make([]*TokenSet, ga.g.NonTerminalCount())
	for i := range ga.follow {
		ga.follow[i] = NewTokenSet()
	}
	if S := ga.g.Start(); S != nil {
		ga.follow[S.Value].Add(gopred.EOF)
	}
	passes := 0
	for changed := true; changed; passes++ {
		changed = false
		for _, r := range ga.g.rules {
			for i, X := range r.rhs {
				if X.IsTerminal() {
					continue
				}
				beta := r.rhs[i+1:] // may be empty
				F := ga.FirstOfSequence(beta)
				if ga.follow[X.Value].Union(F, true) {
					changed = true
				}
				if ga.g.IsNullableBody(beta) && ga.follow[X.Value].Union(ga.follow[r.LHS.Value], false) {
					changed = true
				}
			}
		}
	}
	tracer().Infof("FOLLOW sets of grammar %q settled after %d passes", ga.g.Name, passes)
}

// FirstSets returns a snapshot of the FIRST-sets of all non-terminals, keyed
// by name and given as terminal names (epsilon as "ε"). It is intended for
// diagnostic output.
func (ga *LLAnalysis) FirstSets() map[string][]string {
	m := make(map[string][]string, len(ga.first))
	ga.g.EachNonTerminal(func(N *Symbol) interface{} {
		m[N.Name] = ga.first[N.Value].Names(ga.g)
		return nil
	})
	return m
}

// FollowSets returns a snapshot of the FOLLOW-sets of all non-terminals, keyed
// by name and given as terminal names. It is intended for diagnostic output.
func (ga *LLAnalysis) FollowSets() map[string][]string {
	m := make(map[string][]string, len(ga.follow))
	ga.g.EachNonTerminal(func(N *Symbol) interface{} {
		m[N.Name] = ga.follow[N.Value].Names(ga.g)
		return nil
	})
	return m
}

// Dump is a debugging helper, writing FIRST and FOLLOW sets to the trace.
func (ga *LLAnalysis) Dump() {
	ga.g.EachNonTerminal(func(N *Symbol) interface{} {
		tracer().Debugf("FIRST(%s) = %v, FOLLOW(%s) = %v", N, ga.first[N.Value].Names(ga.g),
			N, ga.follow[N.Value].Names(ga.g))
		return nil
	})
}
