package ll

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds of grammar construction. Test for them with errors.Is.
var (
	// ErrMalformedGrammar is the kind of errors for grammars which cannot be
	// constructed: undefined symbols, a missing start rule, syntax errors in BNF.
	ErrMalformedGrammar = errors.New("malformed grammar")
	// ErrNotLL1 is the kind of errors for grammars with conflicting rules in
	// a prediction table cell.
	ErrNotLL1 = errors.New("grammar is not LL(1)")
)

// GrammarError is returned for malformed grammars. It collects every problem
// found while constructing a grammar.
type GrammarError struct {
	Grammar  string   // name of the grammar
	Problems []string // human readable descriptions
}

func (e *GrammarError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrMalformedGrammar, e.Grammar, strings.Join(e.Problems, "; "))
}

// Unwrap makes errors.Is(err, ErrMalformedGrammar) hold.
func (e *GrammarError) Unwrap() error {
	return ErrMalformedGrammar
}

// ConflictError is returned by the table builder if two distinct rules
// claim the same table cell (NonTerminal, Lookahead).
type ConflictError struct {
	NonTerminal *Symbol
	Lookahead   *Symbol
	RuleA       *Rule // rule already present in the cell
	RuleB       *Rule // rule competing for the cell
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: conflict at [%s, %s] between rule %d %v and rule %d %v",
		ErrNotLL1, e.NonTerminal, e.Lookahead, e.RuleA.Serial, e.RuleA, e.RuleB.Serial, e.RuleB)
}

// Unwrap makes errors.Is(err, ErrNotLL1) hold.
func (e *ConflictError) Unwrap() error {
	return ErrNotLL1
}
