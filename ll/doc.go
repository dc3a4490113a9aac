/*
Package ll implements prerequisites for LL(1) parsing.
It holds context-free grammars, analyses them and generates
prediction tables for deterministic top-down parsers.

Grammars

A grammar is assembled rule by rule with a GrammarBuilder. Non-terminals are
referred to by name, terminals by name and token type. A rule may have an
empty body (an ε-production).

    b := ll.NewGrammarBuilder("List")
    b.LHS("L").T("(", 1).N("E").T(")", 2).End()   // L  ->  ( E )
    b.LHS("E").T("x", 3).N("R").End()             // E  ->  x R
    b.LHS("E").Epsilon()                          // E  ->
    b.LHS("R").T(",", 4).T("x", 3).N("R").End()   // R  ->  , x R
    b.LHS("R").Epsilon()                          // R  ->
    g, err := b.Grammar()

g.Dump() lists the rules, numbered in the order they were added:

   0: [L] ::= [( E )]
   1: [E] ::= [x R]
   2: [E] ::= []
   3: [R] ::= [, x R]
   4: [R] ::= []

Token types 0 and -1 may not be used for terminals. 0 stands for ε inside
FIRST-sets. -1 is the end of input, #eof, which every grammar has implicitly
and which never appears in a rule body.

The same grammar in BNF notation, as accepted by ReadBNF:

    %token '(' ')' x ','
    L ::= '(' E ')'
    E ::= x R | ε
    R ::= ',' x R | ε

FIRST and FOLLOW

Analysis computes the FIRST- and FOLLOW-sets of all non-terminals, each as
a fixpoint over the rules.

    ga := ll.Analysis(g)
    g.EachNonTerminal(func(N *ll.Symbol) interface{} {
        fmt.Printf("FIRST(%s) = %v  FOLLOW(%s) = %v\n", N.Name, ga.First(N), N.Name, ga.Follow(N))
        return nil
    })

prints sets of token types:

    FIRST(L) = {1}    FOLLOW(L) = {-1}
    FIRST(E) = {0 3}  FOLLOW(E) = {2}
    FIRST(R) = {0 4}  FOLLOW(R) = {2}

Table Construction

BuildTable derives the prediction table from the analysis. A cell (N, a)
holds at most one rule. If two rules compete for a cell the grammar is not
LL(1), and BuildTable returns a *ConflictError naming both of them.

    table, err := ll.BuildTable(ga)
    if errors.Is(err, ll.ErrNotLL1) { … }

The table is then handed to a parser of package ll/predictive.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gopred.ll'.
func tracer() tracing.Trace {
	return tracing.Select("gopred.ll")
}
