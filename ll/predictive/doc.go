/*
Package predictive provides an LL(1)-parser. Clients have to use the tools
of package ll to prepare a prediction table. The predictive parser
utilizes this table to create a leftmost derivation for a given input,
provided through a scanner interface.

The parser never backtracks and looks exactly one token ahead: every step is
determined by the symbol on top of the parse stack and the lookahead token.
The first syntax error ends the parse; there is no error recovery.

Usage

Clients construct a grammar, usually by using a grammar builder:

	b := ll.NewGrammarBuilder("Balanced")
	b.LHS("S").T("(", '(').N("S").T(")", ')').End()  // S --> ( S )
	b.LHS("S").Epsilon()                              // S -->
	g, err := b.Grammar()

This grammar is subjected to grammar analysis and table generation.

	table, err := ll.BuildTable(ll.Analysis(g))
	if errors.Is(err, ll.ErrNotLL1) { ... }  // cannot use a predictive parser

Finally parse some input:

	p := predictive.NewParser(table, predictive.GenerateTree(true))
	scan := scanner.GoTokenizer("input", strings.NewReader("(())"))
	accepted, err := p.Parse(scan)
	root := p.ParseTree()

Syntax errors are of type *SyntaxError and carry the position of the offending
token. Test for the kind of error with errors.Is, using ErrUnexpectedToken,
ErrNoRule or ErrPrematureEOF.

A prediction table is read-only. Any number of parsers may share one table
and run concurrently, but a single parser must not be used by more than one
goroutine at a time.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package predictive

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gopred.ll'.
func tracer() tracing.Trace {
	return tracing.Select("gopred.ll")
}
