/*
Package gopred is a toolbox for LL(1) grammar analysis and predictive parsing.

GoPreD strives to be a smart and lightweight tool to create front ends
for DSLs and small languages. It focusses on deterministic top-down parsing
driven by pre-computed prediction tables. Package structure is
as follows:

■ ll: Package ll holds grammars, computes FIRST- and FOLLOW-sets and
builds LL(1) prediction tables, detecting and reporting conflicts.

■ ll/predictive: Package predictive implements a table driven, stack-based
predictive parser, optionally producing a parse tree.

■ ll/scanner: Package scanner defines the tokenizer interface the parser pulls
tokens from, together with default implementations.

■ ll/scanner/lexmach: Package lexmach adapts lexmachine DFA lexers to the
tokenizer interface.

■ ll/sparse: Package sparse stores the sparse integer matrix behind
prediction tables.

■ tinylang: Package tinylang is a front end for a small imperative language,
serving as an example and as a workbench. Sub-package tinylang/scope checks
declarations of tinylang programs, tinylang/tlrepl is an interactive
REPL for it.

■ cmd/gopred: Command gopred prints FIRST-/FOLLOW-sets and prediction tables
of grammars written in BNF, and parses token sequences with them.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gopred
