/*
Package tlrepl/main provides an interactive command line tool (TL.REPL)
for the tinylang language. Every input line is parsed as a tinylang
program. TL.REPL prints the parse tree and warns about problems with
declarations. It serves as a sandbox for experiments with the LL(1) tool
chain.

Lines starting with a colon are commands:

    :first    print the FIRST-sets of all non-terminals
    :follow   print the FOLLOW-sets of all non-terminals
    :table    print the prediction table
    :rules    print the grammar rules
    :quit     leave TL.REPL

Settings may be given in a TOML file (flag --config):

    trace   = "Info"
    tree    = true
    prompt  = "tl> "
    history = "/tmp/tlrepl.history"

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gopred.tinylang'
func tracer() tracing.Trace {
	return tracing.Select("gopred.tinylang")
}
