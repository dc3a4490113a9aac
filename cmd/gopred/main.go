/*
Gopred analyses LL(1) grammars given in BNF and runs the predictive parser
on sequences of terminals.

Usage:

	gopred first  <grammar file>
	gopred follow <grammar file>
	gopred table  [--html] <grammar file>
	gopred parse  <grammar file> <terminal>...

The grammar file notation is described in package ll. Every terminal, quoted
or not, has to be declared with a "%token" line.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
