/*
Package tinylang is a front end for a small imperative language. It is a
showcase for the LL(1) tool chain of this module: the scanner is built
with lexmachine, the grammar is read from BNF and parsing is done by the
table-driven predictive parser.

A program is a sequence of function definitions, followed by variable
declarations and statements, and it is terminated by a period:

    def int square(int n)
        return n * n
    fed;
    int x, y[10];
    x = square(7);
    if x > 40 and not x == 50 then print x else print 0 fi .

Comments start with "//" and run until the end of the line.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tinylang

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gopred.tinylang'.
func tracer() tracing.Trace {
	return tracing.Select("gopred.tinylang")
}
