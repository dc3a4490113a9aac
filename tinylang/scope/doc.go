/*
Package scope checks the declarations of tinylang programs.

The checker walks the parse tree of a program and builds a tree of scopes:
one global scope and one scope for every function, holding its parameters
and local variables. Names have to be declared before they are used, a
function is visible within its own body. The checker reports names which
are undeclared or declared twice within the same scope, calls of
non-functions, calls with a wrong number of arguments, indexing of
non-arrays and return statements outside of functions.

For a thorough discussion of scopes and symbol tables, refer to
"Language Implementation Patterns" by Terence Parr.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scope

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gopred.tinylang'.
func tracer() tracing.Trace {
	return tracing.Select("gopred.tinylang")
}
