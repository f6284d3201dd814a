/*
Package typer implements the constructor typer (§4.2): it derives, for
every constructor name occurring anywhere in a rule set, a unique argument
kind signature, and fails if the same constructor is ever applied with two
structurally different signatures.

Grounded on lr/tables.go's use of ordered gods containers
(github.com/emirpasic/gods) to keep deterministic, human-legible iteration
order over state built incrementally from a worklist.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package typer

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key "ocamlburg.typer".
func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}
