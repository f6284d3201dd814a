/*
Package codegen implements the generator (§4.4–4.5): grouping normalized
rules by constructor/chain shape, and emitting a self-contained Go source
file implementing the dynamic-programming tree-cover engine those rules
describe.

Grounded throughout on lr/tables.go's staged construction style
(TableGenerator.CreateTables's CFSM → GOTO → ACTION pipeline is the model
for Generate's head → record → infinity → update-funcs → constructor-funcs
→ tail staging) and its use of github.com/emirpasic/gods containers for
deterministic iteration order over incrementally-built state.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package codegen

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key "ocamlburg.codegen".
func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}
