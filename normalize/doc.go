/*
Package normalize implements the rule normaliser (§4.1): it flattens
nested constructor patterns into the flat, arity-respecting shape the
typer and generator require, inventing auxiliary nonterminals and rules
for every nested constructor pattern it lifts out.

Grounded on the teacher's terex/termr rewrite passes (terex/termr/rewrite.go)
for the general shape of a small tree-rewriting stage driven by a
stage-local, not global, piece of mutable state — here an auxiliary-name
registry rather than a rewrite-rule table.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package normalize

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key "ocamlburg.normalize".
func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}
