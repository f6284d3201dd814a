/*
Package runtime (import path suffix "runtime", referred to as burgrt by
emitted code) supplies the small support library that code generated by
package codegen imports: a cost algebra with infinity, the Nt[T] candidate
type, and the two combinators (Choice, Matches) the generated update_* and
con* routines are built from (§6).

This package plays the same structural role the teacher's own runtime
package plays for gorgo-generated/interpreted code — a minimal library
bundled with the module for code the rest of the module produces — but its
contents are specific to BURG's cost/cover algebra rather than to scopes
and memory frames; see DESIGN.md for the rationale.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package runtime

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key "ocamlburg.runtime".
func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}
