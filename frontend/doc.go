/*
Package frontend implements spec.md §6's input grammar: a
github.com/timtadh/lexmachine-based lexer (lex.go) and a hand-written
recursive-descent parser (parser.go) that together turn specification
source text into a burg.Spec.

Grounded on the teacher's own lexmachine adapter,
lr/scanner/lexmach/lexmachine.go: lexer construction (NewLexer, Add,
Compile), scanning (Scanner.Next returning (tok, err, eof)), and token
wrapping (Scanner.Token) follow that file's shape; the grammar and parser
are new, since the teacher's own parser (terex/terexlang) targets a
different surface language.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package frontend

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key "ocamlburg.frontend".
func tracer() tracing.Trace {
	return gtrace.SyntaxTracer
}
