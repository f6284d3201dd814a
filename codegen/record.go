package codegen

import (
	"fmt"
	"strings"

	"github.com/ocaml-burg/ocamlburg/mangle"

	burg "github.com/ocaml-burg/ocamlburg"
)

// writeRecordType emits the nonterm record type (§4.5 point 1): one field
// per nonterminal in groups.Nonterminals, in that (pre-sorted) order.
func writeRecordType(out *strings.Builder, spec *burg.Spec, groups *Groups) {
	out.WriteString("// nonterm holds, per nonterminal, the cheapest cover found so far.\n")
	out.WriteString("type nonterm struct {\n")
	for _, n := range groups.Nonterminals {
		fmt.Fprintf(out, "\t%s burgrt.Nt[%s]\n", mangle.Mangle(n), fieldGoType(n, spec))
	}
	out.WriteString("}\n\n")
}

// writeInfinityValue emits the infinity value (§4.5 point 2): every field
// initialised to the runtime's universal maximum-cost element.
func writeInfinityValue(out *strings.Builder, spec *burg.Spec, groups *Groups) {
	out.WriteString("var infinity = nonterm{\n")
	for _, n := range groups.Nonterminals {
		fmt.Fprintf(out, "\t%s: burgrt.InfiniteNt[%s](),\n", mangle.Mangle(n), fieldGoType(n, spec))
	}
	out.WriteString("}\n\n")
}
