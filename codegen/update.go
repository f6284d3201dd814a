package codegen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ocaml-burg/ocamlburg/mangle"

	burg "github.com/ocaml-burg/ocamlburg"
)

// writeUpdateFuncs emits one update routine per nonterminal (§4.5 point 3),
// as a single `var ( ... )` block of mutually-referential function
// literals (§9 Design Notes) so the whole family is visibly one
// mutually-recursive unit, the way the teacher's generated/interpreted
// code groups a family of co-defined routines together rather than
// scattering them as independent top-level funcs.
func writeUpdateFuncs(out *strings.Builder, spec *burg.Spec, groups *Groups) {
	out.WriteString("var (\n")
	for _, n := range groups.Nonterminals {
		writeOneUpdateFunc(out, spec, groups, n)
	}
	out.WriteString(")\n\n")
}

func writeOneUpdateFunc(out *strings.Builder, spec *burg.Spec, groups *Groups, n string) {
	field := mangle.Mangle(n)
	typ := fieldGoType(n, spec)

	fmt.Fprintf(out, "\tupdate_%s = func(nt burgrt.Nt[%s], x nonterm) nonterm {\n", field, typ)
	fmt.Fprintf(out, "\t\tif !nt.Cost.Less(x.%s.Cost) {\n", field)
	out.WriteString("\t\t\treturn x\n")
	out.WriteString("\t\t}\n")
	fmt.Fprintf(out, "\t\tx.%s = nt\n", field)

	chains := append([]burg.Rule{}, groups.Chains[n]...)
	sort.SliceStable(chains, func(i, j int) bool { return chains[i].Cost.Less(chains[j].Cost) })

	for _, r := range chains {
		m := mangle.Mangle(r.LHS)
		mType := fieldGoType(r.LHS, spec)
		chainVar := mangle.Mangle(r.Rule.VarName)
		fmt.Fprintf(out, "\t\tx = update_%s(burgrt.Nt[%s]{\n", m, mType)
		fmt.Fprintf(out, "\t\t\tCost: nt.Cost.Add(%s),\n", costGoExpr(r.Cost))
		fmt.Fprintf(out, "\t\t\tAction: func() %s {\n", mType)
		fmt.Fprintf(out, "\t\t\t\t%s := nt.Action()\n", chainVar)
		emitBindingsAndReturn(out, r.Action, mType, "\t\t\t\t")
		out.WriteString("\t\t\t},\n")
		out.WriteString("\t\t}, x)\n")
	}

	out.WriteString("\t\treturn x\n")
	out.WriteString("\t}\n")
}

// emitBindingsAndReturn emits, at the given indent, the alias lines
// recovering a rule's Bindings (from normalize.Normalize), then the
// rule's return: its own action code verbatim, or — for a
// normalizer-synthesized auxiliary rule — the forwarded free variable(s)
// packaged as a single value (§4.1).
func emitBindingsAndReturn(out *strings.Builder, action burg.Action, targetType, indent string) {
	for _, b := range action.Bindings {
		name := mangle.Mangle(b.Name)
		src := mangle.Mangle(b.Source)
		if b.Field == "" {
			fmt.Fprintf(out, "%s%s := %s\n", indent, name, src)
		} else {
			fmt.Fprintf(out, "%s%s := %s.%s\n", indent, name, src, b.Field)
		}
	}
	if action.IsSynthesized() {
		switch len(action.Forward) {
		case 0:
			fmt.Fprintf(out, "%sreturn struct{}{}\n", indent)
		case 1:
			fmt.Fprintf(out, "%sreturn %s\n", indent, mangle.Mangle(action.Forward[0]))
		default:
			fields := make([]string, len(action.Forward))
			values := make([]string, len(action.Forward))
			for i, fv := range action.Forward {
				fields[i] = fmt.Sprintf("F%d any", i)
				values[i] = fmt.Sprintf("F%d: %s", i, mangle.Mangle(fv))
			}
			fmt.Fprintf(out, "%sreturn struct{ %s }{%s}\n", indent, strings.Join(fields, "; "), strings.Join(values, ", "))
		}
		return
	}
	fmt.Fprintf(out, "%sreturn %s\n", indent, action.Code)
}
