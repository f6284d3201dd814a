package codegen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ocaml-burg/ocamlburg/mangle"

	burg "github.com/ocaml-burg/ocamlburg"
	"github.com/ocaml-burg/ocamlburg/typer"
)

// writeConstructorFuncs emits one constructor routine per constructor
// (§4.5 point 4), as a single `var ( ... )` block alongside — but
// separate from — the update-function block, mirroring the same
// mutually-recursive function-literal shape (§9 Design Notes).
func writeConstructorFuncs(out *strings.Builder, spec *burg.Spec, groups *Groups, sigs typer.Signatures) error {
	ctors := make([]string, 0, len(groups.Cons))
	for c := range groups.Cons {
		ctors = append(ctors, c)
	}
	sort.Strings(ctors)

	out.WriteString("var (\n")
	for _, c := range ctors {
		if err := writeOneConstructorFunc(out, spec, groups, sigs, c); err != nil {
			return err
		}
	}
	out.WriteString(")\n\n")
	return nil
}

func writeOneConstructorFunc(out *strings.Builder, spec *burg.Spec, groups *Groups, sigs typer.Signatures, ctor string) error {
	sig, ok := sigs.Get(ctor)
	if !ok {
		return burg.NewError(burg.InconsistentConstructor, burg.Pos{},
			"constructor %s has rules but no inferred signature", ctor)
	}
	rules := groups.Cons[ctor]

	byLHS := make(map[string][]burg.Rule)
	for _, r := range rules {
		byLHS[r.LHS] = append(byLHS[r.LHS], r)
	}
	// producible nonterminals, in the same deterministic order as the
	// record's field order (§4.5 "Determinism").
	var producible []string
	for _, n := range groups.Nonterminals {
		if byLHS[n] != nil {
			producible = append(producible, n)
		}
	}

	params := make([]string, len(sig))
	for i, k := range sig {
		params[i] = fmt.Sprintf("%s %s", argVar(i), argGoType(k))
	}
	fmt.Fprintf(out, "\tcon%s = func(%s) nonterm {\n", mangle.Mangle(ctor), strings.Join(params, ", "))
	out.WriteString("\t\tx := infinity\n")

	for _, n := range producible {
		field := mangle.Mangle(n)
		typ := fieldGoType(n, spec)
		fmt.Fprintf(out, "\t\t// %s ::= %s(...)\n", n, ctor)
		fmt.Fprintf(out, "\t\tcands_%s := []burgrt.Nt[%s]{}\n", field, typ)
		for _, r := range byLHS[n] {
			fmt.Fprintf(out, "\t\tcands_%s = append(cands_%s, func() burgrt.Nt[%s] {\n", field, field, typ)
			writeCandidate(out, r, typ, "\t\t\t")
			out.WriteString("\t\t}())\n")
		}
		fmt.Fprintf(out, "\t\tx = update_%s(burgrt.Choice(cands_%s...), x)\n", field, field)
	}

	out.WriteString("\t\treturn x\n")
	out.WriteString("\t}\n")
	return nil
}

// writeCandidate emits the body of a single rule's candidate-building
// closure: the cost expression (rule cost plus, per argument position,
// either a matched-literal cost or a matched-field cost, §4.5 point 4),
// then the Nt[T] value with its action thunk.
func writeCandidate(out *strings.Builder, r burg.Rule, targetType, indent string) {
	// the rule's top-level terminal-variable bindings are emitted first,
	// as locals of the enclosing candidate closure, so a dynamic cost
	// expression — spliced into the very next line — can reference them
	// (§4.5 point 5: the cost fragment is evaluated "in scope of the
	// terminal-variable bindings at the top level of the rule's pattern").
	for i, a := range r.Rule.Args {
		if a.IsVariable() && a.VarType.IsTerminal() {
			fmt.Fprintf(out, "%s%s\n", indent, bindingLine(a.VarName, a.VarType, argVar(i)))
		}
	}

	costTerms := []string{costGoExpr(r.Cost)}
	for i, a := range r.Rule.Args {
		switch {
		case a.IsLiteral():
			costTerms = append(costTerms, fmt.Sprintf("burgrt.Matches(%s, %s).Cost", literalGoLiteral(a.Lit), argVar(i)))
		case a.IsVariable() && a.VarType.IsNonterminal():
			costTerms = append(costTerms, fmt.Sprintf("%s.%s.Cost", argVar(i), mangle.Mangle(a.VarType.Name)))
		}
		// a terminal variable contributes no cost term.
	}
	expr := costTerms[0]
	for _, t := range costTerms[1:] {
		expr = fmt.Sprintf("%s.Add(%s)", expr, t)
	}
	fmt.Fprintf(out, "%scost := %s\n", indent, expr)
	fmt.Fprintf(out, "%sreturn burgrt.Nt[%s]{\n", indent, targetType)
	fmt.Fprintf(out, "%s\tCost: cost,\n", indent)
	fmt.Fprintf(out, "%s\tAction: func() %s {\n", indent, targetType)
	for i, a := range r.Rule.Args {
		if a.IsVariable() && a.VarType.IsNonterminal() {
			fmt.Fprintf(out, "%s\t\t%s\n", indent, bindingLine(a.VarName, a.VarType, argVar(i)))
		}
	}
	emitBindingsAndReturn(out, r.Action, targetType, indent+"\t\t")
	fmt.Fprintf(out, "%s\t},\n", indent)
	fmt.Fprintf(out, "%s}\n", indent)
}
