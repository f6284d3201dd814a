package codegen

import (
	"fmt"
	"strconv"

	"github.com/ocaml-burg/ocamlburg/mangle"

	burg "github.com/ocaml-burg/ocamlburg"
)

// fieldGoType returns the Go type of nonterm's field for nonterminal n: the
// user-declared opaque type if spec.md §6's `%type` annotation named one,
// otherwise `any` — this implementation's realization of "a fresh type
// parameter of the record" (§4.5 point 1). See DESIGN.md's Open Question
// decision: a generated `nonterm` record is consumed by exactly one
// client, so there is no second instantiation site for Go generics to
// parameterize over; collapsing an unannotated field to `any` is the
// direct Go analogue of ML's implicit polymorphism at a single use site.
func fieldGoType(n string, spec *burg.Spec) string {
	if spec.NontermTypes != nil {
		if t, ok := spec.NontermTypes[n]; ok && t != "" {
			return t
		}
	}
	return "any"
}

// terminalGoType maps a declared terminal-type name to the Go type a
// monomorphic constructor-argument position of that terminal carries
// (§6: "Predeclared terminal types: int, string, char"). A terminal name
// beyond the three predeclared ones is opaque by spec and has no
// associated shape, so it is realized as `any`.
func terminalGoType(name string) string {
	switch name {
	case "int":
		return "int64"
	case "string":
		return "string"
	case "char":
		return "rune"
	default:
		return "any"
	}
}

// argGoType returns the Go type of constructor-function argument position
// k, from its argument kind: a polymorphic position carries the full
// `nonterm` record (the matched subtree's candidate set, per §4.5 point 4,
// "the cost recorded in that argument's corresponding field"); a
// monomorphic position carries the raw terminal value.
func argGoType(k burg.ArgKind) string {
	if k.Polymorphic {
		return "nonterm"
	}
	return terminalGoType(k.Terminal)
}

// literalGoLiteral renders a pattern literal as Go source producing a
// value of the type argGoType(Mono(kind)) would name for it.
func literalGoLiteral(l burg.Literal) string {
	switch l.Kind {
	case burg.IntLit:
		return strconv.FormatInt(l.Int, 10)
	case burg.StringLit:
		return strconv.Quote(l.Str)
	default: // CharLit
		return "'" + string(l.Char) + "'"
	}
}

// costGoExpr renders a rule's cost as a Go expression evaluating to
// burgrt.Cost. A literal cost is promoted via burgrt.FromInt; a dynamic
// cost is the user's own opaque code, assumed — per §4.5 point 5 — to be
// written in scope of the rule's top-level terminal-variable bindings and
// to evaluate to a burgrt.Cost.
func costGoExpr(c burg.Cost) string {
	if c.Kind == burg.LiteralCost {
		return fmt.Sprintf("burgrt.FromInt(%d)", c.Int)
	}
	return c.Code
}

// argVar names the k-th constructor-function parameter.
func argVar(k int) string { return fmt.Sprintf("arg%d", k) }

// bindingLine renders the Go statement that binds a single pattern
// variable to its resolved value: the raw argument for a terminal
// variable, or the action-result of the matched nonterminal field for a
// nonterminal variable (§4.5 point 4).
func bindingLine(varName string, typ burg.TypeTag, argExpr string) string {
	name := mangle.Mangle(varName)
	if typ.IsTerminal() {
		return fmt.Sprintf("%s := %s", name, argExpr)
	}
	return fmt.Sprintf("%s := %s.%s.Action()", name, argExpr, mangle.Mangle(typ.Name))
}
