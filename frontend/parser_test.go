package frontend

import (
	"testing"

	burg "github.com/ocaml-burg/ocamlburg"
)

func mustParse(t *testing.T, src string) *burg.Spec {
	t.Helper()
	spec, err := Parse("test.burg", []byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return spec
}

func TestParseDeclarationsInAnyOrder(t *testing.T) {
	src := `
%type e {: int :}
%head {: package p :}
%term cst
%tail {: // done :}
%%
e : cst(x) [0] {: x :}
`
	spec := mustParse(t, src)
	if !spec.Terminals["cst"] {
		t.Errorf("expected cst declared a terminal")
	}
	if spec.Head != " package p " {
		t.Errorf("unexpected head: %q", spec.Head)
	}
	if spec.Tail != " // done " {
		t.Errorf("unexpected tail: %q", spec.Tail)
	}
	if spec.NontermTypes["e"] != " int " {
		t.Errorf("unexpected %%type for e: %q", spec.NontermTypes["e"])
	}
	if len(spec.Rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(spec.Rules))
	}
}

func TestParseConstructorPatternWithBareIdArgs(t *testing.T) {
	src := `
%%
e : ADD(e1, e2) [1] {: e1 + e2 :}
`
	spec := mustParse(t, src)
	r := spec.Rules[0]
	if r.LHS != "e" {
		t.Fatalf("unexpected LHS: %s", r.LHS)
	}
	if !r.Rule.IsConstructor() || r.Rule.Ctor != "ADD" {
		t.Fatalf("expected constructor ADD, got %v", r.Rule)
	}
	if len(r.Rule.Args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(r.Rule.Args))
	}
	for i, name := range []string{"e1", "e2"} {
		arg := r.Rule.Args[i]
		if !arg.IsVariable() || arg.VarName != name {
			t.Errorf("arg %d: expected bare-id sugar variable %q, got %v", i, name, arg)
		}
		if !arg.VarType.IsNonterminal() || arg.VarType.String() != name {
			t.Errorf("arg %d: expected bare-id sugar to desugar to %s:%s, got type %v", i, name, name, arg.VarType)
		}
	}
	if r.Cost.Kind != burg.LiteralCost || r.Cost.Int != 1 {
		t.Errorf("unexpected cost: %v", r.Cost)
	}
}

func TestParseNullaryConstructorAndLiteralArg(t *testing.T) {
	src := `
%term int
%%
e : CONST(0) [0] {: 0 :}
s : NOP() [0] {: nil :}
`
	spec := mustParse(t, src)
	if len(spec.Rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(spec.Rules))
	}
	constRule := spec.Rules[0]
	if len(constRule.Rule.Args) != 1 || !constRule.Rule.Args[0].IsLiteral() {
		t.Fatalf("expected a single literal argument, got %v", constRule.Rule)
	}
	nopRule := spec.Rules[1]
	if len(nopRule.Rule.Args) != 0 {
		t.Fatalf("expected a nullary constructor, got %d args", len(nopRule.Rule.Args))
	}
}

func TestParseExplicitTypeAnnotationOverridesSugar(t *testing.T) {
	src := `
%term int
%%
e : CONST(x:int) [1] {: x :}
`
	spec := mustParse(t, src)
	arg := spec.Rules[0].Rule.Args[0]
	if !arg.VarType.IsTerminal() || arg.VarType.String() != "int" {
		t.Fatalf("expected explicit terminal annotation int, got %v", arg.VarType)
	}
	if arg.VarName != "x" {
		t.Fatalf("expected variable name x, got %s", arg.VarName)
	}
}

func TestParseChainRule(t *testing.T) {
	src := `
%%
stmt : e [2] {: e :}
`
	spec := mustParse(t, src)
	r := spec.Rules[0]
	if !r.IsChainRule() {
		t.Fatalf("expected a chain rule, got %v", r)
	}
}

func TestParseDynamicCost(t *testing.T) {
	src := `
%%
e : ADD(a, b) [{: computeCost(a, b) :}] {: a + b :}
`
	spec := mustParse(t, src)
	r := spec.Rules[0]
	if r.Cost.Kind != burg.DynamicCost {
		t.Fatalf("expected a dynamic cost, got %v", r.Cost)
	}
	if r.Cost.Code != " computeCost(a, b) " {
		t.Errorf("unexpected dynamic cost code: %q", r.Cost.Code)
	}
}

func TestParseStringAndCharLiterals(t *testing.T) {
	src := `
%%
e : STR("hi") [0] {: "hi" :}
e : CHR('a') [0] {: 'a' :}
`
	spec := mustParse(t, src)
	str := spec.Rules[0].Rule.Args[0]
	if !str.IsLiteral() || str.Lit.Str != "hi" {
		t.Fatalf("expected string literal hi, got %v", str)
	}
	chr := spec.Rules[1].Rule.Args[0]
	if !chr.IsLiteral() || chr.Lit.Char != 'a' {
		t.Fatalf("expected char literal 'a', got %v", chr)
	}
}

func TestParseRejectsMissingDoublePercent(t *testing.T) {
	_, err := Parse("test.burg", []byte(`%term cst`))
	if err == nil {
		t.Fatalf("expected an error for a spec missing '%%%%'")
	}
}

func TestParseRejectsEmptySpecification(t *testing.T) {
	_, err := Parse("test.burg", []byte(`%%`))
	if err == nil {
		t.Fatalf("expected an error for an entirely empty specification")
	}
}

func TestParseCommentsAreSkipped(t *testing.T) {
	src := `
-- this is a comment
%term cst -- trailing comment
%%
-- another comment
e : cst(x) [0] {: x :} -- rule comment
`
	spec := mustParse(t, src)
	if len(spec.Rules) != 1 {
		t.Fatalf("expected comments to be skipped, got %d rules", len(spec.Rules))
	}
}
