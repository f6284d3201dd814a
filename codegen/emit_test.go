package codegen

import (
	"bytes"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	burg "github.com/ocaml-burg/ocamlburg"
	"github.com/ocaml-burg/ocamlburg/typer"
)

// e : CONST(0) [0] {:0:}
// e : CONST(x:int) [1] {:x:}
//
// the generated conCONST must supply both candidates to Choice; only the
// runtime decides which has finite cost.
func scenarioESpec() (*burg.Spec, error) {
	rules := []burg.Rule{
		{
			LHS:    "e",
			Rule:   burg.Cons("CONST", []*burg.Pattern{burg.Lit(burg.IntLiteral(0))}),
			Cost:   burg.LitCost(0),
			Action: burg.Action{Code: "int64(0)"},
		},
		{
			LHS:  "e",
			Rule: burg.Cons("CONST", []*burg.Pattern{burg.Var("x", burg.Terminal("int"))}),
			Cost: burg.LitCost(1),
			Action: burg.Action{
				Code: "x",
			},
		},
	}
	return &burg.Spec{Terminals: map[string]bool{"int": true}, Rules: rules}, nil
}

func generate(t *testing.T, spec *burg.Spec) string {
	t.Helper()
	groups, err := Group(spec.Rules)
	if err != nil {
		t.Fatalf("Group: %v", err)
	}
	sigs, err := typer.Infer(spec.Rules)
	if err != nil {
		t.Fatalf("Infer: %v", err)
	}
	var buf bytes.Buffer
	if err := Generate(&buf, spec, groups, sigs); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return buf.String()
}

func TestGenerateScenarioEProducesTwoChoiceCandidates(t *testing.T) {
	spec, err := scenarioESpec()
	if err != nil {
		t.Fatal(err)
	}
	out := generate(t, spec)

	assertParses(t, out)

	if !strings.Contains(out, "conCONST") {
		t.Fatalf("expected a conCONST function, got:\n%s", out)
	}
	if got := strings.Count(out, "cands_e = append(cands_e"); got != 2 {
		t.Errorf("expected both CONST rules offered as candidates for e, found %d, in:\n%s", got, out)
	}
	if got := strings.Count(out, "burgrt.Matches(0, arg0)"); got != 1 {
		t.Errorf("expected exactly one literal match against 0, found %d, in:\n%s", got, out)
	}
	if got := strings.Count(out, "burgrt.Choice("); got < 1 {
		t.Errorf("expected at least one Choice(...) call, in:\n%s", out)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	spec, err := scenarioESpec()
	if err != nil {
		t.Fatal(err)
	}
	out1 := generate(t, spec)
	out2 := generate(t, spec)
	if out1 != out2 {
		t.Fatalf("Generate is not byte-deterministic across runs:\n--- first ---\n%s\n--- second ---\n%s", out1, out2)
	}
}

func TestGenerateEmptySpecEmitsHeadTailOnly(t *testing.T) {
	spec := &burg.Spec{Head: "// head marker", Tail: "// tail marker"}
	groups, err := Group(nil)
	if err != nil {
		t.Fatalf("Group(nil): %v", err)
	}
	sigs, err := typer.Infer(nil)
	if err != nil {
		t.Fatalf("Infer(nil): %v", err)
	}
	var buf bytes.Buffer
	if err := Generate(&buf, spec, groups, sigs); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "head marker") || !strings.Contains(out, "tail marker") {
		t.Errorf("expected head/tail fragments verbatim, got:\n%s", out)
	}
	if strings.Contains(out, "nonterm struct") {
		t.Errorf("empty rule list must not emit a record type, got:\n%s", out)
	}
}

func TestGenerateChainFixpointOrdersAscendingByCost(t *testing.T) {
	rules := []burg.Rule{
		constRule("e", 0),
		chainRule("stmt", "e", burg.LitCost(5)),
		chainRule("stmt2", "e", burg.DynCost("dynCost()")),
	}
	spec := &burg.Spec{Rules: rules}
	out := generate(t, spec)
	assertParses(t, out)

	dynIdx := strings.Index(out, "update_stmt2(")
	litIdx := strings.Index(out, "update_stmt(")
	if dynIdx == -1 || litIdx == -1 {
		t.Fatalf("expected both chain propagations present, got:\n%s", out)
	}
	if dynIdx >= litIdx {
		t.Errorf("dynamic-cost chain propagation (stmt2) must be emitted before the literal-cost one (stmt): dynIdx=%d litIdx=%d", dynIdx, litIdx)
	}
}

func assertParses(t *testing.T, src string) {
	t.Helper()
	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, "generated.go", src, parser.AllErrors); err != nil {
		t.Fatalf("generated output is not syntactically valid Go: %v\n--- source ---\n%s", err, src)
	}
}
