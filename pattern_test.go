package burg

import "testing"

func TestPatternEqualIgnoresVariableNames(t *testing.T) {
	p1 := Cons("ADD", []*Pattern{Var("x", Nonterminal("e")), Var("y", Nonterminal("e"))})
	p2 := Cons("ADD", []*Pattern{Var("a", Nonterminal("e")), Var("b", Nonterminal("e"))})
	if !p1.Equal(p2) {
		t.Errorf("expected %v to equal %v modulo variable names", p1, p2)
	}
}

func TestPatternEqualDistinguishesTypes(t *testing.T) {
	p1 := Var("x", Nonterminal("e"))
	p2 := Var("x", Terminal("e"))
	if p1.Equal(p2) {
		t.Errorf("expected %v and %v to differ (terminal vs nonterminal)", p1, p2)
	}
}

func TestPatternCompareIsTotalOrder(t *testing.T) {
	patterns := []*Pattern{
		Lit(IntLiteral(0)),
		Lit(IntLiteral(1)),
		Var("x", Terminal("int")),
		Cons("CONST", []*Pattern{Lit(IntLiteral(0))}),
		Cons("ADD", []*Pattern{Var("x", Nonterminal("e")), Var("y", Nonterminal("e"))}),
	}
	for i := range patterns {
		for j := range patterns {
			c1 := patterns[i].Compare(patterns[j])
			c2 := patterns[j].Compare(patterns[i])
			if (c1 == 0) != (c2 == 0) {
				t.Fatalf("compare not antisymmetric at (%d,%d): %d vs %d", i, j, c1, c2)
			}
			if c1 > 0 && c2 >= 0 {
				t.Fatalf("compare not antisymmetric at (%d,%d): %d vs %d", i, j, c1, c2)
			}
		}
	}
}

func TestFreeVarsLeftToRightWithDuplicates(t *testing.T) {
	p := Cons("ADD", []*Pattern{
		Var("x", Nonterminal("e")),
		Cons("ADD", []*Pattern{Var("x", Nonterminal("e")), Var("z", Nonterminal("e"))}),
	})
	got := FreeVars(p)
	want := []string{"x", "x", "z"}
	if len(got) != len(want) {
		t.Fatalf("FreeVars = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("FreeVars = %v, want %v", got, want)
		}
	}
}

func TestCheckNoDuplicateVars(t *testing.T) {
	ok := Cons("ADD", []*Pattern{Var("x", Nonterminal("e")), Var("y", Nonterminal("e"))})
	if err := CheckNoDuplicateVars(ok); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	bad := Cons("ADD", []*Pattern{Var("x", Nonterminal("e")), Var("x", Nonterminal("e"))})
	err := CheckNoDuplicateVars(bad)
	if err == nil {
		t.Fatal("expected DuplicateVariable error")
	}
	var berr *Error
	if !asError(err, &berr) || berr.Kind != DuplicateVariable {
		t.Errorf("expected DuplicateVariable, got %v", err)
	}
}

func TestFoldVisitsConstructorsDepthFirst(t *testing.T) {
	p := Cons("ADD", []*Pattern{
		Cons("CONST", []*Pattern{Lit(IntLiteral(0))}),
		Var("z", Nonterminal("e")),
	})
	var order []string
	Fold(p, struct{}{}, func(acc struct{}, ctor string, args []*Pattern) struct{} {
		order = append(order, ctor)
		return acc
	})
	if len(order) != 2 || order[0] != "ADD" || order[1] != "CONST" {
		t.Errorf("Fold order = %v, want [ADD CONST]", order)
	}
}

func TestCostLessOrdering(t *testing.T) {
	lit1 := LitCost(1)
	lit2 := LitCost(2)
	dyn := DynCost("f()")
	dyn2 := DynCost("g()")
	if !lit1.Less(lit2) {
		t.Error("1 should be less than 2")
	}
	if !dyn.Less(lit1) {
		t.Error("dynamic cost should sort before any literal cost")
	}
	if lit1.Less(dyn) {
		t.Error("literal cost should not sort before dynamic cost")
	}
	if !dyn.Less(dyn2) {
		t.Error("dynamic costs should compare by source text (\"f()\" < \"g()\")")
	}
}

func TestConstructorSignatureEqual(t *testing.T) {
	s1 := ConstructorSignature{Poly(), Poly()}
	s2 := ConstructorSignature{Poly(), Poly()}
	s3 := ConstructorSignature{Mono("int")}
	if !s1.Equal(s2) {
		t.Error("expected equal signatures to compare equal")
	}
	if s1.Equal(s3) {
		t.Error("expected different-arity signatures to compare unequal")
	}
}

// asError is a small helper mirroring errors.As without importing errors
// in every test file that only needs *Error.
func asError(err error, target **Error) bool {
	if e, ok := err.(*Error); ok {
		*target = e
		return true
	}
	return false
}
