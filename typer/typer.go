package typer

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"

	burg "github.com/ocaml-burg/ocamlburg"
)

// Signatures is the result of Infer: the unique argument-kind signature
// derived for every constructor name seen, in first-seen order (§4.2:
// "deterministic... sensitive only to the multiset of constructor
// occurrences, not their order" — insertion order is one valid
// deterministic order, and the one most legible to someone reading the
// rules top to bottom).
type Signatures struct {
	m *linkedhashmap.Map // constructor name -> burg.ConstructorSignature
}

// Get returns the inferred signature for ctor, if any constructor of that
// name was seen.
func (s Signatures) Get(ctor string) (burg.ConstructorSignature, bool) {
	v, found := s.m.Get(ctor)
	if !found {
		return nil, false
	}
	return v.(burg.ConstructorSignature), true
}

// Names returns every constructor name seen, in first-seen order.
func (s Signatures) Names() []string {
	keys := s.m.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}

// Len returns the number of distinct constructor names seen.
func (s Signatures) Len() int { return s.m.Size() }

// Infer derives a unique argument-kind signature for every constructor
// name occurring anywhere in rules (§4.2). It is defined on arbitrary
// patterns, including ones with nested constructors (a nested constructor
// argument is itself polymorphic), so it may run before or after
// normalize.Normalize.
func Infer(rules []burg.Rule) (Signatures, error) {
	sigs := linkedhashmap.New()
	for _, r := range rules {
		var mismatch error
		visit := func(acc int, ctor string, args []*burg.Pattern) int {
			if mismatch != nil {
				return acc
			}
			sig := make(burg.ConstructorSignature, len(args))
			for i, a := range args {
				sig[i] = argKind(a)
			}
			if existing, found := sigs.Get(ctor); found {
				if !existing.(burg.ConstructorSignature).Equal(sig) {
					mismatch = burg.NewError(burg.InconsistentConstructor, r.Pos,
						"constructor %s used with signature %s, previously seen as %s",
						ctor, sig, existing.(burg.ConstructorSignature))
				}
				return acc
			}
			sigs.Put(ctor, sig)
			return acc
		}
		burg.Fold(r.Rule, 0, visit)
		if mismatch != nil {
			return Signatures{}, mismatch
		}
	}
	tracer().Debugf("typer: inferred %d distinct constructor signature(s)", sigs.Size())
	return Signatures{m: sigs}, nil
}

// argKind computes the argument kind of a single pattern occupying a
// constructor argument position (§4.2).
func argKind(p *burg.Pattern) burg.ArgKind {
	switch p.Kind {
	case burg.LitPat:
		switch p.Lit.Kind {
		case burg.IntLit:
			return burg.Mono("int")
		case burg.StringLit:
			return burg.Mono("string")
		default:
			return burg.Mono("char")
		}
	case burg.VarPat:
		if p.VarType.IsTerminal() {
			return burg.Mono(p.VarType.Name)
		}
		return burg.Poly()
	default: // ConsPat: a nested constructor is always polymorphic
		return burg.Poly()
	}
}
