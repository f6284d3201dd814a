package normalize

import (
	"fmt"

	burg "github.com/ocaml-burg/ocamlburg"
)

// registry assigns a stable auxiliary nonterminal name to every distinct
// (constructor, arity) pair lifted out of a nested pattern (§4.1: "Across
// the whole specification, a given constructor-and-arity pair maps to the
// same auxiliary nonterminal"). It is a stage-local mutable register, not
// global state (§9 Design Notes) — one registry is created per Normalize
// call and discarded afterwards.
type registry struct {
	names map[ctorArity]string
	seen  map[string]ctorArity // reverse map, to catch a naming collision
	fresh int
}

type ctorArity struct {
	ctor  string
	arity int
}

func newRegistry() *registry {
	return &registry{
		names: make(map[ctorArity]string),
		seen:  make(map[string]ctorArity),
	}
}

// auxName returns the auxiliary nonterminal name for (ctor, arity),
// minting one on first use. The scheme is "_" + ctor + arity (§4.1's
// illustrative "_ADD2", "_CONST1"); a collision between two distinct
// (ctor, arity) pairs producing the same textual name is reported as
// Error(InconsistentConstructor), since it would silently merge two
// unrelated auxiliary nonterminals.
func (r *registry) auxName(ctor string, arity int) (string, error) {
	key := ctorArity{ctor, arity}
	if name, ok := r.names[key]; ok {
		return name, nil
	}
	name := fmt.Sprintf("_%s%d", ctor, arity)
	if other, ok := r.seen[name]; ok && other != key {
		return "", burg.NewError(burg.InconsistentConstructor, burg.Pos{},
			"auxiliary nonterminal name %q would be shared by constructors %s/%d and %s/%d",
			name, other.ctor, other.arity, ctor, arity)
	}
	r.names[key] = name
	r.seen[name] = key
	return name, nil
}

// freshVar mints a variable name guaranteed not to collide with any
// variable minted so far in this Normalize call (invariant 4 only
// requires per-pattern uniqueness; minting from one global counter is the
// simplest way to satisfy that and is still correct).
func (r *registry) freshVar() string {
	r.fresh++
	return fmt.Sprintf("_v%d", r.fresh)
}

// Normalize flattens every rule's pattern so that no constructor argument
// is itself a constructor pattern (§4.1). It returns the original rules
// (each with its top pattern flattened and its action augmented with any
// bindings needed to recover variables that moved into an auxiliary rule)
// followed by the auxiliary rules invented along the way.
func Normalize(rules []burg.Rule) ([]burg.Rule, error) {
	if len(rules) == 0 {
		// an empty rule list is not an error (§7: "Empty-specification …
		// emit heads only"); codegen.Generate owns that head-only path,
		// so Normalize just passes the empty list through.
		return nil, nil
	}
	reg := newRegistry()
	var out []burg.Rule
	var aux []burg.Rule
	seenAux := make(map[string]bool) // dedup identical synthesized aux rules

	for _, r := range rules {
		if err := checkTopPattern(r); err != nil {
			return nil, err
		}
		if err := burg.CheckNoDuplicateVars(r.Rule); err != nil {
			return nil, err
		}
		lifted, bindings, auxRules, err := liftPattern(reg, r.Rule)
		if err != nil {
			return nil, err
		}
		newRule := burg.Rule{
			LHS:  r.LHS,
			Rule: lifted,
			Cost: r.Cost,
			Action: burg.Action{
				Bindings: append(append([]burg.Binding{}, bindings...), r.Action.Bindings...),
				Code:     r.Action.Code,
			},
			Pos: r.Pos,
		}
		out = append(out, newRule)
		for _, ar := range auxRules {
			key := auxRuleKey(ar)
			if seenAux[key] {
				continue
			}
			seenAux[key] = true
			aux = append(aux, ar)
		}
	}
	tracer().Debugf("normalize: %d input rule(s), %d auxiliary rule(s) invented", len(rules), len(aux))
	return append(out, aux...), nil
}

// checkTopPattern enforces invariant 1: a rule's top pattern must be a
// constructor application or a bare nonterminal variable (a chain rule),
// never a bare literal or a bare terminal-typed variable.
func checkTopPattern(r burg.Rule) error {
	p := r.Rule
	switch {
	case p.IsConstructor():
		return nil
	case p.IsVariable() && p.VarType.IsNonterminal():
		return nil
	default:
		return burg.NewError(burg.IllFormedTopPattern, r.Pos,
			"rule for %s: top pattern must be a constructor application or a nonterminal variable (chain rule), got %s",
			r.LHS, p.String())
	}
}

// auxRuleKey identifies an auxiliary rule for dedup purposes: same LHS,
// identical pattern text (variable names included), same forwarded-variable
// list. Two auxiliary rules whose patterns differ only in variable names
// are not merged.
func auxRuleKey(r burg.Rule) string {
	key := r.LHS + "|" + r.Rule.String() + "|"
	for _, f := range r.Action.Forward {
		key += f + ","
	}
	return key
}

// liftPattern replaces every constructor-valued argument of p with a fresh
// nonterminal-typed variable, recursively normalizing the replaced
// subtree into its own auxiliary rule. It returns the flattened pattern,
// the bindings the caller's action needs to recover the lifted subtrees'
// free variables under their original names, and the auxiliary rules
// invented (including any invented deeper in the recursion).
func liftPattern(reg *registry, p *burg.Pattern) (*burg.Pattern, []burg.Binding, []burg.Rule, error) {
	if !p.IsConstructor() {
		return p, nil, nil, nil
	}
	newArgs := make([]*burg.Pattern, len(p.Args))
	var bindings []burg.Binding
	var auxRules []burg.Rule

	for i, arg := range p.Args {
		if !arg.IsConstructor() {
			newArgs[i] = arg
			continue
		}
		name, err := reg.auxName(arg.Ctor, arg.Arity())
		if err != nil {
			return nil, nil, nil, err
		}
		fvs := burg.FreeVars(arg)
		freshVar := reg.freshVar()
		newArgs[i] = burg.Var(freshVar, burg.Nonterminal(name))

		auxPat, auxBindings, nestedAux, err := liftPattern(reg, arg)
		if err != nil {
			return nil, nil, nil, err
		}
		auxRule := burg.Rule{
			LHS:  name,
			Rule: auxPat,
			Cost: burg.LitCost(0),
			Action: burg.Action{
				Bindings: auxBindings,
				Forward:  forwardList(fvs),
			},
			Pos: arg.Pos,
		}
		auxRules = append(auxRules, nestedAux...)
		auxRules = append(auxRules, auxRule)

		switch len(fvs) {
		case 0:
			// nothing to forward; the lifted subtree contributed no
			// user-visible variable (e.g. a bare literal constructor arg).
		case 1:
			bindings = append(bindings, burg.Binding{Name: fvs[0], Source: freshVar})
		default:
			for j, fv := range fvs {
				bindings = append(bindings, burg.Binding{Name: fv, Source: freshVar, Field: fmt.Sprintf("F%d", j)})
			}
		}
	}
	return burg.Cons(p.Ctor, newArgs), bindings, auxRules, nil
}

// forwardList returns fvs unless it is empty, in which case it returns a
// non-nil empty slice so Action.IsSynthesized still reports true for an
// auxiliary rule that forwards nothing.
func forwardList(fvs []string) []string {
	if fvs == nil {
		return []string{}
	}
	return fvs
}
