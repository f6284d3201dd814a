package codegen

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	burg "github.com/ocaml-burg/ocamlburg"
)

// Groups is the grouper's result (§4.4): rules partitioned by top-level
// constructor, rules partitioned by chain-rule target, and the sorted set
// of every nonterminal occurring as some rule's left-hand side.
type Groups struct {
	Cons         map[string][]burg.Rule
	Chains       map[string][]burg.Rule
	Nonterminals []string
}

// nonterminalComparator places ordinary names before any name beginning
// with "_" (auxiliaries), lexicographic within each class (§4.4) — the
// same two-class-then-lexicographic shape as lr/tables.go's
// stateComparator, adapted from state-id ordering to this naming scheme.
func nonterminalComparator(a, b interface{}) int {
	sa, sb := a.(string), b.(string)
	auxA, auxB := len(sa) > 0 && sa[0] == '_', len(sb) > 0 && sb[0] == '_'
	if auxA != auxB {
		if auxA {
			return 1
		}
		return -1
	}
	return utils.StringComparator(sa, sb)
}

// Group partitions rules into Cons, Chains, and the sorted Nonterminals
// set (§4.4). It also rejects, with InvalidCostCycle, a cycle of chain
// rules whose edges are all of dynamic (non-literal) cost — the
// termination caveat of spec.md §9: the update-routine fixpoint relies on
// at least one literal, non-negative cost breaking any cycle, and a cycle
// built entirely from opaque user cost expressions cannot be shown to
// terminate statically.
func Group(rules []burg.Rule) (*Groups, error) {
	g := &Groups{
		Cons:   make(map[string][]burg.Rule),
		Chains: make(map[string][]burg.Rule),
	}
	names := treeset.NewWith(nonterminalComparator)
	for _, r := range rules {
		names.Add(r.LHS)
		if r.IsChainRule() {
			target := r.Rule.VarType.Name
			g.Chains[target] = append(g.Chains[target], r)
			continue
		}
		if r.Rule.IsConstructor() {
			g.Cons[r.Rule.Ctor] = append(g.Cons[r.Rule.Ctor], r)
		}
	}
	for _, v := range names.Values() {
		g.Nonterminals = append(g.Nonterminals, v.(string))
	}

	if err := checkNoDynamicCostCycle(g.Chains); err != nil {
		return nil, err
	}
	tracer().Debugf("grouper: %d constructor group(s), %d chain group(s), %d nonterminal(s)",
		len(g.Cons), len(g.Chains), len(g.Nonterminals))
	return g, nil
}

// checkNoDynamicCostCycle walks the chain-rule graph (an edge n -> m for
// every chain rule `m : n`, the direction in which update_n propagates to
// update_m) looking for a cycle all of whose edges carry a dynamic cost
// expression.
func checkNoDynamicCostCycle(chains map[string][]burg.Rule) error {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make(map[string]int)
	var path []string

	var visit func(n string) error
	visit = func(n string) error {
		color[n] = gray
		path = append(path, n)
		for _, r := range chains[n] {
			if r.Cost.Kind != burg.DynamicCost {
				continue // a literal cost on this edge breaks any cycle through it
			}
			m := r.LHS
			switch color[m] {
			case white:
				if err := visit(m); err != nil {
					return err
				}
			case gray:
				return burg.NewError(burg.InvalidCostCycle, r.Pos,
					"chain-rule cycle %v carries only dynamic costs and is not guaranteed to terminate",
					append(append([]string{}, path...), m))
			}
		}
		path = path[:len(path)-1]
		color[n] = black
		return nil
	}
	for n := range chains {
		if color[n] == white {
			if err := visit(n); err != nil {
				return err
			}
		}
	}
	return nil
}
