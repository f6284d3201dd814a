package runtime

import "math"

// Cost is a non-negative additive monoid with a distinguished "infinity"
// that is absorbing for addition and maximal for comparison (§3 invariant
// 7). This implementation backs it with float64 so that a rule's dynamic
// cost expression (opaque to the core, evaluated by emitted code) may
// return a fractional value if the application domain calls for one;
// integer rule costs are simply promoted.
type Cost float64

// Infinity is the maximal Cost value, absorbing for Add and maximal for
// comparison. The zero value of Cost is the additive identity (zero cost),
// not Infinity — callers building an "all fields unset" record must use
// Infinity explicitly (see the generated `infinity` value, §4.5 point 2).
const Infinity Cost = Cost(math.MaxFloat64)

// FromInt promotes a literal integer rule cost to a Cost.
func FromInt(v int64) Cost { return Cost(v) }

// Add returns c + o, saturating at Infinity (Infinity is absorbing for
// addition).
func (c Cost) Add(o Cost) Cost {
	if c.IsInfinite() || o.IsInfinite() {
		return Infinity
	}
	return c + o
}

// Less reports whether c sorts strictly before o (Infinity is maximal).
func (c Cost) Less(o Cost) bool { return c < o }

// IsInfinite reports whether c is the absorbing/maximal element.
func (c Cost) IsInfinite() bool { return c >= Infinity }
