package lifelogic

// Forcing classifies a hypothetical combination of a possibility set and an
// interval.
type Forcing uint8

const (
	// ForcingImpossible means no concrete assignment is consistent with
	// both the possibility set and the interval.
	ForcingImpossible Forcing = iota
	// NotForced means the combination is satisfiable but leaves residual
	// uncertainty.
	NotForced
	// Forced means the combination is satisfiable and fully determines the
	// neighbour counts or, for an unknown center, the center.
	Forced
)

// String returns the classification name.
func (f Forcing) String() string {
	switch f {
	case ForcingImpossible:
		return "impossible"
	case NotForced:
		return "not-forced"
	case Forced:
		return "forced"
	default:
		return "invalid"
	}
}

// Decisive reports whether the combination is forced or impossible, i.e.
// whether reaching it would let propagation act.
func (f Forcing) Decisive() bool {
	return f != NotForced
}

// IsForced runs one round of mutual narrowing between o and n.
//
// The possibility set is first restricted to the interval; if nothing
// remains the combination is impossible. The interval is then restricted to
// the narrowed possibility set; if that fails the combination is impossible
// too. Otherwise the combination is forced when no unresolved neighbour is
// left or when an unknown center has become definite.
//
// Exactly one round is performed; this is not a fixpoint iteration.
func IsForced(o StableOptions, n CellUnknownNeighbourhood) Forcing {
	narrowed := o.RestrictTo(n)
	if narrowed.IsImpossible() {
		return ForcingImpossible
	}

	n2, ok := n.RestrictTo(narrowed)
	if !ok {
		return ForcingImpossible
	}

	if n2.Unknown == 0 || (n.Center == Unknown && n2.Center != Unknown) {
		return Forced
	}
	return NotForced
}
