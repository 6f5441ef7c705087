package lifelogic

// NeighbourSignal decides whether the stability knowledge o forces every
// unresolved neighbour of n to the same value.
//
// It returns Definite(On) when all unresolved neighbours must be live,
// Definite(Off) when they must all be dead, StillUnknown when neither holds,
// Impossible when o and n are inconsistent and DontCare when n has no
// unresolved neighbour.
func NeighbourSignal(o StableOptions, n CellUnknownNeighbourhood) Outcome {
	if n.Unknown == 0 {
		return DontCare()
	}

	narrowed := o.RestrictTo(n)
	if narrowed.IsImpossible() {
		return Impossible()
	}
	if _, ok := n.RestrictTo(narrowed); !ok {
		return Impossible()
	}

	n2, ok := n.RestrictTo(o)
	if !ok {
		return Impossible()
	}
	if n2.Unknown == 0 {
		switch n2.Count {
		case n.Count:
			return Definite(Off)
		case n.Upper():
			return Definite(On)
		}
	}
	return StillUnknown()
}

// CenterSignal decides whether the stability knowledge o pins an unknown
// center of n. A known center yields DontCare.
func CenterSignal(o StableOptions, n CellUnknownNeighbourhood) Outcome {
	if n.Center != Unknown {
		return DontCare()
	}

	narrowed := o.RestrictTo(n)
	if narrowed.IsImpossible() {
		return Impossible()
	}
	n2, ok := n.RestrictTo(narrowed)
	if !ok {
		return Impossible()
	}

	if n2.Center == Unknown {
		return StillUnknown()
	}
	return Definite(n2.Center)
}
