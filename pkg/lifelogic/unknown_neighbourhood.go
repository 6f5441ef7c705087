package lifelogic

import "fmt"

// CellUnknownNeighbourhood is the interval abstraction of a partially known
// neighbourhood: a (possibly unknown) center together with Count neighbours
// known to be live and Unknown neighbours not yet resolved. The number of
// live neighbours therefore lies in [Count, Count+Unknown] and the remaining
// NeighbourhoodSize-Count-Unknown neighbours are known to be dead.
type CellUnknownNeighbourhood struct {
	Center  CellState
	Count   int
	Unknown int
}

// Upper returns the largest live-neighbour count in the interval.
func (n CellUnknownNeighbourhood) Upper() int {
	return n.Count + n.Unknown
}

// KnownOff returns the number of neighbours known to be dead.
func (n CellUnknownNeighbourhood) KnownOff() int {
	return NeighbourhoodSize - n.Count - n.Unknown
}

// Contains reports whether count lies in the interval.
func (n CellUnknownNeighbourhood) Contains(count int) bool {
	return count >= n.Count && count <= n.Upper()
}

// Valid reports whether the interval fits in a neighbourhood.
func (n CellUnknownNeighbourhood) Valid() bool {
	return n.Center.Valid() && n.Count >= 0 && n.Unknown >= 0 &&
		n.Count+n.Unknown <= NeighbourhoodSize
}

// Meet intersects two interval abstractions. The centers must agree or one
// of them must be Unknown. The result keeps the larger number of known live
// neighbours and the larger number of known dead neighbours; ok is false when
// the combination is unsatisfiable.
func (n CellUnknownNeighbourhood) Meet(other CellUnknownNeighbourhood) (CellUnknownNeighbourhood, bool) {
	var center CellState
	switch {
	case n.Center == other.Center:
		center = n.Center
	case n.Center == Unknown:
		center = other.Center
	case other.Center == Unknown:
		center = n.Center
	default:
		return CellUnknownNeighbourhood{}, false
	}

	knownOns := max(n.Count, other.Count)
	knownOffs := max(n.KnownOff(), other.KnownOff())
	remaining := NeighbourhoodSize - knownOns - knownOffs
	if remaining < 0 {
		return CellUnknownNeighbourhood{}, false
	}

	return CellUnknownNeighbourhood{Center: center, Count: knownOns, Unknown: remaining}, true
}

// RestrictTo narrows the interval by the abstraction of the possibility set
// o. It fails when o is empty or the two are incompatible.
func (n CellUnknownNeighbourhood) RestrictTo(o StableOptions) (CellUnknownNeighbourhood, bool) {
	abstract, ok := o.ToUnknownNeighbourhood()
	if !ok {
		return CellUnknownNeighbourhood{}, false
	}
	return n.Meet(abstract)
}

// String returns a representation such as "UNKNOWN[2..5]".
func (n CellUnknownNeighbourhood) String() string {
	return fmt.Sprintf("%v[%d..%d]", n.Center, n.Count, n.Upper())
}
