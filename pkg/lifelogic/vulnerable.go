package lifelogic

// Resolution holds the forcing classification of resolving one unknown fact
// toward ON and toward OFF.
type Resolution struct {
	On  Forcing
	Off Forcing
}

// Vulnerable reports, per side, whether resolving that way is a live and
// undetermined possibility. Forced and impossible sides are not vulnerable.
func (r Resolution) Vulnerable() (on, off bool) {
	return r.On == NotForced, r.Off == NotForced
}

// NeighbourResolution classifies resolving a single unresolved neighbour of
// n to ON (one more known-live neighbour) and to OFF (one fewer unresolved
// neighbour).
//
// ok is false when the question does not arise: a known center with at most
// one unresolved neighbour, or an unknown center with none.
func NeighbourResolution(o StableOptions, n CellUnknownNeighbourhood) (r Resolution, ok bool) {
	if n.Center != Unknown && n.Unknown <= 1 {
		return Resolution{}, false
	}
	if n.Center == Unknown && n.Unknown == 0 {
		return Resolution{}, false
	}

	toOn := CellUnknownNeighbourhood{Center: n.Center, Count: n.Count + 1, Unknown: n.Unknown - 1}
	toOff := CellUnknownNeighbourhood{Center: n.Center, Count: n.Count, Unknown: n.Unknown - 1}

	return Resolution{On: IsForced(o, toOn), Off: IsForced(o, toOff)}, true
}

// CenterResolution classifies resolving an unknown center to ON and to OFF
// with the neighbour counts unchanged. ok is false when the center is
// already known or no neighbour is unresolved.
func CenterResolution(o StableOptions, n CellUnknownNeighbourhood) (r Resolution, ok bool) {
	if n.Unknown == 0 || n.Center != Unknown {
		return Resolution{}, false
	}

	toOn := CellUnknownNeighbourhood{Center: On, Count: n.Count, Unknown: n.Unknown}
	toOff := CellUnknownNeighbourhood{Center: Off, Count: n.Count, Unknown: n.Unknown}

	return Resolution{On: IsForced(o, toOn), Off: IsForced(o, toOff)}, true
}
