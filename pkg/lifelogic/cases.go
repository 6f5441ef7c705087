package lifelogic

import (
	"fmt"
	"iter"
)

// Case is one input tuple of a rule table: the center state and the number
// of live and unknown cells in the 3x3 block around it, the center
// included. Live counts the center when it is On and Unknown counts it when
// it is Unknown. An Off center occupies a block cell without being counted,
// so its counts are bounded by NeighbourhoodSize rather than BlockSize.
type Case struct {
	Center  CellState
	Live    int
	Unknown int
}

// Valid reports whether the counts fit in a block and are consistent with
// the center's own contribution, so that Neighbours stays within the
// eight neighbours.
func (c Case) Valid() bool {
	if !c.Center.Valid() || c.Live < 0 || c.Unknown < 0 || c.Live+c.Unknown > BlockSize {
		return false
	}
	switch c.Center {
	case On:
		return c.Live > 0
	case Unknown:
		return c.Unknown > 0
	}
	return c.Live+c.Unknown <= NeighbourhoodSize
}

// Neighbours returns the interval abstraction of the neighbours alone, with
// the center's own contribution removed.
func (c Case) Neighbours() CellUnknownNeighbourhood {
	n := CellUnknownNeighbourhood{Center: c.Center, Count: c.Live, Unknown: c.Unknown}
	switch c.Center {
	case On:
		n.Count--
	case Unknown:
		n.Unknown--
	}
	return n
}

// String returns a representation such as "ON live=3 unknown=2".
func (c Case) String() string {
	return fmt.Sprintf("%v live=%d unknown=%d", c.Center, c.Live, c.Unknown)
}

// CaseOrder selects the nesting of the enumeration loops. The order only
// changes the order of emitted rows, never their content.
type CaseOrder uint8

const (
	// OrderCenterUnknownLive iterates centers, then unknown counts, then
	// live counts.
	OrderCenterUnknownLive CaseOrder = iota
	// OrderCenterLiveUnknown iterates centers, then live counts, then
	// unknown counts.
	OrderCenterLiveUnknown
	// OrderLiveUnknownCenter iterates live counts, then unknown counts, and
	// visits the centers innermost.
	OrderLiveUnknownCenter
)

// Cases yields every valid Case for the given centers in the given order.
// With no centers it uses Off, On and Unknown. Counts are bounded by
// BlockSize.
func Cases(order CaseOrder, centers ...CellState) iter.Seq[Case] {
	if len(centers) == 0 {
		centers = States
	}
	return func(yield func(Case) bool) {
		emit := func(c Case) bool {
			if !c.Valid() {
				return true
			}
			return yield(c)
		}

		switch order {
		case OrderCenterUnknownLive:
			for _, center := range centers {
				for unknown := 0; unknown <= BlockSize; unknown++ {
					for live := 0; live <= BlockSize-unknown; live++ {
						if !emit(Case{Center: center, Live: live, Unknown: unknown}) {
							return
						}
					}
				}
			}
		case OrderCenterLiveUnknown:
			for _, center := range centers {
				for live := 0; live <= BlockSize; live++ {
					for unknown := 0; unknown <= BlockSize-live; unknown++ {
						if !emit(Case{Center: center, Live: live, Unknown: unknown}) {
							return
						}
					}
				}
			}
		case OrderLiveUnknownCenter:
			for live := 0; live <= BlockSize; live++ {
				for unknown := 0; unknown <= BlockSize-live; unknown++ {
					for _, center := range centers {
						if !emit(Case{Center: center, Live: live, Unknown: unknown}) {
							return
						}
					}
				}
			}
		}
	}
}
