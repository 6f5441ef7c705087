package lifelogic

import "fmt"

const (
	// NeighbourhoodSize is the number of neighbours of a cell.
	NeighbourhoodSize = 8
	// BlockSize is the number of cells in the 3x3 block around a cell,
	// including the cell itself. Rule tables count over the block.
	BlockSize = NeighbourhoodSize + 1
)

// LifeRule returns the next state of a cell under the B3/S23 rule.
// center must be On or Off; calling it with Unknown is a programming error.
func LifeRule(center CellState, count int) CellState {
	switch center {
	case On:
		if count == 2 || count == 3 {
			return On
		}
		return Off
	case Off:
		if count == 3 {
			return On
		}
		return Off
	default:
		panic(fmt.Sprintf("lifelogic: LifeRule called with %v center", center))
	}
}

// LifeStable reports whether a cell keeps its state for one generation.
// center must be On or Off.
func LifeStable(center CellState, count int) bool {
	switch center {
	case On:
		return count == 2 || count == 3
	case Off:
		return count != 3
	default:
		panic(fmt.Sprintf("lifelogic: LifeStable called with %v center", center))
	}
}

// CellNeighbourhood is one concrete scenario: a cell in a definite state with
// an exact number of live neighbours. The count excludes the cell itself.
type CellNeighbourhood struct {
	Center CellState
	Count  int
}

// LifeRule returns the state of the center after one generation.
func (n CellNeighbourhood) LifeRule() CellState {
	return LifeRule(n.Center, n.Count)
}

// LifeStable reports whether the center keeps its state.
func (n CellNeighbourhood) LifeStable() bool {
	return LifeStable(n.Center, n.Count)
}

// String returns a compact representation such as "ON/2".
func (n CellNeighbourhood) String() string {
	return fmt.Sprintf("%v/%d", n.Center, n.Count)
}
