// Package lifelogic provides the abstract reasoning domain used to derive
// bitsliced propagation rules for partially known Game of Life patterns.
//
// A cell is described by its own three-valued state, an interval of possible
// live-neighbour counts (CellUnknownNeighbourhood) and a possibility set over
// the eight canonical stable scenarios (StableOptions). The two abstractions
// form a Galois connection: StableOptions.ToUnknownNeighbourhood abstracts a
// possibility set into the tightest enclosing interval, and MaximalOptions /
// CompatibleOptions concretize an interval back into possibility sets.
//
// All values in this package are small immutable value types. Every
// operation is pure and deterministic; the only failure mode besides an
// explicit "no result" is ErrInvariantViolation, which signals a defect in
// the enumeration bounds rather than a property of the input.
package lifelogic

import (
	"errors"
	"fmt"
)

// CellState is the three-valued state of a single cell.
//
// The numeric values double as the two-bit "unknown/on" encoding used by
// several rule tables, so they must not be reordered.
type CellState uint8

const (
	// Off is a cell known to be dead.
	Off CellState = iota
	// On is a cell known to be alive.
	On
	// Unknown is a cell that has not been determined yet. It is distinct
	// from "known to vary".
	Unknown
)

// String returns a human-readable representation of the state.
func (s CellState) String() string {
	switch s {
	case Off:
		return "OFF"
	case On:
		return "ON"
	case Unknown:
		return "UNKNOWN"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// IsKnown reports whether the state is On or Off.
func (s CellState) IsKnown() bool {
	return s == On || s == Off
}

// Valid reports whether s is one of the three defined states.
func (s CellState) Valid() bool {
	return s <= Unknown
}

// Opposite returns On for Off and Off for On. Unknown stays Unknown.
func (s CellState) Opposite() CellState {
	switch s {
	case On:
		return Off
	case Off:
		return On
	default:
		return s
	}
}

// States lists the three cell states in enumeration order.
var States = []CellState{Off, On, Unknown}

// Sentinel errors.
var (
	// ErrInvariantViolation reports a combination that the enumeration
	// bounds should have made unreachable. It always indicates a logic
	// defect and must not be mapped to a default output.
	ErrInvariantViolation = errors.New("lifelogic: invariant violation")
	// ErrInvalidArgument reports a value outside the finite domain.
	ErrInvalidArgument = errors.New("lifelogic: invalid argument")
)
