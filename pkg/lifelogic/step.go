package lifelogic

import "fmt"

// RefinedStep is the result of StepRefined.
type RefinedStep struct {
	// Next is the next-generation state of the center when the stable
	// options pin the center: Definite(On), Definite(Off) or StillUnknown.
	// It is DontCare when the stable options leave the center undetermined.
	Next Outcome
	// StablyUnknown is meaningful only when Next is DontCare. It reports
	// whether every admitted scenario is already stable, so the cell stays
	// unknown but stable for another generation.
	StablyUnknown bool
}

// Undetermined reports whether the stable options left the center
// undetermined.
func (r RefinedStep) Undetermined() bool {
	return r.Next.Kind() == OutcomeDontCare
}

// StepRefined computes the next state of a cell from its long-term
// stability knowledge o and its current, transient neighbourhood.
//
// stableNeighbours is the number of neighbours known to be live in the
// stable background and liveNeighbours the number currently live. For each
// admitted scenario the neighbours that are unknown in the background but
// live in that scenario are added to the current live count, and the Life
// rule is applied to the current center (or to the scenario's center when
// current is Unknown).
//
// It returns ErrInvariantViolation when no scenario is admitted, or when o
// pins the center but neither ON nor OFF is reachable.
func StepRefined(o StableOptions, current CellState, stableNeighbours, liveNeighbours int) (RefinedStep, error) {
	if !current.Valid() {
		return RefinedStep{}, fmt.Errorf("%w: current state %v", ErrInvalidArgument, current)
	}
	if o.IsImpossible() {
		return RefinedStep{}, fmt.Errorf("%w: refined step over empty stable options", ErrInvariantViolation)
	}

	var maybeOn, maybeOff, maybeUnstable bool
	for _, n := range o.PossibleNeighbourhoods() {
		center := current
		if center == Unknown {
			center = n.Center
		}

		unknownOns := n.Count - stableNeighbours
		stepped := LifeRule(center, liveNeighbours+unknownOns)

		switch stepped {
		case On:
			maybeOn = true
		case Off:
			maybeOff = true
		}
		if stepped != n.Center {
			maybeUnstable = true
		}
	}

	if o.ToThreeState() == Unknown {
		return RefinedStep{Next: DontCare(), StablyUnknown: !maybeUnstable}, nil
	}

	switch {
	case maybeOn && !maybeOff:
		return RefinedStep{Next: Definite(On)}, nil
	case maybeOff && !maybeOn:
		return RefinedStep{Next: Definite(Off)}, nil
	case maybeOn && maybeOff:
		return RefinedStep{Next: StillUnknown()}, nil
	}

	return RefinedStep{}, fmt.Errorf("%w: no reachable next state for %v, current %v, stable %d, live %d",
		ErrInvariantViolation, o, current, stableNeighbours, liveNeighbours)
}

// StepNaive steps a cell whose live-neighbour count lies in
// [count, count+unknown] without any stability knowledge. An unknown center
// stays Unknown; otherwise the result is On or Off when every count in the
// range agrees and Unknown when they differ.
func StepNaive(center CellState, count, unknown int) (CellState, error) {
	if !center.Valid() {
		return Unknown, fmt.Errorf("%w: center %v", ErrInvalidArgument, center)
	}
	if center == Unknown {
		return Unknown, nil
	}

	var maybeOn, maybeOff bool
	for i := count; i <= count+unknown; i++ {
		if LifeRule(center, i) == On {
			maybeOn = true
		} else {
			maybeOff = true
		}
	}

	switch {
	case maybeOn && maybeOff:
		return Unknown, nil
	case maybeOn:
		return On, nil
	case maybeOff:
		return Off, nil
	}
	return Unknown, fmt.Errorf("%w: empty count range [%d..%d] for %v",
		ErrInvariantViolation, count, count+unknown, center)
}

// KeepsStable reports whether every scenario admitted by o keeps its center
// for one generation, assuming all background-unknown neighbours are stable
// unknowns: for a scenario with count c the current live count is
// liveNeighbours + c - stableNeighbours.
func KeepsStable(o StableOptions, stableNeighbours, liveNeighbours int) bool {
	for _, n := range o.PossibleNeighbourhoods() {
		unknownOns := n.Count - stableNeighbours
		if LifeRule(n.Center, liveNeighbours+unknownOns) != n.Center {
			return false
		}
	}
	return true
}
