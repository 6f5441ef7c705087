package lifelogic

// OutcomeKind classifies the result of a derivation.
type OutcomeKind uint8

const (
	// OutcomeInvalid is the kind of the zero Outcome, which no derivation
	// returns.
	OutcomeInvalid OutcomeKind = iota
	// OutcomeDefinite means every concretization agrees on a single state.
	OutcomeDefinite
	// OutcomeStillUnknown means the case is reachable but not decided.
	OutcomeStillUnknown
	// OutcomeImpossible means no concrete assignment is consistent.
	OutcomeImpossible
	// OutcomeDontCare means the case must not constrain the minimizer.
	OutcomeDontCare
)

// String returns the kind name.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeDefinite:
		return "definite"
	case OutcomeStillUnknown:
		return "still-unknown"
	case OutcomeImpossible:
		return "impossible"
	case OutcomeDontCare:
		return "dont-care"
	default:
		return "invalid"
	}
}

// Outcome is the result of a derivation. It is kept separate from CellState
// so that control markers never leak into the reasoning domain.
//
// The zero value has kind OutcomeInvalid and is never Definite; use the
// constructors.
type Outcome struct {
	kind  OutcomeKind
	state CellState
}

// Definite returns an outcome pinned to s. s must be On or Off.
func Definite(s CellState) Outcome {
	if !s.IsKnown() {
		panic("lifelogic: Definite requires On or Off, got " + s.String())
	}
	return Outcome{kind: OutcomeDefinite, state: s}
}

// StillUnknown returns the undecided outcome.
func StillUnknown() Outcome {
	return Outcome{kind: OutcomeStillUnknown, state: Unknown}
}

// Impossible returns the unsatisfiable outcome.
func Impossible() Outcome {
	return Outcome{kind: OutcomeImpossible, state: Unknown}
}

// DontCare returns the outcome for cases that are excluded on purpose.
func DontCare() Outcome {
	return Outcome{kind: OutcomeDontCare, state: Unknown}
}

// Kind returns the outcome's classification.
func (o Outcome) Kind() OutcomeKind { return o.kind }

// State returns the pinned state for definite outcomes and Unknown otherwise.
func (o Outcome) State() CellState { return o.state }

// Is reports whether o is Definite(s).
func (o Outcome) Is(s CellState) bool {
	return o.kind == OutcomeDefinite && o.state == s
}

// String returns a human-readable representation of the outcome.
func (o Outcome) String() string {
	if o.kind == OutcomeDefinite {
		return o.state.String()
	}
	return o.kind.String()
}
