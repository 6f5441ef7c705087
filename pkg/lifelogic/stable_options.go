package lifelogic

import (
	"fmt"
	"math/bits"
	"strings"
)

// Scenario indexes the eight canonical (center, count) combinations that can
// be stable. OFF with three live neighbours is never stable and is therefore
// omitted by construction.
type Scenario uint8

// Canonical scenarios in flag order. The order is part of the rule-table
// contract.
const (
	Live2 Scenario = iota
	Live3
	Dead0
	Dead1
	Dead2
	Dead4
	Dead5
	Dead6

	// ScenarioCount is the number of canonical scenarios.
	ScenarioCount = 8
)

var scenarioNeighbourhoods = [ScenarioCount]CellNeighbourhood{
	{On, 2}, {On, 3},
	{Off, 0}, {Off, 1}, {Off, 2}, {Off, 4}, {Off, 5}, {Off, 6},
}

var scenarioNames = [ScenarioCount]string{
	"live2", "live3", "dead0", "dead1", "dead2", "dead4", "dead5", "dead6",
}

// Neighbourhood returns the concrete scenario.
func (s Scenario) Neighbourhood() CellNeighbourhood { return scenarioNeighbourhoods[s] }

// Center returns the center state of the scenario.
func (s Scenario) Center() CellState { return scenarioNeighbourhoods[s].Center }

// Count returns the live-neighbour count of the scenario.
func (s Scenario) Count() int { return scenarioNeighbourhoods[s].Count }

// String returns the flag name, e.g. "dead4".
func (s Scenario) String() string {
	if s >= ScenarioCount {
		return fmt.Sprintf("Scenario(%d)", uint8(s))
	}
	return scenarioNames[s]
}

const (
	liveMask uint8 = 1<<Live2 | 1<<Live3
	deadMask uint8 = ^liveMask
	fullMask uint8 = 0xff
)

// StableOptions is the set of canonical stable scenarios that remain
// possible for a cell. It is stored as an exclusion vector: bit s is set when
// Scenario s has been ruled out. The eight flags are independent; no
// normalization is applied.
//
// The all-excluded value is the empty possibility set (bottom) and the
// zero value excludes nothing (top).
type StableOptions uint8

// ImpossibleOptions returns the empty possibility set.
func ImpossibleOptions() StableOptions { return StableOptions(fullMask) }

// UnknownOptions returns the full possibility set: nothing is ruled out.
func UnknownOptions() StableOptions { return 0 }

// OnOptions returns the set of scenarios with a live center.
func OnOptions() StableOptions { return StableOptions(deadMask) }

// OffOptions returns the set of scenarios with a dead center.
func OffOptions() StableOptions { return StableOptions(liveMask) }

// NewStableOptions returns the possibility set with exactly the given
// scenarios excluded.
func NewStableOptions(excluded ...Scenario) StableOptions {
	var o StableOptions
	for _, s := range excluded {
		o |= 1 << s
	}
	return o
}

// ParseStableOptions parses an eight-character exclusion string such as
// "00111111" in flag order.
func ParseStableOptions(s string) (StableOptions, error) {
	if len(s) != ScenarioCount {
		return 0, fmt.Errorf("%w: stable options %q must have %d flags", ErrInvalidArgument, s, ScenarioCount)
	}
	var o StableOptions
	for i := 0; i < ScenarioCount; i++ {
		switch s[i] {
		case '1':
			o |= 1 << i
		case '0':
		default:
			return 0, fmt.Errorf("%w: stable options %q has flag %q", ErrInvalidArgument, s, s[i])
		}
	}
	return o, nil
}

// AllPossibleOptions returns every non-empty possibility set.
func AllPossibleOptions() []StableOptions {
	return UnknownOptions().Upperset()
}

// Excludes reports whether scenario s has been ruled out.
func (o StableOptions) Excludes(s Scenario) bool {
	return o&(1<<s) != 0
}

// Exclude returns o with the given scenarios ruled out.
func (o StableOptions) Exclude(scenarios ...Scenario) StableOptions {
	return o.Intersect(NewStableOptions(scenarios...))
}

// Intersect keeps only the scenarios possible in both o and other (the
// lattice meet). The result never has more possibilities than either input.
func (o StableOptions) Intersect(other StableOptions) StableOptions {
	return o | other
}

// Union keeps every scenario possible in o or other (the lattice join).
func (o StableOptions) Union(other StableOptions) StableOptions {
	return o & other
}

// Refines reports whether every scenario possible in o is possible in other.
func (o StableOptions) Refines(other StableOptions) bool {
	return o.Intersect(other) == o
}

// PossibilitiesCount returns the number of scenarios still possible.
func (o StableOptions) PossibilitiesCount() int {
	return ScenarioCount - bits.OnesCount8(uint8(o))
}

// IsImpossible reports whether every scenario has been ruled out.
func (o StableOptions) IsImpossible() bool {
	return uint8(o) == fullMask
}

// IsMaximal reports whether exactly one scenario remains.
func (o StableOptions) IsMaximal() bool {
	return o.PossibilitiesCount() == 1
}

// MaybeLive reports whether a scenario with a live center remains.
func (o StableOptions) MaybeLive() bool {
	return uint8(o)&liveMask != liveMask
}

// MaybeDead reports whether a scenario with a dead center remains.
func (o StableOptions) MaybeDead() bool {
	return uint8(o)&deadMask != deadMask
}

// SingleOn reports whether exactly one live-center scenario remains.
func (o StableOptions) SingleOn() bool {
	return bits.OnesCount8(^uint8(o)&liveMask) == 1
}

// SingleOff reports whether exactly one dead-center scenario remains.
func (o StableOptions) SingleOff() bool {
	return bits.OnesCount8(^uint8(o)&deadMask) == 1
}

// ToThreeState returns On when only live-center scenarios remain, Off when
// only dead-center scenarios remain and Unknown otherwise. The empty set also
// maps to Unknown; callers must check IsImpossible separately.
func (o StableOptions) ToThreeState() CellState {
	live, dead := o.MaybeLive(), o.MaybeDead()
	switch {
	case live && !dead:
		return On
	case dead && !live:
		return Off
	default:
		return Unknown
	}
}

// Scenarios returns the possible scenarios in flag order.
func (o StableOptions) Scenarios() []Scenario {
	result := make([]Scenario, 0, o.PossibilitiesCount())
	for s := Scenario(0); s < ScenarioCount; s++ {
		if !o.Excludes(s) {
			result = append(result, s)
		}
	}
	return result
}

// PossibleNeighbourhoods returns the concrete scenarios still possible, in
// flag order.
func (o StableOptions) PossibleNeighbourhoods() []CellNeighbourhood {
	scenarios := o.Scenarios()
	result := make([]CellNeighbourhood, len(scenarios))
	for i, s := range scenarios {
		result[i] = s.Neighbourhood()
	}
	return result
}

// Upperset returns every possibility set obtained by ruling out additional
// scenarios of o, excluding the empty set. o itself is included. For k
// possible scenarios the result has 2^k-1 elements, ordered by the number of
// remaining scenarios and then lexicographically by scenario.
func (o StableOptions) Upperset() []StableOptions {
	free := o.Scenarios()
	k := len(free)
	result := make([]StableOptions, 0, (1<<k)-1)

	idx := make([]int, k)
	for r := 1; r <= k; r++ {
		combo := idx[:r]
		for i := range combo {
			combo[i] = i
		}
		for {
			opts := ImpossibleOptions()
			for _, i := range combo {
				opts &^= 1 << free[i]
			}
			result = append(result, opts)

			// Advance to the next r-combination of free.
			i := r - 1
			for i >= 0 && combo[i] == k-r+i {
				i--
			}
			if i < 0 {
				break
			}
			combo[i]++
			for j := i + 1; j < r; j++ {
				combo[j] = combo[j-1] + 1
			}
		}
	}
	return result
}

// ToUnknownNeighbourhood returns the tightest interval enclosing the
// possible scenarios, with the center given by ToThreeState. ok is false for
// the empty set.
func (o StableOptions) ToUnknownNeighbourhood() (CellUnknownNeighbourhood, bool) {
	if o.IsImpossible() {
		return CellUnknownNeighbourhood{}, false
	}
	lo, hi := NeighbourhoodSize, 0
	for _, n := range o.PossibleNeighbourhoods() {
		lo = min(lo, n.Count)
		hi = max(hi, n.Count)
	}
	return CellUnknownNeighbourhood{Center: o.ToThreeState(), Count: lo, Unknown: hi - lo}, true
}

// RestrictTo intersects o with the most permissive possibility set
// consistent with the interval u. It never adds a possibility.
func (o StableOptions) RestrictTo(u CellUnknownNeighbourhood) StableOptions {
	return o.Intersect(MaximalOptions(u))
}

// EspressoString returns the exclusion flags as eight '0'/'1' characters in
// flag order.
func (o StableOptions) EspressoString() string {
	var b strings.Builder
	b.Grow(ScenarioCount)
	for s := Scenario(0); s < ScenarioCount; s++ {
		if o.Excludes(s) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// String lists the possible scenarios, e.g. "{live2,dead0}".
func (o StableOptions) String() string {
	scenarios := o.Scenarios()
	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.String()
	}
	return "{" + strings.Join(names, ",") + "}"
}

// MaximalOptions returns the most permissive possibility set consistent with
// the interval u: a scenario stays possible when its count lies in u and its
// center agrees with u.Center. A definite center rules out the other branch
// regardless of count.
func MaximalOptions(u CellUnknownNeighbourhood) StableOptions {
	excludeLive := u.Center == Off
	excludeDead := u.Center == On

	var o StableOptions
	for s := Scenario(0); s < ScenarioCount; s++ {
		excluded := !u.Contains(s.Count())
		switch s.Center() {
		case On:
			excluded = excluded || excludeLive
		case Off:
			excluded = excluded || excludeDead
		}
		if excluded {
			o |= 1 << s
		}
	}
	return o
}

// CompatibleOptions returns every non-empty refinement of MaximalOptions(u).
// When u.Center is Unknown only refinements that leave the center
// undetermined are kept, so no result silently pins the center.
func CompatibleOptions(u CellUnknownNeighbourhood) []StableOptions {
	upperset := MaximalOptions(u).Upperset()
	if u.Center != Unknown {
		return upperset
	}

	result := upperset[:0]
	for _, o := range upperset {
		if o.ToThreeState() == Unknown {
			result = append(result, o)
		}
	}
	return result
}

// CompatibleOptionsForState returns every non-empty possibility set whose
// scenarios agree with the center state s, ignoring counts.
func CompatibleOptionsForState(s CellState) []StableOptions {
	switch s {
	case On:
		return OnOptions().Upperset()
	case Off:
		return OffOptions().Upperset()
	default:
		return UnknownOptions().Upperset()
	}
}
