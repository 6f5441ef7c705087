package rules

import (
	"slices"

	"github.com/gitrdm/lifebits/pkg/espresso"
	"github.com/gitrdm/lifebits/pkg/lifelogic"
)

// stableCount maps raw block counts to the maximal possibility set, with an
// abort flag for counts no stable cell can have. Only live counts up to 6
// are tabulated.
var stableCount = &Family{
	Name:        "stable_count",
	Description: "maximal stable options from known/unknown block counts",
	Inputs:      fields([]string{"known_off", "known_on"}, bits("on", 3), bits("off", 4)),
	Outputs:     fields(optionFlags, []string{"abort"}),
	emit: func(t *espresso.Table) error {
		for c := range lifelogic.Cases(lifelogic.OrderLiveUnknownCenter) {
			if c.Live > 6 {
				continue
			}
			out := espresso.Repeat(espresso.DontCare, lifelogic.ScenarioCount) + "1"
			if o := lifelogic.MaximalOptions(c.Neighbours()); !o.IsImpossible() {
				out = o.EspressoString() + "0"
			}
			in := row(espresso.KnownBits(c.Center),
				espresso.Bits(c.Live, 3),
				espresso.Bits(lifelogic.BlockSize-c.Unknown-c.Live, 4))
			if err := t.AddRow(in, out); err != nil {
				return err
			}
		}
		return nil
	},
}

// simpleResult is the outcome of the count-only stability propagation.
type simpleResult uint8

const (
	simpleKeep simpleResult = iota
	simpleSetOn
	simpleSetOff
	simpleSignalOn
	simpleSignalOff
	simpleAbort
)

// propagateSimple decides, from counts alone, what a stable cell with
// neighbours n implies. An unknown center may become definite. A known
// center may be contradictory, or may force all unknown neighbours ON
// (only the top of the range is stable) or OFF (only the bottom is).
func propagateSimple(n lifelogic.CellUnknownNeighbourhood) simpleResult {
	if n.Center == lifelogic.Unknown {
		var maybeOn, maybeOff bool
		for i := n.Count; i <= n.Upper(); i++ {
			maybeOn = maybeOn || lifelogic.LifeStable(lifelogic.On, i)
			maybeOff = maybeOff || lifelogic.LifeStable(lifelogic.Off, i)
		}
		switch {
		case maybeOn && !maybeOff:
			return simpleSetOn
		case maybeOff && !maybeOn:
			return simpleSetOff
		}
		return simpleKeep
	}

	stable := make([]bool, 0, n.Unknown+1)
	possible := false
	for i := n.Count; i <= n.Upper(); i++ {
		s := lifelogic.LifeStable(n.Center, i)
		stable = append(stable, s)
		possible = possible || s
	}
	if !possible {
		return simpleAbort
	}
	if n.Unknown == 0 {
		return simpleKeep
	}

	last := len(stable) - 1
	switch {
	case stable[last] && !slices.Contains(stable[:last], true):
		return simpleSignalOn
	case stable[0] && !slices.Contains(stable[1:], true):
		return simpleSignalOff
	}
	return simpleKeep
}

func (r simpleResult) encode(center lifelogic.CellState) string {
	if center == lifelogic.Unknown {
		switch r {
		case simpleSetOff:
			return "10000"
		case simpleSetOn:
			return "01000"
		}
		return "00000"
	}
	switch r {
	case simpleSignalOff:
		return "--100"
	case simpleSignalOn:
		return "--010"
	case simpleAbort:
		return "----1"
	}
	return "--000"
}

// stableSimple is the count-only propagation table for small blocks.
var stableSimple = &Family{
	Name:        "stable_simple",
	Description: "count-only stability propagation without option sets",
	Inputs:      fields([]string{"stateunk", "stateon"}, bits("on", 3), bits("unk", 3)),
	Outputs:     []string{"set_off", "set_on", "signal_off", "signal_on", "abort"},
	emit: func(t *espresso.Table) error {
		for c := range lifelogic.Cases(lifelogic.OrderLiveUnknownCenter) {
			if c.Live > 7 || c.Unknown > 3 {
				continue
			}
			in := row(espresso.StateBits(c.Center), espresso.Bits(c.Live, 3), espresso.Bits(c.Unknown, 3))
			if err := t.AddRow(in, propagateSimple(c.Neighbours()).encode(c.Center)); err != nil {
				return err
			}
		}
		return nil
	},
}

// signalBits encodes a signal outcome as the (on, off) pair.
func signalBits(o lifelogic.Outcome) string {
	switch {
	case o.Is(lifelogic.On):
		return "10"
	case o.Is(lifelogic.Off):
		return "01"
	case o.Kind() == lifelogic.OutcomeStillUnknown:
		return "00"
	}
	return "--"
}

// stableSignal tabulates the neighbour and center signals for every
// possibility set that agrees with the center state.
var stableSignal = &Family{
	Name:        "stable_signal",
	Description: "forced values of unknown neighbours and unknown centers",
	Inputs:      fields([]string{"stateunk", "stateon"}, optionFlags, bits("s", 3), bits("m", 4)),
	Outputs:     []string{"signalon", "signaloff", "centeron", "centeroff"},
	emit: func(t *espresso.Table) error {
		for c := range lifelogic.Cases(lifelogic.OrderCenterUnknownLive) {
			n := c.Neighbours()
			for _, o := range lifelogic.CompatibleOptionsForState(c.Center) {
				in := row(espresso.StateBits(c.Center),
					o.EspressoString(),
					espresso.Bits(c.Live, 3),
					espresso.Bits(c.Live+c.Unknown, 4))
				out := signalBits(lifelogic.NeighbourSignal(o, n)) + signalBits(lifelogic.CenterSignal(o, n))
				if err := t.AddRow(in, out); err != nil {
					return err
				}
			}
		}
		return nil
	},
}

// resolutionBits marks each side whose resolution would be decisive,
// either forced or impossible.
func resolutionBits(r lifelogic.Resolution) string {
	return string([]byte{espresso.Bool(r.On.Decisive()), espresso.Bool(r.Off.Decisive())})
}

func neighbourVulnerability(o lifelogic.StableOptions, n lifelogic.CellUnknownNeighbourhood) string {
	r, ok := lifelogic.NeighbourResolution(o, n)
	if !ok {
		return "00"
	}
	return resolutionBits(r)
}

func centerVulnerability(o lifelogic.StableOptions, n lifelogic.CellUnknownNeighbourhood) string {
	if n.Unknown == 0 {
		return "00"
	}
	r, ok := lifelogic.CenterResolution(o, n)
	if !ok {
		return "--"
	}
	return resolutionBits(r)
}

// stableVulnerable tabulates which single resolutions would settle the
// cell, for choosing the next cell to branch on.
var stableVulnerable = &Family{
	Name:        "stable_vulnerable",
	Description: "which single-unknown resolutions force or refute a cell",
	Inputs:      fields(optionFlags, bits("s", 3), bits("unk", 4)),
	Outputs:     []string{"vulnerable_on", "vulnerable_off", "vulnerable_center_on", "vulnerable_center_off"},
	emit: func(t *espresso.Table) error {
		for c := range lifelogic.Cases(lifelogic.OrderCenterUnknownLive) {
			n := c.Neighbours()
			for _, o := range lifelogic.CompatibleOptions(n) {
				in := row(o.EspressoString(), espresso.Bits(c.Live, 3), espresso.Bits(c.Unknown, 4))
				out := neighbourVulnerability(o, n) + centerVulnerability(o, n)
				if err := t.AddRow(in, out); err != nil {
					return err
				}
			}
		}
		return nil
	},
}
