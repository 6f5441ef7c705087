package rules

import (
	"fmt"

	"github.com/gitrdm/lifebits/pkg/espresso"
	"github.com/gitrdm/lifebits/pkg/lifelogic"
)

// unknownStep is the naive next-state table: a cell whose live count lies
// in an interval steps to ON or OFF when the whole interval agrees.
var unknownStep = &Family{
	Name:        "unknown_step",
	Description: "naive next state from live and unknown block counts",
	Inputs:      fields([]string{"current_unknown", "current_on"}, bits("on", 4), bits("unk", 4)),
	Outputs:     []string{"naive_next_unknown", "naive_next_on"},
	emit: func(t *espresso.Table) error {
		for c := range lifelogic.Cases(lifelogic.OrderCenterLiveUnknown) {
			n := c.Neighbours()
			next, err := lifelogic.StepNaive(c.Center, n.Count, n.Unknown)
			if err != nil {
				return fmt.Errorf("%v: %w", c, err)
			}
			in := row(espresso.StateBits(c.Center), espresso.Bits(c.Live, 4), espresso.Bits(c.Unknown, 4))
			if err := t.AddRow(in, espresso.StateBits(next)); err != nil {
				return err
			}
		}
		return nil
	},
}

// refinedBits encodes a refined step as (next_on, next_unknown,
// next_unknown_stable).
func refinedBits(r lifelogic.RefinedStep) string {
	switch {
	case r.Undetermined():
		if r.StablyUnknown {
			return "--1"
		}
		return "--0"
	case r.Next.Is(lifelogic.On):
		return "10-"
	case r.Next.Is(lifelogic.Off):
		return "00-"
	}
	return "-1-"
}

// refinedCenters are the (stable, current) center pairs of the refined
// step: both known, or both unknown.
var refinedCenters = [][2]lifelogic.CellState{
	{lifelogic.Off, lifelogic.Off},
	{lifelogic.Off, lifelogic.On},
	{lifelogic.On, lifelogic.Off},
	{lifelogic.On, lifelogic.On},
	{lifelogic.Unknown, lifelogic.Unknown},
}

// unknownStepRefined corrects the naive step for cells that would become
// UNKNOWN, using the stability knowledge of the background. All unknown
// neighbours are assumed to be stable unknowns.
var unknownStepRefined = &Family{
	Name:        "unknown_step_refined",
	Description: "next state of transiently unknown cells from stable options",
	Inputs:      fields(optionFlags, []string{"current_unknown", "current_on"}, bits("s", 3), bits("m", 4)),
	Outputs:     []string{"next_on", "next_unknown", "next_unknown_stable"},
	emit: func(t *espresso.Table) error {
		for _, pair := range refinedCenters {
			stableCenter, current := pair[0], pair[1]
			for unknown := 0; unknown <= lifelogic.BlockSize; unknown++ {
				if stableCenter == lifelogic.Unknown && unknown == 0 {
					continue
				}
				for stab := 0; stab <= lifelogic.BlockSize-unknown; stab++ {
					for live := 0; live <= lifelogic.BlockSize-unknown; live++ {
						if err := emitRefined(t, stableCenter, current, stab, live, unknown); err != nil {
							return err
						}
					}
				}
			}
		}
		return nil
	},
}

func emitRefined(t *espresso.Table, stableCenter, current lifelogic.CellState, stab, live, unknown int) error {
	if stableCenter == lifelogic.On && stab == 0 {
		return nil
	}
	if current == lifelogic.On && live == 0 {
		return nil
	}

	stabN, liveN, unknownN := stab, live, unknown
	if current == lifelogic.On {
		liveN--
	}
	if stableCenter == lifelogic.On {
		stabN--
	}
	if stableCenter == lifelogic.Unknown || current == lifelogic.Unknown {
		unknownN--
	}

	if stabN+unknownN > lifelogic.NeighbourhoodSize || liveN+unknownN > lifelogic.NeighbourhoodSize {
		return nil
	}

	// Unchanged cells and cells the naive step already decides are handled
	// elsewhere.
	if current == stableCenter && liveN == stabN {
		return nil
	}
	naive, err := lifelogic.StepNaive(current, liveN, unknownN)
	if err != nil {
		return err
	}
	if naive != lifelogic.Unknown {
		return nil
	}

	n := lifelogic.CellUnknownNeighbourhood{Center: stableCenter, Count: stabN, Unknown: unknownN}
	for _, o := range lifelogic.CompatibleOptions(n) {
		step, err := lifelogic.StepRefined(o, current, stabN, liveN)
		if err != nil {
			return fmt.Errorf("%v current %v stable %d live %d: %w", o, current, stabN, liveN, err)
		}
		in := row(o.EspressoString(),
			espresso.StateBits(current),
			espresso.Bits(stab, 3),
			espresso.Twos(stab-live, 4))
		if err := t.AddRow(in, refinedBits(step)); err != nil {
			return err
		}
	}
	return nil
}

// unknownKeep tabulates whether a stable cell keeps its state for one
// generation when only some of its known-stable neighbours changed.
var unknownKeep = &Family{
	Name:        "unknown_keep",
	Description: "whether a stable cell keeps its state after a local change",
	Inputs:      fields(optionFlags, bits("s", 3), bits("on", 4), bits("unk", 4)),
	Outputs:     []string{"keep_stable"},
	emit: func(t *espresso.Table) error {
		for c := range lifelogic.Cases(lifelogic.OrderCenterUnknownLive) {
			n := c.Neighbours()
			options := lifelogic.CompatibleOptions(n)
			for live := 0; live <= lifelogic.BlockSize-c.Unknown; live++ {
				liveN := live
				if c.Center == lifelogic.On {
					liveN--
				}
				if liveN+n.Unknown > lifelogic.NeighbourhoodSize {
					continue
				}
				for _, o := range options {
					in := row(o.EspressoString(),
						espresso.Bits(c.Live, 3),
						espresso.Bits(live, 4),
						espresso.Bits(c.Unknown, 4))
					keep := lifelogic.KeepsStable(o, n.Count, liveN)
					if err := t.AddRow(in, string(espresso.Bool(keep))); err != nil {
						return err
					}
				}
			}
		}
		return nil
	},
}
