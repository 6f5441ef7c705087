// Package rules builds the truth tables that drive the bit-sliced partial
// Life solver. Each Family enumerates the reachable partial-knowledge cases
// of one derivation, evaluates the derivation exactly and emits one
// Espresso row per case. The input and output field names and their order
// are a contract with the C code generated from the minimized tables.
package rules

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/gitrdm/lifebits/pkg/espresso"
)

// ErrUnknownFamily is returned by Lookup for a name that is not registered.
var ErrUnknownFamily = errors.New("rules: unknown family")

// Family is one rule table generator.
type Family struct {
	Name        string
	Description string
	Inputs      []string
	Outputs     []string

	emit func(t *espresso.Table) error
}

// Build enumerates the family's cases and returns the complete table.
func (f *Family) Build() (*espresso.Table, error) {
	t := espresso.NewTable(f.Name, f.Inputs, f.Outputs)
	if err := f.emit(t); err != nil {
		return nil, fmt.Errorf("rules: build %s: %w", f.Name, err)
	}
	return t, nil
}

// optionFlags names the eight exclusion flags of a possibility set.
var optionFlags = []string{"l2", "l3", "d0", "d1", "d2", "d4", "d5", "d6"}

// fields concatenates groups of field names.
func fields(groups ...[]string) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// bits returns the names prefix(width-1) .. prefix0.
func bits(prefix string, width int) []string {
	out := make([]string, width)
	for i := range out {
		out[i] = fmt.Sprintf("%s%d", prefix, width-1-i)
	}
	return out
}

func row(parts ...string) string {
	return strings.Join(parts, "")
}

var registry = []*Family{
	stableCount,
	stableSimple,
	stableSignal,
	stableVulnerable,
	unknownStep,
	unknownStepRefined,
	unknownKeep,
}

// All returns every registered family in a fixed order.
func All() []*Family {
	return slices.Clone(registry)
}

// Names returns the names of all families.
func Names() []string {
	names := make([]string, len(registry))
	for i, f := range registry {
		names[i] = f.Name
	}
	return names
}

// Lookup returns the family with the given name.
func Lookup(name string) (*Family, error) {
	for _, f := range registry {
		if f.Name == name {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownFamily, name, strings.Join(Names(), ", "))
}
