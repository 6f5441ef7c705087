package espresso

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// Minimizer turns a truth table into a minimized two-level cover. It is
// treated as a pure function: the same table always yields the same result.
type Minimizer interface {
	Minimize(ctx context.Context, t *Table) (*Result, error)
}

// Cube is one product term of a cover: an input cube and the outputs it
// drives.
type Cube struct {
	In  string
	Out string
}

// Result is a minimized cover together with the output phase chosen by the
// minimizer. Phase has one character per output; '0' means the output was
// minimized in complemented form and must be inverted after evaluation. An
// empty Phase means no phase assignment was requested.
type Result struct {
	Cover []Cube
	Phase string
}

const phasePrefix = "#.phase "

// ParseResult parses Espresso's PLA output. Directive lines starting with
// '.' and comment lines starting with '#' are skipped, except for the
// "#.phase" line, which provides the output polarities.
func ParseResult(output string) (*Result, error) {
	result := &Result{}
	sawPhase := false

	sc := bufio.NewScanner(strings.NewReader(output))
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, phasePrefix):
			if !sawPhase {
				result.Phase = strings.TrimSpace(line[len(phasePrefix):])
				sawPhase = true
			}
			continue
		case line[0] == '.' || line[0] == '#':
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("espresso: unexpected cover line %q", line)
		}
		result.Cover = append(result.Cover, Cube{In: fields[0], Out: fields[1]})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("espresso: read output: %w", err)
	}
	return result, nil
}
