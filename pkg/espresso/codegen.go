package espresso

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WriteCode renders a minimized cover as bitwise C statements over uint64_t
// lanes. Every cube becomes a conjunction of input names (complemented for
// '0' positions) that is OR-ed into each output it drives. Outputs whose
// phase is '0' are inverted at the end.
//
// The output variables must be zero-initialized by the surrounding code.
func WriteCode(w io.Writer, r *Result, inputs, outputs []string) error {
	bw := bufio.NewWriter(w)

	for _, cube := range r.Cover {
		if len(cube.In) != len(inputs) || len(cube.Out) != len(outputs) {
			return fmt.Errorf("espresso: cube %q %q does not match %d inputs and %d outputs",
				cube.In, cube.Out, len(inputs), len(outputs))
		}

		code := conjunction(cube.In, inputs)

		var targets []string
		for i := 0; i < len(cube.Out); i++ {
			if cube.Out[i] == '1' {
				targets = append(targets, outputs[i])
			}
		}

		switch len(targets) {
		case 0:
		case 1:
			fmt.Fprintf(bw, "%s |= %s;\n", targets[0], code)
		default:
			parts := make([]string, len(targets))
			for i, name := range targets {
				parts[i] = name + " |= temp;"
			}
			fmt.Fprintf(bw, "{ uint64_t temp = %s; %s }\n", code, strings.Join(parts, " "))
		}
	}

	for i := 0; i < len(r.Phase) && i < len(outputs); i++ {
		if r.Phase[i] == '0' {
			fmt.Fprintf(bw, "%s = ~%s;\n", outputs[i], outputs[i])
		}
	}

	return bw.Flush()
}

// conjunction returns the C expression for an input cube. A cube without
// literals is the constant all-ones lane.
func conjunction(in string, names []string) string {
	terms := make([]string, 0, len(in))
	for i := 0; i < len(in); i++ {
		switch in[i] {
		case '0':
			terms = append(terms, "(~"+names[i]+")")
		case '1':
			terms = append(terms, names[i])
		}
	}
	if len(terms) == 0 {
		return "~0ULL"
	}
	return strings.Join(terms, " & ")
}
