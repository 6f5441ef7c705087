package espresso

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformedRow reports a row whose width or alphabet does not match the
// table declaration.
var ErrMalformedRow = errors.New("espresso: malformed row")

// Row is one line of a truth table: an input cube and its output values.
type Row struct {
	In  string
	Out string
}

// Table is a multi-output truth table with named input and output fields.
// Field order and width are part of the contract with the consumer of the
// generated rules.
type Table struct {
	Name    string
	Inputs  []string
	Outputs []string
	rows    []Row
}

// NewTable creates an empty table.
func NewTable(name string, inputs, outputs []string) *Table {
	return &Table{
		Name:    name,
		Inputs:  append([]string(nil), inputs...),
		Outputs: append([]string(nil), outputs...),
	}
}

// AddRow appends a row after checking its widths and alphabet. Inputs may
// use '0', '1' and '-'; outputs may use the same characters.
func (t *Table) AddRow(in, out string) error {
	if len(in) != len(t.Inputs) {
		return fmt.Errorf("%w: %s: input %q has %d bits, want %d", ErrMalformedRow, t.Name, in, len(in), len(t.Inputs))
	}
	if len(out) != len(t.Outputs) {
		return fmt.Errorf("%w: %s: output %q has %d bits, want %d", ErrMalformedRow, t.Name, out, len(out), len(t.Outputs))
	}
	if i := strings.IndexFunc(in+out, func(r rune) bool { return r != '0' && r != '1' && r != DontCare }); i >= 0 {
		return fmt.Errorf("%w: %s: row %q %q has character %q", ErrMalformedRow, t.Name, in, out, (in + out)[i])
	}
	t.rows = append(t.rows, Row{In: in, Out: out})
	return nil
}

// Rows returns the rows in insertion order.
func (t *Table) Rows() []Row {
	return t.rows
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Header returns the PLA header declaring the field counts and names.
func (t *Table) Header() string {
	return fmt.Sprintf(".i %d\n.o %d\n.pli %s\n.ob %s\n.type fr\n",
		len(t.Inputs), len(t.Outputs),
		strings.Join(t.Inputs, " "), strings.Join(t.Outputs, " "))
}

// WriteTo writes the header followed by one line per row.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	bw.WriteString(t.Header())
	for _, r := range t.rows {
		bw.WriteString(r.In)
		bw.WriteByte(' ')
		bw.WriteString(r.Out)
		bw.WriteByte('\n')
	}
	err := bw.Flush()
	return cw.n, err
}

// String renders the whole table.
func (t *Table) String() string {
	var b strings.Builder
	_, _ = t.WriteTo(&b)
	return b.String()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
