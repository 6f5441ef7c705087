package espresso

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_WriteTo(t *testing.T) {
	table := NewTable("demo", []string{"a", "b", "c"}, []string{"x", "y"})
	require.NoError(t, table.AddRow("10-", "1-"))
	require.NoError(t, table.AddRow("011", "01"))

	var buf bytes.Buffer
	n, err := table.WriteTo(&buf)
	require.NoError(t, err)

	want := ".i 3\n.o 2\n.pli a b c\n.ob x y\n.type fr\n10- 1-\n011 01\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, int64(len(want)), n)
	assert.Equal(t, want, table.String())
	assert.Equal(t, 2, table.Len())
}

func TestTable_AddRowValidation(t *testing.T) {
	table := NewTable("demo", []string{"a", "b"}, []string{"x"})

	tests := []struct {
		name    string
		in, out string
	}{
		{"short input", "1", "0"},
		{"long output", "10", "01"},
		{"bad input character", "1x", "0"},
		{"bad output character", "10", "?"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := table.AddRow(tt.in, tt.out)
			assert.ErrorIs(t, err, ErrMalformedRow)
		})
	}
	assert.Zero(t, table.Len())
}

func TestNewTable_CopiesNames(t *testing.T) {
	inputs := []string{"a"}
	table := NewTable("demo", inputs, []string{"x"})
	inputs[0] = "changed"
	assert.Equal(t, []string{"a"}, table.Inputs)
}
