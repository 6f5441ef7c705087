package rules

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "rewrite testdata/*.pla from the current tables")

// TestFamilies_Golden locks every table byte for byte: field names, field
// order, row order and row encoding are consumed by generated C code.
func TestFamilies_Golden(t *testing.T) {
	for _, f := range All() {
		t.Run(f.Name, func(t *testing.T) {
			table, err := f.Build()
			require.NoError(t, err)

			path := filepath.Join("testdata", f.Name+".pla")
			if *update {
				require.NoError(t, os.WriteFile(path, []byte(table.String()), 0o644))
			}

			want, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, string(want), table.String(), "table %s differs from %s; rerun with -update if intended", f.Name, path)
		})
	}
}
