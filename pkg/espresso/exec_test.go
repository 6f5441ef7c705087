package espresso

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// writeScript installs a fake espresso binary and returns its path.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not supported on windows")
	}
	path := filepath.Join(t.TempDir(), "espresso")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

func demoTable(t *testing.T) *Table {
	t.Helper()
	table := NewTable("demo", []string{"a", "b", "c"}, []string{"x", "y"})
	require.NoError(t, table.AddRow("100", "10"))
	require.NoError(t, table.AddRow("011", "01"))
	return table
}

func TestExecMinimizer_Minimize(t *testing.T) {
	path := writeScript(t, `cat > "$(dirname "$0")/stdin"
echo "$@" > "$(dirname "$0")/args"
cat <<'EOF'
`+sampleOutput+`EOF
`)

	core, logs := observer.New(zap.DebugLevel)
	m := NewExecMinimizer(path, nil, zap.New(core))

	result, err := m.Minimize(context.Background(), demoTable(t))
	require.NoError(t, err)
	assert.Len(t, result.Cover, 3)
	assert.Equal(t, "01", result.Phase)

	dir := filepath.Dir(path)
	args, err := os.ReadFile(filepath.Join(dir, "args"))
	require.NoError(t, err)
	assert.Equal(t, "-Dopoall -S1", strings.TrimSpace(string(args)))

	stdin, err := os.ReadFile(filepath.Join(dir, "stdin"))
	require.NoError(t, err)
	assert.Equal(t, demoTable(t).String(), string(stdin))

	assert.Equal(t, 1, logs.FilterMessage("minimized table").Len())
}

func TestExecMinimizer_Failure(t *testing.T) {
	path := writeScript(t, "cat > /dev/null\necho boom >&2\nexit 3\n")

	_, err := NewExecMinimizer(path, []string{"-Dexact"}, nil).Minimize(context.Background(), demoTable(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestExecMinimizer_Cancel(t *testing.T) {
	path := writeScript(t, "exec sleep 10\n")

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := NewExecMinimizer(path, nil, nil).Minimize(ctx, demoTable(t))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestExecMinimizer_MissingBinary(t *testing.T) {
	m := NewExecMinimizer(filepath.Join(t.TempDir(), "missing"), nil, nil)
	_, err := m.Minimize(context.Background(), demoTable(t))
	assert.Error(t, err)
}
