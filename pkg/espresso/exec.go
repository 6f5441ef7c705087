package espresso

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultArgs are the espresso flags used for rule generation: exhaustive
// output phase assignment and a single-pass summary.
var DefaultArgs = []string{"-Dopoall", "-S1"}

// ExecMinimizer runs an espresso binary, feeding the table on stdin and
// parsing the cover from stdout.
type ExecMinimizer struct {
	path   string
	args   []string
	logger *zap.Logger
}

// NewExecMinimizer creates a minimizer for the binary at path. A nil args
// uses DefaultArgs and a nil logger discards log output.
func NewExecMinimizer(path string, args []string, logger *zap.Logger) *ExecMinimizer {
	if args == nil {
		args = DefaultArgs
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExecMinimizer{
		path:   path,
		args:   append([]string(nil), args...),
		logger: logger,
	}
}

// Minimize implements Minimizer. The process is killed when ctx is done.
func (m *ExecMinimizer) Minimize(ctx context.Context, t *Table) (*Result, error) {
	var stdin, stdout, stderr bytes.Buffer
	if _, err := t.WriteTo(&stdin); err != nil {
		return nil, fmt.Errorf("espresso: render %s: %w", t.Name, err)
	}

	cmd := exec.CommandContext(ctx, m.path, m.args...)
	cmd.Stdin = &stdin
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second

	log := m.logger.With(zap.String("table", t.Name), zap.String("binary", m.path))
	log.Debug("running minimizer",
		zap.Strings("args", m.args),
		zap.Int("inputs", len(t.Inputs)),
		zap.Int("outputs", len(t.Outputs)),
		zap.Int("rows", t.Len()))

	start := time.Now()
	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("espresso: %s: %w", t.Name, ctxErr)
		}
		return nil, fmt.Errorf("espresso: %s: %w: %s", t.Name, err, strings.TrimSpace(stderr.String()))
	}

	result, err := ParseResult(stdout.String())
	if err != nil {
		return nil, fmt.Errorf("espresso: %s: %w", t.Name, err)
	}

	log.Info("minimized table",
		zap.Int("rows", t.Len()),
		zap.Int("cubes", len(result.Cover)),
		zap.String("phase", result.Phase),
		zap.Duration("elapsed", time.Since(start)))
	return result, nil
}
