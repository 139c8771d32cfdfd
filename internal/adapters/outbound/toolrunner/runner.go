package toolrunner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"sort"

	"github.com/abscore/abscore/internal/domain"
)

// Runner implements domain.ToolRunner with os/exec.
type Runner struct {
	logger *slog.Logger
}

// New creates a Runner. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{logger: logger}
}

// LookPath resolves a command the same way Run will.
func (r *Runner) LookPath(command string) (string, error) {
	return exec.LookPath(command)
}

// Run executes inv, capturing stdout and stderr together. A non-zero exit is
// reported through ToolOutput.ExitCode; only failures to start the process
// or a timeout are returned as errors.
func (r *Runner) Run(ctx context.Context, inv domain.ToolInvocation) (domain.ToolOutput, error) {
	if inv.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, inv.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, inv.Command, inv.Args...)
	cmd.Dir = inv.Dir
	if len(inv.Env) > 0 {
		cmd.Env = cmd.Environ()
		for _, k := range sortedKeys(inv.Env) {
			cmd.Env = append(cmd.Env, k+"="+inv.Env[k])
		}
	}

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	r.logger.Debug("running tool", "tool", inv.Tool, "command", inv.Command, "args", inv.Args)
	err := cmd.Run()

	result := domain.ToolOutput{Text: out.String()}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, fmt.Errorf("tool %s: %w", inv.Tool, ctxErr)
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return result, fmt.Errorf("tool %s: %w", inv.Tool, err)
		}
		result.ExitCode = exitErr.ExitCode()
	}

	result.Files = readOutputs(inv.Outputs)
	return result, nil
}

// readOutputs loads the declared output files that exist. Missing files are
// left out of the map; the parser decides whether that matters.
func readOutputs(outputs map[string]string) map[string]string {
	if len(outputs) == 0 {
		return nil
	}
	files := make(map[string]string, len(outputs))
	for name, path := range outputs {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		files[name] = string(data)
	}
	return files
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
