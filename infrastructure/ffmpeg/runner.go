package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"audio-extractor/infrastructure/searchpath"
)

// CommandRunner defines the interface for running external commands
// This allows mocking exec.Command in tests
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) error
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecCommandRunner is the production implementation using os/exec.
// Bare command names are resolved against SearchPath, and the child
// process inherits the environment with PATH replaced by it.
type ExecCommandRunner struct {
	SearchPath *searchpath.SearchPath
	Stderr     io.Writer
	Logger     *slog.Logger
}

// NewExecCommandRunner creates a runner bound to a search path
func NewExecCommandRunner(sp *searchpath.SearchPath, logger *slog.Logger) *ExecCommandRunner {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExecCommandRunner{
		SearchPath: sp,
		Stderr:     os.Stderr,
		Logger:     logger,
	}
}

// Run executes a command and returns any error
func (r *ExecCommandRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd, err := r.command(ctx, name, args...)
	if err != nil {
		return err
	}
	if r.Stderr != nil {
		cmd.Stderr = r.Stderr
	}
	return cmd.Run()
}

// Output executes a command and returns its output
func (r *ExecCommandRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd, err := r.command(ctx, name, args...)
	if err != nil {
		return nil, err
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil && stderr.Len() > 0 {
		return out, fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return out, err
}

func (r *ExecCommandRunner) command(ctx context.Context, name string, args ...string) (*exec.Cmd, error) {
	path := name
	if r.SearchPath != nil {
		resolved, err := r.SearchPath.LookPath(name)
		if err != nil {
			return nil, err
		}
		path = resolved
	}

	if r.Logger != nil {
		r.Logger.Debug("running command", "path", path, "args", args)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	if r.SearchPath != nil {
		cmd.Env = r.SearchPath.Environ(os.Environ())
	}
	return cmd, nil
}
