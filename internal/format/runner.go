package format

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
)

// Runner executes an external program and reports its exit status. It is an
// interface so driver tests can substitute a stub for real subprocesses.
type Runner interface {
	// Run blocks until the program exits and returns its exit status.
	// A non-nil error means the program could not be run at all; a
	// non-zero status from a program that did run is not an error here.
	Run(ctx context.Context, name string, args ...string) (int, error)
}

// ExecRunner runs programs via os/exec, wiring their output through the
// driver's own streams.
type ExecRunner struct {
	stdout io.Writer
	stderr io.Writer
}

// NewExecRunner creates an ExecRunner writing subprocess output to the
// given streams.
func NewExecRunner(stdout, stderr io.Writer) *ExecRunner {
	return &ExecRunner{stdout: stdout, stderr: stderr}
}

// Run executes name with args and blocks until it exits.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (int, error) {
	//nolint:gosec // the program and arguments are the driver's whole purpose
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	cmd.Stdin = os.Stdin

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, err
}
