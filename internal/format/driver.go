// Package format implements the formatting pipeline: resolve the external
// artifacts, run the formatter, then run the fixup pass.
package format

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/plumekit/gjf/internal/artifact"
)

// Formatter invocation flags.
const (
	flagReplace      = "--replace"
	flagSortImports  = "--sort-imports=also"
	flagDryRun       = "--dry-run"
	flagExitOnChange = "--set-exit-if-changed"
)

// ArtifactSource resolves an artifact to a local path.
type ArtifactSource interface {
	Resolve(ctx context.Context, a artifact.Artifact) (string, error)
}

// Driver orchestrates one formatting pass. Each invocation is a single
// sequential pipeline; nothing is retried and nothing runs concurrently.
type Driver struct {
	logger *slog.Logger
	source ArtifactSource
	runner Runner

	java  string
	jar   artifact.Artifact
	fixup artifact.Artifact
}

// NewDriver creates a Driver. java is the launcher command for the
// formatter jar.
func NewDriver(logger *slog.Logger, source ArtifactSource, runner Runner,
	java string, jar, fixup artifact.Artifact,
) *Driver {
	return &Driver{
		logger: logger.With("component", "driver"),
		source: source,
		runner: runner,
		java:   java,
		jar:    jar,
		fixup:  fixup,
	}
}

// Format runs the full pipeline over args, which may mix file paths with
// formatter options. Files are rewritten in place.
//
// The formatter's exit status is informational only: it can exit non-zero
// without having touched any file, and the fixup pass must still run. The
// fixup's exit status is authoritative and propagates verbatim.
func (d *Driver) Format(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return &UsageError{}
	}

	jarPath, err := d.source.Resolve(ctx, d.jar)
	if err != nil {
		return err
	}
	fixupPath, err := d.source.Resolve(ctx, d.fixup)
	if err != nil {
		return err
	}
	d.logger.Debug("artifacts resolved", "jar", jarPath, "fixup", fixupPath)

	fmtArgs := append([]string{"-jar", jarPath, flagReplace, flagSortImports}, args...)
	status, err := d.runner.Run(ctx, d.java, fmtArgs...)
	if err != nil {
		return fmt.Errorf("running formatter: %w", err)
	}
	if status != 0 {
		d.logger.Warn("formatter exited non-zero, continuing with fixup", "status", status)
	}

	files := FilterFlags(args)
	if len(files) == 0 {
		d.logger.Debug("no files after removing formatter options, skipping fixup")
		return nil
	}

	status, err = d.runner.Run(ctx, fixupPath, files...)
	if err != nil {
		return fmt.Errorf("running fixup: %w", err)
	}
	if status != 0 {
		return &FixupError{Status: status}
	}
	return nil
}

// Check runs the formatter in dry-run mode and reports whether any of the
// files would be rewritten. No file is modified and the fixup pass is not
// involved.
func (d *Driver) Check(ctx context.Context, files []string) error {
	if len(files) == 0 {
		return &UsageError{}
	}

	jarPath, err := d.source.Resolve(ctx, d.jar)
	if err != nil {
		return err
	}

	args := append([]string{"-jar", jarPath, flagDryRun, flagExitOnChange}, files...)
	status, err := d.runner.Run(ctx, d.java, args...)
	if err != nil {
		return fmt.Errorf("running formatter: %w", err)
	}
	if status != 0 {
		return &CheckError{Status: status}
	}
	return nil
}
