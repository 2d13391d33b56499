package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/plumekit/gjf/internal/artifact"
	"github.com/plumekit/gjf/internal/config"
	"github.com/plumekit/gjf/internal/format"
	"github.com/plumekit/gjf/internal/fsh"
)

// Run is the composition root: it resolves configuration, wires the
// dependencies and executes the command line. envProvider may be nil, in
// which case the real environment is used.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, envProvider fsh.EnvProvider) error {
	logLevel := &slog.LevelVar{}
	logLevel.Set(slog.LevelInfo)

	if envProvider == nil {
		envProvider = fsh.NewEnvProvider()
	}

	cfg, err := config.Load(envProvider, fsh.NewPathResolver())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return err
	}
	if cfg.Debug {
		logLevel.Set(slog.LevelDebug)
	}

	logger, logCloser, err := setupLogger(stderr, logLevel, envProvider)
	if err != nil {
		logger.Warn("logging to file disabled", "error", err)
	}
	if logCloser != nil {
		defer logCloser.Close()
	}

	source := artifact.NewResolver(cfg.CacheDirs, nil, logger)
	runner := format.NewExecRunner(stdout, stderr)
	mgr := NewCLIManager(logger, cfg, source, runner)

	rootCmd := NewRootCmd(mgr)
	rootCmd.SetArgs(args[1:]) // Skip the program name
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Print error to stderr for script tests and CLI users (SilenceErrors is set)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return err
	}

	return nil
}

// ExitStatus maps an error returned by Run to the driver's process exit
// status. A failed fixup pass propagates its subprocess status verbatim;
// every other failure is status 1.
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		if code := coder.ExitCode(); code != 0 {
			return code
		}
	}
	return 1
}
