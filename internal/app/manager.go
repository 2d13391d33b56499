package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/plumekit/gjf/internal/artifact"
	"github.com/plumekit/gjf/internal/config"
	"github.com/plumekit/gjf/internal/format"
)

// Manager defines the driver's operations. Commands depend on this
// interface so tests can substitute a mock.
type Manager interface {
	// Format runs the full pipeline: formatter, filter, fixup.
	Format(ctx context.Context, args []string) error
	// Check reports files the formatter would change, modifying nothing.
	Check(ctx context.Context, files []string) error
	// Fetch resolves both artifacts ahead of time, optionally reporting
	// whether a newer formatter release exists.
	Fetch(ctx context.Context, latest bool) error
	// Watch reformats files under the given paths as they change.
	Watch(ctx context.Context, paths []string) error
}

// Ensure the interface is satisfied.
var _ Manager = (*CLIManager)(nil)

// CLIManager is the concrete implementation of the Manager interface.
type CLIManager struct {
	logger *slog.Logger
	cfg    *config.Config
	source format.ArtifactSource
	driver *format.Driver

	jar   artifact.Artifact
	fixup artifact.Artifact

	// releasesURL is swapped out in tests.
	releasesURL string
}

// NewCLIManager wires a CLIManager from resolved configuration.
func NewCLIManager(logger *slog.Logger, cfg *config.Config,
	source format.ArtifactSource, runner format.Runner,
) *CLIManager {
	jar := artifact.Artifact{
		Name: cfg.JarName(),
		URL:  cfg.JarURL,
		Path: cfg.JarPath,
	}
	fixup := artifact.Artifact{
		Name:       cfg.FixupName(),
		URL:        cfg.FixupURL,
		Path:       cfg.FixupPath,
		Executable: true,
	}

	return &CLIManager{
		logger:      logger,
		cfg:         cfg,
		source:      source,
		driver:      format.NewDriver(logger, source, runner, cfg.Java, jar, fixup),
		jar:         jar,
		fixup:       fixup,
		releasesURL: artifact.ReleasesURL,
	}
}

func (m *CLIManager) Format(ctx context.Context, args []string) error {
	return m.driver.Format(ctx, args)
}

func (m *CLIManager) Check(ctx context.Context, files []string) error {
	return m.driver.Check(ctx, files)
}

// Fetch resolves both artifacts, downloading whichever is missing. The two
// downloads run concurrently; the format pipeline itself stays sequential.
func (m *CLIManager) Fetch(ctx context.Context, latest bool) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, a := range []artifact.Artifact{m.jar, m.fixup} {
		g.Go(func() error {
			path, err := m.source.Resolve(gctx, a)
			if err != nil {
				return err
			}
			m.logger.Info("artifact ready", "name", a.Name, "path", path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if latest {
		m.reportLatest(ctx)
	}
	return nil
}

// reportLatest checks GitHub for a newer formatter release. Network trouble
// here is advisory only: the check must never fail a fetch.
func (m *CLIManager) reportLatest(ctx context.Context) {
	rel, err := artifact.LatestRelease(ctx, http.DefaultClient, m.releasesURL)
	if err != nil {
		m.logger.Warn("release check skipped", "error", err)
		return
	}

	if rel.Version() != config.GJFVersion && rel.AssetURL != "" {
		m.logger.Warn("newer formatter release available",
			"pinned", config.GJFVersion, "latest", rel.Version(), "url", rel.AssetURL)
		return
	}
	m.logger.Info("formatter release is current", "version", config.GJFVersion)
}

// Watch blocks, reformatting changed files until the context is cancelled.
func (m *CLIManager) Watch(ctx context.Context, paths []string) error {
	watcher := format.NewWatcher(m.logger)
	err := watcher.Watch(ctx, paths, func(files []string) {
		m.logger.Info("reformatting changed files", "count", len(files))
		if err := m.driver.Format(ctx, files); err != nil {
			m.logger.Error("reformat failed", "error", err)
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
