package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plumekit/gjf/internal/artifact"
	"github.com/plumekit/gjf/internal/config"
)

type stubSource struct {
	mu    sync.Mutex
	names []string
	err   error
}

func (s *stubSource) Resolve(_ context.Context, a artifact.Artifact) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.names = append(s.names, a.Name)
	if s.err != nil {
		return "", s.err
	}
	return "/cache/" + a.Name, nil
}

type stubRunner struct {
	calls int
}

func (r *stubRunner) Run(_ context.Context, _ string, _ ...string) (int, error) {
	r.calls++
	return 0, nil
}

func newTestManager(source *stubSource) (*CLIManager, *stubRunner, *bytes.Buffer) {
	var logBuf bytes.Buffer
	level := &slog.LevelVar{}
	logger := slog.New(&consoleHandler{w: &logBuf, level: level})
	runner := &stubRunner{}
	cfg := config.Default()
	cfg.CacheDirs = []string{"/cache"}
	return NewCLIManager(logger, cfg, source, runner), runner, &logBuf
}

func TestCLIManagerFormat(t *testing.T) {
	t.Parallel()

	source := &stubSource{}
	mgr, runner, _ := newTestManager(source)

	require.NoError(t, mgr.Format(context.Background(), []string{"A.java"}))
	assert.Equal(t, []string{config.JarName, config.FixupName}, source.names)
	assert.Equal(t, 2, runner.calls)
}

func TestCLIManagerCheck(t *testing.T) {
	t.Parallel()

	source := &stubSource{}
	mgr, runner, _ := newTestManager(source)

	require.NoError(t, mgr.Check(context.Background(), []string{"A.java"}))
	assert.Equal(t, []string{config.JarName}, source.names)
	assert.Equal(t, 1, runner.calls)
}

func TestCLIManagerFetch(t *testing.T) {
	t.Parallel()

	t.Run("resolves both artifacts", func(t *testing.T) {
		t.Parallel()
		source := &stubSource{}
		mgr, runner, _ := newTestManager(source)

		require.NoError(t, mgr.Fetch(context.Background(), false))
		assert.ElementsMatch(t, []string{config.JarName, config.FixupName}, source.names)
		assert.Zero(t, runner.calls, "fetch runs no subprocess")
	})

	t.Run("propagates resolution failure", func(t *testing.T) {
		t.Parallel()
		source := &stubSource{err: errors.New("network down")}
		mgr, _, _ := newTestManager(source)
		require.Error(t, mgr.Fetch(context.Background(), false))
	})

	t.Run("latest reports a newer release", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `{
				"tag_name": "google-java-format-9.9",
				"assets": [{"browser_download_url": "https://example.com/google-java-format-9.9-all-deps.jar"}]
			}`)
		}))
		defer srv.Close()

		mgr, _, logBuf := newTestManager(&stubSource{})
		mgr.releasesURL = srv.URL

		require.NoError(t, mgr.Fetch(context.Background(), true))
		assert.Contains(t, logBuf.String(), "newer formatter release available")
	})

	t.Run("latest check failure is advisory", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "rate limited", http.StatusForbidden)
		}))
		defer srv.Close()

		mgr, _, logBuf := newTestManager(&stubSource{})
		mgr.releasesURL = srv.URL

		require.NoError(t, mgr.Fetch(context.Background(), true))
		assert.Contains(t, logBuf.String(), "release check skipped")
	})
}

func TestCLIManagerWatch(t *testing.T) {
	t.Parallel()

	t.Run("cancellation is a clean stop", func(t *testing.T) {
		t.Parallel()
		mgr, _, _ := newTestManager(&stubSource{})
		dir := t.TempDir()

		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() {
			errCh <- mgr.Watch(ctx, []string{dir})
		}()
		cancel()
		require.NoError(t, <-errCh)
	})

	t.Run("missing path is an error", func(t *testing.T) {
		t.Parallel()
		mgr, _, _ := newTestManager(&stubSource{})
		require.Error(t, mgr.Watch(context.Background(), []string{"/no/such/dir"}))
	})
}
