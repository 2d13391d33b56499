// Package artifact locates the driver's external dependencies, downloading
// them on first use.
package artifact

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/plumekit/gjf/internal/fsh"
)

// Artifact describes a downloadable dependency.
type Artifact struct {
	// Name is the file name the artifact is stored under locally.
	Name string
	// URL is the fixed download location used when no local copy exists.
	URL string
	// Path, when set, pins the artifact to an explicit file and disables
	// both the directory probe and the download.
	Path string
	// Executable marks artifacts that must carry execute permission bits
	// after download (the fixup script).
	Executable bool
}

// Fetch downloads url to dest. It is injectable so tests can substitute a
// stub without network access.
type Fetch func(ctx context.Context, url, dest string) error

// DownloadError reports a failed artifact fetch. It is fatal to the driver.
type DownloadError struct {
	URL     string
	Wrapped error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download of %s failed: %v", e.URL, e.Wrapped)
}

func (e *DownloadError) Unwrap() error {
	return e.Wrapped
}

// Resolver locates artifacts in an ordered list of candidate directories,
// falling back to a download into the first directory.
type Resolver struct {
	dirs   []string
	fetch  Fetch
	logger *slog.Logger
}

// NewResolver creates a Resolver probing dirs in order. fetch may be nil,
// in which case the default HTTP fetcher is used.
func NewResolver(dirs []string, fetch Fetch, logger *slog.Logger) *Resolver {
	if fetch == nil {
		fetch = HTTPFetcher(nil)
	}
	return &Resolver{
		dirs:   dirs,
		fetch:  fetch,
		logger: logger.With("component", "artifact"),
	}
}

// Resolve returns a local path for the artifact. A pinned path must exist;
// otherwise the candidate directories are probed in order and the first hit
// wins without any network access. On a miss the artifact is downloaded to
// the first candidate directory.
func (r *Resolver) Resolve(ctx context.Context, a Artifact) (string, error) {
	if a.Path != "" {
		if !fsh.IsFile(a.Path) {
			return "", fmt.Errorf("pinned artifact %s not found at %s", a.Name, a.Path)
		}
		return a.Path, nil
	}

	for _, dir := range r.dirs {
		p := filepath.Join(dir, a.Name)
		if fsh.IsFile(p) {
			r.logger.Debug("artifact found", "name", a.Name, "path", p)
			return p, nil
		}
	}

	if len(r.dirs) == 0 {
		return "", fmt.Errorf("no candidate directories configured for %s", a.Name)
	}

	dest := filepath.Join(r.dirs[0], a.Name)
	if err := os.MkdirAll(r.dirs[0], 0o755); err != nil {
		return "", &DownloadError{URL: a.URL, Wrapped: err}
	}

	r.logger.Info("downloading artifact", "name", a.Name, "url", a.URL, "dest", dest)
	if err := r.fetch(ctx, a.URL, dest); err != nil {
		return "", &DownloadError{URL: a.URL, Wrapped: err}
	}

	if a.Executable {
		if err := markExecutable(dest); err != nil {
			return "", err
		}
	}

	return dest, nil
}

// markExecutable adds execute permission for owner, group and other,
// the moral equivalent of "chmod +x".
func markExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.Chmod(path, info.Mode()|0o111)
}
