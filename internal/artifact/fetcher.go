package artifact

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const userAgent = "gjf"

// downloadTimeout bounds a single artifact download. The formatter jar is
// a few megabytes; anything slower than this has effectively failed.
const downloadTimeout = 5 * time.Minute

// HTTPFetcher returns a Fetch backed by the given HTTP client. A nil client
// gets a default with a download timeout.
func HTTPFetcher(client *http.Client) Fetch {
	if client == nil {
		client = &http.Client{Timeout: downloadTimeout}
	}

	return func(ctx context.Context, url, dest string) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		req.Header.Set("User-Agent", userAgent)

		resp, err := client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
		}

		// Write to a temp file first so a failed download never leaves a
		// truncated artifact where the next run would find it.
		tmp, err := os.CreateTemp(filepath.Dir(dest), ".gjf-download-*")
		if err != nil {
			return err
		}
		defer os.Remove(tmp.Name())

		if _, err := io.Copy(tmp, resp.Body); err != nil {
			tmp.Close()
			return err
		}
		if err := tmp.Close(); err != nil {
			return err
		}

		return os.Rename(tmp.Name(), dest)
	}
}
