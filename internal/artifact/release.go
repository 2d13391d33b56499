package artifact

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// ReleasesURL is the GitHub API endpoint describing the newest formatter release.
const ReleasesURL = "https://api.github.com/repos/google/google-java-format/releases/latest"

// Release describes a published formatter release.
type Release struct {
	Tag      string // e.g. "google-java-format-1.0"
	AssetURL string // download URL of the all-deps jar, if published
}

// Version strips the release tag down to the bare version number.
func (r Release) Version() string {
	return strings.TrimPrefix(r.Tag, "google-java-format-")
}

// LatestRelease queries the GitHub releases API for the newest formatter
// release. Callers treat failure as advisory: staleness reporting must not
// require a network connection.
func LatestRelease(ctx context.Context, client *http.Client, url string) (Release, error) {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Release{}, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := client.Do(req)
	if err != nil {
		return Release{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Release{}, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Release{}, err
	}

	return parseRelease(body)
}

func parseRelease(body []byte) (Release, error) {
	tag := gjson.GetBytes(body, "tag_name")
	if !tag.Exists() {
		return Release{}, fmt.Errorf("release metadata has no tag_name")
	}

	rel := Release{Tag: tag.String()}
	gjson.GetBytes(body, "assets").ForEach(func(_, asset gjson.Result) bool {
		url := asset.Get("browser_download_url").String()
		if strings.HasSuffix(url, "-all-deps.jar") {
			rel.AssetURL = url
			return false
		}
		return true
	})

	return rel, nil
}
