// Package gdrive mirrors images hosted on Google Drive into a local asset
// folder so the generated page never references the Drive viewer directly.
package gdrive

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/natefinch/atomic"
	"github.com/rs/zerolog/log"
)

const downloadBaseURL = "https://drive.google.com/uc?export=download&id="

// The share-link formats Drive hands out, tried in order. The first match
// wins.
var fileIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`/d/([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`id=([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`/file/d/([a-zA-Z0-9_-]+)`),
}

// IsDriveURL reports whether url points at one of the known Drive hosting
// domains. Plain external URLs and already-local images/ paths are not
// mirrored.
func IsDriveURL(url string) bool {
	return strings.Contains(url, "drive.google.com") || strings.Contains(url, "googleusercontent.com")
}

// ExtractFileID pulls the opaque file identifier out of a Drive share link.
// Returns "" when no known format matches.
func ExtractFileID(url string) string {
	for _, pattern := range fileIDPatterns {
		if m := pattern.FindStringSubmatch(url); m != nil {
			return m[1]
		}
	}
	return ""
}

// Mirror downloads Drive-hosted files into a local directory.
type Mirror struct {
	httpClient *http.Client
	dir        string
	baseURL    string
}

// NewMirror returns a Mirror writing into dir (normally "images").
func NewMirror(dir string) *Mirror {
	return &Mirror{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		dir:     dir,
		baseURL: downloadBaseURL,
	}
}

// Download fetches a Drive file by ID and writes it to <dir>/<localName>.
// The write is atomic so a failed download never leaves a truncated image
// behind for the page to reference.
func (m *Mirror) Download(ctx context.Context, fileID, localName string) error {
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s directory: %w", m.dir, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL+fileID, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("download request failed with status %d: %s", resp.StatusCode, string(body))
	}

	path := filepath.Join(m.dir, localName)
	if err := atomic.WriteFile(path, resp.Body); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	log.Info().Str("file", path).Msg("Downloaded image")
	return nil
}

// Resolve turns an image reference from the sheet into the reference the
// page should use. Empty stays empty; local images/ paths and non-Drive
// URLs pass through untouched; Drive URLs are mirrored and rewritten to
// images/<defaultName>, or dropped to "" when extraction or the download
// fails. Failures are logged, never propagated.
func (m *Mirror) Resolve(ctx context.Context, url, defaultName string) string {
	if url == "" {
		return ""
	}
	if strings.HasPrefix(url, "images/") {
		return url
	}
	if !IsDriveURL(url) {
		return url
	}

	fileID := ExtractFileID(url)
	if fileID == "" {
		log.Warn().Str("url", url).Msg("Could not extract file ID from Drive URL")
		return ""
	}

	if err := m.Download(ctx, fileID, defaultName); err != nil {
		log.Error().Err(err).Str("file", defaultName).Msg("Failed to download image")
		return ""
	}
	return "images/" + defaultName
}
