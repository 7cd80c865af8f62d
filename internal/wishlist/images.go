package wishlist

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/time/rate"
)

// Image download constants
const (
	// DownloadInterval spaces out image requests to stay polite.
	DownloadInterval = 500 * time.Millisecond
	// DownloadTimeout limits a single image fetch.
	DownloadTimeout = 15 * time.Second
)

// ImageFetcher downloads cover images into a local directory. Covers that
// already exist on disk are skipped, so repeated runs only fetch new items.
type ImageFetcher struct {
	dir        string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewImageFetcher creates a fetcher writing into dir.
func NewImageFetcher(dir string) *ImageFetcher {
	return &ImageFetcher{
		dir:        dir,
		httpClient: &http.Client{Timeout: DownloadTimeout},
		limiter:    rate.NewLimiter(rate.Every(DownloadInterval), 1),
	}
}

// FetchAll downloads the covers for all entries, returning the number of
// newly written files. Individual failures are logged and skipped; the
// remaining entries keep downloading.
func (f *ImageFetcher) FetchAll(ctx context.Context, entries []Entry) (int, error) {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create image directory: %w", err)
	}

	written := 0
	for _, entry := range entries {
		if entry.ImageURL == "" {
			log.Printf("No cover URL for %s, skipping", entry.Item.ID)
			continue
		}

		path := filepath.Join(f.dir, entry.Item.ID+".jpg")
		if _, err := os.Stat(path); err == nil {
			continue
		}

		if err := f.limiter.Wait(ctx); err != nil {
			return written, err
		}
		if err := f.fetch(ctx, entry.ImageURL, path); err != nil {
			log.Printf("Cover download failed for %s: %v", entry.Item.ID, err)
			continue
		}
		written++
	}
	return written, nil
}

func (f *ImageFetcher) fetch(ctx context.Context, rawURL, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("image server returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read image body: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write image file: %w", err)
	}
	return nil
}
