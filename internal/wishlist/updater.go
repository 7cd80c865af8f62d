package wishlist

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/morikazuSuma/symbol-grounding/internal/model"
)

// Updater constants
const (
	// DefaultWishlistURL is the public wishlist the catalog is built from.
	DefaultWishlistURL = "https://www.amazon.co.jp/hz/wishlist/ls/2UQ7O1570CFAX"
	// FetchTimeout limits the wishlist page request.
	FetchTimeout = 30 * time.Second
	// CommitMessage is used when publishing the refreshed catalog.
	CommitMessage = "Update wishlist data"
)

// UserAgent identifies the updater to the wishlist server. Amazon serves a
// robot-check page to the default Go client string.
const UserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// Updater refreshes the catalog: it scrapes the wishlist, downloads new
// covers, and rewrites data.json. Existing dialog content in data.json is
// preserved across runs, so hand-written notes survive a refresh.
type Updater struct {
	wishlistURL string
	dir         string
	httpClient  *http.Client
}

// NewUpdater creates an updater writing into dir.
func NewUpdater(wishlistURL, dir string) *Updater {
	return &Updater{
		wishlistURL: wishlistURL,
		dir:         dir,
		httpClient:  &http.Client{Timeout: FetchTimeout},
	}
}

// Run performs one full refresh. It returns the entries written to
// data.json.
func (u *Updater) Run(ctx context.Context) ([]model.Item, error) {
	log.Printf("Fetching wishlist: %s", u.wishlistURL)
	entries, err := u.fetchEntries(ctx)
	if err != nil {
		return nil, err
	}
	log.Printf("Parsed %d wishlist items", len(entries))

	fetcher := NewImageFetcher(filepath.Join(u.dir, model.ImageDir))
	written, err := fetcher.FetchAll(ctx, entries)
	if err != nil {
		return nil, err
	}
	log.Printf("Downloaded %d new covers", written)

	items := u.mergeExisting(entries)
	if err := WriteData(filepath.Join(u.dir, model.DataPath), items); err != nil {
		return nil, err
	}
	log.Printf("Wrote %s with %d items", model.DataPath, len(items))
	return items, nil
}

func (u *Updater) fetchEntries(ctx context.Context) ([]Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.wishlistURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch wishlist: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wishlist server returned status %d", resp.StatusCode)
	}
	return Parse(resp.Body)
}

// mergeExisting carries dialog content and metadata from the current
// data.json onto freshly scraped entries matched by ID.
func (u *Updater) mergeExisting(entries []Entry) []model.Item {
	existing := map[string]model.Item{}
	if data, err := os.ReadFile(filepath.Join(u.dir, model.DataPath)); err == nil {
		var items []model.Item
		if err := json.Unmarshal(data, &items); err == nil {
			for _, item := range items {
				existing[item.ID] = item
			}
		}
	}

	items := make([]model.Item, 0, len(entries))
	for _, entry := range entries {
		item := entry.Item
		if prev, ok := existing[item.ID]; ok {
			item.Dialog = prev.Dialog
			if prev.Author != "" {
				item.Author = prev.Author
			}
			if prev.Publisher != "" {
				item.Publisher = prev.Publisher
			}
		}
		items = append(items, item)
	}
	return items
}

// WriteData writes the catalog file with stable, human-diffable formatting.
func WriteData(path string, items []model.Item) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}
	return nil
}

// Publish commits and pushes the refreshed catalog from dir. A run with no
// changes is not an error.
func Publish(ctx context.Context, dir string) error {
	if err := runGit(ctx, dir, "add", "-A"); err != nil {
		return err
	}

	out, err := gitOutput(ctx, dir, "commit", "-m", CommitMessage)
	if err != nil {
		if strings.Contains(out, "nothing to commit") {
			log.Printf("No catalog changes to publish")
			return nil
		}
		return fmt.Errorf("git commit failed: %w: %s", err, strings.TrimSpace(out))
	}

	if err := runGit(ctx, dir, "push"); err != nil {
		return err
	}
	log.Printf("Published catalog update")
	return nil
}

func runGit(ctx context.Context, dir string, args ...string) error {
	out, err := gitOutput(ctx, dir, args...)
	if err != nil {
		return fmt.Errorf("git %s failed: %w: %s", args[0], err, strings.TrimSpace(out))
	}
	return nil
}

func gitOutput(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	return string(out), err
}
