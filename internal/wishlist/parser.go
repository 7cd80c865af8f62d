package wishlist

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/morikazuSuma/symbol-grounding/internal/model"
)

// Wishlist page structure constants
const (
	// ItemLinkSelector matches the title anchor of each wishlist entry.
	ItemLinkSelector = `a[id^="itemName_"]`
	// ProductURLPrefix prefixes the relative product links found on the page.
	ProductURLPrefix = "https://www.amazon.co.jp"
)

// Thumbnail size tokens in Amazon image URLs
const (
	// FullSizeToken is the size marker substituted in for list thumbnails.
	FullSizeToken = "._SL500_."
)

var (
	asinPattern      = regexp.MustCompile(`/dp/([A-Z0-9]{10})`)
	thumbnailPattern = regexp.MustCompile(`\._S[SXY]\d+_\.`)
)

// Entry is one wishlist row: the catalog item plus the cover image URL
// scraped alongside it.
type Entry struct {
	Item     model.Item
	ImageURL string
}

// Parse extracts wishlist entries from a rendered wishlist page. Rows
// without a recognizable product code are skipped.
func Parse(r io.Reader) ([]Entry, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse wishlist page: %w", err)
	}

	var entries []Entry
	doc.Find(ItemLinkSelector).Each(func(_ int, link *goquery.Selection) {
		href, ok := link.Attr("href")
		if !ok {
			return
		}
		match := asinPattern.FindStringSubmatch(href)
		if match == nil {
			return
		}
		id := match[1]

		imageURL := ""
		if img := link.Closest("li").Find("img").First(); img.Length() > 0 {
			src, _ := img.Attr("src")
			imageURL = UpgradeThumbnail(src)
		}

		entries = append(entries, Entry{
			Item: model.Item{
				ID:    id,
				Title: strings.TrimSpace(link.Text()),
				Image: model.CoverPath(id),
				URL:   ProductURLPrefix + "/dp/" + id,
			},
			ImageURL: imageURL,
		})
	})

	if len(entries) == 0 {
		return nil, fmt.Errorf("no wishlist items found in page")
	}
	return entries, nil
}

// UpgradeThumbnail rewrites a list-size image URL to its full-size form.
// URLs without a size token pass through unchanged.
func UpgradeThumbnail(rawURL string) string {
	return thumbnailPattern.ReplaceAllString(rawURL, FullSizeToken)
}
