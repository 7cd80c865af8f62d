// Command update-wishlist refreshes the gallery catalog from the Amazon
// wishlist: it scrapes the list, downloads new covers, rewrites data.json,
// and optionally publishes the result with git.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/morikazuSuma/symbol-grounding/internal/wishlist"
)

func main() {
	url := flag.String("url", wishlist.DefaultWishlistURL, "wishlist page URL")
	dir := flag.String("dir", ".", "catalog directory (holds data.json and images/)")
	push := flag.Bool("push", false, "commit and push the refreshed catalog")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	updater := wishlist.NewUpdater(*url, *dir)
	items, err := updater.Run(ctx)
	if err != nil {
		log.Fatalf("Wishlist update failed: %v", err)
	}
	log.Printf("Catalog now holds %d items", len(items))

	if *push {
		if err := wishlist.Publish(ctx, *dir); err != nil {
			log.Fatalf("Publish failed: %v", err)
		}
	}
}
