// Package wishlist builds the gallery's catalog from an Amazon wishlist.
// It scrapes the public wishlist page, downloads cover images, and writes
// the data.json file the gallery app loads at startup.
package wishlist
