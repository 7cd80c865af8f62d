package catalog

// Package catalog loads the item list and cover images from the data
// source. The catalog is fetched exactly once per session; a failed load is
// terminal and leaves the gallery blank.
