package ui

// Package ui renders the gallery: the grid of cover tiles, the crossfade on
// refresh, and the two tap variants (direct open and detail overlay).
