package model

// Package model defines the domain data structures shared across the app:
// wishlist items, their detail dialog payloads, and grid cells. Items are
// immutable once loaded; cells keep their grid position for the window's
// lifetime and only their assigned item changes.
