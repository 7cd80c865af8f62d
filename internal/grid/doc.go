package grid

// Package grid computes the gallery geometry from the viewport, owns the
// cell-to-item assignments for one session, and drives the periodic partial
// refresh that keeps the wall of covers slowly changing.
