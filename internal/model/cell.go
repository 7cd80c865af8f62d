package model

import "github.com/google/uuid"

// Cell is one positional slot in the gallery grid. Cells are created once
// when the grid is populated and are never destroyed before the window
// closes; only the item assigned to a cell changes over time.
type Cell struct {
	ID    string
	Index int
}

// NewCell creates a cell for the given grid position.
func NewCell(index int) Cell {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the entropy source does
		return Cell{ID: uuid.NewString(), Index: index}
	}
	return Cell{ID: id.String(), Index: index}
}
