package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/morikazuSuma/symbol-grounding/internal/model"
)

// GridView is the wall itself: a fixed-column grid of tiles. Tiles are
// created once and keep their position; refreshes only swap their covers.
type GridView struct {
	tiles []*Tile
	box   *fyne.Container
}

// NewGridView creates a grid of cellCount empty tiles laid out in the
// given column count.
func NewGridView(columns, cellCount int, fade time.Duration, onActivate func(model.Item)) *GridView {
	gv := &GridView{
		tiles: make([]*Tile, cellCount),
		box:   container.NewGridWithColumns(columns),
	}
	for i := range gv.tiles {
		tile := NewTile(fade, onActivate)
		gv.tiles[i] = tile
		gv.box.Add(tile)
	}
	return gv
}

// Container returns the renderable grid.
func (gv *GridView) Container() *fyne.Container {
	return gv.box
}

// Len returns the number of tiles.
func (gv *GridView) Len() int {
	return len(gv.tiles)
}

// Tile returns the tile at a cell index, or nil when out of range.
func (gv *GridView) Tile(index int) *Tile {
	if index < 0 || index >= len(gv.tiles) {
		return nil
	}
	return gv.tiles[index]
}
