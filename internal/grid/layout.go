package grid

import "math"

// Viewport breakpoints for the three device classes.
const (
	NarrowMaxWidth float32 = 600
	MediumMaxWidth float32 = 1200
)

// Column counts per device class.
const (
	NarrowColumns = 3
	MediumColumns = 8
	WideColumns   = 14
)

// CellHeightRatio fixes the tile aspect: covers are portrait, so a cell is
// half again as tall as it is wide.
const CellHeightRatio float32 = 1.5

// OverscanRows is the extra row appended below the visible area so the wall
// never shows a gap along the bottom edge.
const OverscanRows = 1

// Layout is the computed grid geometry for one viewport.
type Layout struct {
	Columns    int
	Rows       int
	CellWidth  float32
	CellHeight float32
}

// Columns returns the column count for a viewport width.
func Columns(width float32) int {
	switch {
	case width <= NarrowMaxWidth:
		return NarrowColumns
	case width <= MediumMaxWidth:
		return MediumColumns
	default:
		return WideColumns
	}
}

// ComputeLayout derives the full grid geometry for a viewport. The viewport
// is read once at initialization; the grid is not re-laid-out on resize.
func ComputeLayout(width, height float32) Layout {
	cols := Columns(width)
	cellWidth := width / float32(cols)
	cellHeight := cellWidth * CellHeightRatio
	rows := int(math.Ceil(float64(height/cellHeight))) + OverscanRows
	return Layout{
		Columns:    cols,
		Rows:       rows,
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
	}
}

// CellCount returns the number of cells the layout holds.
func (l Layout) CellCount() int {
	return l.Columns * l.Rows
}

// CellCount returns how many cells fill the given viewport, overscan included.
func CellCount(width, height float32) int {
	return ComputeLayout(width, height).CellCount()
}
