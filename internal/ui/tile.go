package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/morikazuSuma/symbol-grounding/internal/model"
)

// Tile shows one grid cell's cover image. The wall is purely visual, so a
// tile renders no text at rest; it fires the activation callback when tapped.
// Refreshes crossfade: the incoming cover is stacked over the old one fully
// transparent, both fade over the configured duration, then the old cover
// is dropped. The stack keeps the cell's footprint, so nothing shifts.
type Tile struct {
	widget.BaseWidget

	item     model.Item
	fade     time.Duration
	onTapped func(model.Item)

	current  *canvas.Image
	incoming *canvas.Image
}

// NewTile creates an empty tile.
func NewTile(fade time.Duration, onTapped func(model.Item)) *Tile {
	t := &Tile{
		fade:     fade,
		onTapped: onTapped,
	}
	t.ExtendBaseWidget(t)
	return t
}

// Item returns the item the tile currently represents.
func (t *Tile) Item() model.Item {
	return t.item
}

// SetItem swaps the tile to a new item and cover. With animate the covers
// crossfade; without, the new cover appears on the next paint.
func (t *Tile) SetItem(item model.Item, res fyne.Resource, animate bool) {
	t.item = item

	img := canvas.NewImageFromResource(res)
	img.FillMode = canvas.ImageFillContain

	if !animate || t.current == nil {
		t.current = img
		t.incoming = nil
		t.Refresh()
		return
	}

	old := t.current
	img.Translucency = 1
	t.incoming = img
	t.Refresh()

	anim := fyne.NewAnimation(t.fade, func(p float32) {
		old.Translucency = float64(p)
		img.Translucency = float64(1 - p)
		canvas.Refresh(old)
		canvas.Refresh(img)

		if p >= 1 {
			// Fade finished: promote the incoming cover and drop the old one.
			t.current = img
			t.incoming = nil
			t.Refresh()
		}
	})
	anim.Curve = fyne.AnimationEaseInOut
	anim.Start()
}

// Tapped implements fyne.Tappable.
func (t *Tile) Tapped(_ *fyne.PointEvent) {
	if t.onTapped != nil && t.item.ID != "" {
		t.onTapped(t.item)
	}
}

// CreateRenderer creates the widget renderer
func (t *Tile) CreateRenderer() fyne.WidgetRenderer {
	return &tileRenderer{tile: t}
}

// tileRenderer stacks the current and incoming covers over the full cell.
type tileRenderer struct {
	tile *Tile
}

// Layout arranges the components
func (r *tileRenderer) Layout(size fyne.Size) {
	for _, obj := range r.Objects() {
		obj.Resize(size)
		obj.Move(fyne.NewPos(0, 0))
	}
}

// MinSize returns the minimum size
func (r *tileRenderer) MinSize() fyne.Size {
	return fyne.NewSize(TileMinWidth, TileMinHeight)
}

// Refresh refreshes the renderer
func (r *tileRenderer) Refresh() {
	for _, obj := range r.Objects() {
		obj.Refresh()
	}
}

// Objects returns the stacked covers
func (r *tileRenderer) Objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, 2)
	if r.tile.current != nil {
		objects = append(objects, r.tile.current)
	}
	if r.tile.incoming != nil {
		objects = append(objects, r.tile.incoming)
	}
	return objects
}

// Destroy cleans up the renderer
func (r *tileRenderer) Destroy() {}
