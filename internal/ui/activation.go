package ui

import (
	"log"

	"fyne.io/fyne/v2"

	"github.com/morikazuSuma/symbol-grounding/internal/model"
	"github.com/morikazuSuma/symbol-grounding/internal/platform"
)

// Activation decides what happens when the user taps a tile. The two
// deployment variants implement it; a deployment wires exactly one.
type Activation interface {
	Activate(item model.Item)
}

// DirectOpen opens the tapped item's store URL immediately.
type DirectOpen struct {
	Opener platform.Opener
}

// Activate implements Activation.
func (d DirectOpen) Activate(item model.Item) {
	if item.URL == "" {
		log.Printf("Item %s has no URL to open", item.ID)
		return
	}
	if err := d.Opener.OpenURL(item.URL); err != nil {
		log.Printf("Error opening URL for item %s: %v", item.ID, err)
	}
}

// ShowDetail presents the detail overlay for the tapped item. Cover is
// looked up from the session cache; the overlay renders without an image
// when the cover has not arrived yet.
type ShowDetail struct {
	Dialog *DetailDialog
	Cover  func(model.Item) fyne.Resource
}

// Activate implements Activation.
func (s ShowDetail) Activate(item model.Item) {
	var cover fyne.Resource
	if s.Cover != nil {
		cover = s.Cover(item)
	}
	s.Dialog.Show(item, cover)
}
