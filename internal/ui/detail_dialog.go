package ui

import (
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/morikazuSuma/symbol-grounding/internal/model"
	"github.com/morikazuSuma/symbol-grounding/internal/platform"
)

// Card is one labeled content block in the detail overlay.
type Card struct {
	Icon  string
	Label string
	Text  string
}

// BuildCards derives the visible cards from an item's dialog payload.
// Sequence entries keep their original order and are labeled by their
// 1-based position; mapping fields appear in the fixed summary/reason/note
// order. Blank or whitespace-only entries yield no card.
func BuildCards(d model.Dialog, loc *Localization) []Card {
	var cards []Card

	switch d.Form {
	case model.DialogSequence:
		for i, section := range d.Sections {
			text := strings.TrimSpace(section)
			if text == "" {
				continue
			}
			cards = append(cards, Card{
				Icon:  IconSection,
				Label: fmt.Sprintf(loc.GetText(KeyCardSection), i+1),
				Text:  text,
			})
		}

	case model.DialogMapping:
		fields := []struct {
			icon string
			key  string
			text string
		}{
			{IconSummary, KeyCardSummary, d.Summary},
			{IconReason, KeyCardReason, d.Reason},
			{IconNote, KeyCardNote, d.Note},
		}
		for _, f := range fields {
			text := strings.TrimSpace(f.text)
			if text == "" {
				continue
			}
			cards = append(cards, Card{Icon: f.icon, Label: loc.GetText(f.key), Text: text})
		}
	}

	return cards
}

// DetailDialog is the modal overlay shown by the detail tap variant. It
// closes on the close button, a tap outside the card, or Escape; closing
// puts the previous key handler back.
type DetailDialog struct {
	window fyne.Window
	opener platform.Opener
	loc    *Localization

	overlay *fyne.Container
	prevKey func(*fyne.KeyEvent)
}

// NewDetailDialog creates the overlay controller for a window.
func NewDetailDialog(window fyne.Window, opener platform.Opener, loc *Localization) *DetailDialog {
	return &DetailDialog{
		window: window,
		opener: opener,
		loc:    loc,
	}
}

// Show builds and presents the overlay for an item. cover may be nil when
// the image has not arrived yet; the textual detail still shows.
func (dd *DetailDialog) Show(item model.Item, cover fyne.Resource) {
	dd.Hide()

	card := dd.buildCard(item, cover)
	backdrop := newOverlayBackdrop(dd.Hide)

	dd.overlay = container.NewStack(backdrop, container.NewCenter(newTapCatcher(card)))
	dd.window.Canvas().Overlays().Add(dd.overlay)

	// Escape closes; everything else goes to whoever listened before.
	c := dd.window.Canvas()
	dd.prevKey = c.OnTypedKey()
	c.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			dd.Hide()
			return
		}
		if dd.prevKey != nil {
			dd.prevKey(ev)
		}
	})
}

// Hide removes the overlay and restores the previous Escape handling.
func (dd *DetailDialog) Hide() {
	if dd.overlay == nil {
		return
	}

	c := dd.window.Canvas()
	c.SetOnTypedKey(dd.prevKey)
	dd.prevKey = nil

	c.Overlays().Remove(dd.overlay)
	dd.overlay = nil
}

// Visible reports whether the overlay is currently shown.
func (dd *DetailDialog) Visible() bool {
	return dd.overlay != nil
}

// buildCard assembles the overlay content for one item.
func (dd *DetailDialog) buildCard(item model.Item, cover fyne.Resource) fyne.CanvasObject {
	var coverImage fyne.CanvasObject
	if cover != nil {
		img := canvas.NewImageFromResource(cover)
		img.FillMode = canvas.ImageFillContain
		img.SetMinSize(fyne.NewSize(DetailCoverWidth, DetailCoverHeight))
		coverImage = img
	} else {
		spacer := canvas.NewRectangle(OverlayDimColor)
		spacer.SetMinSize(fyne.NewSize(DetailCoverWidth, DetailCoverHeight))
		coverImage = spacer
	}

	titleLabel := widget.NewLabel(item.DisplayTitle())
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	titleLabel.Wrapping = fyne.TextWrapWord
	titleLabel.Alignment = fyne.TextAlignCenter

	meta := container.NewVBox(container.NewCenter(coverImage), titleLabel)
	if byline := dd.byline(item); byline != "" {
		bylineLabel := widget.NewLabel(byline)
		bylineLabel.Alignment = fyne.TextAlignCenter
		meta.Add(bylineLabel)
	}

	body := container.NewVBox(meta)
	for _, card := range BuildCards(item.Dialog, dd.loc) {
		header := widget.NewLabel(card.Icon + " " + card.Label)
		header.TextStyle = fyne.TextStyle{Bold: true}

		text := widget.NewLabel(card.Text)
		text.Wrapping = fyne.TextWrapWord

		body.Add(widget.NewSeparator())
		body.Add(header)
		body.Add(text)
	}

	openBtn := widget.NewButton(dd.loc.GetText(KeyOpenLink), func() {
		dd.openItem(item)
	})
	openBtn.Importance = widget.HighImportance

	closeBtn := widget.NewButton(IconClose, dd.Hide)
	closeBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil, nil, closeBtn)
	scroll := container.NewVScroll(body)

	content := container.NewBorder(header, openBtn, nil, nil, scroll)

	bg := canvas.NewRectangle(CardBackgroundColor)
	card := container.NewStack(bg, container.NewPadded(content))
	card.Resize(fyne.NewSize(DetailDialogWidth, DetailDialogHeight))
	return card
}

// byline joins author and publisher, skipping whichever is unset.
func (dd *DetailDialog) byline(item model.Item) string {
	var parts []string
	if strings.TrimSpace(item.Author) != "" {
		parts = append(parts, dd.loc.GetText(KeyAuthorLabel)+": "+item.Author)
	}
	if strings.TrimSpace(item.Publisher) != "" {
		parts = append(parts, dd.loc.GetText(KeyPublishLabel)+": "+item.Publisher)
	}
	return strings.Join(parts, MiddleDotSeparator)
}

// openItem routes the primary action through the same opener as the
// direct-open variant.
func (dd *DetailDialog) openItem(item model.Item) {
	if item.URL == "" {
		log.Printf("Item %s has no URL to open", item.ID)
		return
	}
	if err := dd.opener.OpenURL(item.URL); err != nil {
		log.Printf("Error opening URL for item %s: %v", item.ID, err)
	}
}

// overlayBackdrop dims the wall and closes the overlay when tapped.
type overlayBackdrop struct {
	widget.BaseWidget
	onTapped func()
}

func newOverlayBackdrop(onTapped func()) *overlayBackdrop {
	b := &overlayBackdrop{onTapped: onTapped}
	b.ExtendBaseWidget(b)
	return b
}

// Tapped implements fyne.Tappable.
func (b *overlayBackdrop) Tapped(_ *fyne.PointEvent) {
	if b.onTapped != nil {
		b.onTapped()
	}
}

// CreateRenderer creates the widget renderer
func (b *overlayBackdrop) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(OverlayDimColor))
}

// tapCatcher swallows taps so clicks inside the card never reach the
// backdrop underneath.
type tapCatcher struct {
	widget.BaseWidget
	content fyne.CanvasObject
}

func newTapCatcher(content fyne.CanvasObject) *tapCatcher {
	tc := &tapCatcher{content: content}
	tc.ExtendBaseWidget(tc)
	return tc
}

// Tapped implements fyne.Tappable.
func (tc *tapCatcher) Tapped(_ *fyne.PointEvent) {}

// CreateRenderer creates the widget renderer
func (tc *tapCatcher) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(tc.content)
}
