package ui

import (
	"context"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/morikazuSuma/symbol-grounding/internal/catalog"
	"github.com/morikazuSuma/symbol-grounding/internal/config"
	"github.com/morikazuSuma/symbol-grounding/internal/grid"
	"github.com/morikazuSuma/symbol-grounding/internal/model"
	"github.com/morikazuSuma/symbol-grounding/internal/platform"
)

// RootUI wires the whole gallery: one catalog load, one session, one
// refresh scheduler, one activation strategy. When the load fails the
// window simply stays blank (no banner, no spinner, no retry) and the
// scheduler is never started.
type RootUI struct {
	window     fyne.Window
	app        fyne.App
	settings   *config.Settings
	loc        *Localization
	catalog    *catalog.Client
	activation Activation

	grid      *GridView
	session   *grid.Session
	scheduler *grid.Scheduler

	// closed once the initial catalog load has settled, either way
	ready chan struct{}
}

// NewRootUI creates the gallery UI and kicks off the asynchronous load.
// bridge is the optional host openURL channel; pass nil outside embedded
// deployments.
func NewRootUI(window fyne.Window, app fyne.App, client *catalog.Client, bridge func(string) error) *RootUI {
	settings := config.NewSettings(app)

	loc := NewLocalization()
	loc.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:   window,
		app:      app,
		settings: settings,
		loc:      loc,
		catalog:  client,
		ready:    make(chan struct{}),
	}

	opener := platform.NewOpener(bridge, app)
	ui.activation = ui.buildActivation(opener)

	window.SetTitle(loc.GetText(KeyAppTitle))
	// Blank until the load succeeds; blank forever when it doesn't.
	window.SetContent(container.NewWithoutLayout())
	ui.createMenu()

	go ui.initialize()
	return ui
}

// buildActivation picks the deployment's tap variant.
func (ui *RootUI) buildActivation(opener platform.Opener) Activation {
	switch ui.settings.GetClickBehavior() {
	case config.ClickShowsDetail:
		return ShowDetail{
			Dialog: NewDetailDialog(ui.window, opener, ui.loc),
			Cover: func(item model.Item) fyne.Resource {
				res, _ := ui.catalog.CachedImage(item)
				return res
			},
		}
	default:
		return DirectOpen{Opener: opener}
	}
}

// initialize performs the one-shot catalog load and populates the grid.
// The viewport is read once here; the grid is not re-laid-out on resize.
func (ui *RootUI) initialize() {
	defer close(ui.ready)

	ctx, cancel := context.WithTimeout(context.Background(), catalog.DefaultLoadTimeout)
	defer cancel()

	items, err := ui.catalog.Load(ctx)
	if err != nil {
		// Defined degraded state: blank wall, operator log only.
		log.Printf("Catalog load failed, leaving the gallery blank: %v", err)
		return
	}

	size := ui.window.Canvas().Size()
	layout := grid.ComputeLayout(size.Width, size.Height)
	session := grid.NewSession(items, layout.CellCount(), nil)

	log.Printf("Catalog loaded: items=%d columns=%d rows=%d cells=%d",
		len(items), layout.Columns, layout.Rows, session.Len())

	fyne.Do(func() {
		ui.session = session
		ui.grid = NewGridView(layout.Columns, session.Len(), config.FadeDuration, ui.onTileActivated)
		for i := 0; i < session.Len(); i++ {
			ui.populateTile(i, session.ItemAt(i), false)
		}
		ui.window.SetContent(ui.grid.Container())
	})

	ui.scheduler = grid.NewScheduler(session, config.RefreshInterval, config.ReplaceCount, ui.onRefreshTick)
	ui.scheduler.Start()
}

// populateTile fetches the cover in the background and applies it to the
// cell. A failed cover fetch leaves the tile as it was.
func (ui *RootUI) populateTile(index int, item model.Item, animate bool) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), catalog.DefaultImageTimeout)
		defer cancel()

		res, err := ui.catalog.ImageResource(ctx, item)
		if err != nil {
			log.Printf("Cover fetch failed for item %s: %v", item.ID, err)
			return
		}

		fyne.Do(func() {
			if tile := ui.grid.Tile(index); tile != nil {
				tile.SetItem(item, res, animate)
			}
		})
	}()
}

// onRefreshTick applies scheduler picks to the wall. Picks land on
// disjoint cells, so a tap racing a refresh only ever sees the tile's
// already-captured item.
func (ui *RootUI) onRefreshTick(picks []grid.Pick) {
	for _, pick := range picks {
		ui.populateTile(pick.Cell.Index, pick.Item, true)
	}
}

// onTileActivated runs the deployment's tap variant.
func (ui *RootUI) onTileActivated(item model.Item) {
	if ui.activation != nil {
		ui.activation.Activate(item)
	}
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.loc.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.loc.GetText(KeyLanguage))
	for code, name := range ui.loc.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.loc.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.loc.GetText(KeyFile), settingsItem),
		languageMenu,
	)
	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.loc.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.window.SetTitle(ui.loc.GetText(KeyAppTitle))

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.loc, func() {
		log.Printf("Settings saved; data source and tap behavior apply on next start")
	})
}
