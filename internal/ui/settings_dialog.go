package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/morikazuSuma/symbol-grounding/internal/config"
)

// ShowSettingsDialog presents the settings form. Changed values are stored
// in preferences and picked up on the next start; the running wall keeps
// its session untouched.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, loc *Localization, onSaved func()) {
	dataSourceEntry := widget.NewEntry()
	dataSourceEntry.SetText(settings.GetDataSourceURL())
	dataSourceEntry.SetPlaceHolder(config.DefaultDataSourceURL)

	behaviorLabels := map[config.ClickBehavior]string{
		config.ClickOpensURL:    loc.GetText(KeyClickOpen),
		config.ClickShowsDetail: loc.GetText(KeyClickDetail),
	}
	behaviorByLabel := make(map[string]config.ClickBehavior)
	var behaviorOptions []string
	for _, behavior := range settings.GetClickBehaviorOptions() {
		label := behaviorLabels[behavior]
		behaviorByLabel[label] = behavior
		behaviorOptions = append(behaviorOptions, label)
	}
	behaviorSelect := widget.NewSelect(behaviorOptions, nil)
	behaviorSelect.SetSelected(behaviorLabels[settings.GetClickBehavior()])

	languageByLabel := make(map[string]string)
	var languageOptions []string
	for code, name := range settings.GetLanguageOptions() {
		languageByLabel[name] = code
		languageOptions = append(languageOptions, name)
	}
	languageSelect := widget.NewSelect(languageOptions, nil)
	for name, code := range languageByLabel {
		if code == settings.GetLanguage() {
			languageSelect.SetSelected(name)
		}
	}

	form := container.NewVBox(
		widget.NewLabel(loc.GetText(KeyDataSource)),
		dataSourceEntry,

		widget.NewLabel(loc.GetText(KeyClickBehavior)),
		behaviorSelect,

		widget.NewSeparator(),

		widget.NewLabel(loc.GetText(KeyLanguage)),
		languageSelect,
	)

	d := dialog.NewCustomConfirm(
		loc.GetText(KeySettings),
		loc.GetText(KeySave),
		loc.GetText(KeyCancel),
		form,
		func(confirmed bool) {
			if !confirmed {
				return
			}

			settings.SetDataSourceURL(dataSourceEntry.Text)

			if behavior, ok := behaviorByLabel[behaviorSelect.Selected]; ok {
				settings.SetClickBehavior(behavior)
			}
			if code, ok := languageByLabel[languageSelect.Selected]; ok {
				settings.SetLanguage(code)
			}

			if onSaved != nil {
				onSaved()
			}
		},
		window,
	)

	d.Resize(fyne.NewSize(420, 320))
	d.Show()
}
