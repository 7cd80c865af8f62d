package config

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"
)

// ClickBehavior selects what tapping a tile does. The two variants are
// mutually exclusive per deployment.
type ClickBehavior string

const (
	// ClickOpensURL opens the item's store page immediately
	ClickOpensURL ClickBehavior = "open"

	// ClickShowsDetail presents the detail overlay first
	ClickShowsDetail ClickBehavior = "detail"
)

// Settings keys for Fyne preferences
const (
	KeyDataSourceURL = "data_source_url"
	KeyClickBehavior = "click_behavior"
	KeyLanguage      = "app_language"
)

// Default values
const (
	DefaultDataSourceURL = "https://morikazusuma.github.io/symbol-grounding/"
	DefaultClickBehavior = ClickOpensURL
	DefaultLanguage      = "system"
)

// Display constants. These define the product's look and cadence; they are
// deployment constants, not user settings.
const (
	// RefreshInterval is how often the wall swaps cells
	RefreshInterval = 500 * time.Millisecond

	// ReplaceCount is how many cells change per tick
	ReplaceCount = 1

	// FadeDuration is the tile crossfade length
	FadeDuration = 600 * time.Millisecond
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDataSourceURL returns the base URL the catalog and covers are fetched from
func (s *Settings) GetDataSourceURL() string {
	u := s.app.Preferences().String(KeyDataSourceURL)
	if u == "" {
		s.SetDataSourceURL(DefaultDataSourceURL)
		return DefaultDataSourceURL
	}
	return u
}

// SetDataSourceURL sets the data source base URL
func (s *Settings) SetDataSourceURL(u string) {
	u = strings.TrimSpace(u)
	if u == "" {
		u = DefaultDataSourceURL
	}
	s.app.Preferences().SetString(KeyDataSourceURL, u)
}

// GetClickBehavior returns the configured tile tap variant
func (s *Settings) GetClickBehavior() ClickBehavior {
	behavior := ClickBehavior(s.app.Preferences().String(KeyClickBehavior))
	switch behavior {
	case ClickOpensURL, ClickShowsDetail:
		return behavior
	}
	s.SetClickBehavior(DefaultClickBehavior)
	return DefaultClickBehavior
}

// SetClickBehavior sets the tile tap variant
func (s *Settings) SetClickBehavior(behavior ClickBehavior) {
	switch behavior {
	case ClickOpensURL, ClickShowsDetail:
	default:
		behavior = DefaultClickBehavior
	}
	s.app.Preferences().SetString(KeyClickBehavior, string(behavior))
}

// GetClickBehaviorOptions returns the available tap variants
func (s *Settings) GetClickBehaviorOptions() []ClickBehavior {
	return []ClickBehavior{ClickOpensURL, ClickShowsDetail}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"ja":     "日本語",
		"en":     "English",
	}
}
