package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle      = "app_title"
	KeySettings      = "settings"
	KeyFile          = "file"
	KeyLanguage      = "language"
	KeySave          = "save"
	KeyCancel        = "cancel"
	KeyOpenLink      = "open_link"
	KeyAuthorLabel   = "author_label"
	KeyPublishLabel  = "publisher_label"
	KeyDataSource    = "data_source"
	KeyClickBehavior = "click_behavior"
	KeyClickOpen     = "click_open"
	KeyClickDetail   = "click_detail"
	KeySettingsSaved = "settings_saved"
	KeyCardSummary   = "card_summary"
	KeyCardReason    = "card_reason"
	KeyCardNote      = "card_note"
	KeyCardSection   = "card_section" // format, takes the 1-based position
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "ja",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// The wishlist and its audience are Japanese
		lang = "ja"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to Japanese
	if texts, exists := l.texts["ja"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"ja": "日本語",
		"en": "English",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// Japanese texts
	l.texts["ja"] = map[string]string{
		KeyAppTitle:      "記号接地待ち",
		KeySettings:      "設定",
		KeyFile:          "ファイル",
		KeyLanguage:      "言語",
		KeySave:          "保存",
		KeyCancel:        "キャンセル",
		KeyOpenLink:      "Amazonで開く",
		KeyAuthorLabel:   "著者",
		KeyPublishLabel:  "出版社",
		KeyDataSource:    "データソースURL",
		KeyClickBehavior: "タップ時の動作",
		KeyClickOpen:     "リンクを開く",
		KeyClickDetail:   "詳細を表示",
		KeySettingsSaved: "設定を保存しました",
		KeyCardSummary:   "あらすじ",
		KeyCardReason:    "きっかけ",
		KeyCardNote:      "メモ",
		KeyCardSection:   "その%d",
	}

	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:      "Awaiting Symbol Grounding",
		KeySettings:      "Settings",
		KeyFile:          "File",
		KeyLanguage:      "Language",
		KeySave:          "Save",
		KeyCancel:        "Cancel",
		KeyOpenLink:      "Open on Amazon",
		KeyAuthorLabel:   "Author",
		KeyPublishLabel:  "Publisher",
		KeyDataSource:    "Data source URL",
		KeyClickBehavior: "Tap behavior",
		KeyClickOpen:     "Open the link",
		KeyClickDetail:   "Show details",
		KeySettingsSaved: "Settings saved",
		KeyCardSummary:   "Summary",
		KeyCardReason:    "Why it's here",
		KeyCardNote:      "Note",
		KeyCardSection:   "Part %d",
	}
}
