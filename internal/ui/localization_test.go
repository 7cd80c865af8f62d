package ui

import "testing"

func TestLocalization_DefaultLanguage(t *testing.T) {
	loc := NewLocalization()
	if loc.GetCurrentLanguage() != "ja" {
		t.Errorf("Expected default language 'ja', got %s", loc.GetCurrentLanguage())
	}
}

func TestLocalization_SystemMapsToJapanese(t *testing.T) {
	loc := NewLocalization()
	loc.SetLanguage("en")
	loc.SetLanguage("system")
	if loc.GetCurrentLanguage() != "ja" {
		t.Errorf("Expected 'system' to resolve to 'ja', got %s", loc.GetCurrentLanguage())
	}
}

func TestLocalization_UnknownLanguageIgnored(t *testing.T) {
	loc := NewLocalization()
	loc.SetLanguage("xx")
	if loc.GetCurrentLanguage() != "ja" {
		t.Errorf("Unknown language should keep current, got %s", loc.GetCurrentLanguage())
	}
}

func TestLocalization_GetText(t *testing.T) {
	loc := NewLocalization()

	if got := loc.GetText(KeyAppTitle); got != "記号接地待ち" {
		t.Errorf("Expected Japanese app title, got %q", got)
	}

	loc.SetLanguage("en")
	if got := loc.GetText(KeyOpenLink); got != "Open on Amazon" {
		t.Errorf("Expected English open label, got %q", got)
	}

	// Unknown keys fall through to the key itself.
	if got := loc.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Expected key fallback, got %q", got)
	}
}

func TestLocalization_EveryKeyInBothLanguages(t *testing.T) {
	loc := NewLocalization()

	keys := []string{
		KeyAppTitle, KeySettings, KeyFile, KeyLanguage, KeySave, KeyCancel,
		KeyOpenLink, KeyAuthorLabel, KeyPublishLabel, KeyDataSource,
		KeyClickBehavior, KeyClickOpen, KeyClickDetail, KeySettingsSaved,
		KeyCardSummary, KeyCardReason, KeyCardNote, KeyCardSection,
	}

	for _, lang := range []string{"ja", "en"} {
		for _, key := range keys {
			if _, found := loc.texts[lang][key]; !found {
				t.Errorf("Language %s is missing key %s", lang, key)
			}
		}
	}
}
