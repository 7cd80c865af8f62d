package ui

import (
	"testing"

	"github.com/morikazuSuma/symbol-grounding/internal/model"
)

func englishLoc() *Localization {
	loc := NewLocalization()
	loc.SetLanguage("en")
	return loc
}

func TestBuildCards_SequenceSkipsBlanks(t *testing.T) {
	d := model.Dialog{
		Form:     model.DialogSequence,
		Sections: []string{"first", "", "   ", "fourth"},
	}

	cards := BuildCards(d, englishLoc())

	if len(cards) != 2 {
		t.Fatalf("Expected 2 cards, got %d", len(cards))
	}
	if cards[0].Text != "first" || cards[1].Text != "fourth" {
		t.Errorf("Cards out of order: %+v", cards)
	}
	// Labels carry the original 1-based positions, not a renumbering.
	if cards[0].Label != "Part 1" {
		t.Errorf("Expected label 'Part 1', got %q", cards[0].Label)
	}
	if cards[1].Label != "Part 4" {
		t.Errorf("Expected label 'Part 4', got %q", cards[1].Label)
	}
}

func TestBuildCards_MappingFixedOrder(t *testing.T) {
	d := model.Dialog{
		Form:    model.DialogMapping,
		Note:    "picked up at a book fair",
		Summary: "a field guide to signs",
	}

	cards := BuildCards(d, englishLoc())

	if len(cards) != 2 {
		t.Fatalf("Expected 2 cards, got %d", len(cards))
	}
	// Summary always precedes note regardless of JSON key order.
	if cards[0].Label != "Summary" || cards[0].Icon != IconSummary {
		t.Errorf("First card wrong: %+v", cards[0])
	}
	if cards[1].Label != "Note" || cards[1].Icon != IconNote {
		t.Errorf("Second card wrong: %+v", cards[1])
	}
}

func TestBuildCards_MappingMissingKeys(t *testing.T) {
	d := model.Dialog{Form: model.DialogMapping, Reason: "a podcast mentioned it"}

	cards := BuildCards(d, englishLoc())

	if len(cards) != 1 {
		t.Fatalf("Expected 1 card, got %d", len(cards))
	}
	if cards[0].Label != "Why it's here" || cards[0].Text != "a podcast mentioned it" {
		t.Errorf("Card wrong: %+v", cards[0])
	}
}

func TestBuildCards_NoDialog(t *testing.T) {
	if cards := BuildCards(model.Dialog{}, englishLoc()); len(cards) != 0 {
		t.Errorf("Expected no cards without a dialog payload, got %d", len(cards))
	}
}

func TestBuildCards_WhitespaceTrimmed(t *testing.T) {
	d := model.Dialog{
		Form:     model.DialogSequence,
		Sections: []string{"  padded text  "},
	}

	cards := BuildCards(d, englishLoc())
	if len(cards) != 1 {
		t.Fatalf("Expected 1 card, got %d", len(cards))
	}
	if cards[0].Text != "padded text" {
		t.Errorf("Expected trimmed text, got %q", cards[0].Text)
	}
}
