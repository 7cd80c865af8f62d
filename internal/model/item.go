package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// DialogForm tells which JSON shape an item's detail payload used.
type DialogForm int

const (
	// DialogNone means the item carries no detail payload
	DialogNone DialogForm = iota

	// DialogSequence is the ordered array form; cards are labeled by their
	// position in the array
	DialogSequence

	// DialogMapping is the named object form; cards are keyed by the fixed
	// summary/reason/note fields
	DialogMapping
)

// Dialog is the detail payload of an item. The data source writes it either
// as an ordered array of strings or as an object with fixed field names.
// The form is resolved once during decoding rather than re-guessed every
// time the overlay renders.
type Dialog struct {
	Form     DialogForm
	Sections []string // sequence form, original order
	Summary  string   // mapping form fields
	Reason   string
	Note     string
}

// dialogFields mirrors the mapping-form JSON object.
type dialogFields struct {
	Summary string `json:"summary"`
	Reason  string `json:"reason"`
	Note    string `json:"note"`
}

// UnmarshalJSON resolves the two accepted payload shapes into a tagged value.
func (d *Dialog) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*d = Dialog{}
		return nil
	}

	if trimmed[0] == '[' {
		var sections []string
		if err := json.Unmarshal(data, &sections); err != nil {
			return fmt.Errorf("dialog sequence form: %w", err)
		}
		*d = Dialog{Form: DialogSequence, Sections: sections}
		return nil
	}

	var fields dialogFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("dialog mapping form: %w", err)
	}
	*d = Dialog{
		Form:    DialogMapping,
		Summary: fields.Summary,
		Reason:  fields.Reason,
		Note:    fields.Note,
	}
	return nil
}

// MarshalJSON writes the payload back in the shape it was read from.
func (d Dialog) MarshalJSON() ([]byte, error) {
	switch d.Form {
	case DialogSequence:
		return json.Marshal(d.Sections)
	case DialogMapping:
		return json.Marshal(dialogFields{Summary: d.Summary, Reason: d.Reason, Note: d.Note})
	default:
		return []byte("null"), nil
	}
}

// IsZero reports whether the item carried no dialog key at all. Used by the
// omitzero tag so items without detail content serialize back without one.
func (d Dialog) IsZero() bool {
	return d.Form == DialogNone
}

// IsEmpty reports whether the payload has no card-worthy content in any form.
func (d Dialog) IsEmpty() bool {
	switch d.Form {
	case DialogSequence:
		for _, section := range d.Sections {
			if strings.TrimSpace(section) != "" {
				return false
			}
		}
		return true
	case DialogMapping:
		return strings.TrimSpace(d.Summary) == "" &&
			strings.TrimSpace(d.Reason) == "" &&
			strings.TrimSpace(d.Note) == ""
	default:
		return true
	}
}

// Item is one wishlist entry from data.json. Immutable once loaded.
type Item struct {
	ID        string `json:"id"`
	Image     string `json:"image"`
	URL       string `json:"url"`
	Title     string `json:"title,omitempty"`
	Author    string `json:"author,omitempty"`
	Publisher string `json:"publisher,omitempty"`
	Dialog    Dialog `json:"dialog,omitzero"`
}

// DisplayTitle returns the title when one is present, otherwise the item ID
func (it *Item) DisplayTitle() string {
	if strings.TrimSpace(it.Title) != "" {
		return it.Title
	}
	return it.ID
}
