package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconClose    = "×"

	// Detail card icons
	IconSummary = "📖"
	IconReason  = "💡"
	IconNote    = "📝"
	IconSection = "📄"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
)

// Tile sizing floors
const (
	TileMinWidth  float32 = 40
	TileMinHeight float32 = 60
)

// Detail overlay sizing
const (
	DetailDialogWidth  float32 = 440
	DetailDialogHeight float32 = 580
	DetailCoverWidth   float32 = 180
	DetailCoverHeight  float32 = 270
)
