package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// OverlayDimColor darkens the wall behind the detail overlay.
var OverlayDimColor = color.NRGBA{R: 0, G: 0, B: 0, A: 180}

// CardBackgroundColor is the detail card surface.
var CardBackgroundColor = color.NRGBA{R: 28, G: 28, B: 32, A: 255}

// GalleryTheme defines a dark, near-paddingless theme so the covers sit
// edge to edge like a gallery wall.
type GalleryTheme struct{}

// NewGalleryTheme creates a new gallery theme
func NewGalleryTheme() fyne.Theme {
	return &GalleryTheme{}
}

// Color returns theme colors
func (t *GalleryTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.RGBA{R: 16, G: 16, B: 18, A: 255} // Near-black wall
	case theme.ColorNameForeground:
		return color.RGBA{R: 235, G: 235, B: 235, A: 255} // Off-white text
	case theme.ColorNamePrimary:
		return color.RGBA{R: 255, G: 153, B: 0, A: 255} // Store-link amber
	case theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		return color.RGBA{R: 28, G: 28, B: 32, A: 255} // Card surfaces
	}

	// Use default dark colors for everything else
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *GalleryTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *GalleryTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with the grid gutters squeezed out
func (t *GalleryTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 1 // Tiles nearly touch
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 3
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 17
	case theme.SizeNameCaptionText:
		return 10
	}

	return theme.DefaultTheme().Size(name)
}
