package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// GardenTheme tints the default theme with a garden palette and optionally
// tightens paddings and font sizes
type GardenTheme struct {
	compact bool
}

// NewGardenTheme creates the application theme
func NewGardenTheme(compact bool) fyne.Theme {
	return &GardenTheme{compact: compact}
}

// Color returns theme colors
func (t *GardenTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 56, G: 142, B: 60, A: 255} // Leaf green
	case theme.ColorNameFocus, theme.ColorNameSelection:
		return color.RGBA{R: 56, G: 142, B: 60, A: 96}
	case theme.ColorNameHover:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 20}
		}
		return color.RGBA{R: 56, G: 142, B: 60, A: 24}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 24, G: 28, B: 22, A: 255} // Soil
		}
		return color.RGBA{R: 248, G: 250, B: 244, A: 255} // Pale sage
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *GardenTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *GardenTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes, reduced when compact
func (t *GardenTheme) Size(name fyne.ThemeSizeName) float32 {
	if !t.compact {
		return theme.DefaultTheme().Size(name)
	}

	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameLineSpacing:
		return 2 // Reduced from default 4
	case theme.SizeNameText:
		return 13 // Reduced from default 14
	case theme.SizeNameHeadingText:
		return 20 // Reduced from default 24
	case theme.SizeNameSubHeadingText:
		return 16 // Reduced from default 18
	case theme.SizeNameCaptionText:
		return 10 // Reduced from default 11
	}

	return theme.DefaultTheme().Size(name)
}
