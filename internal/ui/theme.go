// Package ui provides the NumCrypt graphical user interface using Fyne.
package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// AppTheme is a custom theme matching the original NumCrypt look:
// light gray window, near-black text, red primary accents.
type AppTheme struct{}

var _ fyne.Theme = (*AppTheme)(nil)

// NewAppTheme creates the NumCrypt theme.
func NewAppTheme() fyne.Theme {
	return &AppTheme{}
}

// Color returns the color for the specified name and variant.
// The palette is fixed; the variant is ignored so the app looks the same on
// light and dark desktops.
func (t *AppTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.RGBA{R: 0xF5, G: 0xF5, B: 0xF5, A: 0xFF} // Light gray (#f5f5f5)

	case theme.ColorNameForeground:
		return color.RGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xFF} // Dark gray (#212121)

	case theme.ColorNamePrimary:
		return color.RGBA{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF} // Red accent

	case theme.ColorNameButton:
		return color.RGBA{R: 0xE8, G: 0xE8, B: 0xE8, A: 0xFF}

	case theme.ColorNamePlaceHolder:
		return color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xFF}

	case theme.ColorNameInputBackground:
		return color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF} // White entry field

	case theme.ColorNameInputBorder:
		return color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF} // Black entry border

	default:
		return theme.DefaultTheme().Color(name, theme.VariantLight)
	}
}

// Font returns the font resource for the specified text style.
func (t *AppTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns the icon resource for the specified name.
func (t *AppTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns the size for the specified name.
// Larger text and headings than stock Fyne, matching the original layout.
func (t *AppTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 14
	case theme.SizeNameHeadingText:
		return 22
	case theme.SizeNameSubHeadingText:
		return 16
	case theme.SizeNamePadding:
		return 8
	case theme.SizeNameInnerPadding:
		return 8
	case theme.SizeNameInputBorder:
		return 2
	case theme.SizeNameInputRadius:
		return 5
	default:
		return theme.DefaultTheme().Size(name)
	}
}
