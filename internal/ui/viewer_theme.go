package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Theme names owned by the viewer
const (
	ColorNamePicture       fyne.ThemeColorName = "shockbasePicture"
	ColorNamePictureBorder fyne.ThemeColorName = "shockbasePictureBorder"
	SizeNamePictureBorder  fyne.ThemeSizeName  = "shockbasePictureBorder"
)

var (
	pictureLight = color.White
	pictureDark  = color.RGBA{R: 38, G: 38, B: 38, A: 255}
	borderLight  = color.Gray{Y: 0x80}
	borderDark   = color.Gray{Y: 0x60}
	accent       = color.RGBA{R: 25, G: 118, B: 210, A: 255}
)

// ViewerTheme packs the series, subseries and model columns next to the
// picture area in the fixed window. List rows are kept short so a typical
// subseries fits without scrolling.
type ViewerTheme struct{}

// NewViewerTheme creates the viewer theme
func NewViewerTheme() fyne.Theme {
	return &ViewerTheme{}
}

// Color returns theme colors, including the picture area ones
func (t *ViewerTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	dark := variant == theme.VariantDark

	switch name {
	case ColorNamePicture:
		if dark {
			return pictureDark
		}
		return pictureLight
	case ColorNamePictureBorder:
		if dark {
			return borderDark
		}
		return borderLight
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return accent
	case theme.ColorNameSelection:
		// selected rows in all three columns
		if dark {
			return color.RGBA{R: 25, G: 118, B: 210, A: 96}
		}
		return color.RGBA{R: 25, G: 118, B: 210, A: 64}
	case theme.ColorNameHover:
		return color.RGBA{R: 25, G: 118, B: 210, A: 24}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *ViewerTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *ViewerTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *ViewerTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case SizeNamePictureBorder:
		return 1
	case theme.SizeNamePadding:
		return 2
	case theme.SizeNameInnerPadding:
		return 4 // list row height
	case theme.SizeNameSeparatorThickness:
		return 0
	case theme.SizeNameScrollBar:
		return 10
	case theme.SizeNameScrollBarSmall:
		return 3
	case theme.SizeNameText:
		return 13
	case theme.SizeNameSubHeadingText:
		return 14
	case theme.SizeNameSelectionRadius:
		return 0
	}

	return theme.DefaultTheme().Size(name)
}
