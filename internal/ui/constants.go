package ui

import "fyne.io/fyne/v2"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Window sizing
const (
	WindowWidth  float32 = 1000
	WindowHeight float32 = 400
)

// Layout sizing
const (
	PictureMinWidth  float32 = 220
	PictureMinHeight float32 = 220
)

// DefaultPictureSize is used before the picture area has been laid out
var DefaultPictureSize = fyne.NewSize(PictureMinWidth, PictureMinHeight)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 420
)
