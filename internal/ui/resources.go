package ui

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/shockbase/internal/platform"
)

const (
	AppIcon = "shockbase.png"
)

// LoadLogoResource loads the application icon next to the executable or in
// the working directory
func LoadLogoResource() (fyne.Resource, error) {
	path, err := platform.ResourcePath(AppIcon)
	if err != nil {
		return nil, err
	}
	return fyne.LoadResourceFromPath(path)
}
