package ui

import (
	"slices"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/shockbase/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	datasetEntry    *widget.Entry
	paddingEntry    *widget.Entry
	cacheLimitEntry *widget.Entry
	timeoutEntry    *widget.Entry
	languageSelect  *widget.Select
	logLevelSelect  *widget.Select
}

// ShowSettingsDialog builds and shows the settings dialog. onSaved runs after
// the values have been stored.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window)
	sd.onSaved = onSaved
	sd.Show()
	return sd
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	// Dataset selection
	sd.datasetEntry = widget.NewEntry()
	sd.datasetEntry.SetPlaceHolder(config.DefaultDatasetPath)

	browseBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseDataset)
	datasetRow := container.NewBorder(nil, nil, nil, browseBtn, sd.datasetEntry)

	sd.paddingEntry = widget.NewEntry()
	sd.paddingEntry.SetPlaceHolder("0-" + strconv.Itoa(config.MaxImagePadding))

	sd.cacheLimitEntry = widget.NewEntry()
	sd.cacheLimitEntry.SetPlaceHolder("0-" + strconv.Itoa(config.MaxImageCacheLimit))

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(strconv.Itoa(config.MinFetchTimeout) + "-" + strconv.Itoa(config.MaxFetchTimeout))

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	slices.Sort(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.logLevelSelect = widget.NewSelect(sd.settings.GetLogLevelOptions(), nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyViewerSection)),
		widget.NewSeparator(),

		widget.NewLabel(text(KeyDatasetPath)+":"),
		datasetRow,

		widget.NewLabel(text(KeyImagePadding)+":"),
		sd.paddingEntry,

		widget.NewLabel(text(KeyImageCacheLimit)+":"),
		sd.cacheLimitEntry,

		widget.NewLabel(text(KeyFetchTimeout)+":"),
		sd.timeoutEntry,

		widget.NewSeparator(),
		widget.NewLabel(text(KeyInterfaceSection)),
		widget.NewSeparator(),

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewLabel(text(KeyLogLevel)+":"),
		sd.logLevelSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.datasetEntry.SetText(sd.settings.GetDatasetPath())
	sd.paddingEntry.SetText(strconv.Itoa(sd.settings.GetImagePadding()))
	sd.cacheLimitEntry.SetText(strconv.Itoa(sd.settings.GetImageCacheLimit()))
	sd.timeoutEntry.SetText(strconv.Itoa(sd.settings.GetFetchTimeoutSeconds()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.logLevelSelect.SetSelected(sd.settings.GetLogLevel())
}

// onBrowseDataset handles dataset file browsing
func (sd *SettingsDialog) onBrowseDataset() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		sd.datasetEntry.SetText(reader.URI().Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// apply stores the entered values. Values that do not parse are left unchanged.
func (sd *SettingsDialog) apply() {
	if path := sd.datasetEntry.Text; path != "" {
		sd.settings.SetDatasetPath(path)
	}

	if padding, err := strconv.Atoi(sd.paddingEntry.Text); err == nil {
		sd.settings.SetImagePadding(padding)
	}

	if limit, err := strconv.Atoi(sd.cacheLimitEntry.Text); err == nil {
		sd.settings.SetImageCacheLimit(limit)
	}

	if seconds, err := strconv.Atoi(sd.timeoutEntry.Text); err == nil {
		sd.settings.SetFetchTimeoutSeconds(seconds)
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.logLevelSelect.Selected != "" {
		sd.settings.SetLogLevel(sd.logLevelSelect.Selected)
	}
}
