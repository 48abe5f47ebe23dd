package ui

import (
	"context"
	"errors"
	"image"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/shockbase/internal/cascade"
	"github.com/ytget/shockbase/internal/config"
	"github.com/ytget/shockbase/internal/imaging"
	"github.com/ytget/shockbase/internal/logging"
	"github.com/ytget/shockbase/internal/model"
)

// ImageResolver turns an image reference into a display-ready bitmap
type ImageResolver interface {
	Resolve(ctx context.Context, ref string, box imaging.Box) (image.Image, error)
	Cached(ref string) (image.Image, bool)
}

// Catalog is the query surface the viewer needs
type Catalog = cascade.Catalog

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	controller   *cascade.Controller
	resolver     ImageResolver
	logger       *slog.Logger
	fetchTimeout time.Duration

	series []string
	view   cascade.View

	seriesHeader    *widget.Label
	subseriesHeader *widget.Label
	modelsHeader    *widget.Label
	pictureHeader   *widget.Label

	seriesList    *widget.List
	subseriesList *widget.List
	modelList     *widget.List

	pictureArea    *fyne.Container
	picture        *canvas.Image
	pictureMessage *widget.Label
	imageStatus    model.ImageStatus

	statusLeft  *widget.Label
	statusRight *widget.Label
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, settings *config.Settings, catalog Catalog, resolver ImageResolver, logger *slog.Logger) *RootUI {
	if logger == nil {
		logger = logging.Nop()
	}

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		controller:   cascade.New(catalog),
		resolver:     resolver,
		logger:       logger,
		fetchTimeout: settings.GetFetchTimeout(),
		imageStatus:  model.ImageStatusIdle,
	}
	ui.series = ui.controller.SeriesOptions()
	ui.view = ui.controller.View()

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.seriesList = newTextList(func() []string { return ui.series })
	ui.seriesList.OnSelected = ui.onSeriesSelected

	ui.subseriesList = newTextList(func() []string { return ui.view.SubseriesOptions })
	ui.subseriesList.OnSelected = ui.onSubseriesSelected

	ui.modelList = newTextList(func() []string { return ui.view.ModelOptions })
	ui.modelList.OnSelected = ui.onModelSelected

	ui.seriesHeader = newHeader()
	ui.subseriesHeader = newHeader()
	ui.modelsHeader = newHeader()
	ui.pictureHeader = newHeader()

	ui.picture = canvas.NewImageFromImage(nil)
	ui.picture.FillMode = canvas.ImageFillOriginal
	ui.picture.ScaleMode = canvas.ImageScaleSmooth
	ui.picture.Hide()

	ui.pictureMessage = widget.NewLabel("")
	ui.pictureMessage.Alignment = fyne.TextAlignCenter
	ui.pictureMessage.Wrapping = fyne.TextWrapWord
	ui.pictureMessage.Hide()

	background := canvas.NewRectangle(theme.Color(ColorNamePicture))
	background.StrokeColor = theme.Color(ColorNamePictureBorder)
	background.StrokeWidth = theme.Size(SizeNamePictureBorder)
	background.SetMinSize(DefaultPictureSize)

	ui.pictureArea = container.NewStack(
		background,
		container.NewCenter(ui.picture),
		container.NewCenter(ui.pictureMessage),
	)

	columns := container.NewGridWithColumns(4,
		column(ui.seriesHeader, ui.seriesList),
		column(ui.subseriesHeader, ui.subseriesList),
		column(ui.modelsHeader, ui.modelList),
		container.NewBorder(ui.pictureHeader, nil, nil, nil, ui.pictureArea),
	)

	ui.statusLeft = widget.NewLabel("")
	ui.statusRight = widget.NewLabel("")
	ui.statusRight.Alignment = fyne.TextAlignTrailing
	statusBar := container.NewBorder(nil, nil, ui.statusLeft, ui.statusRight)

	ui.refreshUITexts()

	ui.window.SetContent(container.NewPadded(container.NewBorder(nil, statusBar, nil, nil, columns)))
	ui.logger.Debug("ui setup completed", slog.Int("series", len(ui.series)))
}

func newTextList(items func() []string) *widget.List {
	list := widget.NewList(
		func() int { return len(items()) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			values := items()
			if id < 0 || id >= len(values) {
				return
			}
			obj.(*widget.Label).SetText(values[id])
		},
	)
	return list
}

func newHeader() *widget.Label {
	label := widget.NewLabel("")
	label.Alignment = fyne.TextAlignCenter
	label.TextStyle = fyne.TextStyle{Bold: true}
	return label
}

func column(header *widget.Label, list *widget.List) fyne.CanvasObject {
	return container.NewBorder(header, nil, nil, nil, list)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.seriesHeader.SetText(ui.localization.GetText(KeySeries))
	ui.subseriesHeader.SetText(ui.localization.GetText(KeySubseries))
	ui.modelsHeader.SetText(ui.localization.GetText(KeyModels))
	ui.pictureHeader.SetText(ui.localization.GetText(KeyPicture))

	ui.refreshStatus()
	ui.refreshPictureMessage()
}

func (ui *RootUI) onSeriesSelected(id widget.ListItemID) {
	if id < 0 || id >= len(ui.series) {
		return
	}
	if !ui.controller.ChooseSeries(ui.series[id]) {
		return
	}

	ui.view = ui.controller.View()
	ui.logger.Debug("series chosen",
		slog.String("series", ui.view.State.Series),
		slog.Uint64("generation", ui.view.Generation),
	)

	ui.subseriesList.UnselectAll()
	ui.subseriesList.ScrollToTop()
	ui.subseriesList.Refresh()
	ui.modelList.UnselectAll()
	ui.modelList.Refresh()

	ui.clearPicture()
	ui.refreshStatus()
}

func (ui *RootUI) onSubseriesSelected(id widget.ListItemID) {
	options := ui.view.SubseriesOptions
	if id < 0 || id >= len(options) {
		return
	}
	if !ui.controller.ChooseSubseries(options[id]) {
		return
	}

	ui.view = ui.controller.View()
	ui.logger.Debug("subseries chosen",
		slog.String("series", ui.view.State.Series),
		slog.String("subseries", ui.view.State.Subseries),
		slog.Uint64("generation", ui.view.Generation),
	)

	ui.modelList.UnselectAll()
	ui.modelList.ScrollToTop()
	ui.modelList.Refresh()

	ui.clearPicture()
	ui.refreshStatus()
}

func (ui *RootUI) onModelSelected(id widget.ListItemID) {
	options := ui.view.ModelOptions
	if id < 0 || id >= len(options) {
		return
	}

	req, ok := ui.controller.ChooseModel(options[id])
	if !ok {
		return
	}

	ui.view = ui.controller.View()
	ui.refreshStatus()

	logger := ui.logger.With(
		slog.String("request_id", req.ID),
		slog.String("model", req.Model),
		slog.String("ref", req.ImageURL),
		slog.Uint64("generation", req.Generation),
	)

	if ui.imageStatus.IsActive() {
		logger.Debug("pending picture superseded")
	}

	if img, ok := ui.resolver.Cached(req.ImageURL); ok {
		logger.Debug("picture cache hit")
		ui.showPicture(img)
		return
	}

	ui.setImageStatus(model.ImageStatusLoading)
	box := ui.pictureBox()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), ui.fetchTimeout)
		defer cancel()

		img, err := ui.resolver.Resolve(ctx, req.ImageURL, box)
		fyne.Do(func() {
			ui.applyResolved(logger, req, img, err)
		})
	}()
}

// applyResolved renders a finished resolve unless a newer selection replaced it
func (ui *RootUI) applyResolved(logger *slog.Logger, req cascade.Request, img image.Image, err error) {
	if !ui.controller.Current(req.Generation) {
		logger.Debug("stale picture dropped")
		return
	}

	if err != nil {
		level := slog.LevelWarn
		if errors.Is(err, context.DeadlineExceeded) {
			level = slog.LevelError
		}
		logger.Log(context.Background(), level, "picture unavailable", slog.Any("error", err))
		ui.setImageStatus(model.ImageStatusError)
		return
	}

	ui.showPicture(img)
}

// pictureBox returns the current picture area in pixels
func (ui *RootUI) pictureBox() imaging.Box {
	size := ui.pictureArea.Size()
	if size.Width <= 0 || size.Height <= 0 {
		size = DefaultPictureSize
	}
	return imaging.NewBox(int(size.Width), int(size.Height))
}

func (ui *RootUI) showPicture(img image.Image) {
	ui.picture.Image = img
	ui.picture.Show()
	ui.picture.Refresh()
	ui.setImageStatus(model.ImageStatusReady)
}

func (ui *RootUI) clearPicture() {
	ui.picture.Image = nil
	ui.picture.Hide()
	ui.picture.Refresh()
	ui.setImageStatus(model.ImageStatusIdle)
}

func (ui *RootUI) setImageStatus(status model.ImageStatus) {
	ui.imageStatus = status
	if status != model.ImageStatusReady {
		ui.picture.Hide()
	}
	if status.IsFinished() {
		ui.logger.Debug("picture settled", slog.String("status", status.String()))
	}
	ui.refreshPictureMessage()
}

func (ui *RootUI) refreshPictureMessage() {
	switch {
	case ui.imageStatus.IsActive():
		ui.pictureMessage.SetText(ui.localization.GetText(KeyLoadingImage))
		ui.pictureMessage.Show()
	case ui.imageStatus == model.ImageStatusError:
		ui.pictureMessage.SetText(ui.localization.GetText(KeyImageError))
		ui.pictureMessage.Show()
	default:
		ui.pictureMessage.SetText("")
		ui.pictureMessage.Hide()
	}
}

func (ui *RootUI) refreshStatus() {
	left, right := statusTexts(ui.localization, ui.view.Status)
	ui.statusLeft.SetText(left)
	ui.statusRight.SetText(right)
}

// statusTexts renders the status summary for the left and right status labels
func statusTexts(l *Localization, status cascade.Status) (string, string) {
	var left string
	switch status.Noun {
	case cascade.NounSubseries:
		left = l.Format(KeySubseriesCount, status.Count)
	case cascade.NounModels:
		left = l.Format(KeyModelsCount, status.Count)
	default:
		left = l.GetText(KeySelectSeries)
	}

	if !status.HasYear {
		return left, ""
	}
	return left, model.FormatYear(status.Year, l.GetText(KeyYearUnknown))
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
		dialog.ShowInformation(
			ui.localization.GetText(KeySettings),
			ui.localization.GetText(KeySettingsSaved)+"\n"+ui.localization.GetText(KeyRestartRequired),
			ui.window,
		)
	})
}
