package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/shockbase/internal/catalog"
	"github.com/ytget/shockbase/internal/config"
	"github.com/ytget/shockbase/internal/download"
	"github.com/ytget/shockbase/internal/imaging"
	"github.com/ytget/shockbase/internal/logging"
	"github.com/ytget/shockbase/internal/platform"
	"github.com/ytget/shockbase/internal/resolver"
	"github.com/ytget/shockbase/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "org.shockbase.viewer"
	AppName = "G-Shock Database"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	myApp.Settings().SetTheme(ui.NewViewerTheme())

	settings := config.NewSettings(myApp)

	logger, closeLog := newLogger(settings)
	defer closeLog()
	logger.Info("viewer starting", slog.String("version", version))

	// A dataset that cannot be loaded is fatal: there is nothing to browse
	index, err := loadCatalog(settings)
	if err != nil {
		logger.Error("dataset unavailable", slog.Any("error", err))
		closeLog()
		os.Exit(1)
	}
	logger.Info("dataset loaded", slog.Int("records", index.Len()))

	// Initialize services
	fetcher := download.NewService(download.Options{
		Timeout: settings.GetFetchTimeout(),
		Logger:  logger,
	})
	images := resolver.New(fetcher, imaging.NewService(), resolver.Options{
		Padding:    settings.GetImagePadding(),
		CacheLimit: settings.GetImageCacheLimit(),
		Logger:     logger,
	})

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	myWindow.SetFixedSize(true)
	if icon, err := ui.LoadLogoResource(); err == nil {
		myWindow.SetIcon(icon)
	}

	// Create and setup UI
	ui.NewRootUI(myWindow, settings, index, images, logger)

	// Show and run
	myWindow.ShowAndRun()

	stats := images.Stats()
	logger.Info("viewer stopped",
		slog.Int("cached_images", images.Len()),
		slog.Int("cache_hits", stats.Hits),
		slog.Int("fetches", stats.Fetches),
	)
}

// newLogger builds the viewer logger writing to stdout and, when the working
// directory is writable, to a log file
func newLogger(settings *config.Settings) (*slog.Logger, func()) {
	var extra []io.Writer
	closeLog := func() {}

	if file, err := logging.OpenLogFile(""); err == nil {
		extra = append(extra, file)
		closeLog = func() { _ = file.Close() }
	}

	logger, err := logging.New(logging.Options{
		Level:  settings.GetLogLevel(),
		Format: logging.FormatConsole,
		Extra:  extra,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log settings: %v\n", err)
		logger, _ = logging.New(logging.Options{Extra: extra})
	}
	return logger, closeLog
}

func loadCatalog(settings *config.Settings) (*catalog.Index, error) {
	path, err := platform.ResourcePath(settings.GetDatasetPath())
	if err != nil {
		return nil, err
	}
	return catalog.LoadFile(path)
}
