package ui

import (
	"context"
	"errors"
	"image"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/shockbase/internal/cascade"
	"github.com/ytget/shockbase/internal/catalog"
	"github.com/ytget/shockbase/internal/config"
	"github.com/ytget/shockbase/internal/imaging"
	"github.com/ytget/shockbase/internal/logging"
	"github.com/ytget/shockbase/internal/model"
)

type fakeResolver struct {
	images map[string]image.Image
}

func (f *fakeResolver) Resolve(ctx context.Context, ref string, box imaging.Box) (image.Image, error) {
	if img, ok := f.images[ref]; ok {
		return img, nil
	}
	return nil, errors.New("not found")
}

func (f *fakeResolver) Cached(ref string) (image.Image, bool) {
	img, ok := f.images[ref]
	return img, ok
}

var testRecords = []model.WatchRecord{
	{Series: "A", Subseries: "A1", Model: "M1", Year: 2012, ImageURL: "u1"},
	{Series: "A", Subseries: "A1", Model: "M2", Year: model.UnknownYear, ImageURL: "u2"},
	{Series: "A", Subseries: "A2", Model: "M3", Year: 2015, ImageURL: "u3"},
	{Series: "B", Subseries: "B1", Model: "M4", Year: 2020, ImageURL: "u4"},
}

func newTestUI(t *testing.T) *RootUI {
	t.Helper()

	app := test.NewTempApp(t)
	window := app.NewWindow("test")
	t.Cleanup(window.Close)

	resolver := &fakeResolver{images: map[string]image.Image{
		"u1": image.NewRGBA(image.Rect(0, 0, 40, 20)),
		"u2": image.NewRGBA(image.Rect(0, 0, 20, 40)),
	}}

	return NewRootUI(window, config.NewSettings(app), catalog.New(testRecords), resolver, nil)
}

func TestNewRootUI_InitialState(t *testing.T) {
	ui := newTestUI(t)

	if len(ui.series) != 2 || ui.series[0] != "A" || ui.series[1] != "B" {
		t.Errorf("Unexpected series %v", ui.series)
	}
	if ui.statusLeft.Text != "Select a series..." {
		t.Errorf("Expected initial status, got %q", ui.statusLeft.Text)
	}
	if ui.statusRight.Text != "" {
		t.Errorf("Expected empty year, got %q", ui.statusRight.Text)
	}
	if ui.imageStatus != model.ImageStatusIdle {
		t.Errorf("Expected idle picture, got %s", ui.imageStatus)
	}
	if ui.window.Title() != "G-Shock Database" {
		t.Errorf("Unexpected title %q", ui.window.Title())
	}
}

func TestRootUI_Cascade(t *testing.T) {
	ui := newTestUI(t)

	ui.seriesList.Select(0)
	if ui.statusLeft.Text != "2 subseries." {
		t.Errorf("Expected '2 subseries.', got %q", ui.statusLeft.Text)
	}
	if len(ui.view.SubseriesOptions) != 2 || len(ui.view.ModelOptions) != 0 {
		t.Errorf("Unexpected options %+v", ui.view)
	}

	ui.subseriesList.Select(0)
	if ui.statusLeft.Text != "2 models." {
		t.Errorf("Expected '2 models.', got %q", ui.statusLeft.Text)
	}

	ui.modelList.Select(0)
	if ui.statusRight.Text != "2012" {
		t.Errorf("Expected year 2012, got %q", ui.statusRight.Text)
	}
	if ui.imageStatus != model.ImageStatusReady || ui.picture.Image == nil {
		t.Errorf("Expected cached picture to be shown, status %s", ui.imageStatus)
	}

	ui.modelList.Select(1)
	if ui.statusRight.Text != "Year unknown" {
		t.Errorf("Expected unknown year label, got %q", ui.statusRight.Text)
	}

	// Choosing another series clears the finer levels and the picture
	ui.seriesList.Select(1)
	if ui.statusLeft.Text != "1 subseries." || ui.statusRight.Text != "" {
		t.Errorf("Unexpected status %q / %q", ui.statusLeft.Text, ui.statusRight.Text)
	}
	if len(ui.view.ModelOptions) != 0 {
		t.Errorf("Expected model options to be cleared, got %v", ui.view.ModelOptions)
	}
	if ui.imageStatus != model.ImageStatusIdle || ui.picture.Image != nil {
		t.Errorf("Expected picture to be cleared, status %s", ui.imageStatus)
	}
}

func TestRootUI_ApplyResolved(t *testing.T) {
	ui := newTestUI(t)
	logger := logging.Nop()
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))

	ui.seriesList.Select(0)
	ui.subseriesList.Select(1)
	current := ui.view.Generation

	ui.applyResolved(logger, cascade.Request{Generation: current - 1}, img, nil)
	if ui.imageStatus != model.ImageStatusIdle || ui.picture.Image != nil {
		t.Errorf("Expected stale result to be dropped, status %s", ui.imageStatus)
	}

	ui.applyResolved(logger, cascade.Request{Generation: current}, nil, errors.New("boom"))
	if ui.imageStatus != model.ImageStatusError {
		t.Errorf("Expected error state, got %s", ui.imageStatus)
	}
	if !ui.pictureMessage.Visible() || ui.pictureMessage.Text != "Picture unavailable" {
		t.Errorf("Expected error message, got %q", ui.pictureMessage.Text)
	}

	ui.applyResolved(logger, cascade.Request{Generation: current}, img, nil)
	if ui.imageStatus != model.ImageStatusReady || ui.picture.Image != img {
		t.Errorf("Expected picture to be shown, status %s", ui.imageStatus)
	}
	if ui.pictureMessage.Visible() {
		t.Error("Expected message to be hidden")
	}
}

func TestRootUI_PictureMessage(t *testing.T) {
	ui := newTestUI(t)

	ui.setImageStatus(model.ImageStatusLoading)
	if !ui.pictureMessage.Visible() || ui.pictureMessage.Text != "Loading picture..." {
		t.Errorf("Expected loading message, got %q", ui.pictureMessage.Text)
	}
	if ui.picture.Visible() {
		t.Error("Expected picture to be hidden while loading")
	}

	ui.setImageStatus(model.ImageStatusError)
	if !ui.pictureMessage.Visible() || ui.pictureMessage.Text != "Picture unavailable" {
		t.Errorf("Expected error message, got %q", ui.pictureMessage.Text)
	}

	ui.setImageStatus(model.ImageStatusIdle)
	if ui.pictureMessage.Visible() || ui.pictureMessage.Text != "" {
		t.Errorf("Expected message to be cleared, got %q", ui.pictureMessage.Text)
	}
}

func TestRootUI_PictureBox(t *testing.T) {
	ui := newTestUI(t)

	box := ui.pictureBox()
	if box.Empty() {
		t.Errorf("Expected a usable box, got %s", box)
	}
}

func TestRootUI_LanguageChange(t *testing.T) {
	ui := newTestUI(t)

	ui.onLanguageChange("pt")
	if ui.statusLeft.Text != "Selecione uma série..." {
		t.Errorf("Expected Portuguese status, got %q", ui.statusLeft.Text)
	}
	if ui.seriesHeader.Text != "Séries" {
		t.Errorf("Expected Portuguese header, got %q", ui.seriesHeader.Text)
	}
	if ui.settings.GetLanguage() != "pt" {
		t.Errorf("Expected language to be saved, got %s", ui.settings.GetLanguage())
	}
}

func TestStatusTexts(t *testing.T) {
	l := NewLocalization()

	tests := []struct {
		name      string
		status    cascade.Status
		wantLeft  string
		wantRight string
	}{
		{"initial", cascade.Status{}, "Select a series...", ""},
		{"subseries", cascade.Status{Count: 3, Noun: cascade.NounSubseries}, "3 subseries.", ""},
		{"models", cascade.Status{Count: 7, Noun: cascade.NounModels}, "7 models.", ""},
		{"year", cascade.Status{Count: 7, Noun: cascade.NounModels, Year: 1983, HasYear: true}, "7 models.", "1983"},
		{"unknown year", cascade.Status{Count: 1, Noun: cascade.NounModels, HasYear: true}, "1 models.", "Year unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right := statusTexts(l, tt.status)
			if left != tt.wantLeft || right != tt.wantRight {
				t.Errorf("statusTexts() = (%q, %q), expected (%q, %q)", left, right, tt.wantLeft, tt.wantRight)
			}
		})
	}
}
