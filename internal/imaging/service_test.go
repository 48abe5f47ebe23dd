package imaging

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode PNG: %v", err)
	}
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	service := NewService()

	img, format, err := service.Decode(encodePNG(t, 80, 40))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if format != "png" {
		t.Errorf("Expected format png, got %s", format)
	}
	if img.Bounds().Dx() != 80 || img.Bounds().Dy() != 40 {
		t.Errorf("Unexpected bounds %v", img.Bounds())
	}
}

func TestDecode_Invalid(t *testing.T) {
	service := NewService()

	if _, _, err := service.Decode(nil); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("Expected ErrEmptyImage, got %v", err)
	}

	if _, _, err := service.Decode([]byte("<html>not an image</html>")); err == nil {
		t.Error("Expected error for non-image bytes, got nil")
	}
}

func TestFit(t *testing.T) {
	service := NewService()
	img, _, err := service.Decode(encodePNG(t, 800, 400))
	if err != nil {
		t.Fatalf("Failed to decode fixture: %v", err)
	}

	fitted, err := service.Fit(img, NewBox(200, 200))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if fitted.Bounds().Dx() != 200 || fitted.Bounds().Dy() != 100 {
		t.Errorf("Expected 200x100, got %dx%d", fitted.Bounds().Dx(), fitted.Bounds().Dy())
	}
}

func TestFit_EmptyBox(t *testing.T) {
	service := NewService()
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))

	if _, err := service.Fit(img, NewBox(0, 10)); !errors.Is(err, ErrEmptyBox) {
		t.Errorf("Expected ErrEmptyBox, got %v", err)
	}
	if _, err := service.Fit(nil, NewBox(10, 10)); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("Expected ErrEmptyImage, got %v", err)
	}
}
