package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/webp"
)

var (
	// ErrEmptyImage is returned for zero-length input or a zero-sized bitmap
	ErrEmptyImage = errors.New("empty image")

	// ErrEmptyBox is returned when the target box has no area
	ErrEmptyBox = errors.New("empty target box")
)

// Service decodes and resizes images
type Service struct {
	interp resize.InterpolationFunction
}

// NewService creates an imaging service using Lanczos3 resampling
func NewService() Scaler {
	return &Service{interp: resize.Lanczos3}
}

// Decode decodes data in any registered format and returns the format name
func (s *Service) Decode(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", ErrEmptyImage
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, format, fmt.Errorf("decode image: %w", err)
	}
	return img, format, nil
}

// Fit resizes img to the aspect-fit size for box
func (s *Service) Fit(img image.Image, box Box) (image.Image, error) {
	if img == nil {
		return nil, ErrEmptyImage
	}
	if box.Empty() {
		return nil, fmt.Errorf("%w: %s", ErrEmptyBox, box)
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, ErrEmptyImage
	}

	width, height := AspectFit(bounds.Dx(), bounds.Dy(), box)
	return resize.Resize(uint(width), uint(height), img, s.interp), nil
}
