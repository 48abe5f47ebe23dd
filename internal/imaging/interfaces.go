package imaging

import (
	"image"
)

// Scaler defines the interface for the image decode and resize service.
type Scaler interface {
	Decode(data []byte) (image.Image, string, error)
	Fit(img image.Image, box Box) (image.Image, error)
}
