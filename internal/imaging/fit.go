package imaging

import "fmt"

// Box is a display area in pixels
type Box struct {
	Width  int
	Height int
}

// NewBox creates a box of the given size
func NewBox(width, height int) Box {
	return Box{Width: width, Height: height}
}

// Shrink returns the box with margin removed from every side
func (b Box) Shrink(margin int) Box {
	return Box{Width: b.Width - 2*margin, Height: b.Height - 2*margin}
}

// Empty reports whether the box cannot hold a single pixel
func (b Box) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// String formats the box as WxH
func (b Box) String() string {
	return fmt.Sprintf("%dx%d", b.Width, b.Height)
}

// AspectFit returns the largest size with the image's aspect ratio that fits
// in box. When the width ratio strictly exceeds the height ratio the width is
// box-limited; otherwise (including an exact tie) the height is.
func AspectFit(width, height int, box Box) (int, int) {
	if width <= 0 || height <= 0 || box.Empty() {
		return 0, 0
	}

	rw := float64(width) / float64(box.Width)
	rh := float64(height) / float64(box.Height)

	var newWidth, newHeight int
	if rw > rh {
		newWidth = box.Width
		newHeight = int(float64(height) * float64(box.Width) / float64(width))
	} else {
		newHeight = box.Height
		newWidth = int(float64(width) * float64(box.Height) / float64(height))
	}

	return max(newWidth, 1), max(newHeight, 1)
}
