package imaging

// Package imaging decodes fetched image bytes (PNG, JPEG, GIF, WebP) and
// scales bitmaps to fit a display box with a Lanczos filter while keeping the
// aspect ratio.
