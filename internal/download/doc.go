package download

// Package download implements the HTTP byte source shared by the image
// resolver and the crawler. It performs a single GET per call with no retry,
// rejects non-2xx responses and caps the body size.
