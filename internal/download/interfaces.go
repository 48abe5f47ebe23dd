package download

import (
	"context"
)

// Fetcher defines the interface for the download service.
type Fetcher interface {
	// Fetch downloads the body at url. Non-2xx responses are errors.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
