package resolver

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/ytget/shockbase/internal/download"
	"github.com/ytget/shockbase/internal/imaging"
	"github.com/ytget/shockbase/internal/logging"
)

// DefaultPadding is the margin kept free on each side of the picture area
const DefaultPadding = 10

var (
	// ErrEmptyRef is returned for a blank image reference
	ErrEmptyRef = errors.New("empty image reference")

	// ErrBoxTooSmall is returned when padding leaves no room for the image
	ErrBoxTooSmall = errors.New("target box too small")
)

// Options configures a Resolver
type Options struct {
	Padding    int
	CacheLimit int // 0 keeps every image for the session
	Logger     *slog.Logger
}

// Stats counts resolver activity
type Stats struct {
	Hits      int
	Misses    int
	Fetches   int
	Evictions int
}

// Resolver fetches, decodes, resizes and caches images
type Resolver struct {
	fetcher download.Fetcher
	scaler  imaging.Scaler
	padding int
	cache   *cache
	group   singleflight.Group
	logger  *slog.Logger

	statsMutex sync.Mutex
	stats      Stats
}

// New creates a resolver
func New(fetcher download.Fetcher, scaler imaging.Scaler, opts Options) *Resolver {
	if opts.Padding < 0 {
		opts.Padding = 0
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}

	return &Resolver{
		fetcher: fetcher,
		scaler:  scaler,
		padding: opts.Padding,
		cache:   newCache(opts.CacheLimit),
		logger:  opts.Logger,
	}
}

// Resolve returns the display-ready image for ref. A cached image is returned
// as is, sized for the box of its first resolution. Failures are not cached
// and not retried.
func (r *Resolver) Resolve(ctx context.Context, ref string, box imaging.Box) (image.Image, error) {
	if ref == "" {
		return nil, ErrEmptyRef
	}

	if img, ok := r.cache.get(ref); ok {
		r.count(func(s *Stats) { s.Hits++ })
		return img, nil
	}

	target := box.Shrink(r.padding)
	if target.Empty() {
		return nil, fmt.Errorf("%w: %s with padding %d", ErrBoxTooSmall, box, r.padding)
	}

	r.count(func(s *Stats) { s.Misses++ })

	v, err, shared := r.group.Do(ref, func() (any, error) {
		// A flight that finished between the lookup above and this call has
		// already stored the image.
		if img, ok := r.cache.get(ref); ok {
			return img, nil
		}
		return r.load(ctx, ref, target)
	})
	if err != nil {
		r.logger.Warn("image resolve failed", slog.String("ref", ref), slog.Any("error", err))
		return nil, err
	}
	if shared {
		r.logger.Debug("image resolve shared", slog.String("ref", ref))
	}

	return v.(image.Image), nil
}

// Cached returns the cached image for ref without fetching. A hit is counted
// in Stats like one served by Resolve; a miss is not.
func (r *Resolver) Cached(ref string) (image.Image, bool) {
	img, ok := r.cache.get(ref)
	if ok {
		r.count(func(s *Stats) { s.Hits++ })
	}
	return img, ok
}

// Len returns the number of cached images
func (r *Resolver) Len() int {
	return r.cache.len()
}

// Stats returns a snapshot of the counters
func (r *Resolver) Stats() Stats {
	r.statsMutex.Lock()
	defer r.statsMutex.Unlock()
	return r.stats
}

func (r *Resolver) load(ctx context.Context, ref string, target imaging.Box) (image.Image, error) {
	r.count(func(s *Stats) { s.Fetches++ })

	data, err := r.fetcher.Fetch(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("fetch image: %w", err)
	}

	img, format, err := r.scaler.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("image %s: %w", ref, err)
	}

	fitted, err := r.scaler.Fit(img, target)
	if err != nil {
		return nil, fmt.Errorf("image %s: %w", ref, err)
	}

	if evicted := r.cache.put(ref, fitted); evicted > 0 {
		r.count(func(s *Stats) { s.Evictions += evicted })
	}

	bounds := fitted.Bounds()
	r.logger.Debug("image resolved",
		slog.String("ref", ref),
		slog.String("format", format),
		slog.Int("width", bounds.Dx()),
		slog.Int("height", bounds.Dy()),
	)
	return fitted, nil
}

func (r *Resolver) count(update func(*Stats)) {
	r.statsMutex.Lock()
	update(&r.stats)
	r.statsMutex.Unlock()
}
