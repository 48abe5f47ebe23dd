package resolver

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ytget/shockbase/internal/imaging"
)

type fakeFetcher struct {
	data    map[string][]byte
	err     error
	release chan struct{}
	calls   atomic.Int32
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	f.calls.Add(1)
	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	data, ok := f.data[url]
	if !ok {
		return nil, errors.New("not found")
	}
	return data, nil
}

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 10, B: 10, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode PNG: %v", err)
	}
	return buf.Bytes()
}

func newTestResolver(t *testing.T, fetcher *fakeFetcher, opts Options) *Resolver {
	t.Helper()
	return New(fetcher, imaging.NewService(), opts)
}

func TestResolve_FitsIntoPaddedBox(t *testing.T) {
	fetcher := &fakeFetcher{data: map[string][]byte{"a.png": encodePNG(t, 800, 400)}}
	r := newTestResolver(t, fetcher, Options{Padding: 10})

	img, err := r.Resolve(context.Background(), "a.png", imaging.NewBox(220, 220))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 100 {
		t.Errorf("Expected 200x100, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestResolve_CachesFirstSize(t *testing.T) {
	fetcher := &fakeFetcher{data: map[string][]byte{"a.png": encodePNG(t, 400, 800)}}
	r := newTestResolver(t, fetcher, Options{})

	first, err := r.Resolve(context.Background(), "a.png", imaging.NewBox(200, 200))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	second, err := r.Resolve(context.Background(), "a.png", imaging.NewBox(600, 600))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if got := fetcher.calls.Load(); got != 1 {
		t.Errorf("Expected 1 fetch, got %d", got)
	}
	if first != second {
		t.Error("Expected cached image to be returned")
	}
	if second.Bounds().Dx() != 100 || second.Bounds().Dy() != 200 {
		t.Errorf("Expected first box size 100x200, got %v", second.Bounds())
	}

	stats := r.Stats()
	if stats.Hits != 1 || stats.Misses != 1 || stats.Fetches != 1 {
		t.Errorf("Unexpected stats %+v", stats)
	}
}

func TestCached_CountsHits(t *testing.T) {
	fetcher := &fakeFetcher{data: map[string][]byte{"a.png": encodePNG(t, 10, 10)}}
	r := newTestResolver(t, fetcher, Options{})

	if _, ok := r.Cached("a.png"); ok {
		t.Fatal("Expected nothing cached before the first resolve")
	}
	if _, err := r.Resolve(context.Background(), "a.png", imaging.NewBox(20, 20)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, ok := r.Cached("a.png"); !ok {
			t.Fatal("Expected a.png to be cached")
		}
	}

	stats := r.Stats()
	if stats.Hits != 2 || stats.Misses != 1 || stats.Fetches != 1 {
		t.Errorf("Unexpected stats %+v", stats)
	}
}

func TestResolve_ConcurrentSingleFetch(t *testing.T) {
	fetcher := &fakeFetcher{
		data:    map[string][]byte{"a.png": encodePNG(t, 50, 50)},
		release: make(chan struct{}),
	}
	r := newTestResolver(t, fetcher, Options{})

	const workers = 8
	var wg sync.WaitGroup
	results := make([]image.Image, workers)
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = r.Resolve(context.Background(), "a.png", imaging.NewBox(40, 40))
		}(i)
	}

	close(fetcher.release)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("Worker %d: expected no error, got %v", i, err)
		}
		if results[i] != results[0] {
			t.Errorf("Worker %d got a different image", i)
		}
	}
	if got := fetcher.calls.Load(); got != 1 {
		t.Errorf("Expected 1 fetch, got %d", got)
	}
	if r.Len() != 1 {
		t.Errorf("Expected 1 cached image, got %d", r.Len())
	}
}

func TestResolve_ErrorsAreNotCached(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("boom")}
	r := newTestResolver(t, fetcher, Options{})

	if _, err := r.Resolve(context.Background(), "a.png", imaging.NewBox(100, 100)); err == nil {
		t.Fatal("Expected error")
	}
	if r.Len() != 0 {
		t.Errorf("Expected empty cache, got %d", r.Len())
	}

	fetcher.err = nil
	fetcher.data = map[string][]byte{"a.png": encodePNG(t, 10, 10)}
	if _, err := r.Resolve(context.Background(), "a.png", imaging.NewBox(100, 100)); err != nil {
		t.Fatalf("Expected no error on second attempt, got %v", err)
	}
	if got := fetcher.calls.Load(); got != 2 {
		t.Errorf("Expected 2 fetches, got %d", got)
	}
}

func TestResolve_DecodeError(t *testing.T) {
	fetcher := &fakeFetcher{data: map[string][]byte{"a.png": []byte("not an image")}}
	r := newTestResolver(t, fetcher, Options{})

	if _, err := r.Resolve(context.Background(), "a.png", imaging.NewBox(100, 100)); err == nil {
		t.Fatal("Expected decode error")
	}
	if _, ok := r.Cached("a.png"); ok {
		t.Error("Expected failed image to stay uncached")
	}
}

func TestResolve_BoxTooSmall(t *testing.T) {
	fetcher := &fakeFetcher{data: map[string][]byte{"a.png": encodePNG(t, 10, 10)}}
	r := newTestResolver(t, fetcher, Options{Padding: 10})

	_, err := r.Resolve(context.Background(), "a.png", imaging.NewBox(20, 100))
	if !errors.Is(err, ErrBoxTooSmall) {
		t.Fatalf("Expected ErrBoxTooSmall, got %v", err)
	}
	if got := fetcher.calls.Load(); got != 0 {
		t.Errorf("Expected no fetch, got %d", got)
	}
}

func TestResolve_EmptyRef(t *testing.T) {
	r := newTestResolver(t, &fakeFetcher{}, Options{})

	if _, err := r.Resolve(context.Background(), "", imaging.NewBox(100, 100)); !errors.Is(err, ErrEmptyRef) {
		t.Errorf("Expected ErrEmptyRef, got %v", err)
	}
}

func TestResolve_EvictsLeastRecentlyUsed(t *testing.T) {
	fetcher := &fakeFetcher{data: map[string][]byte{
		"a.png": encodePNG(t, 10, 10),
		"b.png": encodePNG(t, 10, 10),
		"c.png": encodePNG(t, 10, 10),
	}}
	r := newTestResolver(t, fetcher, Options{CacheLimit: 2})
	box := imaging.NewBox(20, 20)
	ctx := context.Background()

	for _, ref := range []string{"a.png", "b.png", "a.png", "c.png"} {
		if _, err := r.Resolve(ctx, ref, box); err != nil {
			t.Fatalf("Resolve %s: %v", ref, err)
		}
	}

	if r.Len() != 2 {
		t.Fatalf("Expected 2 cached images, got %d", r.Len())
	}
	if _, ok := r.Cached("b.png"); ok {
		t.Error("Expected b.png to be evicted")
	}
	if _, ok := r.Cached("a.png"); !ok {
		t.Error("Expected a.png to stay cached")
	}
	if stats := r.Stats(); stats.Evictions != 1 {
		t.Errorf("Expected 1 eviction, got %d", stats.Evictions)
	}
}

func TestCache_UnboundedByDefault(t *testing.T) {
	c := newCache(0)
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))

	for _, ref := range []string{"a", "b", "c", "d"} {
		if evicted := c.put(ref, img); evicted != 0 {
			t.Errorf("Expected no eviction for %s, got %d", ref, evicted)
		}
	}
	if c.len() != 4 {
		t.Errorf("Expected 4 entries, got %d", c.len())
	}
}
