package resolver

import (
	"container/list"
	"image"
	"sync"
)

// cache maps image references to resized images. A limit of 0 keeps every
// entry for the session; a positive limit evicts the least recently used.
type cache struct {
	mu      sync.Mutex
	limit   int
	entries map[string]*list.Element
	order   *list.List
}

type cacheEntry struct {
	ref string
	img image.Image
}

func newCache(limit int) *cache {
	if limit < 0 {
		limit = 0
	}
	return &cache{
		limit:   limit,
		entries: make(map[string]*list.Element),
		order:   list.New(),
	}
}

func (c *cache) get(ref string) (image.Image, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[ref]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*cacheEntry).img, true
}

// put stores img and returns how many entries were evicted
func (c *cache) put(ref string, img image.Image) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[ref]; ok {
		el.Value.(*cacheEntry).img = img
		c.order.MoveToFront(el)
		return 0
	}

	c.entries[ref] = c.order.PushFront(&cacheEntry{ref: ref, img: img})

	evicted := 0
	for c.limit > 0 && c.order.Len() > c.limit {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).ref)
		evicted++
	}
	return evicted
}

func (c *cache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
