package bankregistry

import (
	"container/list"
	"context"
	"errors"
	"sync"
)

const DefaultCacheSize = 512

type cacheEntry struct {
	abi   string
	bank  Bank
	found bool
}

// Cached memoizes lookups of another Registry in a fixed-size LRU.
// Unknown codes are cached too; any other error is passed through uncached.
type Cached struct {
	next     Registry
	capacity int

	mu       sync.Mutex
	items    map[string]*list.Element
	eviction *list.List
}

// NewCached wraps next. A non-positive size uses DefaultCacheSize.
func NewCached(next Registry, size int) *Cached {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &Cached{
		next:     next,
		capacity: size,
		items:    make(map[string]*list.Element, size),
		eviction: list.New(),
	}
}

func (c *Cached) Lookup(ctx context.Context, abi string) (Bank, error) {
	if e, ok := c.get(abi); ok {
		if !e.found {
			return Bank{}, ErrBankNotFound
		}
		return e.bank, nil
	}

	b, err := c.next.Lookup(ctx, abi)
	switch {
	case err == nil:
		c.put(cacheEntry{abi: abi, bank: b, found: true})
	case errors.Is(err, ErrBankNotFound):
		c.put(cacheEntry{abi: abi})
	}
	return b, err
}

// Len returns the number of cached codes.
func (c *Cached) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}

// Purge empties the cache.
func (c *Cached) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*list.Element, c.capacity)
	c.eviction.Init()
}

func (c *Cached) get(abi string) (cacheEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[abi]
	if !ok {
		return cacheEntry{}, false
	}
	c.eviction.MoveToFront(elem)
	return *elem.Value.(*cacheEntry), true
}

func (c *Cached) put(e cacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[e.abi]; ok {
		c.eviction.MoveToFront(elem)
		*elem.Value.(*cacheEntry) = e
		return
	}

	c.items[e.abi] = c.eviction.PushFront(&e)
	if c.eviction.Len() > c.capacity {
		oldest := c.eviction.Back()
		c.eviction.Remove(oldest)
		delete(c.items, oldest.Value.(*cacheEntry).abi)
	}
}
