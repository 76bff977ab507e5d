package website

import (
	"context"
	"sync"
	"time"
)

// resourceLister is the part of Store the cache reads from.
type resourceLister interface {
	ListResources(ctx context.Context) ([]Resource, error)
}

// ResourceCache is an in-memory TTL cache of published resources.
type ResourceCache struct {
	mu        sync.RWMutex
	resources []Resource
	loaded    bool
	fetched   time.Time
	ttl       time.Duration
	source    resourceLister
}

// NewResourceCache creates a ResourceCache backed by source.
func NewResourceCache(source resourceLister, ttl time.Duration) *ResourceCache {
	return &ResourceCache{source: source, ttl: ttl}
}

func (c *ResourceCache) valid() bool {
	return c.loaded && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *ResourceCache) Invalidate() {
	c.mu.Lock()
	c.resources = nil
	c.loaded = false
	c.mu.Unlock()
}

// ListResources returns the cached published resources, reloading them
// when the TTL has expired. It tries a read lock first and only takes the
// write lock when a reload is needed.
func (c *ResourceCache) ListResources(ctx context.Context) ([]Resource, error) {
	c.mu.RLock()
	if c.valid() {
		resources := c.resources
		c.mu.RUnlock()
		return resources, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.resources, nil
	}
	resources, err := c.source.ListResources(ctx)
	if err != nil {
		return nil, err
	}
	c.resources = resources
	c.loaded = true
	c.fetched = time.Now()
	return resources, nil
}
