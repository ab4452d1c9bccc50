package geocoder

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"thermaglobe/internal/boundary"
)

// datasetCache lazily loads one boundary collection. Concurrent first
// callers share a single in-flight load instead of each triggering their
// own, and a failed load is never cached, so a later call retries from the
// source list. Once loaded the collection (index included) is immutable
// and shared for the life of the process.
type datasetCache struct {
	sources []boundary.Source

	group singleflight.Group
	mu    sync.RWMutex
	coll  *boundary.Collection
}

func newDatasetCache(sources []boundary.Source) *datasetCache {
	return &datasetCache{sources: sources}
}

func (c *datasetCache) get() (*boundary.Collection, error) {
	c.mu.RLock()
	coll := c.coll
	c.mu.RUnlock()
	if coll != nil {
		return coll, nil
	}

	v, err, _ := c.group.Do("load", func() (any, error) {
		// A caller that lost the race to a completed load lands here
		// after the cache was already populated.
		c.mu.RLock()
		cached := c.coll
		c.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		loaded, err := boundary.Load(c.sources...)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.coll = loaded
		c.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*boundary.Collection), nil
}
