package catalog

import (
	"github.com/cespare/xxhash/v2"
	"github.com/elastic/go-freelru"
	"github.com/viant/heaply"
)

// Cached represents a bounded LRU decorator over a catalog; descriptor
// sequences are immutable so a cached sequence is shared by reference.
// Safe for concurrent readers.
type Cached struct {
	source Catalog
	lru    *freelru.SyncedLRU[string, []*heaply.FieldDescriptor]
}

// NewCached creates a caching catalog holding up to capacity type layouts
func NewCached(source Catalog, capacity uint32) (*Cached, error) {
	lru, err := freelru.NewSynced[string, []*heaply.FieldDescriptor](capacity, hashTypeKey)
	if err != nil {
		return nil, err
	}
	return &Cached{source: source, lru: lru}, nil
}

// Fields returns the cached descriptor sequence, resolving on miss
func (c *Cached) Fields(key string) ([]*heaply.FieldDescriptor, error) {
	if fields, ok := c.lru.Get(key); ok {
		return fields, nil
	}
	fields, err := c.source.Fields(key)
	if err != nil {
		return nil, err
	}
	c.lru.Add(key, fields)
	return fields, nil
}

func hashTypeKey(key string) uint32 {
	return uint32(xxhash.Sum64String(key))
}
