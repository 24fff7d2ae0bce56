package meta

import (
	"sync"

	"github.com/mesh-intelligence/margins/pkg/types"
)

// SideCache is the process-wide scratch store: one mutable Record per
// canonical note identifier, created lazily on first access and retained for
// the process lifetime. Entries are never persisted and never evicted except
// by explicit Clear.
//
// Lazy creation is guarded by a mutex so the read-modify-write stays atomic
// when callers run on multiple goroutines. The Records themselves are handed
// out live; per the shared-resource policy, concurrent mutation of a single
// entry is the caller's problem.
type SideCache struct {
	mu      sync.Mutex
	entries map[string]types.Record
}

// NewSideCache returns an empty cache.
func NewSideCache() *SideCache {
	return &SideCache{entries: make(map[string]types.Record)}
}

// Entry returns the Record for id, creating and storing an empty one first
// if absent. The returned Record is the live entry; mutations through it are
// visible to every later access.
func (c *SideCache) Entry(id string) types.Record {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[id]
	if !ok {
		entry = types.Record{}
		c.entries[id] = entry
	}
	return entry
}

// Has reports whether an entry exists for id without creating one.
func (c *SideCache) Has(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[id]
	return ok
}

// Clear removes the entry for id, if any.
func (c *SideCache) Clear(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
}

// Len returns the number of entries.
func (c *SideCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
