// Package views names the cacheable reads downstream consumers may hold and
// provides the invalidation channel between mutations and those consumers.
// Mutating operations only announce which views went stale; they never push
// data.
package views

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// PostList is the named view for the full descending post listing.
const PostList = "post-list"

// PostDetail names the detail view for a single post.
func PostDetail(id int64) string {
	return fmt.Sprintf("post-detail:%d", id)
}

// Invalidator receives staleness signals after successful mutations.
type Invalidator interface {
	Invalidate(names ...string)
}

type entry struct {
	data      interface{}
	expiresAt time.Time
}

// Cache is a TTL'd LRU of named views. It is a read-through convenience for
// presentation code, never a source of truth: a mutation invalidates the
// affected names before the caller sees its result.
type Cache struct {
	lru *lru.Cache[string, entry]
}

var _ Invalidator = (*Cache)(nil)

// NewCache builds a view cache holding at most size entries.
func NewCache(size int) (*Cache, error) {
	l, err := lru.New[string, entry](size)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: l}, nil
}

// Get returns the cached value for name, or false if absent or expired.
func (c *Cache) Get(name string) (interface{}, bool) {
	e, ok := c.lru.Get(name)
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		c.lru.Remove(name)
		return nil, false
	}
	return e.data, true
}

// Set stores data under name for ttl.
func (c *Cache) Set(name string, data interface{}, ttl time.Duration) {
	c.lru.Add(name, entry{data: data, expiresAt: time.Now().Add(ttl)})
}

// Invalidate drops the named views.
func (c *Cache) Invalidate(names ...string) {
	for _, name := range names {
		c.lru.Remove(name)
	}
}
