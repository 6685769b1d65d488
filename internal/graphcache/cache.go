// Package graphcache caches numbered *profgraph.Graph values keyed by
// procedure signature, so re-instrumenting a file that only touched one
// function doesn't re-run the numbering pipeline over every procedure in
// it.
package graphcache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/arunpublic/BLPP-LLVM/graph/profgraph"
)

// Key identifies a procedure whose numbered graph may be cached: the
// source file it came from, its name, and a content fingerprint that
// changes whenever the procedure's body is edited.
type Key struct {
	File       string
	Function   string
	BodyDigest uint64
}

// Cache is an LRU cache of numbered graphs. It is safe for concurrent
// use; the underlying hashicorp/golang-lru implementation serializes
// Get/Add internally.
type Cache struct {
	lru *lru.Cache[Key, *profgraph.Graph]
}

// New creates a Cache holding at most size entries.
func New(size int) (*Cache, error) {
	c, err := lru.New[Key, *profgraph.Graph](size)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: c}, nil
}

// Get returns the cached graph for key, if present.
func (c *Cache) Get(key Key) (*profgraph.Graph, bool) {
	return c.lru.Get(key)
}

// Put stores g under key, evicting the least recently used entry if the
// cache is full.
func (c *Cache) Put(key Key, g *profgraph.Graph) {
	c.lru.Add(key, g)
}

// Len returns the number of entries currently cached.
func (c *Cache) Len() int {
	return c.lru.Len()
}

// Purge empties the cache, for callers that detect a build configuration
// change invalidating every prior numbering.
func (c *Cache) Purge() {
	c.lru.Purge()
}
