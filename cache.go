package xsltmsg

import (
	"sort"
	"sync"
	"sync/atomic"
)

// ResolveFunc produces the catalog for a domain on first use.
type ResolveFunc func(domain string) (*Catalog, error)

type cacheEntry struct {
	mu      sync.Mutex
	catalog atomic.Pointer[Catalog]
}

// CatalogCache resolves each domain's catalog at most once and serves it
// from then on. Failed resolutions are not cached. There is no eviction.
type CatalogCache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	resolve ResolveFunc
}

func NewCatalogCache(resolve ResolveFunc) *CatalogCache {
	return &CatalogCache{
		entries: map[string]*cacheEntry{},
		resolve: resolve,
	}
}

func (c *CatalogCache) entry(domain string) *cacheEntry {
	c.mu.RLock()
	e, found := c.entries[domain]
	c.mu.RUnlock()
	if found {
		return e
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if e, found = c.entries[domain]; !found {
		e = &cacheEntry{}
		c.entries[domain] = e
	}
	return e
}

func (c *CatalogCache) Get(domain string) (*Catalog, error) {
	e := c.entry(domain)
	if catalog := e.catalog.Load(); catalog != nil {
		return catalog, nil
	}

	// Concurrent first callers for one domain queue here; only the first
	// one resolves.
	e.mu.Lock()
	defer e.mu.Unlock()
	if catalog := e.catalog.Load(); catalog != nil {
		return catalog, nil
	}
	catalog, err := c.resolve(domain)
	if err != nil {
		return nil, err
	}
	e.catalog.Store(catalog)
	return catalog, nil
}

// Peek returns the cached catalog without resolving.
func (c *CatalogCache) Peek(domain string) (*Catalog, bool) {
	c.mu.RLock()
	e, found := c.entries[domain]
	c.mu.RUnlock()
	if !found {
		return nil, false
	}
	catalog := e.catalog.Load()
	return catalog, catalog != nil
}

// Domains lists the domains with a resolved catalog, sorted.
func (c *CatalogCache) Domains() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	domains := make([]string, 0, len(c.entries))
	for domain, e := range c.entries {
		if e.catalog.Load() != nil {
			domains = append(domains, domain)
		}
	}
	sort.Strings(domains)
	return domains
}
