package xsltmsg

import (
	"errors"
	"fmt"
	"sync"
)

//go:generate mockgen -source=$GOFILE -package mock_xsltmsg -destination=test/mock/$GOFILE

// CatalogStore loads a catalog by its locale-qualified name ("xslt",
// "xslt_ja", "xslt_zh_TW"). A missing catalog is reported with an error
// matching ErrCatalogNotFound.
type CatalogStore interface {
	LoadCatalog(domain string, name string) (*Catalog, error)
}

// CatalogName joins a domain and a locale variant suffix.
func CatalogName(domain string, variant string) string {
	if variant == "" {
		return domain
	}
	return domain + "_" + variant
}

// CatalogFunc builds the entries of one catalog on demand.
type CatalogFunc func() (map[string]string, error)

type registryEntry struct {
	domain  string
	fn      CatalogFunc
	catalog *Catalog
}

// Registry is an in-memory CatalogStore keyed by catalog name. Providers run
// on first load; successful results are kept.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*registryEntry
}

func NewRegistry() *Registry {
	return &Registry{entries: map[string]*registryEntry{}}
}

// Register adds a provider for domain's variant ("" for the base catalog).
// A later registration under the same name replaces the earlier one.
func (r *Registry) Register(domain string, variant string, fn CatalogFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.entries == nil {
		r.entries = map[string]*registryEntry{}
	}
	r.entries[CatalogName(domain, variant)] = &registryEntry{domain: domain, fn: fn}
}

// RegisterTable adds a fixed table. The table is copied when first loaded.
func (r *Registry) RegisterTable(domain string, variant string, entries map[string]string) {
	r.Register(domain, variant, func() (map[string]string, error) {
		return entries, nil
	})
}

func (r *Registry) LoadCatalog(domain string, name string) (*Catalog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, found := r.entries[name]
	if !found || entry.domain != domain {
		return nil, fmt.Errorf("%w: %s", ErrCatalogNotFound, name)
	}
	if entry.catalog != nil {
		return entry.catalog, nil
	}
	table, err := entry.fn()
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog %s: %w", name, err)
	}
	catalog, err := NewCatalog(domain, name, table)
	if err != nil {
		return nil, err
	}
	entry.catalog = catalog
	return catalog, nil
}

type chainStore []CatalogStore

// ChainStore consults stores in order and returns the first catalog found.
// Any error other than ErrCatalogNotFound ends the search.
func ChainStore(stores ...CatalogStore) CatalogStore {
	return chainStore(stores)
}

func (c chainStore) LoadCatalog(domain string, name string) (*Catalog, error) {
	for _, store := range c {
		catalog, err := store.LoadCatalog(domain, name)
		if err == nil {
			return catalog, nil
		}
		if !errors.Is(err, ErrCatalogNotFound) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrCatalogNotFound, name)
}
