package xsltmsg

import (
	"fmt"
	"sort"
)

// Reserved codes every catalog must define.
const (
	BadCode      = "BAD_CODE"
	FormatFailed = "FORMAT_FAILED"
)

// Catalog maps diagnostic codes to templates for one domain at one
// effective locale. It is immutable once built.
type Catalog struct {
	domain  string
	name    string
	entries map[string]string
}

// NewCatalog copies entries into a new Catalog. Both reserved codes must be
// present.
func NewCatalog(domain string, name string, entries map[string]string) (*Catalog, error) {
	for _, reserved := range []string{BadCode, FormatFailed} {
		if _, found := entries[reserved]; !found {
			return nil, fmt.Errorf("%w: catalog %s has no %s entry", ErrInvalidCatalog, name, reserved)
		}
	}
	copied := make(map[string]string, len(entries))
	for code, tpl := range entries {
		copied[code] = tpl
	}
	return &Catalog{domain: domain, name: name, entries: copied}, nil
}

func (c *Catalog) Domain() string {
	return c.domain
}

// Name is the locale-qualified catalog name, e.g. "xslt_ja".
func (c *Catalog) Name() string {
	return c.name
}

func (c *Catalog) Template(code string) (string, bool) {
	tpl, found := c.entries[code]
	return tpl, found
}

func (c *Catalog) Len() int {
	return len(c.entries)
}

// Codes returns every code in the catalog, sorted.
func (c *Catalog) Codes() []string {
	codes := make([]string, 0, len(c.entries))
	for code := range c.entries {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
