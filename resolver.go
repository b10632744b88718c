package xsltmsg

import (
	"errors"

	"go.uber.org/zap"
)

// DefaultRegionalVariants are the locales whose region is part of the
// catalog suffix. Every other locale selects by language alone.
var DefaultRegionalVariants = []Locale{
	{Language: "zh", Region: "TW"},
	{Language: "zh", Region: "CN"},
}

// Resolver turns a (domain, locale) pair into a catalog: the exact locale
// variant first, then the domain's base catalog.
type Resolver struct {
	store    CatalogStore
	regional map[Locale]struct{}
	events   *events
}

type ResolverOption func(*Resolver)

// WithRegionalVariants replaces DefaultRegionalVariants.
func WithRegionalVariants(locales ...Locale) ResolverOption {
	return func(r *Resolver) {
		r.regional = make(map[Locale]struct{}, len(locales))
		for _, loc := range locales {
			r.regional[NewLocale(loc.Language, loc.Region)] = struct{}{}
		}
	}
}

func withEvents(e *events) ResolverOption {
	return func(r *Resolver) {
		r.events = e
	}
}

func NewResolver(store CatalogStore, opts ...ResolverOption) *Resolver {
	r := &Resolver{store: store}
	WithRegionalVariants(DefaultRegionalVariants...)(r)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Variant returns the catalog suffix for loc: "" for the root locale, the
// language, or language_REGION for registered regional variants.
func (r *Resolver) Variant(loc Locale) string {
	if loc.IsRoot() {
		return ""
	}
	if loc.Region != "" {
		if _, regional := r.regional[loc]; regional {
			return loc.Language + "_" + loc.Region
		}
	}
	return loc.Language
}

func (r *Resolver) Resolve(domain string, loc Locale) (*Catalog, error) {
	if variant := r.Variant(loc); variant != "" {
		name := CatalogName(domain, variant)
		catalog, err := r.store.LoadCatalog(domain, name)
		if err == nil {
			r.events.catalogResolved(domain, loc, catalog)
			return catalog, nil
		}
		if !errors.Is(err, ErrCatalogNotFound) && r.events != nil {
			r.events.logger.Warn("localized catalog failed to load",
				zap.String("catalog", name),
				zap.Error(err))
		}
	}

	catalog, err := r.store.LoadCatalog(domain, CatalogName(domain, ""))
	if err != nil {
		unavailable := &CatalogUnavailableError{Domain: domain, Locale: loc, Err: err}
		r.events.catalogUnavailable(domain, loc, unavailable)
		return nil, unavailable
	}
	if !loc.IsRoot() {
		r.events.localeFallback(domain, loc, catalog.Name())
	}
	r.events.catalogResolved(domain, loc, catalog)
	return catalog, nil
}
