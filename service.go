package xsltmsg

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// MessageService is what the transformation engine uses to report
// diagnostics.
//
// The locale should be set before the first message of a domain is
// rendered: each domain's catalog is resolved once, against the locale in
// effect at that moment, and kept for the lifetime of the service.
type MessageService interface {
	SetLocale(locale Locale)
	GetLocale() Locale
	CreateMessage(domain string, code string, args []any) (string, error)
	CreateWarning(domain string, code string, args []any) (string, error)
}

var _ MessageService = (*DefaultMessageService)(nil)

type DefaultMessageService struct {
	mu       sync.RWMutex
	locale   Locale
	cfg      Config
	resolver *Resolver
	cache    *CatalogCache
	renderer *Renderer
	stats    *serviceStats
}

func NewMessageService(cfg Config) (*DefaultMessageService, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("catalog store is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.NowFn == nil {
		cfg.NowFn = time.Now
	}
	if cfg.StatsMaxKeys <= 0 {
		cfg.StatsMaxKeys = 512
	}

	locale := LocaleFromEnv()
	if cfg.Locale != "" {
		parsed, err := ParseLocale(cfg.Locale)
		if err != nil {
			return nil, err
		}
		locale = parsed
	}

	resolverOpts := []ResolverOption{}
	if len(cfg.RegionalVariants) > 0 {
		regional := make([]Locale, 0, len(cfg.RegionalVariants))
		for _, raw := range cfg.RegionalVariants {
			loc, err := ParseLocale(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid regional variant: %w", err)
			}
			if loc.Region == "" {
				return nil, fmt.Errorf("regional variant %q has no region", raw)
			}
			regional = append(regional, loc)
		}
		resolverOpts = append(resolverOpts, WithRegionalVariants(regional...))
	}

	stats := newServiceStats(cfg.StatsMaxKeys)
	evts := &events{
		stats:    stats,
		observer: cfg.Observer,
		logger:   cfg.Logger,
		now:      cfg.NowFn,
	}

	dms := &DefaultMessageService{
		locale:   locale,
		cfg:      cfg,
		resolver: NewResolver(cfg.Store, append(resolverOpts, withEvents(evts))...),
		renderer: &Renderer{events: evts},
		stats:    stats,
	}
	dms.cache = NewCatalogCache(func(domain string) (*Catalog, error) {
		return dms.resolver.Resolve(domain, dms.GetLocale())
	})

	return dms, nil
}

// SetLocale changes the locale used for domains not resolved yet. Domains
// already resolved keep their catalog.
func (dms *DefaultMessageService) SetLocale(locale Locale) {
	dms.mu.Lock()
	defer dms.mu.Unlock()
	dms.locale = NewLocale(locale.Language, locale.Region)
}

func (dms *DefaultMessageService) GetLocale() Locale {
	dms.mu.RLock()
	defer dms.mu.RUnlock()
	return dms.locale
}

// Catalog returns the domain's catalog, resolving it on first use.
func (dms *DefaultMessageService) Catalog(domain string) (*Catalog, error) {
	return dms.cache.Get(domain)
}

// CreateMessage renders an error diagnostic. For an unknown code it returns
// the BAD_CODE text together with a *BadCodeError. The only other error is
// a *CatalogUnavailableError, in which case the text is empty.
func (dms *DefaultMessageService) CreateMessage(domain string, code string, args []any) (string, error) {
	return dms.create(domain, code, args)
}

// CreateWarning renders a warning. Warnings share the error catalog.
func (dms *DefaultMessageService) CreateWarning(domain string, code string, args []any) (string, error) {
	return dms.create(domain, code, args)
}

func (dms *DefaultMessageService) create(domain string, code string, args []any) (string, error) {
	catalog, err := dms.cache.Get(domain)
	if err != nil {
		return "", err
	}
	return dms.renderer.Render(catalog, code, args)
}

// NewError renders an error diagnostic as a *DiagnosticError.
func (dms *DefaultMessageService) NewError(domain string, code string, args []any) error {
	return dms.WrapError(nil, domain, code, args)
}

// NewWarning is NewError for warnings.
func (dms *DefaultMessageService) NewWarning(domain string, code string, args []any) error {
	return dms.wrap(nil, SeverityWarning, domain, code, args)
}

// WrapError renders a diagnostic whose cause is err. A bad code is joined
// to the cause so both match with errors.Is.
func (dms *DefaultMessageService) WrapError(err error, domain string, code string, args []any) error {
	return dms.wrap(err, SeverityError, domain, code, args)
}

func (dms *DefaultMessageService) wrap(cause error, severity Severity, domain string, code string, args []any) error {
	text, err := dms.create(domain, code, args)
	if err != nil {
		if !errors.Is(err, ErrBadCode) {
			return err
		}
		cause = errors.Join(cause, err)
	}
	return newDiagnosticError(domain, code, severity, text, cause)
}

func (dms *DefaultMessageService) SnapshotStats() MessageServiceStats {
	return dms.stats.snapshot()
}

func (dms *DefaultMessageService) ResetStats() {
	dms.stats.reset()
}
