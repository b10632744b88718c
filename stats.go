package xsltmsg

import (
	"fmt"
	"maps"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
)

//go:generate mockgen -source=$GOFILE -package mock_xsltmsg -destination=test/mock/$GOFILE

const overflowStatKey = "__overflow__"

// Observer receives catalog and rendering events. Calls happen on the
// goroutine that reported the diagnostic; a panicking observer is ignored.
type Observer interface {
	OnLocaleFallback(domain string, requested string, resolved string)
	OnCatalogUnavailable(domain string, locale string)
	OnBadCode(domain string, code string)
	OnFormatFailure(domain string, code string, issue string)
}

type MessageServiceStats struct {
	LocaleFallbacks     map[string]int
	UnavailableCatalogs map[string]int
	BadCodes            map[string]int
	FormatFailures      map[string]int
	Resolutions         map[string]int
	LastResolvedAt      time.Time
}

type statKind int

const (
	statLocaleFallback statKind = iota
	statUnavailable
	statBadCode
	statFormatFailure
	statResolution
	statKindCount
)

// maxStatKeyLen bounds a stat key in bytes.
const maxStatKeyLen = 120

// serviceStats holds one counter map per statKind. The maps are replaced on
// reset, so they are only ever touched with mu held.
type serviceStats struct {
	mu             sync.Mutex
	counters       [statKindCount]map[string]int
	maxKeys        int
	lastResolvedAt time.Time
}

func newServiceStats(maxKeys int) *serviceStats {
	s := &serviceStats{maxKeys: maxKeys}
	s.reset()
	return s
}

func statKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return "unknown"
	}
	if len(key) <= maxStatKeyLen {
		return key
	}
	cut := maxStatKeyLen
	for cut > 0 && !utf8.RuneStart(key[cut]) {
		cut--
	}
	return key[:cut]
}

// count adds one to key in the kind's counter. Once a counter holds
// maxKeys keys (the overflow key included), unseen keys land on the
// overflow key.
func (s *serviceStats) count(kind statKind, key string) {
	key = statKey(key)

	s.mu.Lock()
	defer s.mu.Unlock()
	counter := s.counters[kind]
	if _, seen := counter[key]; !seen && s.maxKeys > 0 {
		room := s.maxKeys - len(counter)
		if _, overflowed := counter[overflowStatKey]; !overflowed {
			room--
		}
		if room <= 0 {
			key = overflowStatKey
		}
	}
	counter[key]++
}

func (s *serviceStats) resolvedAt(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastResolvedAt = t
}

func (s *serviceStats) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for kind := range s.counters {
		s.counters[kind] = map[string]int{}
	}
	s.lastResolvedAt = time.Time{}
}

func (s *serviceStats) snapshot() MessageServiceStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return MessageServiceStats{
		LocaleFallbacks:     maps.Clone(s.counters[statLocaleFallback]),
		UnavailableCatalogs: maps.Clone(s.counters[statUnavailable]),
		BadCodes:            maps.Clone(s.counters[statBadCode]),
		FormatFailures:      maps.Clone(s.counters[statFormatFailure]),
		Resolutions:         maps.Clone(s.counters[statResolution]),
		LastResolvedAt:      s.lastResolvedAt,
	}
}

// events fans a single occurrence out to stats, the logger and the
// observer. A nil *events drops everything.
type events struct {
	stats    *serviceStats
	observer Observer
	logger   *zap.Logger
	now      func() time.Time
}

func safeObserverCall(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}

func (e *events) catalogResolved(domain string, requested Locale, catalog *Catalog) {
	if e == nil {
		return
	}
	e.stats.count(statResolution, fmt.Sprintf("%s->%s", domain, catalog.Name()))
	e.stats.resolvedAt(e.now())
	e.logger.Debug("catalog resolved",
		zap.String("domain", domain),
		zap.String("locale", requested.String()),
		zap.String("catalog", catalog.Name()))
}

func (e *events) localeFallback(domain string, requested Locale, resolved string) {
	if e == nil {
		return
	}
	e.stats.count(statLocaleFallback, fmt.Sprintf("%s:%s->%s", domain, requested, resolved))
	e.logger.Warn("no localized catalog, using base catalog",
		zap.String("domain", domain),
		zap.String("locale", requested.String()),
		zap.String("catalog", resolved))
	if e.observer != nil {
		safeObserverCall(func() {
			e.observer.OnLocaleFallback(domain, requested.String(), resolved)
		})
	}
}

func (e *events) catalogUnavailable(domain string, requested Locale, err error) {
	if e == nil {
		return
	}
	e.stats.count(statUnavailable, fmt.Sprintf("%s:%s", domain, requested))
	e.logger.Error("no catalog available",
		zap.String("domain", domain),
		zap.String("locale", requested.String()),
		zap.Error(err))
	if e.observer != nil {
		safeObserverCall(func() {
			e.observer.OnCatalogUnavailable(domain, requested.String())
		})
	}
}

func (e *events) badCode(domain string, code string) {
	if e == nil {
		return
	}
	e.stats.count(statBadCode, fmt.Sprintf("%s:%s", domain, code))
	e.logger.Warn("unknown diagnostic code",
		zap.String("domain", domain),
		zap.String("code", code))
	if e.observer != nil {
		safeObserverCall(func() {
			e.observer.OnBadCode(domain, code)
		})
	}
}

func (e *events) formatFailure(domain string, code string, err error) {
	if e == nil {
		return
	}
	e.stats.count(statFormatFailure, fmt.Sprintf("%s:%s", domain, code))
	e.logger.Debug("template substitution failed",
		zap.String("domain", domain),
		zap.String("code", code),
		zap.Error(err))
	if e.observer != nil {
		safeObserverCall(func() {
			e.observer.OnFormatFailure(domain, code, err.Error())
		})
	}
}
