package xsltmsg

import (
	"time"

	"go.uber.org/zap"
)

// Diagnostic domains shipped with the engine.
const (
	DomainXSLT  = "xslt"
	DomainXPath = "xpath"
)

type Config struct {
	// Locale selects catalog variants, e.g. "ja" or "zh_TW". Empty means
	// the process locale from the environment.
	Locale string
	// Store supplies catalogs. Required.
	Store CatalogStore
	// RegionalVariants overrides DefaultRegionalVariants ("zh_TW", ...).
	RegionalVariants []string
	Logger           *zap.Logger
	Observer         Observer
	StatsMaxKeys     int
	NowFn            func() time.Time
}
