package xsltmsg

import (
	"errors"
	"fmt"
)

var (
	// ErrCatalogNotFound is returned by a CatalogStore that has no catalog
	// under the requested name.
	ErrCatalogNotFound = errors.New("catalog not found")
	// ErrCatalogUnavailable means not even the base catalog of a domain
	// could be loaded. It is a configuration error.
	ErrCatalogUnavailable = errors.New("no catalog available")
	// ErrBadCode reports a diagnostic code missing from a valid catalog.
	ErrBadCode = errors.New("unknown diagnostic code")
	// ErrInvalidCatalog reports a catalog without the reserved codes.
	ErrInvalidCatalog = errors.New("invalid catalog")
)

type CatalogUnavailableError struct {
	Domain string
	Locale Locale
	Err    error
}

func (e *CatalogUnavailableError) Error() string {
	msg := fmt.Sprintf("could not load any catalog for domain %q (locale %q)", e.Domain, e.Locale.String())
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *CatalogUnavailableError) Unwrap() error {
	return e.Err
}

func (e *CatalogUnavailableError) Is(target error) bool {
	return target == ErrCatalogUnavailable
}

// BadCodeError is returned together with the rendered BAD_CODE text. Text
// carries that same rendering for callers that only keep the error.
type BadCodeError struct {
	Domain string
	Code   string
	Text   string
}

func (e *BadCodeError) Error() string {
	return fmt.Sprintf("%s: %q in domain %q", ErrBadCode.Error(), e.Code, e.Domain)
}

func (e *BadCodeError) Is(target error) bool {
	return target == ErrBadCode
}

// Severity distinguishes errors from warnings. Both render from the same
// catalog.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// DiagnosticError is a rendered diagnostic usable as a Go error.
type DiagnosticError struct {
	err      error
	domain   string
	code     string
	severity Severity
	message  string
}

func (de *DiagnosticError) Error() string {
	return de.message
}

func (de *DiagnosticError) Unwrap() error {
	return de.err
}

func (de *DiagnosticError) Domain() string {
	return de.domain
}

func (de *DiagnosticError) Code() string {
	return de.code
}

func (de *DiagnosticError) Severity() Severity {
	return de.severity
}

func (de *DiagnosticError) Message() string {
	return de.message
}

func newDiagnosticError(domain string, code string, severity Severity, message string, err error) error {
	return &DiagnosticError{err: err, domain: domain, code: code, severity: severity, message: message}
}
