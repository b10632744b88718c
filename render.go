package xsltmsg

import (
	"fmt"

	"github.com/loopcontext/xsltmsg/internal/msgformat"
)

// Renderer turns a (catalog, code, args) triple into display text. The zero
// value is ready to use.
type Renderer struct {
	events *events
}

// Render looks code up in catalog and substitutes args into its template.
//
// A nil args slice returns the template verbatim; a non-nil slice, even an
// empty one, is substituted. Nil entries render as "". When code is not in
// the catalog the BAD_CODE template is rendered instead and a *BadCodeError
// carrying the same text is returned. Substitution failures never surface
// as errors: the result is the FORMAT_FAILED text followed by the raw
// template.
func (r *Renderer) Render(catalog *Catalog, code string, args []any) (string, error) {
	tpl, found := catalog.Template(code)
	if !found {
		r.events.badCode(catalog.Domain(), code)
		badTpl, _ := catalog.Template(BadCode)
		text := r.substitute(catalog, code, badTpl, args)
		return text, &BadCodeError{Domain: catalog.Domain(), Code: code, Text: text}
	}
	return r.substitute(catalog, code, tpl, args), nil
}

func (r *Renderer) substitute(catalog *Catalog, code string, tpl string, args []any) string {
	if args == nil {
		return tpl
	}
	text, err := msgformat.Format(tpl, stringArgs(args))
	if err != nil {
		r.events.formatFailure(catalog.Domain(), code, err)
		failed, _ := catalog.Template(FormatFailed)
		return failed + " " + tpl
	}
	return text
}

func stringArgs(args []any) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		switch v := arg.(type) {
		case nil:
		case string:
			out[i] = v
		case *string:
			if v != nil {
				out[i] = *v
			}
		default:
			out[i] = fmt.Sprint(v)
		}
	}
	return out
}
