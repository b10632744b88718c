// Package msgformat parses and renders diagnostic templates.
//
// A template is literal text with ordinal placeholders such as {0} or {12}.
// Apostrophes quote literal text the way java.text.MessageFormat does: a
// doubled apostrophe produces a single one and '{' produces a literal
// brace. Sub-formats ({0,number}, {1,choice,...}) are not supported and make
// a template malformed.
package msgformat

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnmatchedBrace     = errors.New("unmatched braces in template")
	ErrInvalidArgument    = errors.New("invalid argument index in template")
	ErrUnsupportedFormat  = errors.New("sub-formats are not supported")
	ErrArgumentOutOfRange = errors.New("argument index out of range")
)

type part struct {
	literal string
	arg     int // -1 for literal parts
}

// Template is a parsed template, safe for concurrent use.
type Template struct {
	raw    string
	parts  []part
	maxArg int
}

// Parse splits raw into literal and placeholder parts.
func Parse(raw string) (*Template, error) {
	t := &Template{raw: raw, maxArg: -1}
	var lit strings.Builder
	inQuote := false

	flush := func() {
		if lit.Len() > 0 {
			t.parts = append(t.parts, part{literal: lit.String(), arg: -1})
			lit.Reset()
		}
	}

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c == '\'' {
			if i+1 < len(raw) && raw[i+1] == '\'' {
				lit.WriteByte('\'')
				i++
				continue
			}
			inQuote = !inQuote
			continue
		}
		if inQuote || c != '{' {
			lit.WriteByte(c)
			continue
		}

		end := strings.IndexByte(raw[i+1:], '}')
		if end < 0 {
			return nil, fmt.Errorf("%w at offset %d", ErrUnmatchedBrace, i)
		}
		body := raw[i+1 : i+1+end]
		if strings.ContainsRune(body, '{') {
			return nil, fmt.Errorf("%w at offset %d", ErrUnmatchedBrace, i)
		}
		if strings.ContainsRune(body, ',') {
			return nil, fmt.Errorf("%w: {%s}", ErrUnsupportedFormat, body)
		}
		idx, err := strconv.Atoi(strings.TrimSpace(body))
		if err != nil || idx < 0 {
			return nil, fmt.Errorf("%w: {%s}", ErrInvalidArgument, body)
		}
		flush()
		t.parts = append(t.parts, part{arg: idx})
		if idx > t.maxArg {
			t.maxArg = idx
		}
		i += end + 1
	}
	flush()

	return t, nil
}

// Raw returns the unparsed template text.
func (t *Template) Raw() string {
	return t.raw
}

// ArgCount is the number of arguments the template needs: the highest
// placeholder index plus one.
func (t *Template) ArgCount() int {
	return t.maxArg + 1
}

// Execute substitutes args into the template.
func (t *Template) Execute(args []string) (string, error) {
	if t.maxArg >= len(args) {
		return "", fmt.Errorf("%w: {%d} with %d argument(s)", ErrArgumentOutOfRange, t.maxArg, len(args))
	}
	var b strings.Builder
	b.Grow(len(t.raw))
	for _, p := range t.parts {
		if p.arg < 0 {
			b.WriteString(p.literal)
			continue
		}
		b.WriteString(args[p.arg])
	}
	return b.String(), nil
}

// Format parses raw and executes it against args in one step.
func Format(raw string, args []string) (string, error) {
	t, err := Parse(raw)
	if err != nil {
		return "", err
	}
	return t.Execute(args)
}
