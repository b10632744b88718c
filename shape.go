package xsltmsg

import (
	"fmt"

	"github.com/loopcontext/xsltmsg/internal/msgformat"
)

// ShapeProblem classifies a difference between a localized catalog and the
// base catalog of its domain.
type ShapeProblem string

const (
	// ShapeMissing: the code is only in the base catalog. Rendering it in
	// the localized catalog yields BAD_CODE.
	ShapeMissing ShapeProblem = "missing"
	ShapeExtra   ShapeProblem = "extra"
	// ShapeMalformed: the template cannot be parsed, so any substitution
	// renders FORMAT_FAILED.
	ShapeMalformed ShapeProblem = "malformed"
	// ShapeArgCount: the template takes a different number of arguments
	// than the base template.
	ShapeArgCount ShapeProblem = "argument count"
)

type ShapeIssue struct {
	Catalog string
	Code    string
	Problem ShapeProblem
	Detail  string
}

func (i ShapeIssue) String() string {
	if i.Detail == "" {
		return fmt.Sprintf("%s %s: %s", i.Catalog, i.Code, i.Problem)
	}
	return fmt.Sprintf("%s %s: %s (%s)", i.Catalog, i.Code, i.Problem, i.Detail)
}

// Severe reports whether the issue changes what a caller gets back.
// Missing codes only degrade to the base behavior of BAD_CODE.
func (i ShapeIssue) Severe() bool {
	return i.Problem != ShapeMissing
}

// CompareShape checks variant against base: same codes, parseable
// templates, same argument counts. Passing the base catalog as variant
// checks only that its templates parse. Missing codes come first, then the
// rest, each group ordered by code.
func CompareShape(base *Catalog, variant *Catalog) []ShapeIssue {
	var issues []ShapeIssue
	add := func(code string, problem ShapeProblem, detail string) {
		issues = append(issues, ShapeIssue{Catalog: variant.Name(), Code: code, Problem: problem, Detail: detail})
	}

	for _, code := range base.Codes() {
		if _, found := variant.Template(code); !found {
			add(code, ShapeMissing, "")
		}
	}
	for _, code := range variant.Codes() {
		tpl, _ := variant.Template(code)
		parsed, err := msgformat.Parse(tpl)
		if err != nil {
			add(code, ShapeMalformed, err.Error())
			continue
		}
		baseTpl, found := base.Template(code)
		if !found {
			add(code, ShapeExtra, "")
			continue
		}
		baseParsed, err := msgformat.Parse(baseTpl)
		if err != nil {
			continue
		}
		if parsed.ArgCount() != baseParsed.ArgCount() {
			add(code, ShapeArgCount, fmt.Sprintf("%d, base has %d", parsed.ArgCount(), baseParsed.ArgCount()))
		}
	}
	return issues
}
