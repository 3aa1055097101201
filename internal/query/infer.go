package query

import (
	"regexp"
	"strings"

	"github.com/priyadarshn/lokal/internal/catalog"
)

// KeywordRule maps a substring hit to a category.
type KeywordRule struct {
	Keyword  string
	Category catalog.Category
}

// PatternRule maps a regular expression hit to a category.
type PatternRule struct {
	Pattern  *regexp.Regexp
	Category catalog.Category
}

// InferenceTables hold the layered rule sets the engine walks in order.
type InferenceTables struct {
	// Direct holds high-confidence single keywords, checked first.
	Direct []KeywordRule
	// Patterns are tested in slice order; first match wins.
	Patterns []PatternRule
	// Secondary holds lower-confidence substring checks, tried last.
	Secondary []KeywordRule
}

// Engine resolves normalized text to one category from the closed
// enumeration. The tiers form a strict precedence order: an explicit caller
// category always wins, then direct keywords, then the pattern table, then
// secondary keywords, then CategoryAll. A text containing several trigger
// words resolves by which tier matches first, not by any scoring.
type Engine struct {
	tables InferenceTables
}

// NewEngine builds an Engine around the given tables.
func NewEngine(tables InferenceTables) *Engine {
	return &Engine{tables: tables}
}

// Infer maps normalized text to a category.
func (e *Engine) Infer(text string, callerCategory catalog.Category) catalog.Category {
	if callerCategory != catalog.CategoryAll {
		return callerCategory
	}

	for _, r := range e.tables.Direct {
		if strings.Contains(text, r.Keyword) {
			return r.Category
		}
	}
	for _, p := range e.tables.Patterns {
		if p.Pattern.MatchString(text) {
			return p.Category
		}
	}
	for _, r := range e.tables.Secondary {
		if strings.Contains(text, r.Keyword) {
			return r.Category
		}
	}
	return catalog.CategoryAll
}
