// Package query turns raw user text into a processed query and an inferred
// category. Both steps run off injected tables so they can be tested with
// substitute data.
package query

import (
	"strings"

	"github.com/mozillazg/go-unidecode"

	"github.com/priyadarshn/lokal/internal/catalog"
)

// SynonymRule rewrites every occurrence of any synonym to the canonical term.
// Rules apply in slice order and synonyms in listed order; replacement is a
// plain substring rewrite, so later rules see already-rewritten text.
type SynonymRule struct {
	Canonical string
	Synonyms  []string
}

// Normalizer lower-cases, folds accents, rewrites synonyms and appends a
// locality qualifier when the text names a venue type but no location.
type Normalizer struct {
	synonyms      []SynonymRule
	venueKeywords []string
}

// NewNormalizer builds a Normalizer around the given tables.
func NewNormalizer(synonyms []SynonymRule, venueKeywords []string) *Normalizer {
	return &Normalizer{synonyms: synonyms, venueKeywords: venueKeywords}
}

// Normalize produces the processed query. Deterministic for a fixed table.
func (n *Normalizer) Normalize(raw string) string {
	s := strings.ToLower(unidecode.Unidecode(raw))
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}

	for _, rule := range n.synonyms {
		for _, syn := range rule.Synonyms {
			s = strings.ReplaceAll(s, syn, rule.Canonical)
		}
	}

	if n.mentionsVenue(s) && !hasLocationQualifier(s) {
		s += " near me"
	}
	return s
}

func (n *Normalizer) mentionsVenue(s string) bool {
	for _, kw := range n.venueKeywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func hasLocationQualifier(s string) bool {
	return strings.Contains(s, "near") || strings.Contains(s, "in ")
}

// Result is the explicit output of a processing pass. The caller owns the
// state update; processing never mutates anything behind its back.
type Result struct {
	ProcessedQuery string
	Category       catalog.Category
}

// Pipeline chains normalization and category inference.
type Pipeline struct {
	norm   *Normalizer
	engine *Engine
}

// NewPipeline wires a normalizer and an inference engine together.
func NewPipeline(norm *Normalizer, engine *Engine) *Pipeline {
	return &Pipeline{norm: norm, engine: engine}
}

// DefaultPipeline builds a pipeline over the built-in tables.
func DefaultPipeline() *Pipeline {
	return NewPipeline(
		NewNormalizer(DefaultSynonyms(), DefaultVenueKeywords()),
		NewEngine(DefaultInferenceTables()),
	)
}

// Process normalizes raw text and infers its category. callerCategory wins
// whenever it is anything other than CategoryAll.
func (p *Pipeline) Process(raw string, callerCategory catalog.Category) Result {
	q := p.norm.Normalize(raw)
	return Result{
		ProcessedQuery: q,
		Category:       p.engine.Infer(q, callerCategory),
	}
}
