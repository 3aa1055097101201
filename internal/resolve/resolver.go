// Package resolve implements the tiered fallback resolution of queries
// against the remote backend and the static datasets. Tiers run in a strict
// order and only one tier's results are ever returned.
package resolve

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/priyadarshn/lokal/internal/api"
	"github.com/priyadarshn/lokal/internal/catalog"
)

// PlaceSource is the remote structured backend for places. *api.Client
// satisfies it; tests substitute spies.
type PlaceSource interface {
	SearchPlaces(ctx context.Context, query string, category catalog.Category) ([]api.PlaceRecord, error)
	SearchBusinesses(ctx context.Context, category catalog.Category, query string) ([]api.BusinessRecord, error)
	TopRated(ctx context.Context, limit int) ([]api.PlaceRecord, error)
}

// Resolver resolves (processed query, category) pairs to recommendations.
type Resolver struct {
	source       PlaceSource
	corpus       *catalog.Corpus
	genericDelay time.Duration
	log          zerolog.Logger
}

// NewResolver builds a resolver. genericDelay is a cosmetic pause before the
// final generic tier; pass 0 to disable (tests do).
func NewResolver(source PlaceSource, corpus *catalog.Corpus, genericDelay time.Duration, log zerolog.Logger) *Resolver {
	return &Resolver{
		source:       source,
		corpus:       corpus,
		genericDelay: genericDelay,
		log:          log,
	}
}

// Resolve walks the fallback tiers and returns the first non-empty result
// set. It returns an empty, non-nil slice when every tier is exhausted.
// Remote failures are logged and treated as empty tiers, never propagated.
func (r *Resolver) Resolve(ctx context.Context, query string, category catalog.Category) ([]catalog.Recommendation, error) {
	// Tier 1: primary remote source.
	records, err := r.source.SearchPlaces(ctx, query, category)
	if err != nil {
		r.log.Warn().Err(err).Str("query", query).Msg("primary source unavailable, falling back")
	}
	if len(records) > 0 {
		return mapPlaceRecords(records), nil
	}

	// Tier 1b: service-style businesses live in a second remote table.
	if category == catalog.CategoryServices {
		businesses, err := r.source.SearchBusinesses(ctx, category, query)
		if err != nil {
			r.log.Warn().Err(err).Msg("business source unavailable, falling back")
		}
		if len(businesses) > 0 {
			return mapBusinessRecords(businesses), nil
		}
	}

	// Tier 2: specialized curated sets, returned unfiltered. Curated data is
	// already scoped by category so no further text matching applies.
	if set := r.triggeredCurated(query, category); len(set) > 0 {
		return set, nil
	}

	// Tier 3: a curated subset dedicated to the category, when non-empty.
	if set := r.corpus.Curated[category]; len(set) > 0 {
		return cloneRecommendations(set), nil
	}

	// Tier 4: generic text/category match over the static corpus. The short
	// delay keeps a perceptible "searching" state; it is cosmetic only.
	if r.genericDelay > 0 {
		select {
		case <-time.After(r.genericDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return r.genericMatch(query, category), nil
}

func (r *Resolver) triggeredCurated(query string, category catalog.Category) []catalog.Recommendation {
	if r.corpus.IsSpecialized(category) {
		return cloneRecommendations(r.corpus.Curated[category])
	}
	for _, t := range r.corpus.Triggers {
		if strings.Contains(query, t.Keyword) {
			return cloneRecommendations(r.corpus.Curated[t.Category])
		}
	}
	return nil
}

func (r *Resolver) genericMatch(query string, category catalog.Category) []catalog.Recommendation {
	q := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(query), "near me"))
	result := []catalog.Recommendation{}
	for _, item := range r.corpus.Places {
		if category != catalog.CategoryAll && item.Category == category {
			result = append(result, item)
			continue
		}
		if q != "" && matchesText(item, q) {
			result = append(result, item)
		}
	}
	return result
}

func matchesText(item catalog.Recommendation, q string) bool {
	haystack := strings.ToLower(strings.Join(append([]string{
		item.Name, item.Description, item.Address,
	}, item.Tags...), " "))
	for _, word := range strings.Fields(q) {
		if strings.Contains(haystack, word) {
			return true
		}
	}
	return false
}

// DefaultSet returns the top-limit places by rating with no text or category
// filter. Remote failure falls back to the static corpus.
func (r *Resolver) DefaultSet(ctx context.Context, limit int) ([]catalog.Recommendation, error) {
	records, err := r.source.TopRated(ctx, limit)
	if err != nil {
		r.log.Warn().Err(err).Msg("top-rated source unavailable, using static corpus")
	}
	if len(records) > 0 {
		return mapPlaceRecords(records), nil
	}
	return topRatedStatic(r.corpus.Places, limit), nil
}

func cloneRecommendations(items []catalog.Recommendation) []catalog.Recommendation {
	out := make([]catalog.Recommendation, len(items))
	copy(out, items)
	return out
}
