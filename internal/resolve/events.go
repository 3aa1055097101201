package resolve

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/priyadarshn/lokal/internal/api"
	"github.com/priyadarshn/lokal/internal/catalog"
)

// EventSource is the remote events backend.
type EventSource interface {
	SearchEvents(ctx context.Context, query string) ([]api.EventRecord, error)
}

// EventResolver resolves queries against the events catalog. It is a
// parallel, independent path from place resolution.
type EventResolver struct {
	source EventSource
	corpus []catalog.Event
	log    zerolog.Logger
}

// NewEventResolver builds an event resolver over the given static corpus.
func NewEventResolver(source EventSource, corpus []catalog.Event, log zerolog.Logger) *EventResolver {
	return &EventResolver{source: source, corpus: corpus, log: log}
}

// ResolveEvents walks the event tiers: remote OR-match, then a yoga-specific
// static filter when the query mentions yoga, then a generic static filter.
func (r *EventResolver) ResolveEvents(ctx context.Context, query string) ([]catalog.Event, error) {
	records, err := r.source.SearchEvents(ctx, query)
	if err != nil {
		r.log.Warn().Err(err).Str("query", query).Msg("events source unavailable, falling back")
	}
	if len(records) > 0 {
		return mapEventRecords(records), nil
	}

	q := strings.ToLower(strings.TrimSpace(query))
	q = strings.TrimSpace(strings.TrimSuffix(q, "near me"))
	if strings.Contains(q, "yoga") {
		if matches := r.filterStatic("yoga", false); len(matches) > 0 {
			return matches, nil
		}
	}
	return r.filterStatic(q, true), nil
}

// filterStatic matches the static corpus on title/description, and location
// too when includeLocation is set.
func (r *EventResolver) filterStatic(q string, includeLocation bool) []catalog.Event {
	result := []catalog.Event{}
	if q == "" {
		return result
	}
	for _, ev := range r.corpus {
		haystack := strings.ToLower(ev.Title + " " + ev.Description)
		if includeLocation {
			haystack += " " + strings.ToLower(ev.Location)
		}
		if containsAnyWord(haystack, q) {
			result = append(result, ev)
		}
	}
	return result
}

func containsAnyWord(haystack, q string) bool {
	for _, word := range strings.Fields(q) {
		if strings.Contains(haystack, word) {
			return true
		}
	}
	return false
}
