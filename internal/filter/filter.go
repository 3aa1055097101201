// Package filter applies client-side post-filters to an already-resolved
// result set. Everything here is pure and synchronous.
package filter

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/priyadarshn/lokal/internal/catalog"
)

// KilometersPerMile converts source distances (always miles) to kilometers.
const KilometersPerMile = 1.60934

// Options holds all filter criteria. Zero values disable a predicate.
type Options struct {
	MinRating   float64
	MaxDistance float64
	PriceLevel  int    // ceiling on price tier count, e.g. 2 keeps "$" and "$$"
	OpenNowOnly bool
	Unit        string // "km" or "mi"; empty means "mi"
}

var reLeadingNumber = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)`)

// Apply filters items according to opts. Output preserves input order.
func Apply(items []catalog.Recommendation, opts Options) []catalog.Recommendation {
	var result []catalog.Recommendation
	for _, item := range items {
		if keep(item, opts) {
			result = append(result, item)
		}
	}
	return result
}

func keep(item catalog.Recommendation, opts Options) bool {
	if item.Rating < opts.MinRating {
		return false
	}
	if opts.OpenNowOnly && (item.OpenNow == nil || !*item.OpenNow) {
		return false
	}
	if opts.MaxDistance > 0 {
		// Unparseable or absent distances never exclude an item.
		if d, ok := ParseDistance(item.Distance); ok {
			if strings.EqualFold(opts.Unit, "km") {
				d *= KilometersPerMile
			}
			if d > opts.MaxDistance {
				return false
			}
		}
	}
	if opts.PriceLevel > 0 && item.PriceLevel != "" && len(item.PriceLevel) > opts.PriceLevel {
		return false
	}
	return true
}

// ParseDistance extracts the leading numeric value from a free-text distance
// such as "0.5 miles away". The source unit is always miles.
func ParseDistance(raw string) (float64, bool) {
	m := reLeadingNumber.FindStringSubmatch(raw)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// CountByCategory returns result counts keyed by category.
func CountByCategory(items []catalog.Recommendation) map[catalog.Category]int {
	counts := make(map[catalog.Category]int)
	for _, item := range items {
		counts[item.Category]++
	}
	return counts
}
