package resolve

import (
	"sort"

	"github.com/priyadarshn/lokal/internal/api"
	"github.com/priyadarshn/lokal/internal/catalog"
)

// Placeholder values for sources that omit a column. Displays depend on
// these exact strings, so keep them stable.
const (
	defaultRating     = 4.5
	defaultHours      = "Until 8:00 PM"
	defaultPriceLevel = "$$"
	defaultDistance   = "0.5 miles away"
)

func mapPlaceRecords(records []api.PlaceRecord) []catalog.Recommendation {
	out := make([]catalog.Recommendation, 0, len(records))
	for _, rec := range records {
		item := catalog.Recommendation{
			ID:          rec.ID,
			Name:        rec.Name,
			Category:    catalog.ParseCategory(rec.Category),
			Tags:        rec.Tags,
			Rating:      defaultRating,
			Address:     rec.Address,
			Image:       rec.Image,
			Images:      rec.Images,
			Description: rec.Description,
			Hours:       defaultHours,
			PriceLevel:  defaultPriceLevel,
			OpenNow:     catalog.Bool(false),
		}
		if rec.Rating != nil {
			item.Rating = *rec.Rating
		}
		if rec.Distance != nil {
			item.Distance = *rec.Distance
		}
		if rec.Phone != nil {
			item.Phone = *rec.Phone
		}
		if rec.OpenNow != nil {
			item.OpenNow = catalog.Bool(*rec.OpenNow)
		}
		if rec.Hours != nil {
			item.Hours = *rec.Hours
		}
		if rec.PriceLevel != nil {
			item.PriceLevel = *rec.PriceLevel
		}
		if rec.ReviewCount != nil {
			item.ReviewCount = *rec.ReviewCount
		}
		out = append(out, item)
	}
	return out
}

func mapBusinessRecords(records []api.BusinessRecord) []catalog.Recommendation {
	out := make([]catalog.Recommendation, 0, len(records))
	for _, rec := range records {
		item := catalog.Recommendation{
			ID:          rec.ID,
			Name:        rec.Name,
			Category:    catalog.ParseCategory(rec.Category),
			Tags:        rec.Tags,
			Rating:      defaultRating,
			Address:     rec.Address,
			Distance:    defaultDistance,
			Image:       rec.ImageURL,
			Images:      rec.Images,
			Description: rec.Description,
			Hours:       defaultHours,
			PriceLevel:  defaultPriceLevel,
			OpenNow:     catalog.Bool(false),
		}
		if rec.Rating != nil {
			item.Rating = *rec.Rating
		}
		if rec.ContactPhone != nil {
			item.Phone = *rec.ContactPhone
		}
		if rec.OpenNow != nil {
			item.OpenNow = catalog.Bool(*rec.OpenNow)
		}
		out = append(out, item)
	}
	return out
}

func mapEventRecords(records []api.EventRecord) []catalog.Event {
	out := make([]catalog.Event, 0, len(records))
	for _, rec := range records {
		out = append(out, catalog.Event{
			ID:          rec.ID,
			Title:       rec.Title,
			Date:        rec.Date,
			Time:        rec.Time,
			Location:    rec.Location,
			Description: rec.Description,
			Image:       rec.Image,
			Attendees:   rec.Attendees,
		})
	}
	return out
}

func topRatedStatic(items []catalog.Recommendation, limit int) []catalog.Recommendation {
	sorted := make([]catalog.Recommendation, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating > sorted[j].Rating })
	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}
	return sorted
}
