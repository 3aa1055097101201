package display

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyadarshn/lokal/internal/catalog"
)

func TestPrintRecommendations_IncludesCoreFields(t *testing.T) {
	var buf bytes.Buffer
	PrintRecommendations(&buf, []catalog.Recommendation{
		{
			ID:          "p-1",
			Name:        "Brahmin's Coffee Bar",
			Category:    catalog.CategoryCafes,
			Rating:      4.7,
			ReviewCount: 1832,
			Address:     "Basavanagudi, Bengaluru",
			Distance:    "2.8 miles away",
			PriceLevel:  "$",
			OpenNow:     catalog.Bool(true),
		},
	})

	out := buf.String()
	assert.Contains(t, out, "1 places")
	assert.Contains(t, out, "Brahmin's Coffee Bar")
	assert.Contains(t, out, "4.7★")
	assert.Contains(t, out, "1832 reviews")
	assert.Contains(t, out, "OPEN")
	assert.Contains(t, out, "2.8 miles away")
}

func TestPrintRecommendations_OpenTagTriState(t *testing.T) {
	render := func(open *bool) string {
		var buf bytes.Buffer
		PrintRecommendations(&buf, []catalog.Recommendation{{Name: "X", OpenNow: open}})
		return buf.String()
	}

	assert.Contains(t, render(catalog.Bool(true)), "OPEN")
	assert.Contains(t, render(catalog.Bool(false)), "CLOSED")

	unknown := render(nil)
	assert.NotContains(t, unknown, "OPEN")
	assert.NotContains(t, unknown, "CLOSED")
}

func TestPrintRecommendationsJSON_NilBecomesEmptyArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintRecommendationsJSON(&buf, nil))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestPrintRecommendationsJSON_RoundTripsOptionalFields(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintRecommendationsJSON(&buf, []catalog.Recommendation{
		{ID: "p-1", Name: "X", OpenNow: catalog.Bool(false), PriceLevel: "$$"},
	}))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, false, decoded[0]["openNow"])
	assert.Equal(t, "$$", decoded[0]["priceLevel"])
}

func TestPrintEvents(t *testing.T) {
	var buf bytes.Buffer
	PrintEvents(&buf, []catalog.Event{
		{
			Title:     "Sunrise Yoga at Cubbon Park",
			Date:      "Saturday, Sep 6",
			Time:      "6:30 AM",
			Location:  "Cubbon Park, Bengaluru",
			Attendees: 85,
		},
	})

	out := buf.String()
	assert.Contains(t, out, "1 events")
	assert.Contains(t, out, "Sunrise Yoga at Cubbon Park")
	assert.Contains(t, out, "Saturday, Sep 6 at 6:30 AM")
	assert.Contains(t, out, "85 attending")
}

func TestPrintEventsJSON_NilBecomesEmptyArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintEventsJSON(&buf, nil))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestPrintCategories_SortsByCountThenName(t *testing.T) {
	var buf bytes.Buffer
	PrintCategories(&buf, map[catalog.Category]int{
		catalog.CategoryCafes:    3,
		catalog.CategoryServices: 2,
		catalog.CategoryFitness:  3,
		catalog.CategoryShopping: 0,
	})

	out := buf.String()
	cafes := strings.Index(out, "cafes")
	fitness := strings.Index(out, "fitness")
	services := strings.Index(out, "services")
	shopping := strings.Index(out, "shopping")
	require.True(t, cafes >= 0 && fitness >= 0 && services >= 0 && shopping >= 0)

	// Count descending, name ascending within ties.
	assert.Less(t, cafes, fitness)
	assert.Less(t, fitness, services)
	assert.Less(t, services, shopping)
}

func TestPrintQueryContext(t *testing.T) {
	var buf bytes.Buffer
	PrintQueryContext(&buf, "best cafe near me", catalog.CategoryCafes)
	assert.Contains(t, buf.String(), `Searching "best cafe near me" in cafes`)
}

func TestWordWrap(t *testing.T) {
	wrapped := wordWrap("one two three four five", 9, "  ")
	assert.Equal(t, "one two\n  three\n  four five", wrapped)

	assert.Equal(t, "", wordWrap("   ", 10, ""))
	assert.Equal(t, "single", wordWrap("single", 2, ""))
}
