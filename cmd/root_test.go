package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyadarshn/lokal/internal/catalog"
)

// startBackend serves canned PostgREST-style responses and points the CLI at
// itself through the environment.
func startBackend(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	t.Setenv("LOKAL_BASE_URL", srv.URL)
	t.Setenv("LOKAL_GENERIC_DELAY_MS", "0")
	return srv
}

func emptyBackend(t *testing.T) *httptest.Server {
	return startBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
}

func TestRunCLI_NoArgsPrintsQuickStart(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := runCLI(nil, &stdout, &stderr)

	assert.Equal(t, ExitSuccess, code)
	// Non-TTY stdout gets the machine-readable quickstart.
	var help map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &help))
	assert.Equal(t, "lokal", help["name"])
	assert.NotEmpty(t, help["examples"])
}

func TestRunCLI_HelpSubcommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := runCLI([]string{"help", "events"}, &stdout, &stderr)

	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout.String(), "events [query]")
	assert.Contains(t, stdout.String(), "--limit")
}

func TestRunCLI_SearchOutputsJSONWhenPiped(t *testing.T) {
	startBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recommendations", r.URL.Path)
		assert.Equal(t, "eq.cafes", r.URL.Query().Get("category"))
		w.Write([]byte(`[{"id":"p-1","name":"Third Wave Coffee Roasters","category":"cafes","rating":4.4}]`))
	})

	var stdout, stderr bytes.Buffer
	code := runCLI([]string{"filter coffee"}, &stdout, &stderr)

	require.Equal(t, ExitSuccess, code, "stderr: %s", stderr.String())
	var items []catalog.Recommendation
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Third Wave Coffee Roasters", items[0].Name)
	assert.Equal(t, 4.4, items[0].Rating)
}

func TestRunCLI_BareQueryNearCommandNameStillSearches(t *testing.T) {
	// "tea" is one edit away from the tui subcommand, but a root-level
	// bare word is a search query, never a corrected command.
	startBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"p-9","name":"Tea Villa","category":"cafes","rating":4.2}]`))
	})

	var stdout, stderr bytes.Buffer
	code := runCLI([]string{"tea"}, &stdout, &stderr)

	require.Equal(t, ExitSuccess, code, "stderr: %s", stderr.String())
	assert.NotContains(t, stderr.String(), "interpreted command")
	var items []catalog.Recommendation
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Tea Villa", items[0].Name)
}

func TestRunCLI_FallsBackToStaticDataWhenBackendEmpty(t *testing.T) {
	emptyBackend(t)

	var stdout, stderr bytes.Buffer
	code := runCLI([]string{"benne dosa"}, &stdout, &stderr)

	require.Equal(t, ExitSuccess, code, "stderr: %s", stderr.String())
	var items []catalog.Recommendation
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &items))
	// Both static restaurants match, in corpus order.
	require.Len(t, items, 2)
	assert.Equal(t, "Nagarjuna Restaurant", items[0].Name)
	assert.Equal(t, "CTR Shri Sagar", items[1].Name)
}

func TestRunCLI_NoMatchesExitsNotFound(t *testing.T) {
	emptyBackend(t)

	var stdout, stderr bytes.Buffer
	code := runCLI([]string{"xyzzy plugh"}, &stdout, &stderr)

	assert.Equal(t, ExitNotFound, code)
	assert.Contains(t, stderr.String(), "NOT_FOUND")
	assert.Contains(t, stderr.String(), "no places match your search")
}

func TestRunCLI_FilterFlagsApply(t *testing.T) {
	emptyBackend(t)

	// The fitness category resolves to its curated set; the rating filter
	// then drops the 4.3-rated entry.
	var stdout, stderr bytes.Buffer
	code := runCLI([]string{"yoga", "--min-rating", "4.5"}, &stdout, &stderr)

	require.Equal(t, ExitSuccess, code, "stderr: %s", stderr.String())
	var items []catalog.Recommendation
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "Prana Yoga Shala", items[0].Name)
	assert.Equal(t, "Iron Temple Fitness", items[1].Name)
}

func TestRunCLI_InvalidUnitExitsInvalidArgs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := runCLI([]string{"coffee", "--unit", "parsec"}, &stdout, &stderr)

	assert.Equal(t, ExitInvalidArgs, code)
	assert.Contains(t, stderr.String(), "INVALID_ARGS")
}

func TestRunCLI_InvalidRatingExitsInvalidArgs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := runCLI([]string{"coffee", "--min-rating", "9"}, &stdout, &stderr)

	assert.Equal(t, ExitInvalidArgs, code)
}

func TestRunCLI_UnknownFlagExitsInvalidArgs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := runCLI([]string{"coffee", "--bogusflag"}, &stdout, &stderr)

	assert.Equal(t, ExitInvalidArgs, code)
	assert.Contains(t, stderr.String(), "unknown flag")
}

func TestRunCLI_ToleratedFlagSyntax(t *testing.T) {
	emptyBackend(t)

	var stdout, stderr bytes.Buffer
	code := runCLI([]string{"yoga", "-rating", "4.5"}, &stdout, &stderr)

	require.Equal(t, ExitSuccess, code, "stderr: %s", stderr.String())
	assert.Contains(t, stderr.String(), "note:")
	var items []catalog.Recommendation
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &items))
	assert.Len(t, items, 2)
}

func TestRunCLI_EventsCommand(t *testing.T) {
	startBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events", r.URL.Path)
		w.Write([]byte(`[{"id":"e-1","title":"Rooftop Jazz Evening","location":"UB City"}]`))
	})

	var stdout, stderr bytes.Buffer
	code := runCLI([]string{"events", "jazz"}, &stdout, &stderr)

	require.Equal(t, ExitSuccess, code, "stderr: %s", stderr.String())
	var events []catalog.Event
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &events))
	require.Len(t, events, 1)
	assert.Equal(t, "Rooftop Jazz Evening", events[0].Title)
}

func TestRunCLI_EventsStaticFallbackWithLimit(t *testing.T) {
	emptyBackend(t)

	var stdout, stderr bytes.Buffer
	code := runCLI([]string{"events", "yoga", "--limit", "1"}, &stdout, &stderr)

	require.Equal(t, ExitSuccess, code, "stderr: %s", stderr.String())
	var events []catalog.Event
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &events))
	require.Len(t, events, 1)
	assert.Equal(t, "Sunrise Yoga at Cubbon Park", events[0].Title)
}

func TestRunCLI_EventsNoMatchExitsNotFound(t *testing.T) {
	emptyBackend(t)

	var stdout, stderr bytes.Buffer
	code := runCLI([]string{"events", "quantum"}, &stdout, &stderr)

	assert.Equal(t, ExitNotFound, code)
	assert.Contains(t, stderr.String(), "no events match your search")
}

func TestRunCLI_CategoriesListsFullEnumeration(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := runCLI([]string{"categories"}, &stdout, &stderr)

	require.Equal(t, ExitSuccess, code, "stderr: %s", stderr.String())
	var counts map[catalog.Category]int
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &counts))

	for _, cat := range catalog.Categories {
		if cat == catalog.CategoryAll {
			continue
		}
		_, present := counts[cat]
		assert.True(t, present, "category %s missing", cat)
	}
	assert.Equal(t, 3, counts[catalog.CategoryFitness], "curated entries are counted")
	assert.Equal(t, 2, counts[catalog.CategoryRestaurants])
}
