package cmd

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priyadarshn/lokal/internal/catalog"
	"github.com/priyadarshn/lokal/internal/filter"
	"github.com/priyadarshn/lokal/internal/logging"
	"github.com/priyadarshn/lokal/internal/query"
	"github.com/priyadarshn/lokal/internal/search"
)

type stubPlaces struct{ items []catalog.Recommendation }

func (s stubPlaces) Resolve(ctx context.Context, q string, cat catalog.Category) ([]catalog.Recommendation, error) {
	return s.items, nil
}

func (s stubPlaces) DefaultSet(ctx context.Context, limit int) ([]catalog.Recommendation, error) {
	return s.items, nil
}

type stubEvents struct{ events []catalog.Event }

func (s stubEvents) ResolveEvents(ctx context.Context, q string) ([]catalog.Event, error) {
	return s.events, nil
}

func newTUIFixture(items []catalog.Recommendation, events []catalog.Event) (*search.Controller, searchTUIModel) {
	ctrl := search.New(query.DefaultPipeline(), stubPlaces{items}, stubEvents{events}, search.Config{
		Quiet:  time.Millisecond,
		Logger: logging.Nop(),
	})
	m := newSearchTUIModel(ctrl, catalog.CategoryAll, filter.Options{Unit: "mi"})
	return ctrl, m
}

func TestNextCategory_CyclesAndWraps(t *testing.T) {
	assert.Equal(t, catalog.CategoryRestaurants, nextCategory(catalog.CategoryAll))
	assert.Equal(t, catalog.CategoryCafes, nextCategory(catalog.CategoryRestaurants))
	assert.Equal(t, catalog.CategoryAll, nextCategory(catalog.Categories[len(catalog.Categories)-1]))
	assert.Equal(t, catalog.CategoryAll, nextCategory(catalog.Category("bogus")))
}

func TestNextMinRating_Cycles(t *testing.T) {
	assert.Equal(t, 3.0, nextMinRating(0))
	assert.Equal(t, 4.0, nextMinRating(3))
	assert.Equal(t, 4.5, nextMinRating(4))
	assert.Equal(t, 0.0, nextMinRating(4.5))
}

func TestRenderTUIPlace(t *testing.T) {
	out := renderTUIPlace(catalog.Recommendation{
		Name:     "Prana Yoga Shala",
		Rating:   4.8,
		Distance: "0.8 miles away",
		Address:  "11th Cross, Malleshwaram",
		OpenNow:  catalog.Bool(true),
	})
	assert.Contains(t, out, "Prana Yoga Shala")
	assert.Contains(t, out, "4.8★")
	assert.Contains(t, out, "0.8 miles away")
	assert.Contains(t, out, "11th Cross, Malleshwaram")
}

func TestSearchTUIModel_SnapshotUpdatesView(t *testing.T) {
	ctrl, m := newTUIFixture([]catalog.Recommendation{
		{ID: "p-1", Name: "Blossom Book House", Rating: 4.7},
	}, []catalog.Event{
		{ID: "e-1", Title: "Weekend Farmers Market", Date: "Sunday, Sep 14", Location: "Jayanagar"},
	})
	defer ctrl.Close()

	require.Eventually(t, func() bool {
		return !ctrl.Snapshot().Loading
	}, 2*time.Second, 5*time.Millisecond)

	next, _ := m.Update(snapshotMsg(ctrl.Snapshot()))
	m = next.(searchTUIModel)

	view := m.View()
	assert.Contains(t, view, "Blossom Book House")
	assert.NotContains(t, view, "Weekend Farmers Market", "the default set carries no events")
}

func TestSearchTUIModel_TabCyclesCategory(t *testing.T) {
	ctrl, m := newTUIFixture(nil, nil)
	defer ctrl.Close()

	m.Update(tea.KeyMsg{Type: tea.KeyTab})

	require.Eventually(t, func() bool {
		return ctrl.Snapshot().Category == catalog.CategoryRestaurants
	}, 2*time.Second, 5*time.Millisecond)
}

func TestSearchTUIModel_FilterTogglesApplyAtRender(t *testing.T) {
	ctrl, m := newTUIFixture([]catalog.Recommendation{
		{ID: "p-1", Name: "Open Spot", Rating: 4.0, OpenNow: catalog.Bool(true)},
		{ID: "p-2", Name: "Closed Spot", Rating: 4.9, OpenNow: catalog.Bool(false)},
	}, nil)
	defer ctrl.Close()

	require.Eventually(t, func() bool {
		return !ctrl.Snapshot().Loading
	}, 2*time.Second, 5*time.Millisecond)
	next, _ := m.Update(snapshotMsg(ctrl.Snapshot()))
	m = next.(searchTUIModel)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	m = next.(searchTUIModel)

	view := m.View()
	assert.Contains(t, view, "Open Spot")
	assert.NotContains(t, view, "Closed Spot")
}

func TestSearchTUIModel_TypingDebouncesThroughController(t *testing.T) {
	ctrl, m := newTUIFixture([]catalog.Recommendation{{ID: "p-1", Name: "Hit"}}, nil)
	defer ctrl.Close()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("yoga")})
	m = next.(searchTUIModel)

	assert.Equal(t, "yoga", ctrl.Snapshot().Query)
	require.Eventually(t, func() bool {
		s := ctrl.Snapshot()
		return !s.Loading && len(s.Recommendations) == 1
	}, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, catalog.CategoryFitness, ctrl.Snapshot().Category)
}
