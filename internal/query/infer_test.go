package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/priyadarshn/lokal/internal/catalog"
	"github.com/priyadarshn/lokal/internal/query"
)

func defaultEngine() *query.Engine {
	return query.NewEngine(query.DefaultInferenceTables())
}

func TestInfer_CallerCategoryWins(t *testing.T) {
	e := defaultEngine()
	assert.Equal(t, catalog.CategoryRestaurants, e.Infer("yoga near me", catalog.CategoryRestaurants))
	assert.Equal(t, catalog.CategorySalons, e.Infer("", catalog.CategorySalons))
}

func TestInfer_DirectKeywords(t *testing.T) {
	e := defaultEngine()
	assert.Equal(t, catalog.CategoryFitness, e.Infer("yoga classes near me", catalog.CategoryAll))
	assert.Equal(t, catalog.CategoryFitness, e.Infer("good gym", catalog.CategoryAll))
	assert.Equal(t, catalog.CategoryRestaurants, e.Infer("family restaurant", catalog.CategoryAll))
	assert.Equal(t, catalog.CategoryCafes, e.Infer("quiet cafe", catalog.CategoryAll))
}

func TestInfer_DirectTableOrderBreaksTies(t *testing.T) {
	e := defaultEngine()
	// Both "yoga" and "restaurant" are direct keywords; the earlier row wins.
	assert.Equal(t, catalog.CategoryFitness, e.Infer("yoga restaurant", catalog.CategoryAll))
}

func TestInfer_Patterns(t *testing.T) {
	e := defaultEngine()
	assert.Equal(t, catalog.CategoryEducation, e.Infer("flute teacher near me", catalog.CategoryAll))
	assert.Equal(t, catalog.CategoryEducation, e.Infer("maths tuition", catalog.CategoryAll))
	assert.Equal(t, catalog.CategoryFitness, e.Infer("zumba near me", catalog.CategoryAll))
	assert.Equal(t, catalog.CategoryShopping, e.Infer("saree boutique", catalog.CategoryAll))
	assert.Equal(t, catalog.CategoryRestaurants, e.Infer("dosa place", catalog.CategoryAll))
}

func TestInfer_SecondarySubstrings(t *testing.T) {
	e := defaultEngine()
	assert.Equal(t, catalog.CategorySalons, e.Infer("haircut near me", catalog.CategoryAll))
	assert.Equal(t, catalog.CategoryServices, e.Infer("plumber near me", catalog.CategoryAll))
	assert.Equal(t, catalog.CategoryRestaurants, e.Infer("late night food", catalog.CategoryAll))
}

func TestInfer_DefaultsToAll(t *testing.T) {
	e := defaultEngine()
	assert.Equal(t, catalog.CategoryAll, e.Infer("random gibberish", catalog.CategoryAll))
	assert.Equal(t, catalog.CategoryAll, e.Infer("", catalog.CategoryAll))
}

func TestInfer_DirectBeatsPatternAndSecondary(t *testing.T) {
	e := defaultEngine()
	// "restaurant" (direct) outranks both the dosa pattern and the food substring.
	assert.Equal(t, catalog.CategoryRestaurants, e.Infer("dosa restaurant food", catalog.CategoryAll))
}
