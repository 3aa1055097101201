package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/priyadarshn/lokal/internal/catalog"
	"github.com/priyadarshn/lokal/internal/query"
)

func defaultNormalizer() *query.Normalizer {
	return query.NewNormalizer(query.DefaultSynonyms(), query.DefaultVenueKeywords())
}

func TestNormalize_Lowercases(t *testing.T) {
	n := defaultNormalizer()
	assert.Equal(t, "flute teacher in malleshwaram", n.Normalize("Flute Teacher IN Malleshwaram"))
}

func TestNormalize_FoldsAccents(t *testing.T) {
	n := defaultNormalizer()
	assert.Equal(t, "cafe in indiranagar", n.Normalize("Café in Indiranagar"))
}

func TestNormalize_RewritesSynonyms(t *testing.T) {
	n := defaultNormalizer()
	// "coffee" -> "cafe", and the venue keyword triggers the locality suffix.
	assert.Equal(t, "best cafe near me", n.Normalize("best coffee"))
}

func TestNormalize_LongerSynonymWinsByTableOrder(t *testing.T) {
	n := defaultNormalizer()
	assert.Equal(t, "cafe near me", n.Normalize("coffee shop"))
}

func TestNormalize_NoSuffixWithLocation(t *testing.T) {
	n := defaultNormalizer()
	assert.Equal(t, "flute teacher in malleshwaram", n.Normalize("flute tutor in malleshwaram"))
	assert.Equal(t, "cafe near mg road", n.Normalize("coffee near MG Road"))
}

func TestNormalize_NoSuffixWithoutVenueKeyword(t *testing.T) {
	n := defaultNormalizer()
	assert.Equal(t, "something else entirely", n.Normalize("something else entirely"))
}

func TestNormalize_EmptyInput(t *testing.T) {
	n := defaultNormalizer()
	assert.Equal(t, "", n.Normalize(""))
	assert.Equal(t, "", n.Normalize("   "))
}

func TestNormalize_Idempotent(t *testing.T) {
	n := defaultNormalizer()
	inputs := []string{
		"best coffee",
		"flute tutor in malleshwaram",
		"Café in Indiranagar",
		"plain text with no triggers",
	}
	for _, in := range inputs {
		once := n.Normalize(in)
		assert.Equal(t, once, n.Normalize(once), "input %q", in)
	}
}

// Replacement is a plain substring rewrite applied in table order: a later
// rule sees text already rewritten by an earlier one. This pins down the
// inherited behavior rather than fixing it.
func TestNormalize_OverlappingRulesAreOrderDependent(t *testing.T) {
	rules := []query.SynonymRule{
		{Canonical: "tea", Synonyms: []string{"chai"}},
		{Canonical: "chai latte", Synonyms: []string{"tea latte"}},
	}
	n := query.NewNormalizer(rules, nil)

	// "chai latte" -> rule 1 gives "tea latte" -> rule 2 gives "chai latte".
	assert.Equal(t, "chai latte", n.Normalize("chai latte"))

	reversed := []query.SynonymRule{rules[1], rules[0]}
	n2 := query.NewNormalizer(reversed, nil)
	assert.Equal(t, "tea latte", n2.Normalize("chai latte"))
}

func TestPipeline_ProcessReturnsQueryAndCategory(t *testing.T) {
	p := query.DefaultPipeline()

	res := p.Process("best Coffee", catalog.CategoryAll)
	assert.Equal(t, "best cafe near me", res.ProcessedQuery)
	assert.Equal(t, catalog.CategoryCafes, res.Category)
}

func TestPipeline_CallerCategoryPassesThrough(t *testing.T) {
	p := query.DefaultPipeline()

	res := p.Process("yoga studio", catalog.CategoryRestaurants)
	assert.Equal(t, catalog.CategoryRestaurants, res.Category)
}
