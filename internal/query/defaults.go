package query

import (
	"regexp"

	"github.com/priyadarshn/lokal/internal/catalog"
)

// DefaultSynonyms returns the built-in rewrite table. Multi-word synonyms
// come before their single-word prefixes ("coffee shop" before "coffee") so
// the longer form wins the substring rewrite.
func DefaultSynonyms() []SynonymRule {
	return []SynonymRule{
		{Canonical: "cafe", Synonyms: []string{"coffee shop", "coffee house", "coffee"}},
		{Canonical: "restaurant", Synonyms: []string{"restraunt", "resturant", "eatery", "dining place"}},
		{Canonical: "salon", Synonyms: []string{"saloon", "beauty parlour", "beauty parlor", "parlour"}},
		{Canonical: "gym", Synonyms: []string{"fitness center", "fitness centre", "workout place"}},
		{Canonical: "teacher", Synonyms: []string{"tutor", "instructor", "sir for", "master for"}},
	}
}

// DefaultVenueKeywords returns the venue/service terms that trigger the
// " near me" suffix when the text has no locational qualifier.
func DefaultVenueKeywords() []string {
	return []string{
		"restaurant", "cafe", "salon", "gym", "studio", "bakery",
		"plumber", "electrician", "teacher", "class",
	}
}

// DefaultInferenceTables returns the built-in layered inference rules.
func DefaultInferenceTables() InferenceTables {
	return InferenceTables{
		Direct: []KeywordRule{
			{Keyword: "yoga", Category: catalog.CategoryFitness},
			{Keyword: "gym", Category: catalog.CategoryFitness},
			{Keyword: "restaurant", Category: catalog.CategoryRestaurants},
			{Keyword: "cafe", Category: catalog.CategoryCafes},
		},
		Patterns: []PatternRule{
			{Pattern: regexp.MustCompile(`(flute|guitar|violin|music|dance|bharatanatyam)\s+(teacher|class|lesson)`), Category: catalog.CategoryEducation},
			{Pattern: regexp.MustCompile(`(tuition|coaching)\b`), Category: catalog.CategoryEducation},
			{Pattern: regexp.MustCompile(`(zumba|pilates|crossfit|aerobics)`), Category: catalog.CategoryFitness},
			{Pattern: regexp.MustCompile(`(boutique|bookstore|book shop|shopping)`), Category: catalog.CategoryShopping},
			{Pattern: regexp.MustCompile(`(street\s?food|tiffin|biryani|dosa|thali)`), Category: catalog.CategoryRestaurants},
		},
		Secondary: []KeywordRule{
			{Keyword: "salon", Category: catalog.CategorySalons},
			{Keyword: "haircut", Category: catalog.CategorySalons},
			{Keyword: "spa", Category: catalog.CategorySalons},
			{Keyword: "plumber", Category: catalog.CategoryServices},
			{Keyword: "electrician", Category: catalog.CategoryServices},
			{Keyword: "repair", Category: catalog.CategoryServices},
			{Keyword: "cleaning", Category: catalog.CategoryServices},
			{Keyword: "food", Category: catalog.CategoryRestaurants},
			{Keyword: "lunch", Category: catalog.CategoryRestaurants},
			{Keyword: "dinner", Category: catalog.CategoryRestaurants},
		},
	}
}
