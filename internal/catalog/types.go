// Package catalog defines the domain model for local discovery results and
// the static datasets the resolution pipeline falls back on.
package catalog

import "strings"

// Category is a closed classification label used to scope remote queries and
// curated fallback datasets. CategoryAll means unfiltered/unknown and is both
// the default and an explicit valid value.
type Category string

const (
	CategoryAll         Category = "all"
	CategoryRestaurants Category = "restaurants"
	CategoryCafes       Category = "cafes"
	CategorySalons      Category = "salons"
	CategoryServices    Category = "services"
	CategoryFitness     Category = "fitness"
	CategoryShopping    Category = "shopping"
	CategoryEducation   Category = "education"
)

// Categories lists the closed enumeration in display order.
var Categories = []Category{
	CategoryAll,
	CategoryRestaurants,
	CategoryCafes,
	CategorySalons,
	CategoryServices,
	CategoryFitness,
	CategoryShopping,
	CategoryEducation,
}

// ParseCategory maps a raw string to a member of the enumeration,
// case-insensitively. Unknown values resolve to CategoryAll.
func ParseCategory(raw string) Category {
	raw = strings.ToLower(strings.TrimSpace(raw))
	for _, c := range Categories {
		if string(c) == raw {
			return c
		}
	}
	return CategoryAll
}

// Recommendation is a place/service entry. Instances are read-only
// projections recreated on every resolution cycle.
type Recommendation struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Tags        []string `json:"tags"`
	Rating      float64  `json:"rating"`
	Address     string   `json:"address"`
	Distance    string   `json:"distance,omitempty"` // free text, e.g. "0.5 miles away"
	Image       string   `json:"image,omitempty"`
	Images      []string `json:"images,omitempty"`
	Description string   `json:"description"`
	Phone       string   `json:"phone,omitempty"`
	OpenNow     *bool    `json:"openNow,omitempty"` // nil = unknown
	Hours       string   `json:"hours,omitempty"`
	PriceLevel  string   `json:"priceLevel,omitempty"` // tier encoded by length, e.g. "$$"
	ReviewCount int      `json:"reviewCount,omitempty"`
}

// Event is a happening from the events catalog.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	Attendees   int    `json:"attendees"`
}

// Bool returns a pointer to b, for literal OpenNow values in datasets.
func Bool(b bool) *bool { return &b }
