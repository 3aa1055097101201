package catalog

// TriggerRule routes a query keyword straight to a curated dataset,
// bypassing further text matching. Rules are evaluated in slice order.
type TriggerRule struct {
	Keyword  string
	Category Category
}

// Corpus bundles the curated fallback datasets and the generic static data
// the resolver searches when every remote tier comes back empty. It is
// injected into the resolver so tests can substitute their own tables.
type Corpus struct {
	// Curated holds hand-authored, pre-filtered result sets per category.
	Curated map[Category][]Recommendation
	// Triggers route keyword mentions to a curated set (tier 2).
	Triggers []TriggerRule
	// Specialized marks categories whose curated set is returned outright
	// when the inferred category matches (tier 2).
	Specialized []Category
	// Places is the generic static corpus for the final text-match tier.
	Places []Recommendation
	// Events is the static event corpus.
	Events []Event
}

// IsSpecialized reports whether cat is routed straight to its curated set.
func (c *Corpus) IsSpecialized(cat Category) bool {
	for _, s := range c.Specialized {
		if s == cat {
			return true
		}
	}
	return false
}

// DefaultCorpus returns the built-in datasets.
func DefaultCorpus() *Corpus {
	return &Corpus{
		Curated: map[Category][]Recommendation{
			CategoryFitness:   curatedFitness,
			CategoryEducation: curatedEducation,
			CategorySalons:    curatedSalons,
		},
		Triggers: []TriggerRule{
			{Keyword: "yoga", Category: CategoryFitness},
			{Keyword: "zumba", Category: CategoryFitness},
			{Keyword: "flute", Category: CategoryEducation},
			{Keyword: "music class", Category: CategoryEducation},
		},
		Specialized: []Category{CategoryFitness},
		Places:      staticPlaces,
		Events:      staticEvents,
	}
}

var curatedFitness = []Recommendation{
	{
		ID:          "fit-1",
		Name:        "Prana Yoga Shala",
		Category:    CategoryFitness,
		Tags:        []string{"yoga", "meditation", "beginner friendly"},
		Rating:      4.8,
		Address:     "11th Cross, Malleshwaram, Bengaluru",
		Distance:    "0.8 miles away",
		Image:       "https://images.lokal.app/places/prana-yoga.jpg",
		Description: "Hatha and ashtanga classes in a quiet heritage bungalow.",
		Phone:       "+91 80 2334 1190",
		OpenNow:     Bool(true),
		Hours:       "Until 8:00 PM",
		PriceLevel:  "$$",
		ReviewCount: 212,
	},
	{
		ID:          "fit-2",
		Name:        "Iron Temple Fitness",
		Category:    CategoryFitness,
		Tags:        []string{"gym", "crossfit", "personal training"},
		Rating:      4.5,
		Address:     "80 Feet Road, Indiranagar, Bengaluru",
		Distance:    "2.4 miles away",
		Image:       "https://images.lokal.app/places/iron-temple.jpg",
		Description: "Strength-focused gym with certified trainers and open mats.",
		Phone:       "+91 80 4112 7751",
		OpenNow:     Bool(true),
		Hours:       "Until 10:00 PM",
		PriceLevel:  "$$$",
		ReviewCount: 340,
	},
	{
		ID:          "fit-3",
		Name:        "Shakti Zumba Studio",
		Category:    CategoryFitness,
		Tags:        []string{"zumba", "dance fitness"},
		Rating:      4.3,
		Address:     "4th Block, Jayanagar, Bengaluru",
		Distance:    "3.1 miles away",
		Image:       "https://images.lokal.app/places/shakti-zumba.jpg",
		Description: "High-energy zumba batches, morning and evening.",
		OpenNow:     Bool(false),
		Hours:       "Opens 6:00 AM",
		PriceLevel:  "$",
		ReviewCount: 96,
	},
}

var curatedEducation = []Recommendation{
	{
		ID:          "edu-1",
		Name:        "Saraswati Music Academy",
		Category:    CategoryEducation,
		Tags:        []string{"flute", "carnatic", "vocal"},
		Rating:      4.9,
		Address:     "Sampige Road, Malleshwaram, Bengaluru",
		Distance:    "0.5 miles away",
		Image:       "https://images.lokal.app/places/saraswati-music.jpg",
		Description: "Carnatic flute and vocal lessons from graded teachers.",
		Phone:       "+91 98440 21873",
		OpenNow:     Bool(true),
		Hours:       "Until 7:30 PM",
		PriceLevel:  "$$",
		ReviewCount: 154,
	},
	{
		ID:          "edu-2",
		Name:        "Tala Dance School",
		Category:    CategoryEducation,
		Tags:        []string{"bharatanatyam", "dance", "kids"},
		Rating:      4.6,
		Address:     "Margosa Road, Malleshwaram, Bengaluru",
		Distance:    "1.1 miles away",
		Image:       "https://images.lokal.app/places/tala-dance.jpg",
		Description: "Classical dance classes for all age groups.",
		OpenNow:     Bool(false),
		Hours:       "Opens 4:00 PM",
		PriceLevel:  "$$",
		ReviewCount: 88,
	},
}

var curatedSalons = []Recommendation{
	{
		ID:          "sal-1",
		Name:        "Mirror Mirror Unisex Salon",
		Category:    CategorySalons,
		Tags:        []string{"haircut", "styling", "spa"},
		Rating:      4.4,
		Address:     "100 Feet Road, Koramangala, Bengaluru",
		Distance:    "1.9 miles away",
		Image:       "https://images.lokal.app/places/mirror-mirror.jpg",
		Description: "Appointments and walk-ins, full grooming menu.",
		Phone:       "+91 80 2553 0264",
		OpenNow:     Bool(true),
		Hours:       "Until 9:00 PM",
		PriceLevel:  "$$",
		ReviewCount: 267,
	},
}

var staticPlaces = []Recommendation{
	{
		ID:          "pl-1",
		Name:        "Brahmin's Coffee Bar",
		Category:    CategoryCafes,
		Tags:        []string{"filter coffee", "idli", "breakfast"},
		Rating:      4.7,
		Address:     "Shankarapuram, Basavanagudi, Bengaluru",
		Distance:    "2.8 miles away",
		Image:       "https://images.lokal.app/places/brahmins.jpg",
		Description: "Legendary filter coffee and soft idlis since 1965.",
		OpenNow:     Bool(true),
		Hours:       "Until 12:00 PM",
		PriceLevel:  "$",
		ReviewCount: 1832,
	},
	{
		ID:          "pl-2",
		Name:        "Third Wave Coffee Roasters",
		Category:    CategoryCafes,
		Tags:        []string{"cafe", "espresso", "wifi"},
		Rating:      4.4,
		Address:     "CMH Road, Indiranagar, Bengaluru",
		Distance:    "2.1 miles away",
		Image:       "https://images.lokal.app/places/third-wave.jpg",
		Description: "Single-origin pour overs and a quiet work corner.",
		OpenNow:     Bool(true),
		Hours:       "Until 11:00 PM",
		PriceLevel:  "$$",
		ReviewCount: 954,
	},
	{
		ID:          "pl-3",
		Name:        "Nagarjuna Restaurant",
		Category:    CategoryRestaurants,
		Tags:        []string{"andhra", "biryani", "spicy"},
		Rating:      4.5,
		Address:     "Residency Road, Bengaluru",
		Distance:    "3.6 miles away",
		Image:       "https://images.lokal.app/places/nagarjuna.jpg",
		Description: "Andhra meals on banana leaf, famous chilli chicken.",
		Phone:       "+91 80 2558 8998",
		OpenNow:     Bool(true),
		Hours:       "Until 10:30 PM",
		PriceLevel:  "$$",
		ReviewCount: 2210,
	},
	{
		ID:          "pl-4",
		Name:        "CTR Shri Sagar",
		Category:    CategoryRestaurants,
		Tags:        []string{"benne dosa", "breakfast", "south indian"},
		Rating:      4.8,
		Address:     "7th Cross, Malleshwaram, Bengaluru",
		Distance:    "0.4 miles away",
		Image:       "https://images.lokal.app/places/ctr.jpg",
		Description: "Crisp benne masala dosa worth the queue.",
		OpenNow:     Bool(false),
		Hours:       "Opens 7:30 AM",
		PriceLevel:  "$",
		ReviewCount: 3105,
	},
	{
		ID:          "pl-5",
		Name:        "FixIt Plumbing Works",
		Category:    CategoryServices,
		Tags:        []string{"plumber", "repairs", "24x7"},
		Rating:      4.1,
		Address:     "Dr Rajkumar Road, Rajajinagar, Bengaluru",
		Distance:    "1.5 miles away",
		Image:       "https://images.lokal.app/places/fixit.jpg",
		Description: "Household plumbing, geyser and tap repairs on call.",
		Phone:       "+91 99001 44320",
		OpenNow:     Bool(true),
		Hours:       "Until 8:00 PM",
		PriceLevel:  "$",
		ReviewCount: 64,
	},
	{
		ID:          "pl-6",
		Name:        "Blossom Book House",
		Category:    CategoryShopping,
		Tags:        []string{"books", "second hand"},
		Rating:      4.7,
		Address:     "Church Street, Bengaluru",
		Distance:    "4.2 miles away",
		Image:       "https://images.lokal.app/places/blossom.jpg",
		Description: "Three floors of new and used books.",
		OpenNow:     Bool(true),
		Hours:       "Until 9:30 PM",
		PriceLevel:  "$",
		ReviewCount: 1420,
	},
	{
		ID:          "pl-7",
		Name:        "Green Theory",
		Category:    CategoryCafes,
		Tags:        []string{"vegetarian", "garden seating"},
		Rating:      4.2,
		Address:     "Residency Road Cross, Bengaluru",
		Distance:    "3.4 miles away",
		Image:       "https://images.lokal.app/places/green-theory.jpg",
		Description: "Leafy courtyard cafe with an all-veg menu.",
		OpenNow:     Bool(true),
		Hours:       "Until 11:00 PM",
		PriceLevel:  "$$",
		ReviewCount: 733,
	},
	{
		ID:          "pl-8",
		Name:        "Sparkle Home Cleaning",
		Category:    CategoryServices,
		Tags:        []string{"deep cleaning", "pest control"},
		Rating:      3.9,
		Address:     "Outer Ring Road, Marathahalli, Bengaluru",
		Distance:    "6.8 miles away",
		Image:       "https://images.lokal.app/places/sparkle.jpg",
		Description: "Scheduled deep-cleaning crews for homes and offices.",
		OpenNow:     Bool(false),
		Hours:       "Opens 9:00 AM",
		PriceLevel:  "$$",
		ReviewCount: 51,
	},
}

var staticEvents = []Event{
	{
		ID:          "ev-1",
		Title:       "Sunrise Yoga at Cubbon Park",
		Date:        "Saturday, Sep 6",
		Time:        "6:30 AM",
		Location:    "Cubbon Park, Bengaluru",
		Description: "Open-air yoga session for all levels, mats provided.",
		Image:       "https://images.lokal.app/events/sunrise-yoga.jpg",
		Attendees:   85,
	},
	{
		ID:          "ev-2",
		Title:       "Malleshwaram Food Walk",
		Date:        "Sunday, Sep 7",
		Time:        "8:00 AM",
		Location:    "8th Cross, Malleshwaram",
		Description: "Guided breakfast trail through the old market lanes.",
		Image:       "https://images.lokal.app/events/food-walk.jpg",
		Attendees:   32,
	},
	{
		ID:          "ev-3",
		Title:       "Indie Vinyl Listening Night",
		Date:        "Friday, Sep 12",
		Time:        "7:00 PM",
		Location:    "Church Street Social, Bengaluru",
		Description: "Bring a record, hear a record. Limited seats.",
		Image:       "https://images.lokal.app/events/vinyl-night.jpg",
		Attendees:   48,
	},
	{
		ID:          "ev-4",
		Title:       "Beginner Yoga Workshop",
		Date:        "Saturday, Sep 13",
		Time:        "9:00 AM",
		Location:    "Prana Yoga Shala, Malleshwaram",
		Description: "Two-hour foundation workshop covering breath and posture.",
		Image:       "https://images.lokal.app/events/yoga-workshop.jpg",
		Attendees:   24,
	},
	{
		ID:          "ev-5",
		Title:       "Weekend Farmers Market",
		Date:        "Sunday, Sep 14",
		Time:        "10:00 AM",
		Location:    "Jayanagar 4th Block, Bengaluru",
		Description: "Organic produce, millets and live cooking demos.",
		Image:       "https://images.lokal.app/events/farmers-market.jpg",
		Attendees:   150,
	},
}
