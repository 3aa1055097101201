package api

// PlaceRecord is a row from the primary recommendations source. Optional
// columns arrive as pointers; defaulting happens in the resolver mapping.
type PlaceRecord struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Rating      *float64 `json:"rating"`
	Address     string   `json:"address"`
	Distance    *string  `json:"distance"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	Description string   `json:"description"`
	Phone       *string  `json:"phone"`
	OpenNow     *bool    `json:"open_now"`
	Hours       *string  `json:"hours"`
	PriceLevel  *string  `json:"price_level"`
	ReviewCount *int     `json:"review_count"`
}

// BusinessRecord is a row from the secondary service-business source. It has
// no distance or hours columns; the resolver synthesizes placeholders.
type BusinessRecord struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Tags         []string `json:"tags"`
	Rating       *float64 `json:"rating"`
	Address      string   `json:"address"`
	ImageURL     string   `json:"image_url"`
	Images       []string `json:"images"`
	Description  string   `json:"description"`
	ContactPhone *string  `json:"contact_phone"`
	OpenNow      *bool    `json:"open_now"`
}

// EventRecord is a row from the remote events source.
type EventRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Attendees   int    `json:"attendees"`
}
