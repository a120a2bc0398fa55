package models

// Island is a read-only catalog entry rendered on listing pages.
type Island struct {
	IslandID    string   `json:"islandid" bson:"islandid"`
	Name        string   `json:"name" bson:"name"`
	Description string   `json:"description" bson:"description"`
	Location    string   `json:"location" bson:"location"`
	Climate     string   `json:"climate" bson:"climate"` // e.g. Tropical
	Activities  []string `json:"activities" bson:"activities"`
	ImageURL    string   `json:"image" bson:"image_url"`
	Rating      float64  `json:"rating" bson:"rating"`
	PriceLevel  string   `json:"price_level" bson:"price_level"` // budget/mid/luxury
	Tags        []string `json:"tags" bson:"tags"`
}

type Hotel struct {
	HotelID       string   `json:"hotelid" bson:"hotelid"`
	IslandID      string   `json:"islandid" bson:"islandid"`
	Name          string   `json:"name" bson:"name"`
	Description   string   `json:"description" bson:"description"`
	Location      string   `json:"location" bson:"location"`
	Category      string   `json:"category" bson:"category"` // resort/boutique/guesthouse
	Amenities     []string `json:"amenities" bson:"amenities"`
	PricePerNight float64  `json:"price_per_night" bson:"price_per_night"`
	ImageURL      string   `json:"image" bson:"image_url"`
	Rating        float64  `json:"rating" bson:"rating"`
}

// Event covers both scheduled events and bookable activities.
type Event struct {
	EventID     string   `json:"eventid" bson:"eventid"`
	IslandID    string   `json:"islandid" bson:"islandid"`
	Title       string   `json:"title" bson:"title"`
	Description string   `json:"description" bson:"description"`
	Location    string   `json:"location" bson:"location"`
	Category    string   `json:"category" bson:"category"` // water-sports/culture/nightlife/nature
	Date        string   `json:"date,omitempty" bson:"date,omitempty"`
	Time        string   `json:"time,omitempty" bson:"time,omitempty"`
	Duration    string   `json:"duration,omitempty" bson:"duration,omitempty"`
	Price       float64  `json:"price" bson:"price"`
	ImageURL    string   `json:"image" bson:"image_url"`
	Rating      float64  `json:"rating" bson:"rating"`
	Tags        []string `json:"tags" bson:"tags"`
	GroupSize   int      `json:"group_size,omitempty" bson:"group_size,omitempty"`
}
