package model

import "time"

// Event represents a show or pop-up, either created by an artist profile or
// inserted by the search ingestion job. Events are never mutated after
// creation.
type Event struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DateTime    time.Time  `json:"dateTime"`
	Location    string     `json:"location"`
	VenueType   string     `json:"venueType,omitempty"`
	CreatedBy   string     `json:"createdBy"`
	ArtistIDs   StringList `json:"artistIds"`
	CreatedAt   time.Time  `json:"createdAt"`
}
