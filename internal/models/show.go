package models

import "time"

// Show links one artist to one venue at a specific start time. Shows are
// never mutated after creation; they are deleted explicitly or by the
// cascade when either endpoint is removed.
type Show struct {
	ID        int64     `json:"id"`
	VenueID   int64     `json:"venue_id"`
	ArtistID  int64     `json:"artist_id"`
	StartTime time.Time `json:"start_time"`
}

// VenueShow is a show as rendered on a venue page, carrying artist details.
type VenueShow struct {
	StartTime       time.Time `json:"start_time"`
	ArtistID        int64     `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link,omitempty"`
}

// Start reports when the show begins.
func (s VenueShow) Start() time.Time { return s.StartTime }

// ArtistShow is a show as rendered on an artist page, carrying venue details.
type ArtistShow struct {
	StartTime      time.Time `json:"start_time"`
	VenueID        int64     `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link,omitempty"`
}

// Start reports when the show begins.
func (s ArtistShow) Start() time.Time { return s.StartTime }

// ShowListing joins both endpoints of a show for the all-shows page.
type ShowListing struct {
	ID              int64     `json:"id"`
	StartTime       time.Time `json:"start_time"`
	VenueID         int64     `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        int64     `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link,omitempty"`
}
