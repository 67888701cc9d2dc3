package models

// Artist represents a performing artist in the directory.
type Artist struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone,omitempty"`
	Genres             []string `json:"genres"`
	ImageLink          string   `json:"image_link,omitempty"`
	FacebookLink       string   `json:"facebook_link,omitempty"`
	Website            string   `json:"website,omitempty"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description,omitempty"`
}

// SearchHit is a venue or artist reference with its upcoming-show count,
// used by search results and directory listings.
type SearchHit struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// NamedRef is a bare id/name pair, used by the artist index and the
// recently-added listings.
type NamedRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
