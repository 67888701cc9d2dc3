package models

// Venue represents a performance venue in the directory.
type Venue struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Address            string   `json:"address"`
	Phone              string   `json:"phone,omitempty"`
	ImageLink          string   `json:"image_link,omitempty"`
	FacebookLink       string   `json:"facebook_link,omitempty"`
	Website            string   `json:"website,omitempty"`
	Genres             []string `json:"genres"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description,omitempty"`
}

// VenueCount is one row of the directory aggregate before grouping:
// a venue together with its upcoming-show count.
type VenueCount struct {
	ID               int64
	Name             string
	City             string
	State            string
	NumUpcomingShows int
}

// CityGroup collects the venues that share an exact (city, state) pair.
type CityGroup struct {
	City   string      `json:"city"`
	State  string      `json:"state"`
	Venues []SearchHit `json:"venues"`
}
