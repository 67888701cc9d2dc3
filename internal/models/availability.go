package models

// AvailableWindow is a recurring weekly time range during which an artist
// declares willingness to perform. Windows are advisory metadata shown on
// the artist page; bookings are not checked against them.
type AvailableWindow struct {
	ID        int64  `json:"id"`
	ArtistID  int64  `json:"artist_id"`
	DayOfWeek int    `json:"day_of_week"` // 0 = Monday .. 6 = Sunday
	StartTime string `json:"start_time"`  // "HH:MM"
	EndTime   string `json:"end_time"`    // "HH:MM", may equal StartTime
}
