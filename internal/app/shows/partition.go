package shows

import "time"

// Scheduled is any record that has a start time.
type Scheduled interface {
	Start() time.Time
}

// Partition splits items into past and upcoming relative to ref. The
// boundary is inclusive on the upcoming side: an item starting exactly
// at ref is upcoming, never past. Order within each half follows the
// input order.
func Partition[T Scheduled](items []T, ref time.Time) (past, upcoming []T) {
	for _, item := range items {
		if item.Start().Before(ref) {
			past = append(past, item)
		} else {
			upcoming = append(upcoming, item)
		}
	}
	return past, upcoming
}
