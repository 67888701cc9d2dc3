package httpapi

import (
	"context"
	"sort"
	"strings"
	"time"

	"showbill/internal/models"
	"showbill/internal/store"
)

// fakeStore is an in-memory stand-in for the Postgres store, good enough
// to drive the handlers through real services. Referential cascades
// mirror the schema's ON DELETE CASCADE behavior.
type fakeStore struct {
	venues  map[int64]*models.Venue
	artists map[int64]*models.Artist
	shows   map[int64]*models.Show
	windows map[int64]*models.AvailableWindow

	showOrder   []int64
	windowOrder []int64

	nextID int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		venues:  make(map[int64]*models.Venue),
		artists: make(map[int64]*models.Artist),
		shows:   make(map[int64]*models.Show),
		windows: make(map[int64]*models.AvailableWindow),
	}
}

func (f *fakeStore) id() int64 {
	f.nextID++
	return f.nextID
}

// Venues

func (f *fakeStore) CreateVenue(_ context.Context, v *models.Venue) (*models.Venue, error) {
	v.Name = strings.TrimSpace(v.Name)
	if v.Name == "" {
		return nil, store.ErrInvalidEntity
	}
	for _, existing := range f.venues {
		if existing.Name == v.Name {
			return nil, store.ErrVenueExists
		}
	}
	v.ID = f.id()
	f.venues[v.ID] = v
	return v, nil
}

func (f *fakeStore) GetVenue(_ context.Context, id int64) (*models.Venue, error) {
	v, ok := f.venues[id]
	if !ok {
		return nil, store.ErrVenueNotFound
	}
	copied := *v
	return &copied, nil
}

func (f *fakeStore) UpdateVenue(_ context.Context, id int64, v *models.Venue) (*models.Venue, error) {
	if _, ok := f.venues[id]; !ok {
		return nil, store.ErrVenueNotFound
	}
	for otherID, existing := range f.venues {
		if otherID != id && existing.Name == v.Name {
			return nil, store.ErrVenueExists
		}
	}
	v.ID = id
	f.venues[id] = v
	return v, nil
}

func (f *fakeStore) DeleteVenue(_ context.Context, id int64) error {
	if _, ok := f.venues[id]; !ok {
		return store.ErrVenueNotFound
	}
	delete(f.venues, id)
	for showID, sh := range f.shows {
		if sh.VenueID == id {
			f.deleteShow(showID)
		}
	}
	return nil
}

func (f *fakeStore) RecentVenues(_ context.Context, limit int) ([]models.NamedRef, error) {
	var refs []models.NamedRef
	for _, v := range f.venues {
		refs = append(refs, models.NamedRef{ID: v.ID, Name: v.Name})
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].ID > refs[j].ID })
	if len(refs) > limit {
		refs = refs[:limit]
	}
	return refs, nil
}

func (f *fakeStore) VenueExists(_ context.Context, id int64) (bool, error) {
	_, ok := f.venues[id]
	return ok, nil
}

// Artists

func (f *fakeStore) CreateArtist(_ context.Context, a *models.Artist) (*models.Artist, error) {
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" {
		return nil, store.ErrInvalidEntity
	}
	for _, existing := range f.artists {
		if existing.Name == a.Name {
			return nil, store.ErrArtistExists
		}
	}
	a.ID = f.id()
	f.artists[a.ID] = a
	return a, nil
}

func (f *fakeStore) GetArtist(_ context.Context, id int64) (*models.Artist, error) {
	a, ok := f.artists[id]
	if !ok {
		return nil, store.ErrArtistNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeStore) UpdateArtist(_ context.Context, id int64, a *models.Artist) (*models.Artist, error) {
	if _, ok := f.artists[id]; !ok {
		return nil, store.ErrArtistNotFound
	}
	a.ID = id
	f.artists[id] = a
	return a, nil
}

func (f *fakeStore) DeleteArtist(_ context.Context, id int64) error {
	if _, ok := f.artists[id]; !ok {
		return store.ErrArtistNotFound
	}
	delete(f.artists, id)
	for showID, sh := range f.shows {
		if sh.ArtistID == id {
			f.deleteShow(showID)
		}
	}
	for windowID, w := range f.windows {
		if w.ArtistID == id {
			f.deleteWindow(windowID)
		}
	}
	return nil
}

func (f *fakeStore) ListArtists(_ context.Context) ([]models.NamedRef, error) {
	var refs []models.NamedRef
	for _, a := range f.artists {
		refs = append(refs, models.NamedRef{ID: a.ID, Name: a.Name})
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].ID < refs[j].ID })
	return refs, nil
}

func (f *fakeStore) RecentArtists(_ context.Context, limit int) ([]models.NamedRef, error) {
	var refs []models.NamedRef
	for _, a := range f.artists {
		refs = append(refs, models.NamedRef{ID: a.ID, Name: a.Name})
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].ID > refs[j].ID })
	if len(refs) > limit {
		refs = refs[:limit]
	}
	return refs, nil
}

func (f *fakeStore) ArtistExists(_ context.Context, id int64) (bool, error) {
	_, ok := f.artists[id]
	return ok, nil
}

// Shows

func (f *fakeStore) CreateShow(_ context.Context, sh *models.Show) (*models.Show, error) {
	if _, ok := f.venues[sh.VenueID]; !ok {
		return nil, store.ErrVenueNotFound
	}
	if _, ok := f.artists[sh.ArtistID]; !ok {
		return nil, store.ErrArtistNotFound
	}
	sh.ID = f.id()
	f.shows[sh.ID] = sh
	f.showOrder = append(f.showOrder, sh.ID)
	return sh, nil
}

func (f *fakeStore) DeleteShow(_ context.Context, id int64) error {
	if _, ok := f.shows[id]; !ok {
		return store.ErrShowNotFound
	}
	f.deleteShow(id)
	return nil
}

func (f *fakeStore) deleteShow(id int64) {
	delete(f.shows, id)
	for i, sid := range f.showOrder {
		if sid == id {
			f.showOrder = append(f.showOrder[:i], f.showOrder[i+1:]...)
			return
		}
	}
}

func (f *fakeStore) ListShows(_ context.Context) ([]models.ShowListing, error) {
	var listings []models.ShowListing
	for _, id := range f.showOrder {
		sh := f.shows[id]
		listings = append(listings, models.ShowListing{
			ID:              sh.ID,
			StartTime:       sh.StartTime,
			VenueID:         sh.VenueID,
			VenueName:       f.venues[sh.VenueID].Name,
			ArtistID:        sh.ArtistID,
			ArtistName:      f.artists[sh.ArtistID].Name,
			ArtistImageLink: f.artists[sh.ArtistID].ImageLink,
		})
	}
	return listings, nil
}

func (f *fakeStore) ListShowsByVenue(_ context.Context, venueID int64) ([]models.VenueShow, error) {
	var out []models.VenueShow
	for _, id := range f.showOrder {
		sh := f.shows[id]
		if sh.VenueID != venueID {
			continue
		}
		artist := f.artists[sh.ArtistID]
		out = append(out, models.VenueShow{
			StartTime:       sh.StartTime,
			ArtistID:        artist.ID,
			ArtistName:      artist.Name,
			ArtistImageLink: artist.ImageLink,
		})
	}
	return out, nil
}

func (f *fakeStore) ListShowsByArtist(_ context.Context, artistID int64) ([]models.ArtistShow, error) {
	var out []models.ArtistShow
	for _, id := range f.showOrder {
		sh := f.shows[id]
		if sh.ArtistID != artistID {
			continue
		}
		venue := f.venues[sh.VenueID]
		out = append(out, models.ArtistShow{
			StartTime:      sh.StartTime,
			VenueID:        venue.ID,
			VenueName:      venue.Name,
			VenueImageLink: venue.ImageLink,
		})
	}
	return out, nil
}

// Availability windows

func (f *fakeStore) AddWindow(_ context.Context, w *models.AvailableWindow) (*models.AvailableWindow, error) {
	if _, ok := f.artists[w.ArtistID]; !ok {
		return nil, store.ErrArtistNotFound
	}
	w.ID = f.id()
	f.windows[w.ID] = w
	f.windowOrder = append(f.windowOrder, w.ID)
	return w, nil
}

func (f *fakeStore) DeleteWindow(_ context.Context, id int64) error {
	if _, ok := f.windows[id]; !ok {
		return store.ErrWindowNotFound
	}
	f.deleteWindow(id)
	return nil
}

func (f *fakeStore) deleteWindow(id int64) {
	delete(f.windows, id)
	for i, wid := range f.windowOrder {
		if wid == id {
			f.windowOrder = append(f.windowOrder[:i], f.windowOrder[i+1:]...)
			return
		}
	}
}

func (f *fakeStore) ListWindowsByArtist(_ context.Context, artistID int64) ([]models.AvailableWindow, error) {
	var out []models.AvailableWindow
	for _, id := range f.windowOrder {
		w := f.windows[id]
		if w.ArtistID == artistID {
			out = append(out, *w)
		}
	}
	return out, nil
}

// Directory

func (f *fakeStore) upcomingCount(venueID int64, ref time.Time) int {
	count := 0
	for _, sh := range f.shows {
		if sh.VenueID == venueID && !sh.StartTime.Before(ref) {
			count++
		}
	}
	return count
}

func (f *fakeStore) ListVenueCounts(_ context.Context, ref time.Time) ([]models.VenueCount, error) {
	var counts []models.VenueCount
	for _, v := range f.venues {
		counts = append(counts, models.VenueCount{
			ID:               v.ID,
			Name:             v.Name,
			City:             v.City,
			State:            v.State,
			NumUpcomingShows: f.upcomingCount(v.ID, ref),
		})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].City != counts[j].City {
			return counts[i].City < counts[j].City
		}
		if counts[i].State != counts[j].State {
			return counts[i].State < counts[j].State
		}
		return counts[i].ID < counts[j].ID
	})
	return counts, nil
}

func (f *fakeStore) SearchVenuesByName(_ context.Context, term string, ref time.Time) ([]models.SearchHit, error) {
	var hits []models.SearchHit
	for _, v := range f.venues {
		if strings.Contains(strings.ToLower(v.Name), strings.ToLower(term)) {
			hits = append(hits, models.SearchHit{
				ID:               v.ID,
				Name:             v.Name,
				NumUpcomingShows: f.upcomingCount(v.ID, ref),
			})
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].ID < hits[j].ID })
	return hits, nil
}

func (f *fakeStore) SearchVenuesByLocation(_ context.Context, city, state string, ref time.Time) ([]models.SearchHit, error) {
	var hits []models.SearchHit
	for _, v := range f.venues {
		if v.City == city && v.State == state {
			hits = append(hits, models.SearchHit{
				ID:               v.ID,
				Name:             v.Name,
				NumUpcomingShows: f.upcomingCount(v.ID, ref),
			})
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].ID < hits[j].ID })
	return hits, nil
}

func (f *fakeStore) SearchArtistsByName(_ context.Context, term string, _ time.Time) ([]models.SearchHit, error) {
	var hits []models.SearchHit
	for _, a := range f.artists {
		if strings.Contains(strings.ToLower(a.Name), strings.ToLower(term)) {
			hits = append(hits, models.SearchHit{ID: a.ID, Name: a.Name})
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].ID < hits[j].ID })
	return hits, nil
}

func (f *fakeStore) SearchArtistsByLocation(_ context.Context, city, state string, _ time.Time) ([]models.SearchHit, error) {
	var hits []models.SearchHit
	for _, a := range f.artists {
		if a.City == city && a.State == state {
			hits = append(hits, models.SearchHit{ID: a.ID, Name: a.Name})
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].ID < hits[j].ID })
	return hits, nil
}
