package state

import (
	"fmt"
	"time"
)

// Bookmark is a saved place shown in the bookmarks overlay.
type Bookmark struct {
	PlaceID   int
	Name      string
	Kind      string
	Lat       float64
	Lon       float64
	CreatedAt time.Time
}

// SaveList is a named collection of saved places.
type SaveList struct {
	ID        int64
	Name      string
	Count     int
	CreatedAt time.Time
}

// SavedPlace is one entry in a save-list.
type SavedPlace struct {
	Name string
	Lat  float64
	Lon  float64
}

// AddBookmark saves a place. Re-bookmarking refreshes the name and
// coordinates without duplicating the row.
func (m *Manager) AddBookmark(b Bookmark) error {
	_, err := m.db.Exec(`
		INSERT INTO bookmarks (place_id, name, kind, lat, lon, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(place_id) DO UPDATE SET
			name = excluded.name, kind = excluded.kind,
			lat = excluded.lat, lon = excluded.lon
	`, b.PlaceID, b.Name, b.Kind, b.Lat, b.Lon, time.Now().Unix())
	return err
}

// RemoveBookmark deletes a saved place. Removing an absent bookmark is
// not an error.
func (m *Manager) RemoveBookmark(placeID int) error {
	_, err := m.db.Exec(`DELETE FROM bookmarks WHERE place_id = ?`, placeID)
	return err
}

// Bookmarks returns every saved place, newest first.
func (m *Manager) Bookmarks() ([]Bookmark, error) {
	rows, err := m.db.Query(`
		SELECT place_id, name, kind, lat, lon, created_at
		FROM bookmarks ORDER BY created_at DESC, place_id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Bookmark
	for rows.Next() {
		var b Bookmark
		var ts int64
		if err := rows.Scan(&b.PlaceID, &b.Name, &b.Kind, &b.Lat, &b.Lon, &ts); err != nil {
			return nil, err
		}
		b.CreatedAt = time.Unix(ts, 0)
		out = append(out, b)
	}
	return out, rows.Err()
}

// IsBookmarked reports whether a place is saved.
func (m *Manager) IsBookmarked(placeID int) (bool, error) {
	var n int
	err := m.db.QueryRow(`SELECT COUNT(*) FROM bookmarks WHERE place_id = ?`, placeID).Scan(&n)
	return n > 0, err
}

// CreateSaveList creates a named list and returns its id.
func (m *Manager) CreateSaveList(name string) (int64, error) {
	res, err := m.db.Exec(`
		INSERT INTO save_lists (name, created_at) VALUES (?, ?)
	`, name, time.Now().Unix())
	if err != nil {
		return 0, fmt.Errorf("creating save list %q: %w", name, err)
	}
	return res.LastInsertId()
}

// SaveLists returns every list with its entry count, oldest first.
func (m *Manager) SaveLists() ([]SaveList, error) {
	rows, err := m.db.Query(`
		SELECT l.id, l.name, l.created_at, COUNT(p.list_id)
		FROM save_lists l
		LEFT JOIN save_list_places p ON p.list_id = l.id
		GROUP BY l.id ORDER BY l.created_at ASC, l.id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SaveList
	for rows.Next() {
		var l SaveList
		var ts int64
		if err := rows.Scan(&l.ID, &l.Name, &ts, &l.Count); err != nil {
			return nil, err
		}
		l.CreatedAt = time.Unix(ts, 0)
		out = append(out, l)
	}
	return out, rows.Err()
}

// AddToSaveList appends a place to a list.
func (m *Manager) AddToSaveList(listID int64, p SavedPlace) error {
	_, err := m.db.Exec(`
		INSERT INTO save_list_places (list_id, position, name, lat, lon)
		VALUES (?, (SELECT COALESCE(MAX(position), -1) + 1 FROM save_list_places WHERE list_id = ?), ?, ?, ?)
	`, listID, listID, p.Name, p.Lat, p.Lon)
	return err
}

// SaveListPlaces returns a list's entries in insertion order.
func (m *Manager) SaveListPlaces(listID int64) ([]SavedPlace, error) {
	rows, err := m.db.Query(`
		SELECT name, lat, lon FROM save_list_places
		WHERE list_id = ? ORDER BY position ASC
	`, listID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SavedPlace
	for rows.Next() {
		var p SavedPlace
		if err := rows.Scan(&p.Name, &p.Lat, &p.Lon); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
