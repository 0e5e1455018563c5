package state

import (
	"database/sql"
	"strings"
	"time"

	"mapdeck/internal/db"
)

// maxRecentSearches caps the ring of remembered queries.
const maxRecentSearches = 20

// RecentSearch is one remembered query.
type RecentSearch struct {
	Query      string
	SearchedAt time.Time
}

// AddRecentSearch records a query, refreshing its timestamp if it was
// already remembered, and trims the ring to the newest entries.
func (m *Manager) AddRecentSearch(query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	// Delete-then-insert so the rowid is the recency order even when
	// two searches land within the same timestamp granularity.
	return db.WithTx(m.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM recent_searches WHERE query = ?`, query); err != nil {
			return err
		}
		_, err := tx.Exec(`
			INSERT INTO recent_searches (query, searched_at) VALUES (?, ?)
		`, query, time.Now().Unix())
		if err != nil {
			return err
		}

		_, err = tx.Exec(`
			DELETE FROM recent_searches WHERE id NOT IN (
				SELECT id FROM recent_searches ORDER BY id DESC LIMIT ?
			)
		`, maxRecentSearches)
		return err
	})
}

// RecentSearches returns the newest remembered queries, newest first.
func (m *Manager) RecentSearches(limit int) ([]RecentSearch, error) {
	if limit <= 0 || limit > maxRecentSearches {
		limit = maxRecentSearches
	}
	rows, err := m.db.Query(`
		SELECT query, searched_at FROM recent_searches
		ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RecentSearch
	for rows.Next() {
		var r RecentSearch
		var ts int64
		if err := rows.Scan(&r.Query, &ts); err != nil {
			return nil, err
		}
		r.SearchedAt = time.Unix(ts, 0)
		out = append(out, r)
	}
	return out, rows.Err()
}

// ClearRecentSearches forgets every remembered query.
func (m *Manager) ClearRecentSearches() error {
	_, err := m.db.Exec(`DELETE FROM recent_searches`)
	return err
}
