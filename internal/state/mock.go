package state

import (
	"sort"
	"time"
)

// Mock is an in-memory Interface implementation for tests.
type Mock struct {
	Recents    []RecentSearch
	Marks      map[int]Bookmark
	Lists      []SaveList
	ListPlaces map[int64][]SavedPlace

	nextListID int64
}

var _ Interface = (*Mock)(nil)

// NewMock creates an empty in-memory state store.
func NewMock() *Mock {
	return &Mock{
		Marks:      make(map[int]Bookmark),
		ListPlaces: make(map[int64][]SavedPlace),
	}
}

func (m *Mock) AddRecentSearch(query string) error {
	for i, r := range m.Recents {
		if r.Query == query {
			m.Recents = append(m.Recents[:i], m.Recents[i+1:]...)
			break
		}
	}
	m.Recents = append([]RecentSearch{{Query: query, SearchedAt: time.Now()}}, m.Recents...)
	if len(m.Recents) > maxRecentSearches {
		m.Recents = m.Recents[:maxRecentSearches]
	}
	return nil
}

func (m *Mock) RecentSearches(limit int) ([]RecentSearch, error) {
	if limit <= 0 || limit > len(m.Recents) {
		limit = len(m.Recents)
	}
	return append([]RecentSearch(nil), m.Recents[:limit]...), nil
}

func (m *Mock) ClearRecentSearches() error {
	m.Recents = nil
	return nil
}

func (m *Mock) AddBookmark(b Bookmark) error {
	if prev, ok := m.Marks[b.PlaceID]; ok {
		b.CreatedAt = prev.CreatedAt
	} else if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	m.Marks[b.PlaceID] = b
	return nil
}

func (m *Mock) RemoveBookmark(placeID int) error {
	delete(m.Marks, placeID)
	return nil
}

func (m *Mock) Bookmarks() ([]Bookmark, error) {
	out := make([]Bookmark, 0, len(m.Marks))
	for _, b := range m.Marks {
		out = append(out, b)
	}
	sort.Slice(out, func(a, b int) bool {
		if !out[a].CreatedAt.Equal(out[b].CreatedAt) {
			return out[a].CreatedAt.After(out[b].CreatedAt)
		}
		return out[a].PlaceID > out[b].PlaceID
	})
	return out, nil
}

func (m *Mock) IsBookmarked(placeID int) (bool, error) {
	_, ok := m.Marks[placeID]
	return ok, nil
}

func (m *Mock) CreateSaveList(name string) (int64, error) {
	m.nextListID++
	m.Lists = append(m.Lists, SaveList{ID: m.nextListID, Name: name, CreatedAt: time.Now()})
	return m.nextListID, nil
}

func (m *Mock) SaveLists() ([]SaveList, error) {
	out := append([]SaveList(nil), m.Lists...)
	for i := range out {
		out[i].Count = len(m.ListPlaces[out[i].ID])
	}
	return out, nil
}

func (m *Mock) AddToSaveList(listID int64, p SavedPlace) error {
	m.ListPlaces[listID] = append(m.ListPlaces[listID], p)
	return nil
}

func (m *Mock) SaveListPlaces(listID int64) ([]SavedPlace, error) {
	return append([]SavedPlace(nil), m.ListPlaces[listID]...), nil
}

func (m *Mock) Close() error { return nil }
