package state

// Interface defines the state manager contract for dependency injection
// and testing.
type Interface interface {
	AddRecentSearch(query string) error
	RecentSearches(limit int) ([]RecentSearch, error)
	ClearRecentSearches() error

	AddBookmark(b Bookmark) error
	RemoveBookmark(placeID int) error
	Bookmarks() ([]Bookmark, error)
	IsBookmarked(placeID int) (bool, error)

	CreateSaveList(name string) (int64, error)
	SaveLists() ([]SaveList, error)
	AddToSaveList(listID int64, p SavedPlace) error
	SaveListPlaces(listID int64) ([]SavedPlace, error)

	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
