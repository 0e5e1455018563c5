// Package state persists the small pieces of session data mapdeck keeps
// across runs: recent searches, bookmarks, and save-lists. Sheet tiers
// are deliberately not persisted; every session starts with the sheets
// hidden.
package state

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName    = "mapdeck"
	dbFileName = "mapdeck.db"
)

// Manager owns the SQLite handle.
type Manager struct {
	db *sql.DB
}

// Open opens (or creates) the database at the XDG data path.
func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating state directory: %w", err)
	}
	return OpenPath(dbPath)
}

// OpenPath opens a database at an explicit path. Tests use ":memory:".
func OpenPath(path string) (*Manager, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening state db: %w", err)
	}
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return &Manager{db: db}, nil
}

// Close releases the database handle.
func (m *Manager) Close() error {
	return m.db.Close()
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
