// Package state persists the menu's scroll position between runs.
package state

import (
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "cyclemenu"
	dbFileName   = "cyclemenu.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db        *sql.DB
	logger    *slog.Logger
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *MenuState
}

// Open opens the database in the XDG data directory.
func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens or creates the database at path. ":memory:" is accepted.
func OpenPath(path string) (*Manager, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// An in-memory database lives only as long as its connection.
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db, logger: slog.Default()}, nil
}

// SetLogger sets where background save failures are reported.
func (m *Manager) SetLogger(l *slog.Logger) {
	if l != nil {
		m.logger = l
	}
}

func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	// Flush pending state
	var flushErr error
	if pending != nil {
		flushErr = saveMenuState(m.db, *pending)
	}

	return errors.Join(flushErr, m.db.Close())
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

// SaveMenuStateDebounced coalesces rapid saves, e.g. while scrolling.
func (m *Manager) SaveMenuStateDebounced(s MenuState) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &s

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending != nil {
			if err := saveMenuState(m.db, *pending); err != nil {
				m.logger.Warn("Failed to save menu state", "position", pending.Position, "error", err)
			}
		}
	})
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
