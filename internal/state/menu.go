package state

import (
	"database/sql"
	"errors"
	"time"

	"github.com/depeter/cyclemenu/internal/menu"
)

// MenuState is the saved scroll position of the menu together with the
// layout it was taken under.
type MenuState struct {
	Position   int     // Real item position, menu.NoPosition when unset
	Angle      float64 // First item angle offset, menu.UndefinedAngle when unset
	Corner     string
	ScrollType string
	ItemCount  int
	UpdatedAt  time.Time
}

// Matches reports whether the saved position still applies to a menu with
// the given layout.
func (s MenuState) Matches(corner menu.Corner, scroll menu.ScrollMode, itemCount int) bool {
	return s.Position != menu.NoPosition &&
		s.Position < itemCount &&
		s.Corner == corner.String() &&
		s.ScrollType == scroll.String() &&
		s.ItemCount == itemCount
}

// GetMenuState returns the saved state, or an unset state when nothing
// has been saved yet.
func (m *Manager) GetMenuState() (MenuState, error) {
	return getMenuState(m.db)
}

// SaveMenuState writes s immediately and drops any pending debounced save.
func (m *Manager) SaveMenuState(s MenuState) error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	m.pending = nil
	m.saveMu.Unlock()

	return saveMenuState(m.db, s)
}

func getMenuState(db *sql.DB) (MenuState, error) {
	var s MenuState
	var updatedAt int64

	row := db.QueryRow(`
		SELECT position, angle, corner, scroll_type, item_count, updated_at
		FROM menu_state WHERE id = 1
	`)
	err := row.Scan(&s.Position, &s.Angle, &s.Corner, &s.ScrollType, &s.ItemCount, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return MenuState{Position: menu.NoPosition, Angle: menu.UndefinedAngle}, nil
	}
	if err != nil {
		return MenuState{}, err
	}

	s.UpdatedAt = time.Unix(updatedAt, 0)
	return s, nil
}

func saveMenuState(db *sql.DB, s MenuState) error {
	updatedAt := s.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	_, err := db.Exec(`
		INSERT INTO menu_state (id, position, angle, corner, scroll_type, item_count, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			position = excluded.position,
			angle = excluded.angle,
			corner = excluded.corner,
			scroll_type = excluded.scroll_type,
			item_count = excluded.item_count,
			updated_at = excluded.updated_at
	`, s.Position, s.Angle, s.Corner, s.ScrollType, s.ItemCount, updatedAt.Unix())
	return err
}
