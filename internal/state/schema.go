package state

import "database/sql"

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS menu_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			position INTEGER NOT NULL DEFAULT -1,
			angle REAL NOT NULL DEFAULT -1000,
			corner TEXT NOT NULL DEFAULT '',
			scroll_type TEXT NOT NULL DEFAULT '',
			item_count INTEGER NOT NULL DEFAULT 0,
			updated_at INTEGER NOT NULL
		);
	`)
	return err
}
