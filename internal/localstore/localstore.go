// Package localstore persists small per-visitor client state that must
// outlive the cookie jar: logout wipes every cookie, but the active
// itinerary selection survives it, so it lives here instead.
package localstore

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS active_itinerary (
	user_id      TEXT PRIMARY KEY,
	itinerary_id INTEGER NOT NULL
);`

type Store struct {
	db *sql.DB
}

// Open creates the store at the given path with WAL mode and a single
// writer connection to avoid "database is locked" errors.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf(
		"file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)",
		path,
	)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping local store: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init local store schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// ActiveItinerary returns the remembered itinerary id for a user, and
// whether one is set.
func (s *Store) ActiveItinerary(userID string) (int64, bool, error) {
	var id int64
	err := s.db.QueryRow(`SELECT itinerary_id FROM active_itinerary WHERE user_id = ?`, userID).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("read active itinerary: %w", err)
	}
	return id, true, nil
}

func (s *Store) SetActiveItinerary(userID string, itineraryID int64) error {
	_, err := s.db.Exec(
		`INSERT INTO active_itinerary (user_id, itinerary_id) VALUES (?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET itinerary_id = excluded.itinerary_id`,
		userID, itineraryID,
	)
	if err != nil {
		return fmt.Errorf("set active itinerary: %w", err)
	}
	return nil
}

func (s *Store) ClearActiveItinerary(userID string) error {
	if _, err := s.db.Exec(`DELETE FROM active_itinerary WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("clear active itinerary: %w", err)
	}
	return nil
}
