package store

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/rotisserie/eris"
	"github.com/saltline/surfcast/internal/forecast"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the latest forecast in a single-row table. The
// generated_at column is queryable without decoding the payload.
type SQLiteStore struct {
	db *sql.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS forecast (
	id           INTEGER PRIMARY KEY CHECK (id = 1),
	generated_at TEXT NOT NULL,
	payload      TEXT NOT NULL
);`

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, eris.Wrap(err, "store: open sqlite database")
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, eris.Wrap(err, "store: create forecast table")
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get() (*forecast.Forecast, error) {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM forecast WHERE id = 1`).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, forecast.ErrNoForecast
	}
	if err != nil {
		return nil, eris.Wrap(err, "store: query forecast")
	}

	var f forecast.Forecast
	if err := json.Unmarshal([]byte(payload), &f); err != nil {
		return nil, eris.Wrap(err, "store: decode forecast row")
	}
	return &f, nil
}

func (s *SQLiteStore) Put(f *forecast.Forecast) error {
	raw, err := json.Marshal(f)
	if err != nil {
		return eris.Wrap(err, "store: encode forecast")
	}

	_, err = s.db.Exec(`
		INSERT INTO forecast (id, generated_at, payload) VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET generated_at = excluded.generated_at, payload = excluded.payload`,
		f.GeneratedAt.Format(time.RFC3339), string(raw))
	if err != nil {
		return eris.Wrap(err, "store: upsert forecast")
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
