// Package database persists the samples learned from confirmed column
// mappings. The store is a small SQLite file; every (layout, field,
// value) triple is unique, so re-learning the same file is a no-op.
package database

import (
	"database/sql"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Config tunes the underlying connection pool.
type Config struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// SampleStore wraps the learned-samples database.
type SampleStore struct {
	conn *sql.DB
}

const sampleSchema = `
CREATE TABLE IF NOT EXISTS field_samples (
	layout_id  TEXT NOT NULL,
	field_id   TEXT NOT NULL,
	value      TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (layout_id, field_id, value)
);
CREATE INDEX IF NOT EXISTS idx_field_samples_field ON field_samples(layout_id, field_id);
`

// NewSampleStore opens (or creates) the sample database at path.
func NewSampleStore(path string) (*SampleStore, error) {
	config := Config{}

	// In-memory SQLite needs exactly one connection, otherwise each
	// new connection sees an empty database without the schema.
	if isInMemory(path) {
		config.MaxOpenConns = 1
		config.MaxIdleConns = 1
	}

	return NewSampleStoreWithConfig(path, config)
}

// NewSampleStoreWithConfig opens the store with explicit pool settings.
func NewSampleStoreWithConfig(path string, config Config) (*SampleStore, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sample database: %w", err)
	}

	// SQLite handles many concurrent connections poorly; keep the
	// pool small to avoid lock contention.
	if config.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(config.MaxOpenConns)
	} else {
		conn.SetMaxOpenConns(10)
	}
	if config.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(config.MaxIdleConns)
	} else {
		conn.SetMaxIdleConns(3)
	}
	if config.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(config.ConnMaxLifetime)
	} else {
		conn.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping sample database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// WAL lets readers proceed while a learning transaction writes.
	if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
		log.Printf("[SampleStore] Warning: Failed to enable WAL mode: %v", err)
	}

	if _, err := conn.Exec(sampleSchema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize sample schema: %w", err)
	}

	return &SampleStore{conn: conn}, nil
}

// Close releases the underlying connections.
func (s *SampleStore) Close() error {
	return s.conn.Close()
}

// Load returns every learned sample of a layout, grouped by field and
// sorted for stable output.
func (s *SampleStore) Load(layoutID string) (map[string][]string, error) {
	rows, err := s.conn.Query(
		"SELECT field_id, value FROM field_samples WHERE layout_id = ? ORDER BY field_id, value",
		layoutID)
	if err != nil {
		return nil, fmt.Errorf("failed to load samples for layout %s: %w", layoutID, err)
	}
	defer rows.Close()

	samples := make(map[string][]string)
	for rows.Next() {
		var fieldID, value string
		if err := rows.Scan(&fieldID, &value); err != nil {
			return nil, fmt.Errorf("failed to scan sample row: %w", err)
		}
		samples[fieldID] = append(samples[fieldID], value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate samples: %w", err)
	}
	return samples, nil
}

// Append inserts new samples inside one transaction. Values already
// present are ignored, which makes re-learning the same file
// idempotent.
func (s *SampleStore) Append(layoutID string, samples map[string][]string) error {
	if len(samples) == 0 {
		return nil
	}

	tx, err := s.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin sample transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		"INSERT OR IGNORE INTO field_samples (layout_id, field_id, value) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare sample insert: %w", err)
	}
	defer stmt.Close()

	for fieldID, values := range samples {
		for _, v := range values {
			if strings.TrimSpace(v) == "" {
				continue
			}
			if _, err := stmt.Exec(layoutID, fieldID, v); err != nil {
				return fmt.Errorf("failed to insert sample %s/%s: %w", layoutID, fieldID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit samples: %w", err)
	}
	return nil
}

// DeleteField removes every sample of one field and reports how many
// rows went away.
func (s *SampleStore) DeleteField(layoutID, fieldID string) (int64, error) {
	res, err := s.conn.Exec(
		"DELETE FROM field_samples WHERE layout_id = ? AND field_id = ?",
		layoutID, fieldID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete samples for %s/%s: %w", layoutID, fieldID, err)
	}
	return res.RowsAffected()
}

// DeleteValue removes a single learned value.
func (s *SampleStore) DeleteValue(layoutID, fieldID, value string) (int64, error) {
	res, err := s.conn.Exec(
		"DELETE FROM field_samples WHERE layout_id = ? AND field_id = ? AND value = ?",
		layoutID, fieldID, value)
	if err != nil {
		return 0, fmt.Errorf("failed to delete sample %s/%s: %w", layoutID, fieldID, err)
	}
	return res.RowsAffected()
}

// FieldSummary describes what the store knows about one field.
type FieldSummary struct {
	LayoutID string   `json:"layout"`
	FieldID  string   `json:"campo"`
	Count    int      `json:"quantidade"`
	Samples  []string `json:"amostras"`
}

// Summary lists every field with learned samples, carrying at most
// sampleLimit example values each. An empty layoutID covers all
// layouts.
func (s *SampleStore) Summary(layoutID string, sampleLimit int) ([]FieldSummary, error) {
	query := "SELECT layout_id, field_id, value FROM field_samples"
	var args []interface{}
	if layoutID != "" {
		query += " WHERE layout_id = ?"
		args = append(args, layoutID)
	}
	query += " ORDER BY layout_id, field_id, value"

	rows, err := s.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize samples: %w", err)
	}
	defer rows.Close()

	var summaries []FieldSummary
	index := make(map[string]int)
	for rows.Next() {
		var lid, fid, value string
		if err := rows.Scan(&lid, &fid, &value); err != nil {
			return nil, fmt.Errorf("failed to scan summary row: %w", err)
		}
		key := lid + "\x00" + fid
		i, ok := index[key]
		if !ok {
			i = len(summaries)
			index[key] = i
			summaries = append(summaries, FieldSummary{LayoutID: lid, FieldID: fid, Samples: []string{}})
		}
		summaries[i].Count++
		if sampleLimit <= 0 || len(summaries[i].Samples) < sampleLimit {
			summaries[i].Samples = append(summaries[i].Samples, value)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate summary: %w", err)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].LayoutID != summaries[j].LayoutID {
			return summaries[i].LayoutID < summaries[j].LayoutID
		}
		return summaries[i].FieldID < summaries[j].FieldID
	})
	return summaries, nil
}

// Search returns the learned values of a field containing the query
// substring, case-insensitively, up to limit results.
func (s *SampleStore) Search(layoutID, fieldID, query string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 50
	}
	pattern := "%" + escapeLike(query) + "%"
	rows, err := s.conn.Query(
		`SELECT value FROM field_samples
		 WHERE layout_id = ? AND field_id = ? AND value LIKE ? ESCAPE '\'
		 ORDER BY value LIMIT ?`,
		layoutID, fieldID, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search samples for %s/%s: %w", layoutID, fieldID, err)
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan search row: %w", err)
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate search: %w", err)
	}
	return values, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func isInMemory(path string) bool {
	return path == ":memory:" ||
		strings.Contains(path, "mode=memory") ||
		strings.HasPrefix(path, "file::memory:")
}
