// Package history records generation requests for the server's request log.
package history

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/RayyanMinhaj/global-hackathon-v1/internal/db"
)

// Outcome classifies how a request finished.
type Outcome string

const (
	OutcomeOK    Outcome = "ok"
	OutcomeError Outcome = "error"
)

// Entry is one recorded generation request.
type Entry struct {
	ID        string
	Timestamp time.Time
	Endpoint  string
	Outcome   Outcome
	Duration  time.Duration
	Detail    string
}

// Store persists request entries in SQLite.
type Store struct {
	db *db.DB
}

// NewStore creates a Store over the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Record inserts one entry. Detail carries the error text for failed
// requests and stays empty for successful ones.
func (s *Store) Record(endpoint string, outcome Outcome, duration time.Duration, detail string) error {
	_, err := s.db.Exec(
		`INSERT INTO generation_requests (id, endpoint, outcome, duration_ms, detail) VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(), endpoint, string(outcome), duration.Milliseconds(), detail,
	)
	if err != nil {
		return fmt.Errorf("recording request: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, timestamp, endpoint, outcome, duration_ms, detail
		 FROM generation_requests ORDER BY timestamp DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying requests: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var outcome string
		var durationMS int64
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.Endpoint, &outcome, &durationMS, &e.Detail); err != nil {
			return nil, fmt.Errorf("scanning request row: %w", err)
		}
		e.Outcome = Outcome(outcome)
		e.Duration = time.Duration(durationMS) * time.Millisecond
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CountByEndpoint returns request totals per endpoint.
func (s *Store) CountByEndpoint() (map[string]int, error) {
	rows, err := s.db.Query(`SELECT endpoint, COUNT(*) FROM generation_requests GROUP BY endpoint`)
	if err != nil {
		return nil, fmt.Errorf("counting requests: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var endpoint string
		var n int
		if err := rows.Scan(&endpoint, &n); err != nil {
			return nil, fmt.Errorf("scanning count row: %w", err)
		}
		counts[endpoint] = n
	}
	return counts, rows.Err()
}
