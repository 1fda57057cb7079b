package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind distinguishes archived commands from state changes.
type Kind string

const (
	KindCommand     Kind = "command"
	KindStateChange Kind = "state_change"
)

const (
	defaultRecentLimit = 50
	maxRecentLimit     = 1000
)

// Entry is one archived record.
type Entry struct {
	ID        int64
	SessionID string
	Kind      Kind
	Device    string
	Text      string
	CreatedAt time.Time
}

// Store persists history records beyond the current session.
type Store interface {
	// Append archives e. Implementations fill SessionID when it is empty.
	Append(ctx context.Context, e Entry) error

	// Recent returns up to limit entries newest first. An empty kind
	// matches every kind.
	Recent(ctx context.Context, kind Kind, limit int) ([]Entry, error)
}

// SQLiteStore archives records in the history_entries table.
type SQLiteStore struct {
	db        *sql.DB
	sessionID string
}

// NewSQLiteStore creates a store that tags every appended entry with a
// fresh session ID.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db, sessionID: uuid.NewString()}
}

// SessionID returns the ID stamped on entries appended through this store.
func (s *SQLiteStore) SessionID() string {
	return s.sessionID
}

// Append inserts e. CreatedAt defaults to now.
func (s *SQLiteStore) Append(ctx context.Context, e Entry) error {
	if e.Kind == "" {
		return fmt.Errorf("archiving history entry: kind is required")
	}
	if e.SessionID == "" {
		e.SessionID = s.sessionID
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO history_entries (session_id, kind, device, text, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		e.SessionID, string(e.Kind), e.Device, e.Text,
		e.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting history entry: %w", err)
	}
	return nil
}

// Recent returns archived entries newest first (default 50, max 1000).
func (s *SQLiteStore) Recent(ctx context.Context, kind Kind, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, kind, device, text, created_at
		 FROM history_entries
		 WHERE ? = '' OR kind = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		string(kind), string(kind), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying history entries: %w", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0, limit)
	for rows.Next() {
		var (
			e         Entry
			kindStr   string
			createdAt string
		)
		if err := rows.Scan(&e.ID, &e.SessionID, &kindStr, &e.Device, &e.Text, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}
		e.Kind = Kind(kindStr)

		e.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing history timestamp %q: %w", createdAt, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history entries: %w", err)
	}
	return entries, nil
}
