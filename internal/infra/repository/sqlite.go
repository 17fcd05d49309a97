package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
	"voice-notes/internal/domain/entities"
	repocontants "voice-notes/internal/domain/interfaces/repository/constants"
	client "voice-notes/internal/pkg"
)

// TimestampLayout is how note timestamps are stored: UTC, second precision,
// the same shape SQLite's CURRENT_TIMESTAMP produces.
const TimestampLayout = "2006-01-02 15:04:05"

// StorageError wraps any failure talking to the note database.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// SQLiteNoteRepository keeps notes in a single table. Every operation opens
// its own connection and closes it before returning, so no state is shared
// between calls.
type SQLiteNoteRepository struct {
	dsn string
	now func() time.Time
}

func NewSQLiteNoteRepository(path string) *SQLiteNoteRepository {
	return &SQLiteNoteRepository{dsn: client.SQLiteDSN(path), now: time.Now}
}

// WithClock replaces the time source used for new notes.
func (r *SQLiteNoteRepository) WithClock(now func() time.Time) *SQLiteNoteRepository {
	r.now = now
	return r
}

func (r *SQLiteNoteRepository) withDB(ctx context.Context, op string, fn func(db *sql.DB) error) error {
	db, err := client.SQLiteClient(ctx, r.dsn)
	if err != nil {
		return &StorageError{Op: op, Err: err}
	}
	defer db.Close()

	if err := fn(db); err != nil {
		return &StorageError{Op: op, Err: err}
	}
	return nil
}

// Init creates the notes table when it does not exist yet.
func (r *SQLiteNoteRepository) Init(ctx context.Context) error {
	schema := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS %s (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id   TEXT NOT NULL,
		content   TEXT NOT NULL,
		timestamp DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_%s_user_ts ON %s(user_id, timestamp DESC);
	`, repocontants.NOTES_TABLE, repocontants.NOTES_TABLE, repocontants.NOTES_TABLE)

	return r.withDB(ctx, "init", func(db *sql.DB) error {
		_, err := db.ExecContext(ctx, schema)
		return err
	})
}

// SaveNote appends one note. Duplicate content is allowed.
func (r *SQLiteNoteRepository) SaveNote(ctx context.Context, userID string, content string) error {
	ts := r.now().UTC().Format(TimestampLayout)
	query := fmt.Sprintf(`INSERT INTO %s (user_id, content, timestamp) VALUES (?, ?, ?)`, repocontants.NOTES_TABLE)

	return r.withDB(ctx, "save note", func(db *sql.DB) error {
		_, err := db.ExecContext(ctx, query, userID, content, ts)
		return err
	})
}

// GetNotes returns up to limit notes of the user, newest first.
func (r *SQLiteNoteRepository) GetNotes(ctx context.Context, userID string, limit int) ([]entities.Note, error) {
	if limit <= 0 {
		limit = repocontants.DEFAULT_NOTES_LIMIT
	}
	return r.query(ctx, "get notes", selectNotes()+` LIMIT ?`, userID, limit)
}

// GetAllNotes returns every note of the user, newest first.
func (r *SQLiteNoteRepository) GetAllNotes(ctx context.Context, userID string) ([]entities.Note, error) {
	return r.query(ctx, "get all notes", selectNotes(), userID)
}

// Ties on the second-precision timestamp are broken by insertion order.
func selectNotes() string {
	return fmt.Sprintf(`
		SELECT id, user_id, content, strftime('%%Y-%%m-%%d %%H:%%M:%%S', timestamp)
		FROM %s
		WHERE user_id = ?
		ORDER BY timestamp DESC, id DESC`, repocontants.NOTES_TABLE)
}

func (r *SQLiteNoteRepository) query(ctx context.Context, op string, query string, args ...interface{}) ([]entities.Note, error) {
	notes := []entities.Note{}
	err := r.withDB(ctx, op, func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var n entities.Note
			var ts string
			if err := rows.Scan(&n.ID, &n.UserID, &n.Content, &ts); err != nil {
				return fmt.Errorf("scan note: %w", err)
			}
			n.CreatedAt, err = time.ParseInLocation(TimestampLayout, ts, time.UTC)
			if err != nil {
				return fmt.Errorf("parse timestamp %q: %w", ts, err)
			}
			notes = append(notes, n)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return notes, nil
}
