package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/flashdeck/internal/session"
)

// The two persisted slots. History is an append-only JSON array of
// sessions; the current slot holds the most recently finished session and
// is overwritten on every append.
const (
	KeyHistory = "quizSessions"
	KeyCurrent = "currentSession"
)

// SessionRepo is the analytics store's typed surface. Backends are
// swappable; the core never touches serialization or SQL directly.
type SessionRepo interface {
	// Append adds a finalized session to the history and overwrites the
	// current-session slot with it.
	Append(ctx context.Context, s *session.Session) error

	// ReadAll returns every stored session in insertion order. Corrupt or
	// missing data reads as empty.
	ReadAll(ctx context.Context) ([]session.Session, error)

	// ReadCurrent returns the current-session slot, or nil when absent.
	ReadCurrent(ctx context.Context) (*session.Session, error)

	// ClearAll empties both slots.
	ClearAll(ctx context.Context) error
}

type sqliteRepo struct {
	db *sql.DB
}

var _ SessionRepo = (*sqliteRepo)(nil)

func (r *sqliteRepo) Append(ctx context.Context, s *session.Session) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin append: %w", err)
	}
	defer tx.Rollback()

	history := decodeHistory(getValue(ctx, tx, KeyHistory))
	history = append(history, *s)

	historyJSON, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	currentJSON, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode current session: %w", err)
	}

	if err := setValue(ctx, tx, KeyHistory, string(historyJSON)); err != nil {
		return err
	}
	if err := setValue(ctx, tx, KeyCurrent, string(currentJSON)); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *sqliteRepo) ReadAll(ctx context.Context) ([]session.Session, error) {
	raw, err := r.get(ctx, KeyHistory)
	if err != nil {
		return nil, err
	}
	return decodeHistory(raw), nil
}

func (r *sqliteRepo) ReadCurrent(ctx context.Context) (*session.Session, error) {
	raw, err := r.get(ctx, KeyCurrent)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	var s session.Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		// Corrupt slot reads as absent.
		return nil, nil
	}
	return &s, nil
}

func (r *sqliteRepo) ClearAll(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin clear: %w", err)
	}
	defer tx.Rollback()

	for _, key := range []string{KeyHistory, KeyCurrent} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
			return fmt.Errorf("clear %s: %w", key, err)
		}
	}
	return tx.Commit()
}

func (r *sqliteRepo) get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", key, err)
	}
	return value, nil
}

func getValue(ctx context.Context, tx *sql.Tx, key string) string {
	var value string
	err := tx.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return ""
	}
	return value
}

func setValue(ctx context.Context, tx *sql.Tx, key, value string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// decodeHistory parses the history array, treating corrupt or missing
// payloads as empty rather than failing.
func decodeHistory(raw string) []session.Session {
	if raw == "" {
		return nil
	}
	var history []session.Session
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		return nil
	}
	return history
}
