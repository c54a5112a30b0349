package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"zim/gym-app/internal/domain"
	"zim/gym-app/internal/repository"
)

// sessionRecordKey is the single key under which the authenticated
// identity is stored, matching the web client's storage key.
const sessionRecordKey = "zim-user"

// sessionRepository implements repository.SessionRepository on SQLite.
// It holds at most one row: the JSON-serialized Identity of the current
// session, written on login/signup and removed on logout.
type sessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a session record store over an open
// database prepared by Open.
func NewSessionRepository(db *sql.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Save(ctx context.Context, identity *domain.Identity) error {
	payload, err := json.Marshal(identity)
	if err != nil {
		return err
	}

	query := `
	INSERT INTO session_record (key, payload, updated_at) VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`
	_, err = r.db.ExecContext(ctx, query, sessionRecordKey, string(payload), time.Now().UTC().Format(time.RFC3339))
	return err
}

func (r *sessionRepository) Load(ctx context.Context) (*domain.Identity, error) {
	var payload string
	query := "SELECT payload FROM session_record WHERE key = ?"

	err := r.db.QueryRowContext(ctx, query, sessionRecordKey).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	var identity domain.Identity
	if err := json.Unmarshal([]byte(payload), &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM session_record WHERE key = ?", sessionRecordKey)
	return err
}
