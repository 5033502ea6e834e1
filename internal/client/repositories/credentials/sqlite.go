package credentials

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/avoskan/taskdeck/internal/client/models"
	"github.com/avoskan/taskdeck/internal/dbx"
)

// Slot keys in the credentials table.
const (
	slotAccessToken  = "access_token"
	slotRefreshToken = "refresh_token"
	slotUser         = "user"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) get(ctx context.Context, q dbx.DBTX, key string) (string, error) {
	var value string
	err := q.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get credentials[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) set(ctx context.Context, q dbx.DBTX, key, value string) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set credentials[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) delete(ctx context.Context, q dbx.DBTX, key string) error {
	_, err := q.ExecContext(ctx, `DELETE FROM credentials WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete credentials[%s]: %w", key, err)
	}
	return nil
}

// Save writes the access token, the refresh token, and the serialized user
// record in a single transaction. An empty refresh token removes the slot so
// a stale value from a previous session cannot survive.
func (r *SQLiteRepository) Save(ctx context.Context, creds Credentials) error {
	if creds.User == nil {
		return fmt.Errorf("failed to save credentials: user record is required")
	}

	userJSON, err := json.Marshal(creds.User)
	if err != nil {
		return fmt.Errorf("failed to serialize user record: %w", err)
	}

	return dbx.WithTx(ctx, r.db, func(ctx context.Context, tx dbx.DBTX) error {
		if err := r.set(ctx, tx, slotAccessToken, creds.AccessToken); err != nil {
			return err
		}
		if creds.RefreshToken != "" {
			if err := r.set(ctx, tx, slotRefreshToken, creds.RefreshToken); err != nil {
				return err
			}
		} else if err := r.delete(ctx, tx, slotRefreshToken); err != nil {
			return err
		}
		return r.set(ctx, tx, slotUser, string(userJSON))
	})
}

// SaveUser rewrites only the user slot. Tokens are left untouched.
func (r *SQLiteRepository) SaveUser(ctx context.Context, user *models.User) error {
	if user == nil {
		return fmt.Errorf("failed to save user record: user is nil")
	}

	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize user record: %w", err)
	}

	return r.set(ctx, r.db, slotUser, string(userJSON))
}

// Load reads all slots. The second return value is false when the store
// holds neither a token nor a user record. A partially populated store is
// returned as-is so the caller can decide to clear it. A user record that
// cannot be deserialized is an error.
func (r *SQLiteRepository) Load(ctx context.Context) (Credentials, bool, error) {
	var creds Credentials

	access, err := r.get(ctx, r.db, slotAccessToken)
	if err != nil {
		return Credentials{}, false, err
	}
	refresh, err := r.get(ctx, r.db, slotRefreshToken)
	if err != nil {
		return Credentials{}, false, err
	}
	userJSON, err := r.get(ctx, r.db, slotUser)
	if err != nil {
		return Credentials{}, false, err
	}

	if access == "" && userJSON == "" {
		return Credentials{}, false, nil
	}

	creds.AccessToken = access
	creds.RefreshToken = refresh

	if userJSON != "" {
		var u models.User
		if err := json.Unmarshal([]byte(userJSON), &u); err != nil {
			return Credentials{}, false, fmt.Errorf("failed to deserialize user record: %w", err)
		}
		creds.User = &u
	}

	return creds, true, nil
}

// AccessToken returns the stored access token, or "" when absent. Callers
// that attach the token to requests read it through here on every call.
func (r *SQLiteRepository) AccessToken(ctx context.Context) (string, error) {
	return r.get(ctx, r.db, slotAccessToken)
}

// Clear removes every slot in a single transaction. Clearing an already
// empty store is a no-op.
func (r *SQLiteRepository) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, r.db, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM credentials`)
		if err != nil {
			return fmt.Errorf("failed to clear credentials: %w", err)
		}
		return nil
	})
}
