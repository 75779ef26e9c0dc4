package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/JAX838/delight-vision-sounds/internal/shared"
)

// KVRepository implements durable key/value storage over SQLite.
type KVRepository struct {
	db *sql.DB
}

// NewKVRepository creates a new [KVRepository] with the given database connection
func NewKVRepository(db *sql.DB) *KVRepository {
	return &KVRepository{db: db}
}

// Get retrieves the value stored under key.
// Returns [shared.ErrKeyNotFound] if the key is absent.
func (r *KVRepository) Get(key string) ([]byte, error) {
	query := `SELECT value FROM kv_store WHERE key = ?`

	var value []byte
	err := r.db.QueryRow(query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", shared.ErrKeyNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query key %s: %w", key, err)
	}

	return value, nil
}

// Put stores value under key, replacing any previous value.
func (r *KVRepository) Put(key string, value []byte) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	if _, err := r.db.Exec(query, key, value, time.Now()); err != nil {
		return fmt.Errorf("failed to put key %s: %w", key, err)
	}

	return nil
}

// Delete removes the value stored under key. Deleting an absent key is a no-op.
func (r *KVRepository) Delete(key string) error {
	query := `DELETE FROM kv_store WHERE key = ?`

	if _, err := r.db.Exec(query, key); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}

	return nil
}
