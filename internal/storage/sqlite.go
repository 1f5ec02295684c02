package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/meur/relicforge/internal/models"
)

// Store handles all database operations
type Store struct {
	db *sql.DB
}

// New creates a new Store with SQLite
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate runs database migrations
func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS snapshots (
			id TEXT PRIMARY KEY,
			share_code TEXT UNIQUE NOT NULL,
			payload TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_share ON snapshots(share_code)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// --- Key-value ---

// Load returns the value stored under key
func (s *Store) Load(key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(value), true, nil
}

// Save stores value under key, replacing any previous value
func (s *Store) Save(key string, value []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, string(value), time.Now())
	return err
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key)
	return err
}

// Keys returns all stored keys in order
func (s *Store) Keys() ([]string, error) {
	rows, err := s.db.Query(`SELECT key FROM kv ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// --- Snapshots ---

// snapshotPayload is what gets serialised into the payload column
type snapshotPayload struct {
	Items     []models.TrackedItem `json:"items"`
	Inventory []models.RelicCount  `json:"inventory"`
}

// generateShareCode creates a short unique share code
func generateShareCode() string {
	u := uuid.New()
	return u.String()[:8]
}

// CreateSnapshot stores a read-only copy of the tracking state
func (s *Store) CreateSnapshot(items []models.TrackedItem, inventory []models.RelicCount) (*models.Snapshot, error) {
	id := uuid.New().String()
	shareCode := generateShareCode()
	payload, err := json.Marshal(snapshotPayload{Items: items, Inventory: inventory})
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	now := time.Now()

	_, err = s.db.Exec(`
		INSERT INTO snapshots (id, share_code, payload, created_at)
		VALUES (?, ?, ?, ?)
	`, id, shareCode, string(payload), now)
	if err != nil {
		return nil, err
	}

	return &models.Snapshot{
		ID:        id,
		ShareCode: shareCode,
		Items:     items,
		Inventory: inventory,
		CreatedAt: now,
	}, nil
}

// GetSnapshotByShareCode returns a snapshot by share code
func (s *Store) GetSnapshotByShareCode(code string) (*models.Snapshot, error) {
	var snap models.Snapshot
	var payloadStr string

	err := s.db.QueryRow(`
		SELECT id, share_code, payload, created_at
		FROM snapshots WHERE share_code = ?
	`, code).Scan(&snap.ID, &snap.ShareCode, &payloadStr, &snap.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var payload snapshotPayload
	if err := json.Unmarshal([]byte(payloadStr), &payload); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", snap.ID, err)
	}
	snap.Items = payload.Items
	snap.Inventory = payload.Inventory
	return &snap, nil
}
