package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// KV is a durable string key-value store backed by SQLite. Keys live in
// namespaces so independent features (session, historial) cannot collide.
type KV struct {
	conn *sql.DB
}

// Open creates the store file if needed and initializes the schema.
func Open(path string) (*KV, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	// WAL mode for concurrent reads
	dsn := path + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	conn.SetMaxOpenConns(1) // SQLite only supports one writer
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(time.Hour)

	kv := &KV{conn: conn}
	if err := kv.initSchema(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return kv, nil
}

func (kv *KV) initSchema() error {
	_, err := kv.conn.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			namespace TEXT NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (namespace, key)
		)
	`)
	return err
}

// Close closes the underlying database connection.
func (kv *KV) Close() error {
	return kv.conn.Close()
}

// Get returns the value for key, with ok=false when the key is unset.
func (kv *KV) Get(namespace, key string) (string, bool, error) {
	var value string
	err := kv.conn.QueryRow(`
		SELECT value FROM kv WHERE namespace = ? AND key = ?
	`, namespace, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %s/%s: %w", namespace, key, err)
	}
	return value, true, nil
}

// Set writes a single key.
func (kv *KV) Set(namespace, key, value string) error {
	_, err := kv.conn.Exec(`
		INSERT INTO kv (namespace, key, value, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(namespace, key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`, namespace, key, value)
	if err != nil {
		return fmt.Errorf("write %s/%s: %w", namespace, key, err)
	}
	return nil
}

// SetMany writes all pairs in one transaction, so readers never observe a
// partially updated namespace.
func (kv *KV) SetMany(namespace string, values map[string]string) error {
	tx, err := kv.conn.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for key, value := range values {
		_, err := tx.Exec(`
			INSERT INTO kv (namespace, key, value, updated_at)
			VALUES (?, ?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(namespace, key) DO UPDATE SET
				value = excluded.value,
				updated_at = CURRENT_TIMESTAMP
		`, namespace, key, value)
		if err != nil {
			return fmt.Errorf("write %s/%s: %w", namespace, key, err)
		}
	}
	return tx.Commit()
}

// ClearNamespace removes every key in the namespace in one statement.
func (kv *KV) ClearNamespace(namespace string) error {
	_, err := kv.conn.Exec(`DELETE FROM kv WHERE namespace = ?`, namespace)
	if err != nil {
		return fmt.Errorf("clear %s: %w", namespace, err)
	}
	return nil
}
