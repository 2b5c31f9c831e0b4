package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/nerrad567/aircon-core/internal/infrastructure/database"
)

// opTimeout bounds individual store queries. The store sits on the
// single-threaded control path, so nothing should ever wait long.
const opTimeout = 5 * time.Second

// SQLiteStore is the SQLite-backed settings store.
//
// The schema is a single table of (address, value) byte cells plus a
// metadata row recording the schema version:
//
//	CREATE TABLE settings (address INTEGER PRIMARY KEY, value INTEGER NOT NULL);
//	CREATE TABLE settings_meta (schema_version INTEGER NOT NULL);
//
// Set buffers writes in memory; Flush commits the pending cells in one
// transaction. Thread safety is not provided: the store is owned by the
// engine's single control goroutine.
type SQLiteStore struct {
	db      *database.DB
	pending map[int]byte
	closed  bool
}

// NewSQLiteStore creates the settings store on an open database,
// initialising the schema on first use and verifying the version.
//
// Parameters:
//   - ctx: Context for schema initialisation
//   - db: Open database connection (owned by the caller)
//
// Returns:
//   - *SQLiteStore: Ready store
//   - error: If schema creation fails or the version is unsupported
func NewSQLiteStore(ctx context.Context, db *database.DB) (*SQLiteStore, error) {
	s := &SQLiteStore{
		db:      db,
		pending: make(map[int]byte),
	}

	if err := s.initSchema(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

// initSchema creates the tables on first use and checks the recorded
// schema version against SchemaVersion.
func (s *SQLiteStore) initSchema(ctx context.Context) error {
	const create = `
CREATE TABLE IF NOT EXISTS settings (
	address INTEGER PRIMARY KEY,
	value   INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS settings_meta (
	schema_version INTEGER NOT NULL
);`

	if _, err := s.db.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("creating settings schema: %w", err)
	}

	var version int
	err := s.db.QueryRowContext(ctx, "SELECT schema_version FROM settings_meta LIMIT 1").Scan(&version)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// Fresh store: record the current version.
		if _, err := s.db.ExecContext(ctx, "INSERT INTO settings_meta (schema_version) VALUES (?)", SchemaVersion); err != nil {
			return fmt.Errorf("recording schema version: %w", err)
		}
	case err != nil:
		return fmt.Errorf("reading schema version: %w", err)
	case version > SchemaVersion:
		return fmt.Errorf("%w: store has version %d, binary supports %d", ErrSchemaVersion, version, SchemaVersion)
	}

	return nil
}

// Get returns the stored byte for a field, observing buffered writes
// before committed ones. Fields never written return 0.
func (s *SQLiteStore) Get(field Field) (byte, error) {
	if s.closed {
		return 0, ErrClosed
	}

	addr, ok := Address(field)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	if v, pending := s.pending[addr]; pending {
		return v, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var value int
	err := s.db.QueryRowContext(ctx, "SELECT value FROM settings WHERE address = ?", addr).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading setting %q: %w", field, err)
	}

	return byte(value), nil //nolint:gosec // values are single bytes by construction
}

// Set buffers a byte for a field. Durable after the next Flush.
func (s *SQLiteStore) Set(field Field, value byte) error {
	if s.closed {
		return ErrClosed
	}

	addr, ok := Address(field)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	s.pending[addr] = value
	return nil
}

// Flush commits all buffered writes in a single transaction and clears
// the buffer on success. A crash between Set and Flush loses the pending
// writes; the commit boundary is all-or-nothing.
func (s *SQLiteStore) Flush() error {
	if s.closed {
		return ErrClosed
	}

	if len(s.pending) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("flushing settings: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op if committed

	for addr, value := range s.pending {
		const upsert = `
INSERT INTO settings (address, value) VALUES (?, ?)
ON CONFLICT(address) DO UPDATE SET value = excluded.value`
		if _, err := tx.ExecContext(ctx, upsert, addr, value); err != nil {
			return fmt.Errorf("flushing setting at address %d: %w", addr, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing settings flush: %w", err)
	}

	s.pending = make(map[int]byte)
	return nil
}

// Close marks the store closed. The underlying database is owned by the
// caller and is not closed here.
func (s *SQLiteStore) Close() error {
	s.closed = true
	return nil
}
