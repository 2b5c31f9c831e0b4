package settings

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/nerrad567/aircon-core/internal/infrastructure/database"
)

func testStore(t *testing.T) *SQLiteStore {
	t.Helper()

	db, err := database.Open(database.Config{
		Path:        filepath.Join(t.TempDir(), "settings.db"),
		WALMode:     true,
		BusyTimeout: 5,
	})
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	store, err := NewSQLiteStore(context.Background(), db)
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	return store
}

func TestStore_UnwrittenFieldReadsZero(t *testing.T) {
	store := testStore(t)

	for _, field := range Fields() {
		got, err := store.Get(field)
		if err != nil {
			t.Fatalf("Get(%q) error = %v", field, err)
		}
		if got != 0 {
			t.Errorf("Get(%q) = %d on a fresh store, want 0", field, got)
		}
	}
}

func TestStore_SetVisibleBeforeFlush(t *testing.T) {
	store := testStore(t)

	if err := store.Set(FieldQuietMode, 1); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := store.Get(FieldQuietMode)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != 1 {
		t.Errorf("Get() = %d before flush, want buffered value 1", got)
	}
}

func TestStore_FlushPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.db")

	db, err := database.Open(database.Config{Path: path, WALMode: true, BusyTimeout: 5})
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}

	store, err := NewSQLiteStore(context.Background(), db)
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}

	if err := store.Set(FieldVerticalSwing, 1); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Set(FieldPowerfulMode, 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	store.Close()
	db.Close()

	// Reopen and verify the committed values survived.
	db2, err := database.Open(database.Config{Path: path, WALMode: true, BusyTimeout: 5})
	if err != nil {
		t.Fatalf("reopening database: %v", err)
	}
	defer db2.Close()

	store2, err := NewSQLiteStore(context.Background(), db2)
	if err != nil {
		t.Fatalf("reopening store: %v", err)
	}
	defer store2.Close()

	got, err := store2.Get(FieldVerticalSwing)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != 1 {
		t.Errorf("FieldVerticalSwing = %d after reopen, want 1", got)
	}
}

func TestStore_FlushWithNothingPendingIsNoOp(t *testing.T) {
	store := testStore(t)

	if err := store.Flush(); err != nil {
		t.Errorf("Flush() on a clean store error = %v", err)
	}
}

func TestStore_UnknownField(t *testing.T) {
	store := testStore(t)

	if _, err := store.Get(Field("bogus")); !errors.Is(err, ErrUnknownField) {
		t.Errorf("Get(bogus) error = %v, want ErrUnknownField", err)
	}
	if err := store.Set(Field("bogus"), 1); !errors.Is(err, ErrUnknownField) {
		t.Errorf("Set(bogus) error = %v, want ErrUnknownField", err)
	}
}

func TestStore_ClosedStoreRejectsOperations(t *testing.T) {
	store := testStore(t)
	store.Close()

	if _, err := store.Get(FieldQuietMode); !errors.Is(err, ErrClosed) {
		t.Errorf("Get() after close error = %v, want ErrClosed", err)
	}
	if err := store.Set(FieldQuietMode, 1); !errors.Is(err, ErrClosed) {
		t.Errorf("Set() after close error = %v, want ErrClosed", err)
	}
	if err := store.Flush(); !errors.Is(err, ErrClosed) {
		t.Errorf("Flush() after close error = %v, want ErrClosed", err)
	}
}

func TestStore_RejectsNewerSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.db")

	db, err := database.Open(database.Config{Path: path, WALMode: true, BusyTimeout: 5})
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	store, err := NewSQLiteStore(context.Background(), db)
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	store.Close()

	// Simulate a store written by a future binary.
	if _, err := db.ExecContext(context.Background(),
		"UPDATE settings_meta SET schema_version = ?", SchemaVersion+1); err != nil {
		t.Fatalf("bumping schema version: %v", err)
	}

	if _, err := NewSQLiteStore(context.Background(), db); !errors.Is(err, ErrSchemaVersion) {
		t.Errorf("NewSQLiteStore() on newer schema error = %v, want ErrSchemaVersion", err)
	}
}

func TestEncodeDecodeBool(t *testing.T) {
	if EncodeBool(true) != 1 || EncodeBool(false) != 0 {
		t.Error("EncodeBool mapping is not 1/0")
	}
	if !DecodeBool(1) || DecodeBool(0) || DecodeBool(2) {
		t.Error("DecodeBool should be true for exactly 1")
	}
}

func TestAddress_PreservesLegacyLayout(t *testing.T) {
	tests := []struct {
		field Field
		want  int
	}{
		{FieldFanSpeed, 210},
		{FieldVerticalSwing, 230},
		{FieldHorizontalSwing, 231},
		{FieldQuietMode, 232},
		{FieldPowerfulMode, 233},
	}

	for _, tt := range tests {
		got, ok := Address(tt.field)
		if !ok || got != tt.want {
			t.Errorf("Address(%q) = (%d, %t), want (%d, true)", tt.field, got, ok, tt.want)
		}
	}

	if _, ok := Address(Field("bogus")); ok {
		t.Error("Address(bogus) should report not found")
	}
}
