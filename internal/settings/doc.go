// Package settings persists the small set of controller preferences that
// must survive a restart.
//
// The store is a fixed map of byte cells addressed by number. The
// addresses preserve the EEPROM layout of the hardware the controller
// grew out of, so an image migrated from the old firmware keeps its
// settings without a conversion step. Address 210 is a reserved slot
// from that layout and is never written.
//
// Writes are buffered: Set stages a value in memory and Flush commits
// everything staged in one transaction. The engine flushes once per
// command cycle, and only when something actually changed, which keeps
// write amplification on flash-backed filesystems low.
//
// The SQLite-backed implementation shares the process database:
//
//	db, err := database.Open(cfg.Database)
//	store, err := settings.NewSQLiteStore(ctx, db)
//	defer store.Close()
//
//	store.Set(settings.FieldQuietMode, settings.EncodeBool(true))
//	store.Flush()
package settings
