// Package database provides the SQLite connection used by the settings store.
//
// The controller persists a handful of single-byte settings across restarts.
// SQLite is a deliberate choice over a raw byte file: it gives atomic commits
// (the store's flush boundary), WAL mode for wear-friendly writes on flash
// media, and room for the schema to grow a version at a time.
//
// Usage:
//
//	db, err := database.Open(database.Config{Path: "./data/aircon.db", WALMode: true, BusyTimeout: 5})
//	if err != nil { ... }
//	defer db.Close()
package database
