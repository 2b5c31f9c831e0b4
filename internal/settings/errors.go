package settings

import "errors"

// Domain errors for the settings package.
//
// These errors can be checked using errors.Is():
//
//	if errors.Is(err, settings.ErrUnknownField) {
//	    // programming error: field not in the schema
//	}
var (
	// ErrUnknownField is returned when a field is not part of the schema.
	ErrUnknownField = errors.New("settings: unknown field")

	// ErrSchemaVersion is returned when the store was written by a newer
	// schema than this binary understands.
	ErrSchemaVersion = errors.New("settings: unsupported schema version")

	// ErrClosed is returned when operating on a closed store.
	ErrClosed = errors.New("settings: store closed")
)
