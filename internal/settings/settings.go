package settings

// Field identifies a persisted setting.
type Field string

// Persisted fields.
const (
	// FieldFanSpeed is a reserved slot carried over from earlier firmware
	// revisions. It is never written; the address stays allocated so a
	// store created by an old image remains readable.
	FieldFanSpeed Field = "fan_speed"

	FieldVerticalSwing   Field = "vertical_swing"
	FieldHorizontalSwing Field = "horizontal_swing"
	FieldQuietMode       Field = "quiet_mode"
	FieldPowerfulMode    Field = "powerful_mode"
)

// SchemaVersion is the current settings record version. Stores written by
// a newer schema are rejected at open time.
const SchemaVersion = 1

// fieldAddresses maps each field to its fixed store address. The numbers
// preserve the EEPROM layout of the original firmware so a migrated
// image keeps its settings.
var fieldAddresses = map[Field]int{
	FieldFanSpeed:        210,
	FieldVerticalSwing:   230,
	FieldHorizontalSwing: 231,
	FieldQuietMode:       232,
	FieldPowerfulMode:    233,
}

// Address returns the fixed store address for a field.
// Unknown fields return (0, false).
func Address(f Field) (int, bool) {
	addr, ok := fieldAddresses[f]
	return addr, ok
}

// Fields returns all known fields, reserved slots included.
func Fields() []Field {
	return []Field{
		FieldFanSpeed,
		FieldVerticalSwing,
		FieldHorizontalSwing,
		FieldQuietMode,
		FieldPowerfulMode,
	}
}

// Store is the non-volatile settings store.
//
// Set buffers the value in memory; nothing reaches durable storage until
// Flush commits all pending writes in a single transaction. Get observes
// buffered values before committed ones, so the store always reflects the
// latest Set. This mirrors the write/commit split of EEPROM-style storage
// and keeps flash wear down to one commit per command cycle.
type Store interface {
	// Get returns the stored byte for a field. Fields never written
	// return 0.
	Get(field Field) (byte, error)

	// Set buffers a byte for a field. The write becomes durable on the
	// next Flush.
	Set(field Field, value byte) error

	// Flush commits all buffered writes. A store with no pending writes
	// flushes as a no-op.
	Flush() error

	// Close releases the store.
	Close() error
}

// EncodeBool packs a bool into the store's 0/1 byte representation.
func EncodeBool(v bool) byte {
	if v {
		return 1
	}
	return 0
}

// DecodeBool unpacks the store's byte representation; exactly 1 is true.
func DecodeBool(b byte) bool {
	return b == 1
}
