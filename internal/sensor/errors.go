package sensor

import "errors"

// Domain errors for the sensor package.
//
// These errors can be checked using errors.Is():
//
//	if errors.Is(err, sensor.ErrReadFailed) {
//	    // keep the previous reading
//	}
var (
	// ErrReadFailed is returned when the sensor could not be sampled.
	ErrReadFailed = errors.New("sensor: read failed")

	// ErrInvalidReading is returned when the sensor produced a value
	// outside its plausible range.
	ErrInvalidReading = errors.New("sensor: invalid reading")
)
