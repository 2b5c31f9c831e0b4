package sensor

// Reading is one environment sample.
type Reading struct {
	// Temperature in degrees Celsius.
	Temperature float64

	// Humidity in percent relative humidity.
	Humidity float64
}

// Reader produces environment readings.
//
// Read blocks for at most one sample and returns an error when the
// hardware cannot produce one. Callers decide what to do with a failed
// sample; the engine keeps the previous value.
type Reader interface {
	Read() (Reading, error)
}

// ReaderFunc adapts a function to the Reader interface.
type ReaderFunc func() (Reading, error)

// Read calls f.
func (f ReaderFunc) Read() (Reading, error) {
	return f()
}
