// Package sensor reads room temperature and humidity.
//
// The production reader samples Linux Industrial I/O sysfs attributes,
// which present readings as integer milli-units. Anything implementing
// the Reader interface can stand in for it, and ReaderFunc adapts a
// plain function for tests:
//
//	r := sensor.ReaderFunc(func() (sensor.Reading, error) {
//	    return sensor.Reading{Temperature: 21.5, Humidity: 48.0}, nil
//	})
package sensor
