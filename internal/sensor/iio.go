package sensor

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Plausible ranges for a room sensor. Values outside these are treated
// as wiring or driver faults rather than weather.
const (
	minTemperatureC = -40.0
	maxTemperatureC = 85.0
	minHumidityPct  = 0.0
	maxHumidityPct  = 100.0
)

// IIOReader samples temperature and humidity from Linux Industrial I/O
// sysfs attributes. Drivers for sensors like the HTU21 or SHT3x expose
// readings as integer milli-units, one value per file:
//
//	/sys/bus/iio/devices/iio:device0/in_temp_input     (milli-degrees C)
//	/sys/bus/iio/devices/iio:device0/in_humidityrelative_input (milli-percent)
//
// Each Read opens the files fresh so a re-probed driver is picked up
// without restarting the process.
type IIOReader struct {
	temperaturePath string
	humidityPath    string
}

// NewIIOReader creates a reader over the given sysfs attribute paths.
//
// Parameters:
//   - temperaturePath: Path to the temperature input attribute
//   - humidityPath: Path to the relative humidity input attribute
//
// Returns:
//   - *IIOReader: Configured reader
func NewIIOReader(temperaturePath, humidityPath string) *IIOReader {
	return &IIOReader{
		temperaturePath: temperaturePath,
		humidityPath:    humidityPath,
	}
}

// Read samples both attributes and returns them in engineering units.
func (r *IIOReader) Read() (Reading, error) {
	temp, err := readMilliUnits(r.temperaturePath)
	if err != nil {
		return Reading{}, fmt.Errorf("%w: temperature: %v", ErrReadFailed, err)
	}
	hum, err := readMilliUnits(r.humidityPath)
	if err != nil {
		return Reading{}, fmt.Errorf("%w: humidity: %v", ErrReadFailed, err)
	}

	if temp < minTemperatureC || temp > maxTemperatureC {
		return Reading{}, fmt.Errorf("%w: temperature %.1f out of range", ErrInvalidReading, temp)
	}
	if hum < minHumidityPct || hum > maxHumidityPct {
		return Reading{}, fmt.Errorf("%w: humidity %.1f out of range", ErrInvalidReading, hum)
	}

	return Reading{Temperature: temp, Humidity: hum}, nil
}

// readMilliUnits reads a sysfs attribute holding a single integer in
// milli-units and converts it to the base unit.
func readMilliUnits(path string) (float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	value, err := strconv.ParseInt(strings.TrimSpace(string(raw)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", path, err)
	}

	return float64(value) / 1000.0, nil
}
