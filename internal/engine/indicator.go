package engine

import "os"

// Indicator signals transmission activity to a human, typically an LED
// next to the IR emitter. Implementations must tolerate being called
// even when no hardware is present.
type Indicator interface {
	// TransmitStart is called immediately before a frame goes out.
	TransmitStart()

	// TransmitEnd is called once the transmission attempt finished,
	// successful or not.
	TransmitEnd()
}

// NopIndicator is an Indicator that does nothing. Used when no LED is
// configured.
type NopIndicator struct{}

func (NopIndicator) TransmitStart() {}
func (NopIndicator) TransmitEnd()   {}

// LEDIndicator drives a sysfs LED brightness attribute, e.g.
// /sys/class/leds/aircon:green:tx/brightness. Write errors are ignored;
// a broken status LED must never affect transmission.
type LEDIndicator struct {
	path string
}

// NewLEDIndicator creates an indicator over a sysfs brightness path.
func NewLEDIndicator(path string) *LEDIndicator {
	return &LEDIndicator{path: path}
}

func (l *LEDIndicator) TransmitStart() { l.write("1") }
func (l *LEDIndicator) TransmitEnd()   { l.write("0") }

func (l *LEDIndicator) write(value string) {
	_ = os.WriteFile(l.path, []byte(value), 0644) //nolint:errcheck,gosec // Best effort status LED
}
