package remote

import (
	"fmt"
	"os"
)

// Transmitter emits an encoded protocol frame as a physical IR signal.
//
// Pulse timing and carrier modulation are the emitter driver's concern;
// encoders hand over protocol bytes only.
type Transmitter interface {
	Transmit(frame []byte) error
}

// DeviceTransmitter writes frames to an IR transmitter character device
// such as /dev/lirc0. The kernel driver performs the modulation.
type DeviceTransmitter struct {
	path string
}

// NewDeviceTransmitter returns a transmitter writing to the given device path.
// The device is opened per transmission; IR sends are infrequent enough that
// holding the device open would only block other users.
func NewDeviceTransmitter(path string) *DeviceTransmitter {
	return &DeviceTransmitter{path: path}
}

// Transmit writes the frame to the device in a single write call.
func (t *DeviceTransmitter) Transmit(frame []byte) error {
	f, err := os.OpenFile(t.path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("%w: opening %s: %w", ErrTransmitFailed, t.path, err)
	}
	defer f.Close() //nolint:errcheck // Write errors are what matter here

	if _, err := f.Write(frame); err != nil {
		return fmt.Errorf("%w: writing to %s: %w", ErrTransmitFailed, t.path, err)
	}
	return nil
}

// Path returns the transmitter device path.
func (t *DeviceTransmitter) Path() string {
	return t.path
}
