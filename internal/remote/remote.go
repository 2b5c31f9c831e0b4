package remote

import (
	"strings"
)

// Vendor identifies an AC protocol variant.
type Vendor string

// Supported protocol variants. The set is closed: adding a vendor means
// adding an encoder implementation, not configuration.
const (
	VendorDaikin    Vendor = "daikin"
	VendorPanasonic Vendor = "panasonic"
	VendorHitachi   Vendor = "hitachi"
)

// Mode is an operating mode, stored and exchanged as lowercase text.
type Mode string

// Operating modes.
const (
	ModeOff  Mode = "off"
	ModeCool Mode = "cool"
	ModeHeat Mode = "heat"
	ModeFan  Mode = "fan"
	ModeAuto Mode = "auto"
	ModeDry  Mode = "dry"
)

// FanSpeed is a fan speed setting, stored and exchanged as lowercase text.
type FanSpeed string

// Fan speeds.
const (
	FanAuto FanSpeed = "auto"
	FanMin  FanSpeed = "min"
	FanMax  FanSpeed = "max"
)

// ParseMode converts case-insensitive text to a Mode.
// Unknown values return (ModeOff, false).
func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.ToLower(s)) {
	case ModeOff:
		return ModeOff, true
	case ModeCool:
		return ModeCool, true
	case ModeHeat:
		return ModeHeat, true
	case ModeFan:
		return ModeFan, true
	case ModeAuto:
		return ModeAuto, true
	case ModeDry:
		return ModeDry, true
	default:
		return ModeOff, false
	}
}

// ParseFanSpeed converts case-insensitive text to a FanSpeed.
// Unknown values return (FanAuto, false).
func ParseFanSpeed(s string) (FanSpeed, bool) {
	switch FanSpeed(strings.ToLower(s)) {
	case FanAuto:
		return FanAuto, true
	case FanMin:
		return FanMin, true
	case FanMax:
		return FanMax, true
	default:
		return FanAuto, false
	}
}

// Remote is a vendor-specific AC command encoder.
//
// Setters mutate the encoder's internal protocol state only; nothing is
// emitted until Send builds the vendor frame and hands it to the
// Transmitter. Every setter is safe to call redundantly - re-asserting the
// current value is how the controller primes the encoder after a restart.
type Remote interface {
	// Vendor returns the protocol variant this encoder implements.
	Vendor() Vendor

	// On and Off set the power bit.
	On()
	Off()

	// SetMode selects the operating mode. ModeOff is equivalent to Off.
	SetMode(mode Mode)

	// SetFan selects the fan speed.
	SetFan(speed FanSpeed)

	// SetTemp sets the target temperature in degrees Celsius. Values
	// outside the vendor's supported range are clamped; range
	// enforcement belongs to the encoder, not the caller.
	SetTemp(celsius int)

	// SetSwingVertical and SetSwingHorizontal toggle louvre swing.
	SetSwingVertical(on bool)
	SetSwingHorizontal(on bool)

	// SetQuiet and SetPowerful toggle the economy/boost modes. Vendors
	// without the feature treat these as no-ops.
	SetQuiet(on bool)
	SetPowerful(on bool)

	// Send encodes the current protocol state as a single frame and
	// emits it through the transmitter.
	Send() error

	// String returns a human-readable rendering of the protocol state
	// for debug logging.
	String() string
}

// New returns the encoder for the given vendor, emitting through tx.
//
// The choice is made once at startup and is immutable for the process
// lifetime; only the selected vendor's encoder is ever constructed.
//
// Parameters:
//   - vendor: Protocol variant from config (case-insensitive)
//   - tx: Transmitter the encoder emits frames through
//
// Returns:
//   - Remote: The vendor's encoder
//   - error: ErrUnknownVendor if the vendor is not supported
func New(vendor Vendor, tx Transmitter) (Remote, error) {
	switch Vendor(strings.ToLower(string(vendor))) {
	case VendorDaikin:
		return newDaikin(tx), nil
	case VendorPanasonic:
		return newPanasonic(tx), nil
	case VendorHitachi:
		return newHitachi(tx), nil
	default:
		return nil, ErrUnknownVendor
	}
}

// checksum returns the low byte of the sum of frame, the trailing byte
// shared by all three vendor protocols.
func checksum(frame []byte) byte {
	var sum byte
	for _, b := range frame {
		sum += b
	}
	return sum
}

// boolByte packs a bool into the 0/1 wire representation.
func boolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}
