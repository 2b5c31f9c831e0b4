package remote

import "errors"

// Domain errors for the remote package.
//
// These errors can be checked using errors.Is():
//
//	if errors.Is(err, remote.ErrUnknownVendor) {
//	    // reject the configured vendor
//	}
var (
	// ErrUnknownVendor is returned when the configured vendor is not one
	// of the supported protocol variants.
	ErrUnknownVendor = errors.New("remote: unknown vendor")

	// ErrTransmitFailed is returned when the transmitter cannot emit a frame.
	ErrTransmitFailed = errors.New("remote: transmit failed")
)
