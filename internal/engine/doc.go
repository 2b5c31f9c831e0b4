// Package engine owns the air conditioner state and turns client
// requests into infrared transmissions.
//
// A single goroutine running Engine.Run owns all mutable state, which
// removes locking from the control path entirely. Transports feed it
// through two narrow entry points: Submit queues a command payload and
// NotifyConnect asks for a state rebroadcast. Everything else, the
// periodic sensor refresh included, happens on the loop's own clock.
//
// A command cycle is always the same three steps in the same order:
// transmit the frame, broadcast the resulting state to every client,
// and flush persisted preferences if any changed. Commands are applied
// field by field in a fixed order, so a payload combining quiet and
// powerful mode resolves deterministically; the two flags are mutually
// exclusive and enabling one clears the other.
//
// On startup, Restore overlays the persisted preferences onto the
// default state and replays the whole state into the remote encoder
// without transmitting, so the first real command sends a frame
// consistent with what clients have been shown.
package engine
