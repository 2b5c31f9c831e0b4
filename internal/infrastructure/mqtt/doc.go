// Package mqtt is the controller's optional MQTT channel.
//
// When enabled, the controller publishes its state to aircon/state as a
// retained message, accepts command payloads on aircon/command and
// announces presence on aircon/system/status. The presence topic
// doubles as the Last Will, so subscribers can tell a crash from a
// graceful shutdown.
//
// The client reconnects on its own with exponential backoff and
// restores subscriptions when the broker comes back. Handlers run on
// the paho library's goroutines and should hand work off quickly,
// typically by submitting to the engine.
package mqtt
