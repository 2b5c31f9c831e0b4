package mqtt

// Topic scheme. One controller, one unit, so the hierarchy is flat:
//
//	aircon/state          retained device state (JSON)
//	aircon/command        inbound command payloads
//	aircon/system/status  online/offline presence, retained, also the LWT
const (
	// TopicState carries the retained device state.
	TopicState = "aircon/state"

	// TopicCommand receives command payloads from clients.
	TopicCommand = "aircon/command"

	// TopicSystemStatus carries controller presence. The broker
	// publishes the Last Will here on an unclean disconnect.
	TopicSystemStatus = "aircon/system/status"
)
