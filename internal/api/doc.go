// Package api is the controller's network face: a small HTTP surface
// plus the WebSocket channel that clients live on.
//
// HTTP endpoints:
//
//	GET /healthz   liveness probe
//	GET /state     last broadcast device state
//	GET /ws        WebSocket upgrade
//
// The WebSocket protocol is deliberately plain. Clients receive the
// full state document on connect and after every change; anything a
// client sends is treated as a command payload and handed to the
// engine. There is no envelope, no message types, no subscription
// negotiation. A wall panel written against the firmware this grew out
// of works unchanged.
package api
