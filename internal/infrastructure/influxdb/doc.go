// Package influxdb records environment telemetry.
//
// The controller samples temperature and humidity every refresh cycle;
// this package ships those samples to InfluxDB v2 with batched,
// non-blocking writes, so graphing a week of room temperature costs
// the control loop nothing.
//
// Telemetry is optional. When disabled in config, Connect returns
// ErrDisabled and the engine runs with a no-op telemetry sink instead.
package influxdb
