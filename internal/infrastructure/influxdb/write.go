package influxdb

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// WriteDeviceMetric records a single device measurement.
//
// This is what the engine calls for each sensor refresh. The write is
// non-blocking; data is batched and sent asynchronously.
//
// Parameters:
//   - deviceID: Identifier for the controller (tag, low cardinality)
//   - measurement: The metric name (e.g. "temperature_c", "humidity_pct")
//   - value: The numeric value to record
//
// Example:
//
//	client.WriteDeviceMetric("aircon-bedroom", "temperature_c", 21.5)
func (c *Client) WriteDeviceMetric(deviceID string, measurement string, value float64) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"device_metrics",
		map[string]string{
			"device_id":   deviceID,
			"measurement": measurement,
		},
		map[string]interface{}{
			"value": value,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}

// WritePoint writes a custom point with full control over tags and fields.
//
// Use this for measurements that don't fit WriteDeviceMetric, such as
// transmission counters or command latencies.
func (c *Client) WritePoint(measurement string, tags map[string]string, fields map[string]interface{}) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(measurement, tags, fields, time.Now())
	c.writeAPI.WritePoint(point)
}
