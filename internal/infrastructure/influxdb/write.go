package influxdb

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// MeasurementDeviceState is the measurement written for each device transition.
const MeasurementDeviceState = "device_metrics"

// DeviceStatePoint builds a device_metrics point tagged by device and kind.
//
// fields typically holds "on" (bool) plus the device's setting, e.g.
// "brightness" or "temperature".
func DeviceStatePoint(deviceID, kind string, fields map[string]any, ts time.Time) *write.Point {
	return write.NewPoint(
		MeasurementDeviceState,
		map[string]string{
			"device_id": deviceID,
			"kind":      kind,
		},
		fields,
		ts,
	)
}

// WriteDeviceState queues a device_metrics point stamped now.
// It is a no-op when the client is not connected.
func (c *Client) WriteDeviceState(deviceID, kind string, fields map[string]any) {
	c.WritePoint(DeviceStatePoint(deviceID, kind, fields, time.Now()))
}

// WritePoint queues an arbitrary point.
func (c *Client) WritePoint(p *write.Point) {
	if !c.IsConnected() {
		return
	}
	c.writeAPI.WritePoint(p)
}
