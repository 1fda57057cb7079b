package telemetry

import (
	"context"

	"github.com/nerrad567/gray-logic-sim/internal/device"
)

// DeviceStateWriter is the part of influxdb.Client used here.
type DeviceStateWriter interface {
	WriteDeviceState(deviceID, kind string, fields map[string]any)
}

// InfluxPublisher records each snapshot as a device_metrics point.
type InfluxPublisher struct {
	writer DeviceStateWriter
}

// NewInfluxPublisher wraps an InfluxDB client.
func NewInfluxPublisher(w DeviceStateWriter) *InfluxPublisher {
	return &InfluxPublisher{writer: w}
}

// Publish queues the point. Write failures surface asynchronously through
// the client's error callback, so only cancellation is reported here.
func (p *InfluxPublisher) Publish(ctx context.Context, snap device.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fields := map[string]any{"on": snap.On}
	if snap.Setting != nil {
		fields[snap.SettingName] = *snap.Setting
	}

	p.writer.WriteDeviceState(device.Slug(snap.Name), string(snap.Kind), fields)
	return nil
}
