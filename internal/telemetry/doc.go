// Package telemetry publishes device snapshots to external systems after
// each successful state transition.
//
// Publishers:
//   - MQTTPublisher: retained JSON on graylogic/sim/device/{slug}/state
//   - InfluxPublisher: a device_metrics point with on/off and the setting
//   - Fanout: sends one snapshot to several publishers
//
// Publishing never changes device state and never fails a command; the
// dispatcher only logs publish errors.
package telemetry
