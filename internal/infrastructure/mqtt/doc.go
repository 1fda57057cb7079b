// Package mqtt publishes simulator device state to an MQTT broker.
//
// It wraps paho.mqtt.golang with connection management, a retained
// online/offline status with Last Will, and validated publishing. The
// simulator never subscribes; the broker is an output only.
//
// Topics:
//
//	graylogic/sim/status                 online/offline (retained, LWT)
//	graylogic/sim/device/{slug}/state    device snapshot JSON (retained)
//
// Usage:
//
//	client, err := mqtt.Connect(cfg.MQTT)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	err = client.PublishRetained(mqtt.Topics{}.DeviceState("lamp"), payload)
//
// Use TLS (broker.tls: true) whenever the broker is not on localhost.
package mqtt
