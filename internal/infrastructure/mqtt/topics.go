package mqtt

import "fmt"

// TopicPrefix is the root of every topic the simulator publishes.
const TopicPrefix = "graylogic/sim"

// Topics builds simulator topic names.
//
//	mqtt.Topics{}.DeviceState("main-thermostat")
//	// graylogic/sim/device/main-thermostat/state
type Topics struct{}

// DeviceState is the retained state topic for one device.
func (Topics) DeviceState(slug string) string {
	return fmt.Sprintf("%s/device/%s/state", TopicPrefix, slug)
}

// Status carries the simulator's online/offline status and Last Will.
func (Topics) Status() string {
	return TopicPrefix + "/status"
}

// AllDeviceStates matches every device state topic.
func (Topics) AllDeviceStates() string {
	return TopicPrefix + "/device/+/state"
}
