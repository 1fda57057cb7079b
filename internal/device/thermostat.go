package device

import "strconv"

// Temperature bounds and default for a Thermostat, in degrees Celsius.
const (
	MinTemperature     = 0
	MaxTemperature     = 40
	DefaultTemperature = 20
)

// Thermostat holds a target temperature. Unlike a Light, the setting can be
// changed whether or not the thermostat is on, and switching does not touch it.
type Thermostat struct {
	base
	temperature int
}

// NewThermostat creates a thermostat that is off at the default temperature.
func NewThermostat(name string) *Thermostat {
	return &Thermostat{
		base:        base{name: name},
		temperature: DefaultTemperature,
	}
}

// Kind implements Device.
func (t *Thermostat) Kind() Kind { return KindThermostat }

// Temperature returns the target temperature in degrees Celsius.
func (t *Thermostat) Temperature() int { return t.temperature }

// TurnOn implements Device.
func (t *Thermostat) TurnOn() { t.on = true }

// TurnOff implements Device.
func (t *Thermostat) TurnOff() { t.on = false }

// AdjustSetting sets the target temperature.
func (t *Thermostat) AdjustSetting(value int) error {
	if value < MinTemperature || value > MaxTemperature {
		return rangeError("temperature", MinTemperature, MaxTemperature, " degrees Celsius")
	}
	t.temperature = value
	return nil
}

// Status implements Device.
func (t *Thermostat) Status() string {
	return t.status() + " (Temperature: " + strconv.Itoa(t.temperature) + "°C)"
}

// Snapshot implements Device.
func (t *Thermostat) Snapshot() Snapshot {
	temp := t.temperature
	return Snapshot{
		Name:        t.name,
		Kind:        KindThermostat,
		On:          t.on,
		Setting:     &temp,
		SettingName: "temperature",
	}
}
