package device

import "strconv"

// Brightness bounds for a Light, in percent.
const (
	MinBrightness = 0
	MaxBrightness = 100
)

// Light is a dimmable light. Brightness follows the on/off state: full on
// when switched on, zero when switched off.
type Light struct {
	base
	brightness int
}

// NewLight creates a light that is off with zero brightness.
func NewLight(name string) *Light {
	return &Light{base: base{name: name}}
}

// Kind implements Device.
func (l *Light) Kind() Kind { return KindLight }

// Brightness returns the current brightness in percent.
func (l *Light) Brightness() int { return l.brightness }

// TurnOn implements Device. Brightness is reset to 100 even if already on.
func (l *Light) TurnOn() {
	l.on = true
	l.brightness = MaxBrightness
}

// TurnOff implements Device. Brightness is reset to 0.
func (l *Light) TurnOff() {
	l.on = false
	l.brightness = MinBrightness
}

// AdjustSetting sets the brightness. The light must be on; otherwise the
// request is ignored with a *Warning.
func (l *Light) AdjustSetting(value int) error {
	if !l.on {
		return &Warning{
			Device:  l.name,
			Message: "Cannot adjust brightness while the light is off.",
		}
	}
	if value < MinBrightness || value > MaxBrightness {
		return rangeError("brightness", MinBrightness, MaxBrightness, "")
	}
	l.brightness = value
	return nil
}

// Status implements Device.
func (l *Light) Status() string {
	return l.status() + " (Brightness: " + strconv.Itoa(l.brightness) + "%)"
}

// Snapshot implements Device.
func (l *Light) Snapshot() Snapshot {
	b := l.brightness
	return Snapshot{
		Name:        l.name,
		Kind:        KindLight,
		On:          l.on,
		Setting:     &b,
		SettingName: "brightness",
	}
}
