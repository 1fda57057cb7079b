package device

import "fmt"

// Kind identifies one of the fixed device variants.
type Kind string

// Supported device kinds.
const (
	KindLight          Kind = "light"
	KindThermostat     Kind = "thermostat"
	KindSecurityCamera Kind = "security_camera"
)

// AllKinds returns all supported device kinds.
func AllKinds() []Kind {
	return []Kind{
		KindLight,
		KindThermostat,
		KindSecurityCamera,
	}
}

// Device is the capability surface shared by all device kinds.
//
// The set of implementations is closed: only this package can provide one.
type Device interface {
	// Name returns the device's registry name. It never changes.
	Name() string

	// Kind returns the device variant.
	Kind() Kind

	// IsOn reports the on/off state.
	IsOn() bool

	// TurnOn switches the device on. It always succeeds.
	TurnOn()

	// TurnOff switches the device off. It always succeeds.
	TurnOff()

	// Status returns a human-readable summary of the device state.
	Status() string

	// AdjustSetting sets the kind's numeric setting.
	//
	// Returns:
	//   - ErrOutOfRange if value is outside the kind's bounds
	//   - ErrUnsupported if the kind has no setting
	//   - *Warning if the request was ignored without being an error
	AdjustSetting(value int) error

	// Snapshot returns a copy of the current state.
	Snapshot() Snapshot

	sealed()
}

// State is a flat map view of device state, suitable for JSON encoding.
type State map[string]any

// Snapshot is an immutable copy of a device's state at one point in time.
type Snapshot struct {
	Name string
	Kind Kind
	On   bool

	// Setting is nil for kinds without an adjustable setting.
	Setting *int

	// SettingName names the setting (brightness, temperature) when present.
	SettingName string
}

// State returns the snapshot as a State map.
func (s Snapshot) State() State {
	st := State{
		"name": s.Name,
		"kind": string(s.Kind),
		"on":   s.On,
	}
	if s.Setting != nil {
		st[s.SettingName] = *s.Setting
	}
	return st
}

// base holds the identity and on/off state common to every kind.
type base struct {
	name string
	on   bool
}

func (b *base) Name() string { return b.name }
func (b *base) IsOn() bool   { return b.on }
func (b *base) sealed()      {}

// status renders the "<name> is on|off" prefix shared by all kinds.
func (b *base) status() string {
	if b.on {
		return b.name + " is on"
	}
	return b.name + " is off"
}

// New creates a device of the given kind.
//
// Returns:
//   - Device: a new device in the off state
//   - error: ErrInvalidKind if the kind is not recognised
func New(kind Kind, name string) (Device, error) {
	switch kind {
	case KindLight:
		return NewLight(name), nil
	case KindThermostat:
		return NewThermostat(name), nil
	case KindSecurityCamera:
		return NewSecurityCamera(name), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
}
