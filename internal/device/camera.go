package device

import "fmt"

// SecurityCamera records while on. It has no adjustable setting.
type SecurityCamera struct {
	base
}

// NewSecurityCamera creates a camera that is off.
func NewSecurityCamera(name string) *SecurityCamera {
	return &SecurityCamera{base: base{name: name}}
}

// Kind implements Device.
func (c *SecurityCamera) Kind() Kind { return KindSecurityCamera }

// TurnOn implements Device.
func (c *SecurityCamera) TurnOn() { c.on = true }

// TurnOff implements Device.
func (c *SecurityCamera) TurnOff() { c.on = false }

// AdjustSetting always fails with ErrUnsupported.
func (c *SecurityCamera) AdjustSetting(int) error {
	return fmt.Errorf("%w: %s has no adjustable setting", ErrUnsupported, c.name)
}

// Status implements Device.
func (c *SecurityCamera) Status() string {
	if c.on {
		return c.status() + " (Recording)"
	}
	return c.status() + " (Not Recording)"
}

// Snapshot implements Device.
func (c *SecurityCamera) Snapshot() Snapshot {
	return Snapshot{
		Name: c.name,
		Kind: KindSecurityCamera,
		On:   c.on,
	}
}
