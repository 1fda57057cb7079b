package device

import (
	"fmt"
	"iter"
)

// Logger defines the logging interface used by the Registry.
// This allows different logging implementations to be used.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Registry is the ordered, name-indexed collection of all devices in a
// session. Insertion order is preserved for listing.
//
// Names are unique: Add rejects a second device with an existing name, so
// FindByName never has to pick between duplicates.
type Registry struct {
	devices []Device
	logger  Logger
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{logger: noopLogger{}}
}

// SetLogger sets the logger for the registry.
func (r *Registry) SetLogger(logger Logger) {
	r.logger = logger
}

// Add appends a device to the registry.
//
// Returns:
//   - ErrInvalidName if the device name is empty or too long
//   - ErrDeviceExists if a device with the same name is already registered
func (r *Registry) Add(d Device) error {
	if err := ValidateName(d.Name()); err != nil {
		return err
	}
	if r.index(d.Name()) >= 0 {
		return fmt.Errorf("%w: %s", ErrDeviceExists, d.Name())
	}

	r.devices = append(r.devices, d)
	r.logger.Info("device added", "name", d.Name(), "kind", d.Kind())
	return nil
}

// FindByName returns the device with exactly this name. Matching is
// case-sensitive and byte-for-byte.
// Returns an error wrapping ErrDeviceNotFound if there is no match.
func (r *Registry) FindByName(name string) (Device, error) {
	i := r.index(name)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrDeviceNotFound, name)
	}
	return r.devices[i], nil
}

// Names returns the device names in insertion order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.devices))
	for _, d := range r.devices {
		names = append(names, d.Name())
	}
	return names
}

// All returns an iterator over the devices in insertion order.
// The sequence can be ranged over any number of times.
func (r *Registry) All() iter.Seq[Device] {
	return func(yield func(Device) bool) {
		for _, d := range r.devices {
			if !yield(d) {
				return
			}
		}
	}
}

// Len returns the number of registered devices.
func (r *Registry) Len() int {
	return len(r.devices)
}

// index returns the position of the named device, or -1.
func (r *Registry) index(name string) int {
	for i, d := range r.devices {
		if d.Name() == name {
			return i
		}
	}
	return -1
}
