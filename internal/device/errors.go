package device

import (
	"errors"
	"fmt"
)

// Domain errors for the device package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, device.ErrDeviceNotFound) {
//	    // handle not found case
//	}
var (
	// ErrDeviceNotFound is returned when no registered device has the given name.
	ErrDeviceNotFound = errors.New("device not found")

	// ErrDeviceExists is returned when adding a device whose name is already registered.
	ErrDeviceExists = errors.New("device already exists")

	// ErrInvalidName is returned when a device name is empty or too long.
	ErrInvalidName = errors.New("invalid device name")

	// ErrInvalidKind is returned when a device kind is not recognised.
	ErrInvalidKind = errors.New("invalid device kind")

	// ErrOutOfRange is returned when a setting value is outside the kind's bounds.
	// The device state is left unchanged.
	ErrOutOfRange = errors.New("setting out of range")

	// ErrUnsupported is returned when a device kind has no adjustable setting.
	ErrUnsupported = errors.New("setting not supported")
)

// Warning is a non-fatal rejection of a request. The device state is left
// unchanged, but the caller should not treat it as a failure.
type Warning struct {
	Device  string
	Message string
}

// Error implements error.
func (w *Warning) Error() string {
	return w.Message
}

// AsWarning reports whether err is (or wraps) a *Warning.
func AsWarning(err error) (*Warning, bool) {
	var w *Warning
	if errors.As(err, &w) {
		return w, true
	}
	return nil, false
}

// rangeError builds an ErrOutOfRange error for a setting with inclusive bounds.
func rangeError(setting string, lo, hi int, unit string) error {
	return fmt.Errorf("%w: %s must be between %d and %d%s", ErrOutOfRange, setting, lo, hi, unit)
}
