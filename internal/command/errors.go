package command

import (
	"errors"

	"github.com/nerrad567/gray-logic-sim/internal/device"
)

// Domain errors for the command package.
var (
	// ErrInvalidNumber is returned when a set value is not a non-negative
	// decimal integer.
	ErrInvalidNumber = errors.New("invalid numeric value")

	// ErrInvalidAction is returned for an unrecognised action, or a set
	// command without a usable value.
	ErrInvalidAction = errors.New("invalid action or missing setting for")
)

// ErrorKind classifies a failed command.
type ErrorKind int

// Error kinds, in the order a command can fail.
const (
	KindNone ErrorKind = iota
	KindParse
	KindNotFound
	KindInvalidAction
	KindRange
	KindUnsupported
	KindInternal
)

// String returns the kind's name.
func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindParse:
		return "parse"
	case KindNotFound:
		return "not_found"
	case KindInvalidAction:
		return "invalid_action"
	case KindRange:
		return "range"
	case KindUnsupported:
		return "unsupported"
	default:
		return "internal"
	}
}

// Classify maps an error onto its ErrorKind.
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrInvalidNumber):
		return KindParse
	case errors.Is(err, device.ErrDeviceNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidAction):
		return KindInvalidAction
	case errors.Is(err, device.ErrOutOfRange):
		return KindRange
	case errors.Is(err, device.ErrUnsupported):
		return KindUnsupported
	default:
		return KindInternal
	}
}
