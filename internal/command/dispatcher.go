package command

import (
	"context"
	"fmt"
	"strconv"

	"github.com/nerrad567/gray-logic-sim/internal/device"
)

// ErrorDevice is the device name used for error entries in the log.
const ErrorDevice = "ERROR"

// Recorder receives the command log. Calls are synchronous and
// best-effort: a Recorder must not fail the command it is recording.
type Recorder interface {
	// RecordCommand records a line exactly as entered, before validation.
	RecordCommand(raw string)

	// RecordStateChange records the result of a command against a device.
	RecordStateChange(deviceName, description string)
}

// Publisher receives a device snapshot after every successful transition.
type Publisher interface {
	Publish(ctx context.Context, snap device.Snapshot) error
}

// Logger defines the logging interface used by the Dispatcher.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Warn(string, ...any)  {}

type noopRecorder struct{}

func (noopRecorder) RecordCommand(string)             {}
func (noopRecorder) RecordStateChange(string, string) {}

// Outcome is the uniform result of one command.
type Outcome struct {
	Command Command

	// Device is the resolved device name, empty if resolution failed.
	Device string

	// Status is the device status line for a status command.
	Status string

	// Change is the state-change description written to the Recorder.
	Change string

	// Warning is set when the device ignored the request without failing.
	Warning string

	// Err is nil on success.
	Err error

	// Kind classifies Err; KindNone on success.
	Kind ErrorKind
}

// OK reports whether the command succeeded.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Dispatcher resolves commands against a Registry and applies them.
type Dispatcher struct {
	registry  *device.Registry
	recorder  Recorder
	publisher Publisher
	logger    Logger
}

// NewDispatcher creates a dispatcher. A nil recorder discards the log.
func NewDispatcher(registry *device.Registry, recorder Recorder) *Dispatcher {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &Dispatcher{
		registry: registry,
		recorder: recorder,
		logger:   noopLogger{},
	}
}

// SetPublisher sets where snapshots go after successful transitions.
func (d *Dispatcher) SetPublisher(p Publisher) {
	d.publisher = p
}

// SetLogger sets the logger for the dispatcher.
func (d *Dispatcher) SetLogger(logger Logger) {
	d.logger = logger
}

// Execute records, parses, and dispatches one line of input.
func (d *Dispatcher) Execute(ctx context.Context, line string) Outcome {
	d.recorder.RecordCommand(line)

	cmd, err := Parse(line)
	if err != nil {
		return d.fail(Outcome{Command: cmd}, err)
	}
	return d.dispatch(ctx, cmd)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmd Command) Outcome {
	out := Outcome{Command: cmd}

	dev, err := d.registry.FindByName(cmd.Target)
	if err != nil {
		return d.fail(out, err)
	}
	out.Device = dev.Name()

	switch {
	case cmd.Action == ActionOn:
		dev.TurnOn()
		out.Change = "Turned ON"

	case cmd.Action == ActionOff:
		dev.TurnOff()
		out.Change = "Turned OFF"

	case cmd.Action == ActionStatus:
		out.Status = dev.Status()
		out.Change = "Status checked: " + out.Status
		d.recorder.RecordStateChange(out.Device, out.Change)
		return out

	case cmd.Action == ActionSet && cmd.HasValue:
		if err := dev.AdjustSetting(cmd.Value); err != nil {
			if w, ok := device.AsWarning(err); ok {
				out.Warning = w.Message
				out.Change = "Setting ignored: " + w.Message
				d.recorder.RecordStateChange(out.Device, out.Change)
				return out
			}
			return d.fail(out, err)
		}
		out.Change = "Setting adjusted to " + strconv.Itoa(cmd.Value)

	default:
		return d.fail(out, fmt.Errorf("%w: %s", ErrInvalidAction, cmd.Action))
	}

	d.recorder.RecordStateChange(out.Device, out.Change)
	d.publish(ctx, dev)
	return out
}

// fail converts err into a failed Outcome and mirrors it to the Recorder.
func (d *Dispatcher) fail(out Outcome, err error) Outcome {
	out.Err = err
	out.Kind = Classify(err)
	d.recorder.RecordStateChange(ErrorDevice, err.Error())
	d.logger.Debug("command failed",
		"command", out.Command.Raw,
		"kind", out.Kind.String(),
		"error", err,
	)
	return out
}

func (d *Dispatcher) publish(ctx context.Context, dev device.Device) {
	if d.publisher == nil {
		return
	}
	if err := d.publisher.Publish(ctx, dev.Snapshot()); err != nil {
		d.logger.Warn("publishing device state failed",
			"device", dev.Name(),
			"error", err,
		)
	}
}
