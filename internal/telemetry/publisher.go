package telemetry

import (
	"context"
	"errors"

	"github.com/nerrad567/gray-logic-sim/internal/device"
)

// Publisher sends a device snapshot somewhere.
type Publisher interface {
	Publish(ctx context.Context, snap device.Snapshot) error
}

// Fanout publishes to every publisher in order.
type Fanout []Publisher

// Publish calls every publisher even when an earlier one fails, and
// returns the joined failures.
func (f Fanout) Publish(ctx context.Context, snap device.Snapshot) error {
	var errs []error
	for _, p := range f {
		if err := p.Publish(ctx, snap); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
