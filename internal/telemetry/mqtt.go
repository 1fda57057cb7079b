package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nerrad567/gray-logic-sim/internal/device"
	"github.com/nerrad567/gray-logic-sim/internal/infrastructure/mqtt"
)

// RetainedPublisher is the part of mqtt.Client used here.
type RetainedPublisher interface {
	PublishRetained(topic string, payload []byte) error
}

// MQTTPublisher publishes snapshots as retained JSON state messages.
type MQTTPublisher struct {
	client RetainedPublisher
	now    func() time.Time
}

// NewMQTTPublisher wraps an MQTT client.
func NewMQTTPublisher(client RetainedPublisher) *MQTTPublisher {
	return &MQTTPublisher{client: client, now: time.Now}
}

// Publish encodes snap and sends it to the device's state topic.
func (p *MQTTPublisher) Publish(ctx context.Context, snap device.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	state := snap.State()
	state["updated_at"] = p.now().UTC().Format(time.RFC3339)

	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding %s state: %w", snap.Name, err)
	}

	topic := mqtt.Topics{}.DeviceState(device.Slug(snap.Name))
	if err := p.client.PublishRetained(topic, payload); err != nil {
		return fmt.Errorf("publishing %s state: %w", snap.Name, err)
	}
	return nil
}
