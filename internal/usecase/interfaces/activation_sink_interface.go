package interfaces

import "context"

// IActivationSink delivers an activation payload to a connected device.
//
// Delivery is fire-and-forget: a nil error only means the payload was handed off.
type IActivationSink interface {
	Send(ctx context.Context, deviceID string, payload string) error
}
