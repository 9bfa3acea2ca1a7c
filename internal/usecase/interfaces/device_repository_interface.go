package interfaces

import (
	"context"

	"bitcoinswitch/internal/domain/entities"
)

// IDeviceRepository abstracts DynamoDB persistence for Device (the switch registry).
//
// GetByID returns a zero Device (empty ID) when the device does not exist.
type IDeviceRepository interface {
	Create(ctx context.Context, d entities.Device) (entities.Device, error)
	GetByID(ctx context.Context, id string) (entities.Device, error)
	ListByWallet(ctx context.Context, wallet string) ([]entities.Device, error)
	Update(ctx context.Context, d entities.Device) (entities.Device, error)
	Delete(ctx context.Context, id string) error
}
