package interfaces

import (
	"context"

	"bitcoinswitch/internal/domain/entities"
)

// IPaymentAttemptRepository abstracts DynamoDB persistence for PaymentAttempt.
//
// Lookups return a zero PaymentAttempt (empty ID) when the record does not exist.
// MarkPaid is conditional: it returns a zero PaymentAttempt when the attempt is
// missing or was already marked paid by someone else.
type IPaymentAttemptRepository interface {
	Create(ctx context.Context, p entities.PaymentAttempt) (entities.PaymentAttempt, error)
	GetByID(ctx context.Context, id string) (entities.PaymentAttempt, error)
	Update(ctx context.Context, p entities.PaymentAttempt) (entities.PaymentAttempt, error)
	MarkPaid(ctx context.Context, id string) (entities.PaymentAttempt, error)
	Delete(ctx context.Context, id string) error
	DeleteByDeviceID(ctx context.Context, deviceID string) error
}
