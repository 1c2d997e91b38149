package interfaces

import (
	"context"

	"rids_ngo/internal/domain/entities"
)

// IDonationRepository abstracts DynamoDB persistence for Donation.
//
// Status mutations must be single conditional writes: concurrent
// verification and webhook delivery for the same record may race, and the
// store condition is the only serialization point.
//
//   - MarkCompleted / MarkFailed transition only from pending. Re-asserting
//     the current terminal state returns the record unchanged (idempotent);
//     a conflicting terminal state returns entities.ErrDonationStatusConflict.
//   - A zero-ID result with nil error means "no such record".

type IDonationRepository interface {
	Create(ctx context.Context, d entities.Donation) (entities.Donation, error)
	GetByID(ctx context.Context, id string) (entities.Donation, error)
	GetByOrderID(ctx context.Context, orderID string) (entities.Donation, error)
	AttachOrderID(ctx context.Context, id, orderID string) (entities.Donation, error)
	MarkCompleted(ctx context.Context, id, paymentID, signature string) (entities.Donation, error)
	MarkFailed(ctx context.Context, id, diagnostic string) (entities.Donation, error)
	OverrideStatus(ctx context.Context, id string, status entities.DonationStatus) (entities.Donation, error)
	List(ctx context.Context, status entities.DonationStatus, limit int32) ([]entities.Donation, error)
}
