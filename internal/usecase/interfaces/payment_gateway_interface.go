package interfaces

import (
	"context"

	"rids_ngo/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment provider (Razorpay).
//
// CreateOrder is the only networked call; both signature checks are local
// HMAC computations against the configured secrets.
type IPaymentGateway interface {
	CreateOrder(ctx context.Context, amountPaise int64, currency, receiptID string, notes map[string]interface{}) (entities.GatewayOrder, error)
	VerifyPaymentSignature(orderID, paymentID, signature string) bool
	VerifyWebhookSignature(body []byte, signature string) bool
	KeyID() string
}
