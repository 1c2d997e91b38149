package entities

import (
	"errors"
	"time"
)

// DonationStatus represents the donation payment outcome.
//
// Domain notes:
//   - The donation-service is the source of truth for local donation state.
//   - Settlement itself is delegated to Razorpay; we only track the record.

type DonationStatus string

const (
	DonationStatusPending   DonationStatus = "pending"
	DonationStatusCompleted DonationStatus = "completed"
	DonationStatusFailed    DonationStatus = "failed"
)

// ParseDonationStatus maps a raw string to a DonationStatus.
func ParseDonationStatus(s string) (DonationStatus, bool) {
	switch DonationStatus(s) {
	case DonationStatusPending, DonationStatusCompleted, DonationStatusFailed:
		return DonationStatus(s), true
	}
	return "", false
}

// ErrDonationStatusConflict is returned by the repository when a guarded
// transition is refused because the record already sits in a different
// terminal state (e.g. a payment.captured webhook arriving for a record the
// client already verified as failed). The caller logs it for manual review;
// the stored record is never overwritten.
var ErrDonationStatusConflict = errors.New("donation status conflict")

// Donation is the donation record persisted by the donation-service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (razorpay_order_id-index): razorpay_order_id
//
// Donor fields and amount are immutable after creation; only status,
// razorpay_* linkage and the error diagnostic ever change.

type Donation struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Phone  string  `json:"phone"`
	Amount float64 `json:"amount"`
	Type   string  `json:"type"`

	Status            DonationStatus `json:"status"`
	RazorpayOrderID   string         `json:"razorpay_order_id,omitempty"`
	RazorpayPaymentID string         `json:"razorpay_payment_id,omitempty"`
	RazorpaySignature string         `json:"razorpay_signature,omitempty"`
	Error             string         `json:"error,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// GatewayOrder is the external gateway's view of a payment intent.
type GatewayOrder struct {
	ID       string
	Amount   int64 // minor units (paise)
	Currency string
}

// DonationOrder is the result of creating a donation order: the local record
// plus everything the browser needs to launch the hosted checkout.
type DonationOrder struct {
	DonationID    string
	OrderID       string
	Amount        float64
	AmountPaise   int64
	Currency      string
	RazorpayKeyID string
	Donor         Donation
}

// DonationStats aggregates the donation slice of the admin dashboard.
type DonationStats struct {
	TotalAmount    float64 `json:"total_amount"`
	TotalCount     int     `json:"total_count"`
	PendingCount   int     `json:"pending_count"`
	CompletedCount int     `json:"completed_count"`
	FailedCount    int     `json:"failed_count"`
	MonthlyDonors  int     `json:"monthly_donors"`
}

// Notification is a queued best-effort email.
type Notification struct {
	To      string
	Subject string
	Body    string
}
