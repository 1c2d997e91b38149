package response

import (
	"time"

	"rids_ngo/internal/domain/entities"
)

// DonorResponse echoes the donor fields back to the checkout client.
type DonorResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CreateOrderResponse is the create-order response consumed by the hosted
// checkout launcher.
type CreateOrderResponse struct {
	Status        string        `json:"status"`
	OrderID       string        `json:"order_id"`
	DonationID    string        `json:"donation_id"`
	Amount        float64       `json:"amount"`
	AmountPaise   int64         `json:"amount_paise"`
	Currency      string        `json:"currency"`
	RazorpayKeyID string        `json:"razorpay_key_id"`
	Donor         DonorResponse `json:"donor"`
}

func FromDonationOrder(o entities.DonationOrder) CreateOrderResponse {
	return CreateOrderResponse{
		Status:        "created",
		OrderID:       o.OrderID,
		DonationID:    o.DonationID,
		Amount:        o.Amount,
		AmountPaise:   o.AmountPaise,
		Currency:      o.Currency,
		RazorpayKeyID: o.RazorpayKeyID,
		Donor: DonorResponse{
			Name:  o.Donor.Name,
			Email: o.Donor.Email,
			Phone: o.Donor.Phone,
		},
	}
}

// VerifyPaymentResponse confirms the final record state to the client.
type VerifyPaymentResponse struct {
	Status     string `json:"status"`
	DonationID string `json:"donation_id"`
	PaymentID  string `json:"payment_id"`
}

func FromVerifiedDonation(d entities.Donation) VerifyPaymentResponse {
	return VerifyPaymentResponse{
		Status:     string(d.Status),
		DonationID: d.ID,
		PaymentID:  d.RazorpayPaymentID,
	}
}

// WebhookAckResponse is always success-shaped; a non-2xx would trigger the
// gateway's redelivery backoff.
type WebhookAckResponse struct {
	Status string `json:"status"`
	Event  string `json:"event"`
}

// DonationResponse is the admin-facing record view.
type DonationResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	Amount            float64   `json:"amount"`
	Type              string    `json:"type"`
	Status            string    `json:"status"`
	RazorpayOrderID   string    `json:"razorpay_order_id,omitempty"`
	RazorpayPaymentID string    `json:"razorpay_payment_id,omitempty"`
	Error             string    `json:"error,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

func FromDonation(d entities.Donation) DonationResponse {
	return DonationResponse{
		ID:                d.ID,
		Name:              d.Name,
		Email:             d.Email,
		Phone:             d.Phone,
		Amount:            d.Amount,
		Type:              d.Type,
		Status:            string(d.Status),
		RazorpayOrderID:   d.RazorpayOrderID,
		RazorpayPaymentID: d.RazorpayPaymentID,
		Error:             d.Error,
		CreatedAt:         d.CreatedAt,
	}
}

func FromDonations(ds []entities.Donation) []DonationResponse {
	out := make([]DonationResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, FromDonation(d))
	}
	return out
}

// TokenResponse is the admin login response.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
