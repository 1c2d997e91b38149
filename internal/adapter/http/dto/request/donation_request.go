package request

import "strings"

// DonationCreateRequest is the public create-order payload.
type DonationCreateRequest struct {
	Name   string  `json:"name" binding:"required"`
	Email  string  `json:"email" binding:"required,email"`
	Phone  string  `json:"phone" binding:"required"`
	Amount float64 `json:"amount" binding:"required"`
	Type   string  `json:"type" binding:"required"`
}

// VerifyPaymentRequest is the checkout-callback payload posted by the browser
// after the hosted Razorpay flow completes.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
	DonationID        string `json:"donation_id" binding:"required"`
}

// StatusUpdateRequest is the admin manual-override payload.
type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r StatusUpdateRequest) ResolveStatus() string {
	return strings.TrimSpace(r.Status)
}

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
