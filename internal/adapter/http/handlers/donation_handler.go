package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "rids_ngo/internal/adapter/http/dto/request"
	response "rids_ngo/internal/adapter/http/dto/response"
	"rids_ngo/internal/domain/entities"
	"rids_ngo/internal/usecase"
	"rids_ngo/pkg"

	"github.com/gin-gonic/gin"
)

const razorpaySignatureHeader = "X-Razorpay-Signature"

// DonationHandler handles HTTP requests for the donation lifecycle.

type DonationHandler struct {
	usecase usecase.IDonationUseCase
}

func NewDonationHandler(uc usecase.IDonationUseCase) *DonationHandler {
	return &DonationHandler{usecase: uc}
}

// CreateOrder creates the local record and the Razorpay order.
func (h *DonationHandler) CreateOrder(c *gin.Context) {
	var payload request.DonationCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[donation][handler] create-order invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), usecase.DonorInput{
		Name:   payload.Name,
		Email:  payload.Email,
		Phone:  payload.Phone,
		Amount: payload.Amount,
		Type:   payload.Type,
	})
	if err != nil {
		log.Printf("[donation][handler] create-order failed email=%s err=%v", payload.Email, err)
		appErr := mapDonationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[donation][handler] create-order success donation_id=%s order_id=%s", order.DonationID, order.OrderID)

	c.JSON(http.StatusCreated, response.FromDonationOrder(order))
}

// VerifyPayment finalizes a record from the browser's checkout confirmation.
func (h *DonationHandler) VerifyPayment(c *gin.Context) {
	var payload request.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[donation][handler] verify-payment invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	d, err := h.usecase.VerifyPayment(c.Request.Context(),
		payload.RazorpayOrderID, payload.RazorpayPaymentID, payload.RazorpaySignature, payload.DonationID)
	if err != nil {
		log.Printf("[donation][handler] verify-payment failed donation_id=%s err=%v", payload.DonationID, err)
		appErr := mapDonationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[donation][handler] verify-payment success donation_id=%s payment_id=%s", d.ID, d.RazorpayPaymentID)

	c.JSON(http.StatusOK, response.FromVerifiedDonation(d))
}

// Webhook consumes gateway callbacks. It always acknowledges with 200:
// processing errors are logged, never surfaced, so the gateway does not
// enter its redelivery backoff.
func (h *DonationHandler) Webhook(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		log.Printf("[donation][handler] webhook body read failed err=%v", err)
		c.JSON(http.StatusOK, response.WebhookAckResponse{Status: "ok"})
		return
	}

	event, err := h.usecase.HandleWebhook(c.Request.Context(), body, c.GetHeader(razorpaySignatureHeader))
	if err != nil {
		log.Printf("[donation][handler] webhook processing error event=%q err=%v", event, err)
	}

	c.JSON(http.StatusOK, response.WebhookAckResponse{Status: "ok", Event: event})
}

// List returns donation records for the admin panel.
func (h *DonationHandler) List(c *gin.Context) {
	statusFilter := c.Query("status_filter")
	limit := 0
	if v := c.Query("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid limit", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		limit = parsed
	}

	donations, err := h.usecase.List(c.Request.Context(), statusFilter, limit)
	if err != nil {
		log.Printf("[donation][handler] list failed status_filter=%q err=%v", statusFilter, err)
		appErr := mapDonationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDonations(donations))
}

// UpdateStatus is the admin manual override for stuck records.
func (h *DonationHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var payload request.StatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	d, err := h.usecase.OverrideStatus(c.Request.Context(), id, payload.ResolveStatus())
	if err != nil {
		log.Printf("[donation][handler] status override failed donation_id=%s status=%q err=%v", id, payload.Status, err)
		appErr := mapDonationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[donation][handler] status override success donation_id=%s status=%s", d.ID, d.Status)

	c.JSON(http.StatusOK, response.FromDonation(d))
}

// Stats returns the donation slice of the admin dashboard.
func (h *DonationHandler) Stats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		log.Printf("[donation][handler] stats failed err=%v", err)
		appErr := mapDonationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, stats)
}

func mapDonationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDonationAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Donation amount must be positive", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDonationID), errors.Is(err, usecase.ErrInvalidDonationStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSignatureVerificationFailed):
		return pkg.NewDomainErrorSimple("SIGNATURE_VERIFICATION_FAILED", "Payment signature verification failed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrDonationNotFound):
		return pkg.NewDomainErrorSimple("DONATION_NOT_FOUND", "Donation not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrDonationStatusConflict):
		return pkg.NewDomainErrorSimple("DONATION_STATUS_CONFLICT", "Donation is already in a conflicting terminal state", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderCreationFailed):
		return pkg.NewDomainError("ORDER_CREATION_FAILED", "Failed to create payment order", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
