package usecase

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"rids_ngo/internal/domain/entities"
	"rids_ngo/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrGatewayNotConfigured        = errors.New("payment gateway not configured")
	ErrInvalidDonationAmount       = errors.New("invalid donation amount")
	ErrInvalidDonationID           = errors.New("invalid donation id")
	ErrDonationNotFound            = errors.New("donation not found")
	ErrOrderCreationFailed         = errors.New("failed to create razorpay order")
	ErrSignatureVerificationFailed = errors.New("signature verification failed")
	ErrInvalidDonationStatus       = errors.New("invalid donation status")
	ErrInvalidWebhookSignature     = errors.New("invalid webhook signature")
)

// DonationCurrency is the gateway's settlement currency; amounts are stored
// in base units (rupees) and sent to the gateway in minor units (paise).
const DonationCurrency = "INR"

// DonorInput carries donor-submitted fields for order creation.
type DonorInput struct {
	Name   string
	Email  string
	Phone  string
	Amount float64
	Type   string
}

// IDonationUseCase encapsulates the donation lifecycle behavior.
//
//   - CreateOrder: pending record + gateway order + local linkage.
//   - VerifyPayment: client-submitted checkout confirmation.
//   - HandleWebhook: asynchronous gateway reconciliation.
//   - List/OverrideStatus/ExportCSV/Stats: the admin surface.

type IDonationUseCase interface {
	CreateOrder(ctx context.Context, in DonorInput) (entities.DonationOrder, error)
	VerifyPayment(ctx context.Context, orderID, paymentID, signature, donationID string) (entities.Donation, error)
	HandleWebhook(ctx context.Context, body []byte, signature string) (string, error)
	List(ctx context.Context, statusFilter string, limit int) ([]entities.Donation, error)
	OverrideStatus(ctx context.Context, id, status string) (entities.Donation, error)
	ExportCSV(ctx context.Context, w io.Writer) error
	Stats(ctx context.Context) (entities.DonationStats, error)
}

type DonationUseCase struct {
	repo     interfaces.IDonationRepository
	gateway  interfaces.IPaymentGateway
	notifier interfaces.INotifier
}

var _ IDonationUseCase = (*DonationUseCase)(nil)

func NewDonationUseCase(repo interfaces.IDonationRepository, gateway interfaces.IPaymentGateway, notifier interfaces.INotifier) *DonationUseCase {
	return &DonationUseCase{repo: repo, gateway: gateway, notifier: notifier}
}

func (u *DonationUseCase) CreateOrder(ctx context.Context, in DonorInput) (entities.DonationOrder, error) {
	log.Printf("[donation][usecase] create-order start email=%s amount=%.2f type=%s", in.Email, in.Amount, in.Type)

	// Both checks run before any persistence side effect: a misconfigured
	// gateway or a bad amount must not leave a partial record behind.
	if u.gateway == nil {
		log.Printf("[donation][usecase] gateway not configured")
		return entities.DonationOrder{}, ErrGatewayNotConfigured
	}
	if in.Amount <= 0 {
		log.Printf("[donation][usecase] invalid amount amount=%.2f", in.Amount)
		return entities.DonationOrder{}, ErrInvalidDonationAmount
	}

	d := entities.Donation{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Amount:    in.Amount,
		Type:      strings.TrimSpace(in.Type),
		Status:    entities.DonationStatusPending,
		CreatedAt: time.Now().UTC(),
	}

	// The pending record is written before the gateway call so that a
	// gateway failure still leaves an auditable trace.
	if _, err := u.repo.Create(ctx, d); err != nil {
		log.Printf("[donation][usecase] repository create failed donation_id=%s err=%v", d.ID, err)
		return entities.DonationOrder{}, err
	}
	log.Printf("[donation][usecase] donation created donation_id=%s status=pending", d.ID)

	amountPaise := int64(in.Amount * 100)
	notes := map[string]interface{}{
		"donation_id":   d.ID,
		"donor_name":    d.Name,
		"donor_email":   d.Email,
		"donor_phone":   d.Phone,
		"donation_type": d.Type,
	}

	order, err := u.gateway.CreateOrder(ctx, amountPaise, DonationCurrency, d.ID, notes)
	if err != nil {
		log.Printf("[donation][usecase] gateway order creation failed donation_id=%s err=%v", d.ID, err)
		// Retained, not rolled back: the failure must stay observable.
		if _, mErr := u.repo.MarkFailed(ctx, d.ID, err.Error()); mErr != nil {
			log.Printf("[donation][usecase] mark-failed after gateway error failed donation_id=%s err=%v", d.ID, mErr)
		}
		return entities.DonationOrder{}, ErrOrderCreationFailed
	}
	log.Printf("[donation][usecase] gateway order created donation_id=%s order_id=%s", d.ID, order.ID)

	updated, err := u.repo.AttachOrderID(ctx, d.ID, order.ID)
	if err != nil {
		log.Printf("[donation][usecase] attach order id failed donation_id=%s order_id=%s err=%v", d.ID, order.ID, err)
		return entities.DonationOrder{}, err
	}
	if updated.ID == "" {
		log.Printf("[donation][usecase] donation vanished before linkage donation_id=%s", d.ID)
		return entities.DonationOrder{}, ErrDonationNotFound
	}

	u.enqueueOrderNotifications(updated)

	log.Printf("[donation][usecase] create-order success donation_id=%s order_id=%s amount_paise=%d", d.ID, order.ID, order.Amount)
	return entities.DonationOrder{
		DonationID:    updated.ID,
		OrderID:       order.ID,
		Amount:        updated.Amount,
		AmountPaise:   order.Amount,
		Currency:      order.Currency,
		RazorpayKeyID: u.gateway.KeyID(),
		Donor:         updated,
	}, nil
}

func (u *DonationUseCase) VerifyPayment(ctx context.Context, orderID, paymentID, signature, donationID string) (entities.Donation, error) {
	donationID = strings.TrimSpace(donationID)
	log.Printf("[donation][usecase] verify-payment start donation_id=%s order_id=%s payment_id=%s", donationID, orderID, paymentID)
	if donationID == "" {
		return entities.Donation{}, ErrInvalidDonationID
	}
	if u.gateway == nil {
		log.Printf("[donation][usecase] gateway not configured donation_id=%s", donationID)
		return entities.Donation{}, ErrGatewayNotConfigured
	}

	if !u.gateway.VerifyPaymentSignature(orderID, paymentID, signature) {
		log.Printf("[donation][usecase] signature mismatch donation_id=%s order_id=%s", donationID, orderID)
		if _, err := u.repo.MarkFailed(ctx, donationID, "signature verification failed"); err != nil {
			log.Printf("[donation][usecase] mark-failed after signature mismatch failed donation_id=%s err=%v", donationID, err)
		}
		return entities.Donation{}, ErrSignatureVerificationFailed
	}

	updated, err := u.repo.MarkCompleted(ctx, donationID, paymentID, signature)
	if err != nil {
		if errors.Is(err, entities.ErrDonationStatusConflict) {
			log.Printf("[donation][usecase] status conflict on verify donation_id=%s current=%s; flagged for manual review", donationID, updated.Status)
		} else {
			log.Printf("[donation][usecase] mark-completed failed donation_id=%s err=%v", donationID, err)
		}
		return entities.Donation{}, err
	}
	if updated.ID == "" {
		log.Printf("[donation][usecase] donation not found donation_id=%s", donationID)
		return entities.Donation{}, ErrDonationNotFound
	}

	u.enqueueReceiptNotification(updated)

	log.Printf("[donation][usecase] verify-payment success donation_id=%s payment_id=%s status=%s", updated.ID, paymentID, updated.Status)
	return updated, nil
}

// webhookEnvelope is the tagged decode of Razorpay's webhook body. Only the
// fields this service acts on are mapped; unrecognized shapes fall through to
// the unknown-event path instead of being blindly extracted.
type webhookEnvelope struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID               string `json:"id"`
				OrderID          string `json:"order_id"`
				ErrorDescription string `json:"error_description"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

const (
	webhookEventPaymentCaptured = "payment.captured"
	webhookEventPaymentFailed   = "payment.failed"
)

// HandleWebhook reconciles local state from a gateway callback. Errors are
// returned for logging only; the HTTP handler always acknowledges with 200 so
// the gateway does not enter its redelivery backoff.
func (u *DonationUseCase) HandleWebhook(ctx context.Context, body []byte, signature string) (string, error) {
	log.Printf("[donation][webhook] received payload_len=%d", len(body))

	if u.gateway != nil && !u.gateway.VerifyWebhookSignature(body, signature) {
		log.Printf("[donation][webhook] signature verification failed; payload ignored")
		return "", ErrInvalidWebhookSignature
	}

	var env webhookEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		log.Printf("[donation][webhook] payload unmarshal failed err=%v", err)
		return "", err
	}

	switch env.Event {
	case webhookEventPaymentCaptured:
		return env.Event, u.reconcileCaptured(ctx, env)
	case webhookEventPaymentFailed:
		return env.Event, u.reconcileFailed(ctx, env)
	default:
		log.Printf("[donation][webhook] unknown event acknowledged event=%q", env.Event)
		return env.Event, nil
	}
}

func (u *DonationUseCase) reconcileCaptured(ctx context.Context, env webhookEnvelope) error {
	orderID := env.Payload.Payment.Entity.OrderID
	paymentID := env.Payload.Payment.Entity.ID
	if orderID == "" {
		log.Printf("[donation][webhook] captured event without order_id; ignored")
		return nil
	}

	d, err := u.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		return err
	}
	if d.ID == "" {
		// The gateway will not usefully retry on a 404, so an unmatched
		// order id is acknowledged with zero writes.
		log.Printf("[donation][webhook] captured event with no matching donation order_id=%s", orderID)
		return nil
	}

	updated, err := u.repo.MarkCompleted(ctx, d.ID, paymentID, "")
	if err != nil {
		if errors.Is(err, entities.ErrDonationStatusConflict) {
			log.Printf("[donation][webhook] captured conflicts with stored status donation_id=%s current=%s; flagged for manual review", d.ID, updated.Status)
			return nil
		}
		return err
	}
	log.Printf("[donation][webhook] donation completed donation_id=%s order_id=%s payment_id=%s", d.ID, orderID, paymentID)

	u.enqueueReceiptNotification(updated)
	return nil
}

func (u *DonationUseCase) reconcileFailed(ctx context.Context, env webhookEnvelope) error {
	orderID := env.Payload.Payment.Entity.OrderID
	if orderID == "" {
		log.Printf("[donation][webhook] failed event without order_id; ignored")
		return nil
	}

	d, err := u.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		return err
	}
	if d.ID == "" {
		log.Printf("[donation][webhook] failed event with no matching donation order_id=%s", orderID)
		return nil
	}

	diagnostic := env.Payload.Payment.Entity.ErrorDescription
	if diagnostic == "" {
		diagnostic = "payment failed at gateway"
	}

	if _, err := u.repo.MarkFailed(ctx, d.ID, diagnostic); err != nil {
		if errors.Is(err, entities.ErrDonationStatusConflict) {
			log.Printf("[donation][webhook] failed event conflicts with stored status donation_id=%s; flagged for manual review", d.ID)
			return nil
		}
		return err
	}
	log.Printf("[donation][webhook] donation failed donation_id=%s order_id=%s", d.ID, orderID)
	return nil
}

func (u *DonationUseCase) List(ctx context.Context, statusFilter string, limit int) ([]entities.Donation, error) {
	var status entities.DonationStatus
	if s := strings.TrimSpace(statusFilter); s != "" {
		parsed, ok := entities.ParseDonationStatus(s)
		if !ok {
			return nil, ErrInvalidDonationStatus
		}
		status = parsed
	}

	donations, err := u.repo.List(ctx, status, int32(limit))
	if err != nil {
		return nil, err
	}

	// Scans come back unordered; the admin panel expects newest first.
	sort.Slice(donations, func(i, j int) bool {
		return donations[i].CreatedAt.After(donations[j].CreatedAt)
	})
	return donations, nil
}

func (u *DonationUseCase) OverrideStatus(ctx context.Context, id, status string) (entities.Donation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Donation{}, ErrInvalidDonationID
	}
	parsed, ok := entities.ParseDonationStatus(strings.TrimSpace(status))
	if !ok {
		return entities.Donation{}, ErrInvalidDonationStatus
	}

	updated, err := u.repo.OverrideStatus(ctx, id, parsed)
	if err != nil {
		return entities.Donation{}, err
	}
	if updated.ID == "" {
		return entities.Donation{}, ErrDonationNotFound
	}
	log.Printf("[donation][usecase] manual status override donation_id=%s status=%s", id, parsed)
	return updated, nil
}

var exportHeader = []string{"ID", "Name", "Email", "Phone", "Amount", "Type", "Status", "Razorpay Order ID", "Created At"}

func (u *DonationUseCase) ExportCSV(ctx context.Context, w io.Writer) error {
	donations, err := u.repo.List(ctx, "", 0)
	if err != nil {
		return err
	}
	sort.Slice(donations, func(i, j int) bool {
		return donations[i].CreatedAt.After(donations[j].CreatedAt)
	})

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, d := range donations {
		row := []string{
			d.ID,
			d.Name,
			d.Email,
			d.Phone,
			strconv.FormatFloat(d.Amount, 'f', -1, 64),
			d.Type,
			string(d.Status),
			d.RazorpayOrderID,
			d.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (u *DonationUseCase) Stats(ctx context.Context) (entities.DonationStats, error) {
	donations, err := u.repo.List(ctx, "", 0)
	if err != nil {
		return entities.DonationStats{}, err
	}

	var stats entities.DonationStats
	stats.TotalCount = len(donations)
	for _, d := range donations {
		switch d.Status {
		case entities.DonationStatusPending:
			stats.PendingCount++
		case entities.DonationStatusCompleted:
			stats.CompletedCount++
			stats.TotalAmount += d.Amount
			if d.Type == "monthly" {
				stats.MonthlyDonors++
			}
		case entities.DonationStatusFailed:
			stats.FailedCount++
		}
	}
	return stats, nil
}

func (u *DonationUseCase) enqueueOrderNotifications(d entities.Donation) {
	if u.notifier == nil {
		return
	}
	u.notifier.Enqueue(entities.Notification{
		To:      d.Email,
		Subject: "Thank you for supporting RIDS",
		Body: fmt.Sprintf("Dear %s,\n\nThank you for initiating a donation of %s %.2f. "+
			"You will receive a receipt once the payment is confirmed.\n\nRIDS Team", d.Name, DonationCurrency, d.Amount),
	})
	if internal := strings.TrimSpace(os.Getenv("NGO_OFFICIAL_EMAIL")); internal != "" {
		u.notifier.Enqueue(entities.Notification{
			To:      internal,
			Subject: "New donation initiated",
			Body:    fmt.Sprintf("Donation %s: %s <%s> pledged %s %.2f (%s).", d.ID, d.Name, d.Email, DonationCurrency, d.Amount, d.Type),
		})
	}
}

func (u *DonationUseCase) enqueueReceiptNotification(d entities.Donation) {
	if u.notifier == nil {
		return
	}
	u.notifier.Enqueue(entities.Notification{
		To:      d.Email,
		Subject: "Your donation to RIDS is confirmed",
		Body: fmt.Sprintf("Dear %s,\n\nYour donation of %s %.2f has been received. "+
			"Reference: %s.\n\nWith gratitude,\nRIDS Team", d.Name, DonationCurrency, d.Amount, d.ID),
	})
}
