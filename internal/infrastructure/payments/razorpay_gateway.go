package payments

import (
	"context"
	"errors"
	"fmt"
	"log"

	"rids_ngo/internal/domain/entities"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"
)

const gatewayTimeoutSeconds = 10

var ErrMissingRazorpayCredentials = errors.New("missing RAZORPAY_KEY_ID or RAZORPAY_KEY_SECRET")
var ErrRazorpayGatewayNotConfigured = errors.New("razorpay gateway not configured")

// RazorpayGateway adapts the Razorpay SDK to the IPaymentGateway port.
//
// Order creation is the only networked call; both signature checks are local
// HMAC-SHA256 computations against the key secret / webhook secret.

type RazorpayGateway struct {
	client        *razorpay.Client
	keyID         string
	keySecret     string
	webhookSecret string
}

func NewRazorpayGateway(keyID, keySecret, webhookSecret string) (*RazorpayGateway, error) {
	if keyID == "" || keySecret == "" {
		log.Printf("[donation][gateway] missing RAZORPAY_KEY_ID / RAZORPAY_KEY_SECRET")
		return nil, ErrMissingRazorpayCredentials
	}

	client := razorpay.NewClient(keyID, keySecret)
	// A slow gateway must not hold donor requests open indefinitely.
	client.SetTimeout(gatewayTimeoutSeconds)
	if webhookSecret == "" {
		// Without the secret, webhook bodies are trusted unverified.
		log.Printf("[donation][gateway] RAZORPAY_WEBHOOK_SECRET not set; webhook signature verification disabled")
	}
	log.Printf("[donation][gateway] Razorpay client initialized key_id=%s", keyID)

	return &RazorpayGateway{
		client:        client,
		keyID:         keyID,
		keySecret:     keySecret,
		webhookSecret: webhookSecret,
	}, nil
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, amountPaise int64, currency, receiptID string, notes map[string]interface{}) (entities.GatewayOrder, error) {
	if g == nil || g.client == nil {
		log.Printf("[donation][gateway] gateway not configured")
		return entities.GatewayOrder{}, ErrRazorpayGatewayNotConfigured
	}
	log.Printf("[donation][gateway] create order start receipt=%s amount_paise=%d currency=%s", receiptID, amountPaise, currency)

	data := map[string]interface{}{
		"amount":          amountPaise,
		"currency":        currency,
		"receipt":         receiptID,
		"payment_capture": 1,
		"notes":           notes,
	}

	resp, err := g.client.Order.Create(data, nil)
	if err != nil {
		log.Printf("[donation][gateway] sdk order create failed receipt=%s err=%v", receiptID, err)
		return entities.GatewayOrder{}, err
	}

	orderID, _ := resp["id"].(string)
	if orderID == "" {
		log.Printf("[donation][gateway] sdk order create returned no id receipt=%s", receiptID)
		return entities.GatewayOrder{}, errors.New("razorpay order response missing id")
	}

	order := entities.GatewayOrder{
		ID:       orderID,
		Amount:   amountPaise,
		Currency: currency,
	}
	// The SDK returns json.Number-ish values; prefer the gateway's echo when present.
	if v, ok := resp["amount"]; ok {
		if n, err := parseAmount(v); err == nil {
			order.Amount = n
		}
	}
	if v, ok := resp["currency"].(string); ok && v != "" {
		order.Currency = v
	}

	log.Printf("[donation][gateway] create order success receipt=%s order_id=%s", receiptID, order.ID)
	return order, nil
}

// VerifyPaymentSignature checks the checkout callback signature:
// HMAC-SHA256(order_id|payment_id, key_secret). Deterministic, no network call.
func (g *RazorpayGateway) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	if g == nil || g.keySecret == "" {
		return false
	}
	params := map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
	}
	return utils.VerifyPaymentSignature(params, signature, g.keySecret)
}

// VerifyWebhookSignature checks the X-Razorpay-Signature header against the
// raw body. When no webhook secret is configured the payload is accepted
// unverified (flagged at startup).
func (g *RazorpayGateway) VerifyWebhookSignature(body []byte, signature string) bool {
	if g == nil {
		return false
	}
	if g.webhookSecret == "" {
		return true
	}
	return utils.VerifyWebhookSignature(string(body), signature, g.webhookSecret)
}

func (g *RazorpayGateway) KeyID() string {
	if g == nil {
		return ""
	}
	return g.keyID
}

func parseAmount(v interface{}) (int64, error) {
	switch n := v.(type) {
	case float64:
		return int64(n), nil
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	default:
		return 0, fmt.Errorf("unsupported amount type %T", v)
	}
}
