package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rids_ngo/internal/adapter/http/handlers/mocks"
	"rids_ngo/internal/domain/entities"
	"rids_ngo/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDonationHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDonationUseCase(ctrl)
		h := NewDonationHandler(uc)

		r := gin.New()
		r.POST("/api/donations/create-order", h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/api/donations/create-order", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing email rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDonationUseCase(ctrl)
		h := NewDonationHandler(uc)

		r := gin.New()
		r.POST("/api/donations/create-order", h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/api/donations/create-order",
			bytes.NewBufferString(`{"name":"Asha","phone":"9998887776","amount":250,"type":"one-time"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDonationUseCase(ctrl)
		h := NewDonationHandler(uc)

		r := gin.New()
		r.POST("/api/donations/create-order", h.CreateOrder)

		uc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(entities.DonationOrder{}, usecase.ErrGatewayNotConfigured)

		req := httptest.NewRequest(http.MethodPost, "/api/donations/create-order",
			bytes.NewBufferString(`{"name":"Asha","email":"a@x.com","phone":"9998887776","amount":250,"type":"one-time"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDonationUseCase(ctrl)
		h := NewDonationHandler(uc)

		r := gin.New()
		r.POST("/api/donations/create-order", h.CreateOrder)

		uc.EXPECT().CreateOrder(gomock.Any(), usecase.DonorInput{
			Name: "Asha", Email: "a@x.com", Phone: "9998887776", Amount: 250, Type: "one-time",
		}).Return(entities.DonationOrder{
			DonationID: "don-1", OrderID: "order_abc123", Amount: 250, AmountPaise: 25000,
			Currency: "INR", RazorpayKeyID: "rzp_test_key",
			Donor: entities.Donation{Name: "Asha", Email: "a@x.com", Phone: "9998887776"},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/donations/create-order",
			bytes.NewBufferString(`{"name":"Asha","email":"a@x.com","phone":"9998887776","amount":250,"type":"one-time"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "created" || body["order_id"] != "order_abc123" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body["amount_paise"] != float64(25000) {
			t.Fatalf("unexpected amount_paise in body: %s", w.Body.String())
		}
	})
}

func TestDonationHandler_VerifyPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	payload := `{"razorpay_order_id":"order_1","razorpay_payment_id":"pay_1","razorpay_signature":"sig","donation_id":"don-1"}`

	t.Run("signature verification failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDonationUseCase(ctrl)
		h := NewDonationHandler(uc)

		r := gin.New()
		r.POST("/api/donations/verify-payment", h.VerifyPayment)

		uc.EXPECT().VerifyPayment(gomock.Any(), "order_1", "pay_1", "sig", "don-1").
			Return(entities.Donation{}, usecase.ErrSignatureVerificationFailed)

		req := httptest.NewRequest(http.MethodPost, "/api/donations/verify-payment", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("status conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDonationUseCase(ctrl)
		h := NewDonationHandler(uc)

		r := gin.New()
		r.POST("/api/donations/verify-payment", h.VerifyPayment)

		uc.EXPECT().VerifyPayment(gomock.Any(), "order_1", "pay_1", "sig", "don-1").
			Return(entities.Donation{}, entities.ErrDonationStatusConflict)

		req := httptest.NewRequest(http.MethodPost, "/api/donations/verify-payment", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDonationUseCase(ctrl)
		h := NewDonationHandler(uc)

		r := gin.New()
		r.POST("/api/donations/verify-payment", h.VerifyPayment)

		uc.EXPECT().VerifyPayment(gomock.Any(), "order_1", "pay_1", "sig", "don-1").
			Return(entities.Donation{ID: "don-1", Status: entities.DonationStatusCompleted, RazorpayPaymentID: "pay_1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/donations/verify-payment", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "completed" || body["payment_id"] != "pay_1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestDonationHandler_Webhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("signature is forwarded and processing errors still acknowledge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDonationUseCase(ctrl)
		h := NewDonationHandler(uc)

		r := gin.New()
		r.POST("/api/donations/webhook", h.Webhook)

		body := `{"event":"payment.captured"}`
		uc.EXPECT().HandleWebhook(gomock.Any(), []byte(body), "whsig").
			Return("", usecase.ErrInvalidWebhookSignature)

		req := httptest.NewRequest(http.MethodPost, "/api/donations/webhook", bytes.NewBufferString(body))
		req.Header.Set("X-Razorpay-Signature", "whsig")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("webhook must always acknowledge, got %d", w.Code)
		}
	})

	t.Run("success echoes the event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDonationUseCase(ctrl)
		h := NewDonationHandler(uc)

		r := gin.New()
		r.POST("/api/donations/webhook", h.Webhook)

		uc.EXPECT().HandleWebhook(gomock.Any(), gomock.Any(), gomock.Any()).Return("payment.captured", nil)

		req := httptest.NewRequest(http.MethodPost, "/api/donations/webhook", bytes.NewBufferString(`{"event":"payment.captured"}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "ok" || body["event"] != "payment.captured" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestDonationHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDonationUseCase(ctrl)
		h := NewDonationHandler(uc)

		r := gin.New()
		r.GET("/api/donations", h.List)

		req := httptest.NewRequest(http.MethodGet, "/api/donations?limit=abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDonationUseCase(ctrl)
		h := NewDonationHandler(uc)

		r := gin.New()
		r.GET("/api/donations", h.List)

		uc.EXPECT().List(gomock.Any(), "refunded", 0).Return(nil, usecase.ErrInvalidDonationStatus)

		req := httptest.NewRequest(http.MethodGet, "/api/donations?status_filter=refunded", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success passes filter and limit through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDonationUseCase(ctrl)
		h := NewDonationHandler(uc)

		r := gin.New()
		r.GET("/api/donations", h.List)

		uc.EXPECT().List(gomock.Any(), "completed", 25).Return([]entities.Donation{
			{ID: "don-1", Status: entities.DonationStatusCompleted, CreatedAt: time.Now().UTC()},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/donations?status_filter=completed&limit=25", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["id"] != "don-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestDonationHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDonationUseCase(ctrl)
		h := NewDonationHandler(uc)

		r := gin.New()
		r.PUT("/api/donations/:id/status", h.UpdateStatus)

		uc.EXPECT().OverrideStatus(gomock.Any(), "missing", "failed").Return(entities.Donation{}, usecase.ErrDonationNotFound)

		req := httptest.NewRequest(http.MethodPut, "/api/donations/missing/status", bytes.NewBufferString(`{"status":"failed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDonationUseCase(ctrl)
		h := NewDonationHandler(uc)

		r := gin.New()
		r.PUT("/api/donations/:id/status", h.UpdateStatus)

		uc.EXPECT().OverrideStatus(gomock.Any(), "don-1", "completed").
			Return(entities.Donation{ID: "don-1", Status: entities.DonationStatusCompleted}, nil)

		req := httptest.NewRequest(http.MethodPut, "/api/donations/don-1/status", bytes.NewBufferString(`{"status":"completed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "completed" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestDonationHandler_Stats(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDonationUseCase(ctrl)
	h := NewDonationHandler(uc)

	r := gin.New()
	r.GET("/api/donations/stats", h.Stats)

	uc.EXPECT().Stats(gomock.Any()).Return(entities.DonationStats{
		TotalCount: 3, CompletedCount: 2, TotalAmount: 750,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/donations/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["total_amount"] != float64(750) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestMapDonationError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidDonationAmount, http.StatusBadRequest},
		{usecase.ErrInvalidDonationID, http.StatusBadRequest},
		{usecase.ErrInvalidDonationStatus, http.StatusBadRequest},
		{usecase.ErrSignatureVerificationFailed, http.StatusBadRequest},
		{usecase.ErrGatewayNotConfigured, http.StatusServiceUnavailable},
		{usecase.ErrDonationNotFound, http.StatusNotFound},
		{entities.ErrDonationStatusConflict, http.StatusConflict},
		{usecase.ErrOrderCreationFailed, http.StatusInternalServerError},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapDonationError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
