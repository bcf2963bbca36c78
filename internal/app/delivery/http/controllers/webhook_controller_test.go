package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"medibridge-service/internal/app/config"
	"medibridge-service/internal/app/services/shared/ratelimiter"
	"medibridge-service/internal/pkg/constvars"
	"medibridge-service/internal/pkg/dto/requests"
	"medibridge-service/internal/pkg/dto/responses"
	"medibridge-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockPaymentUsecase struct {
	mock.Mock
}

func (m *MockPaymentUsecase) CreateOrder(ctx context.Context, claims *utils.TokenClaims, request *requests.CreatePaymentOrder) (*responses.CreatePaymentOrder, error) {
	args := m.Called(ctx, claims, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.CreatePaymentOrder), args.Error(1)
}

func (m *MockPaymentUsecase) Verify(ctx context.Context, claims *utils.TokenClaims, request *requests.VerifyPayment) (*responses.VerifyPayment, error) {
	args := m.Called(ctx, claims, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.VerifyPayment), args.Error(1)
}

func (m *MockPaymentUsecase) History(ctx context.Context, claims *utils.TokenClaims, paymentType string, page, limit int) ([]responses.Payment, *responses.Pagination, error) {
	args := m.Called(ctx, claims, paymentType, page, limit)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]responses.Payment), args.Get(1).(*responses.Pagination), args.Error(2)
}

func (m *MockPaymentUsecase) HandleWebhook(ctx context.Context, eventID string, rawBody []byte) error {
	args := m.Called(ctx, eventID, rawBody)
	return args.Error(0)
}

func (m *MockPaymentUsecase) RecordRefund(ctx context.Context, claims *utils.TokenClaims, paymentID uint, request *requests.RecordRefund) error {
	args := m.Called(ctx, claims, paymentID, request)
	return args.Error(0)
}

const testWebhookSecret = "test-webhook-secret"

func newTestWebhookController(paymentUsecase *MockPaymentUsecase, limiter *ratelimiter.WebhookRateLimiter) *WebhookController {
	return &WebhookController{
		Log:            zap.NewNop(),
		PaymentUsecase: paymentUsecase,
		Limiter:        limiter,
		InternalConfig: &config.InternalConfig{
			Razorpay: config.RazorpayConfig{WebhookSecret: testWebhookSecret},
		},
	}
}

func webhookRequest(body []byte, signature, eventID string) *http.Request {
	req := httptest.NewRequest("POST", "/api/payments/webhook", bytes.NewReader(body))
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if signature != "" {
		req.Header.Set(constvars.HeaderRazorpaySignature, signature)
	}
	if eventID != "" {
		req.Header.Set(constvars.HeaderRazorpayEventID, eventID)
	}
	return req
}

func TestHandlePaymentWebhook(t *testing.T) {
	body := []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_1","order_id":"order_1","method":"upi"}}}}`)

	t.Run("Valid Signature", func(t *testing.T) {
		mockPaymentUsecase := new(MockPaymentUsecase)
		mockPaymentUsecase.On("HandleWebhook", mock.Anything, "evt_1", body).Return(nil)
		ctrl := newTestWebhookController(mockPaymentUsecase, ratelimiter.NewWebhookRateLimiter(10, 20))

		signature := utils.ComputeHMACSignature(string(body), testWebhookSecret)
		rr := httptest.NewRecorder()
		ctrl.HandlePaymentWebhook(rr, webhookRequest(body, signature, "evt_1"))

		assert.Equal(t, http.StatusOK, rr.Code)
		mockPaymentUsecase.AssertExpectations(t)
	})

	t.Run("Missing Signature", func(t *testing.T) {
		mockPaymentUsecase := new(MockPaymentUsecase)
		ctrl := newTestWebhookController(mockPaymentUsecase, ratelimiter.NewWebhookRateLimiter(10, 20))

		rr := httptest.NewRecorder()
		ctrl.HandlePaymentWebhook(rr, webhookRequest(body, "", "evt_1"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockPaymentUsecase.AssertNotCalled(t, "HandleWebhook")
	})

	t.Run("Wrong Signature", func(t *testing.T) {
		mockPaymentUsecase := new(MockPaymentUsecase)
		ctrl := newTestWebhookController(mockPaymentUsecase, ratelimiter.NewWebhookRateLimiter(10, 20))

		rr := httptest.NewRecorder()
		ctrl.HandlePaymentWebhook(rr, webhookRequest(body, "deadbeef", "evt_1"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockPaymentUsecase.AssertNotCalled(t, "HandleWebhook")
	})

	t.Run("Signature Over A Different Body", func(t *testing.T) {
		mockPaymentUsecase := new(MockPaymentUsecase)
		ctrl := newTestWebhookController(mockPaymentUsecase, ratelimiter.NewWebhookRateLimiter(10, 20))

		otherBody := []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_2","order_id":"order_2"}}}}`)
		signature := utils.ComputeHMACSignature(string(otherBody), testWebhookSecret)
		rr := httptest.NewRecorder()
		ctrl.HandlePaymentWebhook(rr, webhookRequest(body, signature, "evt_1"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockPaymentUsecase.AssertNotCalled(t, "HandleWebhook")
	})

	t.Run("Rate Limited", func(t *testing.T) {
		mockPaymentUsecase := new(MockPaymentUsecase)
		mockPaymentUsecase.On("HandleWebhook", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		ctrl := newTestWebhookController(mockPaymentUsecase, ratelimiter.NewWebhookRateLimiter(0.001, 1))

		signature := utils.ComputeHMACSignature(string(body), testWebhookSecret)

		rr := httptest.NewRecorder()
		ctrl.HandlePaymentWebhook(rr, webhookRequest(body, signature, "evt_1"))
		assert.Equal(t, http.StatusOK, rr.Code)

		rr = httptest.NewRecorder()
		ctrl.HandlePaymentWebhook(rr, webhookRequest(body, signature, "evt_2"))
		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
		assert.Equal(t, "1", rr.Header().Get(constvars.HeaderRetryAfter))
	})
}
