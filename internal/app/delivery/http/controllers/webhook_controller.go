package controllers

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"medibridge-service/internal/app/config"
	"medibridge-service/internal/app/contracts"
	"medibridge-service/internal/app/services/shared/ratelimiter"
	"medibridge-service/internal/pkg/constvars"
	"medibridge-service/internal/pkg/exceptions"
	"medibridge-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const webhookBodyLimit = 1 << 20

type WebhookController struct {
	Log            *zap.Logger
	PaymentUsecase contracts.PaymentUsecase
	Limiter        *ratelimiter.WebhookRateLimiter
	InternalConfig *config.InternalConfig
}

var (
	webhookControllerInstance *WebhookController
	onceWebhookController     sync.Once
)

func NewWebhookController(
	logger *zap.Logger,
	paymentUsecase contracts.PaymentUsecase,
	limiter *ratelimiter.WebhookRateLimiter,
	internalConfig *config.InternalConfig,
) *WebhookController {
	onceWebhookController.Do(func() {
		webhookControllerInstance = &WebhookController{
			Log:            logger,
			PaymentUsecase: paymentUsecase,
			Limiter:        limiter,
			InternalConfig: internalConfig,
		}
	})
	return webhookControllerInstance
}

// HandlePaymentWebhook processes POST /api/payments/webhook. The signature is
// verified over the raw body before any parsing happens.
func (ctrl *WebhookController) HandlePaymentWebhook(w http.ResponseWriter, r *http.Request) {
	if !ctrl.Limiter.Allow() {
		w.Header().Set(constvars.HeaderRetryAfter, "1")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.BuildNewCustomError(nil, constvars.StatusTooManyRequests, "too many requests", "webhook rate limit exceeded"))
		return
	}

	rawBody, err := io.ReadAll(io.LimitReader(r.Body, webhookBodyLimit))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrWebhookMalformedEvent(err))
		return
	}

	signature := r.Header.Get(constvars.HeaderRazorpaySignature)
	if signature == "" || !utils.VerifyHMACSignature(string(rawBody), ctrl.InternalConfig.Razorpay.WebhookSecret, signature) {
		utils.LogSecurityEvent(ctrl.Log, "webhook_signature_mismatch", utils.GetRequestID(r.Context()), "high",
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrWebhookSignatureMismatch(nil))
		return
	}

	eventID := r.Header.Get(constvars.HeaderRazorpayEventID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.PaymentUsecase.HandleWebhook(ctx, eventID, rawBody); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WebhookProcessedSuccess, nil)
}
