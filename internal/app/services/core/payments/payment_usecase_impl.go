package payments

import (
	"context"
	"fmt"
	"math"
	"time"

	"medibridge-service/internal/app/config"
	"medibridge-service/internal/app/contracts"
	"medibridge-service/internal/app/models"
	"medibridge-service/internal/pkg/constvars"
	"medibridge-service/internal/pkg/dto/requests"
	"medibridge-service/internal/pkg/dto/responses"
	"medibridge-service/internal/pkg/exceptions"
	"medibridge-service/internal/pkg/utils"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const webhookEventDedupTTL = 24 * time.Hour

type paymentUsecase struct {
	PaymentRepository     contracts.PaymentRepository
	AppointmentRepository contracts.AppointmentRepository
	OrderRepository       contracts.OrderRepository
	UserRepository        contracts.UserRepository
	PaymentGateway        contracts.PaymentGatewayService
	RedisRepository       contracts.RedisRepository
	MailerService         contracts.MailerService
	InternalConfig        *config.InternalConfig
	Logger                *zap.Logger
}

func NewPaymentUsecase(
	paymentRepository contracts.PaymentRepository,
	appointmentRepository contracts.AppointmentRepository,
	orderRepository contracts.OrderRepository,
	userRepository contracts.UserRepository,
	paymentGateway contracts.PaymentGatewayService,
	redisRepository contracts.RedisRepository,
	mailerService contracts.MailerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	return &paymentUsecase{
		PaymentRepository:     paymentRepository,
		AppointmentRepository: appointmentRepository,
		OrderRepository:       orderRepository,
		UserRepository:        userRepository,
		PaymentGateway:        paymentGateway,
		RedisRepository:       redisRepository,
		MailerService:         mailerService,
		InternalConfig:        internalConfig,
		Logger:                logger,
	}
}

func (uc *paymentUsecase) CreateOrder(ctx context.Context, claims *utils.TokenClaims, request *requests.CreatePaymentOrder) (*responses.CreatePaymentOrder, error) {
	if err := uc.checkReferenceOwnership(ctx, claims, request.Type, request.ReferenceID); err != nil {
		return nil, err
	}

	receiptID := utils.GenerateReceiptID()
	amountInPaise := int64(math.Round(request.Amount * 100))

	gatewayOrder, err := uc.PaymentGateway.CreateOrder(ctx, &contracts.GatewayOrderInput{
		AmountInPaise: amountInPaise,
		Currency:      constvars.PaymentCurrencyINR,
		ReceiptID:     receiptID,
		Notes: map[string]interface{}{
			"payment_type": request.Type,
			"reference_id": fmt.Sprintf("%d", request.ReferenceID),
		},
	})
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		UserID:          claims.UserID,
		PaymentType:     request.Type,
		ReferenceID:     request.ReferenceID,
		Amount:          request.Amount,
		Currency:        constvars.PaymentCurrencyINR,
		ReceiptID:       receiptID,
		RazorpayOrderID: gatewayOrder.OrderID,
		Status:          models.PaymentStatusCreated,
	}
	if err := uc.PaymentRepository.Create(ctx, payment); err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Logger, "payment_order_created", utils.GetRequestID(ctx),
		zap.Uint("payment_id", payment.PaymentID),
		zap.String("razorpay_order_id", payment.RazorpayOrderID),
		zap.Float64("amount", payment.Amount),
	)

	return &responses.CreatePaymentOrder{
		OrderID:       gatewayOrder.OrderID,
		Amount:        request.Amount,
		Currency:      constvars.PaymentCurrencyINR,
		RazorpayKeyID: uc.PaymentGateway.KeyID(),
	}, nil
}

func (uc *paymentUsecase) Verify(ctx context.Context, claims *utils.TokenClaims, request *requests.VerifyPayment) (*responses.VerifyPayment, error) {
	payment, err := uc.PaymentRepository.FindByGatewayOrderID(ctx, request.RazorpayOrderID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, exceptions.ErrPaymentNotFound(nil)
	}
	if payment.UserID != claims.UserID {
		return nil, exceptions.ErrNotResourceOwner(nil)
	}

	message := request.RazorpayOrderID + "|" + request.RazorpayPaymentID
	if !utils.VerifyHMACSignature(message, uc.InternalConfig.Razorpay.KeySecret, request.RazorpaySignature) {
		utils.LogSecurityEvent(uc.Logger, "payment_signature_mismatch", utils.GetRequestID(ctx), "high",
			zap.String("razorpay_order_id", request.RazorpayOrderID),
			zap.Uint("user_id", claims.UserID),
		)
		return nil, exceptions.ErrPaymentSignatureMismatch(nil)
	}

	payment, err = uc.PaymentRepository.MarkSuccess(ctx, request.RazorpayOrderID, request.RazorpayPaymentID, "")
	if err != nil {
		return nil, err
	}

	uc.queueConfirmationEmail(ctx, claims.Email, payment)

	utils.LogBusinessEvent(uc.Logger, "payment_verified", utils.GetRequestID(ctx),
		zap.Uint("payment_id", payment.PaymentID),
		zap.String("razorpay_payment_id", request.RazorpayPaymentID),
	)

	return &responses.VerifyPayment{
		PaymentID: request.RazorpayPaymentID,
		Status:    payment.Status,
	}, nil
}

func (uc *paymentUsecase) History(ctx context.Context, claims *utils.TokenClaims, paymentType string, page, limit int) ([]responses.Payment, *responses.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	payments, total, err := uc.PaymentRepository.ListByUser(ctx, claims.UserID, paymentType, limit, offset)
	if err != nil {
		return nil, nil, err
	}

	result := make([]responses.Payment, 0, len(payments))
	for _, payment := range payments {
		result = append(result, responses.Payment{
			PaymentID:         payment.PaymentID,
			PaymentType:       payment.PaymentType,
			ReferenceID:       payment.ReferenceID,
			Amount:            payment.Amount,
			Currency:          payment.Currency,
			RazorpayOrderID:   payment.RazorpayOrderID,
			RazorpayPaymentID: payment.RazorpayPaymentID,
			PaymentMethod:     payment.PaymentMethod,
			Status:            payment.Status,
			CreatedAt:         payment.CreatedAt.Format(time.RFC3339),
		})
	}

	pagination := utils.BuildPaginationResponse(int(total), page, limit, "/api/payments/history")
	return result, pagination, nil
}

// HandleWebhook applies a gateway event exactly once. The raw body has
// already been signature-checked by the transport layer; event-level
// idempotency uses a Redis SETNX on the gateway event id.
func (uc *paymentUsecase) HandleWebhook(ctx context.Context, eventID string, rawBody []byte) error {
	if eventID != "" {
		key := fmt.Sprintf(constvars.RedisWebhookEventKeyFormat, eventID)
		fresh, err := uc.RedisRepository.TrySetNX(ctx, key, "1", webhookEventDedupTTL)
		if err != nil {
			return err
		}
		if !fresh {
			utils.LogBusinessEvent(uc.Logger, "webhook_event_duplicate", utils.GetRequestID(ctx),
				zap.String("event_id", eventID),
			)
			return nil
		}
	}

	event := gjson.GetBytes(rawBody, "event").String()
	entity := gjson.GetBytes(rawBody, "payload.payment.entity")
	if event == "" || !entity.Exists() {
		return exceptions.ErrWebhookMalformedEvent(nil)
	}

	razorpayOrderID := entity.Get("order_id").String()
	razorpayPaymentID := entity.Get("id").String()
	if razorpayOrderID == "" || razorpayPaymentID == "" {
		return exceptions.ErrWebhookMalformedEvent(nil)
	}

	switch event {
	case constvars.WebhookEventPaymentCaptured:
		method := entity.Get("method").String()
		payment, err := uc.PaymentRepository.MarkSuccess(ctx, razorpayOrderID, razorpayPaymentID, method)
		if err != nil {
			return err
		}
		utils.LogBusinessEvent(uc.Logger, "webhook_payment_captured", utils.GetRequestID(ctx),
			zap.Uint("payment_id", payment.PaymentID),
			zap.String("razorpay_payment_id", razorpayPaymentID),
		)
	case constvars.WebhookEventPaymentFailed:
		reason := entity.Get("error_description").String()
		payment, err := uc.PaymentRepository.MarkFailed(ctx, razorpayOrderID, razorpayPaymentID, reason)
		if err != nil {
			return err
		}
		utils.LogBusinessEvent(uc.Logger, "webhook_payment_failed", utils.GetRequestID(ctx),
			zap.Uint("payment_id", payment.PaymentID),
			zap.String("reason", reason),
		)
	default:
		// Unhandled event types are acknowledged so the gateway stops retrying.
		utils.LogBusinessEvent(uc.Logger, "webhook_event_ignored", utils.GetRequestID(ctx),
			zap.String("event", event),
		)
	}
	return nil
}

func (uc *paymentUsecase) RecordRefund(ctx context.Context, claims *utils.TokenClaims, paymentID uint, request *requests.RecordRefund) error {
	payment, err := uc.PaymentRepository.FindByID(ctx, paymentID)
	if err != nil {
		return err
	}
	if payment == nil {
		return exceptions.ErrPaymentNotFound(nil)
	}
	if payment.UserID != claims.UserID {
		return exceptions.ErrNotResourceOwner(nil)
	}

	if err := uc.PaymentRepository.RecordRefund(ctx, paymentID, request.RefundID); err != nil {
		return err
	}
	utils.LogBusinessEvent(uc.Logger, "payment_refund_recorded", utils.GetRequestID(ctx),
		zap.Uint("payment_id", paymentID),
		zap.String("refund_id", request.RefundID),
	)
	return nil
}

func (uc *paymentUsecase) checkReferenceOwnership(ctx context.Context, claims *utils.TokenClaims, paymentType string, referenceID uint) error {
	switch paymentType {
	case constvars.PaymentTypeAppointment:
		appointment, err := uc.AppointmentRepository.FindByID(ctx, referenceID)
		if err != nil {
			return err
		}
		if appointment == nil {
			return exceptions.ErrAppointmentNotFound(nil)
		}
		patient, err := uc.UserRepository.FindPatientByUserID(ctx, claims.UserID)
		if err != nil {
			return err
		}
		if patient == nil || patient.PatientID != appointment.PatientID {
			return exceptions.ErrNotResourceOwner(nil)
		}
	case constvars.PaymentTypeMedicineOrder:
		order, err := uc.OrderRepository.FindByID(ctx, referenceID)
		if err != nil {
			return err
		}
		if order == nil {
			return exceptions.ErrOrderNotFound(nil)
		}
		patient, err := uc.UserRepository.FindPatientByUserID(ctx, claims.UserID)
		if err != nil {
			return err
		}
		if patient == nil || patient.PatientID != order.PatientID {
			return exceptions.ErrNotResourceOwner(nil)
		}
	case constvars.PaymentTypeDiagnosticTest:
		// Diagnostic bookings are settled offline today; the payment row still
		// records the reference for reconciliation.
	default:
		return exceptions.ErrInvalidPaymentType(nil)
	}
	return nil
}

func (uc *paymentUsecase) queueConfirmationEmail(ctx context.Context, email string, payment *models.Payment) {
	if uc.MailerService == nil || email == "" {
		return
	}
	payload := &requests.EmailPayload{
		To:      email,
		Subject: "Payment confirmation",
		Body: fmt.Sprintf(
			"Your payment of %.2f %s (receipt %s) was received successfully.",
			payment.Amount, payment.Currency, payment.ReceiptID,
		),
	}
	if err := uc.MailerService.QueueEmail(ctx, payload); err != nil {
		uc.Logger.Warn("failed to queue payment confirmation email",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
	}
}
