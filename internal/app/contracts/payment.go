package contracts

import (
	"context"

	"medibridge-service/internal/app/models"
	"medibridge-service/internal/pkg/dto/requests"
	"medibridge-service/internal/pkg/dto/responses"
	"medibridge-service/internal/pkg/utils"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	FindByID(ctx context.Context, paymentID uint) (*models.Payment, error)
	FindByGatewayOrderID(ctx context.Context, razorpayOrderID string) (*models.Payment, error)
	MarkSuccess(ctx context.Context, razorpayOrderID, razorpayPaymentID, paymentMethod string) (*models.Payment, error)
	MarkFailed(ctx context.Context, razorpayOrderID, razorpayPaymentID, reason string) (*models.Payment, error)
	RecordRefund(ctx context.Context, paymentID uint, refundID string) error
	ListByUser(ctx context.Context, userID uint, paymentType string, limit, offset int) ([]models.Payment, int64, error)
}

type PaymentUsecase interface {
	CreateOrder(ctx context.Context, claims *utils.TokenClaims, request *requests.CreatePaymentOrder) (*responses.CreatePaymentOrder, error)
	Verify(ctx context.Context, claims *utils.TokenClaims, request *requests.VerifyPayment) (*responses.VerifyPayment, error)
	History(ctx context.Context, claims *utils.TokenClaims, paymentType string, page, limit int) ([]responses.Payment, *responses.Pagination, error)
	HandleWebhook(ctx context.Context, eventID string, rawBody []byte) error
	RecordRefund(ctx context.Context, claims *utils.TokenClaims, paymentID uint, request *requests.RecordRefund) error
}
