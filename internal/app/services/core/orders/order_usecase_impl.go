package orders

import (
	"context"
	"fmt"

	"medibridge-service/internal/app/contracts"
	"medibridge-service/internal/app/models"
	"medibridge-service/internal/pkg/constvars"
	"medibridge-service/internal/pkg/dto/requests"
	"medibridge-service/internal/pkg/dto/responses"
	"medibridge-service/internal/pkg/exceptions"
	"medibridge-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type orderUsecase struct {
	OrderRepository contracts.OrderRepository
	UserRepository  contracts.UserRepository
	MailerService   contracts.MailerService
	Logger          *zap.Logger
}

func NewOrderUsecase(
	orderRepository contracts.OrderRepository,
	userRepository contracts.UserRepository,
	mailerService contracts.MailerService,
	logger *zap.Logger,
) contracts.OrderUsecase {
	return &orderUsecase{
		OrderRepository: orderRepository,
		UserRepository:  userRepository,
		MailerService:   mailerService,
		Logger:          logger,
	}
}

func (uc *orderUsecase) Create(ctx context.Context, claims *utils.TokenClaims, request *requests.CreateMedicineOrder) (*responses.CreateMedicineOrder, error) {
	if len(request.Medicines) == 0 {
		return nil, exceptions.ErrOrderWithoutItems(nil)
	}

	patient, err := uc.UserRepository.FindPatientByUserID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrProfileNotFound(nil)
	}

	shop, err := uc.UserRepository.FindShopByID(ctx, request.ShopID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, exceptions.ErrShopNotFound(nil)
	}

	var totalAmount float64
	items := make([]models.MedicineOrderItem, 0, len(request.Medicines))
	for _, medicine := range request.Medicines {
		subtotal := medicine.Price * float64(medicine.Quantity)
		totalAmount += subtotal
		items = append(items, models.MedicineOrderItem{
			MedicineID:   medicine.MedicineID,
			MedicineName: medicine.MedicineName,
			Quantity:     medicine.Quantity,
			Price:        medicine.Price,
			Subtotal:     subtotal,
		})
	}

	order := &models.MedicineOrder{
		PatientID:        patient.PatientID,
		ShopID:           shop.ShopID,
		TotalAmount:      totalAmount,
		DeliveryCharges:  shop.DeliveryCharges,
		FinalAmount:      totalAmount + shop.DeliveryCharges,
		DeliveryAddress:  request.DeliveryAddress,
		PrescriptionFile: request.PrescriptionFile,
		Status:           models.OrderStatusPending,
		PaymentStatus:    models.PaymentStateUnpaid,
		Items:            items,
	}

	if err := uc.OrderRepository.CreateWithItems(ctx, order); err != nil {
		return nil, err
	}

	uc.queueOrderConfirmationEmail(ctx, claims.Email, order)

	utils.LogBusinessEvent(uc.Logger, "medicine_order_placed", utils.GetRequestID(ctx),
		zap.Uint("order_id", order.OrderID),
		zap.Uint("patient_id", order.PatientID),
		zap.Uint("shop_id", order.ShopID),
		zap.Float64("final_amount", order.FinalAmount),
	)

	return &responses.CreateMedicineOrder{
		OrderID:         order.OrderID,
		TotalAmount:     order.TotalAmount,
		DeliveryCharges: order.DeliveryCharges,
		FinalAmount:     order.FinalAmount,
	}, nil
}

func (uc *orderUsecase) List(ctx context.Context, claims *utils.TokenClaims, request *requests.ListOrders) ([]responses.MedicineOrder, *responses.Pagination, error) {
	page, pageSize := normalizePaging(request.Page, request.PageSize)
	offset := (page - 1) * pageSize

	var orders []models.MedicineOrder
	var total int64
	var err error

	switch claims.Role {
	case constvars.RolePatient:
		patient, findErr := uc.UserRepository.FindPatientByUserID(ctx, claims.UserID)
		if findErr != nil {
			return nil, nil, findErr
		}
		if patient == nil {
			return nil, nil, exceptions.ErrProfileNotFound(nil)
		}
		orders, total, err = uc.OrderRepository.ListByPatient(ctx, patient.PatientID, request.Status, pageSize, offset)
	case constvars.RoleShop:
		shop, findErr := uc.UserRepository.FindShopByUserID(ctx, claims.UserID)
		if findErr != nil {
			return nil, nil, findErr
		}
		if shop == nil {
			return nil, nil, exceptions.ErrProfileNotFound(nil)
		}
		orders, total, err = uc.OrderRepository.ListByShop(ctx, shop.ShopID, request.Status, pageSize, offset)
	default:
		return nil, nil, exceptions.ErrRoleNotAllowed(nil)
	}
	if err != nil {
		return nil, nil, err
	}

	result := make([]responses.MedicineOrder, 0, len(orders))
	for _, order := range orders {
		result = append(result, toOrderResponse(&order))
	}

	pagination := utils.BuildPaginationResponse(int(total), page, pageSize, "/api/orders")
	return result, pagination, nil
}

func (uc *orderUsecase) UpdateStatus(ctx context.Context, claims *utils.TokenClaims, orderID uint, request *requests.UpdateOrderStatus) error {
	order, err := uc.OrderRepository.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return exceptions.ErrOrderNotFound(nil)
	}

	shop, err := uc.UserRepository.FindShopByUserID(ctx, claims.UserID)
	if err != nil {
		return err
	}
	if shop == nil || shop.ShopID != order.ShopID {
		return exceptions.ErrNotResourceOwner(nil)
	}

	if !validOrderTransition(order.Status, request.Status) {
		return exceptions.ErrInvalidStatusTransition(nil)
	}

	order.Status = request.Status
	if request.TrackingNumber != "" {
		order.TrackingNumber = request.TrackingNumber
	}
	if err := uc.OrderRepository.Update(ctx, order); err != nil {
		return err
	}

	utils.LogBusinessEvent(uc.Logger, "order_status_updated", utils.GetRequestID(ctx),
		zap.Uint("order_id", order.OrderID),
		zap.String("status", order.Status),
	)
	return nil
}

func (uc *orderUsecase) Cancel(ctx context.Context, claims *utils.TokenClaims, orderID uint, request *requests.CancelOrder) error {
	order, err := uc.OrderRepository.FindByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return exceptions.ErrOrderNotFound(nil)
	}

	if err := uc.checkCancelOwnership(ctx, claims, order); err != nil {
		return err
	}

	switch order.Status {
	case models.OrderStatusCancelled:
		return exceptions.ErrOrderAlreadyCancelled(nil)
	case models.OrderStatusDelivered:
		return exceptions.ErrCancelDeliveredOrder(nil)
	}

	order.Status = models.OrderStatusCancelled
	order.CancellationReason = request.CancellationReason
	if err := uc.OrderRepository.CancelWithRestock(ctx, order); err != nil {
		return err
	}

	utils.LogBusinessEvent(uc.Logger, "order_cancelled", utils.GetRequestID(ctx),
		zap.Uint("order_id", order.OrderID),
	)
	return nil
}

func (uc *orderUsecase) checkCancelOwnership(ctx context.Context, claims *utils.TokenClaims, order *models.MedicineOrder) error {
	switch claims.Role {
	case constvars.RolePatient:
		patient, err := uc.UserRepository.FindPatientByUserID(ctx, claims.UserID)
		if err != nil {
			return err
		}
		if patient == nil || patient.PatientID != order.PatientID {
			return exceptions.ErrNotResourceOwner(nil)
		}
	case constvars.RoleShop:
		shop, err := uc.UserRepository.FindShopByUserID(ctx, claims.UserID)
		if err != nil {
			return err
		}
		if shop == nil || shop.ShopID != order.ShopID {
			return exceptions.ErrNotResourceOwner(nil)
		}
	default:
		return exceptions.ErrRoleNotAllowed(nil)
	}
	return nil
}

// queueOrderConfirmationEmail is best effort, same policy as the payment
// confirmation mail.
func (uc *orderUsecase) queueOrderConfirmationEmail(ctx context.Context, email string, order *models.MedicineOrder) {
	if uc.MailerService == nil || email == "" {
		return
	}
	payload := &requests.EmailPayload{
		To:      email,
		Subject: "Order placed",
		Body: fmt.Sprintf(
			"Your medicine order #%d for %.2f (including %.2f delivery) has been placed.",
			order.OrderID, order.FinalAmount, order.DeliveryCharges,
		),
	}
	if err := uc.MailerService.QueueEmail(ctx, payload); err != nil {
		uc.Logger.Warn("failed to queue order confirmation email",
			zap.Uint("order_id", order.OrderID),
			zap.Error(err),
		)
	}
}

func validOrderTransition(current, next string) bool {
	switch next {
	case models.OrderStatusProcessing:
		return current == models.OrderStatusPending
	case models.OrderStatusReady:
		return current == models.OrderStatusProcessing
	case models.OrderStatusDelivered:
		return current == models.OrderStatusReady
	}
	return false
}

func toOrderResponse(order *models.MedicineOrder) responses.MedicineOrder {
	items := make([]responses.OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, responses.OrderItem{
			MedicineName: item.MedicineName,
			Quantity:     item.Quantity,
			Price:        item.Price,
			Subtotal:     item.Subtotal,
		})
	}
	return responses.MedicineOrder{
		OrderID:            order.OrderID,
		PatientID:          order.PatientID,
		ShopID:             order.ShopID,
		Items:              items,
		TotalAmount:        order.TotalAmount,
		DeliveryCharges:    order.DeliveryCharges,
		FinalAmount:        order.FinalAmount,
		DeliveryAddress:    order.DeliveryAddress,
		Status:             order.Status,
		PaymentStatus:      order.PaymentStatus,
		TrackingNumber:     order.TrackingNumber,
		CancellationReason: order.CancellationReason,
	}
}

func normalizePaging(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	return page, pageSize
}
