package contracts

import (
	"context"

	"medibridge-service/internal/app/models"
	"medibridge-service/internal/pkg/dto/requests"
	"medibridge-service/internal/pkg/dto/responses"
	"medibridge-service/internal/pkg/utils"
)

type OrderRepository interface {
	CreateWithItems(ctx context.Context, order *models.MedicineOrder) error
	FindByID(ctx context.Context, orderID uint) (*models.MedicineOrder, error)
	ListByPatient(ctx context.Context, patientID uint, status string, limit, offset int) ([]models.MedicineOrder, int64, error)
	ListByShop(ctx context.Context, shopID uint, status string, limit, offset int) ([]models.MedicineOrder, int64, error)
	Update(ctx context.Context, order *models.MedicineOrder) error
	CancelWithRestock(ctx context.Context, order *models.MedicineOrder) error
}

type OrderUsecase interface {
	Create(ctx context.Context, claims *utils.TokenClaims, request *requests.CreateMedicineOrder) (*responses.CreateMedicineOrder, error)
	List(ctx context.Context, claims *utils.TokenClaims, request *requests.ListOrders) ([]responses.MedicineOrder, *responses.Pagination, error)
	UpdateStatus(ctx context.Context, claims *utils.TokenClaims, orderID uint, request *requests.UpdateOrderStatus) error
	Cancel(ctx context.Context, claims *utils.TokenClaims, orderID uint, request *requests.CancelOrder) error
}
