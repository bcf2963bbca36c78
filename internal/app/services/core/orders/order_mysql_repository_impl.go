package orders

import (
	"context"
	"errors"

	"medibridge-service/internal/app/contracts"
	"medibridge-service/internal/app/models"
	"medibridge-service/internal/pkg/exceptions"

	"gorm.io/gorm"
)

type OrderMySQLRepository struct {
	DB *gorm.DB
}

func NewOrderMySQLRepository(db *gorm.DB) contracts.OrderRepository {
	return &OrderMySQLRepository{DB: db}
}

// CreateWithItems inserts the order and its items and decrements stock for
// every item in a single transaction. The decrement is conditional on the
// remaining stock, so a concurrent order for the last units rolls the whole
// order back instead of driving stock negative.
func (r *OrderMySQLRepository) CreateWithItems(ctx context.Context, order *models.MedicineOrder) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := order.Items
		order.Items = nil
		if err := tx.Create(order).Error; err != nil {
			return exceptions.ErrMySQLInsertData(err)
		}

		for i := range items {
			items[i].OrderID = order.OrderID

			result := tx.Model(&models.Medicine{}).
				Where("medicine_id = ? AND stock >= ?", items[i].MedicineID, items[i].Quantity).
				Update("stock", gorm.Expr("stock - ?", items[i].Quantity))
			if result.Error != nil {
				return exceptions.ErrMySQLUpdateData(result.Error)
			}
			if result.RowsAffected == 0 {
				return exceptions.ErrInsufficientStock(nil)
			}

			if err := tx.Create(&items[i]).Error; err != nil {
				return exceptions.ErrMySQLInsertData(err)
			}
		}
		order.Items = items
		return nil
	})
}

func (r *OrderMySQLRepository) FindByID(ctx context.Context, orderID uint) (*models.MedicineOrder, error) {
	var order models.MedicineOrder
	err := r.DB.WithContext(ctx).Preload("Items").Where("order_id = ?", orderID).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, exceptions.ErrMySQLFindData(err)
	}
	return &order, nil
}

func (r *OrderMySQLRepository) ListByPatient(ctx context.Context, patientID uint, status string, limit, offset int) ([]models.MedicineOrder, int64, error) {
	return r.list(ctx, "patient_id = ?", patientID, status, limit, offset)
}

func (r *OrderMySQLRepository) ListByShop(ctx context.Context, shopID uint, status string, limit, offset int) ([]models.MedicineOrder, int64, error) {
	return r.list(ctx, "shop_id = ?", shopID, status, limit, offset)
}

func (r *OrderMySQLRepository) list(ctx context.Context, ownerClause string, ownerID uint, status string, limit, offset int) ([]models.MedicineOrder, int64, error) {
	query := r.DB.WithContext(ctx).Model(&models.MedicineOrder{}).Where(ownerClause, ownerID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, exceptions.ErrMySQLFindData(err)
	}

	var orders []models.MedicineOrder
	err := query.
		Preload("Items").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orders).Error
	if err != nil {
		return nil, 0, exceptions.ErrMySQLFindData(err)
	}
	return orders, total, nil
}

func (r *OrderMySQLRepository) Update(ctx context.Context, order *models.MedicineOrder) error {
	err := r.DB.WithContext(ctx).Omit("Items").Save(order).Error
	if err != nil {
		return exceptions.ErrMySQLUpdateData(err)
	}
	return nil
}

// CancelWithRestock persists the cancelled order and puts the ordered
// quantities back in the same transaction, so a failure mid-way leaves
// neither a cancelled order with lost stock nor restored stock on a live
// order.
func (r *OrderMySQLRepository) CancelWithRestock(ctx context.Context, order *models.MedicineOrder) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(order).Error; err != nil {
			return exceptions.ErrMySQLUpdateData(err)
		}

		var items []models.MedicineOrderItem
		if err := tx.Where("order_id = ?", order.OrderID).Find(&items).Error; err != nil {
			return exceptions.ErrMySQLFindData(err)
		}
		for _, item := range items {
			err := tx.Model(&models.Medicine{}).
				Where("medicine_id = ?", item.MedicineID).
				Update("stock", gorm.Expr("stock + ?", item.Quantity)).Error
			if err != nil {
				return exceptions.ErrMySQLUpdateData(err)
			}
		}
		return nil
	})
}
