package payments

import (
	"context"
	"errors"

	"medibridge-service/internal/app/contracts"
	"medibridge-service/internal/app/models"
	"medibridge-service/internal/pkg/exceptions"

	"gorm.io/gorm"
)

type PaymentMySQLRepository struct {
	DB *gorm.DB
}

func NewPaymentMySQLRepository(db *gorm.DB) contracts.PaymentRepository {
	return &PaymentMySQLRepository{DB: db}
}

func (r *PaymentMySQLRepository) Create(ctx context.Context, payment *models.Payment) error {
	if err := r.DB.WithContext(ctx).Create(payment).Error; err != nil {
		return exceptions.ErrMySQLInsertData(err)
	}
	return nil
}

func (r *PaymentMySQLRepository) FindByID(ctx context.Context, paymentID uint) (*models.Payment, error) {
	var payment models.Payment
	err := r.DB.WithContext(ctx).Where("payment_id = ?", paymentID).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, exceptions.ErrMySQLFindData(err)
	}
	return &payment, nil
}

func (r *PaymentMySQLRepository) FindByGatewayOrderID(ctx context.Context, razorpayOrderID string) (*models.Payment, error) {
	var payment models.Payment
	err := r.DB.WithContext(ctx).Where("razorpay_order_id = ?", razorpayOrderID).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, exceptions.ErrMySQLFindData(err)
	}
	return &payment, nil
}

// MarkSuccess flips the payment to success and marks the referenced
// appointment or order paid. It is a no-op when the payment already reached
// a terminal state, so duplicate webhook deliveries cannot double-apply.
func (r *PaymentMySQLRepository) MarkSuccess(ctx context.Context, razorpayOrderID, razorpayPaymentID, paymentMethod string) (*models.Payment, error) {
	var payment models.Payment
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("razorpay_order_id = ?", razorpayOrderID).First(&payment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return exceptions.ErrPaymentNotFound(nil)
			}
			return exceptions.ErrMySQLFindData(err)
		}
		if payment.Status != models.PaymentStatusCreated {
			return nil
		}

		payment.Status = models.PaymentStatusSuccess
		payment.RazorpayPaymentID = razorpayPaymentID
		payment.PaymentMethod = paymentMethod
		if err := tx.Save(&payment).Error; err != nil {
			return exceptions.ErrMySQLUpdateData(err)
		}
		return applyPaidState(tx, &payment)
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// MarkFailed records the failure but never overwrites a success.
func (r *PaymentMySQLRepository) MarkFailed(ctx context.Context, razorpayOrderID, razorpayPaymentID, reason string) (*models.Payment, error) {
	var payment models.Payment
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("razorpay_order_id = ?", razorpayOrderID).First(&payment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return exceptions.ErrPaymentNotFound(nil)
			}
			return exceptions.ErrMySQLFindData(err)
		}
		if payment.Status != models.PaymentStatusCreated {
			return nil
		}

		payment.Status = models.PaymentStatusFailed
		payment.RazorpayPaymentID = razorpayPaymentID
		payment.FailureReason = reason
		if err := tx.Save(&payment).Error; err != nil {
			return exceptions.ErrMySQLUpdateData(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentMySQLRepository) RecordRefund(ctx context.Context, paymentID uint, refundID string) error {
	var payment models.Payment
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("payment_id = ?", paymentID).First(&payment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return exceptions.ErrPaymentNotFound(nil)
			}
			return exceptions.ErrMySQLFindData(err)
		}
		if payment.Status != models.PaymentStatusSuccess {
			return exceptions.ErrInvalidStatusTransition(nil)
		}

		payment.Status = models.PaymentStatusRefunded
		payment.RefundID = refundID
		if err := tx.Save(&payment).Error; err != nil {
			return exceptions.ErrMySQLUpdateData(err)
		}
		return applyRefundedState(tx, &payment)
	})
}

func (r *PaymentMySQLRepository) ListByUser(ctx context.Context, userID uint, paymentType string, limit, offset int) ([]models.Payment, int64, error) {
	query := r.DB.WithContext(ctx).Model(&models.Payment{}).Where("user_id = ?", userID)
	if paymentType != "" {
		query = query.Where("payment_type = ?", paymentType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, exceptions.ErrMySQLFindData(err)
	}

	var payments []models.Payment
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&payments).Error
	if err != nil {
		return nil, 0, exceptions.ErrMySQLFindData(err)
	}
	return payments, total, nil
}

func applyPaidState(tx *gorm.DB, payment *models.Payment) error {
	switch payment.PaymentType {
	case models.PaymentTypeAppointment:
		err := tx.Model(&models.Appointment{}).
			Where("appointment_id = ?", payment.ReferenceID).
			Updates(map[string]interface{}{
				"payment_status": models.PaymentStatePaid,
				"status":         models.AppointmentStatusConfirmed,
			}).Error
		if err != nil {
			return exceptions.ErrMySQLUpdateData(err)
		}
	case models.PaymentTypeMedicineOrder:
		err := tx.Model(&models.MedicineOrder{}).
			Where("order_id = ?", payment.ReferenceID).
			Update("payment_status", models.PaymentStatePaid).Error
		if err != nil {
			return exceptions.ErrMySQLUpdateData(err)
		}
	}
	return nil
}

func applyRefundedState(tx *gorm.DB, payment *models.Payment) error {
	switch payment.PaymentType {
	case models.PaymentTypeAppointment:
		err := tx.Model(&models.Appointment{}).
			Where("appointment_id = ?", payment.ReferenceID).
			Update("payment_status", models.PaymentStateRefunded).Error
		if err != nil {
			return exceptions.ErrMySQLUpdateData(err)
		}
	case models.PaymentTypeMedicineOrder:
		err := tx.Model(&models.MedicineOrder{}).
			Where("order_id = ?", payment.ReferenceID).
			Update("payment_status", models.PaymentStateRefunded).Error
		if err != nil {
			return exceptions.ErrMySQLUpdateData(err)
		}
	}
	return nil
}
