package models

import "time"

const (
	PaymentStatusCreated  = "created"
	PaymentStatusSuccess  = "success"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

const (
	PaymentTypeAppointment    = "appointment"
	PaymentTypeDiagnosticTest = "diagnostic-test"
	PaymentTypeMedicineOrder  = "medicine-order"
)

type Payment struct {
	PaymentID         uint      `gorm:"column:payment_id;primaryKey;autoIncrement" json:"paymentId"`
	UserID            uint      `gorm:"column:user_id;index;not null" json:"userId"`
	PaymentType       string    `gorm:"column:payment_type;size:30;not null" json:"paymentType"`
	ReferenceID       uint      `gorm:"column:reference_id;not null" json:"referenceId"`
	Amount            float64   `gorm:"column:amount;not null" json:"amount"`
	Currency          string    `gorm:"column:currency;size:10;default:INR" json:"currency"`
	ReceiptID         string    `gorm:"column:receipt_id;size:50" json:"receiptId"`
	RazorpayOrderID   string    `gorm:"column:razorpay_order_id;size:100;uniqueIndex" json:"razorpayOrderId"`
	RazorpayPaymentID string    `gorm:"column:razorpay_payment_id;size:100" json:"razorpayPaymentId"`
	PaymentMethod     string    `gorm:"column:payment_method;size:50" json:"paymentMethod"`
	Status            string    `gorm:"column:status;size:20;default:created" json:"status"`
	FailureReason     string    `gorm:"column:failure_reason;type:text" json:"failureReason"`
	RefundID          string    `gorm:"column:refund_id;size:100" json:"refundId"`
	CreatedAt         time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt         time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Payment) TableName() string { return "payments" }
