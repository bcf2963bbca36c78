package models

import "time"

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusReady      = "ready"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

type MedicineOrder struct {
	OrderID            uint                `gorm:"column:order_id;primaryKey;autoIncrement" json:"orderId"`
	PatientID          uint                `gorm:"column:patient_id;index;not null" json:"patientId"`
	ShopID             uint                `gorm:"column:shop_id;index;not null" json:"shopId"`
	TotalAmount        float64             `gorm:"column:total_amount;not null" json:"totalAmount"`
	DeliveryCharges    float64             `gorm:"column:delivery_charges;default:0" json:"deliveryCharges"`
	FinalAmount        float64             `gorm:"column:final_amount;not null" json:"finalAmount"`
	DeliveryAddress    string              `gorm:"column:delivery_address;type:text;not null" json:"deliveryAddress"`
	PrescriptionFile   string              `gorm:"column:prescription_file;size:512" json:"prescriptionFile"`
	Status             string              `gorm:"column:status;size:20;default:pending" json:"status"`
	PaymentStatus      string              `gorm:"column:payment_status;size:20;default:unpaid" json:"paymentStatus"`
	TrackingNumber     string              `gorm:"column:tracking_number;size:100" json:"trackingNumber"`
	CancellationReason string              `gorm:"column:cancellation_reason;type:text" json:"cancellationReason"`
	Items              []MedicineOrderItem `gorm:"foreignKey:OrderID;references:OrderID" json:"items"`
	CreatedAt          time.Time           `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt          time.Time           `gorm:"column:updated_at" json:"updatedAt"`
}

func (MedicineOrder) TableName() string { return "medicine_orders" }

type MedicineOrderItem struct {
	ItemID       uint    `gorm:"column:item_id;primaryKey;autoIncrement" json:"itemId"`
	OrderID      uint    `gorm:"column:order_id;index;not null" json:"orderId"`
	MedicineID   uint    `gorm:"column:medicine_id;not null" json:"medicineId"`
	MedicineName string  `gorm:"column:medicine_name;size:255;not null" json:"medicineName"`
	Quantity     int     `gorm:"column:quantity;not null" json:"quantity"`
	Price        float64 `gorm:"column:price;not null" json:"price"`
	Subtotal     float64 `gorm:"column:subtotal;not null" json:"subtotal"`
}

func (MedicineOrderItem) TableName() string { return "medicine_order_items" }
