package requests

type OrderMedicine struct {
	MedicineID   uint    `json:"medicineId" validate:"required"`
	MedicineName string  `json:"medicineName" validate:"required"`
	Quantity     int     `json:"quantity" validate:"required,gt=0"`
	Price        float64 `json:"price" validate:"required,gt=0"`
}

type CreateMedicineOrder struct {
	ShopID           uint            `json:"shopId" validate:"required"`
	Medicines        []OrderMedicine `json:"medicines" validate:"required,min=1,dive"`
	DeliveryAddress  string          `json:"deliveryAddress" validate:"required"`
	PrescriptionFile string          `json:"prescriptionFile,omitempty"`
}

type UpdateOrderStatus struct {
	Status         string `json:"status" validate:"required,oneof=processing ready delivered"`
	TrackingNumber string `json:"trackingNumber,omitempty"`
}

type CancelOrder struct {
	CancellationReason string `json:"cancellationReason" validate:"required"`
}

type ListOrders struct {
	Status   string
	Page     int
	PageSize int
}
