package responses

type CreateMedicineOrder struct {
	OrderID         uint    `json:"orderId"`
	TotalAmount     float64 `json:"totalAmount"`
	DeliveryCharges float64 `json:"deliveryCharges"`
	FinalAmount     float64 `json:"finalAmount"`
}

type OrderItem struct {
	MedicineName string  `json:"medicineName"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	Subtotal     float64 `json:"subtotal"`
}

type MedicineOrder struct {
	OrderID            uint        `json:"orderId"`
	PatientID          uint        `json:"patientId"`
	ShopID             uint        `json:"shopId"`
	PatientName        string      `json:"patientName,omitempty"`
	ShopName           string      `json:"shopName,omitempty"`
	Items              []OrderItem `json:"medicines"`
	TotalAmount        float64     `json:"totalAmount"`
	DeliveryCharges    float64     `json:"deliveryCharges"`
	FinalAmount        float64     `json:"finalAmount"`
	DeliveryAddress    string      `json:"deliveryAddress"`
	Status             string      `json:"status"`
	PaymentStatus      string      `json:"paymentStatus"`
	TrackingNumber     string      `json:"trackingNumber,omitempty"`
	CancellationReason string      `json:"cancellationReason,omitempty"`
}
