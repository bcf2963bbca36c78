package responses

type CreatePaymentOrder struct {
	OrderID       string  `json:"orderId"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	RazorpayKeyID string  `json:"razorpayKeyId"`
}

type VerifyPayment struct {
	PaymentID string `json:"paymentId"`
	Status    string `json:"status"`
}

type Payment struct {
	PaymentID         uint    `json:"paymentId"`
	PaymentType       string  `json:"paymentType"`
	ReferenceID       uint    `json:"referenceId"`
	Amount            float64 `json:"amount"`
	Currency          string  `json:"currency"`
	RazorpayOrderID   string  `json:"razorpayOrderId"`
	RazorpayPaymentID string  `json:"razorpayPaymentId,omitempty"`
	PaymentMethod     string  `json:"paymentMethod,omitempty"`
	Status            string  `json:"status"`
	CreatedAt         string  `json:"createdAt"`
}

type Upload struct {
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
}
