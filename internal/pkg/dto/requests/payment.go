package requests

type CreatePaymentOrder struct {
	Type        string  `json:"type" validate:"required,payment_type"`
	ReferenceID uint    `json:"referenceId" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
}

type VerifyPayment struct {
	RazorpayOrderID   string `json:"razorpay_order_id" validate:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature" validate:"required"`
}

type RecordRefund struct {
	RefundID string  `json:"refundId" validate:"required"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Status   string  `json:"status" validate:"required"`
}
