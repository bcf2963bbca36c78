package contracts

import "context"

type GatewayOrderInput struct {
	AmountInPaise int64
	Currency      string
	ReceiptID     string
	Notes         map[string]interface{}
}

type GatewayOrder struct {
	OrderID  string
	Amount   int64
	Currency string
}

type PaymentGatewayService interface {
	CreateOrder(ctx context.Context, input *GatewayOrderInput) (*GatewayOrder, error)
	KeyID() string
}
