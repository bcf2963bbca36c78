package payment_gateway

import (
	"context"

	"medibridge-service/internal/app/config"
	"medibridge-service/internal/app/contracts"
	"medibridge-service/internal/pkg/exceptions"

	razorpay "github.com/razorpay/razorpay-go"
)

type razorpayService struct {
	Client *razorpay.Client
	keyID  string
}

func NewRazorpayService(internalConfig *config.InternalConfig) contracts.PaymentGatewayService {
	client := razorpay.NewClient(internalConfig.Razorpay.KeyID, internalConfig.Razorpay.KeySecret)
	return &razorpayService{
		Client: client,
		keyID:  internalConfig.Razorpay.KeyID,
	}
}

func (s *razorpayService) CreateOrder(ctx context.Context, input *contracts.GatewayOrderInput) (*contracts.GatewayOrder, error) {
	body := map[string]interface{}{
		"amount":   input.AmountInPaise,
		"currency": input.Currency,
		"receipt":  input.ReceiptID,
	}
	if len(input.Notes) > 0 {
		body["notes"] = input.Notes
	}

	order, err := s.Client.Order.Create(body, nil)
	if err != nil {
		return nil, exceptions.ErrGatewayCreateOrder(err)
	}

	orderID, ok := order["id"].(string)
	if !ok || orderID == "" {
		return nil, exceptions.ErrGatewayCreateOrder(nil)
	}

	amount := input.AmountInPaise
	if value, ok := order["amount"].(float64); ok {
		amount = int64(value)
	}

	return &contracts.GatewayOrder{
		OrderID:  orderID,
		Amount:   amount,
		Currency: input.Currency,
	}, nil
}

func (s *razorpayService) KeyID() string {
	return s.keyID
}
