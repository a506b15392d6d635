package service

import "context"

// PaymentGatewayRequest carries what the gateway needs to start a page-pay
// flow. Amount is the decimal string the gateway expects (e.g. "1299.00").
type PaymentGatewayRequest struct {
	OutTradeNo string
	Amount     string
	Subject    string
	ReturnURL  string
}

type PaymentGatewayResponse struct {
	FormURL string
	OrderID string
}

type PaymentGatewayService interface {
	CreatePagePayment(ctx context.Context, req PaymentGatewayRequest) (*PaymentGatewayResponse, error)
}
