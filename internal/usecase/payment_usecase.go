package usecase

import (
	"context"
	"log"

	"huiqs/internal/domain/service"
	"huiqs/internal/infrastructure/ratelimit"
	"huiqs/pkg/errors"
)

type PaymentUseCase struct {
	gateway     service.PaymentGatewayService
	rateLimiter *ratelimit.RateLimiter
}

func NewPaymentUseCase(gateway service.PaymentGatewayService, rateLimiter *ratelimit.RateLimiter) *PaymentUseCase {
	return &PaymentUseCase{
		gateway:     gateway,
		rateLimiter: rateLimiter,
	}
}

type CreateAlipayOrderInput struct {
	OutTradeNo string
	Amount     string
	Subject    string
	ReturnURL  string
}

type CreateAlipayOrderResult struct {
	FormURL string `json:"form_url"`
	OrderID string `json:"order_id"`
}

// CreateAlipayOrder builds the signed page-pay form URL the client submits
// to the gateway. The payment itself settles out of band via the notify URL.
func (uc *PaymentUseCase) CreateAlipayOrder(ctx context.Context, userID string, input CreateAlipayOrderInput) (*CreateAlipayOrderResult, error) {
	allowed, waitTime := uc.rateLimiter.Allow(userID, "create_payment")
	if !allowed {
		log.Printf("CreateAlipayOrder Rate Limited: User %s must wait %v", userID, waitTime)
		return nil, errors.TooManyRequests("Rate limit exceeded. Please wait before creating another payment")
	}

	resp, err := uc.gateway.CreatePagePayment(ctx, service.PaymentGatewayRequest{
		OutTradeNo: input.OutTradeNo,
		Amount:     input.Amount,
		Subject:    input.Subject,
		ReturnURL:  input.ReturnURL,
	})
	if err != nil {
		log.Printf("CreateAlipayOrder Error: gateway call for trade %s failed: %v", input.OutTradeNo, err)
		return nil, errors.Internal("Failed to create Alipay order", err)
	}

	return &CreateAlipayOrderResult{
		FormURL: resp.FormURL,
		OrderID: resp.OrderID,
	}, nil
}
