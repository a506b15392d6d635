package handler

import (
	"github.com/labstack/echo/v4"

	"huiqs/internal/usecase"
	"huiqs/pkg/response"
)

type PaymentHandler struct {
	paymentUseCase *usecase.PaymentUseCase
}

func NewPaymentHandler(paymentUseCase *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
	}
}

type createAlipayOrderRequest struct {
	OutTradeNo string `json:"out_trade_no" validate:"required"`
	Amount     string `json:"amount" validate:"required"`
	Subject    string `json:"subject" validate:"required"`
	ReturnURL  string `json:"return_url,omitempty" validate:"omitempty,url"`
}

// CreateAlipayOrder initiates a page-pay flow and returns the form URL the
// client submits to the gateway.
func (h *PaymentHandler) CreateAlipayOrder(c echo.Context) error {
	var req createAlipayOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	result, err := h.paymentUseCase.CreateAlipayOrder(c.Request().Context(), userID, usecase.CreateAlipayOrderInput{
		OutTradeNo: req.OutTradeNo,
		Amount:     req.Amount,
		Subject:    req.Subject,
		ReturnURL:  req.ReturnURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
