package handler

import (
	"github.com/labstack/echo/v4"

	"huiqs/internal/usecase"
	"huiqs/pkg/response"
)

type SmsHandler struct {
	smsUseCase *usecase.SmsUseCase
}

func NewSmsHandler(smsUseCase *usecase.SmsUseCase) *SmsHandler {
	return &SmsHandler{
		smsUseCase: smsUseCase,
	}
}

type sendSmsCodeRequest struct {
	Phone string `json:"phone" validate:"required"`
}

func (h *SmsHandler) SendCode(c echo.Context) error {
	var req sendSmsCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.smsUseCase.SendVerificationCode(c.Request().Context(), req.Phone); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "SMS code sent successfully"})
}
