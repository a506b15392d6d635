package router

import (
	"github.com/labstack/echo/v4"

	"huiqs/internal/adapter/api/handler"
)

// SetupSmsRouter registers the verification code endpoint. It is public:
// codes are requested during signup, before any session exists.
func SetupSmsRouter(e *echo.Echo, smsHandler *handler.SmsHandler) {
	e.POST("/v1/sms/code", smsHandler.SendCode)
}
