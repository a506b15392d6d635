package router

import (
	"huiqs/internal/adapter/api/handler"
	"huiqs/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Message *handler.MessageHandler
	Payment *handler.PaymentHandler
	Sms     *handler.SmsHandler
	Plan    *handler.PlanHandler
	Package *handler.PackageHandler
	User    *handler.UserHandler
}

func Setup(e *echo.Echo, h Handlers, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupMessageRouter(e, h.Message, authMiddleware)
	SetupPaymentRouter(e, h.Payment, authMiddleware)
	SetupSmsRouter(e, h.Sms)
	SetupPlanRouter(e, h.Plan, authMiddleware)
	SetupPackageRouter(e, h.Package)
	SetupAdminRouter(e, h.User, authMiddleware, adminMiddleware)
}
