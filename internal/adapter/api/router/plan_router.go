package router

import (
	"github.com/labstack/echo/v4"

	"huiqs/internal/adapter/api/handler"
	"huiqs/internal/adapter/api/middleware"
)

func SetupPlanRouter(e *echo.Echo, planHandler *handler.PlanHandler, authMiddleware *middleware.AuthMiddleware) {
	plans := e.Group("/v1/plans")
	plans.Use(authMiddleware.Authenticate)

	plans.POST("", planHandler.GeneratePlan)
}
