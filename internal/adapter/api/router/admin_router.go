package router

import (
	"github.com/labstack/echo/v4"

	"huiqs/internal/adapter/api/handler"
	"huiqs/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, userHandler *handler.UserHandler, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("/users", userHandler.ListUsers)
}
