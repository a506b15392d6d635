package router

import (
	"github.com/labstack/echo/v4"

	"huiqs/internal/adapter/api/handler"
	"huiqs/internal/adapter/api/middleware"
)

func SetupMessageRouter(e *echo.Echo, messageHandler *handler.MessageHandler, authMiddleware *middleware.AuthMiddleware) {
	messages := e.Group("/v1/messages")
	messages.Use(authMiddleware.Authenticate)

	messages.GET("", messageHandler.GetMessages) // GET /v1/messages?tab=all|order|system
}
