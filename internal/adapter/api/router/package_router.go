package router

import (
	"github.com/labstack/echo/v4"

	"huiqs/internal/adapter/api/handler"
)

// SetupPackageRouter registers package endpoints. View counting is public
// so anonymous browsing still counts.
func SetupPackageRouter(e *echo.Echo, packageHandler *handler.PackageHandler) {
	e.POST("/v1/packages/:id/views", packageHandler.IncrementViews)
}
