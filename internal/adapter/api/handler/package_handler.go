package handler

import (
	"github.com/labstack/echo/v4"

	"huiqs/internal/usecase"
	"huiqs/pkg/errors"
	"huiqs/pkg/response"
)

type PackageHandler struct {
	packageUseCase *usecase.PackageUseCase
}

func NewPackageHandler(packageUseCase *usecase.PackageUseCase) *PackageHandler {
	return &PackageHandler{
		packageUseCase: packageUseCase,
	}
}

func (h *PackageHandler) IncrementViews(c echo.Context) error {
	packageID := c.Param("id")
	if packageID == "" {
		return response.Error(c, errors.BadRequest("Missing package id", nil))
	}

	if err := h.packageUseCase.IncrementViews(c.Request().Context(), packageID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"success": true})
}
