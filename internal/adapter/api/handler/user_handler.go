package handler

import (
	"github.com/labstack/echo/v4"

	"huiqs/internal/usecase"
	"huiqs/pkg/response"
	"huiqs/pkg/utils"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

// ListUsers returns the paginated profile listing for the admin console.
func (h *UserHandler) ListUsers(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	profiles, total, err := h.userUseCase.ListUsers(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, profiles, total, params.Page, params.PageSize)
}
