package handler

import (
	"github.com/labstack/echo/v4"

	"huiqs/internal/usecase"
	"huiqs/pkg/response"
)

type PlanHandler struct {
	planUseCase *usecase.PlanUseCase
}

func NewPlanHandler(planUseCase *usecase.PlanUseCase) *PlanHandler {
	return &PlanHandler{
		planUseCase: planUseCase,
	}
}

type generatePlanRequest struct {
	From        string   `json:"from" validate:"required"`
	To          string   `json:"to" validate:"required"`
	Date        string   `json:"date" validate:"required"`
	Days        int      `json:"days" validate:"required,min=1,max=30"`
	Preferences []string `json:"preferences,omitempty"`
}

func (h *PlanHandler) GeneratePlan(c echo.Context) error {
	var req generatePlanRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	planText, err := h.planUseCase.GeneratePlan(usecase.GeneratePlanInput{
		From:        req.From,
		To:          req.To,
		Date:        req.Date,
		Days:        req.Days,
		Preferences: req.Preferences,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"plan_text": planText})
}
