package handler

import (
	"github.com/labstack/echo/v4"

	"huiqs/internal/domain/entity"
	"huiqs/internal/usecase"
	"huiqs/pkg/logger"
	"huiqs/pkg/response"
)

type MessageHandler struct {
	messageUseCase *usecase.MessageUseCase
}

func NewMessageHandler(messageUseCase *usecase.MessageUseCase) *MessageHandler {
	return &MessageHandler{
		messageUseCase: messageUseCase,
	}
}

// GetMessages returns the viewer's unified message timeline. Fatal fetch
// errors fail soft: the client gets an empty list and the error stays in
// the logs.
func (h *MessageHandler) GetMessages(c echo.Context) error {
	userID := c.Get("uid").(string)
	tab := c.QueryParam("tab")

	messages, err := h.messageUseCase.GetTimeline(c.Request().Context(), userID, tab)
	if err != nil {
		logger.Error("GetMessages: fetch for user %s failed: %v", userID, err)
		return response.Success(c, []*entity.Message{})
	}

	if messages == nil {
		messages = []*entity.Message{}
	}

	return response.Success(c, messages)
}
