package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"
)

// ChatHandler serves the AI-assisted product recommendation chat.
type ChatHandler struct {
	chatUsecase usecase.ChatUsecase
	logger      *slog.Logger
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chatUsecase usecase.ChatUsecase, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		chatUsecase: chatUsecase,
		logger:      logger,
	}
}

// Chat handles POST /chat.
func (h *ChatHandler) Chat(c echo.Context) error {
	input := new(usecase.ChatInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request format")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	output, err := h.chatUsecase.Chat(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}
