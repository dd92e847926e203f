package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"
)

// MediaHandler handles image uploads for the catalog.
type MediaHandler struct {
	mediaUsecase usecase.MediaUsecase
	logger       *slog.Logger
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(mediaUsecase usecase.MediaUsecase, logger *slog.Logger) *MediaHandler {
	return &MediaHandler{
		mediaUsecase: mediaUsecase,
		logger:       logger,
	}
}

// UploadImage handles POST /admin/upload. The image arrives as the "file"
// part of a multipart form.
func (h *MediaHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Missing file in multipart form")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return errors.WithStack(err)
	}

	stored, err := h.mediaUsecase.UploadImage(c.Request().Context(), fileHeader.Filename, data)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, stored, "Image uploaded")
}

// DeleteImage handles DELETE /admin/upload/:key.
func (h *MediaHandler) DeleteImage(c echo.Context) error {
	key := c.Param("key")
	if err := h.mediaUsecase.DeleteImage(c.Request().Context(), key); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Image deleted")
}
