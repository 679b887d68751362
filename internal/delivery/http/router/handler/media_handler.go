package handler

import (
	"net/http"

	"marketplace/internal/delivery/http/response"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MediaHandler holds dependencies for media upload handlers.
type MediaHandler struct {
	uc usecase.MediaUsecase
}

// NewMediaHandler is the constructor for MediaHandler, injected by Fx.
func NewMediaHandler(uc usecase.MediaUsecase) *MediaHandler {
	return &MediaHandler{uc: uc}
}

// UploadProductMedia accepts a multipart upload and attaches it to a listing.
func (h *MediaHandler) UploadProductMedia(c echo.Context) error {
	ownerID, err := UserIDFromContext(c)
	if err != nil {
		return err
	}
	productID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "缺少上傳檔案", nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	media, err := h.uc.UploadProductMedia(c.Request().Context(), ownerID, usecase.UploadMediaInput{
		ProductID:   productID,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		SizeBytes:   fileHeader.Size,
		Content:     file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, media)
}
