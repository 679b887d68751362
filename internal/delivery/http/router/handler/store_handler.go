package handler

import (
	"net/http"

	"marketplace/internal/delivery/http/response"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StoreHandler holds dependencies for store and brand handlers.
type StoreHandler struct {
	uc usecase.StoreUsecase
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(uc usecase.StoreUsecase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

type createStoreRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	LogoURL     string `json:"logo_url"`
	CoverURL    string `json:"cover_url"`
}

type updateStoreRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	LogoURL     *string `json:"logo_url"`
	CoverURL    *string `json:"cover_url"`
}

// CreateStore opens a new store owned by the caller.
func (h *StoreHandler) CreateStore(c echo.Context) error {
	ownerID, err := UserIDFromContext(c)
	if err != nil {
		return err
	}

	var req createStoreRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "無效的商店資料", nil)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	store, err := h.uc.CreateStore(c.Request().Context(), ownerID, usecase.CreateStoreInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		LogoURL:     req.LogoURL,
		CoverURL:    req.CoverURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, store)
}

// GetStore returns a store's public page.
func (h *StoreHandler) GetStore(c echo.Context) error {
	storeID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	store, err := h.uc.GetStore(c.Request().Context(), storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store)
}

// ListStores returns the public store directory.
func (h *StoreHandler) ListStores(c echo.Context) error {
	limit, offset := pagination(c)

	output, err := h.uc.ListStores(c.Request().Context(), usecase.ListStoresInput{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"stores": output.Stores,
		"total":  output.Total,
	})
}

// ListOwnStores returns the caller's stores.
func (h *StoreHandler) ListOwnStores(c echo.Context) error {
	ownerID, err := UserIDFromContext(c)
	if err != nil {
		return err
	}

	stores, err := h.uc.ListOwnStores(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stores)
}

// UpdateStore applies a partial update to the caller's store.
func (h *StoreHandler) UpdateStore(c echo.Context) error {
	ownerID, err := UserIDFromContext(c)
	if err != nil {
		return err
	}
	storeID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req updateStoreRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "無效的商店資料", nil)
	}

	store, err := h.uc.UpdateStore(c.Request().Context(), ownerID, storeID, usecase.UpdateStoreInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		LogoURL:     req.LogoURL,
		CoverURL:    req.CoverURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store)
}

// DeleteStore removes the caller's store.
func (h *StoreHandler) DeleteStore(c echo.Context) error {
	ownerID, err := UserIDFromContext(c)
	if err != nil {
		return err
	}
	storeID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteStore(c.Request().Context(), ownerID, storeID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "商店已刪除"})
}

// GetStoreShareQR renders a PNG QR code linking to the store page.
func (h *StoreHandler) GetStoreShareQR(c echo.Context) error {
	storeID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	png, err := h.uc.GetStoreShareQR(c.Request().Context(), storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
