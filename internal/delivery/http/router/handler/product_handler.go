package handler

import (
	"net/http"
	"time"

	"marketplace/internal/delivery/http/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for product and service listing handlers.
// The same handlers back both the /products and /services route groups; the
// listing kind is data, not a separate surface.
type ProductHandler struct {
	uc usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

type variationRequest struct {
	Name  string  `json:"name" validate:"required"`
	Value string  `json:"value" validate:"required"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

type createProductRequest struct {
	StoreID              uuid.UUID          `json:"store_id" validate:"required"`
	Kind                 string             `json:"kind" validate:"required"`
	Title                string             `json:"title" validate:"required"`
	Description          string             `json:"description"`
	Price                float64            `json:"price"`
	Currency             string             `json:"currency"`
	ScheduledPublishAt   *time.Time         `json:"scheduled_publish_at"`
	ScheduledUnpublishAt *time.Time         `json:"scheduled_unpublish_at"`
	Variations           []variationRequest `json:"variations"`
}

type updateProductRequest struct {
	Title                   *string            `json:"title"`
	Description             *string            `json:"description"`
	Price                   *float64           `json:"price"`
	Currency                *string            `json:"currency"`
	Status                  *string            `json:"status"`
	ScheduledPublishAt      *time.Time         `json:"scheduled_publish_at"`
	ClearScheduledPublish   bool               `json:"clear_scheduled_publish"`
	ScheduledUnpublishAt    *time.Time         `json:"scheduled_unpublish_at"`
	ClearScheduledUnpublish bool               `json:"clear_scheduled_unpublish"`
	Variations              []variationRequest `json:"variations"`
}

// CreateProduct creates a new product or service listing.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	ownerID, err := UserIDFromContext(c)
	if err != nil {
		return err
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "無效的商品資料", nil)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), ownerID, usecase.CreateProductInput{
		StoreID:              req.StoreID,
		Kind:                 entity.ProductKind(req.Kind),
		Title:                req.Title,
		Description:          req.Description,
		Price:                req.Price,
		Currency:             req.Currency,
		ScheduledPublishAt:   req.ScheduledPublishAt,
		ScheduledUnpublishAt: req.ScheduledUnpublishAt,
		Variations:           toVariationInputs(req.Variations),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product)
}

// GetProduct returns a single listing.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	product, err := h.uc.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product)
}

// ListProducts returns listings filtered by store, kind, status and search.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	limit, offset := pagination(c)

	input := usecase.ListProductsInput{
		Search: c.QueryParam("search"),
		Limit:  limit,
		Offset: offset,
	}
	if raw := c.QueryParam("store_id"); raw != "" {
		storeID, err := uuid.Parse(raw)
		if err != nil {
			return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "無效的商店識別碼", nil)
		}
		input.StoreID = &storeID
	}
	if raw := c.QueryParam("kind"); raw != "" {
		kind := entity.ProductKind(raw)
		input.Kind = &kind
	}
	if raw := c.QueryParam("status"); raw != "" {
		status := entity.ProductStatus(raw)
		input.Status = &status
	}

	output, err := h.uc.ListProducts(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"products": output.Products,
		"total":    output.Total,
	})
}

// UpdateProduct applies a partial update to a listing.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	ownerID, err := UserIDFromContext(c)
	if err != nil {
		return err
	}
	productID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "無效的商品資料", nil)
	}

	input := usecase.UpdateProductInput{
		Title:                   req.Title,
		Description:             req.Description,
		Price:                   req.Price,
		Currency:                req.Currency,
		ScheduledPublishAt:      req.ScheduledPublishAt,
		ClearScheduledPublish:   req.ClearScheduledPublish,
		ScheduledUnpublishAt:    req.ScheduledUnpublishAt,
		ClearScheduledUnpublish: req.ClearScheduledUnpublish,
		Variations:              toVariationInputs(req.Variations),
	}
	if req.Status != nil {
		status := entity.ProductStatus(*req.Status)
		input.Status = &status
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), ownerID, productID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product)
}

// DeleteProduct removes a listing.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	ownerID, err := UserIDFromContext(c)
	if err != nil {
		return err
	}
	productID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), ownerID, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "商品已刪除"})
}

func toVariationInputs(reqs []variationRequest) []usecase.VariationInput {
	if len(reqs) == 0 {
		return nil
	}

	variations := make([]usecase.VariationInput, 0, len(reqs))
	for _, req := range reqs {
		variations = append(variations, usecase.VariationInput{
			Name:  req.Name,
			Value: req.Value,
			Price: req.Price,
			Stock: req.Stock,
		})
	}

	return variations
}
