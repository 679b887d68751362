package handler

import (
	"net/http"

	"marketplace/internal/delivery/http/response"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReviewHandler holds dependencies for store review handlers.
type ReviewHandler struct {
	uc usecase.ReviewUsecase
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

type createReviewRequest struct {
	Rating  int    `json:"rating" validate:"required"`
	Comment string `json:"comment"`
}

type updateReviewRequest struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

// CreateReview creates the caller's review of a store.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return err
	}
	storeID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "無效的評論資料", nil)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.uc.CreateReview(c.Request().Context(), userID, usecase.CreateReviewInput{
		StoreID: storeID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review)
}

// UpdateReview applies a partial update to the caller's review.
func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return err
	}
	reviewID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req updateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "無效的評論資料", nil)
	}

	review, err := h.uc.UpdateReview(c.Request().Context(), userID, reviewID, usecase.UpdateReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, review)
}

// DeleteReview removes the caller's review.
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return err
	}
	reviewID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteReview(c.Request().Context(), userID, reviewID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "評論已刪除"})
}

// ListStoreReviews returns a store's reviews with its rating summary.
func (h *ReviewHandler) ListStoreReviews(c echo.Context) error {
	storeID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	limit, offset := pagination(c)

	output, err := h.uc.ListStoreReviews(c.Request().Context(), storeID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"reviews": output.Reviews,
		"summary": output.Summary,
	})
}
