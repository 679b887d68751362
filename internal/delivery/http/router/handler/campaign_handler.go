package handler

import (
	"net/http"

	"marketplace/internal/delivery/http/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CampaignHandler holds dependencies for influencer campaign handlers.
type CampaignHandler struct {
	uc usecase.CampaignUsecase
}

// NewCampaignHandler is the constructor for CampaignHandler, injected by Fx.
func NewCampaignHandler(uc usecase.CampaignUsecase) *CampaignHandler {
	return &CampaignHandler{uc: uc}
}

type createCampaignRequest struct {
	StoreID          uuid.UUID      `json:"store_id" validate:"required"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	Budget           float64        `json:"budget"`
	Currency         string         `json:"currency"`
	Type             string         `json:"type" validate:"required"`
	ProductID        *uuid.UUID     `json:"product_id"`
	TypeSpecificData map[string]any `json:"type_specific_data"`
}

type updateCampaignRequest struct {
	Title            *string        `json:"title"`
	Description      *string        `json:"description"`
	Budget           *float64       `json:"budget"`
	Currency         *string        `json:"currency"`
	Type             *string        `json:"type"`
	ProductID        *uuid.UUID     `json:"product_id"`
	TypeSpecificData map[string]any `json:"type_specific_data"`
}

type applyCampaignRequest struct {
	Message string `json:"message"`
}

// CreateCampaign creates a draft campaign for the caller's store.
func (h *CampaignHandler) CreateCampaign(c echo.Context) error {
	ownerID, err := UserIDFromContext(c)
	if err != nil {
		return err
	}

	var req createCampaignRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "無效的活動資料", nil)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	campaign, err := h.uc.CreateCampaign(c.Request().Context(), ownerID, usecase.CreateCampaignInput{
		StoreID:          req.StoreID,
		Title:            req.Title,
		Description:      req.Description,
		Budget:           req.Budget,
		Currency:         req.Currency,
		Type:             entity.CampaignType(req.Type),
		ProductID:        req.ProductID,
		TypeSpecificData: req.TypeSpecificData,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, campaign)
}

// GetCampaign returns a single campaign.
func (h *CampaignHandler) GetCampaign(c echo.Context) error {
	campaignID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	campaign, err := h.uc.GetCampaign(c.Request().Context(), campaignID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, campaign)
}

// ListCampaigns returns campaigns filtered by store, status and type.
func (h *CampaignHandler) ListCampaigns(c echo.Context) error {
	limit, offset := pagination(c)

	input := usecase.ListCampaignsInput{
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
	if raw := c.QueryParam("status"); raw != "" {
		status := entity.CampaignStatus(raw)
		input.Status = &status
	}
	if raw := c.QueryParam("type"); raw != "" {
		campaignType := entity.CampaignType(raw)
		input.Type = &campaignType
	}

	output, err := h.uc.ListCampaigns(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"campaigns": output.Campaigns,
		"total":     output.Total,
	})
}

// UpdateCampaign applies a partial update to a draft campaign.
func (h *CampaignHandler) UpdateCampaign(c echo.Context) error {
	ownerID, err := UserIDFromContext(c)
	if err != nil {
		return err
	}
	campaignID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req updateCampaignRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "無效的活動資料", nil)
	}

	input := usecase.UpdateCampaignInput{
		Title:            req.Title,
		Description:      req.Description,
		Budget:           req.Budget,
		Currency:         req.Currency,
		ProductID:        req.ProductID,
		TypeSpecificData: req.TypeSpecificData,
	}
	if req.Type != nil {
		campaignType := entity.CampaignType(*req.Type)
		input.Type = &campaignType
	}

	campaign, err := h.uc.UpdateCampaign(c.Request().Context(), ownerID, campaignID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, campaign)
}

// PublishCampaign moves a complete draft campaign to published.
func (h *CampaignHandler) PublishCampaign(c echo.Context) error {
	ownerID, err := UserIDFromContext(c)
	if err != nil {
		return err
	}
	campaignID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	campaign, err := h.uc.PublishCampaign(c.Request().Context(), ownerID, campaignID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, campaign)
}

// DeleteCampaign removes a draft campaign.
func (h *CampaignHandler) DeleteCampaign(c echo.Context) error {
	ownerID, err := UserIDFromContext(c)
	if err != nil {
		return err
	}
	campaignID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteCampaign(c.Request().Context(), ownerID, campaignID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "活動已刪除"})
}

// ApplyToCampaign submits the caller's influencer application.
func (h *CampaignHandler) ApplyToCampaign(c echo.Context) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return err
	}
	campaignID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req applyCampaignRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "無效的申請資料", nil)
	}

	application, err := h.uc.ApplyToCampaign(c.Request().Context(), userID, usecase.ApplyToCampaignInput{
		CampaignID: campaignID,
		Message:    req.Message,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, application)
}

// ListApplications returns a campaign's applications to the store owner.
func (h *CampaignHandler) ListApplications(c echo.Context) error {
	ownerID, err := UserIDFromContext(c)
	if err != nil {
		return err
	}
	campaignID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	applications, err := h.uc.ListApplications(c.Request().Context(), ownerID, campaignID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, applications)
}

// ListOwnApplications returns the caller's own applications.
func (h *CampaignHandler) ListOwnApplications(c echo.Context) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return err
	}

	applications, err := h.uc.ListOwnApplications(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, applications)
}

// SelectInfluencer marks one application as selected and notifies the influencer.
func (h *CampaignHandler) SelectInfluencer(c echo.Context) error {
	ownerID, err := UserIDFromContext(c)
	if err != nil {
		return err
	}
	campaignID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	applicationID, err := uuidParam(c, "applicationId")
	if err != nil {
		return err
	}

	application, err := h.uc.SelectInfluencer(c.Request().Context(), ownerID, campaignID, applicationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, application)
}
