package handler

import (
	"net/http"

	"marketplace/internal/delivery/http/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// InfluencerHandler holds dependencies for influencer profile handlers.
type InfluencerHandler struct {
	uc usecase.InfluencerUsecase
}

// NewInfluencerHandler is the constructor for InfluencerHandler, injected by Fx.
func NewInfluencerHandler(uc usecase.InfluencerUsecase) *InfluencerHandler {
	return &InfluencerHandler{uc: uc}
}

type socialAccountRequest struct {
	Platform      string `json:"platform" validate:"required"`
	Handle        string `json:"handle" validate:"required"`
	URL           string `json:"url"`
	FollowerCount int    `json:"follower_count"`
}

type registerInfluencerRequest struct {
	DisplayName    string                 `json:"display_name" validate:"required"`
	Bio            string                 `json:"bio"`
	SocialAccounts []socialAccountRequest `json:"social_accounts"`
}

type updateInfluencerRequest struct {
	DisplayName    *string                `json:"display_name"`
	Bio            *string                `json:"bio"`
	SocialAccounts []socialAccountRequest `json:"social_accounts"`
}

// RegisterInfluencer creates the caller's influencer profile, pending review.
func (h *InfluencerHandler) RegisterInfluencer(c echo.Context) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return err
	}

	var req registerInfluencerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "無效的網紅資料", nil)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	influencer, err := h.uc.RegisterInfluencer(c.Request().Context(), userID, usecase.RegisterInfluencerInput{
		DisplayName:    req.DisplayName,
		Bio:            req.Bio,
		SocialAccounts: toSocialAccountInputs(req.SocialAccounts),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, influencer)
}

// GetInfluencer returns an influencer's public profile.
func (h *InfluencerHandler) GetInfluencer(c echo.Context) error {
	influencerID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	influencer, err := h.uc.GetInfluencer(c.Request().Context(), influencerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, influencer)
}

// GetOwnProfile returns the caller's influencer profile.
func (h *InfluencerHandler) GetOwnProfile(c echo.Context) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return err
	}

	influencer, err := h.uc.GetOwnProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, influencer)
}

// ResetProfile deletes the caller's influencer profile and demotes the role.
func (h *InfluencerHandler) ResetProfile(c echo.Context) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return err
	}

	if err := h.uc.ResetProfile(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"reset": true})
}

// ListInfluencers returns influencer profiles, optionally filtered by status.
func (h *InfluencerHandler) ListInfluencers(c echo.Context) error {
	limit, offset := pagination(c)

	input := usecase.ListInfluencersInput{
		Limit:  limit,
		Offset: offset,
	}
	if raw := c.QueryParam("status"); raw != "" {
		status := entity.InfluencerStatus(raw)
		input.Status = &status
	}

	output, err := h.uc.ListInfluencers(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"influencers": output.Influencers,
		"total":       output.Total,
	})
}

// UpdateProfile applies a partial update to the caller's influencer profile.
func (h *InfluencerHandler) UpdateProfile(c echo.Context) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return err
	}

	var req updateInfluencerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "無效的網紅資料", nil)
	}

	input := usecase.UpdateInfluencerInput{
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
	}
	if req.SocialAccounts != nil {
		input.SocialAccounts = toSocialAccountInputs(req.SocialAccounts)
	}

	influencer, err := h.uc.UpdateProfile(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, influencer)
}

// ApproveInfluencer moves a pending profile to approved.
func (h *InfluencerHandler) ApproveInfluencer(c echo.Context) error {
	influencerID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	influencer, err := h.uc.ApproveInfluencer(c.Request().Context(), influencerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, influencer)
}

func toSocialAccountInputs(reqs []socialAccountRequest) []usecase.SocialAccountInput {
	if len(reqs) == 0 {
		return []usecase.SocialAccountInput{}
	}

	accounts := make([]usecase.SocialAccountInput, 0, len(reqs))
	for _, req := range reqs {
		accounts = append(accounts, usecase.SocialAccountInput{
			Platform:      req.Platform,
			Handle:        req.Handle,
			URL:           req.URL,
			FollowerCount: req.FollowerCount,
		})
	}

	return accounts
}
