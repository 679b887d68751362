// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"time"

	"marketplace/config"
	"marketplace/internal/delivery/http/response"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account and session handlers.
type UserHandler struct {
	uc  usecase.UserUsecase
	cfg *config.Config
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, cfg *config.Config) *UserHandler {
	return &UserHandler{uc: uc, cfg: cfg}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type logoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type updateProfileRequest struct {
	Name      *string `json:"name"`
	AvatarURL *string `json:"avatar_url"`
	FCMToken  *string `json:"fcm_token"`
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "無效的註冊資料", nil)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.User)
}

// Login handles the user login request and issues the session cookie.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "無效的登入資料", nil)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.AccessToken)

	return response.Success(c, http.StatusOK, map[string]any{
		"access_token":  output.AccessToken,
		"refresh_token": output.RefreshToken,
		"user":          output.User,
	})
}

// Refresh rotates the token pair and reissues the session cookie.
func (h *UserHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "無效的重新整理資料", nil)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.RefreshTokens(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.AccessToken)

	return response.Success(c, http.StatusOK, map[string]any{
		"access_token":  output.AccessToken,
		"refresh_token": output.RefreshToken,
	})
}

// Logout revokes the session and clears the session cookie.
func (h *UserHandler) Logout(c echo.Context) error {
	var req logoutRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "無效的登出資料", nil)
	}

	if req.RefreshToken != "" {
		if err := h.uc.Logout(c.Request().Context(), req.RefreshToken); err != nil {
			return errors.WithStack(err)
		}
	}

	h.clearSessionCookie(c)

	return response.Success(c, http.StatusOK, map[string]string{"message": "已登出"})
}

// GetProfile returns the authenticated user's profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return err
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user)
}

// UpdateProfile applies a partial update to the authenticated user's profile.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := UserIDFromContext(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "無效的個人資料", nil)
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), userID, usecase.UpdateProfileInput{
		Name:      req.Name,
		AvatarURL: req.AvatarURL,
		FCMToken:  req.FCMToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user)
}

func (h *UserHandler) setSessionCookie(c echo.Context, accessToken string) {
	cookie := h.sessionCookie()
	cookie.Value = accessToken
	c.SetCookie(cookie)
}

func (h *UserHandler) clearSessionCookie(c echo.Context) {
	cookie := h.sessionCookie()
	cookie.Value = ""
	cookie.MaxAge = -1
	cookie.Expires = time.Unix(0, 0)
	c.SetCookie(cookie)
}

func (h *UserHandler) sessionCookie() *http.Cookie {
	cookie := &http.Cookie{
		Name:     "session",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if h.cfg.Session != nil {
		if h.cfg.Session.CookieName != "" {
			cookie.Name = h.cfg.Session.CookieName
		}
		cookie.Secure = h.cfg.Session.Secure
		cookie.Domain = h.cfg.Session.Domain
	}

	return cookie
}
