package handler

import (
	"net/http"

	"github.com/Astemirdum/bookreview-service/bookreview/internal/errs"
	"github.com/Astemirdum/bookreview-service/bookreview/internal/model"
	"github.com/Astemirdum/bookreview-service/pkg/auth"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CreateToken godoc
// @Summary  Obtain an access/refresh token pair
// @Tags     accounts
// @Accept   json
// @Produce  json
// @Param    credentials body model.TokenCreateRequest true "credentials"
// @Success  200 {object} model.TokenPair
// @Failure  401 {object} echo.HTTPError
// @Router   /accounts/jwt/create [post]
func (h *Handler) CreateToken(c echo.Context) error {
	var req model.TokenCreateRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	pair, err := h.accounts.CreateToken(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, pair)
}

// RefreshToken godoc
// @Summary  Exchange a refresh token for a new access token
// @Tags     accounts
// @Accept   json
// @Produce  json
// @Param    token body model.TokenRefreshRequest true "refresh token"
// @Success  200 {object} model.TokenPair
// @Failure  401 {object} echo.HTTPError
// @Router   /accounts/jwt/refresh [post]
func (h *Handler) RefreshToken(c echo.Context) error {
	var req model.TokenRefreshRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	pair, err := h.accounts.RefreshToken(c.Request().Context(), req.Refresh)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, pair)
}

// VerifyToken godoc
// @Summary  Check a token
// @Tags     accounts
// @Accept   json
// @Produce  json
// @Param    token body model.TokenVerifyRequest true "token"
// @Success  200
// @Failure  401 {object} echo.HTTPError
// @Router   /accounts/jwt/verify [post]
func (h *Handler) VerifyToken(c echo.Context) error {
	var req model.TokenVerifyRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.accounts.VerifyToken(c.Request().Context(), req.Token); err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, struct{}{})
}

// Logout godoc
// @Summary  Revoke the presented access token
// @Tags     accounts
// @Success  204
// @Failure  401 {object} echo.HTTPError
// @Security Bearer
// @Router   /accounts/token/logout [post]
func (h *Handler) Logout(c echo.Context) error {
	claims, err := auth.GetClaims(c.Request().Context())
	if err != nil {
		return h.httpError(c, errs.ErrAuthRequired)
	}
	if err := h.accounts.Logout(c.Request().Context(), claims); err != nil {
		return h.httpError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ChangePassword godoc
// @Summary  Change the caller's password
// @Tags     accounts
// @Accept   json
// @Produce  json
// @Param    passwords body model.ChangePasswordRequest true "old and new password"
// @Success  200 {object} model.DetailResponse
// @Failure  400 {object} model.DetailResponse
// @Security Bearer
// @Router   /accounts/change-password [put]
func (h *Handler) ChangePassword(c echo.Context) error {
	var req model.ChangePasswordRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	err := h.accounts.ChangePassword(c.Request().Context(), caller(c), req)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, model.DetailResponse{Detail: "password changed successfully"})
	case errors.Is(err, errs.ErrPasswordMismatch):
		return echo.NewHTTPError(http.StatusBadRequest, model.DetailResponse{Detail: err.Error()})
	case errors.Is(err, errs.ErrWrongPassword):
		return echo.NewHTTPError(http.StatusBadRequest, map[string][]string{"old_password": {err.Error()}})
	}
	if verr, ok := errs.IsValidation(err); ok {
		fields := make(map[string][]string, len(verr.Fields))
		for k, v := range verr.Fields {
			fields[k] = []string{v}
		}
		return echo.NewHTTPError(http.StatusBadRequest, fields)
	}
	return h.httpError(c, err)
}
