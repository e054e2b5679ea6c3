package handler

import (
	"net/http"

	"github.com/Astemirdum/bookreview-service/bookreview/internal/errs"
	"github.com/Astemirdum/bookreview-service/bookreview/internal/model"
	"github.com/Astemirdum/bookreview-service/pkg/auth"
	"github.com/Astemirdum/bookreview-service/pkg/validate"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const validationMessage = "Invalid input"

// httpError maps service errors onto status codes. Anything unknown is logged
// and reported as a bare 500.
func (h *Handler) httpError(c echo.Context, err error) error {
	if verr, ok := errs.IsValidation(err); ok {
		return echo.NewHTTPError(http.StatusBadRequest, errs.ValidationErrorResponse{
			Message: validationMessage,
			Errors:  verr.Fields,
		})
	}
	switch {
	case errors.Is(err, errs.ErrAuthRequired):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, errs.ErrorResponse{Error: errs.ErrNotFound.Error()})
	case errors.Is(err, errs.ErrConflict):
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrorResponse{Error: errs.ErrConflict.Error()})
	case errors.Is(err, errs.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	h.log.Error("internal", zap.String("path", c.Path()), zap.Error(err))
	return echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

// bind decodes and validates a request body.
func bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if err := c.Validate(req); err != nil {
		if fields := validate.Fields(err); fields != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errs.ValidationErrorResponse{
				Message: validationMessage,
				Errors:  fields,
			})
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// caller resolves who the request is made for from the authentication middleware.
func caller(c echo.Context) model.Caller {
	id, err := auth.GetUserID(c.Request().Context())
	if err != nil {
		return model.Anonymous()
	}
	return model.Authenticated(id)
}
