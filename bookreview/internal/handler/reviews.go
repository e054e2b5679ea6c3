package handler

import (
	"net/http"
	"strconv"

	"github.com/Astemirdum/bookreview-service/bookreview/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CreateReview godoc
// @Summary  Rate a book
// @Tags     reviews
// @Accept   json
// @Produce  json
// @Param    review body model.CreateReviewRequest true "book and rating"
// @Success  201 {object} model.ReviewCreatedResponse
// @Failure  400 {object} errs.ValidationErrorResponse
// @Failure  401 {object} echo.HTTPError
// @Security Bearer
// @Router   /reviews [post]
func (h *Handler) CreateReview(c echo.Context) error {
	var req model.CreateReviewRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	id, err := h.svc.AddReview(c.Request().Context(), caller(c), *req.BookID, *req.Rating)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusCreated, model.ReviewCreatedResponse{Message: "Review added", ID: id})
}

// UpdateReview godoc
// @Summary  Change the rating of an own review
// @Tags     reviews
// @Accept   json
// @Produce  json
// @Param    review body model.UpdateReviewRequest true "review id and rating"
// @Success  200 {object} model.MessageResponse
// @Failure  400 {object} errs.ValidationErrorResponse
// @Failure  404 {object} errs.ErrorResponse
// @Security Bearer
// @Router   /reviews [put]
func (h *Handler) UpdateReview(c echo.Context) error {
	var req model.UpdateReviewRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := h.svc.UpdateReview(c.Request().Context(), caller(c), *req.ID, *req.Rating); err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, model.MessageResponse{Message: "Review updated"})
}

// DeleteReview godoc
// @Summary  Delete an own review
// @Tags     reviews
// @Produce  json
// @Param    id path int true "review id"
// @Success  200 {object} model.MessageResponse
// @Failure  404 {object} errs.ErrorResponse
// @Security Bearer
// @Router   /reviews/{id} [delete]
func (h *Handler) DeleteReview(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("id is invalid"))
	}
	if err := h.svc.DeleteReview(c.Request().Context(), caller(c), id); err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, model.MessageResponse{Message: "Review deleted"})
}
