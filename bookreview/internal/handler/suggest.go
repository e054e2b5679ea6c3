package handler

import (
	"context"
	"net/http"

	"github.com/Astemirdum/bookreview-service/bookreview/internal/model"
	"github.com/labstack/echo/v4"
)

const noSuggestions = "No suggestions available"

type suggestFunc func(ctx context.Context, caller model.Caller) (model.Suggestions, error)

func (h *Handler) suggest(c echo.Context, fn suggestFunc) error {
	res, err := fn(c.Request().Context(), caller(c))
	if err != nil {
		return h.httpError(c, err)
	}
	if res.Empty() {
		return c.JSON(http.StatusOK, model.MessageResponse{Message: noSuggestions})
	}
	return c.JSON(http.StatusOK, res.Books)
}

// SuggestByGenre godoc
// @Summary  Unread books in the caller's favorite genres
// @Tags     suggestions
// @Produce  json
// @Success  200 {array}  model.Book
// @Failure  401 {object} echo.HTTPError
// @Security Bearer
// @Router   /suggest-by-genre [get]
func (h *Handler) SuggestByGenre(c echo.Context) error {
	return h.suggest(c, h.svc.SuggestByGenre)
}

// SuggestByAuthor godoc
// @Summary  Unread books by the caller's favorite authors
// @Tags     suggestions
// @Produce  json
// @Success  200 {array}  model.Book
// @Failure  401 {object} echo.HTTPError
// @Security Bearer
// @Router   /suggest-by-author [get]
func (h *Handler) SuggestByAuthor(c echo.Context) error {
	return h.suggest(c, h.svc.SuggestByAuthor)
}

// SuggestByRelatedUsers godoc
// @Summary  Books liked by users who liked the same books as the caller
// @Tags     suggestions
// @Produce  json
// @Success  200 {array}  model.Book
// @Failure  401 {object} echo.HTTPError
// @Security Bearer
// @Router   /suggest-by-related-users [get]
func (h *Handler) SuggestByRelatedUsers(c echo.Context) error {
	return h.suggest(c, h.svc.SuggestByRelatedUsers)
}
