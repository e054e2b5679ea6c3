package handler

import (
	"math"
	"net/http"
	"strconv"

	"github.com/Astemirdum/bookreview-service/bookreview/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GetBooks godoc
// @Summary  List books
// @Tags     books
// @Produce  json
// @Param    genre query string false "exact genre"
// @Param    page  query int    false "1-based page"
// @Param    size  query int    false "page size"
// @Success  200 {object} model.ListBooks
// @Failure  400 {object} echo.HTTPError
// @Security Bearer
// @Router   /books [get]
func (h *Handler) GetBooks(c echo.Context) error {
	ctx := c.Request().Context()

	page := model.PageRequest{Page: 1, Size: h.pagination.PageSize}
	var err error
	if pageParam := c.QueryParam("page"); pageParam != "" {
		if page.Page, err = strconv.Atoi(pageParam); err != nil || page.Page < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("page is invalid"))
		}
	}
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		if page.Size, err = strconv.Atoi(sizeParam); err != nil || page.Size < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("size is invalid"))
		}
	}
	if page.Size > h.pagination.MaxPageSize {
		page.Size = h.pagination.MaxPageSize
	}
	// the row offset (page-1)*size must not overflow
	if page.Page-1 > math.MaxInt/page.Size {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("page is invalid"))
	}
	filter := model.BookFilter{Genre: c.QueryParam("genre")}

	books, err := h.svc.ListBooks(ctx, caller(c), filter, page)
	if err != nil {
		return h.httpError(c, err)
	}
	return c.JSON(http.StatusOK, books)
}
