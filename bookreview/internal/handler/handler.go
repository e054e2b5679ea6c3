package handler

import (
	"net/http"

	"github.com/Astemirdum/bookreview-service/bookreview/config"
	mw "github.com/Astemirdum/bookreview-service/pkg/middleware"
	"github.com/Astemirdum/bookreview-service/pkg/validate"
	_ "github.com/Astemirdum/bookreview-service/swagger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

const defaultPageSize = 10

type Handler struct {
	svc        BookReviewService
	accounts   AccountService
	pagination config.Pagination
	log        *zap.Logger
}

func New(svc BookReviewService, accounts AccountService, pagination config.Pagination, log *zap.Logger) *Handler {
	if pagination.PageSize <= 0 {
		pagination.PageSize = defaultPageSize
	}
	if pagination.MaxPageSize < pagination.PageSize {
		pagination.MaxPageSize = pagination.PageSize
	}
	return &Handler{
		svc:        svc,
		accounts:   accounts,
		pagination: pagination,
		log:        log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", mw.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(mw.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		mw.NewRateLimiter(apiRPS),
	)

	accounts := api.Group("/accounts")
	accounts.POST("/jwt/create", h.CreateToken)
	accounts.POST("/jwt/refresh", h.RefreshToken)
	accounts.POST("/jwt/verify", h.VerifyToken)

	api.GET("/books", h.GetBooks, mw.OptionalJwtAuthentication(h.accounts))

	authed := api.Group("", mw.JwtAuthentication(h.accounts))
	authed.POST("/accounts/token/logout", h.Logout)
	authed.PUT("/accounts/change-password", h.ChangePassword)

	authed.POST("/reviews", h.CreateReview)
	authed.PUT("/reviews", h.UpdateReview)
	authed.DELETE("/reviews/:id", h.DeleteReview)

	authed.GET("/suggest-by-genre", h.SuggestByGenre)
	authed.GET("/suggest-by-author", h.SuggestByAuthor)
	authed.GET("/suggest-by-related-users", h.SuggestByRelatedUsers)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
