package handler

import (
	"context"

	"github.com/Astemirdum/bookreview-service/bookreview/internal/model"
	"github.com/Astemirdum/bookreview-service/bookreview/internal/service"
	"github.com/Astemirdum/bookreview-service/pkg/auth"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BookReviewService interface {
	ListBooks(ctx context.Context, caller model.Caller, filter model.BookFilter, page model.PageRequest) (model.ListBooks, error)

	AddReview(ctx context.Context, caller model.Caller, bookID int64, rating int) (int64, error)
	UpdateReview(ctx context.Context, caller model.Caller, reviewID int64, rating int) error
	DeleteReview(ctx context.Context, caller model.Caller, reviewID int64) error

	SuggestByGenre(ctx context.Context, caller model.Caller) (model.Suggestions, error)
	SuggestByAuthor(ctx context.Context, caller model.Caller) (model.Suggestions, error)
	SuggestByRelatedUsers(ctx context.Context, caller model.Caller) (model.Suggestions, error)
}

type AccountService interface {
	CreateToken(ctx context.Context, username, password string) (model.TokenPair, error)
	RefreshToken(ctx context.Context, refresh string) (model.TokenPair, error)
	VerifyToken(ctx context.Context, token string) error
	VerifyAccess(ctx context.Context, token string) (*auth.Claims, error)
	Logout(ctx context.Context, claims *auth.Claims) error
	ChangePassword(ctx context.Context, caller model.Caller, req model.ChangePasswordRequest) error
}

var (
	_ BookReviewService = (*service.Service)(nil)
	_ AccountService    = (*service.Service)(nil)
)
