package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookreview-service/bookreview/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	ListBooks(ctx context.Context, filter model.BookFilter, userID int64, page model.PageRequest) ([]model.RatedBook, error)
	CountBooks(ctx context.Context, filter model.BookFilter) (int, error)
	BookExists(ctx context.Context, bookID int64) (bool, error)

	CreateReview(ctx context.Context, userID, bookID int64, rating int) (int64, error)
	UpdateReview(ctx context.Context, userID, reviewID int64, rating int) error
	DeleteReview(ctx context.Context, userID, reviewID int64) error

	FavoriteValues(ctx context.Context, userID int64, affinity model.Affinity, minRating int) ([]model.AffinityCount, error)
	BooksByAffinity(ctx context.Context, userID int64, affinity model.Affinity, values []string) ([]model.Book, error)
	LikedBookIDs(ctx context.Context, userID int64, minRating int) ([]int64, error)
	RelatedUserIDs(ctx context.Context, userID int64, bookIDs []int64, minRating int) ([]int64, error)
	BooksLikedBy(ctx context.Context, userID int64, relatedIDs []int64, minRating int) ([]model.ScoredBook, error)

	CreateUser(ctx context.Context, user model.User) (int64, error)
	GetUserByUsername(ctx context.Context, username string) (model.User, error)
	GetUserByID(ctx context.Context, id int64) (model.User, error)
	SetPassword(ctx context.Context, userID int64, hash string) error
	TouchLastLogin(ctx context.Context, userID int64, at time.Time) error
	RevokeToken(ctx context.Context, jti string, userID int64, expiresAt time.Time) error
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName         = `books`
	reviewsTableName       = `reviews`
	usersTableName         = `users`
	revokedTokensTableName = `revoked_tokens`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func pgErrCode(err error) (string, string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	return "", ""
}
