package repository

import (
	"context"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookreview-service/bookreview/internal/errs"
)

const (
	msgBookNotExist  = "Book does not exist"
	msgRatingInRange = "Rating must be between 1 and 5"
)

// CreateReview relies on the (book_id, user_id) unique constraint; a concurrent
// duplicate insert surfaces as errs.ErrConflict.
func (r *repository) CreateReview(ctx context.Context, userID, bookID int64, rating int) (int64, error) {
	query, args, err := qb.Insert(reviewsTableName).
		Columns("book_id", "user_id", "rating").
		Values(bookID, userID, rating).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		switch code, constraint := pgErrCode(err); code {
		case pgerrcode.UniqueViolation:
			return 0, errs.ErrConflict
		case pgerrcode.ForeignKeyViolation:
			if constraint == "reviews_user_id_fkey" {
				return 0, errs.ErrUserNotFound
			}
			return 0, errs.NewValidationError("book_id", msgBookNotExist)
		case pgerrcode.CheckViolation:
			return 0, errs.NewValidationError("rating", msgRatingInRange)
		}
		r.log.Error("CreateReview", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return 0, errors.Wrap(err, "CreateReview")
	}
	return id, nil
}

func (r *repository) UpdateReview(ctx context.Context, userID, reviewID int64, rating int) error {
	q := `
update reviews
    set rating = @rating
where id = @id and user_id = @user_id`
	args := pgx.NamedArgs{
		"id":      reviewID,
		"user_id": userID,
		"rating":  rating,
	}
	tag, err := r.db.Exec(ctx, q, args)
	if err != nil {
		if code, _ := pgErrCode(err); code == pgerrcode.CheckViolation {
			return errs.NewValidationError("rating", msgRatingInRange)
		}
		return errors.Wrap(err, "UpdateReview")
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) DeleteReview(ctx context.Context, userID, reviewID int64) error {
	query, args, err := qb.Delete(reviewsTableName).
		Where("id = ? AND user_id = ?", reviewID, userID).
		ToSql()
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "DeleteReview")
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
