package service

import (
	"context"

	"github.com/Astemirdum/bookreview-service/bookreview/internal/errs"
	"github.com/Astemirdum/bookreview-service/bookreview/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	minRating = 1
	maxRating = 5
)

func ratingInRange(rating int) bool {
	return rating >= minRating && rating <= maxRating
}

// AddReview stores the caller's rating of a book. Uniqueness per (book, user) is
// left to the store so concurrent duplicates still end in errs.ErrConflict.
func (s *Service) AddReview(ctx context.Context, caller model.Caller, bookID int64, rating int) (int64, error) {
	if err := requireAuth(caller); err != nil {
		return 0, err
	}
	fields := make(map[string]string)
	if !ratingInRange(rating) {
		fields["rating"] = "Rating must be between 1 and 5"
	}
	exists, err := s.repo.BookExists(ctx, bookID)
	if err != nil {
		return 0, err
	}
	if !exists {
		fields["book_id"] = "Book does not exist"
	}
	if len(fields) > 0 {
		return 0, &errs.ValidationError{Fields: fields}
	}

	id, err := s.repo.CreateReview(ctx, caller.UserID, bookID, rating)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return 0, errs.ErrAuthRequired
		}
		return 0, err
	}
	s.log.Debug("review added", zap.Int64("id", id), zap.Int64("book_id", bookID), zap.Int64("user_id", caller.UserID))
	return id, nil
}

// UpdateReview changes the rating of a review the caller owns. A review owned by
// someone else is reported exactly like a missing one.
func (s *Service) UpdateReview(ctx context.Context, caller model.Caller, reviewID int64, rating int) error {
	if err := requireAuth(caller); err != nil {
		return err
	}
	if !ratingInRange(rating) {
		return errs.NewValidationError("rating", "Rating must be between 1 and 5")
	}
	return s.repo.UpdateReview(ctx, caller.UserID, reviewID, rating)
}

func (s *Service) DeleteReview(ctx context.Context, caller model.Caller, reviewID int64) error {
	if err := requireAuth(caller); err != nil {
		return err
	}
	return s.repo.DeleteReview(ctx, caller.UserID, reviewID)
}
