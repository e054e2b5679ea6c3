package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookreview-service/bookreview/internal/model"
)

// affinityColumn maps an affinity onto a fixed column, never onto caller input.
func affinityColumn(a model.Affinity) (string, error) {
	if !a.Valid() {
		return "", errors.Errorf("unknown affinity %q", a)
	}
	switch a {
	case model.AffinityGenre:
		return "b.genre", nil
	default:
		return "b.author", nil
	}
}

func notReviewedBy(userID int64) sq.Sqlizer {
	return sq.Expr(fmt.Sprintf("NOT EXISTS (SELECT 1 FROM %s own WHERE own.book_id = b.id AND own.user_id = ?)", reviewsTableName), userID)
}

// FavoriteValues is the caller profile: values of the affinity column over books
// rated >= minRating, most frequent first, ties by value.
func (r *repository) FavoriteValues(ctx context.Context, userID int64, affinity model.Affinity, minRating int) ([]model.AffinityCount, error) {
	col, err := affinityColumn(affinity)
	if err != nil {
		return nil, err
	}
	query, args, err := qb.Select(col+" AS value", "count(*) AS cnt").
		From(reviewsTableName + " r").
		Join(booksTableName + " b ON b.id = r.book_id").
		Where(sq.Eq{"r.user_id": userID}).
		Where(sq.GtOrEq{"r.rating": minRating}).
		GroupBy(col).
		OrderBy("cnt DESC", "value ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "FavoriteValues")
	}
	defer rows.Close()

	profile, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.AffinityCount])
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	return profile, nil
}

// BooksByAffinity returns books whose affinity value is one of values and which
// the user has not reviewed, ordered by id.
func (r *repository) BooksByAffinity(ctx context.Context, userID int64, affinity model.Affinity, values []string) ([]model.Book, error) {
	col, err := affinityColumn(affinity)
	if err != nil {
		return nil, err
	}
	query, args, err := qb.Select("b.id", "b.title", "b.author", "b.genre").
		From(booksTableName + " b").
		Where(sq.Eq{col: values}).
		Where(notReviewedBy(userID)).
		OrderBy("b.id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("BooksByAffinity", zap.String("query", query), zap.Any("args", args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "BooksByAffinity")
	}
	defer rows.Close()

	books, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	return books, nil
}

func (r *repository) LikedBookIDs(ctx context.Context, userID int64, minRating int) ([]int64, error) {
	query, args, err := qb.Select("book_id").
		From(reviewsTableName).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.GtOrEq{"rating": minRating}).
		OrderBy("book_id").
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.collectIDs(ctx, "LikedBookIDs", query, args)
}

func (r *repository) RelatedUserIDs(ctx context.Context, userID int64, bookIDs []int64, minRating int) ([]int64, error) {
	query, args, err := qb.Select("DISTINCT user_id").
		From(reviewsTableName).
		Where(sq.Eq{"book_id": bookIDs}).
		Where(sq.GtOrEq{"rating": minRating}).
		Where(sq.NotEq{"user_id": userID}).
		OrderBy("user_id").
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.collectIDs(ctx, "RelatedUserIDs", query, args)
}

// BooksLikedBy ranks books rated >= minRating by the related users, counting
// distinct related users per book, and drops anything the caller has reviewed.
func (r *repository) BooksLikedBy(ctx context.Context, userID int64, relatedIDs []int64, minRating int) ([]model.ScoredBook, error) {
	query, args, err := qb.Select("b.id", "b.title", "b.author", "b.genre", "count(DISTINCT r.user_id) AS related_count").
		From(reviewsTableName + " r").
		Join(booksTableName + " b ON b.id = r.book_id").
		Where(sq.Eq{"r.user_id": relatedIDs}).
		Where(sq.GtOrEq{"r.rating": minRating}).
		Where(notReviewedBy(userID)).
		GroupBy("b.id").
		OrderBy("related_count DESC", "b.id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("BooksLikedBy", zap.String("query", query), zap.Any("args", args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "BooksLikedBy")
	}
	defer rows.Close()

	books, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.ScoredBook])
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	return books, nil
}

func (r *repository) collectIDs(ctx context.Context, op, query string, args []interface{}) ([]int64, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	defer rows.Close()

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	return ids, nil
}
