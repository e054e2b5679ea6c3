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

func bookFilter(q sq.SelectBuilder, filter model.BookFilter) sq.SelectBuilder {
	if filter.Genre != "" {
		q = q.Where(sq.Eq{"b.genre": filter.Genre})
	}
	return q
}

// ListBooks returns one page ordered by id. With userID == 0 no review join is made
// and rating is always null.
func (r *repository) ListBooks(ctx context.Context, filter model.BookFilter, userID int64, page model.PageRequest) ([]model.RatedBook, error) {
	q := qb.Select("b.id", "b.title", "b.author", "b.genre").
		From(booksTableName + " b")
	if userID != 0 {
		q = q.Column("rv.rating::int AS rating").
			LeftJoin(fmt.Sprintf("%s rv ON rv.book_id = b.id AND rv.user_id = ?", reviewsTableName), userID)
	} else {
		q = q.Column("NULL::int AS rating")
	}
	q = bookFilter(q, filter).OrderBy("b.id ASC")
	if page.Size > 0 {
		q = q.Limit(uint64(page.Size)).Offset(page.Offset())
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("ListBooks", zap.String("query", query), zap.Any("args", args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "ListBooks")
	}
	defer rows.Close()

	books, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.RatedBook])
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	return books, nil
}

func (r *repository) CountBooks(ctx context.Context, filter model.BookFilter) (int, error) {
	query, args, err := bookFilter(qb.Select("count(*)").From(booksTableName+" b"), filter).ToSql()
	if err != nil {
		return 0, err
	}
	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "CountBooks")
	}
	return count, nil
}

func (r *repository) BookExists(ctx context.Context, bookID int64) (bool, error) {
	const q = `select exists(select 1 from books where id = $1)`
	var exists bool
	if err := r.db.QueryRow(ctx, q, bookID).Scan(&exists); err != nil {
		return false, errors.Wrap(err, "BookExists")
	}
	return exists, nil
}
