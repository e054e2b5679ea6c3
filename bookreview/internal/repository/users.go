package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/Astemirdum/bookreview-service/bookreview/internal/errs"
	"github.com/Astemirdum/bookreview-service/bookreview/internal/model"
)

var userColumns = []string{"id", "username", "password_hash", "is_staff", "is_active", "is_superuser", "last_login", "date_joined"}

func (r *repository) CreateUser(ctx context.Context, user model.User) (int64, error) {
	query, args, err := qb.Insert(usersTableName).
		Columns("username", "password_hash", "is_staff", "is_active", "is_superuser").
		Values(user.Username, user.PasswordHash, user.IsStaff, user.IsActive, user.IsSuperuser).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}
	var id int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if code, _ := pgErrCode(err); code == pgerrcode.UniqueViolation {
			return 0, errs.ErrUserExists
		}
		return 0, errors.Wrap(err, "CreateUser")
	}
	return id, nil
}

func (r *repository) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	return r.getUser(ctx, sq.Eq{"username": username})
}

func (r *repository) GetUserByID(ctx context.Context, id int64) (model.User, error) {
	return r.getUser(ctx, sq.Eq{"id": id})
}

func (r *repository) getUser(ctx context.Context, where sq.Eq) (model.User, error) {
	query, args, err := qb.Select(userColumns...).
		From(usersTableName).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return model.User{}, errors.Wrap(err, "getUser")
	}
	defer rows.Close()

	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, errs.ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("pgx.CollectOneRow: %w", err)
	}
	return user, nil
}

func (r *repository) SetPassword(ctx context.Context, userID int64, hash string) error {
	q := `update users set password_hash = @hash where id = @id`
	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": userID, "hash": hash})
	if err != nil {
		return errors.Wrap(err, "SetPassword")
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

func (r *repository) TouchLastLogin(ctx context.Context, userID int64, at time.Time) error {
	q := `update users set last_login = @at where id = @id`
	_, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": userID, "at": at})
	return errors.Wrap(err, "TouchLastLogin")
}

// RevokeToken also drops expired revocations; an expired token fails verification anyway.
func (r *repository) RevokeToken(ctx context.Context, jti string, userID int64, expiresAt time.Time) error {
	batch := &pgx.Batch{}
	batch.Queue(`delete from revoked_tokens where expires_at < now()`)
	batch.Queue(`insert into revoked_tokens (jti, user_id, expires_at) values ($1, $2, $3) on conflict do nothing`,
		jti, userID, expiresAt)
	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		return errors.Wrap(err, "RevokeToken")
	}
	return nil
}

func (r *repository) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	query, args, err := qb.Select("1").
		Prefix("SELECT EXISTS (").
		From(revokedTokensTableName).
		Where(sq.Eq{"jti": jti}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, err
	}
	var revoked bool
	if err := r.db.QueryRow(ctx, query, args...).Scan(&revoked); err != nil {
		return false, errors.Wrap(err, "IsTokenRevoked")
	}
	return revoked, nil
}
