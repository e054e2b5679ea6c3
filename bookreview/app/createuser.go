package app

import (
	"context"

	"github.com/Astemirdum/bookreview-service/bookreview/internal/model"
	"github.com/Astemirdum/bookreview-service/bookreview/internal/repository"
	"github.com/Astemirdum/bookreview-service/bookreview/internal/service"
	"github.com/Astemirdum/bookreview-service/bookreview/migrations"
	"github.com/Astemirdum/bookreview-service/pkg/postgres"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// CreatedUser is what the createuser command reports back.
type CreatedUser struct {
	ID        int64
	Username  string
	Superuser bool
}

type userCreator interface {
	CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error)
}

// CreateUser migrates the database behind cfg and registers a new account.
func CreateUser(ctx context.Context, cfg *postgres.DB, log *zap.Logger, username, password string, superuser bool) (CreatedUser, error) {
	db, err := postgres.NewPostgresDB(ctx, cfg, migrations.MigrationFiles)
	if err != nil {
		return CreatedUser{}, errors.Wrap(err, "db init")
	}
	defer db.Close()

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return CreatedUser{}, errors.Wrap(err, "repo")
	}
	return createUser(ctx, service.NewService(repo, nil, log), username, password, superuser)
}

func createUser(ctx context.Context, accounts userCreator, username, password string, superuser bool) (CreatedUser, error) {
	user, err := accounts.CreateUser(ctx, model.CreateUserRequest{
		Username:  username,
		Password:  password,
		Superuser: superuser,
	})
	if err != nil {
		return CreatedUser{}, errors.Wrap(err, "create user")
	}
	return CreatedUser{ID: user.ID, Username: user.Username, Superuser: user.IsSuperuser}, nil
}
