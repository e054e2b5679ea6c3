package app

import (
	"context"
	"testing"

	"github.com/Astemirdum/bookreview-service/bookreview/internal/errs"
	"github.com/Astemirdum/bookreview-service/bookreview/internal/model"
	"github.com/stretchr/testify/require"
)

type fakeAccounts struct {
	got model.CreateUserRequest
	err error
}

func (f *fakeAccounts) CreateUser(_ context.Context, req model.CreateUserRequest) (model.User, error) {
	f.got = req
	if f.err != nil {
		return model.User{}, f.err
	}
	return model.User{ID: 7, Username: req.Username, IsSuperuser: req.Superuser}, nil
}

func Test_createUser(t *testing.T) {
	t.Parallel()
	t.Run("ok", func(t *testing.T) {
		accounts := &fakeAccounts{}
		user, err := createUser(context.Background(), accounts, "admin", "correct-horse", true)
		require.NoError(t, err)
		require.Equal(t, CreatedUser{ID: 7, Username: "admin", Superuser: true}, user)
		require.Equal(t, model.CreateUserRequest{Username: "admin", Password: "correct-horse", Superuser: true}, accounts.got)
	})
	t.Run("service error", func(t *testing.T) {
		accounts := &fakeAccounts{err: errs.ErrUserExists}
		_, err := createUser(context.Background(), accounts, "admin", "correct-horse", false)
		require.ErrorIs(t, err, errs.ErrUserExists)
	})
}
