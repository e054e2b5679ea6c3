package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/bookreview-service/bookreview/internal/errs"
	"github.com/Astemirdum/bookreview-service/bookreview/internal/model"
	"github.com/Astemirdum/bookreview-service/pkg/auth"
)

func mustHash(t *testing.T, plain string) string {
	t.Helper()
	hash, err := auth.HashPassword(plain)
	require.NoError(t, err)
	return hash
}

func TestService_CreateUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("superuser", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u model.User) (int64, error) {
			require.Equal(t, "admin", u.Username)
			require.True(t, u.IsActive)
			require.True(t, u.IsStaff)
			require.True(t, u.IsSuperuser)
			require.True(t, auth.CheckPassword(u.PasswordHash, "long-enough-pw"))
			return 1, nil
		})

		user, err := svc.CreateUser(ctx, model.CreateUserRequest{Username: "admin", Password: "long-enough-pw", Superuser: true})
		require.NoError(t, err)
		require.Equal(t, int64(1), user.ID)
	})

	t.Run("err. weak password", func(t *testing.T) {
		t.Parallel()
		svc, _ := newService(t)
		_, err := svc.CreateUser(ctx, model.CreateUserRequest{Username: "reader", Password: "123"})
		verr, ok := errs.IsValidation(err)
		require.True(t, ok)
		require.Contains(t, verr.Fields, "password")
	})

	t.Run("err. exists", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(int64(0), errs.ErrUserExists)
		_, err := svc.CreateUser(ctx, model.CreateUserRequest{Username: "reader", Password: "long-enough-pw"})
		require.ErrorIs(t, err, errs.ErrUserExists)
	})
}

func TestService_CreateToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	user := model.User{ID: 3, Username: "reader", PasswordHash: mustHash(t, "long-enough-pw"), IsActive: true}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().GetUserByUsername(ctx, "reader").Return(user, nil)
		repo.EXPECT().TouchLastLogin(ctx, user.ID, gomock.Any()).Return(nil)
		repo.EXPECT().IsTokenRevoked(ctx, gomock.Any()).Return(false, nil)
		repo.EXPECT().GetUserByID(ctx, user.ID).Return(user, nil)

		pair, err := svc.CreateToken(ctx, "reader", "long-enough-pw")
		require.NoError(t, err)
		require.NotEmpty(t, pair.Refresh)

		claims, err := svc.VerifyAccess(ctx, pair.Access)
		require.NoError(t, err)
		require.Equal(t, user.ID, claims.UserID)
	})

	t.Run("err. wrong password", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().GetUserByUsername(ctx, "reader").Return(user, nil)
		_, err := svc.CreateToken(ctx, "reader", "nope-nope-nope")
		require.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("err. inactive", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		inactive := user
		inactive.IsActive = false
		repo.EXPECT().GetUserByUsername(ctx, "reader").Return(inactive, nil)
		_, err := svc.CreateToken(ctx, "reader", "long-enough-pw")
		require.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("err. unknown user", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().GetUserByUsername(ctx, "ghost").Return(model.User{}, errs.ErrUserNotFound)
		_, err := svc.CreateToken(ctx, "ghost", "long-enough-pw")
		require.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}

func TestService_RefreshAndVerify(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	tm := auth.NewTokenManager(testTokenConfig)
	refresh, _, err := tm.Issue(3, "reader", auth.TokenRefresh)
	require.NoError(t, err)
	access, accessClaims, err := tm.Issue(3, "reader", auth.TokenAccess)
	require.NoError(t, err)

	t.Run("refresh ok", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().IsTokenRevoked(ctx, gomock.Any()).Return(false, nil)
		repo.EXPECT().GetUserByID(ctx, int64(3)).Return(model.User{ID: 3, Username: "reader", IsActive: true}, nil)

		pair, err := svc.RefreshToken(ctx, refresh)
		require.NoError(t, err)
		require.NotEmpty(t, pair.Access)
		require.Empty(t, pair.Refresh)
	})

	t.Run("refresh rejects access token", func(t *testing.T) {
		t.Parallel()
		svc, _ := newService(t)
		_, err := svc.RefreshToken(ctx, access)
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("verify either type", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().IsTokenRevoked(ctx, gomock.Any()).Return(false, nil).Times(2)
		repo.EXPECT().GetUserByID(ctx, int64(3)).Return(model.User{ID: 3, Username: "reader", IsActive: true}, nil).Times(2)
		require.NoError(t, svc.VerifyToken(ctx, access))
		require.NoError(t, svc.VerifyToken(ctx, refresh))
	})

	t.Run("revoked", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().IsTokenRevoked(ctx, accessClaims.ID).Return(true, nil)
		_, err := svc.VerifyAccess(ctx, access)
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("deactivated user", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().IsTokenRevoked(ctx, gomock.Any()).Return(false, nil).Times(3)
		repo.EXPECT().GetUserByID(ctx, int64(3)).Return(model.User{ID: 3, Username: "reader", IsActive: false}, nil).Times(3)

		_, err := svc.VerifyAccess(ctx, access)
		require.ErrorIs(t, err, auth.ErrInvalidToken)
		_, err = svc.RefreshToken(ctx, refresh)
		require.ErrorIs(t, err, auth.ErrInvalidToken)
		require.ErrorIs(t, svc.VerifyToken(ctx, access), auth.ErrInvalidToken)
	})

	t.Run("deleted user", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().IsTokenRevoked(ctx, accessClaims.ID).Return(false, nil)
		repo.EXPECT().GetUserByID(ctx, int64(3)).Return(model.User{}, errs.ErrUserNotFound)

		_, err := svc.VerifyAccess(ctx, access)
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("logout", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().RevokeToken(ctx, accessClaims.ID, int64(3), accessClaims.ExpiresAt.Time).Return(nil)
		require.NoError(t, svc.Logout(ctx, accessClaims))
	})
}

func TestService_ChangePassword(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	user := model.User{ID: 3, Username: "reader", PasswordHash: mustHash(t, "old-password"), IsActive: true}

	tests := []struct {
		name    string
		req     model.ChangePasswordRequest
		setup   func(r *mockRepo)
		wantErr error
		field   string
	}{
		{
			name: "ok",
			req:  model.ChangePasswordRequest{OldPassword: "old-password", NewPassword: "new-password", NewPassword1: "new-password"},
			setup: func(r *mockRepo) {
				r.EXPECT().GetUserByID(ctx, user.ID).Return(user, nil)
				r.EXPECT().SetPassword(ctx, user.ID, gomock.Any()).Return(nil)
			},
		},
		{
			name:    "err. mismatch",
			req:     model.ChangePasswordRequest{OldPassword: "old-password", NewPassword: "new-password", NewPassword1: "other-password"},
			setup:   func(r *mockRepo) {},
			wantErr: errs.ErrPasswordMismatch,
		},
		{
			name: "err. weak",
			req:  model.ChangePasswordRequest{OldPassword: "old-password", NewPassword: "short", NewPassword1: "short"},
			setup: func(r *mockRepo) {
				r.EXPECT().GetUserByID(ctx, user.ID).Return(user, nil)
			},
			field: "new_password",
		},
		{
			name: "err. wrong old",
			req:  model.ChangePasswordRequest{OldPassword: "bad-password", NewPassword: "new-password", NewPassword1: "new-password"},
			setup: func(r *mockRepo) {
				r.EXPECT().GetUserByID(ctx, user.ID).Return(user, nil)
			},
			wantErr: errs.ErrWrongPassword,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo := newService(t)
			tt.setup(repo)

			err := svc.ChangePassword(ctx, model.Authenticated(user.ID), tt.req)
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.field != "":
				verr, ok := errs.IsValidation(err)
				require.True(t, ok)
				require.Contains(t, verr.Fields, tt.field)
			default:
				require.NoError(t, err)
			}
		})
	}
}

func TestService_SetAndCheckPassword(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newService(t)

	var stored string
	repo.EXPECT().SetPassword(ctx, int64(3), gomock.Any()).DoAndReturn(func(_ context.Context, _ int64, hash string) error {
		stored = hash
		return nil
	})
	require.NoError(t, svc.SetPassword(ctx, 3, "brand-new-pw"))

	repo.EXPECT().GetUserByID(ctx, int64(3)).DoAndReturn(func(context.Context, int64) (model.User, error) {
		return model.User{ID: 3, PasswordHash: stored, DateJoined: time.Now()}, nil
	}).Times(2)
	ok, err := svc.CheckPassword(ctx, 3, "brand-new-pw")
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = svc.CheckPassword(ctx, 3, "something-else")
	require.NoError(t, err)
	require.False(t, ok)
}
