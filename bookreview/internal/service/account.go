package service

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/Astemirdum/bookreview-service/bookreview/internal/errs"
	"github.com/Astemirdum/bookreview-service/bookreview/internal/model"
	"github.com/Astemirdum/bookreview-service/pkg/auth"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const minPasswordLength = 8

// validatePassword applies the password strength rules for a new password.
func validatePassword(field, username, password string) error {
	var problems []string
	if len(password) < minPasswordLength {
		problems = append(problems, "This password is too short. It must contain at least 8 characters.")
	}
	if password != "" && strings.IndexFunc(password, func(r rune) bool { return !unicode.IsDigit(r) }) == -1 {
		problems = append(problems, "This password is entirely numeric.")
	}
	if username != "" && strings.EqualFold(password, username) {
		problems = append(problems, "The password is too similar to the username.")
	}
	if len(password) > 72 {
		problems = append(problems, "Ensure this field has no more than 72 characters.")
	}
	if len(problems) > 0 {
		return errs.NewValidationError(field, strings.Join(problems, " "))
	}
	return nil
}

// CreateUser registers a user; superusers are also staff.
func (s *Service) CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error) {
	if strings.TrimSpace(req.Username) == "" {
		return model.User{}, errs.NewValidationError("username", "Users must have an username address")
	}
	if err := validatePassword("password", req.Username, req.Password); err != nil {
		return model.User{}, err
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return model.User{}, err
	}
	user := model.User{
		Username:     req.Username,
		PasswordHash: hash,
		IsActive:     true,
		IsStaff:      req.Superuser,
		IsSuperuser:  req.Superuser,
	}
	if user.ID, err = s.repo.CreateUser(ctx, user); err != nil {
		return model.User{}, err
	}
	s.log.Info("user created", zap.Int64("id", user.ID), zap.String("username", user.Username), zap.Bool("superuser", user.IsSuperuser))
	return user, nil
}

// CreateToken exchanges credentials for an access/refresh pair.
func (s *Service) CreateToken(ctx context.Context, username, password string) (model.TokenPair, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return model.TokenPair{}, errs.ErrInvalidCredentials
		}
		return model.TokenPair{}, err
	}
	if !user.IsActive || !auth.CheckPassword(user.PasswordHash, password) {
		return model.TokenPair{}, errs.ErrInvalidCredentials
	}

	access, _, err := s.tokens.Issue(user.ID, user.Username, auth.TokenAccess)
	if err != nil {
		return model.TokenPair{}, err
	}
	refresh, _, err := s.tokens.Issue(user.ID, user.Username, auth.TokenRefresh)
	if err != nil {
		return model.TokenPair{}, err
	}
	if err := s.repo.TouchLastLogin(ctx, user.ID, time.Now().UTC()); err != nil {
		s.log.Warn("TouchLastLogin", zap.Int64("user_id", user.ID), zap.Error(err))
	}
	return model.TokenPair{Access: access, Refresh: refresh}, nil
}

// RefreshToken issues a new access token for a valid, unrevoked refresh token of an active user.
func (s *Service) RefreshToken(ctx context.Context, refresh string) (model.TokenPair, error) {
	_, user, err := s.verify(ctx, refresh, auth.TokenRefresh)
	if err != nil {
		return model.TokenPair{}, err
	}
	access, _, err := s.tokens.Issue(user.ID, user.Username, auth.TokenAccess)
	if err != nil {
		return model.TokenPair{}, err
	}
	return model.TokenPair{Access: access}, nil
}

// VerifyToken accepts either token type.
func (s *Service) VerifyToken(ctx context.Context, token string) error {
	if _, _, err := s.verify(ctx, token, auth.TokenAccess); err == nil {
		return nil
	} else if !errors.Is(err, auth.ErrInvalidToken) {
		return err
	}
	_, _, err := s.verify(ctx, token, auth.TokenRefresh)
	return err
}

// VerifyAccess is used by the authentication middleware.
func (s *Service) VerifyAccess(ctx context.Context, token string) (*auth.Claims, error) {
	claims, _, err := s.verify(ctx, token, auth.TokenAccess)
	return claims, err
}

// verify accepts a well-formed, unrevoked token whose owner still exists and is active.
func (s *Service) verify(ctx context.Context, token string, typ auth.TokenType) (*auth.Claims, model.User, error) {
	claims, err := s.tokens.Parse(token, typ)
	if err != nil {
		return nil, model.User{}, err
	}
	revoked, err := s.repo.IsTokenRevoked(ctx, claims.ID)
	if err != nil {
		return nil, model.User{}, err
	}
	if revoked {
		return nil, model.User{}, auth.ErrInvalidToken
	}
	user, err := s.repo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil, model.User{}, auth.ErrInvalidToken
		}
		return nil, model.User{}, err
	}
	if !user.IsActive {
		return nil, model.User{}, auth.ErrInvalidToken
	}
	return claims, user, nil
}

// Logout revokes the presented token until it would have expired anyway.
func (s *Service) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims == nil || claims.ExpiresAt == nil {
		return errs.ErrAuthRequired
	}
	return s.repo.RevokeToken(ctx, claims.ID, claims.UserID, claims.ExpiresAt.Time)
}

func (s *Service) ChangePassword(ctx context.Context, caller model.Caller, req model.ChangePasswordRequest) error {
	if err := requireAuth(caller); err != nil {
		return err
	}
	if req.NewPassword != req.NewPassword1 {
		return errs.ErrPasswordMismatch
	}
	user, err := s.repo.GetUserByID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return errs.ErrAuthRequired
		}
		return err
	}
	if err := validatePassword("new_password", user.Username, req.NewPassword); err != nil {
		return err
	}
	if !auth.CheckPassword(user.PasswordHash, req.OldPassword) {
		return errs.ErrWrongPassword
	}
	return s.SetPassword(ctx, user.ID, req.NewPassword)
}

func (s *Service) CheckPassword(ctx context.Context, userID int64, plain string) (bool, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return auth.CheckPassword(user.PasswordHash, plain), nil
}

func (s *Service) SetPassword(ctx context.Context, userID int64, plain string) error {
	hash, err := auth.HashPassword(plain)
	if err != nil {
		return err
	}
	return s.repo.SetPassword(ctx, userID, hash)
}
