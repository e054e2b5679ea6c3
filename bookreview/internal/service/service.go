package service

import (
	"github.com/Astemirdum/bookreview-service/bookreview/internal/errs"
	"github.com/Astemirdum/bookreview-service/bookreview/internal/model"
	"github.com/Astemirdum/bookreview-service/bookreview/internal/repository"
	"github.com/Astemirdum/bookreview-service/pkg/auth"
	"go.uber.org/zap"
)

type Service struct {
	log    *zap.Logger
	repo   repository.Repository
	tokens *auth.TokenManager
}

func NewService(repo repository.Repository, tokens *auth.TokenManager, log *zap.Logger) *Service {
	return &Service{
		log:    log.Named("svc"),
		repo:   repo,
		tokens: tokens,
	}
}

func requireAuth(caller model.Caller) error {
	if !caller.Authenticated || caller.UserID == 0 {
		return errs.ErrAuthRequired
	}
	return nil
}
