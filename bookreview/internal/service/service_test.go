package service_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookreview-service/bookreview/internal/service"
	"github.com/Astemirdum/bookreview-service/pkg/auth"

	repo_mocks "github.com/Astemirdum/bookreview-service/bookreview/internal/repository/mocks"
)

var testTokenConfig = auth.Config{
	Secret:     "test-secret",
	AccessTTL:  time.Minute,
	RefreshTTL: time.Hour,
}

type mockRepo = repo_mocks.MockRepository

func newService(t *testing.T) (*service.Service, *repo_mocks.MockRepository) {
	t.Helper()
	c := gomock.NewController(t)
	repo := repo_mocks.NewMockRepository(c)
	svc := service.NewService(repo, auth.NewTokenManager(testTokenConfig), zap.NewExample().Named("test"))
	return svc, repo
}
