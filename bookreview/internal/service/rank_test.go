package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookreview-service/bookreview/internal/model"
	repo_mocks "github.com/Astemirdum/bookreview-service/bookreview/internal/repository/mocks"
)

func ids(books []model.Book) []int64 {
	out := make([]int64, 0, len(books))
	for _, b := range books {
		out = append(out, b.ID)
	}
	return out
}

func TestRankByFavorites(t *testing.T) {
	books := []model.Book{
		{ID: 9, Genre: "Drama"},
		{ID: 3, Genre: "SciFi"},
		{ID: 5, Genre: "Drama"},
		{ID: 1, Genre: "Poetry"},
		{ID: 2, Genre: "SciFi"},
	}
	got := rankByFavorites(books, model.AffinityGenre, []string{"SciFi", "Drama"})
	require.Equal(t, []int64{2, 3, 5, 9, 1}, ids(got))
	require.Equal(t, int64(9), books[0].ID, "input must stay untouched")

	byAuthor := []model.Book{
		{ID: 4, Author: "B"},
		{ID: 2, Author: "A"},
		{ID: 1, Author: "B"},
	}
	require.Equal(t, []int64{1, 4, 2}, ids(rankByFavorites(byAuthor, model.AffinityAuthor, []string{"B", "A"})))
}

func TestRankByRelatedCount(t *testing.T) {
	scored := []model.ScoredBook{
		{Book: model.Book{ID: 7}, RelatedCount: 1},
		{Book: model.Book{ID: 4}, RelatedCount: 3},
		{Book: model.Book{ID: 2}, RelatedCount: 1},
		{Book: model.Book{ID: 8}, RelatedCount: 3},
	}
	require.Equal(t, []int64{4, 8, 2, 7}, ids(rankByRelatedCount(scored)))
	require.Empty(t, rankByRelatedCount(nil))
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{name: "ok", username: "reader", password: "correct-horse"},
		{name: "short", username: "reader", password: "abc", wantErr: true},
		{name: "numeric", username: "reader", password: "1234567890", wantErr: true},
		{name: "same as username", username: "bookworm1", password: "Bookworm1", wantErr: true},
	}
	for _, tt := range tests {
		err := validatePassword("new_password", tt.username, tt.password)
		if tt.wantErr {
			require.Error(t, err, tt.name)
			continue
		}
		require.NoError(t, err, tt.name)
	}
}

func TestService_suggestByAffinity_unknown(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	svc := NewService(repo_mocks.NewMockRepository(c), nil, zap.NewNop())

	_, err := svc.suggestByAffinity(context.Background(), model.Authenticated(5), "title")
	require.ErrorContains(t, err, "unknown affinity")
}
