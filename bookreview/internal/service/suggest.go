package service

import (
	"context"

	"github.com/Astemirdum/bookreview-service/bookreview/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// likedRating is the lowest rating that counts as liking a book.
const likedRating = 4

func (s *Service) SuggestByGenre(ctx context.Context, caller model.Caller) (model.Suggestions, error) {
	return s.suggestByAffinity(ctx, caller, model.AffinityGenre)
}

func (s *Service) SuggestByAuthor(ctx context.Context, caller model.Caller) (model.Suggestions, error) {
	return s.suggestByAffinity(ctx, caller, model.AffinityAuthor)
}

// suggestByAffinity builds the caller's favorite genres (or authors), fetches the
// unreviewed books carrying any of them and orders those by favorite rank.
func (s *Service) suggestByAffinity(ctx context.Context, caller model.Caller, affinity model.Affinity) (model.Suggestions, error) {
	if err := requireAuth(caller); err != nil {
		return model.Suggestions{}, err
	}
	if !affinity.Valid() {
		return model.Suggestions{}, errors.Errorf("unknown affinity %q", affinity)
	}
	profile, err := s.repo.FavoriteValues(ctx, caller.UserID, affinity, likedRating)
	if err != nil {
		return model.Suggestions{}, err
	}
	if len(profile) == 0 {
		return model.Suggestions{}, nil
	}

	favorites := make([]string, 0, len(profile))
	for _, p := range profile {
		favorites = append(favorites, p.Value)
	}
	books, err := s.repo.BooksByAffinity(ctx, caller.UserID, affinity, favorites)
	if err != nil {
		return model.Suggestions{}, err
	}
	s.log.Debug("suggest",
		zap.String("affinity", string(affinity)),
		zap.Int64("user_id", caller.UserID),
		zap.Strings("favorites", favorites),
		zap.Int("candidates", len(books)))

	return model.Suggestions{Books: rankByFavorites(books, affinity, favorites)}, nil
}

// SuggestByRelatedUsers walks user -> liked books -> users who liked them too ->
// books those users liked. Each stage is materialized before the next one runs.
func (s *Service) SuggestByRelatedUsers(ctx context.Context, caller model.Caller) (model.Suggestions, error) {
	if err := requireAuth(caller); err != nil {
		return model.Suggestions{}, err
	}
	liked, err := s.repo.LikedBookIDs(ctx, caller.UserID, likedRating)
	if err != nil {
		return model.Suggestions{}, err
	}
	if len(liked) == 0 {
		return model.Suggestions{}, nil
	}

	related, err := s.repo.RelatedUserIDs(ctx, caller.UserID, liked, likedRating)
	if err != nil {
		return model.Suggestions{}, err
	}
	if len(related) == 0 {
		return model.Suggestions{}, nil
	}

	scored, err := s.repo.BooksLikedBy(ctx, caller.UserID, related, likedRating)
	if err != nil {
		return model.Suggestions{}, err
	}
	s.log.Debug("suggest",
		zap.String("strategy", "related-users"),
		zap.Int64("user_id", caller.UserID),
		zap.Int("liked", len(liked)),
		zap.Int("related", len(related)),
		zap.Int("candidates", len(scored)))

	return model.Suggestions{Books: rankByRelatedCount(scored)}, nil
}
