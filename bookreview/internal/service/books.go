package service

import (
	"context"

	"github.com/Astemirdum/bookreview-service/bookreview/internal/model"
	"golang.org/x/sync/errgroup"
)

// ListBooks pages through the catalog. Authenticated callers get their own rating
// on every item; anonymous callers get items without a rating key.
func (s *Service) ListBooks(ctx context.Context, caller model.Caller, filter model.BookFilter, page model.PageRequest) (model.ListBooks, error) {
	var userID int64
	if caller.Authenticated {
		userID = caller.UserID
	}

	var (
		books []model.RatedBook
		total int
	)
	gg, gctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		var err error
		books, err = s.repo.ListBooks(gctx, filter, userID, page)
		return err
	})
	gg.Go(func() error {
		var err error
		total, err = s.repo.CountBooks(gctx, filter)
		return err
	})
	if err := gg.Wait(); err != nil {
		return model.ListBooks{}, err
	}

	items := make([]model.BookView, 0, len(books))
	for _, b := range books {
		items = append(items, model.BookView{RatedBook: b, WithRating: caller.Authenticated})
	}
	return model.ListBooks{
		Paging: model.Paging{
			Page:          page.Page,
			PageSize:      page.Size,
			TotalElements: total,
		},
		Items: items,
	}, nil
}
