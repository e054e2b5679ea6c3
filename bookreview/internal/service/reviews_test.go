package service_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/bookreview-service/bookreview/internal/errs"
	"github.com/Astemirdum/bookreview-service/bookreview/internal/model"

	repo_mocks "github.com/Astemirdum/bookreview-service/bookreview/internal/repository/mocks"
)

func TestService_AddReview(t *testing.T) {
	t.Parallel()
	type input struct {
		caller model.Caller
		bookID int64
		rating int
	}
	type mockBehavior func(r *repo_mocks.MockRepository, inp input)

	tests := []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		wantID       int64
		wantErr      error
		wantFields   map[string]string
	}{
		{
			name: "ok",
			mockBehavior: func(r *repo_mocks.MockRepository, inp input) {
				r.EXPECT().BookExists(context.Background(), inp.bookID).Return(true, nil)
				r.EXPECT().CreateReview(context.Background(), inp.caller.UserID, inp.bookID, inp.rating).Return(int64(11), nil)
			},
			input:  input{caller: model.Authenticated(7), bookID: 1, rating: 5},
			wantID: 11,
		},
		{
			name: "ok. lower bound",
			mockBehavior: func(r *repo_mocks.MockRepository, inp input) {
				r.EXPECT().BookExists(context.Background(), inp.bookID).Return(true, nil)
				r.EXPECT().CreateReview(context.Background(), inp.caller.UserID, inp.bookID, inp.rating).Return(int64(12), nil)
			},
			input:  input{caller: model.Authenticated(7), bookID: 1, rating: 1},
			wantID: 12,
		},
		{
			name:         "err. anonymous",
			mockBehavior: func(r *repo_mocks.MockRepository, inp input) {},
			input:        input{caller: model.Anonymous(), bookID: 1, rating: 5},
			wantErr:      errs.ErrAuthRequired,
		},
		{
			name: "err. rating above range",
			mockBehavior: func(r *repo_mocks.MockRepository, inp input) {
				r.EXPECT().BookExists(context.Background(), inp.bookID).Return(true, nil)
			},
			input:      input{caller: model.Authenticated(7), bookID: 1, rating: 6},
			wantFields: map[string]string{"rating": "Rating must be between 1 and 5"},
		},
		{
			name: "err. rating below range",
			mockBehavior: func(r *repo_mocks.MockRepository, inp input) {
				r.EXPECT().BookExists(context.Background(), inp.bookID).Return(true, nil)
			},
			input:      input{caller: model.Authenticated(7), bookID: 1, rating: 0},
			wantFields: map[string]string{"rating": "Rating must be between 1 and 5"},
		},
		{
			name: "err. unknown book and bad rating",
			mockBehavior: func(r *repo_mocks.MockRepository, inp input) {
				r.EXPECT().BookExists(context.Background(), inp.bookID).Return(false, nil)
			},
			input: input{caller: model.Authenticated(7), bookID: 404, rating: 9},
			wantFields: map[string]string{
				"rating":  "Rating must be between 1 and 5",
				"book_id": "Book does not exist",
			},
		},
		{
			name: "err. duplicate",
			mockBehavior: func(r *repo_mocks.MockRepository, inp input) {
				r.EXPECT().BookExists(context.Background(), inp.bookID).Return(true, nil)
				r.EXPECT().CreateReview(context.Background(), inp.caller.UserID, inp.bookID, inp.rating).Return(int64(0), errs.ErrConflict)
			},
			input:   input{caller: model.Authenticated(7), bookID: 1, rating: 3},
			wantErr: errs.ErrConflict,
		},
		{
			name: "err. user vanished",
			mockBehavior: func(r *repo_mocks.MockRepository, inp input) {
				r.EXPECT().BookExists(context.Background(), inp.bookID).Return(true, nil)
				r.EXPECT().CreateReview(context.Background(), inp.caller.UserID, inp.bookID, inp.rating).Return(int64(0), errs.ErrUserNotFound)
			},
			input:   input{caller: model.Authenticated(7), bookID: 1, rating: 3},
			wantErr: errs.ErrAuthRequired,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo := newService(t)
			tt.mockBehavior(repo, tt.input)

			id, err := svc.AddReview(context.Background(), tt.input.caller, tt.input.bookID, tt.input.rating)
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.wantFields != nil:
				verr, ok := errs.IsValidation(err)
				require.True(t, ok)
				require.Equal(t, tt.wantFields, verr.Fields)
			default:
				require.NoError(t, err)
				require.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestService_AddReview_SecondAddConflicts(t *testing.T) {
	t.Parallel()
	svc, repo := newService(t)
	ctx := context.Background()
	caller := model.Authenticated(3)

	repo.EXPECT().BookExists(ctx, int64(1)).Return(true, nil).Times(2)
	first := repo.EXPECT().CreateReview(ctx, int64(3), int64(1), 4).Return(int64(1), nil)
	repo.EXPECT().CreateReview(ctx, int64(3), int64(1), 2).Return(int64(0), errs.ErrConflict).After(first)

	id, err := svc.AddReview(ctx, caller, 1, 4)
	require.NoError(t, err)
	require.Equal(t, int64(1), id)

	_, err = svc.AddReview(ctx, caller, 1, 2)
	require.ErrorIs(t, err, errs.ErrConflict)
}

func TestService_UpdateReview(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *repo_mocks.MockRepository)

	tests := []struct {
		name         string
		caller       model.Caller
		reviewID     int64
		rating       int
		mockBehavior mockBehavior
		wantErr      error
		validation   bool
	}{
		{
			name:     "ok",
			caller:   model.Authenticated(1),
			reviewID: 10,
			rating:   3,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().UpdateReview(context.Background(), int64(1), int64(10), 3).Return(nil)
			},
		},
		{
			name:     "err. not owner",
			caller:   model.Authenticated(2),
			reviewID: 10,
			rating:   3,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().UpdateReview(context.Background(), int64(2), int64(10), 3).Return(errs.ErrNotFound)
			},
			wantErr: errs.ErrNotFound,
		},
		{
			name:         "err. rating",
			caller:       model.Authenticated(1),
			reviewID:     10,
			rating:       42,
			mockBehavior: func(r *repo_mocks.MockRepository) {},
			validation:   true,
		},
		{
			name:         "err. anonymous",
			caller:       model.Anonymous(),
			reviewID:     10,
			rating:       3,
			mockBehavior: func(r *repo_mocks.MockRepository) {},
			wantErr:      errs.ErrAuthRequired,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo := newService(t)
			tt.mockBehavior(repo)

			err := svc.UpdateReview(context.Background(), tt.caller, tt.reviewID, tt.rating)
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.validation:
				verr, ok := errs.IsValidation(err)
				require.True(t, ok)
				require.Contains(t, verr.Fields, "rating")
			default:
				require.NoError(t, err)
			}
		})
	}
}

func TestService_DeleteReview(t *testing.T) {
	t.Parallel()
	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().DeleteReview(context.Background(), int64(1), int64(5)).Return(nil)
		require.NoError(t, svc.DeleteReview(context.Background(), model.Authenticated(1), 5))
	})
	t.Run("err. not owner", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().DeleteReview(context.Background(), int64(9), int64(5)).Return(errs.ErrNotFound)
		require.ErrorIs(t, svc.DeleteReview(context.Background(), model.Authenticated(9), 5), errs.ErrNotFound)
	})
	t.Run("err. internal", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().DeleteReview(context.Background(), int64(1), int64(5)).Return(errors.New("db internal"))
		require.EqualError(t, svc.DeleteReview(context.Background(), model.Authenticated(1), 5), "db internal")
	})
	t.Run("err. anonymous", func(t *testing.T) {
		t.Parallel()
		svc, _ := newService(t)
		require.ErrorIs(t, svc.DeleteReview(context.Background(), model.Anonymous(), 5), errs.ErrAuthRequired)
	})
}
