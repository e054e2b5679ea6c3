package model_test

import (
	"encoding/json"
	"testing"

	"github.com/Astemirdum/bookreview-service/bookreview/internal/model"
	"github.com/stretchr/testify/require"
)

func TestBookView_MarshalJSON(t *testing.T) {
	t.Parallel()
	five := 5
	book := model.Book{ID: 1, Title: "T1", Author: "A1", Genre: "SciFi"}

	tests := []struct {
		name string
		view model.BookView
		want string
	}{
		{
			name: "anonymous. no rating key",
			view: model.BookView{RatedBook: model.RatedBook{Book: book}},
			want: `{"id":1,"title":"T1","author":"A1","genre":"SciFi"}`,
		},
		{
			name: "authenticated. unrated",
			view: model.BookView{RatedBook: model.RatedBook{Book: book}, WithRating: true},
			want: `{"id":1,"title":"T1","author":"A1","genre":"SciFi","rating":null}`,
		},
		{
			name: "authenticated. rated",
			view: model.BookView{RatedBook: model.RatedBook{Book: book, Rating: &five}, WithRating: true},
			want: `{"id":1,"title":"T1","author":"A1","genre":"SciFi","rating":5}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			data, err := json.Marshal(tt.view)
			require.NoError(t, err)
			require.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	t.Parallel()
	require.Equal(t, uint64(0), model.PageRequest{Page: 1, Size: 10}.Offset())
	require.Equal(t, uint64(20), model.PageRequest{Page: 3, Size: 10}.Offset())
	require.Equal(t, uint64(0), model.PageRequest{Page: 0, Size: 10}.Offset())
}

func TestAffinity_Of(t *testing.T) {
	t.Parallel()
	b := model.Book{Author: "A1", Genre: "Drama"}
	require.Equal(t, "Drama", model.AffinityGenre.Of(b))
	require.Equal(t, "A1", model.AffinityAuthor.Of(b))
	require.False(t, model.Affinity("title").Valid())
}

func TestCaller(t *testing.T) {
	t.Parallel()
	require.Equal(t, model.Caller{UserID: 3, Authenticated: true}, model.Authenticated(3))
	require.False(t, model.Anonymous().Authenticated)

	// the account record and the caller identity live side by side
	u := model.User{ID: 3, Username: "reader"}
	require.Equal(t, u.ID, model.Authenticated(u.ID).UserID)
}
