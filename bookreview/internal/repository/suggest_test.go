package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/bookreview-service/bookreview/internal/model"
)

func Test_affinityColumn(t *testing.T) {
	t.Parallel()
	tests := []struct {
		affinity model.Affinity
		column   string
		wantErr  bool
	}{
		{affinity: model.AffinityGenre, column: "b.genre"},
		{affinity: model.AffinityAuthor, column: "b.author"},
		{affinity: "title", wantErr: true},
		{affinity: "b.genre; DROP TABLE books", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.affinity), func(t *testing.T) {
			t.Parallel()
			column, err := affinityColumn(tt.affinity)
			if tt.wantErr {
				require.Error(t, err)
				require.Empty(t, column)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.column, column)
		})
	}
}
