package validate_test

import (
	"testing"

	"github.com/Astemirdum/bookreview-service/pkg/validate"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestFields(t *testing.T) {
	type req struct {
		BookID int    `json:"book_id" validate:"required"`
		Rating int    `json:"rating" validate:"min=1,max=5"`
		Name   string `json:"name" validate:"max=3"`
	}
	v := validate.NewCustomValidator()

	err := v.Validate(req{BookID: 0, Rating: 7, Name: "abcd"})
	require.Error(t, err)
	require.Equal(t, map[string]string{
		"book_id": "This field is required.",
		"rating":  "Ensure this value is less than or equal to 5.",
		"name":    "Ensure this field has no more than 3 characters.",
	}, validate.Fields(err))

	require.NoError(t, v.Validate(req{BookID: 1, Rating: 5}))
	require.Nil(t, validate.Fields(errors.New("plain")))
}
