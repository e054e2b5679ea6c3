package errs_test

import (
	"testing"

	"github.com/Astemirdum/bookreview-service/bookreview/internal/errs"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	t.Parallel()
	err := errors.Wrap(&errs.ValidationError{Fields: map[string]string{
		"rating":  "Rating must be between 1 and 5",
		"book_id": "Book does not exist",
	}}, "AddReview")

	verr, ok := errs.IsValidation(err)
	require.True(t, ok)
	require.Equal(t, "Book does not exist", verr.Fields["book_id"])
	require.Equal(t, "validation: book_id: Book does not exist; rating: Rating must be between 1 and 5", verr.Error())

	_, ok = errs.IsValidation(errs.ErrNotFound)
	require.False(t, ok)
}
