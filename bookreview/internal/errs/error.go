package errs

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrNotFound           = errors.New("Review not found or not owned by user")
	ErrConflict           = errors.New("Review already exists for this book by the user")
	ErrAuthRequired       = errors.New("Authentication credentials were not provided.")
	ErrInvalidCredentials = errors.New("No active account found with the given credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("A user with that username already exists.")
	ErrWrongPassword      = errors.New("Wrong password.")
	ErrPasswordMismatch   = errors.New("passwords does not match")
)

// ValidationError carries a field -> message mapping.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation: " + strings.Join(parts, "; ")
}

func IsValidation(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// ErrorResponse is the body of review conflict and ownership failures.
type ErrorResponse struct {
	Error string `json:"error"`
}
