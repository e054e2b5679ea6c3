package auth

import (
	"context"

	"github.com/pkg/errors"
)

type contextKey int

const (
	contextKeyClaims contextKey = iota + 1
)

var ErrNoIdentity = errors.New("authentication credentials were not provided")

// SetAuthContext stores verified access token claims on the request context.
func SetAuthContext(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, contextKeyClaims, claims)
}

func GetClaims(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(contextKeyClaims).(*Claims)
	if !ok || claims == nil {
		return nil, ErrNoIdentity
	}
	return claims, nil
}

func GetUserID(ctx context.Context) (int64, error) {
	claims, err := GetClaims(ctx)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}
