package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type TokenType string

const (
	TokenAccess  TokenType = "access"
	TokenRefresh TokenType = "refresh"
)

var ErrInvalidToken = errors.New("token is invalid or expired")

type Config struct {
	Secret     string        `envconfig:"JWT_SECRET" required:"true"`
	AccessTTL  time.Duration `envconfig:"JWT_ACCESS_TTL" default:"5m"`
	RefreshTTL time.Duration `envconfig:"JWT_REFRESH_TTL" default:"24h"`
}

type Claims struct {
	jwt.RegisteredClaims
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	TokenType TokenType `json:"token_type"`
}

type TokenManager struct {
	key        []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenManager(cfg Config) *TokenManager {
	return &TokenManager{
		key:        []byte(cfg.Secret),
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
	}
}

// Issue signs a new HS256 token with a random jti.
func (m *TokenManager) Issue(userID int64, username string, typ TokenType) (string, *Claims, error) {
	ttl := m.accessTTL
	if typ == TokenRefresh {
		ttl = m.refreshTTL
	}
	now := time.Now().UTC()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:    userID,
		Username:  username,
		TokenType: typ,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.key)
	if err != nil {
		return "", nil, errors.Wrap(err, "jwt sign")
	}
	return signed, claims, nil
}

// Parse verifies signature, expiry and token type.
func (m *TokenManager) Parse(tokenStr string, typ TokenType) (*Claims, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return m.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != typ || claims.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
