package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed lifetime of an access token.
const TokenTTL = 30 * time.Minute

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	UserID uint `json:"id"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 access tokens. The signing
// key is injected at construction, never read from the environment.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    TokenTTL,
	}
}

// Generate signs a token carrying the user's email as subject and the
// user id as a custom claim, expiring after the service TTL.
func (ts *TokenService) Generate(email string, userID uint) (string, error) {
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ts.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(ts.secret)
}

// Validate checks signature and expiry and returns the identity.
// Malformed, expired, mis-signed tokens and tokens missing the subject
// or id claim all surface as ErrInvalidToken.
func (ts *TokenService) Validate(tokenString string) (email string, userID uint, err error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return ts.secret, nil
	})

	if err != nil || !token.Valid {
		return "", 0, ErrInvalidToken
	}

	if claims.Subject == "" || claims.UserID == 0 {
		return "", 0, ErrInvalidToken
	}

	return claims.Subject, claims.UserID, nil
}
