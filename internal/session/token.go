package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"watchshelf/internal/models"
)

// ErrInvalidToken reports a session snapshot that fails signature or shape
// checks. Holders of an invalid token are treated as anonymous.
var ErrInvalidToken = errors.New("invalid session token")

// Claims is the signed session snapshot: the denormalized user copy the
// original app kept in its current-user slot, minus the password.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// TokenCodec signs and validates session snapshots.
//
// Tokens carry no expiry: sessions live until logout, as in the original app.
// The signature only makes the persisted slot tamper-evident.
type TokenCodec struct {
	secretKey []byte
}

// NewTokenCodec creates a codec signing with the given secret.
// secretKey should be a strong random string (e.g. 32 bytes).
func NewTokenCodec(secretKey string) *TokenCodec {
	return &TokenCodec{secretKey: []byte(secretKey)}
}

// Issue creates a signed snapshot for the given user.
func (c *TokenCodec) Issue(user models.User) (string, error) {
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Decode validates a snapshot and returns the user it carries.
func (c *TokenCodec) Decode(tokenString string) (models.User, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return c.secretKey, nil
		},
	)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return models.User{}, ErrInvalidToken
	}

	return models.User{
		ID:    claims.UserID,
		Email: claims.Email,
		Name:  claims.Name,
	}, nil
}
