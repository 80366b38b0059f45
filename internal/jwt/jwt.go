package jwt

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskhive-dev/taskhive/internal/domain"
	internal_errors "github.com/taskhive-dev/taskhive/internal/errors"
	"github.com/taskhive-dev/taskhive/internal/logger"
)

type TokenService interface {
	NewToken(user domain.User) (string, error)
	DecodeToken(jwtStr string) (domain.Identity, error)
}

type Jwt struct {
	secretKey string
	ttl       time.Duration
}

// ErrMissingSecret is returned by New when no signing key is configured.
// Serving traffic with an empty key would make every signature forgeable,
// so construction fails instead of the first login.
var ErrMissingSecret = errors.New("jwt: signing secret is not configured")

// errInvalidToken is the single failure surfaced for every validation
// problem. Callers must not be able to tell a bad signature from an expired
// or malformed token.
var errInvalidToken = &internal_errors.ErrorWithStatusCode{Message: "Invalid access token", StatusCode: http.StatusUnauthorized}

func New(secretKey string, ttl time.Duration) (*Jwt, error) {
	if secretKey == "" {
		return nil, ErrMissingSecret
	}
	return &Jwt{secretKey, ttl}, nil
}

func (j *Jwt) NewToken(user domain.User) (string, error) {
	claims := jwt.MapClaims{}
	claims["sub"] = user.Id
	claims["email"] = user.Email
	claims["exp"] = time.Now().Add(j.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		logger.Log.Error("failed to sign token", "error", err)
		return "", errors.New("can't create token")
	}

	return tokenString, nil
}

func (j *Jwt) DecodeToken(jwtStr string) (domain.Identity, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		// Verify signing algorithm
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.secretKey), nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return domain.Identity{}, errInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.Identity{}, errInvalidToken
	}

	// A payload without sub or email is rejected, not passed through with
	// zero values.
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return domain.Identity{}, errInvalidToken
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return domain.Identity{}, errInvalidToken
	}

	return domain.Identity{UserId: sub, Email: email}, nil
}
