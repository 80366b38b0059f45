package service

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taskhive-dev/taskhive/internal/domain"
	"github.com/taskhive-dev/taskhive/internal/errors"
	"github.com/taskhive-dev/taskhive/internal/logger"
	"github.com/taskhive-dev/taskhive/internal/password"
)

type AuthService interface {
	Register(email domain.Email, pass domain.Password) (domain.User, error)
	Login(email domain.Email, pass domain.Password) (string, error)
}

type AuthStorage interface {
	SaveUser(user domain.User) error
	UserByEmail(email domain.Email) (domain.User, error)
}

type TokenIssuer interface {
	NewToken(user domain.User) (string, error)
}

type Auth struct {
	storage AuthStorage
	jwt     TokenIssuer
}

func NewAuth(storage AuthStorage, jwt TokenIssuer) *Auth {
	return &Auth{storage: storage, jwt: jwt}
}

// errInvalidCredentials is shared by the unknown-email and wrong-password
// paths so the two cannot be told apart from the response.
var errInvalidCredentials = &errors.ErrorWithStatusCode{Message: "Invalid credentials", StatusCode: http.StatusUnauthorized}

// Register hashes the password and persists a new user. The email uniqueness
// check here is only the friendly rejection path; the authoritative guard is
// the unique constraint in storage, which surfaces as the same 409 when two
// registrations race.
func (a *Auth) Register(email domain.Email, pass domain.Password) (domain.User, error) {
	email = strings.ToLower(email)

	_, err := a.storage.UserByEmail(email)
	if err == nil {
		return domain.User{}, errors.Conflict("Email already exists")
	}
	if !errors.IsNotFound(err) {
		return domain.User{}, err
	}

	passHash, err := password.Hash(pass)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		Id:        uuid.New().String(),
		Email:     email,
		PassHash:  passHash,
		CreatedAt: time.Now().UTC(),
	}
	if err := a.storage.SaveUser(user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// Login checks if user with given credentials exists in the system and
// returns access token. Unknown email and wrong password produce the
// identical error to not leak existing users.
func (a *Auth) Login(email domain.Email, pass domain.Password) (string, error) {
	email = strings.ToLower(email)

	user, err := a.storage.UserByEmail(email)
	if err != nil {
		if errors.IsNotFound(err) {
			return "", errInvalidCredentials
		}
		return "", err
	}

	if !password.Verify(pass, user.PassHash) {
		return "", errInvalidCredentials
	}

	token, err := a.jwt.NewToken(user)
	if err != nil {
		logger.Log.Error("failed to create jwt token", "user_id", user.Id, "error", err)
		return "", err
	}

	return token, nil
}
