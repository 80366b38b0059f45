package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/taskhive-dev/taskhive/internal/domain"
	internal_errors "github.com/taskhive-dev/taskhive/internal/errors"
)

// =========================================================================
// Public Methods (satisfy the service.AuthStorage interface)
// =========================================================================

// SaveUser inserts a new user record. The unique index on email is the
// authoritative duplicate guard: a violation here is reported as a 409 even
// when a racing registration slipped past the service-level check.
func (s *Storage) SaveUser(user domain.User) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.saveUser(tx, user)
	})
}

// UserByEmail fetches a user by email. Uses the main connection pool.
func (s *Storage) UserByEmail(email domain.Email) (domain.User, error) {
	return s.userByEmail(s.db, email)
}

// =========================================================================
// Internal Methods (Core Database Logic)
// These methods accept a Querier and are transaction-agnostic.
// =========================================================================

func (s *Storage) saveUser(q Querier, user domain.User) error {
	_, err := q.Exec("INSERT INTO users(id, email, password_hash, created_at) VALUES($1, $2, $3, $4)",
		user.Id, user.Email, user.PassHash, user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return internal_errors.Conflict("Email already exists")
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (s *Storage) userByEmail(q Querier, email domain.Email) (domain.User, error) {
	var user domain.User
	err := q.QueryRow("SELECT id, email, password_hash, created_at FROM users WHERE email = $1", email).
		Scan(&user.Id, &user.Email, &user.PassHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "User not found", StatusCode: http.StatusNotFound}
		}
		return domain.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}
