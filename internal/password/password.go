// Package password wraps bcrypt credential hashing. Hashes are salted and
// adaptive; verification never recovers the plaintext.
package password

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/taskhive-dev/taskhive/internal/logger"
)

// Hash produces a salted bcrypt hash of the password. The same password
// yields a different hash on every call.
func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether password is the one that produced hash. A malformed
// hash is a verification failure, not an error to propagate.
func Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
