package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/taskhive-dev/taskhive/internal/domain"
	"github.com/taskhive-dev/taskhive/internal/utils"
)

// TokenDecoder validates an access token and yields the caller's identity.
type TokenDecoder interface {
	DecodeToken(jwtStr string) (domain.Identity, error)
}

// Key to store the verified identity in the request context
type key int

const identityKey key = 0

// Auth holds dependencies for authentication middleware
type Auth struct {
	jwt TokenDecoder
}

func NewAuth(jwt TokenDecoder) *Auth {
	return &Auth{jwt: jwt}
}

// RequireAuth returns middleware that rejects requests without a valid
// bearer token and attaches the verified identity to the request context.
func (a *Auth) RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !found || token == "" {
				http.Error(w, "Please sign-in", http.StatusUnauthorized)
				return
			}

			identity, err := a.jwt.DecodeToken(token)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext retrieves the identity stored by RequireAuth. The
// second return is false on routes the middleware never saw.
func IdentityFromContext(r *http.Request) (domain.Identity, bool) {
	identity, ok := r.Context().Value(identityKey).(domain.Identity)
	return identity, ok
}
